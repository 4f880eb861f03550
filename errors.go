package record

import (
	"fmt"
)

// MalformedPayloadError is returned when an inbound value does not match the
// declared kind of the member it is read into. Values are never coerced
// between kinds.
type MalformedPayloadError struct {
	// JSON Pointer of the offending value, "" for the root.
	Path string

	// Expected names the declared kind, Actual the kind found.
	Expected string
	Actual   string

	// Err is the underlying parse failure, if any (overflow, bad timestamp).
	Err error
}

func (e *MalformedPayloadError) Error() string {
	msg := fmt.Sprintf("malformed payload at %s, expected %s, got %s", pathOrRoot(e.Path), e.Expected, e.Actual)
	if e.Err != nil {
		msg += ", " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying error.
func (e *MalformedPayloadError) Unwrap() error {
	return e.Err
}

// UnknownFieldError is returned for an inbound key that no member declares,
// when the decoder is configured to reject unknown keys.
type UnknownFieldError struct {
	Path string
	Key  string
}

func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("unknown field %q at %s", e.Key, pathOrRoot(e.Path))
}

// MissingRequiredFieldError is returned when a record is serialized for
// transmission while a required member is unset.
type MissingRequiredFieldError struct {
	Path   string
	Member string
}

func (e *MissingRequiredFieldError) Error() string {
	return fmt.Sprintf("missing required field %s at %s", e.Member, pathOrRoot(e.Path))
}

// InvalidFieldError is returned by Set, Append and Put when the member does
// not exist or the value cannot be held by the member's kind.
type InvalidFieldError struct {
	Shape  ShapeID
	Member string
	Err    error
}

func (e *InvalidFieldError) Error() string {
	return fmt.Sprintf("invalid field %s on %s, %v", e.Member, e.Shape, e.Err)
}

// Unwrap returns the underlying error.
func (e *InvalidFieldError) Unwrap() error {
	return e.Err
}

// NotStructureError is returned when a record is decoded into a schema that
// is not a structure.
type NotStructureError struct {
	Shape ShapeID
	Type  ShapeType
}

func (e *NotStructureError) Error() string {
	return fmt.Sprintf("%s is a %v, not a structure", e.Shape, e.Type)
}

func pathOrRoot(p string) string {
	if p == "" {
		return "/"
	}
	return p
}
