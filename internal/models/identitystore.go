package models

import (
	record "github.com/awslabs/record-go"
	"github.com/awslabs/record-go/prelude"
	"github.com/awslabs/record-go/traits"
)

// InternalServerExceptionSchema is the IdentityStore InternalServerException.
var InternalServerExceptionSchema = record.NewSchema("com.amazonaws.identitystore#InternalServerException", record.ShapeTypeStructure,
	record.WithMember("Message", prelude.String),
	record.WithMember("RequestId", prelude.String),
	record.WithMember("RetryAfterSeconds", prelude.Integer, &traits.HTTPHeader{Name: "Retry-After"}),
)

// InternalServerException is returned when the service failed to process a
// request.
type InternalServerException struct {
	rec *record.Record
}

// NewInternalServerException returns an empty exception.
func NewInternalServerException() *InternalServerException {
	return &InternalServerException{rec: record.New(InternalServerExceptionSchema)}
}

// InternalServerExceptionFromRecord wraps a decoded exception.
func InternalServerExceptionFromRecord(r *record.Record) *InternalServerException {
	return &InternalServerException{rec: r}
}

// Record returns the underlying record.
func (e *InternalServerException) Record() *record.Record { return e.rec }

// Error returns Error, the zero value when unset.
func (e *InternalServerException) Error() string {
	msg := "InternalServerException"
	if e.HasMessage() {
		msg += ": " + e.Message()
	}
	return msg
}

// ErrorCode returns the model name of the exception.
func (e *InternalServerException) ErrorCode() string { return "InternalServerException" }

// Message returns Message, the zero value when unset.
func (e *InternalServerException) Message() string { return e.rec.GetString("Message") }

// HasMessage reports whether Message is set.
func (e *InternalServerException) HasMessage() bool { return e.rec.IsSet("Message") }

// WithMessage sets Message and returns the receiver.
func (e *InternalServerException) WithMessage(v string) *InternalServerException {
	e.rec.MustSet("Message", v)
	return e
}

// RequestId returns RequestId, the zero value when unset.
func (e *InternalServerException) RequestId() string { return e.rec.GetString("RequestId") }

// HasRequestId reports whether RequestId is set.
func (e *InternalServerException) HasRequestId() bool { return e.rec.IsSet("RequestId") }

// WithRequestId sets RequestId and returns the receiver.
func (e *InternalServerException) WithRequestId(v string) *InternalServerException {
	e.rec.MustSet("RequestId", v)
	return e
}

// RetryAfterSeconds returns RetryAfterSeconds, the zero value when unset.
func (e *InternalServerException) RetryAfterSeconds() int64 {
	return e.rec.GetInt64("RetryAfterSeconds")
}

// HasRetryAfterSeconds reports whether RetryAfterSeconds is set.
func (e *InternalServerException) HasRetryAfterSeconds() bool {
	return e.rec.IsSet("RetryAfterSeconds")
}

// WithRetryAfterSeconds sets RetryAfterSeconds and returns the receiver.
func (e *InternalServerException) WithRetryAfterSeconds(v int64) *InternalServerException {
	e.rec.MustSet("RetryAfterSeconds", v)
	return e
}
