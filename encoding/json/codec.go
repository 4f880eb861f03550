// Package json marshals records to and from JSON request and response
// bodies.
package json

import (
	"fmt"

	record "github.com/awslabs/record-go"
	documentjson "github.com/awslabs/record-go/document/json"
	"github.com/awslabs/record-go/logging"
)

// Codec is a JSON codec.
type Codec struct {
	// Whether to respect smithy.api#jsonName on member shapes.
	UseJSONName bool

	// Policy for body keys no member declares.
	UnknownFields record.UnknownFieldPolicy

	// Receives a Debug entry for every dropped unknown key.
	Logger logging.Logger
}

func (c *Codec) documentOptions(o *record.DocumentOptions) {
	o.UseJSONName = c.UseJSONName
	o.UnknownFields = c.UnknownFields
	o.Logger = c.Logger
}

// Marshal returns the JSON body for r. Required members are checked first, a
// record with required members unset is not serialized and the returned
// error lists every one of them.
func (c *Codec) Marshal(r *record.Record) ([]byte, error) {
	if err := record.ValidateRequired(r); err != nil {
		return nil, err
	}

	p, err := documentjson.Encode(r.ToDocument(c.documentOptions))
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s, %w", r.Schema().ID(), err)
	}
	return p, nil
}

// Unmarshal parses a JSON body into a record of schema s. An empty body
// yields an empty record. A schema that is not a structure fails with a
// *record.NotStructureError.
func (c *Codec) Unmarshal(s *record.Schema, p []byte) (*record.Record, error) {
	if t := s.Target(); t.Type() != record.ShapeTypeStructure {
		return nil, &record.NotStructureError{Shape: t.ID(), Type: t.Type()}
	}
	if len(p) == 0 {
		return record.New(s), nil
	}

	v, err := documentjson.Decode(p)
	if err != nil {
		return nil, &record.MalformedPayloadError{Expected: "JSON document", Actual: "invalid JSON", Err: err}
	}
	return record.FromDocument(s, v, c.documentOptions)
}
