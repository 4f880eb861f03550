// Package json converts document trees to and from JSON bytes.
//
// Decoding walks the token stream so object keys keep their wire order.
package json

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	gojson "github.com/goccy/go-json"

	"github.com/awslabs/record-go/document"
)

const defaultMaxDepth = 10000

// EncoderOptions configures an Encoder.
type EncoderOptions struct {
	// Indent, when non-empty, pretty prints output using the string per
	// nesting level.
	Indent string
}

// DecoderOptions configures a Decoder.
type DecoderOptions struct {
	// MaxDepth bounds array/object nesting. Zero uses the default.
	MaxDepth int
}

// Encoder writes document trees as JSON.
type Encoder struct {
	options EncoderOptions
}

// Decoder reads document trees from JSON.
type Decoder struct {
	options DecoderOptions
}

// NewEncoder returns an Encoder.
func NewEncoder(optFns ...func(options *EncoderOptions)) *Encoder {
	o := EncoderOptions{}

	for _, fn := range optFns {
		fn(&o)
	}

	return &Encoder{
		options: o,
	}
}

// NewDecoder returns a Decoder.
func NewDecoder(optFns ...func(*DecoderOptions)) *Decoder {
	o := DecoderOptions{}

	for _, fn := range optFns {
		fn(&o)
	}

	if o.MaxDepth <= 0 {
		o.MaxDepth = defaultMaxDepth
	}

	return &Decoder{
		options: o,
	}
}

// Encode returns v as JSON bytes.
func Encode(v document.Value) ([]byte, error) {
	return NewEncoder().Encode(v)
}

// Decode parses exactly one JSON value from p.
func Decode(p []byte) (document.Value, error) {
	return NewDecoder().Decode(bytes.NewReader(p))
}

// Encode returns v as JSON bytes.
func (e *Encoder) Encode(v document.Value) ([]byte, error) {
	var buf bytes.Buffer
	if err := e.encode(&buf, v, 0); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (e *Encoder) newline(buf *bytes.Buffer, depth int) {
	if e.options.Indent == "" {
		return
	}
	buf.WriteByte('\n')
	buf.WriteString(strings.Repeat(e.options.Indent, depth))
}

func (e *Encoder) encode(buf *bytes.Buffer, v document.Value, depth int) error {
	switch v.Kind() {
	case document.KindNull:
		buf.WriteString("null")
	case document.KindBool:
		b, _ := v.AsBool()
		if b {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
	case document.KindNumber:
		n, _ := v.AsNumber()
		if !gojson.Valid([]byte(n)) {
			return fmt.Errorf("invalid JSON number %q", string(n))
		}
		buf.WriteString(string(n))
	case document.KindString:
		s, _ := v.AsString()
		return writeString(buf, s)
	case document.KindArray:
		arr, _ := v.AsArray()
		buf.WriteByte('[')
		for i, elem := range arr {
			if i > 0 {
				buf.WriteByte(',')
			}
			e.newline(buf, depth+1)
			if err := e.encode(buf, elem, depth+1); err != nil {
				return err
			}
		}
		if len(arr) > 0 {
			e.newline(buf, depth)
		}
		buf.WriteByte(']')
	case document.KindObject:
		obj, _ := v.AsObject()
		buf.WriteByte('{')
		var err error
		i := 0
		obj.Range(func(key string, val document.Value) bool {
			if i > 0 {
				buf.WriteByte(',')
			}
			i++
			e.newline(buf, depth+1)
			if err = writeString(buf, key); err != nil {
				return false
			}
			buf.WriteByte(':')
			if e.options.Indent != "" {
				buf.WriteByte(' ')
			}
			err = e.encode(buf, val, depth+1)
			return err == nil
		})
		if err != nil {
			return err
		}
		if i > 0 {
			e.newline(buf, depth)
		}
		buf.WriteByte('}')
	default:
		return fmt.Errorf("unknown document kind %v", v.Kind())
	}
	return nil
}

func writeString(buf *bytes.Buffer, s string) error {
	b, err := gojson.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to encode string, %w", err)
	}
	buf.Write(b)
	return nil
}

// Decode parses exactly one JSON value from r. The input is checked against
// the JSON grammar before it is walked, so missing separators, trailing
// commas and trailing data other than whitespace are all errors.
func (d *Decoder) Decode(r io.Reader) (document.Value, error) {
	p, err := io.ReadAll(r)
	if err != nil {
		return document.Value{}, fmt.Errorf("failed to read JSON document, %w", err)
	}
	if len(bytes.TrimSpace(p)) == 0 {
		return document.Value{}, fmt.Errorf("empty JSON document")
	}
	if err := validate(p); err != nil {
		return document.Value{}, err
	}

	dec := gojson.NewDecoder(bytes.NewReader(p))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return document.Value{}, err
	}

	v, err := d.value(dec, tok, 0)
	if err != nil {
		return document.Value{}, err
	}

	if tok, err := dec.Token(); err == nil {
		return document.Value{}, fmt.Errorf("unexpected trailing JSON token %v", tok)
	} else if !errors.Is(err, io.EOF) {
		return document.Value{}, err
	}

	return v, nil
}

func (d *Decoder) value(dec *gojson.Decoder, tok gojson.Token, depth int) (document.Value, error) {
	switch t := tok.(type) {
	case gojson.Delim:
		if depth >= d.options.MaxDepth {
			return document.Value{}, fmt.Errorf("JSON nesting exceeds max depth %d", d.options.MaxDepth)
		}
		switch t {
		case '{':
			return d.object(dec, depth+1)
		case '[':
			return d.array(dec, depth+1)
		default:
			return document.Value{}, fmt.Errorf("unexpected delimiter %v", t)
		}
	case gojson.Number:
		return document.NumberValue(document.Number(t)), nil
	case float64:
		return document.Float(t), nil
	case string:
		return document.String(t), nil
	case bool:
		return document.Bool(t), nil
	case nil:
		return document.Null(), nil
	default:
		return document.Value{}, fmt.Errorf("unexpected JSON token %T", tok)
	}
}

func (d *Decoder) object(dec *gojson.Decoder, depth int) (document.Value, error) {
	obj := document.NewObject()
	for {
		tok, err := next(dec)
		if err != nil {
			return document.Value{}, err
		}
		if delim, ok := tok.(gojson.Delim); ok && delim == '}' {
			return document.ObjectValue(obj), nil
		}

		key, ok := tok.(string)
		if !ok {
			return document.Value{}, fmt.Errorf("expected string key, got %T", tok)
		}

		tok, err = next(dec)
		if err != nil {
			return document.Value{}, err
		}
		v, err := d.value(dec, tok, depth)
		if err != nil {
			return document.Value{}, err
		}
		obj.Set(key, v)
	}
}

func (d *Decoder) array(dec *gojson.Decoder, depth int) (document.Value, error) {
	arr := []document.Value{}
	for {
		tok, err := next(dec)
		if err != nil {
			return document.Value{}, err
		}
		if delim, ok := tok.(gojson.Delim); ok && delim == ']' {
			return document.Array(arr...), nil
		}

		v, err := d.value(dec, tok, depth)
		if err != nil {
			return document.Value{}, err
		}
		arr = append(arr, v)
	}
}

// validate rejects input the token stream alone would accept, such as
// `{"a" 1}` or `[1,,2]`.
func validate(p []byte) error {
	if gojson.Valid(p) {
		return nil
	}
	var discard any
	if err := gojson.Unmarshal(p, &discard); err != nil {
		return fmt.Errorf("invalid JSON document, %w", err)
	}
	return errors.New("invalid JSON document")
}

// next reads a token inside a container, where EOF is always premature.
func next(dec *gojson.Decoder) (gojson.Token, error) {
	tok, err := dec.Token()
	if errors.Is(err, io.EOF) {
		return nil, io.ErrUnexpectedEOF
	}
	return tok, err
}
