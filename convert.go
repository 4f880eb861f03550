package record

import (
	"errors"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/awslabs/record-go/document"
	"github.com/awslabs/record-go/logging"
	smithytime "github.com/awslabs/record-go/time"
	"github.com/awslabs/record-go/traits"
)

// UnknownFieldPolicy controls how FromDocument treats object keys no member
// declares.
type UnknownFieldPolicy int

// Enumerates UnknownFieldPolicy.
const (
	// UnknownFieldsIgnore drops unknown keys, logging them at Debug.
	UnknownFieldsIgnore UnknownFieldPolicy = iota

	// UnknownFieldsError fails decoding with an UnknownFieldError.
	UnknownFieldsError
)

// DocumentOptions configures conversion between records and document trees.
type DocumentOptions struct {
	// Whether to respect the jsonName trait on members. When false the member
	// name is the object key.
	UseJSONName bool

	// Policy for inbound keys that no member declares.
	UnknownFields UnknownFieldPolicy

	// Receives a Debug entry for every dropped unknown key. Nil discards.
	Logger logging.Logger
}

// ToDocument returns r as an object containing exactly the set members, in
// declaration order. Nested records recurse, lists keep their order and map
// keys are emitted sorted. A record with nothing set yields an empty object.
func (r *Record) ToDocument(optFns ...func(*DocumentOptions)) document.Value {
	var o DocumentOptions
	for _, fn := range optFns {
		fn(&o)
	}
	return r.toDocument(&o)
}

func (r *Record) toDocument(o *DocumentOptions) document.Value {
	obj := document.NewObject()
	for i, m := range r.schema.members {
		if !r.set.has(i) {
			continue
		}
		obj.Set(memberKey(m, o), toDocumentValue(m, r.values[i], o))
	}
	return document.ObjectValue(obj)
}

func memberKey(m *Schema, o *DocumentOptions) string {
	if o.UseJSONName {
		if t, ok := SchemaTrait[*traits.JSONName](m); ok && t.Name != "" {
			return t.Name
		}
	}
	return m.id.Member
}

func timestampFormat(s *Schema, fallback string) string {
	if t, ok := SchemaTrait[*traits.TimestampFormat](s); ok && t.Format != "" {
		return t.Format
	}
	return fallback
}

func toDocumentValue(s *Schema, v any, o *DocumentOptions) document.Value {
	switch s.typ {
	case ShapeTypeString:
		return document.String(v.(string))
	case ShapeTypeInteger:
		return document.Int(v.(int64))
	case ShapeTypeFloat:
		return floatValue(v.(float64))
	case ShapeTypeBoolean:
		return document.Bool(v.(bool))
	case ShapeTypeTimestamp:
		t := v.(time.Time)
		switch timestampFormat(s, traits.TimestampFormatEpochSeconds) {
		case traits.TimestampFormatDateTime:
			return document.String(smithytime.FormatDateTime(t))
		case traits.TimestampFormatHTTPDate:
			return document.String(smithytime.FormatHTTPDate(t))
		default:
			return document.Float(smithytime.FormatEpochSeconds(t))
		}
	case ShapeTypeList:
		list := v.([]any)
		arr := make([]document.Value, len(list))
		for i, e := range list {
			arr[i] = toDocumentValue(s.elem, e, o)
		}
		return document.Array(arr...)
	case ShapeTypeMap:
		mp := v.(map[string]any)
		keys := make([]string, 0, len(mp))
		for k := range mp {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		obj := document.NewObject()
		for _, k := range keys {
			obj.Set(k, toDocumentValue(s.elem, mp[k], o))
		}
		return document.ObjectValue(obj)
	case ShapeTypeStructure:
		return v.(*Record).toDocument(o)
	}
	return document.Null()
}

// floatValue projects non finite floats to the strings JSON protocols use.
func floatValue(f float64) document.Value {
	switch {
	case math.IsNaN(f):
		return document.String("NaN")
	case math.IsInf(f, 1):
		return document.String("Infinity")
	case math.IsInf(f, -1):
		return document.String("-Infinity")
	}
	return document.Float(f)
}

// FromDocument builds a record of schema s from an object tree.
//
// Each declared member whose key is present is parsed and set, absent keys
// (and keys holding null) leave the member unset. A value of the wrong kind
// fails with a *MalformedPayloadError naming its JSON Pointer. Unknown keys
// are handled per DocumentOptions.UnknownFields. A schema that is not a
// structure fails with a *NotStructureError.
func FromDocument(s *Schema, v document.Value, optFns ...func(*DocumentOptions)) (*Record, error) {
	if t := s.Target(); t.typ != ShapeTypeStructure {
		return nil, &NotStructureError{Shape: t.id, Type: t.typ}
	}

	var o DocumentOptions
	for _, fn := range optFns {
		fn(&o)
	}
	o.Logger = logging.OrNoop(o.Logger)

	d := decoder{opts: &o}
	return d.record("", s.Target(), v)
}

type decoder struct {
	opts *DocumentOptions
}

func (d *decoder) record(path string, s *Schema, v document.Value) (*Record, error) {
	obj, ok := v.AsObject()
	if !ok {
		return nil, malformed(path, "object", v)
	}

	r := New(s)
	known := make(map[string]struct{}, len(s.members))
	matched := 0
	for i, m := range s.members {
		key := memberKey(m, d.opts)
		known[key] = struct{}{}

		mv, ok := obj.Get(key)
		if !ok {
			continue
		}
		matched++
		if mv.IsNull() {
			continue
		}

		val, err := d.value(pointer(path, key), m, mv)
		if err != nil {
			return nil, err
		}
		r.setIndex(i, val)
	}

	if obj.Len() == matched {
		return r, nil
	}

	var err error
	obj.Range(func(key string, _ document.Value) bool {
		if _, ok := known[key]; ok {
			return true
		}
		if d.opts.UnknownFields == UnknownFieldsError {
			err = &UnknownFieldError{Path: path, Key: key}
			return false
		}
		d.opts.Logger.Logf(logging.Debug, "dropping unknown field %q at %s of %s", key, pathOrRoot(path), s.id)
		return true
	})
	if err != nil {
		return nil, err
	}
	return r, nil
}

func (d *decoder) value(path string, s *Schema, v document.Value) (any, error) {
	switch s.typ {
	case ShapeTypeString:
		str, ok := v.AsString()
		if !ok {
			return nil, malformed(path, "string", v)
		}
		return str, nil

	case ShapeTypeInteger:
		n, ok := v.AsNumber()
		if !ok {
			return nil, malformed(path, "integer", v)
		}
		i, err := n.Int64()
		if err != nil {
			return nil, &MalformedPayloadError{Path: path, Expected: "integer", Actual: "number " + n.String(), Err: unwrapNumError(err)}
		}
		return i, nil

	case ShapeTypeFloat:
		return parseFloat(path, v)

	case ShapeTypeBoolean:
		b, ok := v.AsBool()
		if !ok {
			return nil, malformed(path, "boolean", v)
		}
		return b, nil

	case ShapeTypeTimestamp:
		format := timestampFormat(s, traits.TimestampFormatEpochSeconds)
		if format == traits.TimestampFormatEpochSeconds {
			n, ok := v.AsNumber()
			if !ok {
				return nil, malformed(path, "epoch-seconds timestamp", v)
			}
			f, err := n.Float64()
			if err != nil {
				return nil, &MalformedPayloadError{Path: path, Expected: "epoch-seconds timestamp", Actual: "number " + n.String(), Err: unwrapNumError(err)}
			}
			return smithytime.ParseEpochSeconds(f), nil
		}

		str, ok := v.AsString()
		if !ok {
			return nil, malformed(path, format+" timestamp", v)
		}
		parse := smithytime.ParseDateTime
		if format == traits.TimestampFormatHTTPDate {
			parse = smithytime.ParseHTTPDate
		}
		t, err := parse(str)
		if err != nil {
			return nil, &MalformedPayloadError{Path: path, Expected: format + " timestamp", Actual: strconv.Quote(str), Err: err}
		}
		return timestampPrecision(s, t), nil

	case ShapeTypeList:
		arr, ok := v.AsArray()
		if !ok {
			return nil, malformed(path, "list", v)
		}
		list := make([]any, 0, len(arr))
		for i, e := range arr {
			if e.IsNull() {
				continue
			}
			ev, err := d.value(pointer(path, strconv.Itoa(i)), s.elem, e)
			if err != nil {
				return nil, err
			}
			list = append(list, ev)
		}
		return list, nil

	case ShapeTypeMap:
		obj, ok := v.AsObject()
		if !ok {
			return nil, malformed(path, "map", v)
		}
		mp := make(map[string]any, obj.Len())
		var err error
		obj.Range(func(key string, e document.Value) bool {
			if e.IsNull() {
				return true
			}
			var ev any
			if ev, err = d.value(pointer(path, key), s.elem, e); err != nil {
				return false
			}
			mp[key] = ev
			return true
		})
		if err != nil {
			return nil, err
		}
		return mp, nil

	case ShapeTypeStructure:
		return d.record(path, s.Target(), v)
	}

	return nil, malformed(path, s.typ.String(), v)
}

func parseFloat(path string, v document.Value) (float64, error) {
	switch v.Kind() {
	case document.KindNumber:
		n, _ := v.AsNumber()
		f, err := n.Float64()
		if err != nil {
			return 0, &MalformedPayloadError{Path: path, Expected: "float", Actual: "number " + n.String(), Err: unwrapNumError(err)}
		}
		return f, nil
	case document.KindString:
		str, _ := v.AsString()
		switch {
		case strings.EqualFold(str, "NaN"):
			return math.NaN(), nil
		case strings.EqualFold(str, "Infinity"):
			return math.Inf(1), nil
		case strings.EqualFold(str, "-Infinity"):
			return math.Inf(-1), nil
		}
	}
	return 0, malformed(path, "float", v)
}

func malformed(path, expected string, v document.Value) *MalformedPayloadError {
	return &MalformedPayloadError{Path: path, Expected: expected, Actual: v.Kind().String()}
}

func unwrapNumError(err error) error {
	var ne *strconv.NumError
	if errors.As(err, &ne) {
		return ne.Err
	}
	return err
}

var pointerEscaper = strings.NewReplacer("~", "~0", "/", "~1")

// pointer appends an RFC 6901 reference token to a JSON Pointer.
func pointer(parent, token string) string {
	return parent + "/" + pointerEscaper.Replace(token)
}
