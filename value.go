package record

import (
	"fmt"
	"math"
	"reflect"
	"time"

	"github.com/awslabs/record-go/traits"
)

func zeroValue(s *Schema) any {
	switch s.typ {
	case ShapeTypeString:
		return ""
	case ShapeTypeInteger:
		return int64(0)
	case ShapeTypeFloat:
		return float64(0)
	case ShapeTypeBoolean:
		return false
	case ShapeTypeTimestamp:
		return time.Time{}
	case ShapeTypeList:
		return []any(nil)
	case ShapeTypeMap:
		return map[string]any(nil)
	case ShapeTypeStructure:
		return New(s.Target())
	}
	return nil
}

// normalize converts v to the representation held for schema s.
func normalize(s *Schema, v any) (any, error) {
	if v == nil {
		return nil, fmt.Errorf("nil value for %v member", s.typ)
	}

	switch s.typ {
	case ShapeTypeString:
		if str, ok := v.(string); ok {
			return str, nil
		}
		rv := reflect.ValueOf(v)
		if rv.Kind() == reflect.String {
			return rv.String(), nil
		}

	case ShapeTypeInteger:
		rv := reflect.ValueOf(v)
		switch rv.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			return rv.Int(), nil
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
			u := rv.Uint()
			if u > math.MaxInt64 {
				return nil, fmt.Errorf("%d overflows int64", u)
			}
			return int64(u), nil
		}

	case ShapeTypeFloat:
		rv := reflect.ValueOf(v)
		switch rv.Kind() {
		case reflect.Float32, reflect.Float64:
			return rv.Float(), nil
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			return float64(rv.Int()), nil
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
			return float64(rv.Uint()), nil
		}

	case ShapeTypeBoolean:
		if b, ok := v.(bool); ok {
			return b, nil
		}
		rv := reflect.ValueOf(v)
		if rv.Kind() == reflect.Bool {
			return rv.Bool(), nil
		}

	case ShapeTypeTimestamp:
		if t, ok := v.(time.Time); ok {
			return timestampPrecision(s, t), nil
		}
		if t, ok := v.(*time.Time); ok && t != nil {
			return timestampPrecision(s, *t), nil
		}

	case ShapeTypeList:
		rv := reflect.ValueOf(v)
		if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
			if rv.Kind() == reflect.Slice && rv.IsNil() {
				return []any{}, nil
			}
			out := make([]any, rv.Len())
			for i := range out {
				ev, err := normalize(s.elem, rv.Index(i).Interface())
				if err != nil {
					return nil, fmt.Errorf("element %d, %w", i, err)
				}
				out[i] = ev
			}
			return out, nil
		}

	case ShapeTypeMap:
		rv := reflect.ValueOf(v)
		if rv.Kind() == reflect.Map && rv.Type().Key().Kind() == reflect.String {
			out := make(map[string]any, rv.Len())
			iter := rv.MapRange()
			for iter.Next() {
				ev, err := normalize(s.elem, iter.Value().Interface())
				if err != nil {
					return nil, fmt.Errorf("key %q, %w", iter.Key().String(), err)
				}
				out[iter.Key().String()] = ev
			}
			return out, nil
		}

	case ShapeTypeStructure:
		if rec, ok := v.(*Record); ok && rec != nil {
			if rec.schema != s.Target() {
				return nil, fmt.Errorf("expected record of %s, got %s", s.Target().id, rec.schema.id)
			}
			return rec.Clone(), nil
		}
		if rs, ok := v.(interface{ Record() *Record }); ok {
			return normalize(s, rs.Record())
		}
	}

	return nil, fmt.Errorf("cannot hold %T in %v member", v, s.typ)
}

// timestampPrecision truncates t to what the member's wire format carries:
// whole seconds for http-date, milliseconds otherwise.
func timestampPrecision(s *Schema, t time.Time) time.Time {
	if timestampFormat(s, traits.TimestampFormatEpochSeconds) == traits.TimestampFormatHTTPDate {
		return t.Truncate(time.Second)
	}
	return t.Truncate(time.Millisecond)
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = cloneValue(e)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[k] = cloneValue(e)
		}
		return out
	case *Record:
		return t.Clone()
	default:
		return v
	}
}

func valueEqual(a, b any) bool {
	switch at := a.(type) {
	case time.Time:
		bt, ok := b.(time.Time)
		return ok && at.Equal(bt)
	case float64:
		bt, ok := b.(float64)
		if !ok {
			return false
		}
		if math.IsNaN(at) && math.IsNaN(bt) {
			return true
		}
		return at == bt
	case []any:
		bt, ok := b.([]any)
		if !ok || len(at) != len(bt) {
			return false
		}
		for i := range at {
			if !valueEqual(at[i], bt[i]) {
				return false
			}
		}
		return true
	case map[string]any:
		bt, ok := b.(map[string]any)
		if !ok || len(at) != len(bt) {
			return false
		}
		for k, av := range at {
			bv, ok := bt[k]
			if !ok || !valueEqual(av, bv) {
				return false
			}
		}
		return true
	case *Record:
		bt, ok := b.(*Record)
		return ok && at.Equal(bt)
	default:
		return a == b
	}
}
