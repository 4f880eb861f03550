package document

import (
	"fmt"
	"math"
)

// Kind identifies the variant held by a Value.
type Kind int

// Enumerates the Value variants.
const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Value is one node of a document tree. The zero Value is null.
type Value struct {
	kind Kind
	b    bool
	s    string // string value, or the text of a number
	arr  []Value
	obj  *Object
}

// Null returns the null value.
func Null() Value {
	return Value{}
}

// Bool returns a boolean value.
func Bool(v bool) Value {
	return Value{kind: KindBool, b: v}
}

// String returns a string value.
func String(v string) Value {
	return Value{kind: KindString, s: v}
}

// NumberValue returns a number value.
func NumberValue(n Number) Value {
	return Value{kind: KindNumber, s: string(n)}
}

// Int returns a number value for an integer.
func Int(v int64) Value {
	return NumberValue(FormatInt(v))
}

// Float returns a number value for a finite float. NaN and infinities have no
// number form, callers project them to strings before building the tree.
func Float(v float64) Value {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		panic(fmt.Sprintf("document: %v has no number form", v))
	}
	return NumberValue(FormatFloat(v))
}

// Array returns an array value holding vs in order.
func Array(vs ...Value) Value {
	if vs == nil {
		vs = []Value{}
	}
	return Value{kind: KindArray, arr: vs}
}

// ObjectValue returns an object value. A nil object is treated as empty.
func ObjectValue(o *Object) Value {
	if o == nil {
		o = NewObject()
	}
	return Value{kind: KindObject, obj: o}
}

// Kind returns the variant held by v.
func (v Value) Kind() Kind {
	return v.kind
}

// IsNull reports whether v is null.
func (v Value) IsNull() bool {
	return v.kind == KindNull
}

// AsBool returns the boolean held by v.
func (v Value) AsBool() (bool, bool) {
	return v.b, v.kind == KindBool
}

// AsString returns the string held by v.
func (v Value) AsString() (string, bool) {
	if v.kind != KindString {
		return "", false
	}
	return v.s, true
}

// AsNumber returns the number held by v.
func (v Value) AsNumber() (Number, bool) {
	if v.kind != KindNumber {
		return "", false
	}
	return Number(v.s), true
}

// AsArray returns the elements held by v. The slice is shared with v.
func (v Value) AsArray() ([]Value, bool) {
	if v.kind != KindArray {
		return nil, false
	}
	return v.arr, true
}

// AsObject returns the object held by v.
func (v Value) AsObject() (*Object, bool) {
	if v.kind != KindObject {
		return nil, false
	}
	return v.obj, true
}

// Interface returns v as plain Go values: nil, bool, float64, string, []any
// and map[string]any. Numbers that do not parse as float64 are returned as
// their Number text. Object key order is lost.
func (v Value) Interface() any {
	switch v.kind {
	case KindBool:
		return v.b
	case KindNumber:
		f, err := Number(v.s).Float64()
		if err != nil {
			return Number(v.s)
		}
		return f
	case KindString:
		return v.s
	case KindArray:
		out := make([]any, len(v.arr))
		for i, e := range v.arr {
			out[i] = e.Interface()
		}
		return out
	case KindObject:
		out := make(map[string]any, v.obj.Len())
		for _, k := range v.obj.keys {
			out[k] = v.obj.values[k].Interface()
		}
		return out
	default:
		return nil
	}
}

// Equal reports whether v and o hold the same tree. Object key order is not
// significant, array order is. Numbers compare by text first and then by
// value, so "1.0" equals "1".
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}

	switch v.kind {
	case KindNull:
		return true
	case KindBool:
		return v.b == o.b
	case KindString:
		return v.s == o.s
	case KindNumber:
		if v.s == o.s {
			return true
		}
		a, err1 := Number(v.s).Float64()
		b, err2 := Number(o.s).Float64()
		return err1 == nil && err2 == nil && a == b
	case KindArray:
		if len(v.arr) != len(o.arr) {
			return false
		}
		for i := range v.arr {
			if !v.arr[i].Equal(o.arr[i]) {
				return false
			}
		}
		return true
	case KindObject:
		if v.obj.Len() != o.obj.Len() {
			return false
		}
		for _, k := range v.obj.keys {
			ov, ok := o.obj.Get(k)
			if !ok || !v.obj.values[k].Equal(ov) {
				return false
			}
		}
		return true
	}
	return false
}

// GoString renders v in JSON-like notation, used by test failure output.
func (v Value) GoString() string {
	switch v.kind {
	case KindNull:
		return "null"
	case KindBool:
		return fmt.Sprint(v.b)
	case KindNumber:
		return v.s
	case KindString:
		return fmt.Sprintf("%q", v.s)
	case KindArray:
		s := "["
		for i, e := range v.arr {
			if i > 0 {
				s += ","
			}
			s += e.GoString()
		}
		return s + "]"
	case KindObject:
		s := "{"
		for i, k := range v.obj.keys {
			if i > 0 {
				s += ","
			}
			s += fmt.Sprintf("%q:%s", k, v.obj.values[k].GoString())
		}
		return s + "}"
	}
	return "<invalid>"
}
