package document

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFormatFloat(t *testing.T) {
	cases := map[string]struct {
		Value  float64
		Expect Number
	}{
		"integral":   {Value: 3, Expect: "3"},
		"fraction":   {Value: 0.25, Expect: "0.25"},
		"negative":   {Value: -1.5, Expect: "-1.5"},
		"zero":       {Value: 0, Expect: "0"},
		"large":      {Value: 1e21, Expect: "1e+21"},
		"small":      {Value: 1e-7, Expect: "1e-07"},
		"below 1e21": {Value: 1e20, Expect: "100000000000000000000"},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			if e, a := c.Expect, FormatFloat(c.Value); e != a {
				t.Errorf("expect %v, got %v", e, a)
			}
		})
	}
}

func TestFloatPanicsOnNonFinite(t *testing.T) {
	for _, f := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("expect panic for %v", f)
				}
			}()
			Float(f)
		}()
	}
}

func TestNumberWidth(t *testing.T) {
	v := Int(math.MaxInt64)
	n, ok := v.AsNumber()
	if !ok {
		t.Fatalf("expect number")
	}
	i, err := n.Int64()
	if err != nil {
		t.Fatalf("expect no error, got %v", err)
	}
	if e, a := int64(math.MaxInt64), i; e != a {
		t.Errorf("expect %v, got %v", e, a)
	}
}

func TestNumberConversions(t *testing.T) {
	cases := map[string]struct {
		Number    Number
		Convert   func(Number) (any, error)
		Expect    any
		ExpectErr bool
	}{
		"uint64 max": {
			Number:  Number("18446744073709551615"),
			Convert: func(n Number) (any, error) { return n.Uint64() },
			Expect:  uint64(math.MaxUint64),
		},
		"uint64 negative": {
			Number:    Number("-1"),
			Convert:   func(n Number) (any, error) { return n.Uint64() },
			ExpectErr: true,
		},
		"uint64 overflow": {
			Number:    Number("18446744073709551616"),
			Convert:   func(n Number) (any, error) { return n.Uint64() },
			ExpectErr: true,
		},
		"float32 rounds": {
			Number:  Number("0.1"),
			Convert: func(n Number) (any, error) { return n.Float32() },
			Expect:  float64(float32(0.1)),
		},
		"float32 overflow": {
			Number:    Number("1e39"),
			Convert:   func(n Number) (any, error) { return n.Float32() },
			ExpectErr: true,
		},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			actual, err := c.Convert(c.Number)
			if c.ExpectErr {
				if err == nil {
					t.Fatalf("expect error, got %v", actual)
				}
				return
			}
			if err != nil {
				t.Fatalf("expect no error, got %v", err)
			}
			if diff := cmp.Diff(c.Expect, actual); diff != "" {
				t.Errorf("number mismatch (-expect +actual):\n%s", diff)
			}
		})
	}
}

func TestValueAccessors(t *testing.T) {
	if !Null().IsNull() || (Value{}).Kind() != KindNull {
		t.Errorf("expect zero Value to be null")
	}
	if _, ok := String("a").AsBool(); ok {
		t.Errorf("expect string not to read as bool")
	}
	if b, ok := Bool(true).AsBool(); !ok || !b {
		t.Errorf("expect true, got %v %v", b, ok)
	}
	if arr, ok := Array().AsArray(); !ok || arr == nil || len(arr) != 0 {
		t.Errorf("expect empty non nil array, got %v", arr)
	}
	if obj, ok := ObjectValue(nil).AsObject(); !ok || obj.Len() != 0 {
		t.Errorf("expect empty object")
	}
}

func TestValueInterface(t *testing.T) {
	obj := NewObject()
	obj.Set("s", String("x"))
	obj.Set("n", Int(2))
	obj.Set("a", Array(Bool(true), Null()))

	expect := map[string]any{
		"s": "x",
		"n": float64(2),
		"a": []any{true, nil},
	}
	if diff := cmp.Diff(expect, ObjectValue(obj).Interface()); diff != "" {
		t.Errorf("interface mismatch (-expect +actual):\n%s", diff)
	}
}

func TestValueEqual(t *testing.T) {
	ab := NewObject()
	ab.Set("a", Int(1))
	ab.Set("b", String("x"))
	ba := NewObject()
	ba.Set("b", String("x"))
	ba.Set("a", Int(1))
	short := NewObject()
	short.Set("a", Int(1))

	cases := map[string]struct {
		A, B   Value
		Expect bool
	}{
		"nulls":                {A: Null(), B: Null(), Expect: true},
		"null and false":       {A: Null(), B: Bool(false), Expect: false},
		"number text":          {A: NumberValue("1.0"), B: Int(1), Expect: true},
		"number differ":        {A: Int(1), B: Int(2), Expect: false},
		"string and number":    {A: String("1"), B: Int(1), Expect: false},
		"array order":          {A: Array(Int(1), Int(2)), B: Array(Int(2), Int(1)), Expect: false},
		"object key order":     {A: ObjectValue(ab), B: ObjectValue(ba), Expect: true},
		"object missing key":   {A: ObjectValue(ab), B: ObjectValue(short), Expect: false},
		"empty array and null": {A: Array(), B: Null(), Expect: false},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			if e, a := c.Expect, c.A.Equal(c.B); e != a {
				t.Errorf("expect %v, got %v", e, a)
			}
			if e, a := c.Expect, c.B.Equal(c.A); e != a {
				t.Errorf("expect symmetric %v, got %v", e, a)
			}
		})
	}
}

func TestValueGoString(t *testing.T) {
	obj := NewObject()
	obj.Set("b", Array(Int(1), String("x")))
	obj.Set("a", Null())

	if e, a := `{"b":[1,"x"],"a":null}`, ObjectValue(obj).GoString(); e != a {
		t.Errorf("expect %v, got %v", e, a)
	}
}
