package json

import (
	"strings"
	"testing"

	"github.com/awslabs/record-go/document"
)

func TestDecodeKeepsKeyOrder(t *testing.T) {
	v, err := Decode([]byte(`{"z":1,"a":{"y":true,"b":null},"m":[1,"x"]}`))
	if err != nil {
		t.Fatalf("expect no error, got %v", err)
	}

	if e, a := `{"z":1,"a":{"y":true,"b":null},"m":[1,"x"]}`, v.GoString(); e != a {
		t.Errorf("expect %v, got %v", e, a)
	}
}

func TestDecodeNumbers(t *testing.T) {
	v, err := Decode([]byte(`[9223372036854775807, 1.5e3, -0]`))
	if err != nil {
		t.Fatalf("expect no error, got %v", err)
	}
	arr, _ := v.AsArray()

	n, _ := arr[0].AsNumber()
	i, err := n.Int64()
	if err != nil {
		t.Fatalf("expect no error, got %v", err)
	}
	if e, a := int64(9223372036854775807), i; e != a {
		t.Errorf("expect %v, got %v", e, a)
	}
	if e, a := "1.5e3", arr[1].GoString(); e != a {
		t.Errorf("expect number text kept, got %v", a)
	}
}

func TestDecodeDuplicateKey(t *testing.T) {
	v, err := Decode([]byte(`{"a":1,"b":2,"a":3}`))
	if err != nil {
		t.Fatalf("expect no error, got %v", err)
	}
	if e, a := `{"a":3,"b":2}`, v.GoString(); e != a {
		t.Errorf("expect %v, got %v", e, a)
	}
}

func TestDecodeErrors(t *testing.T) {
	cases := map[string]struct {
		Input     string
		ExpectErr string
	}{
		"empty": {
			Input:     "",
			ExpectErr: "empty JSON document",
		},
		"whitespace only": {
			Input:     " \n\t",
			ExpectErr: "empty JSON document",
		},
		"trailing": {
			Input:     `{} {}`,
			ExpectErr: "invalid JSON document",
		},
		"truncated object": {
			Input:     `{"a":`,
			ExpectErr: "invalid JSON document",
		},
		"truncated array": {
			Input:     `[1,`,
			ExpectErr: "invalid JSON document",
		},
		"missing colon": {
			Input:     `{"a" 1}`,
			ExpectErr: "invalid JSON document",
		},
		"missing array comma": {
			Input:     `[1 2]`,
			ExpectErr: "invalid JSON document",
		},
		"missing object comma": {
			Input:     `{"a":1 "b":2}`,
			ExpectErr: "invalid JSON document",
		},
		"trailing object comma": {
			Input:     `{"a":1,}`,
			ExpectErr: "invalid JSON document",
		},
		"empty array element": {
			Input:     `[1,,2]`,
			ExpectErr: "invalid JSON document",
		},
		"bare word": {
			Input:     `nope`,
			ExpectErr: "invalid JSON document",
		},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Decode([]byte(c.Input))
			if err == nil {
				t.Fatalf("expect error")
			}
			if e, a := c.ExpectErr, err.Error(); !strings.Contains(a, e) {
				t.Errorf("expect %q in error, got %v", e, a)
			}
		})
	}
}

func TestDecodeMaxDepth(t *testing.T) {
	dec := NewDecoder(func(o *DecoderOptions) {
		o.MaxDepth = 2
	})

	if _, err := dec.Decode(strings.NewReader(`[[1]]`)); err != nil {
		t.Errorf("expect no error, got %v", err)
	}
	_, err := dec.Decode(strings.NewReader(`[[[1]]]`))
	if err == nil {
		t.Fatalf("expect error")
	}
	if e, a := "max depth 2", err.Error(); !strings.Contains(a, e) {
		t.Errorf("expect %q in error, got %v", e, a)
	}
}

func TestEncode(t *testing.T) {
	obj := document.NewObject()
	obj.Set("name", document.String("a\"b"))
	obj.Set("count", document.Int(3))
	obj.Set("list", document.Array(document.Bool(false), document.Null()))
	obj.Set("empty", document.ObjectValue(nil))
	v := document.ObjectValue(obj)

	p, err := Encode(v)
	if err != nil {
		t.Fatalf("expect no error, got %v", err)
	}
	if e, a := `{"name":"a\"b","count":3,"list":[false,null],"empty":{}}`, string(p); e != a {
		t.Errorf("expect %v, got %v", e, a)
	}

	back, err := Decode(p)
	if err != nil {
		t.Fatalf("expect no error, got %v", err)
	}
	if !v.Equal(back) {
		t.Errorf("expect round trip, got %#v", back)
	}
}

func TestEncodeIndent(t *testing.T) {
	obj := document.NewObject()
	obj.Set("a", document.Array(document.Int(1)))
	obj.Set("b", document.Array())

	p, err := NewEncoder(func(o *EncoderOptions) {
		o.Indent = "  "
	}).Encode(document.ObjectValue(obj))
	if err != nil {
		t.Fatalf("expect no error, got %v", err)
	}

	expect := "{\n  \"a\": [\n    1\n  ],\n  \"b\": []\n}"
	if e, a := expect, string(p); e != a {
		t.Errorf("expect\n%s\ngot\n%s", e, a)
	}
}

func TestEncodeInvalidNumber(t *testing.T) {
	_, err := Encode(document.NumberValue("0x10"))
	if err == nil {
		t.Fatalf("expect error")
	}
}
