package testing

import (
	"strings"
	"testing"

	"github.com/awslabs/record-go/internal/models"
)

func TestAssertJSON(t *testing.T) {
	cases := map[string]struct {
		X, Y  []byte
		Equal bool
	}{
		"equal": {
			X:     []byte(`{"RecursiveStruct":{"RecursiveMap":{"foo":{"NoRecurse":"foo"},"bar":{"NoRecurse":"bar"}}}}`),
			Y:     []byte(`{"RecursiveStruct":{"RecursiveMap":{"bar":{"NoRecurse":"bar"},"foo":{"NoRecurse":"foo"}}}}`),
			Equal: true,
		},
		"not equal": {
			X:     []byte(`{"RecursiveStruct":{"RecursiveMap":{"foo":{"NoRecurse":"foo"},"bar":{"NoRecurse":"bar"}}}}`),
			Y:     []byte(`{"RecursiveStruct":{"RecursiveMap":{"foo":{"NoRecurse":"foo"}}}}`),
			Equal: false,
		},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			err := JSONEqual(c.X, c.Y)
			if c.Equal {
				if err != nil {
					t.Fatalf("expect JSON to be equal, %v", err)
				}
			} else if err == nil {
				t.Fatalf("expect JSON to be equal, %v", err)
			}
		})
	}
}

func TestAssertYAML(t *testing.T) {
	cases := map[string]struct {
		X, Y  []byte
		Equal bool
	}{
		"equal": {
			X:     []byte("name: Lobby\ntags:\n  - key: floor\n    value: \"1\"\n"),
			Y:     []byte("tags: [{value: \"1\", key: floor}]\nname: Lobby\n"),
			Equal: true,
		},
		"not equal": {
			X:     []byte("name: Lobby\n"),
			Y:     []byte("name: Attic\n"),
			Equal: false,
		},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			err := YAMLEqual(c.X, c.Y)
			if c.Equal {
				if err != nil {
					t.Fatalf("expect YAML to be equal, %v", err)
				}
			} else if err == nil {
				t.Fatalf("expect YAML to not be equal")
			}
		})
	}
}

func TestRecordEqual(t *testing.T) {
	a := models.NewTag().WithKey("k").WithValue("v").Record()
	b := models.NewTag().WithKey("k").WithValue("v").Record()
	if err := RecordEqual(a, b); err != nil {
		t.Fatalf("expect records to be equal, %v", err)
	}

	c := models.NewTag().WithKey("k").Record()
	err := RecordEqual(a, c)
	if err == nil {
		t.Fatalf("expect records to not be equal")
	}
	if e, a := "set members mismatch", err.Error(); !strings.Contains(a, e) {
		t.Errorf("expect error to contain %q, got %q", e, a)
	}

	d := models.NewTag().WithKey("k").WithValue("w").Record()
	err = RecordEqual(a, d)
	if err == nil {
		t.Fatalf("expect records to not be equal")
	}
	if e, a := "values mismatch", err.Error(); !strings.Contains(a, e) {
		t.Errorf("expect error to contain %q, got %q", e, a)
	}
}
