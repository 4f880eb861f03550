package testing

import (
	"fmt"

	"github.com/google/go-cmp/cmp"

	record "github.com/awslabs/record-go"
	"github.com/awslabs/record-go/document"
)

// T provides the testing interface for capturing failures with testing assert
// utilities.
type T interface {
	Error(args ...interface{})
	Errorf(format string, args ...interface{})
	Helper()
}

// DocumentEqual compares two document trees. Object key order is not
// significant. Returns an error describing the difference if the trees are
// not equal.
func DocumentEqual(expect, actual document.Value) error {
	if expect.Equal(actual) {
		return nil
	}
	return fmt.Errorf("document mismatch (-expect +actual):\n%s",
		cmp.Diff(expect.Interface(), actual.Interface()))
}

// AssertDocumentEqual compares two document trees. Emits a testing error,
// and returns false if the trees are not equal.
func AssertDocumentEqual(t T, expect, actual document.Value) bool {
	t.Helper()

	if err := DocumentEqual(expect, actual); err != nil {
		t.Errorf("expect documents to be equal, %v", err)
		return false
	}

	return true
}

// RecordEqual compares two records by schema, presence and value. Returns an
// error listing both document forms if they differ.
func RecordEqual(expect, actual *record.Record) error {
	if expect.Equal(actual) {
		return nil
	}
	if expect == nil || actual == nil {
		return fmt.Errorf("record mismatch, expect %v, got %v", expect, actual)
	}
	if e, a := expect.Schema().ID(), actual.Schema().ID(); e != a {
		return fmt.Errorf("record schema mismatch, expect %v, got %v", e, a)
	}
	if diff := cmp.Diff(expect.SetMembers(), actual.SetMembers()); diff != "" {
		return fmt.Errorf("record set members mismatch (-expect +actual):\n%s", diff)
	}
	return fmt.Errorf("record values mismatch (-expect +actual):\n%s",
		cmp.Diff(expect.ToDocument().Interface(), actual.ToDocument().Interface()))
}

// AssertRecordEqual compares two records. Emits a testing error, and returns
// false if the records are not equal.
func AssertRecordEqual(t T, expect, actual *record.Record) bool {
	t.Helper()

	if err := RecordEqual(expect, actual); err != nil {
		t.Errorf("expect records to be equal, %v", err)
		return false
	}

	return true
}
