package testing

import (
	"fmt"

	"github.com/google/go-cmp/cmp"

	documentjson "github.com/awslabs/record-go/document/json"
	documentyaml "github.com/awslabs/record-go/document/yaml"
)

// JSONEqual compares two JSON documents and identifies if the documents contain
// the same values. Returns an error if the two documents are not equal.
func JSONEqual(expectBytes, actualBytes []byte) error {
	expect, err := documentjson.Decode(expectBytes)
	if err != nil {
		return fmt.Errorf("failed to unmarshal expected bytes, %v", err)
	}

	actual, err := documentjson.Decode(actualBytes)
	if err != nil {
		return fmt.Errorf("failed to unmarshal actual bytes, %v", err)
	}

	if !expect.Equal(actual) {
		return fmt.Errorf("JSON mismatch (-expect +actual):\n%s", cmp.Diff(expect.Interface(), actual.Interface()))
	}

	return nil
}

// AssertJSONEqual compares two JSON documents and identifies if the documents
// contain the same values. Emits a testing error, and returns false if the
// documents are not equal.
func AssertJSONEqual(t T, expect, actual []byte) bool {
	t.Helper()

	if err := JSONEqual(expect, actual); err != nil {
		t.Errorf("expect JSON documents to be equal, %v", err)
		return false
	}

	return true
}

// YAMLEqual compares two YAML documents by value. Mapping key order is not
// significant.
func YAMLEqual(expectBytes, actualBytes []byte) error {
	expect, err := documentyaml.Decode(expectBytes)
	if err != nil {
		return fmt.Errorf("failed to unmarshal expected bytes, %v", err)
	}

	actual, err := documentyaml.Decode(actualBytes)
	if err != nil {
		return fmt.Errorf("failed to unmarshal actual bytes, %v", err)
	}

	if !expect.Equal(actual) {
		return fmt.Errorf("YAML mismatch (-expect +actual):\n%s", cmp.Diff(expect.Interface(), actual.Interface()))
	}

	return nil
}

// AssertYAMLEqual compares two YAML documents. Emits a testing error, and
// returns false if the documents are not equal.
func AssertYAMLEqual(t T, expect, actual []byte) bool {
	t.Helper()

	if err := YAMLEqual(expect, actual); err != nil {
		t.Errorf("expect YAML documents to be equal, %v", err)
		return false
	}

	return true
}
