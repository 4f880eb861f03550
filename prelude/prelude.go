// Package prelude provides the schemas of the built-in scalar shapes that
// record members target.
package prelude

import record "github.com/awslabs/record-go"

// Scalar schemas.
var (
	String    = record.NewSchema("smithy.api#String", record.ShapeTypeString)
	Integer   = record.NewSchema("smithy.api#Long", record.ShapeTypeInteger)
	Float     = record.NewSchema("smithy.api#Double", record.ShapeTypeFloat)
	Boolean   = record.NewSchema("smithy.api#Boolean", record.ShapeTypeBoolean)
	Timestamp = record.NewSchema("smithy.api#Timestamp", record.ShapeTypeTimestamp)
)

// ByName returns the scalar schema for a model type name: String, Integer,
// Float, Boolean or Timestamp. The Smithy aliases Long and Double are
// accepted too.
func ByName(name string) (*record.Schema, bool) {
	switch name {
	case "String":
		return String, true
	case "Integer", "Long":
		return Integer, true
	case "Float", "Double":
		return Float, true
	case "Boolean":
		return Boolean, true
	case "Timestamp":
		return Timestamp, true
	}
	return nil, false
}
