// Package query evaluates JMESPath expressions against records.
//
// Records are searched in their document form: member names are the object
// keys, unset members are absent, numbers are float64 and timestamps take
// their serialized form.
package query

import (
	"fmt"
	"strconv"

	"github.com/jmespath/go-jmespath"

	record "github.com/awslabs/record-go"
	"github.com/awslabs/record-go/document"
)

// Expression is a compiled JMESPath expression. It is safe for concurrent
// use.
type Expression struct {
	expr     string
	compiled *jmespath.JMESPath
}

// Compile parses expr.
func Compile(expr string) (*Expression, error) {
	compiled, err := jmespath.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("invalid expression %q, %w", expr, err)
	}
	return &Expression{expr: expr, compiled: compiled}, nil
}

// MustCompile is like Compile but panics on error.
func MustCompile(expr string) *Expression {
	e, err := Compile(expr)
	if err != nil {
		panic(err)
	}
	return e
}

// String returns the source of the expression.
func (e *Expression) String() string {
	return e.expr
}

// Search evaluates the expression against r.
func (e *Expression) Search(r *record.Record, optFns ...func(*record.DocumentOptions)) (any, error) {
	return e.SearchDocument(r.ToDocument(optFns...))
}

// SearchDocument evaluates the expression against a document tree.
func (e *Expression) SearchDocument(v document.Value) (any, error) {
	out, err := e.compiled.Search(v.Interface())
	if err != nil {
		return nil, fmt.Errorf("failed to evaluate %q, %w", e.expr, err)
	}
	return out, nil
}

// Search compiles expr and evaluates it against r.
func Search(r *record.Record, expr string, optFns ...func(*record.DocumentOptions)) (any, error) {
	e, err := Compile(expr)
	if err != nil {
		return nil, err
	}
	return e.Search(r, optFns...)
}

// SearchDocument compiles expr and evaluates it against v.
func SearchDocument(v document.Value, expr string) (any, error) {
	e, err := Compile(expr)
	if err != nil {
		return nil, err
	}
	return e.SearchDocument(v)
}

// Matches reports whether the expression selects a value equal to expected
// in r. Strings compare verbatim, booleans and numbers compare after parsing
// expected. A list result matches when it is non empty and every element
// matches. A null result never matches.
func Matches(r *record.Record, expr, expected string) (bool, error) {
	out, err := Search(r, expr)
	if err != nil {
		return false, err
	}
	return matches(out, expected), nil
}

func matches(v any, expected string) bool {
	switch t := v.(type) {
	case string:
		return t == expected
	case bool:
		b, err := strconv.ParseBool(expected)
		return err == nil && b == t
	case float64:
		f, err := strconv.ParseFloat(expected, 64)
		return err == nil && f == t
	case []any:
		if len(t) == 0 {
			return false
		}
		for _, e := range t {
			if !matches(e, expected) {
				return false
			}
		}
		return true
	}
	return false
}
