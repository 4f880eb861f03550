package httpbinding

import (
	"net/url"
	"strconv"
)

// QueryValue is used to encode query key values
type QueryValue struct {
	query  url.Values
	key    string
	append bool
}

// NewQueryValue creates a new QueryValue which enables encoding
// a query value into the given url.Values.
func NewQueryValue(query url.Values, key string, append bool) QueryValue {
	return QueryValue{
		query:  query,
		key:    key,
		append: append,
	}
}

func newQueryValue(query url.Values, key string, append bool) QueryValue {
	return NewQueryValue(query, key, append)
}

func (qv QueryValue) updateKey(value string) {
	if qv.append {
		qv.query.Add(qv.key, value)
	} else {
		qv.query.Set(qv.key, value)
	}
}

// String encodes v as a query string value
func (qv QueryValue) String(v string) {
	qv.updateKey(v)
}

// Long encodes v as a query string value
func (qv QueryValue) Long(v int64) {
	qv.updateKey(strconv.FormatInt(v, 10))
}

// Boolean encodes v as a query string value
func (qv QueryValue) Boolean(v bool) {
	qv.updateKey(strconv.FormatBool(v))
}

// Double encodes v as a query string value
func (qv QueryValue) Double(v float64) {
	qv.updateKey(formatFloat(v))
}
