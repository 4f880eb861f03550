package httpbinding

import (
	"bytes"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strings"

	record "github.com/awslabs/record-go"
	"github.com/awslabs/record-go/transport"
)

// An Encoder builds the path, query and headers of an HTTP request from the
// HTTP bound members of a record. Values are written through the typed
// HeaderValue, QueryValue and URIValue setters, Bind drives them from a
// record's traits.
type Encoder struct {
	path, rawPath, pathBuffer []byte

	query  url.Values
	header http.Header
}

// NewEncoder returns an encoder starting from an existing path template,
// query string and header set. Values written through the encoder are added
// on top of the existing ones. headers is cloned and may be nil.
func NewEncoder(path, query string, headers http.Header) (*Encoder, error) {
	parseQuery, err := url.ParseQuery(query)
	if err != nil {
		return nil, fmt.Errorf("failed to parse query string, %w", err)
	}

	header := headers.Clone()
	if header == nil {
		header = http.Header{}
	}

	return &Encoder{
		path:    []byte(path),
		rawPath: []byte(path),
		query:   parseQuery,
		header:  header,
	}, nil
}

// EncodeRequest binds the members of r onto req, using req's URL path as the
// label template.
func EncodeRequest(req *http.Request, r *record.Record) (*http.Request, error) {
	enc, err := NewEncoder(req.URL.Path, req.URL.RawQuery, req.Header)
	if err != nil {
		return nil, err
	}
	if err := Bind(enc, r); err != nil {
		return nil, err
	}
	return enc.Encode(req)
}

// Encode writes the encoded path, query and headers onto req. A path still
// holding a {label} placeholder is an error.
func (e *Encoder) Encode(req *http.Request) (*http.Request, error) {
	if i := bytes.IndexByte(e.path, '{'); i >= 0 {
		if j := bytes.IndexByte(e.path[i:], '}'); j >= 0 {
			return nil, fmt.Errorf("path label %s was not bound", e.path[i:i+j+1])
		}
	}

	req.URL.Path, req.URL.RawPath = string(e.path), string(e.rawPath)
	req.URL.RawQuery = e.query.Encode()
	req.Header = e.header

	return req, nil
}

// Fields returns the headers written so far, ordered by name.
func (e *Encoder) Fields() transport.Fields {
	names := make([]string, 0, len(e.header))
	for name := range e.header {
		names = append(names, name)
	}
	sort.Strings(names)

	var fields transport.Fields
	for _, name := range names {
		fields.Add(name, e.header[name]...)
	}
	return fields
}

// AddHeader returns a HeaderValue for appending to the given header name
func (e *Encoder) AddHeader(key string) HeaderValue {
	return newHeaderValue(e.header, key, true)
}

// SetHeader returns a HeaderValue for setting the given header name
func (e *Encoder) SetHeader(key string) HeaderValue {
	return newHeaderValue(e.header, key, false)
}

// Headers returns a Header used encoding headers with the given prefix
func (e *Encoder) Headers(prefix string) Headers {
	return Headers{
		header: e.header,
		prefix: strings.TrimSpace(prefix),
	}
}

// SetURI returns a URIValue used for setting the given path key
func (e *Encoder) SetURI(key string) URIValue {
	return newURIValue(&e.path, &e.rawPath, &e.pathBuffer, key)
}

// SetQuery returns a QueryValue used for setting the given query key
func (e *Encoder) SetQuery(key string) QueryValue {
	return newQueryValue(e.query, key, false)
}

// AddQuery returns a QueryValue used for appending the given query key
func (e *Encoder) AddQuery(key string) QueryValue {
	return newQueryValue(e.query, key, true)
}
