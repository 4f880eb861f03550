package httpbinding

import (
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"

	record "github.com/awslabs/record-go"
	smithytime "github.com/awslabs/record-go/time"
	"github.com/awslabs/record-go/traits"
)

// BindResponse sets the HTTP bound members of r from a response: the
// httpResponseCode member from status, httpHeader members from their header
// and httpPrefixHeaders maps from every header carrying the prefix, keyed by
// the lower cased remainder of the header name. Members whose header is
// absent stay unset. A header value that does not parse as the member's kind
// fails with a *record.MalformedPayloadError. Structure and map members have
// no header form and are left unset.
func BindResponse(r *record.Record, status int, header http.Header) error {
	for _, m := range r.Schema().Members() {
		name := m.MemberName()

		if _, ok := record.SchemaTrait[*traits.HTTPResponseCode](m); ok {
			if err := r.Set(name, status); err != nil {
				return err
			}
			continue
		}

		if t, ok := record.SchemaTrait[*traits.HTTPHeader](m); ok {
			values := header.Values(t.Name)
			if len(values) == 0 || !headerBindable(m) {
				continue
			}
			v, err := parseHeader(t.Name, m, values)
			if err != nil {
				return err
			}
			if err := r.Set(name, v); err != nil {
				return err
			}
			continue
		}

		if t, ok := record.SchemaTrait[*traits.HTTPPrefixHeaders](m); ok && prefixHeadersBindable(m) {
			prefix := strings.ToLower(t.Prefix)
			for key, values := range header {
				lk := strings.ToLower(key)
				if !strings.HasPrefix(lk, prefix) || len(values) == 0 {
					continue
				}
				v, err := parseHeader(key, m.Element(), values)
				if err != nil {
					return err
				}
				if err := r.Put(name, lk[len(prefix):], v); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func parseHeader(key string, s *record.Schema, values []string) (any, error) {
	if s.Type() != record.ShapeTypeList {
		return parseScalar(key, s, strings.TrimSpace(values[0]))
	}

	var parts []string
	for _, v := range values {
		var split []string
		var err error
		if s.Element().Type() == record.ShapeTypeTimestamp &&
			timestampFormat(s.Element(), traits.TimestampFormatHTTPDate) == traits.TimestampFormatHTTPDate {
			split, err = splitHTTPDateTimestampHeaderListValues(v)
		} else {
			split, err = splitHeaderListValues(v)
		}
		if err != nil {
			return nil, &record.MalformedPayloadError{Path: headerPath(key), Expected: "list", Actual: strconv.Quote(v), Err: err}
		}
		parts = append(parts, split...)
	}

	list := make([]any, len(parts))
	for i, p := range parts {
		e, err := parseScalar(key, s.Element(), p)
		if err != nil {
			return nil, err
		}
		list[i] = e
	}
	return list, nil
}

func parseScalar(key string, s *record.Schema, v string) (any, error) {
	var (
		out any
		err error
	)
	switch s.Type() {
	case record.ShapeTypeString:
		return v, nil
	case record.ShapeTypeInteger:
		out, err = strconv.ParseInt(v, 10, 64)
	case record.ShapeTypeFloat:
		out, err = parseFloat(v)
	case record.ShapeTypeBoolean:
		out, err = strconv.ParseBool(v)
		if err == nil && v != "true" && v != "false" {
			err = fmt.Errorf("boolean must be true or false")
		}
	case record.ShapeTypeTimestamp:
		switch timestampFormat(s, traits.TimestampFormatHTTPDate) {
		case traits.TimestampFormatDateTime:
			out, err = smithytime.ParseDateTime(v)
		case traits.TimestampFormatEpochSeconds:
			var f float64
			if f, err = strconv.ParseFloat(v, 64); err == nil {
				out = smithytime.ParseEpochSeconds(f)
			}
		default:
			out, err = smithytime.ParseHTTPDate(v)
		}
	default:
		err = fmt.Errorf("%v members cannot be bound to headers", s.Type())
	}
	if err != nil {
		return nil, &record.MalformedPayloadError{Path: headerPath(key), Expected: s.Type().String(), Actual: strconv.Quote(v), Err: err}
	}
	return out, nil
}

func parseFloat(v string) (float64, error) {
	switch v {
	case "NaN":
		return math.NaN(), nil
	case "Infinity":
		return math.Inf(1), nil
	case "-Infinity":
		return math.Inf(-1), nil
	}
	return strconv.ParseFloat(v, 64)
}

func headerPath(key string) string {
	return "header " + http.CanonicalHeaderKey(key)
}

// splitHeaderListValues splits a comma separated header value. Elements may
// be double quoted to carry commas, quotes inside are backslash escaped.
func splitHeaderListValues(header string) ([]string, error) {
	var values []string
	for len(header) > 0 {
		header = strings.TrimLeft(header, " \t")
		if len(header) == 0 {
			break
		}

		if header[0] != '"' {
			i := strings.IndexByte(header, ',')
			if i < 0 {
				values = append(values, strings.TrimSpace(header))
				break
			}
			values = append(values, strings.TrimSpace(header[:i]))
			header = header[i+1:]
			continue
		}

		var sb strings.Builder
		i := 1
		for ; i < len(header); i++ {
			c := header[i]
			if c == '\\' && i+1 < len(header) {
				i++
				sb.WriteByte(header[i])
				continue
			}
			if c == '"' {
				break
			}
			sb.WriteByte(c)
		}
		if i >= len(header) {
			return nil, fmt.Errorf("unterminated quoted value")
		}
		values = append(values, sb.String())

		rest := strings.TrimLeft(header[i+1:], " \t")
		if len(rest) > 0 && rest[0] != ',' {
			return nil, fmt.Errorf("unexpected %q after quoted value", rest[0])
		}
		if len(rest) > 0 {
			rest = rest[1:]
		}
		header = rest
	}
	return values, nil
}

// splitHTTPDateTimestampHeaderListValues splits a list of http-date values.
// Each date contains one comma itself, so every second comma separates
// elements.
func splitHTTPDateTimestampHeaderListValues(header string) ([]string, error) {
	parts := strings.Split(header, ",")
	if len(parts)%2 != 0 {
		return nil, fmt.Errorf("%d comma separated parts do not form http-date pairs", len(parts))
	}

	values := make([]string, 0, len(parts)/2)
	for i := 0; i < len(parts); i += 2 {
		values = append(values, strings.TrimSpace(parts[i])+", "+strings.TrimSpace(parts[i+1]))
	}
	return values, nil
}
