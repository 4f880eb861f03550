package httpbinding

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	record "github.com/awslabs/record-go"
	smithytime "github.com/awslabs/record-go/time"
	"github.com/awslabs/record-go/traits"
	"github.com/awslabs/record-go/transport"
)

// TargetHeader carries the operation a JSON RPC request is dispatched to.
const TargetHeader = "X-Amz-Target"

// BuildHeaders returns the header fields projected from r.
//
// A structure carrying an OperationTarget trait yields the X-Amz-Target field
// first. Then each set member with an httpHeader trait yields one field named
// by the trait, in declaration order. Unset members are skipped. Map members
// with an httpPrefixHeaders trait yield one field per entry, named prefix+key
// in sorted key order.
//
// Values are formatted as: strings verbatim, integers in decimal, floats in
// shortest form, booleans as true or false, timestamps as http-date unless the
// member has a timestampFormat trait. A list yields one field holding a value
// per element. Structure and map members, and lists of them, have no header
// form and are skipped even when they carry an httpHeader trait.
func BuildHeaders(r *record.Record) transport.Fields {
	var fields transport.Fields

	if t, ok := record.SchemaTrait[*traits.OperationTarget](r.Schema()); ok {
		fields.Add(TargetHeader, t.String())
	}

	for _, m := range r.Schema().Members() {
		name := m.MemberName()
		if !r.IsSet(name) {
			continue
		}

		if t, ok := record.SchemaTrait[*traits.HTTPHeader](m); ok {
			if headerBindable(m) {
				fields.Add(t.Name, headerValues(m, r.Get(name))...)
			}
			continue
		}

		if t, ok := record.SchemaTrait[*traits.HTTPPrefixHeaders](m); ok && prefixHeadersBindable(m) {
			mp := r.GetMap(name)
			for _, k := range sortedKeys(mp) {
				fields.Add(t.Prefix+k, headerValues(m.Element(), mp[k])...)
			}
		}
	}

	return fields
}

// Bind projects the HTTP bound members of r into enc: httpHeader and
// httpPrefixHeaders members become headers, httpQuery members query
// parameters and httpLabel members replace their path element. A label
// member left unset is an error, the request path cannot be built without
// it. Only scalars bind to labels, headers and query parameters (lists of
// scalars for headers and query), other members are skipped.
func Bind(enc *Encoder, r *record.Record) error {
	if t, ok := record.SchemaTrait[*traits.OperationTarget](r.Schema()); ok {
		enc.SetHeader(TargetHeader).String(t.String())
	}

	for _, m := range r.Schema().Members() {
		name := m.MemberName()

		if _, ok := record.SchemaTrait[*traits.HTTPLabel](m); ok {
			if !r.IsSet(name) {
				return fmt.Errorf("input member %s must be set to build the request path", name)
			}
			if !isScalar(m) {
				return fmt.Errorf("input member %s is a %v and cannot be bound to the request path", name, m.Type())
			}
			v := formatScalar(m, r.Get(name), traits.TimestampFormatDateTime)
			if v == "" {
				return fmt.Errorf("input member %s must not be empty", name)
			}
			if err := enc.SetURI(name).String(v); err != nil {
				return err
			}
			continue
		}

		if !r.IsSet(name) {
			continue
		}

		if t, ok := record.SchemaTrait[*traits.HTTPHeader](m); ok {
			if headerBindable(m) {
				bindHeader(enc.AddHeader(t.Name), m, r.Get(name))
			}
			continue
		}

		if t, ok := record.SchemaTrait[*traits.HTTPPrefixHeaders](m); ok && prefixHeadersBindable(m) {
			hv := enc.Headers(t.Prefix)
			mp := r.GetMap(name)
			for _, k := range sortedKeys(mp) {
				bindHeader(hv.AddHeader(k), m.Element(), mp[k])
			}
			continue
		}

		if t, ok := record.SchemaTrait[*traits.HTTPQuery](m); ok {
			if !headerBindable(m) {
				continue
			}
			if m.Type() == record.ShapeTypeList {
				for _, e := range r.GetList(name) {
					enc.AddQuery(t.Name).String(formatScalar(m.Element(), e, traits.TimestampFormatDateTime))
				}
				continue
			}
			enc.SetQuery(t.Name).String(formatScalar(m, r.Get(name), traits.TimestampFormatDateTime))
		}
	}

	return nil
}

// isScalar reports whether s formats as a single string.
func isScalar(s *record.Schema) bool {
	switch s.Type() {
	case record.ShapeTypeList, record.ShapeTypeMap, record.ShapeTypeStructure:
		return false
	}
	return true
}

// headerBindable reports whether s is a scalar or a list of scalars.
func headerBindable(s *record.Schema) bool {
	if s.Type() == record.ShapeTypeList {
		return isScalar(s.Element())
	}
	return isScalar(s)
}

func prefixHeadersBindable(s *record.Schema) bool {
	return s.Type() == record.ShapeTypeMap && headerBindable(s.Element())
}

// bindHeader appends v to hv, a value per element for lists.
func bindHeader(hv HeaderValue, s *record.Schema, v any) {
	switch s.Type() {
	case record.ShapeTypeInteger:
		hv.Long(v.(int64))
	case record.ShapeTypeFloat:
		hv.Double(v.(float64))
	case record.ShapeTypeBoolean:
		hv.Boolean(v.(bool))
	default:
		for _, str := range headerValues(s, v) {
			hv.String(str)
		}
	}
}

func headerValues(s *record.Schema, v any) []string {
	if s.Type() != record.ShapeTypeList {
		return []string{formatScalar(s, v, traits.TimestampFormatHTTPDate)}
	}

	list := v.([]any)
	values := make([]string, len(list))
	for i, e := range list {
		str := formatScalar(s.Element(), e, traits.TimestampFormatHTTPDate)
		if s.Element().Type() == record.ShapeTypeString {
			str = quoteHeaderListValue(str)
		}
		values[i] = str
	}
	return values
}

// formatScalar formats v of scalar schema s. Callers check isScalar first.
func formatScalar(s *record.Schema, v any, defaultTimestampFormat string) string {
	switch s.Type() {
	case record.ShapeTypeString:
		return v.(string)
	case record.ShapeTypeInteger:
		return strconv.FormatInt(v.(int64), 10)
	case record.ShapeTypeFloat:
		return formatFloat(v.(float64))
	case record.ShapeTypeBoolean:
		return strconv.FormatBool(v.(bool))
	case record.ShapeTypeTimestamp:
		t := v.(time.Time)
		switch timestampFormat(s, defaultTimestampFormat) {
		case traits.TimestampFormatDateTime:
			return smithytime.FormatDateTime(t)
		case traits.TimestampFormatEpochSeconds:
			return strconv.FormatFloat(smithytime.FormatEpochSeconds(t), 'f', -1, 64)
		default:
			return smithytime.FormatHTTPDate(t)
		}
	}
	return ""
}

func timestampFormat(s *record.Schema, fallback string) string {
	if t, ok := record.SchemaTrait[*traits.TimestampFormat](s); ok && t.Format != "" {
		return t.Format
	}
	return fallback
}

// quoteHeaderListValue quotes list elements that would otherwise be split
// apart when the list is read back.
func quoteHeaderListValue(v string) string {
	if !strings.ContainsAny(v, `,"`) {
		return v
	}
	return `"` + strings.ReplaceAll(strings.ReplaceAll(v, `\`, `\\`), `"`, `\"`) + `"`
}

func sortedKeys(mp map[string]any) []string {
	keys := make([]string, 0, len(mp))
	for k := range mp {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
