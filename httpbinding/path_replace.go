package httpbinding

import (
	"bytes"
	"fmt"
)

const (
	uriTokenStart = '{'
	uriTokenStop  = '}'
	uriTokenSkip  = '+'
)

// replacePathElement replaces the first {key} or {key+} element of path with
// val. Greedy elements keep '/' unescaped. fieldBuf is scratch space reused
// between calls.
func replacePathElement(path, fieldBuf []byte, key, val string, escape bool) ([]byte, []byte, error) {
	for _, greedy := range [...]bool{false, true} {
		fieldBuf = append(fieldBuf[:0], uriTokenStart)
		fieldBuf = append(fieldBuf, key...)
		if greedy {
			fieldBuf = append(fieldBuf, uriTokenSkip)
		}
		fieldBuf = append(fieldBuf, uriTokenStop)

		start := bytes.Index(path, fieldBuf)
		if start < 0 {
			continue
		}
		end := start + len(fieldBuf)

		if escape {
			val = EscapePath(val, !greedy)
		}

		// keep the tail before val overwrites it in place
		fieldBuf = append(fieldBuf[:0], path[end:]...)
		path = append(path[:start], val...)
		path = append(path, fieldBuf...)
		return path, fieldBuf, nil
	}

	return path, fieldBuf, fmt.Errorf("invalid path, no element %c%s%c in %s", uriTokenStart, key, uriTokenStop, path)
}

// EscapePath escapes part of a URL path. Only unreserved characters are left
// as is, '/' is left too unless encodeSep is set.
func EscapePath(path string, encodeSep bool) string {
	var buf bytes.Buffer
	for i := 0; i < len(path); i++ {
		c := path[i]
		if noEscape[c] || (c == '/' && !encodeSep) {
			buf.WriteByte(c)
		} else {
			fmt.Fprintf(&buf, "%%%02X", c)
		}
	}
	return buf.String()
}

var noEscape [256]bool

func init() {
	for i := 0; i < len(noEscape); i++ {
		// AWS expects every character except these to be escaped
		noEscape[i] = (i >= 'A' && i <= 'Z') ||
			(i >= 'a' && i <= 'z') ||
			(i >= '0' && i <= '9') ||
			i == '-' ||
			i == '.' ||
			i == '_' ||
			i == '~'
	}
}
