// Package time formats and parses the timestamp representations record
// members are exchanged in: RFC 3339 date-time, IMF-fixdate http-date and
// fractional epoch seconds.
package time

import (
	"fmt"
	"math"
	"strings"
	"time"
)

const (
	// dateTimeFormatInput is a date-time as defined by RFC3339 section 5.6,
	// accepting any fractional second precision.
	dateTimeFormatInput = "2006-01-02T15:04:05.999999999Z07:00"

	// dateTimeFormatOutput is the RFC3339 form emitted, millisecond precision
	// with trailing zeros trimmed.
	dateTimeFormatOutput = "2006-01-02T15:04:05.999Z"

	// httpDateFormat is a IMF-fixdate formatted time https://tools.ietf.org/html/rfc7231.html#section-7.1.1.1
	httpDateFormat = "Mon, 02 Jan 2006 15:04:05 GMT"

	// httpDateFormatSingleDigitDay is the IMF-fixdate form some services send
	// without zero padding the day.
	httpDateFormatSingleDigitDay = "Mon, _2 Jan 2006 15:04:05 GMT"
)

// FormatDateTime formats value as a date-time in UTC.
func FormatDateTime(value time.Time) string {
	return value.UTC().Format(dateTimeFormatOutput)
}

// ParseDateTime parses a string as a date-time. Offsets other than Z are
// accepted and normalized to UTC.
func ParseDateTime(value string) (time.Time, error) {
	return tryParse(value, dateTimeFormatInput, time.RFC3339Nano)
}

// FormatHTTPDate formats value as a http-date.
func FormatHTTPDate(value time.Time) string {
	return value.UTC().Format(httpDateFormat)
}

// ParseHTTPDate parses a string as a http-date.
func ParseHTTPDate(value string) (time.Time, error) {
	return tryParse(value, httpDateFormat, httpDateFormatSingleDigitDay, time.RFC850, time.ANSIC)
}

// FormatEpochSeconds returns value as a Unix time in seconds with millisecond
// precision.
func FormatEpochSeconds(value time.Time) float64 {
	return float64(value.UnixMilli()) / 1e3
}

// ParseEpochSeconds returns the time for a Unix time in seconds, rounded to
// the nearest millisecond so values written by FormatEpochSeconds survive
// the float round trip.
func ParseEpochSeconds(value float64) time.Time {
	ms := int64(math.Round(value * 1e3))
	// Offset to `UTC` because time.UnixMilli returns the time value based on
	// system local setting.
	return time.UnixMilli(ms).UTC()
}

func tryParse(v string, formats ...string) (time.Time, error) {
	var errs parseErrors
	for _, f := range formats {
		t, err := time.Parse(f, v)
		if err != nil {
			errs = append(errs, parseError{
				Format: f,
				Err:    err,
			})
			continue
		}
		return t.UTC(), nil
	}

	return time.Time{}, fmt.Errorf("unable to parse time string, %w", errs)
}

type parseErrors []parseError

func (p parseErrors) Error() string {
	var s strings.Builder
	for _, e := range p {
		fmt.Fprintf(&s, "\n * %q: %v", e.Format, e.Err)
	}

	return "parse errors:" + s.String()
}

type parseError struct {
	Format string
	Err    error
}
