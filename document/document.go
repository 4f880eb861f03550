package document

import (
	"math"
	"strconv"
)

// Number is an arbitrary precision numerical value, held in its textual form.
type Number string

// String returns the number as a string.
func (n Number) String() string {
	return string(n)
}

// Int64 returns the number as an int64.
func (n Number) Int64() (int64, error) {
	return n.intOfBitSize(64)
}

func (n Number) intOfBitSize(bitSize int) (int64, error) {
	return strconv.ParseInt(string(n), 10, bitSize)
}

// Uint64 returns the number as a uint64.
func (n Number) Uint64() (uint64, error) {
	return n.uintOfBitSize(64)
}

func (n Number) uintOfBitSize(bitSize int) (uint64, error) {
	return strconv.ParseUint(string(n), 10, bitSize)
}

// Float32 returns the number parsed as a 32-bit float, returns a float64.
func (n Number) Float32() (float64, error) {
	return n.floatOfBitSize(32)
}

// Float64 returns the number as a float64.
func (n Number) Float64() (float64, error) {
	return n.floatOfBitSize(64)
}

func (n Number) floatOfBitSize(bitSize int) (float64, error) {
	return strconv.ParseFloat(string(n), bitSize)
}

// FormatInt returns the Number for an integer.
func FormatInt(v int64) Number {
	return Number(strconv.FormatInt(v, 10))
}

// FormatFloat returns the shortest Number that parses back to v. Like
// encoding/json it switches to exponent form for very large and very small
// magnitudes. v must be finite.
func FormatFloat(v float64) Number {
	abs := math.Abs(v)
	format := byte('f')
	if abs != 0 && (abs < 1e-6 || abs >= 1e21) {
		format = 'e'
	}
	return Number(strconv.FormatFloat(v, format, -1, 64))
}
