// Package rand provides the random UUID source idempotency tokens are drawn
// from.
package rand

import (
	"crypto/rand"
	"fmt"
	"io"

	"github.com/google/uuid"
)

// Reader provides a random reader that can reset during testing.
var Reader io.Reader = rand.Reader

// UUIDIdempotencyToken provides idempotency tokens as version 4 UUIDs.
type UUIDIdempotencyToken struct {
	uuid *UUID
}

// NewUUIDIdempotencyToken returns a token provider reading randomness from r.
func NewUUIDIdempotencyToken(r io.Reader) *UUIDIdempotencyToken {
	return &UUIDIdempotencyToken{uuid: NewUUID(r)}
}

// GetIdempotencyToken returns a new random UUID.
func (u UUIDIdempotencyToken) GetIdempotencyToken() (string, error) {
	return u.uuid.GetUUID()
}

// UUID provides computing random UUID version 4 values.
type UUID struct {
	randSrc io.Reader
}

// NewUUID returns an initialized UUID value that can be used to retrieve
// random UUID version 4 values.
func NewUUID(r io.Reader) *UUID {
	return &UUID{randSrc: r}
}

// GetUUID returns a random UUID version 4 string. Returns an error if the
// random source cannot fill the 16 bytes needed.
func (r *UUID) GetUUID() (string, error) {
	id, err := uuid.NewRandomFromReader(r.randSrc)
	if err != nil {
		return "", fmt.Errorf("unable to read random bytes for UUID, %w", err)
	}
	return id.String(), nil
}
