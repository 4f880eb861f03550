package record

import (
	"fmt"

	"github.com/awslabs/record-go/traits"
)

// IdempotencyTokenProvider supplies tokens for members carrying the
// idempotencyToken trait.
type IdempotencyTokenProvider interface {
	GetIdempotencyToken() (string, error)
}

// ApplyIdempotencyTokens sets every unset top-level string member of r that
// carries the idempotencyToken trait to a token from p. Members the caller
// already set, including to "", are left alone.
//
// Records never generate tokens on their own. Request builders call this
// before serializing so retried requests reuse the same token.
func ApplyIdempotencyTokens(r *Record, p IdempotencyTokenProvider) error {
	for i, m := range r.schema.members {
		if r.set.has(i) || m.typ != ShapeTypeString {
			continue
		}
		if _, ok := SchemaTrait[*traits.IdempotencyToken](m); !ok {
			continue
		}

		token, err := p.GetIdempotencyToken()
		if err != nil {
			return fmt.Errorf("failed to get idempotency token for %s, %w", m.id, err)
		}
		r.setIndex(i, token)
	}
	return nil
}
