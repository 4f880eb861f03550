package rand_test

import (
	"bytes"
	"strings"
	"testing"

	record "github.com/awslabs/record-go"
	"github.com/awslabs/record-go/internal/models"
	"github.com/awslabs/record-go/rand"
)

func TestUUID(t *testing.T) {
	randSrc := make([]byte, 32)
	for i := 16; i < len(randSrc); i++ {
		randSrc[i] = 1
	}

	uuid := rand.NewUUID(bytes.NewReader(randSrc))

	v, err := uuid.GetUUID()
	if err != nil {
		t.Fatalf("expect no error getting zero UUID, got %v", err)
	}
	if e, a := `00000000-0000-4000-8000-000000000000`, v; e != a {
		t.Errorf("expect %v, got %v", e, a)
	}

	v, err = uuid.GetUUID()
	if err != nil {
		t.Fatalf("expect no error getting ones UUID, got %v", err)
	}
	if e, a := `01010101-0101-4101-8101-010101010101`, v; e != a {
		t.Errorf("expect %v, got %v", e, a)
	}
}

func TestUUIDShortRead(t *testing.T) {
	uuid := rand.NewUUID(bytes.NewReader(make([]byte, 8)))
	if _, err := uuid.GetUUID(); err == nil {
		t.Fatalf("expect error for short random source")
	}
}

func TestIdempotencyToken(t *testing.T) {
	provider := rand.NewUUIDIdempotencyToken(bytes.NewReader(make([]byte, 16)))

	in := models.NewCreateGatewayGroupInput().WithName("Lobby")
	if err := record.ApplyIdempotencyTokens(in.Record(), provider); err != nil {
		t.Fatalf("expect no error, got %v", err)
	}
	if e, a := "00000000-0000-4000-8000-000000000000", in.ClientRequestToken(); e != a {
		t.Errorf("expect %v, got %v", e, a)
	}

	// the source is drained, a caller supplied token must not need a new one
	in = models.NewCreateGatewayGroupInput().WithClientRequestToken("abc-123")
	if err := record.ApplyIdempotencyTokens(in.Record(), provider); err != nil {
		t.Fatalf("expect no error, got %v", err)
	}

	in = models.NewCreateGatewayGroupInput()
	err := record.ApplyIdempotencyTokens(in.Record(), provider)
	if err == nil {
		t.Fatalf("expect error from drained source")
	}
	if e, a := "ClientRequestToken", err.Error(); !strings.Contains(a, e) {
		t.Errorf("expect error to name %v, got %v", e, a)
	}
}
