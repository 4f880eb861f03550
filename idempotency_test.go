package record_test

import (
	"fmt"
	"testing"

	record "github.com/awslabs/record-go"
	"github.com/awslabs/record-go/internal/models"
)

type mockTokenProvider struct {
	tokens []string
	err    error
}

func (m *mockTokenProvider) GetIdempotencyToken() (string, error) {
	if m.err != nil {
		return "", m.err
	}
	t := m.tokens[0]
	m.tokens = m.tokens[1:]
	return t, nil
}

func TestApplyIdempotencyTokens(t *testing.T) {
	cases := map[string]struct {
		Input  *models.CreateGatewayGroupInput
		Expect string
	}{
		"unset is filled": {
			Input:  models.NewCreateGatewayGroupInput().WithName("Lobby"),
			Expect: "00000000-0000-4000-8000-000000000000",
		},
		"caller value kept": {
			Input:  models.NewCreateGatewayGroupInput().WithClientRequestToken("abc-123"),
			Expect: "abc-123",
		},
		"explicit empty kept": {
			Input:  models.NewCreateGatewayGroupInput().WithClientRequestToken(""),
			Expect: "",
		},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			p := &mockTokenProvider{tokens: []string{"00000000-0000-4000-8000-000000000000"}}
			if err := record.ApplyIdempotencyTokens(c.Input.Record(), p); err != nil {
				t.Fatalf("expect no error, got %v", err)
			}
			if !c.Input.HasClientRequestToken() {
				t.Errorf("expect token set")
			}
			if e, a := c.Expect, c.Input.ClientRequestToken(); e != a {
				t.Errorf("expect %v, got %v", e, a)
			}
		})
	}
}

func TestApplyIdempotencyTokensError(t *testing.T) {
	in := models.NewCreateGatewayGroupInput()
	err := record.ApplyIdempotencyTokens(in.Record(), &mockTokenProvider{err: fmt.Errorf("no entropy")})
	if err == nil {
		t.Fatalf("expect error")
	}
	if in.HasClientRequestToken() {
		t.Errorf("expect token left unset")
	}
}
