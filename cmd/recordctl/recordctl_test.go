package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/awslabs/record-go/rand"
	smithytesting "github.com/awslabs/record-go/testing"
)

type result struct {
	stdout string
	stderr string
	err    error
}

func run(t *testing.T, stdin string, args ...string) result {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd := newRootCommand(strings.NewReader(stdin), &stdout, &stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return result{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

func TestDecode(t *testing.T) {
	r := run(t, "", "decode", "--model", "testdata/model.yaml",
		"--shape", "CreateGatewayGroupRequest", "testdata/create_gateway_group.json")
	if r.err != nil {
		t.Fatalf("expect no error, got %v", r.err)
	}

	expect := strings.Join([]string{
		`Name: "Lobby"`,
		`Description: <unset>`,
		`ClientRequestToken: <unset>`,
		`Tags: [{"Key":"floor","Value":"1"},{"Key":"room","Value":"east"}]`,
		``,
	}, "\n")
	if e, a := expect, r.stdout; e != a {
		t.Errorf("expect output\n%s\ngot\n%s", e, a)
	}
}

func TestDecodeRedactsSensitive(t *testing.T) {
	r := run(t, "Secret: hunter2\n", "decode", "--model", "testdata/model.yaml",
		"--shape", "GetObjectOutput", "--input-format", "yaml", "-")
	if r.err != nil {
		t.Fatalf("expect no error, got %v", r.err)
	}
	if strings.Contains(r.stdout, "hunter2") {
		t.Errorf("expect sensitive value redacted, got\n%s", r.stdout)
	}
	if e, a := "Secret: "+redacted, r.stdout; !strings.Contains(a, e) {
		t.Errorf("expect %q in\n%s", e, a)
	}
}

func TestEncode(t *testing.T) {
	r := run(t, `{"Tags":[{"Value":"1","Key":"floor"}],"Name":"Lobby"}`, "encode",
		"--model", "testdata/model.yaml", "--shape", "CreateGatewayGroupRequest")
	if r.err != nil {
		t.Fatalf("expect no error, got %v", r.err)
	}
	smithytesting.AssertJSONEqual(t, []byte(`{"Name":"Lobby","Tags":[{"Key":"floor","Value":"1"}]}`), []byte(r.stdout))
	if !strings.HasPrefix(r.stdout, "{\n  \"Name\": \"Lobby\",") {
		t.Errorf("expect members in declaration order, got\n%s", r.stdout)
	}
}

func TestEncodeFillTokens(t *testing.T) {
	orig := rand.Reader
	defer func() { rand.Reader = orig }()
	rand.Reader = bytes.NewReader(make([]byte, 16))

	r := run(t, `{"Name":"Lobby"}`, "encode", "--fill-tokens",
		"--model", "testdata/model.yaml", "--shape", "CreateGatewayGroupRequest")
	if r.err != nil {
		t.Fatalf("expect no error, got %v", r.err)
	}
	smithytesting.AssertJSONEqual(t,
		[]byte(`{"Name":"Lobby","ClientRequestToken":"00000000-0000-4000-8000-000000000000"}`),
		[]byte(r.stdout))
}

func TestEncodeMissingRequired(t *testing.T) {
	r := run(t, `{"Tags":[{"Key":"floor"}]}`, "encode",
		"--model", "testdata/model.yaml", "--shape", "CreateGatewayGroupRequest")
	if r.err == nil {
		t.Fatalf("expect error")
	}
	for _, e := range []string{"Name", "/Tags/0"} {
		if a := r.err.Error(); !strings.Contains(a, e) {
			t.Errorf("expect %q in error, got %v", e, a)
		}
	}
	if r.stdout != "" {
		t.Errorf("expect no output, got %q", r.stdout)
	}
}

func TestEncodeYAML(t *testing.T) {
	r := run(t, `{"Name":"Lobby"}`, "encode", "--output-format", "yaml",
		"--model", "testdata/model.yaml", "--shape", "CreateGatewayGroupRequest")
	if r.err != nil {
		t.Fatalf("expect no error, got %v", r.err)
	}
	if e, a := "Name: Lobby\n", r.stdout; e != a {
		t.Errorf("expect %q, got %q", e, a)
	}
}

func TestEncodeYAMLNested(t *testing.T) {
	r := run(t, `{"Tags":[{"Value":"1","Key":"floor"}],"Name":"Lobby"}`, "encode", "--output-format", "yaml",
		"--model", "testdata/model.yaml", "--shape", "CreateGatewayGroupRequest")
	if r.err != nil {
		t.Fatalf("expect no error, got %v", r.err)
	}
	smithytesting.AssertYAMLEqual(t, []byte("Name: Lobby\nTags:\n  - Key: floor\n    Value: \"1\"\n"), []byte(r.stdout))
}

func TestHeaders(t *testing.T) {
	r := run(t, "", "headers", "--config", "testdata/config.yaml", "testdata/get_object.yaml")
	if r.err != nil {
		t.Fatalf("expect no error, got %v", r.err)
	}

	expect := strings.Join([]string{
		"Expires: Fri, 01 Mar 2024 12:30:15 GMT",
		"X-Meta-a: 1",
		"X-Meta-b: 2",
		"",
	}, "\n")
	if e, a := expect, r.stdout; e != a {
		t.Errorf("expect output\n%s\ngot\n%s", e, a)
	}
}

func TestHeadersOperationTarget(t *testing.T) {
	r := run(t, `{"Name":"Lobby"}`, "headers",
		"--model", "testdata/model.yaml", "--shape", "CreateGatewayGroupRequest")
	if r.err != nil {
		t.Fatalf("expect no error, got %v", r.err)
	}
	if e, a := "X-Amz-Target: AlexaForBusiness.CreateGatewayGroup\n", r.stdout; e != a {
		t.Errorf("expect %q, got %q", e, a)
	}
}

func TestQuery(t *testing.T) {
	cases := map[string]struct {
		Expr   string
		Expect string
	}{
		"projection": {
			Expr:   "Tags[].Key",
			Expect: `["floor","room"]` + "\n",
		},
		"filter": {
			Expr:   "Tags[?Key=='room'].Value | [0]",
			Expect: `"east"` + "\n",
		},
		"unset member": {
			Expr:   "Description",
			Expect: "null\n",
		},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			r := run(t, "", "query", c.Expr, "--model", "testdata/model.yaml",
				"--shape", "CreateGatewayGroupRequest", "testdata/create_gateway_group.json")
			if r.err != nil {
				t.Fatalf("expect no error, got %v", r.err)
			}
			if e, a := c.Expect, r.stdout; e != a {
				t.Errorf("expect %q, got %q", e, a)
			}
		})
	}
}

func TestQueryInvalidExpression(t *testing.T) {
	r := run(t, "{}", "query", "Tags[", "--model", "testdata/model.yaml",
		"--shape", "CreateGatewayGroupRequest")
	if r.err == nil {
		t.Fatalf("expect error")
	}
}

func TestUnknownFields(t *testing.T) {
	cases := map[string]struct {
		Args      []string
		ExpectErr string
		ExpectLog string
	}{
		"quiet by default": {},
		"verbose zap": {
			Args:      []string{"-v"},
			ExpectLog: `dropping unknown field "Color"`,
		},
		"verbose logrus": {
			Args:      []string{"-v", "--log-backend", "logrus"},
			ExpectLog: `dropping unknown field \"Color\"`,
		},
		"strict": {
			Args:      []string{"--strict-unknown"},
			ExpectErr: "Color",
		},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			args := append([]string{"decode", "--model", "testdata/model.yaml",
				"--shape", "CreateGatewayGroupRequest", "testdata/create_gateway_group.json"}, c.Args...)
			r := run(t, "", args...)

			if c.ExpectErr != "" {
				if r.err == nil {
					t.Fatalf("expect error")
				}
				if e, a := c.ExpectErr, r.err.Error(); !strings.Contains(a, e) {
					t.Errorf("expect %q in error, got %v", e, a)
				}
				return
			}
			if r.err != nil {
				t.Fatalf("expect no error, got %v", r.err)
			}

			if c.ExpectLog == "" {
				if r.stderr != "" {
					t.Errorf("expect no log output, got %q", r.stderr)
				}
				return
			}
			if e, a := c.ExpectLog, r.stderr; !strings.Contains(a, e) {
				t.Errorf("expect %q in log output, got %q", e, a)
			}
		})
	}
}

func TestConfigFromEnvironment(t *testing.T) {
	t.Setenv("RECORDCTL_MODEL", "testdata/model.yaml")
	t.Setenv("RECORDCTL_SHAPE", "CreateGatewayGroupRequest")

	r := run(t, `{"Name":"Lobby"}`, "encode")
	if r.err != nil {
		t.Fatalf("expect no error, got %v", r.err)
	}
	smithytesting.AssertJSONEqual(t, []byte(`{"Name":"Lobby"}`), []byte(r.stdout))
}

func TestConfigErrors(t *testing.T) {
	cases := map[string]struct {
		Args      []string
		ExpectErr string
	}{
		"no model": {
			Args:      []string{"decode", "--shape", "Tag"},
			ExpectErr: "model must be set",
		},
		"no shape": {
			Args:      []string{"decode", "--model", "testdata/model.yaml"},
			ExpectErr: "shape must be set",
		},
		"unknown shape": {
			Args:      []string{"decode", "--model", "testdata/model.yaml", "--shape", "Nope"},
			ExpectErr: "has no shape Nope",
		},
		"not a structure": {
			Args:      []string{"decode", "--model", "testdata/model.yaml", "--shape", "TagList"},
			ExpectErr: "not a structure",
		},
		"bad format": {
			Args:      []string{"decode", "--model", "testdata/model.yaml", "--shape", "Tag", "--input-format", "xml"},
			ExpectErr: `unknown format "xml"`,
		},
		"bad log backend": {
			Args:      []string{"decode", "--model", "testdata/model.yaml", "--shape", "Tag", "--log-backend", "glog"},
			ExpectErr: `unknown log backend "glog"`,
		},
		"missing config file": {
			Args:      []string{"decode", "--config", "testdata/nope.yaml"},
			ExpectErr: "failed to read config",
		},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			r := run(t, "{}", c.Args...)
			if r.err == nil {
				t.Fatalf("expect error")
			}
			if e, a := c.ExpectErr, r.err.Error(); !strings.Contains(a, e) {
				t.Errorf("expect %q in error, got %v", e, a)
			}
		})
	}
}
