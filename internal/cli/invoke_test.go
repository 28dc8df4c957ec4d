package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"go.yaml.in/yaml/v3"

	"github.com/termbridge-labs/termbridge/internal/registry"
	"github.com/termbridge-labs/termbridge/internal/schema"
)

func greetDescriptor() *registry.Descriptor {
	return &registry.Descriptor{
		Name:        "greet",
		Description: "Greet someone.",
		Input: schema.NewInput(
			schema.Field{Name: "name", Kind: schema.String, Required: true},
			schema.Field{Name: "repeat_count", Kind: schema.Integer,
				Default: 1, Ge: schema.FloatPtr(1), Le: schema.FloatPtr(5)},
		),
		Output: schema.NewOutput(
			schema.Field{Name: "greeting", Kind: schema.String},
		),
		Handler: func(call *registry.Call) (any, error) {
			text := strings.Repeat("hi "+call.String("name", ""), call.Int("repeat_count", 1))
			return map[string]any{"greeting": text}, nil
		},
	}
}

func setFormat(t *testing.T, format string) {
	t.Helper()
	prev := formatFlag
	formatFlag = format
	t.Cleanup(func() { formatFlag = prev })
}

func runGreet(t *testing.T, args ...string) (string, error) {
	t.Helper()
	reg := registry.New()
	desc := greetDescriptor()
	if err := reg.Register(desc); err != nil {
		t.Fatalf("Register error: %v", err)
	}

	cmd := invocationCommand(reg, desc)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestInvocationCommand_JSONEnvelope(t *testing.T) {
	setFormat(t, "json")

	out, err := runGreet(t, "--name", "Ada")
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}

	var env map[string]any
	if err := json.Unmarshal([]byte(strings.TrimSpace(out)), &env); err != nil {
		t.Fatalf("output %q is not a JSON envelope: %v", out, err)
	}
	if env["type"] != "result" || env["ok"] != true {
		t.Errorf("envelope = %v", env)
	}
	data := env["data"].(map[string]any)
	if data["greeting"] != "hi Ada" {
		t.Errorf("greeting = %v", data["greeting"])
	}
}

func TestInvocationCommand_JSONValidationFailureExitsClean(t *testing.T) {
	setFormat(t, "json")

	// In json mode a validation failure is still a well-formed envelope on
	// stdout, not a process error.
	decodeErrorEnvelope := func(t *testing.T, out string, err error) []any {
		t.Helper()
		if err != nil {
			t.Fatalf("Execute error = %v, want envelope instead", err)
		}
		var env map[string]any
		if err := json.Unmarshal([]byte(strings.TrimSpace(out)), &env); err != nil {
			t.Fatalf("output %q is not a JSON envelope: %v", out, err)
		}
		if env["type"] != "error" || env["ok"] != false {
			t.Errorf("envelope = %v", env)
		}
		return env["data"].(map[string]any)["details"].(map[string]any)["errors"].([]any)
	}

	t.Run("out-of-bounds value", func(t *testing.T) {
		out, err := runGreet(t, "--name", "Ada", "--repeat-count", "9")
		errs := decodeErrorEnvelope(t, out, err)
		loc := errs[0].(map[string]any)["loc"].([]any)
		if loc[len(loc)-1] != "repeat_count" {
			t.Errorf("loc = %v, want to end in repeat_count", loc)
		}
	})

	t.Run("missing required flag", func(t *testing.T) {
		out, err := runGreet(t)
		errs := decodeErrorEnvelope(t, out, err)
		first := errs[0].(map[string]any)
		loc := first["loc"].([]any)
		if loc[len(loc)-1] != "name" {
			t.Errorf("loc = %v, want to end in name", loc)
		}
		if first["type"] != "required" {
			t.Errorf("type = %v, want required", first["type"])
		}
	})
}

func TestInvocationCommand_HumanFailureReturnsError(t *testing.T) {
	setFormat(t, "human")

	_, err := runGreet(t, "--name", "Ada", "--repeat-count", "9")
	if err == nil {
		t.Fatal("expected an error in human mode for invalid input")
	}
}

func TestInvocationCommand_YAML(t *testing.T) {
	setFormat(t, "yaml")

	out, err := runGreet(t, "--name", "Ada")
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	var env map[string]any
	if err := yaml.Unmarshal([]byte(out), &env); err != nil {
		t.Fatalf("output %q is not YAML: %v", out, err)
	}
	if env["ok"] != true {
		t.Errorf("envelope = %v", env)
	}
}

func TestInvocationCommand_UnsetFlagsAreNotForwarded(t *testing.T) {
	setFormat(t, "json")

	// repeat_count is omitted on the command line, so the schema default of 1
	// must apply rather than cobra's zero value.
	out, err := runGreet(t, "--name", "Ada")
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	var env map[string]any
	if err := json.Unmarshal([]byte(strings.TrimSpace(out)), &env); err != nil {
		t.Fatalf("decoding envelope: %v", err)
	}
	if got := env["data"].(map[string]any)["greeting"]; got != "hi Ada" {
		t.Errorf("greeting = %v, want single repetition", got)
	}
}

func TestFlagName(t *testing.T) {
	tests := []struct{ in, want string }{
		{"per_page", "per-page"},
		{"delay_ms", "delay-ms"},
		{"name", "name"},
	}
	for _, tt := range tests {
		if got := flagName(tt.in); got != tt.want {
			t.Errorf("flagName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
