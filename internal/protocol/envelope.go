package protocol

import (
	"encoding/json"
	"fmt"

	"github.com/termbridge-labs/termbridge/internal/registry"
	"github.com/termbridge-labs/termbridge/internal/schema"
)

// Envelope type tags. A consumer treats any line whose type is not
// "progress" as the final envelope of the invocation.
const (
	TypeResult = "result"
	TypeError  = "error"
)

// Envelope is the normalized wrapper around a handler's return value. It is
// created once per invocation and never mutated.
type Envelope struct {
	Type  string `json:"type"`
	OK    bool   `json:"ok"`
	Data  any    `json:"data"`
	Human string `json:"human,omitempty"`
}

// NewResult wraps a successful payload.
func NewResult(data any, human string) *Envelope {
	return &Envelope{Type: TypeResult, OK: true, Data: data, Human: human}
}

// NewFailure wraps a handler execution failure. The fault is normalized into
// a descriptive payload so the consumer always receives a well-formed
// envelope rather than a raw error.
func NewFailure(command string, err error) *Envelope {
	return &Envelope{
		Type: TypeError,
		OK:   false,
		Data: map[string]any{
			"command": command,
			"message": err.Error(),
		},
	}
}

// NewError converts a resolution, validation, or output-contract error into
// an error envelope. Validation issues are carried under data.details.errors
// with loc/msg/type entries so a form-driven consumer can attach each message
// to its field.
func NewError(err error) *Envelope {
	data := map[string]any{"message": err.Error()}

	var issues []schema.Issue
	switch e := err.(type) {
	case *schema.ValidationError:
		issues = e.Issues
	case *schema.OutputSchemaError:
		issues = e.Issues
	case *registry.UnknownCommandError:
		data["command"] = e.Name
	}
	if len(issues) > 0 {
		errs := make([]map[string]any, 0, len(issues))
		for _, issue := range issues {
			loc := []string{}
			if issue.Field != "" {
				loc = append(loc, issue.Field)
			}
			errs = append(errs, map[string]any{
				"loc":  loc,
				"msg":  issue.Message,
				"type": issue.Keyword,
			})
		}
		data["details"] = map[string]any{"errors": errs}
	}

	return &Envelope{Type: TypeError, OK: false, Data: data}
}

// MarshalLine renders the envelope as a single JSON line, newline included.
func (e *Envelope) MarshalLine() ([]byte, error) {
	raw, err := json.Marshal(e)
	if err != nil {
		return nil, fmt.Errorf("marshaling envelope: %w", err)
	}
	return append(raw, '\n'), nil
}

// AsMap round-trips the envelope through JSON into a generic mapping, the
// form unwrap paths are resolved against.
func (e *Envelope) AsMap() (map[string]any, error) {
	raw, err := json.Marshal(e)
	if err != nil {
		return nil, fmt.Errorf("marshaling envelope: %w", err)
	}
	var out map[string]any
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("unmarshaling envelope: %w", err)
	}
	return out, nil
}
