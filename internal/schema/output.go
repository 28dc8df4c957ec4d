package schema

import (
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Output is the declared result schema of one command. Commands without an
// output schema return free-form JSON-compatible mappings instead.
type Output struct {
	fields []Field

	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
}

// NewOutput builds an output schema from field declarations. Every declared
// field must be present in the payload with the correct type.
func NewOutput(fields ...Field) *Output {
	return &Output{fields: fields}
}

// Fields returns the declared fields in declaration order.
func (s *Output) Fields() []Field { return s.fields }

func (s *Output) schema() (*jsonschema.Schema, error) {
	s.compileOnce.Do(func() {
		s.compiled, s.compileErr = compile(document(s.fields))
	})
	return s.compiled, s.compileErr
}

// Check verifies that a normalized payload conforms to the schema. A mismatch
// is returned as a *OutputSchemaError attributed to the given command; the
// plain error return is reserved for schema compilation failures.
func (s *Output) Check(command string, payload any) error {
	obj, ok := payload.(map[string]any)
	if !ok {
		return &OutputSchemaError{
			Command: command,
			Issues:  []Issue{{Keyword: "type", Message: "payload is not an object"}},
		}
	}

	var issues []Issue
	for _, f := range s.fields {
		if _, present := obj[f.Name]; !present {
			issues = append(issues, Issue{
				Field:   f.Name,
				Keyword: "required",
				Message: "field missing from output",
			})
		}
	}
	if len(issues) > 0 {
		return &OutputSchemaError{Command: command, Issues: issues}
	}

	compiled, err := s.schema()
	if err != nil {
		return err
	}
	issues, err = validate(compiled, obj)
	if err != nil {
		return err
	}
	if len(issues) > 0 {
		return &OutputSchemaError{Command: command, Issues: issues}
	}
	return nil
}

// Describe returns a JSON-compatible description of the schema for catalog
// output.
func (s *Output) Describe() []map[string]any {
	out := make([]map[string]any, 0, len(s.fields))
	for _, f := range s.fields {
		out = append(out, describeField(f))
	}
	return out
}
