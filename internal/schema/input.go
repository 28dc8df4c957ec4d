package schema

import (
	"strconv"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Input is the declared argument schema of one command.
type Input struct {
	fields []Field

	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
}

// NewInput builds an input schema from field declarations.
func NewInput(fields ...Field) *Input {
	return &Input{fields: fields}
}

// Fields returns the declared fields in declaration order.
func (s *Input) Fields() []Field { return s.fields }

func (s *Input) schema() (*jsonschema.Schema, error) {
	s.compileOnce.Do(func() {
		s.compiled, s.compileErr = compile(document(s.fields))
	})
	return s.compiled, s.compileErr
}

// Validate checks raw arguments against the schema. On success it returns a
// new argument map with defaults applied and string scalars coerced to their
// declared types. On constraint violation it returns a *ValidationError; the
// plain error return is reserved for schema compilation failures.
func (s *Input) Validate(raw map[string]any) (map[string]any, error) {
	args := make(map[string]any, len(raw))
	for k, v := range raw {
		args[k] = v
	}

	var issues []Issue
	for _, f := range s.fields {
		v, present := args[f.Name]
		if !present || v == nil {
			if f.Required {
				issues = append(issues, Issue{
					Field:   f.Name,
					Keyword: "required",
					Message: "field is required",
				})
			} else if f.Default != nil {
				args[f.Name] = f.Default
			}
			continue
		}
		if coerced, ok := coerce(f, v); ok {
			args[f.Name] = coerced
		}
	}
	if len(issues) > 0 {
		return nil, &ValidationError{Issues: issues}
	}

	compiled, err := s.schema()
	if err != nil {
		return nil, err
	}
	issues, err = validate(compiled, args)
	if err != nil {
		return nil, err
	}
	if len(issues) > 0 {
		return nil, &ValidationError{Issues: issues}
	}
	return args, nil
}

// coerce converts string scalars to the field's declared type. Hosts driving
// the engine through a text interface pass every value as a string; typed
// callers are left untouched.
func coerce(f Field, v any) (any, bool) {
	s, isString := v.(string)
	if !isString {
		return nil, false
	}
	switch f.Kind {
	case Integer:
		if n, err := strconv.ParseInt(s, 10, 64); err == nil {
			return n, true
		}
	case Number:
		if n, err := strconv.ParseFloat(s, 64); err == nil {
			return n, true
		}
	case Boolean:
		if b, err := strconv.ParseBool(s); err == nil {
			return b, true
		}
	}
	return nil, false
}

// Describe returns a JSON-compatible description of the schema for catalog
// output, preserving declaration order.
func (s *Input) Describe() []map[string]any {
	out := make([]map[string]any, 0, len(s.fields))
	for _, f := range s.fields {
		out = append(out, describeField(f))
	}
	return out
}

func describeField(f Field) map[string]any {
	d := map[string]any{
		"name": f.Name,
		"type": string(f.Kind),
	}
	if f.Description != "" {
		d["description"] = f.Description
	}
	if f.Required {
		d["required"] = true
	}
	if f.Default != nil {
		d["default"] = f.Default
	}
	if f.Ge != nil {
		d["ge"] = *f.Ge
	}
	if f.Le != nil {
		d["le"] = *f.Le
	}
	if f.MinLen != nil {
		d["min_length"] = *f.MinLen
	}
	if f.MaxLen != nil {
		d["max_length"] = *f.MaxLen
	}
	if f.Pattern != "" {
		d["pattern"] = f.Pattern
	}
	if len(f.Enum) > 0 {
		d["enum"] = f.Enum
	}
	if f.Kind == Array {
		elem := f.Elem
		if elem == "" {
			elem = String
		}
		d["items"] = string(elem)
	}
	return d
}
