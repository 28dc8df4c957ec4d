package schema

// Kind is the declared type of a field value.
type Kind string

const (
	String  Kind = "string"
	Number  Kind = "number"
	Integer Kind = "integer"
	Boolean Kind = "boolean"
	Object  Kind = "object"
	Array   Kind = "array"
)

// Field describes one constrained argument or output value.
type Field struct {
	Name        string
	Kind        Kind
	Description string

	// Required fields must be present in the raw input. Optional fields may
	// carry a Default that is applied before validation.
	Required bool
	Default  any

	// Numeric bounds (inclusive), for Number and Integer fields.
	Ge *float64
	Le *float64

	// String constraints.
	MinLen  *int
	MaxLen  *int
	Pattern string

	// Enum restricts a string field to a fixed set of values.
	Enum []string

	// Elem is the element kind for Array fields. Defaults to String.
	Elem Kind
}

// property renders the field as a JSON Schema property definition.
func (f Field) property() map[string]any {
	switch f.Kind {
	case Array:
		elem := f.Elem
		if elem == "" {
			elem = String
		}
		return map[string]any{
			"type":  "array",
			"items": map[string]any{"type": string(elem)},
		}
	case Number, Integer:
		p := map[string]any{"type": string(f.Kind)}
		if f.Ge != nil {
			p["minimum"] = *f.Ge
		}
		if f.Le != nil {
			p["maximum"] = *f.Le
		}
		return p
	case Boolean, Object:
		return map[string]any{"type": string(f.Kind)}
	default:
		p := map[string]any{"type": "string"}
		if f.MinLen != nil {
			p["minLength"] = *f.MinLen
		}
		if f.MaxLen != nil {
			p["maxLength"] = *f.MaxLen
		}
		if f.Pattern != "" {
			p["pattern"] = f.Pattern
		}
		if len(f.Enum) > 0 {
			vals := make([]any, len(f.Enum))
			for i, v := range f.Enum {
				vals[i] = v
			}
			p["enum"] = vals
		}
		return p
	}
}

// FloatPtr returns a pointer to v, for bound declarations.
func FloatPtr(v float64) *float64 { return &v }

// IntPtr returns a pointer to v, for length declarations.
func IntPtr(v int) *int { return &v }
