package registry

// Call carries one invocation's validated arguments into a handler and gives
// it a way to report progress. The emit function is injected by the engine,
// which owns sequencing and delivery.
type Call struct {
	Command string
	Args    map[string]any

	emit func(message string, percent float64, stage string)
}

// NewCall builds the handler-facing view of an invocation. A nil emit makes
// Progress a no-op.
func NewCall(command string, args map[string]any, emit func(message string, percent float64, stage string)) *Call {
	return &Call{Command: command, Args: args, emit: emit}
}

// Progress emits one progress event. Delivery is synchronous; events arrive
// at the caller in emission order.
func (c *Call) Progress(message string, percent float64, stage string) {
	if c.emit != nil {
		c.emit(message, percent, stage)
	}
}

// String returns the string argument under key, or def if absent.
func (c *Call) String(key, def string) string {
	if v, ok := c.Args[key].(string); ok {
		return v
	}
	return def
}

// Bool returns the boolean argument under key, or def if absent.
func (c *Call) Bool(key string, def bool) bool {
	if v, ok := c.Args[key].(bool); ok {
		return v
	}
	return def
}

// Int returns the integer argument under key, or def if absent. Numeric
// arguments may arrive as any Go numeric type depending on the transport.
func (c *Call) Int(key string, def int) int {
	switch v := c.Args[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	}
	return def
}

// Float returns the numeric argument under key, or def if absent.
func (c *Call) Float(key string, def float64) float64 {
	switch v := c.Args[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case int64:
		return float64(v)
	}
	return def
}

// Strings returns the string-array argument under key, or nil if absent.
func (c *Call) Strings(key string) []string {
	switch v := c.Args[key].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, e := range v {
			if s, ok := e.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

// Floats returns the number-array argument under key, or nil if absent.
func (c *Call) Floats(key string) []float64 {
	switch v := c.Args[key].(type) {
	case []float64:
		return v
	case []any:
		out := make([]float64, 0, len(v))
		for _, e := range v {
			switch n := e.(type) {
			case float64:
				out = append(out, n)
			case int:
				out = append(out, float64(n))
			case int64:
				out = append(out, float64(n))
			}
		}
		return out
	}
	return nil
}
