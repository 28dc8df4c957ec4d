package render

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var keyStyle = lipgloss.NewStyle().Bold(true)

// Default renders a payload as sorted "key: value" lines. Nested structures
// are shown as compact JSON. Non-object payloads render as JSON directly.
func Default(data any) string {
	obj, ok := data.(map[string]any)
	if !ok {
		return compactJSON(data)
	}

	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(keyStyle.Render(k + ":"))
		b.WriteByte(' ')
		b.WriteString(scalar(obj[k]))
	}
	return b.String()
}

func scalar(v any) string {
	switch val := v.(type) {
	case nil:
		return "null"
	case string:
		return val
	case bool:
		return fmt.Sprintf("%t", val)
	case float64:
		// Trim the ".0" JSON round-tripping adds to integral numbers.
		if val == float64(int64(val)) {
			return fmt.Sprintf("%d", int64(val))
		}
		return fmt.Sprintf("%g", val)
	case int, int64:
		return fmt.Sprintf("%d", val)
	default:
		return compactJSON(v)
	}
}

func compactJSON(v any) string {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(raw)
}
