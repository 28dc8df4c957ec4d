package demo

import (
	"fmt"
	"strings"

	"github.com/termbridge-labs/termbridge/internal/registry"
	"github.com/termbridge-labs/termbridge/internal/schema"
)

type chooseTagsOut struct {
	Selected []string `json:"selected"`
}

func chooseTagsCmd() *registry.Descriptor {
	return &registry.Descriptor{
		Name:        "choose-tags",
		Description: "Echo selected tags.",
		Input: schema.NewInput(
			schema.Field{Name: "tags", Kind: schema.Array, Elem: schema.String, Required: true},
		),
		Output: schema.NewOutput(
			schema.Field{Name: "selected", Kind: schema.Array, Elem: schema.String},
		),
		Handler: func(call *registry.Call) (any, error) {
			return chooseTagsOut{Selected: call.Strings("tags")}, nil
		},
	}
}

func listTagsCmd() *registry.Descriptor {
	return &registry.Descriptor{
		Name:        "list-tags",
		Description: "List tag options (strings).",
		Output: schema.NewOutput(
			schema.Field{Name: "items", Kind: schema.Array, Elem: schema.Object},
		),
		Handler: func(call *registry.Call) (any, error) {
			return map[string]any{
				"items": []map[string]any{
					{"title": "urgent", "id": "urgent"},
					{"title": "normal", "id": "normal"},
					{"title": "low", "id": "low"},
				},
			}, nil
		},
		Renderer: func(data map[string]any) string {
			list, _ := data["items"].([]any)
			lines := make([]string, 0, len(list))
			for _, raw := range list {
				item, ok := raw.(map[string]any)
				if !ok {
					continue
				}
				lines = append(lines, fmt.Sprintf("📌 %v (use --tag %v)", item["title"], item["id"]))
			}
			return strings.Join(lines, "\n")
		},
	}
}

type saveSettingsOut struct {
	OK    bool           `json:"ok"`
	Saved map[string]any `json:"saved"`
}

func saveSettingsCmd() *registry.Descriptor {
	return &registry.Descriptor{
		Name:        "save-settings",
		Description: "Save user settings (echo).",
		Input: schema.NewInput(
			schema.Field{Name: "username", Kind: schema.String, Required: true},
			schema.Field{Name: "email", Kind: schema.String, Required: true},
			schema.Field{Name: "newsletter", Kind: schema.Boolean, Default: false},
			schema.Field{Name: "theme", Kind: schema.String, Default: "system",
				Enum: []string{"light", "dark", "system"}},
		),
		Output: schema.NewOutput(
			schema.Field{Name: "ok", Kind: schema.Boolean},
			schema.Field{Name: "saved", Kind: schema.Object},
		),
		Handler: func(call *registry.Call) (any, error) {
			return saveSettingsOut{OK: true, Saved: map[string]any{
				"username":   call.String("username", ""),
				"email":      call.String("email", ""),
				"newsletter": call.Bool("newsletter", false),
				"theme":      call.String("theme", "system"),
			}}, nil
		},
	}
}

type shortcutsOut struct {
	Shortcuts map[string]map[string]string `json:"shortcuts"`
}

func showShortcutsCmd() *registry.Descriptor {
	return &registry.Descriptor{
		Name:        "show-shortcuts",
		Description: "Show keyboard shortcuts",
		Output: schema.NewOutput(
			schema.Field{Name: "shortcuts", Kind: schema.Object},
		),
		Handler: func(call *registry.Call) (any, error) {
			return shortcutsOut{Shortcuts: map[string]map[string]string{
				"Navigation": {
					"↑/↓":   "Move selection",
					"←/→":   "Collapse/Expand items",
					"Enter": "Select item",
					"Esc":   "Go back",
					"q":     "Quit application",
				},
				"Tabs": {
					"F1-F6":     "Switch between tabs",
					"Tab":       "Next field (in forms)",
					"Shift+Tab": "Previous field (in forms)",
				},
				"Panels": {
					"Tab":       "Switch panel focus",
					"PgUp/PgDn": "Scroll content",
				},
				"Forms": {
					"Enter": "Submit form",
					"Esc":   "Cancel form",
					"Space": "Toggle checkbox",
				},
			}}, nil
		},
	}
}
