package demo

import (
	"fmt"
	"time"

	"github.com/termbridge-labs/termbridge/internal/branding"
	"github.com/termbridge-labs/termbridge/internal/items"
	"github.com/termbridge-labs/termbridge/internal/pagination"
	"github.com/termbridge-labs/termbridge/internal/registry"
	"github.com/termbridge-labs/termbridge/internal/schema"
)

type itemsOut struct {
	Items []map[string]any `json:"items"`
}

func demoItems() []map[string]any {
	return []map[string]any{
		{"name": "Alpha", "value": 1},
		{"name": "Bravo", "value": 2},
		{"name": "Charlie", "value": 3},
		{"name": "Delta", "value": 4},
	}
}

func itemsOutput() *schema.Output {
	return schema.NewOutput(
		schema.Field{Name: "items", Kind: schema.Array, Elem: schema.Object},
	)
}

func listItemsCmd() *registry.Descriptor {
	return &registry.Descriptor{
		Name:        "list-items",
		Description: "Produce a dynamic list for the TUI.",
		Output:      itemsOutput(),
		Handler: func(call *registry.Call) (any, error) {
			return itemsOut{Items: demoItems()}, nil
		},
	}
}

func listItemsSlowCmd() *registry.Descriptor {
	return &registry.Descriptor{
		Name:        "list-items-slow",
		Description: "Produce a dynamic list (slow, 5s) for testing spinners.",
		Output:      itemsOutput(),
		Handler: func(call *registry.Call) (any, error) {
			time.Sleep(5 * time.Second)
			return itemsOut{Items: demoItems()}, nil
		},
	}
}

type itemListOut struct {
	Items []items.Item `json:"items"`
}

func listProjectsCmd() *registry.Descriptor {
	return &registry.Descriptor{
		Name:        "list-projects",
		Description: "List demo projects (lazy children of tasks).",
		Output:      itemsOutput(),
		Handler: func(call *registry.Call) (any, error) {
			projects := []struct{ id, title string }{
				{"alpha", "Project Alpha"},
				{"bravo", "Project Bravo"},
			}
			out := itemListOut{}
			for _, p := range projects {
				out.Items = append(out.Items, items.Item{
					ID:          p.id,
					Title:       p.title,
					WidgetTag:   items.KindLazyItems,
					Command:     fmt.Sprintf("%s list-tasks --project %s", branding.Placeholder(), p.id),
					Unwrap:      items.DefaultUnwrapPath,
					InitialText: "Enter to load tasks",
				})
			}
			return out, nil
		},
	}
}

func listTasksCmd() *registry.Descriptor {
	tasks := map[string][]struct{ id, title, status string }{
		"alpha": {
			{"a-1", "Design API", "open"},
			{"a-2", "Implement SDK", "in_progress"},
		},
		"bravo": {
			{"b-1", "Prototype UI", "open"},
			{"b-2", "Write docs", "open"},
		},
	}
	return &registry.Descriptor{
		Name:        "list-tasks",
		Description: "List tasks for a project.",
		Input: schema.NewInput(
			schema.Field{Name: "project", Kind: schema.String, Description: "Project identifier", Required: true},
		),
		Output: itemsOutput(),
		Handler: func(call *registry.Call) (any, error) {
			project := call.String("project", "")
			out := itemListOut{Items: []items.Item{}}
			for _, t := range tasks[project] {
				out.Items = append(out.Items, items.Item{
					ID:    t.id,
					Title: fmt.Sprintf("%s [%s]", t.title, t.status),
					Command: fmt.Sprintf("%s task-detail --project %s --task %s",
						branding.Placeholder(), project, t.id),
				})
			}
			return out, nil
		},
	}
}

func taskDetailCmd() *registry.Descriptor {
	return &registry.Descriptor{
		Name:        "task-detail",
		Description: "Show task details (raw JSON).",
		Input: schema.NewInput(
			schema.Field{Name: "project", Kind: schema.String, Required: true},
			schema.Field{Name: "task", Kind: schema.String, Required: true},
		),
		// No output schema: the payload is free-form.
		Handler: func(call *registry.Call) (any, error) {
			project := call.String("project", "")
			task := call.String("task", "")
			return map[string]any{
				"project":     project,
				"task":        task,
				"assignee":    "jane.doe",
				"priority":    "normal",
				"description": fmt.Sprintf("Details for %s in project %s", task, project),
				"links": []map[string]any{
					{"title": "Spec", "url": "https://example.invalid/spec"},
					{"title": "Ticket", "url": "https://example.invalid/ticket"},
				},
			}, nil
		},
	}
}

func listMixedWidgetsCmd() *registry.Descriptor {
	return &registry.Descriptor{
		Name:        "list-mixed-widgets",
		Description: "List documentation with mixed widget types.",
		Output:      itemsOutput(),
		Handler: func(call *registry.Call) (any, error) {
			sequential := false
			return itemListOut{Items: []items.Item{
				{
					ID:        "quick_start",
					Title:     "📖 Quick Start Guide",
					WidgetTag: items.KindMarkdown,
					Path:      ".tui/docs/quick_start.md",
				},
				{
					ID:        "shortcuts_inline",
					Title:     "⌨️ Keyboard Shortcuts",
					WidgetTag: items.KindMarkdown,
					Content:   "# Keyboard Shortcuts\n\n- **↑/↓** - Navigate\n- **Enter** - Select\n- **Esc** - Back\n- **q** - Quit",
				},
				{
					ID:        "system_monitor",
					Title:     "📊 System Monitor",
					WidgetTag: items.KindWatchdog,
					Commands: []string{
						"echo 'CPU: 42%'",
						"echo 'Memory: 8GB/16GB'",
						"echo 'Disk: 250GB/500GB'",
					},
					Sequential: &sequential,
				},
				{
					ID:      "view_config",
					Title:   "🔧 View Current Config",
					Command: branding.Placeholder() + " schema",
				},
				{
					ID:    "json_data",
					Title: "📝 Plain JSON Data",
					Data:  map[string]any{"type": "info", "message": "This is raw JSON data"},
				},
			}}, nil
		},
	}
}

func listLargeCmd() *registry.Descriptor {
	return &registry.Descriptor{
		Name:        "list-large",
		Description: "List a large dataset with pagination metadata.",
		Input: schema.NewInput(
			schema.Field{Name: "count", Kind: schema.Integer, Description: "Total number of items",
				Default: 1000, Ge: schema.FloatPtr(1), Le: schema.FloatPtr(1000000)},
			schema.Field{Name: "page", Kind: schema.Integer, Description: "Page number (1-based)",
				Default: 1, Ge: schema.FloatPtr(1)},
			schema.Field{Name: "per_page", Kind: schema.Integer, Description: "Items per page",
				Default: 50, Ge: schema.FloatPtr(1), Le: schema.FloatPtr(1000)},
		),
		// No output schema: the payload carries both items and pagination.
		Handler: func(call *registry.Call) (any, error) {
			total := call.Int("count", 1000)
			perPage := call.Int("per_page", 50)
			page := pagination.Cursor(total, call.Int("page", 1), perPage)

			list := make([]items.Item, 0, page.End-page.Start)
			for i := page.Start; i < page.End; i++ {
				n := i + 1
				list = append(list, items.Item{
					ID:    fmt.Sprintf("item-%d", n),
					Title: fmt.Sprintf("Item %d", n),
				})
			}

			base := fmt.Sprintf("%s list-large --count %d --per-page %d",
				branding.Placeholder(), total, perPage)
			return map[string]any{
				"items":      list,
				"pagination": page.Meta(base),
			}, nil
		},
	}
}
