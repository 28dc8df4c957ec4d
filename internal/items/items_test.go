package items

import (
	"reflect"
	"testing"
)

func TestClassify(t *testing.T) {
	sequential := true

	tests := []struct {
		name string
		item Item
		want string
	}{
		{
			"explicit markdown with path",
			Item{Title: "Guide", WidgetTag: "markdown", Path: "docs/guide.md"},
			KindMarkdown,
		},
		{
			"explicit markdown with inline content",
			Item{Title: "Inline", WidgetTag: "markdown", Content: "# Hi"},
			KindMarkdown,
		},
		{
			"explicit watchdog",
			Item{Title: "Monitor", WidgetTag: "watchdog", Commands: []string{"echo hi"}, Sequential: &sequential},
			KindWatchdog,
		},
		{
			"explicit lazy items",
			Item{Title: "Project", WidgetTag: "lazy_items", Command: "${APP_BIN} list-tasks --project alpha", Unwrap: "data.items"},
			KindLazyItems,
		},
		{
			"tag is case-insensitive",
			Item{Title: "Guide", WidgetTag: "Markdown", Content: "# Hi"},
			KindMarkdown,
		},
		{
			"derived command implies lazy",
			Item{Title: "Config", Command: "${APP_BIN} schema"},
			KindLazyItems,
		},
		{
			"path implies markdown",
			Item{Title: "Doc", Path: "README.md"},
			KindMarkdown,
		},
		{
			"data implies plain",
			Item{Title: "Data", Data: map[string]any{"k": "v"}},
			KindPlain,
		},
		{
			"bare title is an inert plain leaf",
			Item{Title: "Nothing else"},
			KindPlain,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := tt.item.Classify()
			if w.Kind() != tt.want {
				t.Errorf("Classify() kind = %q, want %q", w.Kind(), tt.want)
			}
		})
	}
}

func TestClassify_VariantFields(t *testing.T) {
	it := Item{
		Title:       "Project Alpha",
		WidgetTag:   "lazy_items",
		Command:     "${APP_BIN} list-tasks --project alpha",
		Unwrap:      "data.items",
		InitialText: "Enter to load tasks",
	}
	lazy, ok := it.Classify().(LazyItems)
	if !ok {
		t.Fatalf("Classify() = %T, want LazyItems", it.Classify())
	}
	if lazy.Command != it.Command || lazy.Unwrap != "data.items" || lazy.InitialText != "Enter to load tasks" {
		t.Errorf("LazyItems = %+v", lazy)
	}
}

func TestUnwrap(t *testing.T) {
	envelope := map[string]any{
		"type": "result",
		"ok":   true,
		"data": map[string]any{
			"items": []any{
				map[string]any{"id": "a-1"},
				map[string]any{"id": "a-2"},
			},
			"nested": map[string]any{
				"deep": map[string]any{
					"items": []any{map[string]any{"id": "x"}},
				},
			},
		},
	}

	t.Run("default path", func(t *testing.T) {
		list, err := Unwrap(envelope, "")
		if err != nil {
			t.Fatalf("Unwrap error: %v", err)
		}
		if len(list) != 2 {
			t.Fatalf("got %d items, want 2", len(list))
		}
	})

	t.Run("explicit path equals default", func(t *testing.T) {
		a, err := Unwrap(envelope, "")
		if err != nil {
			t.Fatalf("Unwrap default error: %v", err)
		}
		b, err := Unwrap(envelope, "data.items")
		if err != nil {
			t.Fatalf("Unwrap explicit error: %v", err)
		}
		if !reflect.DeepEqual(a, b) {
			t.Error("default and explicit data.items disagree")
		}
	})

	t.Run("deep path", func(t *testing.T) {
		list, err := Unwrap(envelope, "data.nested.deep.items")
		if err != nil {
			t.Fatalf("Unwrap error: %v", err)
		}
		if len(list) != 1 {
			t.Fatalf("got %d items, want 1", len(list))
		}
	})

	t.Run("missing segment", func(t *testing.T) {
		if _, err := Unwrap(envelope, "data.absent"); err == nil {
			t.Error("expected error for missing segment")
		}
	})

	t.Run("non-list target", func(t *testing.T) {
		if _, err := Unwrap(envelope, "data.nested"); err == nil {
			t.Error("expected error for non-list target")
		}
	})

	t.Run("segment through non-object", func(t *testing.T) {
		if _, err := Unwrap(envelope, "ok.items"); err == nil {
			t.Error("expected error when traversing a scalar")
		}
	})
}

func TestExpandAppBin(t *testing.T) {
	tests := []struct {
		name    string
		cmdline string
		bin     string
		want    string
	}{
		{
			"simple substitution",
			"${APP_BIN} list-tasks --project alpha",
			"example-app",
			"example-app list-tasks --project alpha",
		},
		{
			"every occurrence",
			"${APP_BIN} a && ${APP_BIN} b",
			"demo",
			"demo a && demo b",
		},
		{
			"no token is a no-op",
			"echo hello",
			"demo",
			"echo hello",
		},
		{
			"bin with spaces is quoted",
			"${APP_BIN} schema",
			"/opt/my tools/demo",
			`"/opt/my tools/demo" schema`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExpandAppBin(tt.cmdline, tt.bin); got != tt.want {
				t.Errorf("ExpandAppBin = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSplit(t *testing.T) {
	argv, err := Split(`"/opt/my tools/demo" list-tasks --project alpha`)
	if err != nil {
		t.Fatalf("Split error: %v", err)
	}
	want := []string{"/opt/my tools/demo", "list-tasks", "--project", "alpha"}
	if !reflect.DeepEqual(argv, want) {
		t.Errorf("Split = %v, want %v", argv, want)
	}

	if _, err := Split("   "); err == nil {
		t.Error("expected error for empty command line")
	}
}

func TestIsBranch(t *testing.T) {
	if !(Item{Command: "${APP_BIN} schema"}).IsBranch() {
		t.Error("item with command should be a branch")
	}
	if (Item{Title: "leaf", Content: "text"}).IsBranch() {
		t.Error("item without command should not be a branch")
	}
}
