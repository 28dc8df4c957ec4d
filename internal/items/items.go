package items

import (
	"fmt"
	"strings"

	shellwords "github.com/mattn/go-shellwords"

	"github.com/termbridge-labs/termbridge/internal/branding"
)

// Item is one node in a list-shaped payload. Fields beyond id/title are
// optional; which ones are set determines the widget the UI selects.
type Item struct {
	ID    string `json:"id,omitempty"`
	Title string `json:"title"`

	// WidgetTag explicitly selects a widget kind. When empty, the kind is
	// inferred from which other fields are present.
	WidgetTag string `json:"widget,omitempty"`

	// Markdown widgets read from Path or use inline Content.
	Path    string `json:"path,omitempty"`
	Content string `json:"content,omitempty"`

	// Data is an inline raw payload for plain leaves.
	Data any `json:"data,omitempty"`

	// Command is the derived command a branch item is expanded with. Unwrap
	// is the dotted path to the child item list inside the child's envelope
	// (default "data.items"). InitialText is shown before first expansion.
	Command     string `json:"command,omitempty"`
	Unwrap      string `json:"unwrap,omitempty"`
	InitialText string `json:"initial_text,omitempty"`

	// Watchdog widgets run a set of subprocess commands.
	Commands   []string `json:"commands,omitempty"`
	Sequential *bool    `json:"sequential,omitempty"`
}

// IsBranch reports whether the item defers to a derived command for its
// content. An item with neither content, data, nor command is an inert leaf
// rendered with only its title.
func (it Item) IsBranch() bool { return it.Command != "" }

// Widget kinds form a closed set; the UI dispatches on the tag rather than
// probing field presence.
const (
	KindPlain     = "plain"
	KindMarkdown  = "markdown"
	KindWatchdog  = "watchdog"
	KindLazyItems = "lazy_items"
)

// Widget is the tagged variant an item classifies into. Each concrete widget
// carries only the fields its kind needs.
type Widget interface {
	Kind() string
}

// Plain is an inert or data-carrying leaf.
type Plain struct {
	Title string
	Data  any
}

func (Plain) Kind() string { return KindPlain }

// Markdown renders a document from a file path or inline content.
type Markdown struct {
	Path    string
	Content string
}

func (Markdown) Kind() string { return KindMarkdown }

// Watchdog runs subprocess commands and shows their output.
type Watchdog struct {
	Commands   []string
	Sequential bool
}

func (Watchdog) Kind() string { return KindWatchdog }

// LazyItems fetches a nested item list on expansion by re-invoking the
// derived command.
type LazyItems struct {
	Command     string
	Unwrap      string
	InitialText string
}

func (LazyItems) Kind() string { return KindLazyItems }

// Classify resolves the item into its widget variant. An explicit tag wins;
// otherwise a derived command makes it lazy, markdown fields make it a
// document, and anything else is plain.
func (it Item) Classify() Widget {
	tag := strings.ToLower(it.WidgetTag)
	switch tag {
	case KindMarkdown:
		return Markdown{Path: it.Path, Content: it.Content}
	case KindWatchdog:
		sequential := false
		if it.Sequential != nil {
			sequential = *it.Sequential
		}
		return Watchdog{Commands: it.Commands, Sequential: sequential}
	case KindLazyItems:
		return LazyItems{Command: it.Command, Unwrap: it.Unwrap, InitialText: it.InitialText}
	case KindPlain:
		return Plain{Title: it.Title, Data: it.Data}
	}

	switch {
	case it.Command != "":
		return LazyItems{Command: it.Command, Unwrap: it.Unwrap, InitialText: it.InitialText}
	case it.Path != "" || it.Content != "":
		return Markdown{Path: it.Path, Content: it.Content}
	default:
		return Plain{Title: it.Title, Data: it.Data}
	}
}

// DefaultUnwrapPath is where nested items live inside a child envelope when
// the branch item declares no unwrap path of its own.
const DefaultUnwrapPath = "data.items"

// Unwrap resolves a dotted path inside an envelope mapping and returns the
// item list found there. An empty path means DefaultUnwrapPath.
func Unwrap(envelope map[string]any, path string) ([]any, error) {
	if path == "" {
		path = DefaultUnwrapPath
	}
	var cur any = envelope
	for _, seg := range strings.Split(path, ".") {
		obj, ok := cur.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("unwrap path %q: segment %q is not an object", path, seg)
		}
		cur, ok = obj[seg]
		if !ok {
			return nil, fmt.Errorf("unwrap path %q: segment %q not found", path, seg)
		}
	}
	list, ok := cur.([]any)
	if !ok {
		return nil, fmt.Errorf("unwrap path %q: value is not a list", path)
	}
	return list, nil
}

// ExpandAppBin substitutes the caller's binary invocation path for every
// placeholder token in a derived command. This is the caller-side templating
// step: the core emits commands with the token intact. A bin containing
// whitespace is quoted so it survives shell splitting as one argument.
func ExpandAppBin(cmdline, bin string) string {
	if strings.ContainsAny(bin, " \t") {
		bin = `"` + strings.ReplaceAll(bin, `"`, `\"`) + `"`
	}
	return strings.ReplaceAll(cmdline, branding.Placeholder(), bin)
}

// Split shell-splits an expanded derived command into argv, honoring quotes.
func Split(cmdline string) ([]string, error) {
	argv, err := shellwords.Parse(cmdline)
	if err != nil {
		return nil, fmt.Errorf("parsing command line %q: %w", cmdline, err)
	}
	if len(argv) == 0 {
		return nil, fmt.Errorf("empty command line")
	}
	return argv, nil
}
