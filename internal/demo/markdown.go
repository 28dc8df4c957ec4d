package demo

import (
	"fmt"
	"os"
	"strings"

	"github.com/termbridge-labs/termbridge/internal/registry"
	"github.com/termbridge-labs/termbridge/internal/schema"
)

type markdownOut struct {
	Content string `json:"content"`
	Title   string `json:"title"`
}

func renderMarkdownCmd() *registry.Descriptor {
	return &registry.Descriptor{
		Name:        "render-markdown",
		Description: "Render markdown file content",
		Input: schema.NewInput(
			schema.Field{Name: "file", Kind: schema.String, Description: "Path to markdown file", Required: true},
		),
		Output: schema.NewOutput(
			schema.Field{Name: "content", Kind: schema.String},
			schema.Field{Name: "title", Kind: schema.String},
		),
		Handler: func(call *registry.Call) (any, error) {
			path := call.String("file", "")
			raw, err := os.ReadFile(path)
			if err != nil {
				// A missing document renders as an error page, not as an
				// invocation failure: the envelope stays ok:true.
				if os.IsNotExist(err) {
					return markdownOut{
						Content: fmt.Sprintf("File not found: %s", path),
						Title:   "Error",
					}, nil
				}
				return markdownOut{
					Content: fmt.Sprintf("Error reading file: %v", err),
					Title:   "Error",
				}, nil
			}

			content := string(raw)
			title := "Document"
			for _, line := range strings.Split(content, "\n") {
				if strings.HasPrefix(line, "# ") {
					title = strings.TrimSpace(line[2:])
					break
				}
			}
			return markdownOut{Content: content, Title: title}, nil
		},
	}
}
