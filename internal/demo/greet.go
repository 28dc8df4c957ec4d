package demo

import (
	"strings"

	"github.com/termbridge-labs/termbridge/internal/registry"
	"github.com/termbridge-labs/termbridge/internal/schema"
)

type helloOut struct {
	Greeting string `json:"greeting"`
}

func helloCmd() *registry.Descriptor {
	return &registry.Descriptor{
		Name:        "hello",
		Description: "Say hello.",
		Input: schema.NewInput(
			schema.Field{Name: "name", Kind: schema.String, Description: "Person's name", Required: true},
			schema.Field{Name: "shout", Kind: schema.Boolean, Description: "Uppercase the greeting", Default: false},
		),
		Output: schema.NewOutput(
			schema.Field{Name: "greeting", Kind: schema.String},
		),
		Handler: func(call *registry.Call) (any, error) {
			text := "Hello, " + call.String("name", "") + "!"
			if call.Bool("shout", false) {
				text = strings.ToUpper(text)
			}
			return helloOut{Greeting: text}, nil
		},
	}
}

type validateTextOut struct {
	OK       bool   `json:"ok"`
	Username string `json:"username"`
}

func validateTextCmd() *registry.Descriptor {
	return &registry.Descriptor{
		Name:        "validate-text",
		Description: "Validate a username.",
		Input: schema.NewInput(
			schema.Field{
				Name:        "username",
				Kind:        schema.String,
				Description: "Username",
				Required:    true,
				MinLen:      schema.IntPtr(3),
				MaxLen:      schema.IntPtr(12),
				Pattern:     "^[a-z0-9_]+$",
			},
		),
		Output: schema.NewOutput(
			schema.Field{Name: "ok", Kind: schema.Boolean},
			schema.Field{Name: "username", Kind: schema.String},
		),
		Handler: func(call *registry.Call) (any, error) {
			return validateTextOut{OK: true, Username: call.String("username", "")}, nil
		},
	}
}
