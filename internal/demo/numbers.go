package demo

import (
	"fmt"
	"time"

	"github.com/termbridge-labs/termbridge/internal/registry"
	"github.com/termbridge-labs/termbridge/internal/schema"
)

type sumOut struct {
	Total float64 `json:"total"`
	Count int     `json:"count"`
}

func sumNumbersCmd() *registry.Descriptor {
	return &registry.Descriptor{
		Name:        "sum-numbers",
		Description: "Sum a list of numbers.",
		Input: schema.NewInput(
			schema.Field{
				Name:        "numbers",
				Kind:        schema.Array,
				Elem:        schema.Number,
				Description: "Numbers to sum (use --numbers multiple times)",
				Required:    true,
			},
		),
		Output: schema.NewOutput(
			schema.Field{Name: "total", Kind: schema.Number},
			schema.Field{Name: "count", Kind: schema.Integer},
		),
		Handler: func(call *registry.Call) (any, error) {
			numbers := call.Floats("numbers")
			total := 0.0
			for _, n := range numbers {
				total += n
			}
			return sumOut{Total: total, Count: len(numbers)}, nil
		},
		Renderer: func(data map[string]any) string {
			return fmt.Sprintf("Sum of %v numbers: %v", data["count"], data["total"])
		},
	}
}

type paramsOut struct {
	Echo map[string]any `json:"echo"`
}

func testParamsCmd() *registry.Descriptor {
	return &registry.Descriptor{
		Name:        "test-params",
		Description: "Echo numeric params.",
		Input: schema.NewInput(
			schema.Field{Name: "count", Kind: schema.Integer, Description: "Item count",
				Default: 5, Ge: schema.FloatPtr(1), Le: schema.FloatPtr(10)},
			schema.Field{Name: "ratio", Kind: schema.Number, Description: "Ratio",
				Default: 0.5, Ge: schema.FloatPtr(0), Le: schema.FloatPtr(1)},
		),
		Output: schema.NewOutput(
			schema.Field{Name: "echo", Kind: schema.Object},
		),
		Handler: func(call *registry.Call) (any, error) {
			// Short processing delay so a consuming UI can show a submit spinner.
			time.Sleep(1200 * time.Millisecond)
			return paramsOut{Echo: map[string]any{
				"count": call.Int("count", 5),
				"ratio": call.Float("ratio", 0.5),
			}}, nil
		},
	}
}
