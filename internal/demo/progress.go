package demo

import (
	"fmt"
	"time"

	"github.com/termbridge-labs/termbridge/internal/registry"
	"github.com/termbridge-labs/termbridge/internal/schema"
)

type simProgressOut struct {
	Status     string `json:"status"`
	Steps      int    `json:"steps"`
	DurationMs int    `json:"duration_ms"`
}

func simulateProgressCmd() *registry.Descriptor {
	return &registry.Descriptor{
		Name:        "simulate-progress",
		Description: "Simulate a long task with streaming progress events.",
		Input: schema.NewInput(
			schema.Field{Name: "steps", Kind: schema.Integer, Description: "Number of progress steps",
				Default: 8, Ge: schema.FloatPtr(1), Le: schema.FloatPtr(100)},
			schema.Field{Name: "delay_ms", Kind: schema.Integer, Description: "Delay per step in milliseconds",
				Default: 400, Ge: schema.FloatPtr(50), Le: schema.FloatPtr(5000)},
		),
		Output: schema.NewOutput(
			schema.Field{Name: "status", Kind: schema.String},
			schema.Field{Name: "steps", Kind: schema.Integer},
			schema.Field{Name: "duration_ms", Kind: schema.Integer},
		),
		Handler: func(call *registry.Call) (any, error) {
			steps := call.Int("steps", 8)
			delay := time.Duration(call.Int("delay_ms", 400)) * time.Millisecond

			start := time.Now()
			for i := 0; i < steps; i++ {
				pct := float64(i) / float64(steps) * 100.0
				call.Progress(fmt.Sprintf("Step %d/%d", i+1, steps), pct, "working")
				time.Sleep(delay)
			}
			call.Progress("Finalizing", 100.0, "finalize")

			return simProgressOut{
				Status:     "done",
				Steps:      steps,
				DurationMs: int(time.Since(start).Milliseconds()),
			}, nil
		},
	}
}

type streamLogsOut struct {
	Status        string `json:"status"`
	LinesStreamed int    `json:"lines_streamed"`
}

func streamLogsCmd() *registry.Descriptor {
	levels := []string{"INFO", "DEBUG", "WARN", "ERROR"}
	messages := []string{
		"Processing request",
		"Connecting to database",
		"Query executed successfully",
		"Cache miss, fetching from source",
		"User authenticated",
		"Starting background job",
		"Task completed",
		"Cleaning up resources",
	}
	return &registry.Descriptor{
		Name:        "stream-logs",
		Description: "Stream simulated log output",
		Input: schema.NewInput(
			schema.Field{Name: "lines", Kind: schema.Integer, Description: "Number of lines to stream",
				Default: 50, Ge: schema.FloatPtr(1), Le: schema.FloatPtr(10000)},
		),
		Output: schema.NewOutput(
			schema.Field{Name: "status", Kind: schema.String},
			schema.Field{Name: "lines_streamed", Kind: schema.Integer},
		),
		Handler: func(call *registry.Call) (any, error) {
			lines := call.Int("lines", 50)
			for i := 0; i < lines; i++ {
				timestamp := time.Now().Format("15:04:05.000")
				line := fmt.Sprintf("[%s] [%s] %s",
					timestamp, levels[i%len(levels)], messages[i%len(messages)])
				call.Progress(line, float64(i)/float64(lines)*100.0, "logs")
				time.Sleep(100 * time.Millisecond)
			}
			return streamLogsOut{Status: "completed", LinesStreamed: lines}, nil
		},
	}
}
