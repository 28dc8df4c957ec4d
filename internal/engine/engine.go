package engine

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/termbridge-labs/termbridge/internal/progress"
	"github.com/termbridge-labs/termbridge/internal/protocol"
	"github.com/termbridge-labs/termbridge/internal/registry"
	"github.com/termbridge-labs/termbridge/internal/render"
)

// Engine validates and executes invocations against a read-only registry.
// Invocations share no mutable state, so a host may run several concurrently.
type Engine struct {
	reg     *registry.Registry
	emitter progress.Emitter
	logger  *log.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithEmitter sets the progress emitter. Defaults to progress.Discard.
func WithEmitter(e progress.Emitter) Option {
	return func(eng *Engine) { eng.emitter = e }
}

// WithLogger sets the diagnostic logger. Defaults to a silent logger.
func WithLogger(l *log.Logger) Option {
	return func(eng *Engine) { eng.logger = l }
}

// New builds an engine over the given registry.
func New(reg *registry.Registry, opts ...Option) *Engine {
	eng := &Engine{
		reg:     reg,
		emitter: progress.Discard,
		logger:  log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(eng)
	}
	return eng
}

// Invoke runs one command to completion.
//
// Resolution and validation failures are returned as errors; the handler
// never runs and no envelope exists. Failures inside the handler are caught
// here and normalized into an ok:false envelope. A handler returning data
// that violates its own declared output schema is an internal defect and is
// surfaced as a *schema.OutputSchemaError rather than coerced.
func (e *Engine) Invoke(name string, raw map[string]any) (*protocol.Envelope, error) {
	desc, err := e.reg.Resolve(name)
	if err != nil {
		return nil, err
	}

	args := raw
	if desc.Input != nil {
		args, err = desc.Input.Validate(raw)
		if err != nil {
			return nil, err
		}
	}

	id := uuid.NewString()
	seq := 0
	emit := func(message string, percent float64, stage string) {
		seq++
		e.emitter.Emit(progress.Event{
			Message:      message,
			Percent:      percent,
			Stage:        stage,
			Command:      name,
			Seq:          seq,
			InvocationID: id,
		})
	}

	call := registry.NewCall(name, args, emit)
	start := time.Now()
	out, herr := runHandler(desc.Handler, call)
	elapsed := time.Since(start)

	if herr != nil {
		e.logger.Debug("handler failed",
			"command", name, "invocation", id, "duration", elapsed, "err", herr)
		return protocol.NewFailure(name, herr), nil
	}

	payload, err := normalize(out)
	if err != nil {
		return nil, fmt.Errorf("normalizing output of %q: %w", name, err)
	}

	if desc.Output != nil {
		if err := desc.Output.Check(name, payload); err != nil {
			return nil, err
		}
	}

	human := ""
	if obj, ok := payload.(map[string]any); ok && desc.Renderer != nil {
		human = desc.Renderer(obj)
	} else {
		human = render.Default(payload)
	}

	e.logger.Debug("invocation complete",
		"command", name, "invocation", id, "duration", elapsed, "events", seq)

	return protocol.NewResult(payload, human), nil
}

// runHandler shields the engine from handler panics so the caller always
// receives a well-formed envelope.
func runHandler(h registry.Handler, call *registry.Call) (out any, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("handler panic: %v", r)
		}
	}()
	return h(call)
}

// normalize round-trips the handler's return value through JSON so the
// payload is built from generic types regardless of the Go types the handler
// used. A nil return becomes an empty mapping.
func normalize(v any) (any, error) {
	if v == nil {
		return map[string]any{}, nil
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out any
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}
