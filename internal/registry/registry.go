package registry

import (
	"fmt"
	"sort"

	"github.com/termbridge-labs/termbridge/internal/schema"
)

// Handler is the business logic behind one command. It receives validated,
// typed arguments through the Call and may emit progress while running.
type Handler func(call *Call) (any, error)

// Renderer produces a human-readable string from a normalized payload,
// overriding the generic default representation.
type Renderer func(data map[string]any) string

// Descriptor is the immutable registration record of one command.
type Descriptor struct {
	Name        string
	Description string

	// Input is nil for commands that take no arguments.
	Input *schema.Input
	// Output is nil for commands that return free-form mappings.
	Output *schema.Output

	Handler  Handler
	Renderer Renderer
}

// Registry holds command descriptors keyed by name.
type Registry struct {
	commands map[string]*Descriptor
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{commands: make(map[string]*Descriptor)}
}

// Register adds a descriptor. It fails with *DuplicateCommandError if the
// name is already taken.
func (r *Registry) Register(d *Descriptor) error {
	if d.Name == "" {
		return fmt.Errorf("registering command: name is empty")
	}
	if d.Handler == nil {
		return fmt.Errorf("registering command %q: handler is nil", d.Name)
	}
	if _, exists := r.commands[d.Name]; exists {
		return &DuplicateCommandError{Name: d.Name}
	}
	r.commands[d.Name] = d
	return nil
}

// Resolve returns the descriptor for a name, or *UnknownCommandError.
func (r *Registry) Resolve(name string) (*Descriptor, error) {
	d, ok := r.commands[name]
	if !ok {
		return nil, &UnknownCommandError{Name: name}
	}
	return d, nil
}

// All returns every descriptor, sorted by name.
func (r *Registry) All() []*Descriptor {
	out := make([]*Descriptor, 0, len(r.commands))
	for _, d := range r.commands {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// DuplicateCommandError reports a second registration under the same name.
type DuplicateCommandError struct {
	Name string
}

func (e *DuplicateCommandError) Error() string {
	return fmt.Sprintf("command %q is already registered", e.Name)
}

// UnknownCommandError reports a lookup of an unregistered name.
type UnknownCommandError struct {
	Name string
}

func (e *UnknownCommandError) Error() string {
	return fmt.Sprintf("unknown command %q", e.Name)
}
