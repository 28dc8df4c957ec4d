package progress

import (
	"encoding/json"
	"io"
	"sync"
)

// Event is one progress report from a running handler. Seq starts at 1 and
// increases by one per emission within an invocation; InvocationID lets a
// host demultiplex concurrent invocations.
type Event struct {
	Message      string  `json:"message"`
	Percent      float64 `json:"percent"`
	Stage        string  `json:"stage,omitempty"`
	Command      string  `json:"command,omitempty"`
	Seq          int     `json:"seq"`
	InvocationID string  `json:"invocation_id,omitempty"`
}

// Emitter receives events as they are emitted. Implementations must deliver
// events from a single invocation in emission order.
type Emitter interface {
	Emit(Event)
}

// StreamEmitter writes each event as one JSON line:
//
//	{"type":"progress","data":{...}}
//
// The mutex keeps lines whole when a host runs invocations concurrently; it
// does not impose a global order across invocations.
type StreamEmitter struct {
	mu sync.Mutex
	w  io.Writer
}

// NewStream returns an emitter writing JSON lines to w.
func NewStream(w io.Writer) *StreamEmitter {
	return &StreamEmitter{w: w}
}

type eventLine struct {
	Type string `json:"type"`
	Data Event  `json:"data"`
}

// Emit writes the event. Marshal or write failures are dropped: progress is
// fire-and-forget and must never fail the invocation that emitted it.
func (s *StreamEmitter) Emit(ev Event) {
	raw, err := json.Marshal(eventLine{Type: "progress", Data: ev})
	if err != nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	_, _ = s.w.Write(append(raw, '\n'))
}

// Discard swallows every event. Used in human-output mode, where progress
// lines would corrupt the rendered text.
var Discard Emitter = discard{}

type discard struct{}

func (discard) Emit(Event) {}

// Recorder collects events in memory for tests and embedding hosts.
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

// Emit appends the event.
func (r *Recorder) Emit(ev Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
}

// Events returns a copy of everything recorded so far.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}
