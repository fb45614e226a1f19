package events

import "sync"

// Recorder keeps every emitted event in order, optionally forwarding to another emitter
type Recorder struct {
	mu     sync.Mutex
	events []Event
	next   Emitter
}

// NewRecorder creates a recorder that forwards to next (may be nil)
func NewRecorder(next Emitter) *Recorder {
	return &Recorder{next: next}
}

// Emit implements Emitter
func (r *Recorder) Emit(event Event) {
	r.mu.Lock()
	r.events = append(r.events, event)
	r.mu.Unlock()

	if r.next != nil {
		r.next.Emit(event)
	}
}

// Events returns a copy of the recorded events
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}

// Count returns how many events of one type were recorded
func (r *Recorder) Count(eventType EventType) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := 0
	for _, e := range r.events {
		if e.Type == eventType {
			n++
		}
	}
	return n
}

// Messages returns the text of recorded message events
func (r *Recorder) Messages() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []string
	for _, e := range r.events {
		if e.Type == EventTypeMessage {
			out = append(out, e.Message)
		}
	}
	return out
}

// Reset drops recorded events
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = nil
}
