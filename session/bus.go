package session

import "sync"

// EventType identifies a session store mutation.
type EventType int

const (
	// AuthSet fires after a login or signup writes the session.
	AuthSet EventType = iota
	// AuthCleared fires after logout or a 401 wipes the session.
	AuthCleared
)

// Event describes one mutation of the session store.
type Event struct {
	Type EventType
	SID  string
}

// Bus delivers session mutations to subscribers synchronously. It replaces
// interval polling of the auth state: components react to the mutation that
// actually happened.
type Bus struct {
	mu   sync.RWMutex
	subs []func(Event)
}

// Subscribe registers fn for all future events.
func (b *Bus) Subscribe(fn func(Event)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subs = append(b.subs, fn)
}

// Publish delivers ev to every subscriber on the caller's goroutine.
func (b *Bus) Publish(ev Event) {
	b.mu.RLock()
	subs := make([]func(Event), len(b.subs))
	copy(subs, b.subs)
	b.mu.RUnlock()
	for _, fn := range subs {
		fn(ev)
	}
}

// Events is the global session mutation bus.
var Events = &Bus{}
