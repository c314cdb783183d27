// Package notify broadcasts change events emitted by a settings registry.
//
// Observers subscribe globally or per variable name and receive an Event
// after every successful commit. No-op writes never generate events.
package notify

import (
	"sync"
)

// EventKind says what kind of commit produced the event.
type EventKind int

const (
	// EventSet indicates a value was assigned.
	EventSet EventKind = iota

	// EventReset indicates a value was restored to its applicable default.
	EventReset

	// EventInitialSet indicates a definition's starting value was recorded.
	EventInitialSet
)

// String returns the event kind name.
func (k EventKind) String() string {
	switch k {
	case EventSet:
		return "set"
	case EventReset:
		return "reset"
	case EventInitialSet:
		return "initial-set"
	default:
		return "unknown"
	}
}

// Event describes one committed change.
type Event struct {
	// Name is the variable name, e.g. "sidebar_width" or "work:folder".
	Name string

	// Kind is the kind of commit.
	Kind EventKind
}

// Observer is called synchronously for each matching event.
type Observer func(Event)

// Subscription is a handle to an active observer registration.
type Subscription struct {
	id   uint64
	name string
	hub  *Hub
}

// Unsubscribe removes the observer. Safe to call more than once.
func (s *Subscription) Unsubscribe() {
	if s.hub != nil {
		s.hub.unsubscribe(s)
	}
}

// Hub fans events out to subscribed observers.
type Hub struct {
	mu     sync.RWMutex
	global map[uint64]Observer
	byName map[string]map[uint64]Observer
	nextID uint64
}

// New creates an empty Hub.
func New() *Hub {
	return &Hub{
		global: make(map[uint64]Observer),
		byName: make(map[string]map[uint64]Observer),
	}
}

// Subscribe registers an observer for every event.
func (h *Hub) Subscribe(fn Observer) *Subscription {
	h.mu.Lock()
	defer h.mu.Unlock()

	id := h.nextID
	h.nextID++
	h.global[id] = fn
	return &Subscription{id: id, hub: h}
}

// SubscribeName registers an observer for events about one variable.
func (h *Hub) SubscribeName(name string, fn Observer) *Subscription {
	h.mu.Lock()
	defer h.mu.Unlock()

	id := h.nextID
	h.nextID++
	if h.byName[name] == nil {
		h.byName[name] = make(map[uint64]Observer)
	}
	h.byName[name][id] = fn
	return &Subscription{id: id, name: name, hub: h}
}

// Notify delivers the event to all matching observers. Observers run
// synchronously, outside the hub's lock.
func (h *Hub) Notify(ev Event) {
	h.mu.RLock()
	observers := make([]Observer, 0, len(h.global))
	for _, fn := range h.global {
		observers = append(observers, fn)
	}
	if named, ok := h.byName[ev.Name]; ok {
		for _, fn := range named {
			observers = append(observers, fn)
		}
	}
	h.mu.RUnlock()

	for _, fn := range observers {
		fn(ev)
	}
}

func (h *Hub) unsubscribe(s *Subscription) {
	h.mu.Lock()
	defer h.mu.Unlock()

	delete(h.global, s.id)
	if named, ok := h.byName[s.name]; ok {
		delete(named, s.id)
		if len(named) == 0 {
			delete(h.byName, s.name)
		}
	}
}
