package event

import (
	"log"
	"runtime/debug"
	"sync"
)

// Handler is a function that handles an event.
type Handler func(Event)

// Bus is a synchronous pub-sub event bus. Handlers run on the publishing
// goroutine in registration order; a panicking handler is recovered and
// logged so it cannot block delivery to the rest.
type Bus struct {
	mu       sync.RWMutex
	handlers map[string][]Handler
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{handlers: make(map[string][]Handler)}
}

// Subscribe registers a handler for one event type.
func (b *Bus) Subscribe(eventType string, h Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[eventType] = append(b.handlers[eventType], h)
}

// SubscribeAll registers a handler called for every published event.
func (b *Bus) SubscribeAll(h Handler) {
	b.Subscribe("*", h)
}

// Publish dispatches an event, first to its type-specific handlers, then
// to wildcard handlers.
func (b *Bus) Publish(e Event) {
	b.mu.RLock()
	specific := append([]Handler(nil), b.handlers[e.EventType()]...)
	wildcard := append([]Handler(nil), b.handlers["*"]...)
	b.mu.RUnlock()

	for _, h := range specific {
		safeCall(h, e)
	}
	for _, h := range wildcard {
		safeCall(h, e)
	}
}

func safeCall(h Handler, e Event) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("ERROR: event handler panicked for %s: %v\n%s", e.EventType(), r, debug.Stack())
		}
	}()
	h(e)
}
