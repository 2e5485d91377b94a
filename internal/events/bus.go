// Package events provides the process-wide notification channel that
// decouples session lifecycle changes from the UI components reacting to
// them. The bus is constructed explicitly and handed to whoever owns the
// session; there is no package-level singleton.
package events

import (
	"sync"

	"github.com/google/uuid"

	"github.com/harborbank/teller/internal/log"
)

// Well-known event names.
const (
	// UserLoggedOut is emitted after the session has been cleared on an
	// explicit logout. It carries no payload.
	UserLoggedOut = "user-logged-out"
)

// Handler is a subscriber callback. The payload may be nil.
type Handler func(payload any)

// Subscription identifies one registered handler and can cancel exactly
// that handler, leaving other subscribers to the same event untouched.
type Subscription struct {
	id    string
	event string
	bus   *Bus
}

// Event returns the event name this subscription is registered for.
func (s *Subscription) Event() string {
	return s.event
}

// Cancel removes this subscription from the bus. Cancelling twice is a
// no-op.
func (s *Subscription) Cancel() {
	s.bus.remove(s.event, s.id)
}

type registration struct {
	id      string
	handler Handler
}

// Bus is a synchronous publish/subscribe registry keyed by event name.
//
// Emit delivers to subscribers in subscription order on the calling
// goroutine. Each delivery is isolated: a panicking handler is recovered
// and logged so the remaining handlers still run.
type Bus struct {
	mu       sync.RWMutex
	handlers map[string][]registration
	logger   *log.Logger
}

// NewBus creates a new event bus.
func NewBus(logger *log.Logger) *Bus {
	if logger == nil {
		logger = log.DefaultLogger()
	}
	return &Bus{
		handlers: make(map[string][]registration),
		logger:   logger.With("component", "events"),
	}
}

// On registers handler for event and returns a cancellable subscription.
func (b *Bus) On(event string, handler Handler) *Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := uuid.NewString()
	b.handlers[event] = append(b.handlers[event], registration{
		id:      id,
		handler: handler,
	})

	return &Subscription{
		id:    id,
		event: event,
		bus:   b,
	}
}

// Emit invokes every handler currently registered for event, in
// subscription order, synchronously on the calling goroutine.
func (b *Bus) Emit(event string, payload any) {
	b.mu.RLock()
	regs := make([]registration, len(b.handlers[event]))
	copy(regs, b.handlers[event])
	b.mu.RUnlock()

	for _, reg := range regs {
		b.deliver(event, reg, payload)
	}
}

// deliver runs one handler, recovering a panic so subsequent handlers are
// not skipped.
func (b *Bus) deliver(event string, reg registration, payload any) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("event handler panicked",
				"event", event,
				"subscription_id", reg.id,
				"panic", r,
			)
		}
	}()

	reg.handler(payload)
}

// RemoveAll clears every subscriber for event. Prefer Subscription.Cancel;
// this exists for coarse teardown of an entire event name.
func (b *Bus) RemoveAll(event string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	delete(b.handlers, event)
}

// SubscriberCount returns the number of handlers registered for event.
// This is useful for monitoring and testing.
func (b *Bus) SubscriberCount(event string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return len(b.handlers[event])
}

func (b *Bus) remove(event, id string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	regs := b.handlers[event]
	for i, reg := range regs {
		if reg.id == id {
			b.handlers[event] = append(regs[:i], regs[i+1:]...)
			return
		}
	}
}
