// Package eventbus provides the in-process event bus of the About dialog.
package eventbus

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/tejashwikalptaru/aboutdocs/internal/domain"
	"github.com/tejashwikalptaru/aboutdocs/internal/ports"
)

// ErrClosed is returned by Close on a bus that is already closed.
var ErrClosed = errors.New("event bus closed")

// SyncEventBus delivers events on the publishing goroutine, in subscription order.
//
// Handlers and filters run outside the lock, so a handler may subscribe,
// unsubscribe or publish without deadlocking. A panic in either is logged and
// contained to that subscription.
type SyncEventBus struct {
	logger *slog.Logger

	mu     sync.RWMutex
	subs   []subscription
	nextID uint64
	closed bool
}

// subscription is one registered handler. An empty eventType matches every event.
type subscription struct {
	id        domain.SubscriptionID
	eventType domain.EventType
	filter    ports.EventFilter
	handler   domain.EventHandler
}

func (s subscription) wants(event domain.Event) bool {
	return s.eventType == "" || s.eventType == event.Type()
}

// NewSyncEventBus creates an empty bus that logs nothing until SetLogger is called.
func NewSyncEventBus() *SyncEventBus {
	return &SyncEventBus{}
}

// SetLogger sets the logger used for handler panics and delivery traces.
func (bus *SyncEventBus) SetLogger(logger *slog.Logger) {
	bus.mu.Lock()
	bus.logger = logger
	bus.mu.Unlock()
}

// Publish delivers event to every subscription that wants it. Nil events and
// publishes after Close are dropped.
func (bus *SyncEventBus) Publish(event domain.Event) {
	if event == nil {
		return
	}

	bus.mu.RLock()
	if bus.closed {
		bus.mu.RUnlock()
		return
	}
	targets := make([]subscription, 0, len(bus.subs))
	for _, sub := range bus.subs {
		if sub.wants(event) {
			targets = append(targets, sub)
		}
	}
	logger := bus.logger
	bus.mu.RUnlock()

	for _, sub := range targets {
		bus.deliver(logger, sub, event)
	}
}

// deliver runs one subscription's filter and handler, containing panics.
func (bus *SyncEventBus) deliver(logger *slog.Logger, sub subscription, event domain.Event) {
	defer func() {
		if r := recover(); r != nil && logger != nil {
			logger.Error("event subscriber panicked",
				slog.Any("panic", r),
				slog.String("subscription", string(sub.id)),
				slog.String("event_type", string(event.Type())))
		}
	}()

	if sub.filter != nil && !sub.filter(event) {
		return
	}
	if logger != nil {
		logger.Debug("delivering event",
			slog.String("event_type", string(event.Type())),
			slog.String("subscription", string(sub.id)))
	}
	sub.handler(event)
}

// Subscribe registers handler for eventType.
func (bus *SyncEventBus) Subscribe(eventType domain.EventType, handler domain.EventHandler) domain.SubscriptionID {
	return bus.add(eventType, nil, handler)
}

// SubscribeFiltered registers handler for the events of eventType that filter accepts.
func (bus *SyncEventBus) SubscribeFiltered(eventType domain.EventType, filter ports.EventFilter, handler domain.EventHandler) domain.SubscriptionID {
	return bus.add(eventType, filter, handler)
}

// SubscribeAll registers handler for every event.
func (bus *SyncEventBus) SubscribeAll(handler domain.EventHandler) domain.SubscriptionID {
	return bus.add("", nil, handler)
}

// add panics on a nil handler or a closed bus: both are wiring mistakes.
func (bus *SyncEventBus) add(eventType domain.EventType, filter ports.EventFilter, handler domain.EventHandler) domain.SubscriptionID {
	if handler == nil {
		panic("eventbus: nil handler")
	}

	bus.mu.Lock()
	defer bus.mu.Unlock()

	if bus.closed {
		panic("eventbus: subscribe after close")
	}

	bus.nextID++
	id := domain.SubscriptionID(fmt.Sprintf("sub-%d", bus.nextID))
	bus.subs = append(bus.subs, subscription{id: id, eventType: eventType, filter: filter, handler: handler})

	return id
}

// Unsubscribe removes the subscription with id, keeping the order of the rest.
func (bus *SyncEventBus) Unsubscribe(id domain.SubscriptionID) {
	bus.mu.Lock()
	defer bus.mu.Unlock()

	for i, sub := range bus.subs {
		if sub.id == id {
			bus.subs = append(bus.subs[:i:i], bus.subs[i+1:]...)
			return
		}
	}
}

// HasSubscribers reports whether an event of eventType would reach any handler.
// Filters are not consulted.
func (bus *SyncEventBus) HasSubscribers(eventType domain.EventType) bool {
	bus.mu.RLock()
	defer bus.mu.RUnlock()

	for _, sub := range bus.subs {
		if sub.eventType == "" || sub.eventType == eventType {
			return true
		}
	}
	return false
}

// Close drops all subscriptions. Closing twice returns ErrClosed.
func (bus *SyncEventBus) Close() error {
	bus.mu.Lock()
	defer bus.mu.Unlock()

	if bus.closed {
		return ErrClosed
	}
	bus.closed = true
	bus.subs = nil

	return nil
}

var _ ports.EventBus = (*SyncEventBus)(nil)
