// Package ports define the EventBus interface for event-driven communication.
// The event bus lets the shell and diagnostics observe the document pipeline.
package ports

import (
	"github.com/tejashwikalptaru/aboutdocs/internal/domain"
)

// EventFilter decides whether a subscriber sees an event.
type EventFilter func(event domain.Event) bool

// EventBus carries document pipeline events from the render service to the shell.
//
// The render service publishes one event per outcome (rendered, missing, degraded)
// and one per substituted resource. The About window listens for problems with its
// own documents; the application logs everything at debug level.
//
// Thread-safety: Implementations must be thread-safe. Fyne callbacks may publish
// from the driver goroutine while the application subscribes from main.
type EventBus interface {
	// Publish hands event to every matching subscriber.
	Publish(event domain.Event)

	// Subscribe registers handler for one event type.
	Subscribe(eventType domain.EventType, handler domain.EventHandler) domain.SubscriptionID

	// SubscribeFiltered registers handler for one event type, limited to the
	// events filter accepts. A nil filter accepts every event.
	//
	//	bus.SubscribeFiltered(domain.EventDocumentMissing, func(e domain.Event) bool {
	//	    return e.(domain.DocumentMissingEvent).Reference.Name == "README.md"
	//	}, markTab)
	SubscribeFiltered(eventType domain.EventType, filter EventFilter, handler domain.EventHandler) domain.SubscriptionID

	// SubscribeAll registers handler for every event type.
	SubscribeAll(handler domain.EventHandler) domain.SubscriptionID

	// Unsubscribe removes a subscription. Unknown IDs are ignored.
	Unsubscribe(id domain.SubscriptionID)

	// HasSubscribers reports whether anyone would receive an event of eventType.
	// Publishers use it to skip building events nobody listens to.
	HasSubscribers(eventType domain.EventType) bool

	// Close drops every subscription. Later publishes are ignored.
	Close() error
}
