// Package domain defines events for the event-driven architecture.
// Events let the shell and diagnostics observe the render pipeline without coupling to it.
package domain

import (
	"time"
)

// Event is the base interface for all events in the system.
// All events must implement this interface to be published via the event bus.
type Event interface {
	// Type returns the event type identifier
	Type() EventType

	// Timestamp returns when the event occurred
	Timestamp() time.Time
}

// EventType is a string identifier for different event types.
type EventType string

// Event type constants define all possible events in the system.
const (
	// Document events
	EventDocumentRendered EventType = "document.rendered"
	EventDocumentMissing  EventType = "document.missing"
	EventDocumentDegraded EventType = "document.degraded"

	// Resource events
	EventResourceRewritten EventType = "resource.rewritten"
)

// EventHandler is a function that handles events.
type EventHandler func(event Event)

// SubscriptionID uniquely identifies an event subscription.
type SubscriptionID string

// baseEvent provides common event functionality.
// All concrete events should embed this struct.
type baseEvent struct {
	timestamp time.Time
}

// Timestamp returns when the event occurred.
func (e baseEvent) Timestamp() time.Time {
	return e.timestamp
}

// newBaseEvent creates a new base event with the current timestamp.
func newBaseEvent() baseEvent {
	return baseEvent{timestamp: time.Now()}
}

// DocumentRenderedEvent is published after a document has been rendered from disk.
type DocumentRenderedEvent struct {
	baseEvent
	Reference DocumentReference
	Path      string
	Kind      ContentKind
}

// Type returns the event type.
func (e DocumentRenderedEvent) Type() EventType {
	return EventDocumentRendered
}

// NewDocumentRenderedEvent creates a new DocumentRenderedEvent.
func NewDocumentRenderedEvent(ref DocumentReference, path string, kind ContentKind) DocumentRenderedEvent {
	return DocumentRenderedEvent{
		baseEvent: newBaseEvent(),
		Reference: ref,
		Path:      path,
		Kind:      kind,
	}
}

// DocumentMissingEvent is published when a document has no backing file.
type DocumentMissingEvent struct {
	baseEvent
	Reference DocumentReference
	Path      string
	Err       error // wraps ErrDocumentNotFound
}

// Type returns the event type.
func (e DocumentMissingEvent) Type() EventType {
	return EventDocumentMissing
}

// NewDocumentMissingEvent creates a new DocumentMissingEvent.
func NewDocumentMissingEvent(ref DocumentReference, path string, err error) DocumentMissingEvent {
	return DocumentMissingEvent{
		baseEvent: newBaseEvent(),
		Reference: ref,
		Path:      path,
		Err:       err,
	}
}

// DocumentDegradedEvent is published when a document could not be rendered
// as intended and a fallback representation was produced instead.
type DocumentDegradedEvent struct {
	baseEvent
	Reference DocumentReference
	Path      string
	Err       error
}

// Type returns the event type.
func (e DocumentDegradedEvent) Type() EventType {
	return EventDocumentDegraded
}

// NewDocumentDegradedEvent creates a new DocumentDegradedEvent.
func NewDocumentDegradedEvent(ref DocumentReference, path string, err error) DocumentDegradedEvent {
	return DocumentDegradedEvent{
		baseEvent: newBaseEvent(),
		Reference: ref,
		Path:      path,
		Err:       err,
	}
}

// ResourceRewrittenEvent is published when an embedded resource reference is substituted.
type ResourceRewrittenEvent struct {
	baseEvent
	Original string
	Resolved string
}

// Type returns the event type.
func (e ResourceRewrittenEvent) Type() EventType {
	return EventResourceRewritten
}

// NewResourceRewrittenEvent creates a new ResourceRewrittenEvent.
func NewResourceRewrittenEvent(original, resolved string) ResourceRewrittenEvent {
	return ResourceRewrittenEvent{
		baseEvent: newBaseEvent(),
		Original:  original,
		Resolved:  resolved,
	}
}
