// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package notify

import (
	"context"
	"sync"
)

// Kind names a family of events.
type Kind string

const (
	// RouteAccessed is emitted when a named page is requested.
	RouteAccessed Kind = "route-accessed"
	// StatusCode is emitted when a request ends with a notable status code.
	StatusCode Kind = "status-code"
	// FileReadSuccess is emitted when every file needed by a response has been read.
	FileReadSuccess Kind = "file-read-success"
	// FileReadError is emitted when a file needed by a response cannot be read.
	FileReadError Kind = "file-read-error"
)

// Event is the payload delivered to the handlers. Only the fields relevant
// to its Kind are set.
type Event struct {
	Kind Kind

	Route  string
	Status int
	Path   string
	Err    error
}

// Handler receives the events of the kind it is subscribed to.
type Handler func(ctx context.Context, event Event)

// Bus dispatches events to the handlers subscribed to their kind.
// It is safe for concurrent use.
type Bus struct {
	lock     sync.RWMutex
	handlers map[Kind][]Handler
}

// NewBus returns a Bus without subscribers.
func NewBus() *Bus {
	return &Bus{
		handlers: make(map[Kind][]Handler),
	}
}

// Subscribe registers handler for the events of kind.
func (b *Bus) Subscribe(kind Kind, handler Handler) {
	b.lock.Lock()
	defer b.lock.Unlock()
	b.handlers[kind] = append(b.handlers[kind], handler)
}

// Publish delivers event to the handlers of its kind in subscription order and
// returns once all of them have returned.
func (b *Bus) Publish(ctx context.Context, event Event) {
	b.lock.RLock()
	handlers := b.handlers[event.Kind]
	b.lock.RUnlock()

	for _, handler := range handlers {
		handler(ctx, event)
	}
}

// RouteAccessedEvent builds the event for a named route being served.
func RouteAccessedEvent(route string) Event {
	return Event{Kind: RouteAccessed, Route: route}
}

// StatusCodeEvent builds the event for a request ending with status.
func StatusCodeEvent(status int) Event {
	return Event{Kind: StatusCode, Status: status}
}

// FileReadSuccessEvent builds the event for path being read successfully.
func FileReadSuccessEvent(path string) Event {
	return Event{Kind: FileReadSuccess, Path: path}
}

// FileReadErrorEvent builds the event for a failed read of path.
func FileReadErrorEvent(path string, err error) Event {
	return Event{Kind: FileReadError, Path: path, Err: err}
}
