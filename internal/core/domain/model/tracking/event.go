// Package tracking contains the TrackingEvent entity: the append-only history
// of an order's journey. The core appends events on creation, claiming,
// transit updates, delivery confirmation, and cancellation.
package tracking

import (
	"errors"
	"time"

	"mainbridge/internal/core/domain/model/kernel"
	"mainbridge/internal/pkg/errs"
)

// ErrEventIsNotConstructed is returned when a TrackingEvent instance was not
// created through NewEvent or RestoreEvent.
var ErrEventIsNotConstructed = errors.New("TrackingEvent must be created via NewEvent constructor")

// Event is one entry in an order's tracking history.
type Event struct {
	id        kernel.UUID
	orderID   kernel.UUID
	status    string
	location  string
	note      string
	createdAt time.Time

	isConstructed bool
}

// NewEvent creates one tracking entry for the given order.
func NewEvent(
	id kernel.UUID,
	orderID kernel.UUID,
	status, location, note string,
	now time.Time,
) (*Event, error) {
	if err := errors.Join(
		id.Validate(),
		orderID.Validate(),
	); err != nil {
		return nil, err
	}
	if status == "" {
		return nil, errs.NewValueIsRequiredError("status")
	}

	return &Event{
		id:            id,
		orderID:       orderID,
		status:        status,
		location:      location,
		note:          note,
		createdAt:     now,
		isConstructed: true,
	}, nil
}

// RestoreEvent reconstructs a tracking event from persistence.
func RestoreEvent(
	id kernel.UUID,
	orderID kernel.UUID,
	status, location, note string,
	createdAt time.Time,
) (*Event, error) {
	return NewEvent(id, orderID, status, location, note, createdAt)
}

// Validate ensures the event was properly constructed.
func (e *Event) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrEventIsNotConstructed
	}
	return nil
}

// ID returns the event's unique identifier.
func (e *Event) ID() kernel.UUID {
	return e.id
}

// Order returns the tracked order's identifier.
func (e *Event) Order() kernel.UUID {
	return e.orderID
}

// Status returns the human-readable status line, e.g. "Order created".
func (e *Event) Status() string {
	return e.status
}

// Location returns the free-form location, e.g. "Curitiba, PR" or "En route".
func (e *Event) Location() string {
	return e.location
}

// Note returns the optional note.
func (e *Event) Note() string {
	return e.note
}

// CreatedAt returns the event timestamp.
func (e *Event) CreatedAt() time.Time {
	return e.createdAt
}
