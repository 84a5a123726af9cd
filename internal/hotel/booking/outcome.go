// Package booking allocates hotel rooms to booking requests and serializes
// every access to the shared inventory.
package booking

import (
	"fmt"

	"github.com/cory-johannsen/hotel/internal/hotel/inventory"
)

// MaxRoomsPerBooking is the most rooms a single request may claim.
const MaxRoomsPerBooking = 5

// Response texts reported to clients.
const (
	SuccessMessage        = "Rooms booked successfully"
	InvalidCountMessage   = "Number of rooms must be positive."
	limitExceededMessage  = "You can only book a maximum of 5 rooms at a time."
	notEnoughRoomsMessage = "Not enough rooms available!"
	noRoomsMessage        = "No rooms available"
)

// Reason explains why an allocation was rejected.
type Reason int

// Rejection reasons.
const (
	// ReasonLimitExceeded means more than MaxRoomsPerBooking rooms were requested.
	ReasonLimitExceeded Reason = iota + 1
	// ReasonNotEnoughRooms means fewer rooms are vacant than were requested.
	ReasonNotEnoughRooms
	// ReasonNoRooms means the search produced no candidate set.
	ReasonNoRooms
)

// Message returns the client-facing text for the reason.
func (r Reason) Message() string {
	switch r {
	case ReasonLimitExceeded:
		return limitExceededMessage
	case ReasonNotEnoughRooms:
		return notEnoughRoomsMessage
	case ReasonNoRooms:
		return noRoomsMessage
	default:
		return fmt.Sprintf("unknown rejection reason %d", int(r))
	}
}

// String returns a short identifier suitable for logs.
func (r Reason) String() string {
	switch r {
	case ReasonLimitExceeded:
		return "limit_exceeded"
	case ReasonNotEnoughRooms:
		return "not_enough_rooms"
	case ReasonNoRooms:
		return "no_rooms"
	default:
		return "unknown"
	}
}

// Outcome is the result of a booking attempt. It is always exactly one of
// Booked, Rejected, or Invalid; callers are expected to type-switch on it.
type Outcome interface {
	outcome()
}

// Booked reports a committed allocation. Every room in Rooms is occupied.
type Booked struct {
	Rooms []inventory.Room
}

// Rejected reports an allocation that could not be satisfied. Nothing was committed.
type Rejected struct {
	Reason Reason
}

// Message returns the client-facing rejection text.
func (r Rejected) Message() string { return r.Reason.Message() }

// Invalid reports a request whose room count is not positive. The inventory
// was not consulted.
type Invalid struct {
	Count int
}

// Message returns the client-facing validation text.
func (Invalid) Message() string { return InvalidCountMessage }

func (Booked) outcome()   {}
func (Rejected) outcome() {}
func (Invalid) outcome()  {}
