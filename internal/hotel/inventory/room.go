// Package inventory provides the hotel room model and the fixed per-floor
// room inventory that bookings are allocated from.
package inventory

import (
	"cmp"
	"fmt"
)

// Room is a single hotel room.
// Floor and Number identify the room and never change after construction;
// Occupied is the only mutable field.
type Room struct {
	Floor    int
	Number   int
	Occupied bool
}

// ID returns the room's identity.
func (r Room) ID() RoomID {
	return RoomID{Floor: r.Floor, Number: r.Number}
}

// String returns a short human-readable representation, e.g. "3/305".
func (r Room) String() string {
	return fmt.Sprintf("%d/%d", r.Floor, r.Number)
}

// RoomID is the immutable identity of a room.
type RoomID struct {
	Floor  int
	Number int
}

// Compare orders rooms by floor, then by room number, ascending.
//
// Postcondition: Returns a negative number when a sorts before b, zero when
// both share an identity, and a positive number otherwise.
func Compare(a, b Room) int {
	if c := cmp.Compare(a.Floor, b.Floor); c != 0 {
		return c
	}
	return cmp.Compare(a.Number, b.Number)
}
