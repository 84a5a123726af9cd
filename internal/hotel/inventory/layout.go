package inventory

import (
	"errors"
	"fmt"
	"strings"
)

// Standard hotel shape.
const (
	DefaultFloors        = 10
	DefaultRoomsPerFloor = 10
	DefaultTopFloorRooms = 7

	// topFloorBase is the number the top floor's rooms are counted up from.
	topFloorBase = 1000
)

// ErrEmptyLayout is returned when a layout describes no floors.
var ErrEmptyLayout = errors.New("layout has no floors")

// FloorLayout lists the room numbers of one floor in stored order.
type FloorLayout struct {
	Floor int
	Rooms []int
}

// Layout describes the shape of an inventory: which floors exist and which
// rooms each floor holds.
type Layout struct {
	Floors []FloorLayout
}

// StandardLayout builds the generated hotel shape: floors 1..floors-1 hold
// roomsPerFloor rooms numbered floor*100+i, and the top floor holds
// topFloorRooms rooms numbered 1000+i.
//
// Precondition: floors >= 1; roomsPerFloor in 1..99; topFloorRooms >= 1.
// Postcondition: Returns a Layout with exactly floors entries in ascending floor order.
func StandardLayout(floors, roomsPerFloor, topFloorRooms int) Layout {
	layout := Layout{Floors: make([]FloorLayout, 0, floors)}
	for floor := 1; floor < floors; floor++ {
		rooms := make([]int, 0, roomsPerFloor)
		for i := 1; i <= roomsPerFloor; i++ {
			rooms = append(rooms, floor*100+i)
		}
		layout.Floors = append(layout.Floors, FloorLayout{Floor: floor, Rooms: rooms})
	}
	if floors >= 1 {
		top := make([]int, 0, topFloorRooms)
		for i := 1; i <= topFloorRooms; i++ {
			top = append(top, topFloorBase+i)
		}
		layout.Floors = append(layout.Floors, FloorLayout{Floor: floors, Rooms: top})
	}
	return layout
}

// DefaultLayout returns the standard ten-floor, ninety-seven room hotel.
func DefaultLayout() Layout {
	return StandardLayout(DefaultFloors, DefaultRoomsPerFloor, DefaultTopFloorRooms)
}

// RoomCount returns the total number of rooms described by the layout.
func (l Layout) RoomCount() int {
	n := 0
	for _, f := range l.Floors {
		n += len(f.Rooms)
	}
	return n
}

// Validate checks the layout's structural invariants.
//
// Postcondition: Returns nil if every floor number is >= 1 and unique, every
// floor has at least one room, and every (floor, room) identity is unique;
// otherwise returns an error describing all violations.
func (l Layout) Validate() error {
	if len(l.Floors) == 0 {
		return ErrEmptyLayout
	}

	var errs []string
	seenFloors := make(map[int]bool, len(l.Floors))
	for _, f := range l.Floors {
		if f.Floor < 1 {
			errs = append(errs, fmt.Sprintf("floor number must be >= 1, got %d", f.Floor))
		}
		if seenFloors[f.Floor] {
			errs = append(errs, fmt.Sprintf("duplicate floor %d", f.Floor))
		}
		seenFloors[f.Floor] = true

		if len(f.Rooms) == 0 {
			errs = append(errs, fmt.Sprintf("floor %d has no rooms", f.Floor))
		}
		seenRooms := make(map[int]bool, len(f.Rooms))
		for _, n := range f.Rooms {
			if n < 1 {
				errs = append(errs, fmt.Sprintf("floor %d: room number must be >= 1, got %d", f.Floor, n))
			}
			if seenRooms[n] {
				errs = append(errs, fmt.Sprintf("floor %d: duplicate room %d", f.Floor, n))
			}
			seenRooms[n] = true
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid layout: %s", strings.Join(errs, "; "))
	}
	return nil
}
