package inventory

import (
	"fmt"
	"slices"
)

// Inventory is the fixed mapping from floor number to the floor's rooms.
//
// The structure (floors and rooms per floor) never changes after New returns;
// only Room.Occupied is mutated. Inventory is not safe for concurrent use:
// callers must serialize access themselves.
type Inventory struct {
	floors []int
	rooms  map[int][]*Room
	total  int
}

// New builds an Inventory from a validated layout. Every room starts vacant.
//
// Precondition: layout must satisfy Layout.Validate.
// Postcondition: Returns an Inventory whose floors are ordered ascending and
// whose per-floor room order matches the layout, or a non-nil error.
func New(layout Layout) (*Inventory, error) {
	if err := layout.Validate(); err != nil {
		return nil, fmt.Errorf("building inventory: %w", err)
	}

	inv := &Inventory{
		floors: make([]int, 0, len(layout.Floors)),
		rooms:  make(map[int][]*Room, len(layout.Floors)),
	}
	for _, f := range layout.Floors {
		rooms := make([]*Room, 0, len(f.Rooms))
		for _, n := range f.Rooms {
			rooms = append(rooms, &Room{Floor: f.Floor, Number: n})
		}
		inv.floors = append(inv.floors, f.Floor)
		inv.rooms[f.Floor] = rooms
		inv.total += len(rooms)
	}
	slices.Sort(inv.floors)
	return inv, nil
}

// Floors returns the floor numbers in ascending order.
func (inv *Inventory) Floors() []int {
	return slices.Clone(inv.floors)
}

// FloorRooms returns the live rooms of floor in stored order, or nil if the
// floor does not exist. The returned pointers alias inventory state.
func (inv *Inventory) FloorRooms(floor int) []*Room {
	return inv.rooms[floor]
}

// Len returns the total number of rooms.
func (inv *Inventory) Len() int {
	return inv.total
}

// Each calls fn for every room, floors ascending, rooms in stored order.
func (inv *Inventory) Each(fn func(r *Room)) {
	for _, floor := range inv.floors {
		for _, r := range inv.rooms[floor] {
			fn(r)
		}
	}
}

// Vacant returns every unoccupied room, floors ascending, rooms in stored order.
func (inv *Inventory) Vacant() []*Room {
	var out []*Room
	inv.Each(func(r *Room) {
		if !r.Occupied {
			out = append(out, r)
		}
	})
	return out
}

// Snapshot returns a copy of the inventory keyed by floor.
//
// Postcondition: Mutating the result never affects the inventory.
func (inv *Inventory) Snapshot() map[int][]Room {
	out := make(map[int][]Room, len(inv.floors))
	for _, floor := range inv.floors {
		src := inv.rooms[floor]
		rooms := make([]Room, len(src))
		for i, r := range src {
			rooms[i] = *r
		}
		out[floor] = rooms
	}
	return out
}
