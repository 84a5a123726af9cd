package booking

import (
	"slices"

	"github.com/cory-johannsen/hotel/internal/hotel/inventory"
	"github.com/cory-johannsen/hotel/internal/hotel/travel"
)

// Allocate chooses count vacant rooms from inv and marks them occupied.
//
// The search runs in two passes. The single-floor pass walks floors in
// ascending order and takes the first floor with count vacancies, using that
// floor's first count vacant rooms; floors are not compared by cost. If no
// floor qualifies, the cross-floor pass enumerates every count-combination of
// all vacancies in lexicographic order and keeps the first combination with
// the lowest travel.PathCost.
//
// Allocate does no locking; the caller must hold exclusive access to inv.
//
// Precondition: inv must be non-nil; count should be >= 0.
// Postcondition: Returns Booked with exactly count newly occupied rooms, or
// Rejected with no room modified. count == 0 yields an empty Booked.
func Allocate(inv *inventory.Inventory, count int) Outcome {
	if count > MaxRoomsPerBooking {
		return Rejected{Reason: ReasonLimitExceeded}
	}

	if rooms, ok := singleFloor(inv, count); ok {
		return commit(rooms)
	}

	pool := inv.Vacant()
	if len(pool) < count {
		return Rejected{Reason: ReasonNotEnoughRooms}
	}

	rooms, ok := cheapest(pool, count)
	if !ok {
		return Rejected{Reason: ReasonNoRooms}
	}
	booked := commit(rooms)
	slices.SortFunc(booked.Rooms, inventory.Compare)
	return booked
}

// singleFloor returns the first count vacant rooms of the lowest floor that
// has at least count vacancies.
func singleFloor(inv *inventory.Inventory, count int) ([]*inventory.Room, bool) {
	for _, floor := range inv.Floors() {
		available := make([]*inventory.Room, 0, max(count, 0))
		for _, r := range inv.FloorRooms(floor) {
			if len(available) == count {
				break
			}
			if !r.Occupied {
				available = append(available, r)
			}
		}
		if len(available) == count {
			return available, true
		}
	}
	return nil, false
}

// cheapest returns the combination of count rooms from pool with the lowest
// path cost. Ties keep the earliest combination in enumeration order.
func cheapest(pool []*inventory.Room, count int) ([]*inventory.Room, bool) {
	var (
		best     []int
		bestCost int
		found    bool
	)

	candidate := make([]inventory.Room, max(count, 0))
	combos := newCombinations(len(pool), count)
	for combos.Next() {
		idx := combos.Indices()
		for i, p := range idx {
			candidate[i] = *pool[p]
		}
		cost := travel.PathCost(candidate)
		if !found || cost < bestCost {
			best = append(best[:0], idx...)
			bestCost = cost
			found = true
		}
	}
	if !found {
		return nil, false
	}

	rooms := make([]*inventory.Room, len(best))
	for i, p := range best {
		rooms[i] = pool[p]
	}
	return rooms, true
}

// commit marks rooms occupied and returns a Booked carrying copies of them.
func commit(rooms []*inventory.Room) Booked {
	out := make([]inventory.Room, len(rooms))
	for i, r := range rooms {
		r.Occupied = true
		out[i] = *r
	}
	return Booked{Rooms: out}
}
