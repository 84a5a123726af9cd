// Package travel implements the travel-time metric used to rank candidate
// room sets. Moving one floor costs twice as much as moving one room number.
package travel

import (
	"slices"

	"github.com/cory-johannsen/hotel/internal/hotel/inventory"
)

// VerticalWeight is the cost of moving one floor, relative to moving one room
// number along a corridor.
const VerticalWeight = 2

// Cost returns the travel time between two rooms.
//
// Postcondition: Cost(a, b) == Cost(b, a) >= 0.
func Cost(a, b inventory.Room) int {
	return VerticalWeight*abs(a.Floor-b.Floor) + abs(a.Number-b.Number)
}

// PathCost returns the travel time of visiting rooms in (floor, number) order.
// It approximates a visiting tour along the natural floor/number axis; it does
// not search for an optimal tour.
//
// Postcondition: Returns 0 for fewer than two rooms. The input slice is not reordered.
func PathCost(rooms []inventory.Room) int {
	if len(rooms) < 2 {
		return 0
	}
	ordered := slices.Clone(rooms)
	slices.SortFunc(ordered, inventory.Compare)

	total := 0
	for i := 0; i < len(ordered)-1; i++ {
		total += Cost(ordered[i], ordered[i+1])
	}
	return total
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
