package travel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/hotel/internal/hotel/inventory"
)

func room(floor, number int) inventory.Room {
	return inventory.Room{Floor: floor, Number: number}
}

func TestCost(t *testing.T) {
	assert.Equal(t, 0, Cost(room(1, 101), room(1, 101)))
	assert.Equal(t, 4, Cost(room(1, 101), room(1, 105)))
	assert.Equal(t, 2+100, Cost(room(1, 101), room(2, 201)))
	assert.Equal(t, 18+900, Cost(room(1, 101), room(10, 1001)))
}

func TestPathCost_Trivial(t *testing.T) {
	assert.Equal(t, 0, PathCost(nil))
	assert.Equal(t, 0, PathCost([]inventory.Room{room(3, 301)}))
}

func TestPathCost_SortsBeforeSumming(t *testing.T) {
	rooms := []inventory.Room{room(2, 203), room(1, 101), room(2, 201)}
	// 101 -> 201 -> 203: (2 + 100) + 2
	assert.Equal(t, 104, PathCost(rooms))
	assert.Equal(t, room(2, 203), rooms[0], "input must not be reordered")
}

func TestPropertyCostSymmetric(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := room(rapid.IntRange(1, 20).Draw(t, "fa"), rapid.IntRange(1, 2000).Draw(t, "na"))
		b := room(rapid.IntRange(1, 20).Draw(t, "fb"), rapid.IntRange(1, 2000).Draw(t, "nb"))
		if Cost(a, b) != Cost(b, a) {
			t.Fatalf("Cost(%v, %v) != Cost(%v, %v)", a, b, b, a)
		}
		if Cost(a, b) < 0 {
			t.Fatalf("negative cost %d", Cost(a, b))
		}
	})
}

// Property: PathCost does not depend on the order of its input.
func TestPropertyPathCostOrderIndependent(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(0, 6).Draw(t, "n")
		rooms := make([]inventory.Room, n)
		for i := range rooms {
			rooms[i] = room(rapid.IntRange(1, 10).Draw(t, "floor"), rapid.IntRange(1, 1010).Draw(t, "number"))
		}
		perm := rapid.Permutation(rooms).Draw(t, "perm")
		if PathCost(rooms) != PathCost(perm) {
			t.Fatalf("PathCost(%v) = %d, PathCost(%v) = %d", rooms, PathCost(rooms), perm, PathCost(perm))
		}
	})
}
