package booking

import (
	"sync"

	"github.com/cory-johannsen/hotel/internal/hotel/inventory"
)

// Stats summarizes inventory occupancy.
type Stats struct {
	Total  int
	Booked int
	Vacant int
}

// Gateway owns the inventory and serializes every operation on it.
// All methods are safe for concurrent use; each holds a single exclusive lock
// over the whole inventory for its full duration, so no caller ever observes
// a partially committed booking and no two bookings can claim the same room.
type Gateway struct {
	mu  sync.Mutex
	inv *inventory.Inventory
}

// NewGateway takes ownership of inv.
//
// Precondition: inv must be non-nil and must not be accessed by the caller afterwards.
func NewGateway(inv *inventory.Inventory) *Gateway {
	return &Gateway{inv: inv}
}

// ListAll returns a snapshot of every floor's rooms with current occupancy.
func (g *Gateway) ListAll() map[int][]inventory.Room {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.inv.Snapshot()
}

// Book allocates count rooms.
//
// Postcondition: Returns Invalid without touching the inventory when count <= 0;
// otherwise returns the Allocate outcome, committed atomically.
func (g *Gateway) Book(count int) Outcome {
	if count <= 0 {
		return Invalid{Count: count}
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	return Allocate(g.inv, count)
}

// Reset marks every room vacant. Calling it repeatedly has no further effect.
func (g *Gateway) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.inv.Each(func(r *inventory.Room) {
		r.Occupied = false
	})
}

// ListBooked returns every occupied room, floors ascending, rooms in stored order.
func (g *Gateway) ListBooked() []inventory.Room {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := []inventory.Room{}
	g.inv.Each(func(r *inventory.Room) {
		if r.Occupied {
			out = append(out, *r)
		}
	})
	return out
}

// Stats returns occupancy counts.
func (g *Gateway) Stats() Stats {
	g.mu.Lock()
	defer g.mu.Unlock()
	s := Stats{Total: g.inv.Len()}
	g.inv.Each(func(r *inventory.Room) {
		if r.Occupied {
			s.Booked++
		}
	})
	s.Vacant = s.Total - s.Booked
	return s
}
