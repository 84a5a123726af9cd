package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cory-johannsen/hotel/internal/hotel/booking"
	"github.com/cory-johannsen/hotel/internal/hotel/inventory"
)

// MaxRecent bounds the number of entries Recent returns.
const MaxRecent = 100

// journalRoom is the JSONB shape of a booked room.
type journalRoom struct {
	Floor  int `json:"floor"`
	Number int `json:"roomNumber"`
}

// JournalRepository records bookings and resets in the booking_events table.
type JournalRepository struct {
	db *pgxpool.Pool
}

var _ booking.Journal = (*JournalRepository)(nil)

// NewJournalRepository creates a JournalRepository backed by the given pool.
//
// Precondition: db must be a valid, open connection pool.
func NewJournalRepository(db *pgxpool.Pool) *JournalRepository {
	return &JournalRepository{db: db}
}

// RecordBooking appends a booking entry for rooms.
//
// Postcondition: One row of kind 'booking' is inserted, or an error is returned.
func (r *JournalRepository) RecordBooking(ctx context.Context, rooms []inventory.Room) error {
	stored := make([]journalRoom, len(rooms))
	for i, room := range rooms {
		stored[i] = journalRoom{Floor: room.Floor, Number: room.Number}
	}
	return r.insert(ctx, booking.EntryBooking, stored)
}

// RecordReset appends a reset entry.
func (r *JournalRepository) RecordReset(ctx context.Context) error {
	return r.insert(ctx, booking.EntryReset, []journalRoom{})
}

func (r *JournalRepository) insert(ctx context.Context, kind booking.EntryKind, rooms []journalRoom) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO booking_events (id, kind, rooms, room_count)
		 VALUES ($1, $2, $3, $4)`,
		uuid.New(), string(kind), rooms, len(rooms),
	)
	if err != nil {
		return fmt.Errorf("inserting %s event: %w", kind, err)
	}
	return nil
}

// Recent returns up to limit entries, newest first. limit is clamped to
// 1..MaxRecent. Rooms read back from a booking entry are marked occupied.
func (r *JournalRepository) Recent(ctx context.Context, limit int) ([]booking.Entry, error) {
	limit = max(1, min(limit, MaxRecent))

	rows, err := r.db.Query(ctx,
		`SELECT id, kind, rooms, created_at
		 FROM booking_events
		 ORDER BY seq DESC
		 LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("querying booking events: %w", err)
	}
	defer rows.Close()

	var entries []booking.Entry
	for rows.Next() {
		var (
			e     booking.Entry
			kind  string
			rooms []journalRoom
		)
		if err := rows.Scan(&e.ID, &kind, &rooms, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning booking event: %w", err)
		}
		e.Kind = booking.EntryKind(kind)
		for _, jr := range rooms {
			e.Rooms = append(e.Rooms, inventory.Room{Floor: jr.Floor, Number: jr.Number, Occupied: true})
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating booking events: %w", err)
	}
	return entries, nil
}
