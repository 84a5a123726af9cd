package booking

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/cory-johannsen/hotel/internal/hotel/inventory"
)

// ErrJournalDisabled is returned by History when no Journal is configured.
var ErrJournalDisabled = errors.New("booking journal is disabled")

// EntryKind identifies what a journal entry records.
type EntryKind string

// Journal entry kinds.
const (
	EntryBooking EntryKind = "booking"
	EntryReset   EntryKind = "reset"
)

// Entry is one journal record.
type Entry struct {
	ID        uuid.UUID
	Kind      EntryKind
	Rooms     []inventory.Room
	CreatedAt time.Time
}

// Journal records committed bookings and resets for auditing. It is write-mostly
// and is never used to rebuild inventory state.
type Journal interface {
	// RecordBooking appends a booking entry for rooms.
	RecordBooking(ctx context.Context, rooms []inventory.Room) error
	// RecordReset appends a reset entry.
	RecordReset(ctx context.Context) error
	// Recent returns up to limit entries, newest first.
	Recent(ctx context.Context, limit int) ([]Entry, error)
}

// Service is the transport-neutral facade used by the HTTP and gRPC servers.
// It delegates to a Gateway, logs every mutation, and journals committed
// changes after the Gateway lock has been released.
type Service struct {
	gateway *Gateway
	journal Journal
	logger  *zap.Logger
}

// NewService creates a Service.
//
// Precondition: gateway and logger must be non-nil. journal may be nil
// (journaling disabled).
func NewService(gateway *Gateway, journal Journal, logger *zap.Logger) *Service {
	return &Service{gateway: gateway, journal: journal, logger: logger}
}

// ListAll returns a snapshot of every floor.
func (s *Service) ListAll() map[int][]inventory.Room {
	return s.gateway.ListAll()
}

// ListBooked returns every occupied room.
func (s *Service) ListBooked() []inventory.Room {
	return s.gateway.ListBooked()
}

// Stats returns occupancy counts.
func (s *Service) Stats() Stats {
	return s.gateway.Stats()
}

// Book allocates count rooms and journals the result when rooms were committed.
// A journal failure is logged and never changes the returned Outcome.
func (s *Service) Book(ctx context.Context, count int) Outcome {
	s.logger.Debug("attempting to book rooms", zap.Int("count", count))

	start := time.Now()
	out := s.gateway.Book(count)
	elapsed := time.Since(start)

	switch o := out.(type) {
	case Booked:
		s.logger.Info("rooms booked",
			zap.Int("count", len(o.Rooms)),
			zap.Stringers("rooms", o.Rooms),
			zap.Duration("elapsed", elapsed),
		)
		if len(o.Rooms) > 0 && s.journal != nil {
			if err := s.journal.RecordBooking(ctx, o.Rooms); err != nil {
				s.logger.Error("journaling booking", zap.Error(err))
			}
		}
	case Rejected:
		s.logger.Warn("booking rejected",
			zap.Int("count", count),
			zap.Stringer("reason", o.Reason),
			zap.Duration("elapsed", elapsed),
		)
	case Invalid:
		s.logger.Warn("booking request invalid", zap.Int("count", o.Count))
	}
	return out
}

// Reset vacates every room and journals the reset.
func (s *Service) Reset(ctx context.Context) {
	s.gateway.Reset()
	s.logger.Info("all bookings reset")
	if s.journal != nil {
		if err := s.journal.RecordReset(ctx); err != nil {
			s.logger.Error("journaling reset", zap.Error(err))
		}
	}
}

// History returns up to limit journal entries, newest first.
//
// Postcondition: Returns ErrJournalDisabled when no journal is configured.
func (s *Service) History(ctx context.Context, limit int) ([]Entry, error) {
	if s.journal == nil {
		return nil, ErrJournalDisabled
	}
	return s.journal.Recent(ctx, limit)
}
