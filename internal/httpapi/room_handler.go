package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/cory-johannsen/hotel/internal/hotel/booking"
	"github.com/cory-johannsen/hotel/internal/hotel/inventory"
)

// Response status values.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// ResetMessage is returned by a successful reset.
const ResetMessage = "All bookings have been reset."

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
)

// Room is the wire representation of a room.
type Room struct {
	RoomNumber int  `json:"roomNumber"`
	Floor      int  `json:"floor"`
	Booked     bool `json:"booked"`
}

// BookingResponse is the body of a successful booking.
type BookingResponse struct {
	Status   string `json:"status"`
	Message  string `json:"message"`
	RoomList []Room `json:"roomlist"`
}

// StatsResponse is the body of GET /stats.
type StatsResponse struct {
	Total  int `json:"total"`
	Booked int `json:"booked"`
	Vacant int `json:"vacant"`
}

// Entry is the wire representation of a journal entry.
type Entry struct {
	ID        string    `json:"id"`
	Kind      string    `json:"kind"`
	Rooms     []Room    `json:"rooms"`
	CreatedAt time.Time `json:"createdAt"`
}

// RoomHandler serves the room endpoints.
type RoomHandler struct {
	svc    RoomService
	logger *zap.Logger
}

// NewRoomHandler creates a RoomHandler.
//
// Precondition: svc and logger must be non-nil.
func NewRoomHandler(svc RoomService, logger *zap.Logger) *RoomHandler {
	return &RoomHandler{svc: svc, logger: logger}
}

// All handles GET /all: every floor's rooms keyed by floor number.
func (h *RoomHandler) All(w http.ResponseWriter, _ *http.Request) {
	all := h.svc.ListAll()
	out := make(map[int][]Room, len(all))
	for floor, rooms := range all {
		out[floor] = toRooms(rooms)
	}
	h.writeJSON(w, http.StatusOK, out)
}

// Book handles POST /book?numberOfRooms=N.
//
// A non-positive or unparsable count answers 400, a rejected allocation 409
// with the reason text, and a committed booking 200 with the booked rooms.
func (h *RoomHandler) Book(w http.ResponseWriter, req *http.Request) {
	count, err := strconv.Atoi(req.URL.Query().Get("numberOfRooms"))
	if err != nil {
		writeText(w, http.StatusBadRequest, booking.InvalidCountMessage)
		return
	}

	switch out := h.svc.Book(req.Context(), count).(type) {
	case booking.Booked:
		h.writeJSON(w, http.StatusOK, BookingResponse{
			Status:   StatusSuccess,
			Message:  booking.SuccessMessage,
			RoomList: toRooms(out.Rooms),
		})
	case booking.Rejected:
		writeText(w, http.StatusConflict, out.Message())
	case booking.Invalid:
		writeText(w, http.StatusBadRequest, out.Message())
	default:
		h.logger.Error("unexpected booking outcome", zap.Any("outcome", out))
		writeText(w, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
	}
}

// Reset handles POST /reset.
func (h *RoomHandler) Reset(w http.ResponseWriter, req *http.Request) {
	h.svc.Reset(req.Context())
	writeText(w, http.StatusOK, ResetMessage)
}

// Booked handles GET /bookedRooms.
func (h *RoomHandler) Booked(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, toRooms(h.svc.ListBooked()))
}

// Stats handles GET /stats.
func (h *RoomHandler) Stats(w http.ResponseWriter, _ *http.Request) {
	s := h.svc.Stats()
	h.writeJSON(w, http.StatusOK, StatsResponse{Total: s.Total, Booked: s.Booked, Vacant: s.Vacant})
}

// History handles GET /history?limit=N.
func (h *RoomHandler) History(w http.ResponseWriter, req *http.Request) {
	limit := defaultHistoryLimit
	if raw := req.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > maxHistoryLimit {
			writeText(w, http.StatusBadRequest, "limit must be between 1 and 100.")
			return
		}
		limit = n
	}

	entries, err := h.svc.History(req.Context(), limit)
	if errors.Is(err, booking.ErrJournalDisabled) {
		writeText(w, http.StatusNotFound, "Booking history is not enabled.")
		return
	}
	if err != nil {
		h.logger.Error("loading booking history", zap.Error(err))
		writeText(w, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
		return
	}

	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		out = append(out, Entry{
			ID:        e.ID.String(),
			Kind:      string(e.Kind),
			Rooms:     toRooms(e.Rooms),
			CreatedAt: e.CreatedAt,
		})
	}
	h.writeJSON(w, http.StatusOK, out)
}

func (h *RoomHandler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Warn("writing response", zap.Error(err))
	}
}

func writeText(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(msg))
}

func toRooms(rooms []inventory.Room) []Room {
	out := make([]Room, len(rooms))
	for i, r := range rooms {
		out[i] = Room{RoomNumber: r.Number, Floor: r.Floor, Booked: r.Occupied}
	}
	return out
}
