package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/cory-johannsen/hotel/internal/hotel/booking"
	"github.com/cory-johannsen/hotel/internal/hotel/inventory"
)

type memoryJournal struct {
	mu      sync.Mutex
	entries []booking.Entry
	err     error
}

func (m *memoryJournal) RecordBooking(_ context.Context, rooms []inventory.Room) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, booking.Entry{ID: uuid.New(), Kind: booking.EntryBooking, Rooms: rooms, CreatedAt: time.Now()})
	return nil
}

func (m *memoryJournal) RecordReset(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, booking.Entry{ID: uuid.New(), Kind: booking.EntryReset, CreatedAt: time.Now()})
	return nil
}

func (m *memoryJournal) Recent(_ context.Context, limit int) ([]booking.Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	var out []booking.Entry
	for i := len(m.entries) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, m.entries[i])
	}
	return out, nil
}

func newTestRouter(t *testing.T, journal booking.Journal) *Router {
	t.Helper()
	inv, err := inventory.New(inventory.DefaultLayout())
	require.NoError(t, err)
	logger := zaptest.NewLogger(t)
	svc := booking.NewService(booking.NewGateway(inv), journal, logger)
	return NewRouter(svc, logger)
}

func do(t *testing.T, h http.Handler, method, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, target, nil))
	return rec
}

func TestBook_Success(t *testing.T) {
	r := newTestRouter(t, nil)

	rec := do(t, r, http.MethodPost, "/api/rooms/book?numberOfRooms=2")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "success", resp.Status)
	assert.Equal(t, "Rooms booked successfully", resp.Message)
	assert.Equal(t, []Room{
		{RoomNumber: 101, Floor: 1, Booked: true},
		{RoomNumber: 102, Floor: 1, Booked: true},
	}, resp.RoomList)
}

func TestBook_WireFieldNames(t *testing.T) {
	r := newTestRouter(t, nil)
	rec := do(t, r, http.MethodPost, "/api/rooms/book?numberOfRooms=1")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t,
		`{"status":"success","message":"Rooms booked successfully","roomlist":[{"roomNumber":101,"floor":1,"booked":true}]}`,
		rec.Body.String())
}

func TestBook_InvalidCount(t *testing.T) {
	r := newTestRouter(t, nil)
	for _, q := range []string{"0", "-3", "abc", ""} {
		rec := do(t, r, http.MethodPost, "/api/rooms/book?numberOfRooms="+q)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "numberOfRooms=%q", q)
		assert.Equal(t, "Number of rooms must be positive.", rec.Body.String())
	}
}

func TestBook_LimitExceededIsConflict(t *testing.T) {
	r := newTestRouter(t, nil)
	rec := do(t, r, http.MethodPost, "/api/rooms/book?numberOfRooms=6")
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "You can only book a maximum of 5 rooms at a time.", rec.Body.String())
}

func TestBook_NotEnoughRoomsIsConflict(t *testing.T) {
	r := newTestRouter(t, nil)
	for i := 0; i < 19; i++ {
		require.Equal(t, http.StatusOK, do(t, r, http.MethodPost, "/api/rooms/book?numberOfRooms=5").Code)
	}
	// 95 of 97 rooms are booked.
	rec := do(t, r, http.MethodPost, "/api/rooms/book?numberOfRooms=3")
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "Not enough rooms available!", rec.Body.String())
}

func TestAll(t *testing.T) {
	r := newTestRouter(t, nil)
	do(t, r, http.MethodPost, "/api/rooms/book?numberOfRooms=1")

	rec := do(t, r, http.MethodGet, "/api/rooms/all")
	require.Equal(t, http.StatusOK, rec.Code)

	var all map[string][]Room
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &all))
	assert.Len(t, all, 10)
	assert.Len(t, all["10"], 7)
	assert.True(t, all["1"][0].Booked)
	assert.Equal(t, 1001, all["10"][0].RoomNumber)
}

func TestResetAndBookedRooms(t *testing.T) {
	r := newTestRouter(t, nil)
	do(t, r, http.MethodPost, "/api/rooms/book?numberOfRooms=3")

	rec := do(t, r, http.MethodGet, "/api/rooms/bookedRooms")
	require.Equal(t, http.StatusOK, rec.Code)
	var booked []Room
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &booked))
	assert.Len(t, booked, 3)

	rec = do(t, r, http.MethodPost, "/api/rooms/reset")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "All bookings have been reset.", rec.Body.String())

	rec = do(t, r, http.MethodGet, "/api/rooms/bookedRooms")
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestStats(t *testing.T) {
	r := newTestRouter(t, nil)
	do(t, r, http.MethodPost, "/api/rooms/book?numberOfRooms=4")

	rec := do(t, r, http.MethodGet, "/api/rooms/stats")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"total":97,"booked":4,"vacant":93}`, rec.Body.String())
}

func TestHistory(t *testing.T) {
	r := newTestRouter(t, &memoryJournal{})
	do(t, r, http.MethodPost, "/api/rooms/book?numberOfRooms=2")
	do(t, r, http.MethodPost, "/api/rooms/reset")

	rec := do(t, r, http.MethodGet, "/api/rooms/history?limit=5")
	require.Equal(t, http.StatusOK, rec.Code)
	var entries []Entry
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &entries))
	require.Len(t, entries, 2)
	assert.Equal(t, "reset", entries[0].Kind)
	assert.Equal(t, "booking", entries[1].Kind)
	assert.Len(t, entries[1].Rooms, 2)
}

func TestHistory_Disabled(t *testing.T) {
	r := newTestRouter(t, nil)
	rec := do(t, r, http.MethodGet, "/api/rooms/history")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHistory_BadLimit(t *testing.T) {
	r := newTestRouter(t, &memoryJournal{})
	for _, q := range []string{"0", "101", "x"} {
		rec := do(t, r, http.MethodGet, "/api/rooms/history?limit="+q)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "limit=%q", q)
	}
}

func TestHistory_JournalError(t *testing.T) {
	r := newTestRouter(t, &memoryJournal{err: errors.New("connection refused")})
	rec := do(t, r, http.MethodGet, "/api/rooms/history")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestWrongMethod(t *testing.T) {
	r := newTestRouter(t, nil)
	assert.Equal(t, http.StatusMethodNotAllowed, do(t, r, http.MethodGet, "/api/rooms/book?numberOfRooms=1").Code)
	assert.Equal(t, http.StatusMethodNotAllowed, do(t, r, http.MethodPost, "/api/rooms/all").Code)
}

func TestCORS(t *testing.T) {
	r := newTestRouter(t, nil)

	rec := do(t, r, http.MethodGet, "/api/rooms/all")
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))

	rec = do(t, r, http.MethodOptions, "/api/rooms/book")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), "POST")
}

func TestConcurrentBookingsOverHTTP(t *testing.T) {
	r := newTestRouter(t, nil)
	const workers = 19

	var wg sync.WaitGroup
	codes := make([]int, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/rooms/book?numberOfRooms=5", nil))
			codes[i] = rec.Code
		}(i)
	}
	wg.Wait()

	for _, c := range codes {
		assert.Equal(t, http.StatusOK, c)
	}
	rec := do(t, r, http.MethodGet, "/api/rooms/stats")
	assert.JSONEq(t, `{"total":97,"booked":95,"vacant":2}`, rec.Body.String())
}
