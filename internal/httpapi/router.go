// Package httpapi exposes the booking service over HTTP under /api/rooms.
package httpapi

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/cory-johannsen/hotel/internal/hotel/booking"
	"github.com/cory-johannsen/hotel/internal/hotel/inventory"
	"github.com/cory-johannsen/hotel/internal/observability"
)

// BasePath prefixes every route.
const BasePath = "/api/rooms"

// RoomService is the booking behaviour the HTTP boundary depends on.
type RoomService interface {
	ListAll() map[int][]inventory.Room
	ListBooked() []inventory.Room
	Stats() booking.Stats
	Book(ctx context.Context, count int) booking.Outcome
	Reset(ctx context.Context)
	History(ctx context.Context, limit int) ([]booking.Entry, error)
}

// Router routes /api/rooms requests to a RoomHandler.
// It uses the standard library mux; method-qualified patterns answer wrong
// methods with 405.
type Router struct {
	handler http.Handler
}

// NewRouter registers every room route.
//
// Precondition: svc and logger must be non-nil.
func NewRouter(svc RoomService, logger *zap.Logger) *Router {
	h := NewRoomHandler(svc, logger)
	mux := http.NewServeMux()

	mux.HandleFunc("GET "+BasePath+"/all", h.All)
	mux.HandleFunc("POST "+BasePath+"/book", h.Book)
	mux.HandleFunc("POST "+BasePath+"/reset", h.Reset)
	mux.HandleFunc("GET "+BasePath+"/bookedRooms", h.Booked)
	mux.HandleFunc("GET "+BasePath+"/stats", h.Stats)
	mux.HandleFunc("GET "+BasePath+"/history", h.History)

	return &Router{handler: observability.HTTPMiddleware(logger)(cors(mux))}
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.handler.ServeHTTP(w, req)
}

// cors allows any origin and answers preflight requests directly.
func cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		if req.Method == http.MethodOptions {
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, "+observability.RequestIDHeader)
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, req)
	})
}
