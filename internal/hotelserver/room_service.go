// Package hotelserver exposes the booking service over gRPC.
package hotelserver

import (
	"context"
	"math"

	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/cory-johannsen/hotel/internal/hotel/booking"
	"github.com/cory-johannsen/hotel/internal/hotel/inventory"
	hotelv1 "github.com/cory-johannsen/hotel/internal/hotelserver/hotelv1"
)

// RoomBooker is the booking behaviour the gRPC boundary depends on.
type RoomBooker interface {
	ListAll() map[int][]inventory.Room
	ListBooked() []inventory.Room
	Book(ctx context.Context, count int) booking.Outcome
	Reset(ctx context.Context)
}

// RoomServiceServer implements hotel.v1.RoomService on top of a RoomBooker.
type RoomServiceServer struct {
	booker RoomBooker
	logger *zap.Logger
}

var _ hotelv1.RoomServiceServer = (*RoomServiceServer)(nil)

// NewRoomServiceServer creates a RoomServiceServer.
//
// Precondition: booker and logger must be non-nil.
func NewRoomServiceServer(booker RoomBooker, logger *zap.Logger) *RoomServiceServer {
	return &RoomServiceServer{booker: booker, logger: logger}
}

// ListAll returns every floor's rooms keyed by floor number.
func (s *RoomServiceServer) ListAll(_ context.Context, _ *emptypb.Empty) (*structpb.Struct, error) {
	all := s.booker.ListAll()
	floors := make(map[int][]hotelv1.Room, len(all))
	for floor, rooms := range all {
		floors[floor] = toRooms(rooms)
	}
	return hotelv1.FloorsStruct(floors), nil
}

// Book allocates req.Value rooms.
//
// Postcondition: a committed booking returns the booked rooms; a non-positive
// count returns InvalidArgument; a rejected allocation returns Aborted carrying
// the rejection text.
func (s *RoomServiceServer) Book(ctx context.Context, req *wrapperspb.Int32Value) (*structpb.Struct, error) {
	count := req.GetValue()
	switch out := s.booker.Book(ctx, int(count)).(type) {
	case booking.Booked:
		return hotelv1.BookingStruct(hotelv1.Booking{
			Status:  "success",
			Message: booking.SuccessMessage,
			Rooms:   toRooms(out.Rooms),
		}), nil
	case booking.Rejected:
		return nil, status.Error(codes.Aborted, out.Message())
	case booking.Invalid:
		return nil, status.Error(codes.InvalidArgument, out.Message())
	default:
		s.logger.Error("unexpected booking outcome", zap.Any("outcome", out))
		return nil, status.Error(codes.Internal, "unexpected booking outcome")
	}
}

// Reset vacates every room.
func (s *RoomServiceServer) Reset(ctx context.Context, _ *emptypb.Empty) (*emptypb.Empty, error) {
	s.booker.Reset(ctx)
	return &emptypb.Empty{}, nil
}

// ListBooked returns the occupied rooms in (floor, number) order.
func (s *RoomServiceServer) ListBooked(_ context.Context, _ *emptypb.Empty) (*structpb.ListValue, error) {
	return hotelv1.RoomList(toRooms(s.booker.ListBooked())), nil
}

func toRooms(rooms []inventory.Room) []hotelv1.Room {
	out := make([]hotelv1.Room, len(rooms))
	for i, r := range rooms {
		out[i] = hotelv1.Room{RoomNumber: r.Number, Floor: r.Floor, Booked: r.Occupied}
	}
	return out
}

// BookRequest builds a Book request, saturating counts outside the int32 range.
func BookRequest(count int) *wrapperspb.Int32Value {
	switch {
	case count > math.MaxInt32:
		count = math.MaxInt32
	case count < math.MinInt32:
		count = math.MinInt32
	}
	return wrapperspb.Int32(int32(count))
}
