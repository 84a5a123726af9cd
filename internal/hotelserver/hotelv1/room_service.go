// Package hotelv1 defines the hotel.v1.RoomService gRPC contract. Messages are
// protobuf well-known types; room and booking payloads are carried in
// structpb values with the same field names as the HTTP API.
package hotelv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// Fully-qualified method names.
const (
	RoomService_ListAll_FullMethodName    = "/hotel.v1.RoomService/ListAll"
	RoomService_Book_FullMethodName       = "/hotel.v1.RoomService/Book"
	RoomService_Reset_FullMethodName      = "/hotel.v1.RoomService/Reset"
	RoomService_ListBooked_FullMethodName = "/hotel.v1.RoomService/ListBooked"
)

// RoomServiceServer is the server API for hotel.v1.RoomService.
type RoomServiceServer interface {
	// ListAll returns {"floors": {"<floor>": [room, ...]}}.
	ListAll(context.Context, *emptypb.Empty) (*structpb.Struct, error)
	// Book returns {"status", "message", "roomlist"} for a committed booking.
	Book(context.Context, *wrapperspb.Int32Value) (*structpb.Struct, error)
	Reset(context.Context, *emptypb.Empty) (*emptypb.Empty, error)
	ListBooked(context.Context, *emptypb.Empty) (*structpb.ListValue, error)
}

// RegisterRoomServiceServer registers srv on s.
func RegisterRoomServiceServer(s grpc.ServiceRegistrar, srv RoomServiceServer) {
	s.RegisterService(&RoomService_ServiceDesc, srv)
}

// RoomService_ServiceDesc is the grpc.ServiceDesc for hotel.v1.RoomService.
var RoomService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "hotel.v1.RoomService",
	HandlerType: (*RoomServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "ListAll", Handler: _RoomService_ListAll_Handler},
		{MethodName: "Book", Handler: _RoomService_Book_Handler},
		{MethodName: "Reset", Handler: _RoomService_Reset_Handler},
		{MethodName: "ListBooked", Handler: _RoomService_ListBooked_Handler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "hotel/v1/room_service.proto",
}

func _RoomService_ListAll_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RoomServiceServer).ListAll(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: RoomService_ListAll_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(RoomServiceServer).ListAll(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func _RoomService_Book_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(wrapperspb.Int32Value)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RoomServiceServer).Book(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: RoomService_Book_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(RoomServiceServer).Book(ctx, req.(*wrapperspb.Int32Value))
	}
	return interceptor(ctx, in, info, handler)
}

func _RoomService_Reset_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RoomServiceServer).Reset(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: RoomService_Reset_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(RoomServiceServer).Reset(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func _RoomService_ListBooked_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RoomServiceServer).ListBooked(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: RoomService_ListBooked_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(RoomServiceServer).ListBooked(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

// RoomServiceClient is the client API for hotel.v1.RoomService.
type RoomServiceClient interface {
	ListAll(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.Struct, error)
	Book(ctx context.Context, in *wrapperspb.Int32Value, opts ...grpc.CallOption) (*structpb.Struct, error)
	Reset(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*emptypb.Empty, error)
	ListBooked(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.ListValue, error)
}

type roomServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewRoomServiceClient creates a client over cc.
func NewRoomServiceClient(cc grpc.ClientConnInterface) RoomServiceClient {
	return &roomServiceClient{cc: cc}
}

func (c *roomServiceClient) ListAll(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, RoomService_ListAll_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *roomServiceClient) Book(ctx context.Context, in *wrapperspb.Int32Value, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, RoomService_Book_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *roomServiceClient) Reset(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	out := new(emptypb.Empty)
	if err := c.cc.Invoke(ctx, RoomService_Reset_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *roomServiceClient) ListBooked(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.ListValue, error) {
	out := new(structpb.ListValue)
	if err := c.cc.Invoke(ctx, RoomService_ListBooked_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
