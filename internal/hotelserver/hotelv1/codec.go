package hotelv1

import (
	"fmt"
	"sort"
	"strconv"

	"google.golang.org/protobuf/types/known/structpb"
)

// Payload field names.
const (
	FieldRoomNumber = "roomNumber"
	FieldFloor      = "floor"
	FieldBooked     = "booked"
	FieldStatus     = "status"
	FieldMessage    = "message"
	FieldRoomList   = "roomlist"
	FieldFloors     = "floors"
)

// Room is the decoded form of a room payload.
type Room struct {
	RoomNumber int
	Floor      int
	Booked     bool
}

// Booking is the decoded form of a Book response.
type Booking struct {
	Status  string
	Message string
	Rooms   []Room
}

// RoomValue encodes r as a struct value.
func RoomValue(r Room) *structpb.Value {
	return structpb.NewStructValue(&structpb.Struct{Fields: map[string]*structpb.Value{
		FieldRoomNumber: structpb.NewNumberValue(float64(r.RoomNumber)),
		FieldFloor:      structpb.NewNumberValue(float64(r.Floor)),
		FieldBooked:     structpb.NewBoolValue(r.Booked),
	}})
}

// RoomList encodes rooms in order.
func RoomList(rooms []Room) *structpb.ListValue {
	values := make([]*structpb.Value, len(rooms))
	for i, r := range rooms {
		values[i] = RoomValue(r)
	}
	return &structpb.ListValue{Values: values}
}

// BookingStruct encodes a Book response.
func BookingStruct(b Booking) *structpb.Struct {
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		FieldStatus:   structpb.NewStringValue(b.Status),
		FieldMessage:  structpb.NewStringValue(b.Message),
		FieldRoomList: structpb.NewListValue(RoomList(b.Rooms)),
	}}
}

// FloorsStruct encodes a ListAll response.
func FloorsStruct(floors map[int][]Room) *structpb.Struct {
	fields := make(map[string]*structpb.Value, len(floors))
	for floor, rooms := range floors {
		fields[strconv.Itoa(floor)] = structpb.NewListValue(RoomList(rooms))
	}
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		FieldFloors: structpb.NewStructValue(&structpb.Struct{Fields: fields}),
	}}
}

// DecodeRooms decodes a room list.
func DecodeRooms(l *structpb.ListValue) ([]Room, error) {
	rooms := make([]Room, 0, len(l.GetValues()))
	for i, v := range l.GetValues() {
		s := v.GetStructValue()
		if s == nil {
			return nil, fmt.Errorf("room %d: not a struct", i)
		}
		number, ok := s.Fields[FieldRoomNumber]
		if !ok {
			return nil, fmt.Errorf("room %d: missing %s", i, FieldRoomNumber)
		}
		floor, ok := s.Fields[FieldFloor]
		if !ok {
			return nil, fmt.Errorf("room %d: missing %s", i, FieldFloor)
		}
		rooms = append(rooms, Room{
			RoomNumber: int(number.GetNumberValue()),
			Floor:      int(floor.GetNumberValue()),
			Booked:     s.Fields[FieldBooked].GetBoolValue(),
		})
	}
	return rooms, nil
}

// DecodeBooking decodes a Book response.
func DecodeBooking(s *structpb.Struct) (Booking, error) {
	rooms, err := DecodeRooms(s.GetFields()[FieldRoomList].GetListValue())
	if err != nil {
		return Booking{}, fmt.Errorf("decoding %s: %w", FieldRoomList, err)
	}
	return Booking{
		Status:  s.GetFields()[FieldStatus].GetStringValue(),
		Message: s.GetFields()[FieldMessage].GetStringValue(),
		Rooms:   rooms,
	}, nil
}

// DecodeFloors decodes a ListAll response.
func DecodeFloors(s *structpb.Struct) (map[int][]Room, error) {
	floors := s.GetFields()[FieldFloors].GetStructValue()
	if floors == nil {
		return nil, fmt.Errorf("missing %s", FieldFloors)
	}
	keys := make([]string, 0, len(floors.Fields))
	for k := range floors.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make(map[int][]Room, len(keys))
	for _, k := range keys {
		floor, err := strconv.Atoi(k)
		if err != nil {
			return nil, fmt.Errorf("floor key %q: %w", k, err)
		}
		rooms, err := DecodeRooms(floors.Fields[k].GetListValue())
		if err != nil {
			return nil, fmt.Errorf("floor %d: %w", floor, err)
		}
		out[floor] = rooms
	}
	return out, nil
}
