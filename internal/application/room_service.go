package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/example/room-booking/internal/persistence"
)

// RoomRepository captures the persistence operations needed by the service.
// Implementations assign the sequential room id on create.
type RoomRepository interface {
	CreateRoom(ctx context.Context, room Room) (Room, error)
	GetRoom(ctx context.Context, id int) (Room, error)
	ListRooms(ctx context.Context) ([]Room, error)
}

// BookingSource exposes read access to the booking ledger for join queries.
type BookingSource interface {
	ListBookings(ctx context.Context) ([]Booking, error)
}

// RoomService owns the room collection: validation, creation, lookup, and the
// room-centric listing that attaches each room's bookings.
type RoomService struct {
	rooms    RoomRepository
	bookings BookingSource
	now      func() time.Time
	logger   *slog.Logger
}

// NewRoomService constructs a room service with the provided dependencies.
func NewRoomService(rooms RoomRepository, bookings BookingSource, now func() time.Time) *RoomService {
	return NewRoomServiceWithLogger(rooms, bookings, now, nil)
}

// NewRoomServiceWithLogger constructs a room service with a specified logger.
func NewRoomServiceWithLogger(rooms RoomRepository, bookings BookingSource, now func() time.Time, logger *slog.Logger) *RoomService {
	if now == nil {
		now = time.Now
	}
	return &RoomService{rooms: rooms, bookings: bookings, now: now, logger: defaultLogger(logger)}
}

func (s *RoomService) loggerWith(ctx context.Context, operation string, attrs ...any) *slog.Logger {
	return serviceLogger(ctx, s.logger, "RoomService", operation, attrs...)
}

// CreateRoom validates input and stores a new room.
func (s *RoomService) CreateRoom(ctx context.Context, input RoomInput) (room Room, err error) {
	if s == nil {
		err = fmt.Errorf("RoomService is nil")
		return
	}

	logger := s.loggerWith(ctx, "CreateRoom",
		"room_name", input.Name,
	)
	defer func() {
		if err != nil {
			logger.ErrorContext(ctx, "failed to create room", "error", err, "error_kind", ErrorKind(err))
			return
		}
		logger.With("room_id", room.ID).InfoContext(ctx, "room created")
	}()

	vErr := validateRoomInput(input)
	if vErr.HasErrors() {
		err = vErr
		return
	}

	room = Room{
		Name:      input.Name,
		Seats:     input.Seats,
		Amenities: append([]string(nil), input.Amenities...),
		Price:     input.Price,
		CreatedAt: s.now(),
	}

	if s.rooms == nil {
		return
	}

	var persisted Room
	persisted, err = s.rooms.CreateRoom(ctx, room)
	if err != nil {
		err = mapRoomRepoError(err)
		return
	}

	room = persisted
	return
}

// GetRoom looks up a room by id.
func (s *RoomService) GetRoom(ctx context.Context, id int) (Room, error) {
	if s == nil {
		return Room{}, fmt.Errorf("RoomService is nil")
	}
	if s.rooms == nil {
		return Room{}, ErrRoomNotFound
	}

	room, err := s.rooms.GetRoom(ctx, id)
	if err != nil {
		return Room{}, mapRoomRepoError(err)
	}
	return room, nil
}

// ListRoomsWithBookings returns every room in creation order, each paired
// with the bookings whose room id matches, in booking insertion order. Rooms
// without bookings appear with an empty list.
func (s *RoomService) ListRoomsWithBookings(ctx context.Context) (result []RoomWithBookings, err error) {
	if s == nil {
		err = fmt.Errorf("RoomService is nil")
		return
	}

	logger := s.loggerWith(ctx, "ListRoomsWithBookings")
	defer func() {
		if err != nil {
			logger.ErrorContext(ctx, "failed to list rooms", "error", err, "error_kind", ErrorKind(err))
			return
		}
		logger.With("result_count", len(result)).InfoContext(ctx, "rooms listed")
	}()

	if s.rooms == nil {
		return nil, nil
	}

	var rooms []Room
	rooms, err = s.rooms.ListRooms(ctx)
	if err != nil {
		return
	}

	var all []Booking
	if s.bookings != nil {
		all, err = s.bookings.ListBookings(ctx)
		if err != nil {
			return
		}
	}

	byRoom := make(map[int][]Booking, len(rooms))
	for _, booking := range all {
		byRoom[booking.RoomID] = append(byRoom[booking.RoomID], booking)
	}

	result = make([]RoomWithBookings, 0, len(rooms))
	for _, room := range rooms {
		result = append(result, RoomWithBookings{Room: room, Bookings: byRoom[room.ID]})
	}
	return
}

// validateRoomInput applies the required-field policy: every field must carry
// a non-zero value. Zero counts as missing for the numeric fields, so a room
// with zero seats or a zero price is rejected. Strings are not trimmed; a
// whitespace-only name is a value.
func validateRoomInput(input RoomInput) *ValidationError {
	vErr := &ValidationError{Message: "All fields are required (name, seats, amenities, price)"}

	if input.Name == "" {
		vErr.add("name", "name is required")
	}
	if input.Seats == 0 {
		vErr.add("seats", "seats is required")
	}
	if len(input.Amenities) == 0 {
		vErr.add("amenities", "amenities is required")
	}
	if input.Price == 0 {
		vErr.add("price", "price is required")
	}

	return vErr
}

func mapRoomRepoError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, persistence.ErrNotFound) || errors.Is(err, ErrRoomNotFound) {
		return ErrRoomNotFound
	}
	return err
}
