package testfixtures

import (
	"context"
	"log/slog"

	"github.com/example/room-booking/internal/application"
	"github.com/example/room-booking/internal/persistence"
	"github.com/example/room-booking/internal/persistence/memory"
)

// Env bundles a fully wired service graph over a fresh in-memory store,
// mirroring the wiring performed by the server entrypoint.
type Env struct {
	Store    *memory.Store
	Clock    *Clock
	Rooms    *application.RoomService
	Bookings *application.BookingService
}

// NewEnv constructs an isolated environment for a test case. When logger is
// nil the services stay silent via slog's default logger.
func NewEnv(logger *slog.Logger) *Env {
	store := memory.NewStore()
	clock := NewClock(ReferenceTime())

	roomRepo := &RoomRepositoryAdapter{Repo: store}
	bookingRepo := &BookingRepositoryAdapter{Repo: store}

	return &Env{
		Store:    store,
		Clock:    clock,
		Rooms:    application.NewRoomServiceWithLogger(roomRepo, bookingRepo, clock.NowFunc(), logger),
		Bookings: application.NewBookingServiceWithLogger(bookingRepo, roomRepo, clock.NowFunc(), logger),
	}
}

// RoomRepositoryAdapter bridges a persistence.RoomRepository to the
// application layer interfaces.
type RoomRepositoryAdapter struct {
	Repo persistence.RoomRepository
}

func (a *RoomRepositoryAdapter) CreateRoom(ctx context.Context, room application.Room) (application.Room, error) {
	stored, err := a.Repo.CreateRoom(ctx, ToPersistenceRoom(room))
	if err != nil {
		return application.Room{}, err
	}
	return ToApplicationRoom(stored), nil
}

func (a *RoomRepositoryAdapter) GetRoom(ctx context.Context, id int) (application.Room, error) {
	stored, err := a.Repo.GetRoom(ctx, id)
	if err != nil {
		return application.Room{}, err
	}
	return ToApplicationRoom(stored), nil
}

func (a *RoomRepositoryAdapter) ListRooms(ctx context.Context) ([]application.Room, error) {
	models, err := a.Repo.ListRooms(ctx)
	if err != nil {
		return nil, err
	}
	if len(models) == 0 {
		return nil, nil
	}
	rooms := make([]application.Room, 0, len(models))
	for _, model := range models {
		rooms = append(rooms, ToApplicationRoom(model))
	}
	return rooms, nil
}

// BookingRepositoryAdapter bridges a persistence.BookingRepository to the
// application layer interfaces.
type BookingRepositoryAdapter struct {
	Repo persistence.BookingRepository
}

func (a *BookingRepositoryAdapter) CreateBooking(ctx context.Context, booking application.Booking) (application.Booking, error) {
	stored, err := a.Repo.CreateBooking(ctx, ToPersistenceBooking(booking))
	if err != nil {
		return application.Booking{}, err
	}
	return ToApplicationBooking(stored), nil
}

func (a *BookingRepositoryAdapter) ListBookings(ctx context.Context) ([]application.Booking, error) {
	models, err := a.Repo.ListBookings(ctx)
	if err != nil {
		return nil, err
	}
	if len(models) == 0 {
		return nil, nil
	}
	bookings := make([]application.Booking, 0, len(models))
	for _, model := range models {
		bookings = append(bookings, ToApplicationBooking(model))
	}
	return bookings, nil
}

// ToApplicationRoom converts a stored room to its application representation.
func ToApplicationRoom(model persistence.Room) application.Room {
	return application.Room{
		ID:        model.ID,
		Name:      model.Name,
		Seats:     model.Seats,
		Amenities: append([]string(nil), model.Amenities...),
		Price:     model.Price,
		CreatedAt: model.CreatedAt,
	}
}

// ToPersistenceRoom converts an application room to its stored representation.
func ToPersistenceRoom(room application.Room) persistence.Room {
	return persistence.Room{
		ID:        room.ID,
		Name:      room.Name,
		Seats:     room.Seats,
		Amenities: append([]string(nil), room.Amenities...),
		Price:     room.Price,
		CreatedAt: room.CreatedAt,
	}
}

// ToApplicationBooking converts a stored booking to its application representation.
func ToApplicationBooking(model persistence.Booking) application.Booking {
	return application.Booking{
		ID:           model.ID,
		CustomerName: model.CustomerName,
		Date:         model.Date,
		StartTime:    model.StartTime,
		EndTime:      model.EndTime,
		RoomID:       model.RoomID,
		CreatedAt:    model.CreatedAt,
	}
}

// ToPersistenceBooking converts an application booking to its stored representation.
func ToPersistenceBooking(booking application.Booking) persistence.Booking {
	return persistence.Booking{
		ID:           booking.ID,
		CustomerName: booking.CustomerName,
		Date:         booking.Date,
		StartTime:    booking.StartTime,
		EndTime:      booking.EndTime,
		RoomID:       booking.RoomID,
		CreatedAt:    booking.CreatedAt,
	}
}
