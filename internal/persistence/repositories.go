package persistence

import "context"

// RoomRepository stores rooms. Implementations assign the sequential
// identifier (starting at 1) on create and preserve insertion order in lists.
type RoomRepository interface {
	CreateRoom(ctx context.Context, room Room) (Room, error)
	GetRoom(ctx context.Context, id int) (Room, error)
	ListRooms(ctx context.Context) ([]Room, error)
}

// BookingRepository stores bookings. Identifier assignment and ordering
// follow the same rules as RoomRepository, with an independent counter.
type BookingRepository interface {
	CreateBooking(ctx context.Context, booking Booking) (Booking, error)
	ListBookings(ctx context.Context) ([]Booking, error)
}
