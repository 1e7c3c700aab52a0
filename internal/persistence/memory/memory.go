// Package memory provides the default in-process storage backend for the
// booking API. Both collections are append-only slices guarded by a
// read-write mutex.
package memory

import (
	"context"
	"sync"

	"github.com/example/room-booking/internal/persistence"
)

// Store keeps rooms and bookings in memory. Identifiers come from explicit
// per-collection counters rather than slice length, so they stay monotone
// even if deletion is ever added.
type Store struct {
	mu            sync.RWMutex
	rooms         []persistence.Room
	bookings      []persistence.Booking
	nextRoomID    int
	nextBookingID int
}

// NewStore returns an empty store with both id sequences starting at 1.
func NewStore() *Store {
	return &Store{nextRoomID: 1, nextBookingID: 1}
}

// Close releases resources held by the store. No-op for the in-memory
// implementation.
func (s *Store) Close() error {
	return nil
}

// Migrate initialises the store. No-op for the in-memory implementation.
func (s *Store) Migrate(context.Context) error {
	return nil
}

// Ping reports storage health. Always healthy for the in-memory
// implementation.
func (s *Store) Ping(context.Context) error {
	return nil
}

// CreateRoom assigns the next room id and appends the room.
func (s *Store) CreateRoom(_ context.Context, room persistence.Room) (persistence.Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	room.ID = s.nextRoomID
	s.nextRoomID++
	s.rooms = append(s.rooms, cloneRoom(room))
	return cloneRoom(room), nil
}

// GetRoom retrieves a room by id.
func (s *Store) GetRoom(_ context.Context, id int) (persistence.Room, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, room := range s.rooms {
		if room.ID == id {
			return cloneRoom(room), nil
		}
	}
	return persistence.Room{}, persistence.ErrNotFound
}

// ListRooms returns all rooms in creation order.
func (s *Store) ListRooms(_ context.Context) ([]persistence.Room, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.rooms) == 0 {
		return nil, nil
	}
	rooms := make([]persistence.Room, 0, len(s.rooms))
	for _, room := range s.rooms {
		rooms = append(rooms, cloneRoom(room))
	}
	return rooms, nil
}

// CreateBooking assigns the next booking id and appends the booking.
func (s *Store) CreateBooking(_ context.Context, booking persistence.Booking) (persistence.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	booking.ID = s.nextBookingID
	s.nextBookingID++
	s.bookings = append(s.bookings, booking)
	return booking, nil
}

// ListBookings returns all bookings in creation order.
func (s *Store) ListBookings(_ context.Context) ([]persistence.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.bookings) == 0 {
		return nil, nil
	}
	bookings := make([]persistence.Booking, len(s.bookings))
	copy(bookings, s.bookings)
	return bookings, nil
}

// cloneRoom detaches the amenities slice so callers cannot mutate stored state.
func cloneRoom(room persistence.Room) persistence.Room {
	room.Amenities = append([]string(nil), room.Amenities...)
	return room
}
