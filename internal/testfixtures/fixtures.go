// Package testfixtures provides deterministic clocks, input builders, and
// pre-wired service graphs for tests across the repository.
package testfixtures

import (
	"time"

	"github.com/example/room-booking/internal/application"
)

var referenceTime = time.Date(2024, time.January, 2, 15, 4, 5, 0, time.UTC)

// ReferenceTime returns the canonical baseline timestamp used by fixtures.
func ReferenceTime() time.Time {
	return referenceTime
}

// RoomOption configures a generated room input.
type RoomOption func(*application.RoomInput)

// NewRoomInput returns a valid room input with optional overrides.
func NewRoomInput(opts ...RoomOption) application.RoomInput {
	input := application.RoomInput{
		Name:      "Conference Room A",
		Seats:     10,
		Amenities: []string{"projector", "whiteboard"},
		Price:     50,
	}
	for _, opt := range opts {
		opt(&input)
	}
	return input
}

// WithRoomName overrides the room name.
func WithRoomName(name string) RoomOption {
	return func(input *application.RoomInput) {
		input.Name = name
	}
}

// BookingOption configures a generated booking input.
type BookingOption func(*application.BookingInput)

// NewBookingInput returns a valid booking input for room 1 with optional
// overrides.
func NewBookingInput(opts ...BookingOption) application.BookingInput {
	input := application.BookingInput{
		CustomerName: "Alice",
		Date:         "2024-01-01",
		StartTime:    "10:00",
		EndTime:      "11:00",
		RoomID:       1,
	}
	for _, opt := range opts {
		opt(&input)
	}
	return input
}

// WithCustomer overrides the customer name.
func WithCustomer(name string) BookingOption {
	return func(input *application.BookingInput) {
		input.CustomerName = name
	}
}

// WithSlot overrides the booked time interval.
func WithSlot(start, end string) BookingOption {
	return func(input *application.BookingInput) {
		input.StartTime = start
		input.EndTime = end
	}
}

// WithDate overrides the booking date.
func WithDate(date string) BookingOption {
	return func(input *application.BookingInput) {
		input.Date = date
	}
}

// WithRoomID overrides the referenced room.
func WithRoomID(id int) BookingOption {
	return func(input *application.BookingInput) {
		input.RoomID = id
	}
}
