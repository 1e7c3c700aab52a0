package application

import "time"

// RoomInput captures caller provided room fields.
type RoomInput struct {
	Name      string
	Seats     int
	Amenities []string
	Price     float64
}

// Room represents a bookable meeting room.
type Room struct {
	ID        int
	Name      string
	Seats     int
	Amenities []string
	Price     float64
	CreatedAt time.Time
}

// BookingInput captures caller provided booking fields. Date, StartTime, and
// EndTime are opaque strings; the service compares them but never parses them.
type BookingInput struct {
	CustomerName string
	Date         string
	StartTime    string
	EndTime      string
	RoomID       int
}

// Booking represents a reservation of a room for a customer over a date and
// half-open time interval.
type Booking struct {
	ID           int
	CustomerName string
	Date         string
	StartTime    string
	EndTime      string
	RoomID       int
	CreatedAt    time.Time
}

// RoomWithBookings pairs a room with the bookings recorded against it, in
// booking insertion order.
type RoomWithBookings struct {
	Room     Room
	Bookings []Booking
}

// CustomerBooking is the denormalized view of one booking joined with the
// name of its room.
type CustomerBooking struct {
	CustomerName string
	RoomName     string
	Date         string
	StartTime    string
	EndTime      string
}

// CustomerBookings summarises every booking held by a single customer.
type CustomerBookings struct {
	CustomerName string
	BookingCount int
	Bookings     []Booking
}
