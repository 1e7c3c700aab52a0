package persistence

import "time"

// Room is the stored representation of a bookable meeting room.
type Room struct {
	ID        int
	Name      string
	Seats     int
	Amenities []string
	Price     float64
	CreatedAt time.Time
}

// Booking is the stored representation of a room reservation. Date, StartTime,
// and EndTime are stored exactly as submitted; the store never interprets them.
type Booking struct {
	ID           int
	CustomerName string
	Date         string
	StartTime    string
	EndTime      string
	RoomID       int
	CreatedAt    time.Time
}
