package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/example/room-booking/internal/persistence"
)

// CreateBooking inserts a new booking and returns it with its assigned id.
func (s *Store) CreateBooking(ctx context.Context, booking persistence.Booking) (persistence.Booking, error) {
	if booking.CreatedAt.IsZero() {
		booking.CreatedAt = time.Now().UTC()
	}

	query := `
		INSERT INTO bookings (customer_name, date, start_time, end_time, room_id, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	result, err := s.db.ExecContext(ctx, query,
		booking.CustomerName,
		booking.Date,
		booking.StartTime,
		booking.EndTime,
		booking.RoomID,
		booking.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return persistence.Booking{}, mapError(err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return persistence.Booking{}, fmt.Errorf("failed to read booking id: %w", err)
	}

	booking.ID = int(id)
	return booking, nil
}

// ListBookings returns all bookings in creation order.
func (s *Store) ListBookings(ctx context.Context) ([]persistence.Booking, error) {
	query := `
		SELECT id, customer_name, date, start_time, end_time, room_id, created_at
		FROM bookings
		ORDER BY id
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	var bookings []persistence.Booking
	for rows.Next() {
		var (
			booking   persistence.Booking
			createdAt string
		)
		if err := rows.Scan(
			&booking.ID,
			&booking.CustomerName,
			&booking.Date,
			&booking.StartTime,
			&booking.EndTime,
			&booking.RoomID,
			&createdAt,
		); err != nil {
			return nil, err
		}
		if parsed, err := time.Parse(time.RFC3339Nano, createdAt); err == nil {
			booking.CreatedAt = parsed
		}
		bookings = append(bookings, booking)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err)
	}
	return bookings, nil
}
