package sqlite

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/example/room-booking/internal/persistence"
)

// CreateRoom inserts a new room and returns it with its assigned id.
func (s *Store) CreateRoom(ctx context.Context, room persistence.Room) (persistence.Room, error) {
	amenities, err := json.Marshal(room.Amenities)
	if err != nil {
		return persistence.Room{}, fmt.Errorf("failed to encode amenities: %w", err)
	}

	if room.CreatedAt.IsZero() {
		room.CreatedAt = time.Now().UTC()
	}

	query := `
		INSERT INTO rooms (name, seats, amenities, price, created_at)
		VALUES (?, ?, ?, ?, ?)
	`

	result, err := s.db.ExecContext(ctx, query,
		room.Name,
		room.Seats,
		string(amenities),
		room.Price,
		room.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return persistence.Room{}, mapError(err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return persistence.Room{}, fmt.Errorf("failed to read room id: %w", err)
	}

	room.ID = int(id)
	return room, nil
}

// GetRoom retrieves a room by id.
func (s *Store) GetRoom(ctx context.Context, id int) (persistence.Room, error) {
	query := `
		SELECT id, name, seats, amenities, price, created_at
		FROM rooms
		WHERE id = ?
	`

	row := s.db.QueryRowContext(ctx, query, id)
	room, err := scanRoom(row)
	if err != nil {
		return persistence.Room{}, mapError(err)
	}
	return room, nil
}

// ListRooms returns all rooms in creation order.
func (s *Store) ListRooms(ctx context.Context) ([]persistence.Room, error) {
	query := `
		SELECT id, name, seats, amenities, price, created_at
		FROM rooms
		ORDER BY id
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	var rooms []persistence.Room
	for rows.Next() {
		room, err := scanRoom(rows)
		if err != nil {
			return nil, err
		}
		rooms = append(rooms, room)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err)
	}
	return rooms, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRoom(row rowScanner) (persistence.Room, error) {
	var (
		room      persistence.Room
		amenities string
		createdAt string
	)
	if err := row.Scan(&room.ID, &room.Name, &room.Seats, &amenities, &room.Price, &createdAt); err != nil {
		return persistence.Room{}, err
	}
	if err := json.Unmarshal([]byte(amenities), &room.Amenities); err != nil {
		return persistence.Room{}, fmt.Errorf("failed to decode amenities for room %d: %w", room.ID, err)
	}
	if parsed, err := time.Parse(time.RFC3339Nano, createdAt); err == nil {
		room.CreatedAt = parsed
	}
	return room, nil
}
