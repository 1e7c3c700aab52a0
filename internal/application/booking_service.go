package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/example/room-booking/internal/conflict"
)

// UnknownRoomName is the placeholder room name used when a booking references
// a room that cannot be resolved. Rooms are never deleted today, so this is a
// defensive default rather than a reachable state.
const UnknownRoomName = "Unknown Room"

// BookingRepository captures the persistence operations needed by the
// service. Implementations assign the sequential booking id on create.
type BookingRepository interface {
	CreateBooking(ctx context.Context, booking Booking) (Booking, error)
	ListBookings(ctx context.Context) ([]Booking, error)
}

// RoomDirectory exposes the room lookups needed to admit and annotate
// bookings. It is a read-only view of the room collection.
type RoomDirectory interface {
	GetRoom(ctx context.Context, id int) (Room, error)
}

// BookingService owns the booking ledger: validation, conflict detection,
// creation, and the customer-centric query views.
type BookingService struct {
	// mu serializes the existence-check, conflict-scan, append sequence so
	// two requests racing on the same room and date cannot both be admitted.
	mu       sync.Mutex
	bookings BookingRepository
	rooms    RoomDirectory
	now      func() time.Time
	logger   *slog.Logger
}

// NewBookingService constructs a booking service with the provided dependencies.
func NewBookingService(bookings BookingRepository, rooms RoomDirectory, now func() time.Time) *BookingService {
	return NewBookingServiceWithLogger(bookings, rooms, now, nil)
}

// NewBookingServiceWithLogger constructs a booking service with a specified logger.
func NewBookingServiceWithLogger(bookings BookingRepository, rooms RoomDirectory, now func() time.Time, logger *slog.Logger) *BookingService {
	if now == nil {
		now = time.Now
	}
	return &BookingService{bookings: bookings, rooms: rooms, now: now, logger: defaultLogger(logger)}
}

func (s *BookingService) loggerWith(ctx context.Context, operation string, attrs ...any) *slog.Logger {
	return serviceLogger(ctx, s.logger, "BookingService", operation, attrs...)
}

// CreateBooking validates input, confirms the room exists, rejects time slot
// conflicts, and stores the booking. Nothing is appended on any failure path.
func (s *BookingService) CreateBooking(ctx context.Context, input BookingInput) (booking Booking, err error) {
	if s == nil {
		err = fmt.Errorf("BookingService is nil")
		return
	}

	logger := s.loggerWith(ctx, "CreateBooking",
		"customer_name", input.CustomerName,
		"room_id", input.RoomID,
		"date", input.Date,
	)
	defer func() {
		if err != nil {
			logger.ErrorContext(ctx, "failed to create booking", "error", err, "error_kind", ErrorKind(err))
			return
		}
		logger.With("booking_id", booking.ID).InfoContext(ctx, "booking created")
	}()

	vErr := validateBookingInput(input)
	if vErr.HasErrors() {
		err = vErr
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.rooms == nil {
		err = ErrRoomNotFound
		return
	}
	if _, err = s.rooms.GetRoom(ctx, input.RoomID); err != nil {
		err = mapRoomRepoError(err)
		return
	}

	var existing []Booking
	if s.bookings != nil {
		existing, err = s.bookings.ListBookings(ctx)
		if err != nil {
			return
		}
	}

	candidate := conflict.Slot{
		RoomID: input.RoomID,
		Date:   input.Date,
		Start:  input.StartTime,
		End:    input.EndTime,
	}
	if _, found := conflict.FindConflict(bookingSlots(existing), candidate); found {
		err = ErrSlotConflict
		return
	}

	booking = Booking{
		CustomerName: input.CustomerName,
		Date:         input.Date,
		StartTime:    input.StartTime,
		EndTime:      input.EndTime,
		RoomID:       input.RoomID,
		CreatedAt:    s.now(),
	}

	if s.bookings == nil {
		return
	}

	var persisted Booking
	persisted, err = s.bookings.CreateBooking(ctx, booking)
	if err != nil {
		return
	}

	booking = persisted
	return
}

// ListBookingsWithRoomNames returns every booking in insertion order joined
// with its room name. A booking whose room cannot be resolved carries the
// UnknownRoomName placeholder.
func (s *BookingService) ListBookingsWithRoomNames(ctx context.Context) (views []CustomerBooking, err error) {
	if s == nil {
		err = fmt.Errorf("BookingService is nil")
		return
	}

	logger := s.loggerWith(ctx, "ListBookingsWithRoomNames")
	defer func() {
		if err != nil {
			logger.ErrorContext(ctx, "failed to list bookings", "error", err, "error_kind", ErrorKind(err))
			return
		}
		logger.With("result_count", len(views)).InfoContext(ctx, "bookings listed")
	}()

	if s.bookings == nil {
		return nil, nil
	}

	var bookings []Booking
	bookings, err = s.bookings.ListBookings(ctx)
	if err != nil {
		return
	}

	roomNames := make(map[int]string)
	views = make([]CustomerBooking, 0, len(bookings))
	for _, booking := range bookings {
		name, ok := roomNames[booking.RoomID]
		if !ok {
			name, err = s.roomName(ctx, booking.RoomID)
			if err != nil {
				views = nil
				return
			}
			roomNames[booking.RoomID] = name
		}
		views = append(views, CustomerBooking{
			CustomerName: booking.CustomerName,
			RoomName:     name,
			Date:         booking.Date,
			StartTime:    booking.StartTime,
			EndTime:      booking.EndTime,
		})
	}
	return
}

// BookingsForCustomer returns the bookings held by the named customer, in
// insertion order. The match is exact and case-sensitive. A customer with no
// bookings yields ErrNoBookingsForCustomer.
func (s *BookingService) BookingsForCustomer(ctx context.Context, customerName string) (result CustomerBookings, err error) {
	if s == nil {
		err = fmt.Errorf("BookingService is nil")
		return
	}

	logger := s.loggerWith(ctx, "BookingsForCustomer",
		"customer_name", customerName,
	)
	defer func() {
		if err != nil {
			logger.ErrorContext(ctx, "failed to look up customer bookings", "error", err, "error_kind", ErrorKind(err))
			return
		}
		logger.With("booking_count", result.BookingCount).InfoContext(ctx, "customer bookings listed")
	}()

	var all []Booking
	if s.bookings != nil {
		all, err = s.bookings.ListBookings(ctx)
		if err != nil {
			return
		}
	}

	matched := make([]Booking, 0)
	for _, booking := range all {
		if booking.CustomerName == customerName {
			matched = append(matched, booking)
		}
	}

	if len(matched) == 0 {
		err = ErrNoBookingsForCustomer
		return
	}

	result = CustomerBookings{
		CustomerName: customerName,
		BookingCount: len(matched),
		Bookings:     matched,
	}
	return
}

func (s *BookingService) roomName(ctx context.Context, roomID int) (string, error) {
	if s.rooms == nil {
		return UnknownRoomName, nil
	}
	room, err := s.rooms.GetRoom(ctx, roomID)
	if err != nil {
		if errors.Is(mapRoomRepoError(err), ErrRoomNotFound) {
			return UnknownRoomName, nil
		}
		return "", err
	}
	return room.Name, nil
}

// validateBookingInput applies the required-field policy shared with rooms:
// every field must carry a non-zero value. A zero room id counts as missing.
// Note that StartTime < EndTime is deliberately not enforced.
func validateBookingInput(input BookingInput) *ValidationError {
	vErr := &ValidationError{Message: "All fields are required (customerName, date, startTime, endTime, roomId)"}

	if input.CustomerName == "" {
		vErr.add("customerName", "customerName is required")
	}
	if input.Date == "" {
		vErr.add("date", "date is required")
	}
	if input.StartTime == "" {
		vErr.add("startTime", "startTime is required")
	}
	if input.EndTime == "" {
		vErr.add("endTime", "endTime is required")
	}
	if input.RoomID == 0 {
		vErr.add("roomId", "roomId is required")
	}

	return vErr
}

func bookingSlots(bookings []Booking) []conflict.Slot {
	if len(bookings) == 0 {
		return nil
	}
	slots := make([]conflict.Slot, 0, len(bookings))
	for _, booking := range bookings {
		slots = append(slots, conflict.Slot{
			RoomID: booking.RoomID,
			Date:   booking.Date,
			Start:  booking.StartTime,
			End:    booking.EndTime,
		})
	}
	return slots
}
