package application

import (
	"context"
	"errors"
	"testing"

	"github.com/example/room-booking/internal/persistence"
)

type bookingRepoStub struct {
	bookings  []Booking
	nextID    int
	createErr error
	listErr   error
}

func (b *bookingRepoStub) CreateBooking(ctx context.Context, booking Booking) (Booking, error) {
	if b.createErr != nil {
		return Booking{}, b.createErr
	}
	if b.nextID == 0 {
		b.nextID = 1
	}
	booking.ID = b.nextID
	b.nextID++
	b.bookings = append(b.bookings, booking)
	return booking, nil
}

func (b *bookingRepoStub) ListBookings(ctx context.Context) ([]Booking, error) {
	if b.listErr != nil {
		return nil, b.listErr
	}
	out := make([]Booking, len(b.bookings))
	copy(out, b.bookings)
	return out, nil
}

type roomDirectoryStub struct {
	rooms  map[int]Room
	getErr error
}

func (r *roomDirectoryStub) GetRoom(ctx context.Context, id int) (Room, error) {
	if r.getErr != nil {
		return Room{}, r.getErr
	}
	room, ok := r.rooms[id]
	if !ok {
		return Room{}, persistence.ErrNotFound
	}
	return room, nil
}

func singleRoomDirectory() *roomDirectoryStub {
	return &roomDirectoryStub{rooms: map[int]Room{
		1: {ID: 1, Name: "Conference Room A"},
	}}
}

func validBookingInput() BookingInput {
	return BookingInput{
		CustomerName: "Alice",
		Date:         "2024-01-01",
		StartTime:    "10:00",
		EndTime:      "11:00",
		RoomID:       1,
	}
}

func TestBookingService_CreateBooking(t *testing.T) {
	t.Run("rejects input with any missing field", func(t *testing.T) {
		cases := map[string]func(*BookingInput){
			"empty customer name": func(in *BookingInput) { in.CustomerName = "" },
			"empty date":          func(in *BookingInput) { in.Date = "" },
			"empty start time":    func(in *BookingInput) { in.StartTime = "" },
			"empty end time":      func(in *BookingInput) { in.EndTime = "" },
			"zero room id":        func(in *BookingInput) { in.RoomID = 0 },
		}

		for name, mutate := range cases {
			t.Run(name, func(t *testing.T) {
				repo := &bookingRepoStub{}
				svc := NewBookingService(repo, singleRoomDirectory(), nil)

				input := validBookingInput()
				mutate(&input)

				_, err := svc.CreateBooking(context.Background(), input)

				var vErr *ValidationError
				if !errors.As(err, &vErr) {
					t.Fatalf("expected ValidationError, got %v", err)
				}
				if vErr.Message != "All fields are required (customerName, date, startTime, endTime, roomId)" {
					t.Fatalf("unexpected message: %q", vErr.Message)
				}
				if len(repo.bookings) != 0 {
					t.Fatalf("expected no booking stored on validation failure, got %d", len(repo.bookings))
				}
			})
		}
	})

	t.Run("does not require start before end", func(t *testing.T) {
		svc := NewBookingService(&bookingRepoStub{}, singleRoomDirectory(), nil)

		input := validBookingInput()
		input.StartTime = "14:00"
		input.EndTime = "09:00"

		if _, err := svc.CreateBooking(context.Background(), input); err != nil {
			t.Fatalf("CreateBooking returned error: %v", err)
		}
	})

	t.Run("rejects bookings for unknown rooms without mutating the ledger", func(t *testing.T) {
		repo := &bookingRepoStub{}
		svc := NewBookingService(repo, singleRoomDirectory(), nil)

		input := validBookingInput()
		input.RoomID = 99

		if _, err := svc.CreateBooking(context.Background(), input); !errors.Is(err, ErrRoomNotFound) {
			t.Fatalf("expected ErrRoomNotFound, got %v", err)
		}
		if len(repo.bookings) != 0 {
			t.Fatalf("expected no booking stored, got %d", len(repo.bookings))
		}
	})

	t.Run("assigns sequential ids independent of the room collection", func(t *testing.T) {
		repo := &bookingRepoStub{}
		svc := NewBookingService(repo, singleRoomDirectory(), nil)

		dates := []string{"2024-01-01", "2024-01-02", "2024-01-03"}
		for i, date := range dates {
			input := validBookingInput()
			input.Date = date

			booking, err := svc.CreateBooking(context.Background(), input)
			if err != nil {
				t.Fatalf("CreateBooking returned error: %v", err)
			}
			if booking.ID != i+1 {
				t.Fatalf("expected id %d, got %d", i+1, booking.ID)
			}
		}
	})

	t.Run("rejects overlapping bookings for the same room and date", func(t *testing.T) {
		repo := &bookingRepoStub{}
		svc := NewBookingService(repo, singleRoomDirectory(), nil)

		if _, err := svc.CreateBooking(context.Background(), validBookingInput()); err != nil {
			t.Fatalf("seed booking returned error: %v", err)
		}

		overlap := validBookingInput()
		overlap.CustomerName = "Bob"
		overlap.StartTime = "10:30"
		overlap.EndTime = "11:30"

		if _, err := svc.CreateBooking(context.Background(), overlap); !errors.Is(err, ErrSlotConflict) {
			t.Fatalf("expected ErrSlotConflict, got %v", err)
		}
		if len(repo.bookings) != 1 {
			t.Fatalf("expected ledger unchanged after conflict, got %d bookings", len(repo.bookings))
		}
	})

	t.Run("admits adjacent bookings under half-open semantics", func(t *testing.T) {
		svc := NewBookingService(&bookingRepoStub{}, singleRoomDirectory(), nil)

		if _, err := svc.CreateBooking(context.Background(), validBookingInput()); err != nil {
			t.Fatalf("seed booking returned error: %v", err)
		}

		after := validBookingInput()
		after.StartTime = "11:00"
		after.EndTime = "12:00"
		if _, err := svc.CreateBooking(context.Background(), after); err != nil {
			t.Fatalf("adjacent-after booking returned error: %v", err)
		}

		before := validBookingInput()
		before.StartTime = "09:00"
		before.EndTime = "10:00"
		if _, err := svc.CreateBooking(context.Background(), before); err != nil {
			t.Fatalf("adjacent-before booking returned error: %v", err)
		}
	})

	t.Run("admits a booking that fully contains an existing one", func(t *testing.T) {
		// Known gap in the overlap predicate, preserved on purpose: a
		// candidate spanning the whole existing interval passes the scan.
		svc := NewBookingService(&bookingRepoStub{}, singleRoomDirectory(), nil)

		if _, err := svc.CreateBooking(context.Background(), validBookingInput()); err != nil {
			t.Fatalf("seed booking returned error: %v", err)
		}

		containing := validBookingInput()
		containing.CustomerName = "Bob"
		containing.StartTime = "09:00"
		containing.EndTime = "12:00"

		if _, err := svc.CreateBooking(context.Background(), containing); err != nil {
			t.Fatalf("expected containing booking to be admitted, got %v", err)
		}
	})

	t.Run("admits the same slot on a different date or room", func(t *testing.T) {
		directory := &roomDirectoryStub{rooms: map[int]Room{
			1: {ID: 1, Name: "Alpha"},
			2: {ID: 2, Name: "Beta"},
		}}
		svc := NewBookingService(&bookingRepoStub{}, directory, nil)

		if _, err := svc.CreateBooking(context.Background(), validBookingInput()); err != nil {
			t.Fatalf("seed booking returned error: %v", err)
		}

		otherDate := validBookingInput()
		otherDate.Date = "2024-01-02"
		if _, err := svc.CreateBooking(context.Background(), otherDate); err != nil {
			t.Fatalf("other-date booking returned error: %v", err)
		}

		otherRoom := validBookingInput()
		otherRoom.RoomID = 2
		if _, err := svc.CreateBooking(context.Background(), otherRoom); err != nil {
			t.Fatalf("other-room booking returned error: %v", err)
		}
	})
}

func TestBookingService_ListBookingsWithRoomNames(t *testing.T) {
	t.Run("joins bookings with room names in insertion order", func(t *testing.T) {
		directory := &roomDirectoryStub{rooms: map[int]Room{
			1: {ID: 1, Name: "Alpha"},
			2: {ID: 2, Name: "Beta"},
		}}
		repo := &bookingRepoStub{bookings: []Booking{
			{ID: 1, CustomerName: "Alice", Date: "2024-01-01", StartTime: "10:00", EndTime: "11:00", RoomID: 2},
			{ID: 2, CustomerName: "Bob", Date: "2024-01-01", StartTime: "11:00", EndTime: "12:00", RoomID: 1},
		}, nextID: 3}
		svc := NewBookingService(repo, directory, nil)

		views, err := svc.ListBookingsWithRoomNames(context.Background())
		if err != nil {
			t.Fatalf("ListBookingsWithRoomNames returned error: %v", err)
		}
		if len(views) != 2 {
			t.Fatalf("expected 2 views, got %d", len(views))
		}
		if views[0].CustomerName != "Alice" || views[0].RoomName != "Beta" {
			t.Fatalf("unexpected first view: %+v", views[0])
		}
		if views[1].CustomerName != "Bob" || views[1].RoomName != "Alpha" {
			t.Fatalf("unexpected second view: %+v", views[1])
		}
	})

	t.Run("substitutes a placeholder for unresolvable rooms", func(t *testing.T) {
		repo := &bookingRepoStub{bookings: []Booking{
			{ID: 1, CustomerName: "Alice", Date: "2024-01-01", StartTime: "10:00", EndTime: "11:00", RoomID: 9},
		}, nextID: 2}
		svc := NewBookingService(repo, &roomDirectoryStub{rooms: map[int]Room{}}, nil)

		views, err := svc.ListBookingsWithRoomNames(context.Background())
		if err != nil {
			t.Fatalf("ListBookingsWithRoomNames returned error: %v", err)
		}
		if len(views) != 1 || views[0].RoomName != UnknownRoomName {
			t.Fatalf("expected %q placeholder, got %+v", UnknownRoomName, views)
		}
	})

	t.Run("returns an empty view for an empty ledger", func(t *testing.T) {
		svc := NewBookingService(&bookingRepoStub{}, singleRoomDirectory(), nil)

		views, err := svc.ListBookingsWithRoomNames(context.Background())
		if err != nil {
			t.Fatalf("ListBookingsWithRoomNames returned error: %v", err)
		}
		if len(views) != 0 {
			t.Fatalf("expected no views, got %+v", views)
		}
	})
}

func TestBookingService_BookingsForCustomer(t *testing.T) {
	seeded := func() *bookingRepoStub {
		return &bookingRepoStub{bookings: []Booking{
			{ID: 1, CustomerName: "Alice", Date: "2024-01-01", StartTime: "10:00", EndTime: "11:00", RoomID: 1},
			{ID: 2, CustomerName: "Bob", Date: "2024-01-01", StartTime: "11:00", EndTime: "12:00", RoomID: 1},
			{ID: 3, CustomerName: "Alice", Date: "2024-01-02", StartTime: "09:00", EndTime: "10:00", RoomID: 1},
		}, nextID: 4}
	}

	t.Run("returns matches with their count in insertion order", func(t *testing.T) {
		svc := NewBookingService(seeded(), singleRoomDirectory(), nil)

		result, err := svc.BookingsForCustomer(context.Background(), "Alice")
		if err != nil {
			t.Fatalf("BookingsForCustomer returned error: %v", err)
		}
		if result.CustomerName != "Alice" {
			t.Fatalf("unexpected customer name: %q", result.CustomerName)
		}
		if result.BookingCount != 2 || len(result.Bookings) != 2 {
			t.Fatalf("expected 2 bookings, got count=%d len=%d", result.BookingCount, len(result.Bookings))
		}
		if result.Bookings[0].ID != 1 || result.Bookings[1].ID != 3 {
			t.Fatalf("unexpected booking order: %+v", result.Bookings)
		}
	})

	t.Run("returns ErrNoBookingsForCustomer when nothing matches", func(t *testing.T) {
		svc := NewBookingService(seeded(), singleRoomDirectory(), nil)

		if _, err := svc.BookingsForCustomer(context.Background(), "Mallory"); !errors.Is(err, ErrNoBookingsForCustomer) {
			t.Fatalf("expected ErrNoBookingsForCustomer, got %v", err)
		}
	})

	t.Run("matches are case-sensitive", func(t *testing.T) {
		svc := NewBookingService(seeded(), singleRoomDirectory(), nil)

		if _, err := svc.BookingsForCustomer(context.Background(), "alice"); !errors.Is(err, ErrNoBookingsForCustomer) {
			t.Fatalf("expected ErrNoBookingsForCustomer for lowercase name, got %v", err)
		}
	})

	t.Run("is idempotent across calls", func(t *testing.T) {
		svc := NewBookingService(seeded(), singleRoomDirectory(), nil)

		first, err := svc.BookingsForCustomer(context.Background(), "Bob")
		if err != nil {
			t.Fatalf("first call returned error: %v", err)
		}
		second, err := svc.BookingsForCustomer(context.Background(), "Bob")
		if err != nil {
			t.Fatalf("second call returned error: %v", err)
		}
		if first.BookingCount != second.BookingCount {
			t.Fatalf("expected identical results, got %+v and %+v", first, second)
		}
	})
}
