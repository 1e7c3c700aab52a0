package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/example/room-booking/internal/application"
)

type roomService interface {
	CreateRoom(ctx context.Context, input application.RoomInput) (application.Room, error)
	ListRoomsWithBookings(ctx context.Context) ([]application.RoomWithBookings, error)
}

type RoomHandler struct {
	service   roomService
	responder responder
	logger    *slog.Logger
}

func NewRoomHandler(service roomService, logger *slog.Logger) *RoomHandler {
	base := defaultLogger(logger)
	return &RoomHandler{service: service, responder: newResponder(base), logger: base}
}

func (h *RoomHandler) log(ctx context.Context, operation string, attrs ...any) *slog.Logger {
	if h == nil {
		return slog.Default()
	}
	return handlerLogger(ctx, h.logger, "RoomHandler", operation, attrs...)
}

func (h *RoomHandler) Create(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	var req roomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log(r.Context(), "Create", "error_kind", "bad_request").ErrorContext(r.Context(), "failed to decode room request", "error", err)
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errBadRequestBody)
		return
	}

	logger := h.log(r.Context(), "Create", "room_name", req.Name)

	room, err := h.service.CreateRoom(r.Context(), req.toInput())
	if err != nil {
		logger.ErrorContext(r.Context(), "room creation failed", "error", err, "error_kind", application.ErrorKind(err))
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	logger.With("room_id", room.ID).InfoContext(r.Context(), "room created")
	h.responder.writeJSON(r.Context(), w, http.StatusCreated, createRoomResponse{
		Message: "Room created successfully",
		Room:    toRoomDTO(room),
	})
}

func (h *RoomHandler) List(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	logger := h.log(r.Context(), "List")

	rooms, err := h.service.ListRoomsWithBookings(r.Context())
	if err != nil {
		logger.ErrorContext(r.Context(), "room list failed", "error", err, "error_kind", application.ErrorKind(err))
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	logger.With("result_count", len(rooms)).InfoContext(r.Context(), "rooms listed")
	h.responder.writeJSON(r.Context(), w, http.StatusOK, toRoomWithBookingsDTOs(rooms))
}

type roomRequest struct {
	Name      string   `json:"name"`
	Seats     int      `json:"seats"`
	Amenities []string `json:"amenities"`
	Price     float64  `json:"price"`
}

func (r roomRequest) toInput() application.RoomInput {
	return application.RoomInput{
		Name:      r.Name,
		Seats:     r.Seats,
		Amenities: r.Amenities,
		Price:     r.Price,
	}
}

type createRoomResponse struct {
	Message string  `json:"message"`
	Room    roomDTO `json:"room"`
}

type roomDTO struct {
	ID        int      `json:"id"`
	Name      string   `json:"name"`
	Seats     int      `json:"seats"`
	Amenities []string `json:"amenities"`
	Price     float64  `json:"price"`
}

type roomWithBookingsDTO struct {
	ID        int          `json:"id"`
	Name      string       `json:"name"`
	Seats     int          `json:"seats"`
	Amenities []string     `json:"amenities"`
	Price     float64      `json:"price"`
	Bookings  []bookingDTO `json:"bookings"`
}

func toRoomDTO(room application.Room) roomDTO {
	amenities := room.Amenities
	if amenities == nil {
		amenities = []string{}
	}
	return roomDTO{
		ID:        room.ID,
		Name:      room.Name,
		Seats:     room.Seats,
		Amenities: amenities,
		Price:     room.Price,
	}
}

// toRoomWithBookingsDTOs always returns a non-nil slice so empty listings
// serialize as [] rather than null. The same holds for each bookings list.
func toRoomWithBookingsDTOs(rooms []application.RoomWithBookings) []roomWithBookingsDTO {
	out := make([]roomWithBookingsDTO, 0, len(rooms))
	for _, entry := range rooms {
		room := toRoomDTO(entry.Room)
		out = append(out, roomWithBookingsDTO{
			ID:        room.ID,
			Name:      room.Name,
			Seats:     room.Seats,
			Amenities: room.Amenities,
			Price:     room.Price,
			Bookings:  toBookingDTOs(entry.Bookings),
		})
	}
	return out
}
