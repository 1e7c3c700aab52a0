package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/example/room-booking/internal/application"
)

var errInvalidCustomerName = errors.New("Invalid customer name")

type customerQueryService interface {
	ListBookingsWithRoomNames(ctx context.Context) ([]application.CustomerBooking, error)
	BookingsForCustomer(ctx context.Context, customerName string) (application.CustomerBookings, error)
}

type CustomerHandler struct {
	service   customerQueryService
	responder responder
	logger    *slog.Logger
}

func NewCustomerHandler(service customerQueryService, logger *slog.Logger) *CustomerHandler {
	base := defaultLogger(logger)
	return &CustomerHandler{service: service, responder: newResponder(base), logger: base}
}

func (h *CustomerHandler) log(ctx context.Context, operation string, attrs ...any) *slog.Logger {
	if h == nil {
		return slog.Default()
	}
	return handlerLogger(ctx, h.logger, "CustomerHandler", operation, attrs...)
}

// List serves GET /customers: every booking joined with its room name.
func (h *CustomerHandler) List(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	logger := h.log(r.Context(), "List")

	views, err := h.service.ListBookingsWithRoomNames(r.Context())
	if err != nil {
		logger.ErrorContext(r.Context(), "customer list failed", "error", err, "error_kind", application.ErrorKind(err))
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	logger.With("result_count", len(views)).InfoContext(r.Context(), "customers listed")
	h.responder.writeJSON(r.Context(), w, http.StatusOK, toCustomerBookingDTOs(views))
}

// ListForCustomer serves GET /customers/{customerName}/bookings.
func (h *CustomerHandler) ListForCustomer(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	customerName, ok := CustomerNameFromContext(r.Context())
	if !ok || customerName == "" {
		h.log(r.Context(), "ListForCustomer", "error_kind", "bad_request").ErrorContext(r.Context(), "missing customer name in path")
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errInvalidCustomerName)
		return
	}

	logger := h.log(r.Context(), "ListForCustomer", "customer_name", customerName)

	result, err := h.service.BookingsForCustomer(r.Context(), customerName)
	if err != nil {
		logger.ErrorContext(r.Context(), "customer booking lookup failed", "error", err, "error_kind", application.ErrorKind(err))
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	logger.With("booking_count", result.BookingCount).InfoContext(r.Context(), "customer bookings listed")
	h.responder.writeJSON(r.Context(), w, http.StatusOK, customerBookingsResponse{
		CustomerName: result.CustomerName,
		BookingCount: result.BookingCount,
		Bookings:     toBookingDTOs(result.Bookings),
	})
}

type customerBookingDTO struct {
	CustomerName string `json:"customerName"`
	RoomName     string `json:"roomName"`
	Date         string `json:"date"`
	StartTime    string `json:"startTime"`
	EndTime      string `json:"endTime"`
}

type customerBookingsResponse struct {
	CustomerName string       `json:"customerName"`
	BookingCount int          `json:"bookingCount"`
	Bookings     []bookingDTO `json:"bookings"`
}

func toCustomerBookingDTOs(views []application.CustomerBooking) []customerBookingDTO {
	out := make([]customerBookingDTO, 0, len(views))
	for _, view := range views {
		out = append(out, customerBookingDTO{
			CustomerName: view.CustomerName,
			RoomName:     view.RoomName,
			Date:         view.Date,
			StartTime:    view.StartTime,
			EndTime:      view.EndTime,
		})
	}
	return out
}
