package http

import (
	"context"
	"log/slog"
	"net/http"
)

// StoragePinger reports whether the storage backend is reachable.
type StoragePinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	storage   StoragePinger
	responder responder
	logger    *slog.Logger
}

func NewHealthHandler(storage StoragePinger, logger *slog.Logger) *HealthHandler {
	base := defaultLogger(logger)
	return &HealthHandler{storage: storage, responder: newResponder(base), logger: base}
}

// Check serves GET /healthz.
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	if h == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if h.storage != nil {
		if err := h.storage.Ping(r.Context()); err != nil {
			handlerLogger(r.Context(), h.logger, "HealthHandler", "Check").ErrorContext(r.Context(), "storage unreachable", "error", err)
			h.responder.writeJSON(r.Context(), w, http.StatusServiceUnavailable, healthResponse{Status: "unavailable"})
			return
		}
	}

	h.responder.writeJSON(r.Context(), w, http.StatusOK, healthResponse{Status: "ok"})
}

type healthResponse struct {
	Status string `json:"status"`
}
