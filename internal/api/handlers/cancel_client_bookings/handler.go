package cancel_client_bookings

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m0rkovka/LS-BookingService/internal/api/handlers"
	"github.com/m0rkovka/LS-BookingService/internal/service/bookings"
)

const (
	msgInvalidClientID = "некорректный ID клиента"
	msgClientNotFound  = "клиент не найден"
	msgNoBookings      = "у клиента нет бронирований"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/clients/{clientId}/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	clientID, err := strconv.ParseInt(vars["clientId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /clients/{id}/bookings - Invalid client ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidClientID)
		return
	}

	result, err := h.service.Cancel(r.Context(), clientID)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrClientNotFound):
			h.logger.Warn("DELETE /clients/{id}/bookings - Client not found: client_id=%d", clientID)
			handlers.RespondNotFound(w, msgClientNotFound)

		case errors.Is(err, bookings.ErrNoBookingsForClient):
			h.logger.Warn("DELETE /clients/{id}/bookings - No bookings: client_id=%d", clientID)
			handlers.RespondNotFound(w, msgNoBookings)

		default:
			h.logger.Error("DELETE /clients/{id}/bookings - Failed to cancel: client_id=%d, error=%v", clientID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /clients/{id}/bookings - Cancelled %d bookings: client_id=%d", result.Removed, clientID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
