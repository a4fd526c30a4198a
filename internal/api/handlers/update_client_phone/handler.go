package update_client_phone

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m0rkovka/LS-BookingService/internal/api/handlers"
	"github.com/m0rkovka/LS-BookingService/internal/service/clients"
)

const (
	msgInvalidClientID    = "некорректный ID клиента"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidPhone       = "телефон должен состоять ровно из 11 цифр"
	msgClientNotFound     = "клиент не найден"
)

// UpdatePhoneRequest HTTP request model
type UpdatePhoneRequest struct {
	Phone string `json:"phone" validate:"required"`
}

type Handler struct {
	service ClientService
	logger  Logger
}

func NewHandler(service ClientService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/clients/{clientId}/phone
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	clientID, err := strconv.ParseInt(vars["clientId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /clients/{id}/phone - Invalid client ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidClientID)
		return
	}

	var req UpdatePhoneRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /clients/{id}/phone - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.UpdatePhone(r.Context(), clientID, req.Phone); err != nil {
		switch {
		case errors.Is(err, clients.ErrValidation):
			h.logger.Warn("PATCH /clients/{id}/phone - Invalid phone: client_id=%d", clientID)
			handlers.RespondBadRequest(w, msgInvalidPhone)

		case errors.Is(err, clients.ErrClientNotFound):
			h.logger.Warn("PATCH /clients/{id}/phone - Client not found: client_id=%d", clientID)
			handlers.RespondNotFound(w, msgClientNotFound)

		default:
			h.logger.Error("PATCH /clients/{id}/phone - Failed to update phone: client_id=%d, error=%v", clientID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /clients/{id}/phone - Phone updated: client_id=%d", clientID)
	handlers.RespondJSON(w, http.StatusOK, nil)
}
