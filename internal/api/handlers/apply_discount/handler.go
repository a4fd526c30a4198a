package apply_discount

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
	msgInvalidDiscount    = "скидка должна быть в диапазоне от 0 до 30"
	msgClientNotFound     = "клиент не найден"
)

// ApplyDiscountRequest HTTP request model
type ApplyDiscountRequest struct {
	Discount int `json:"discount" validate:"gte=0,lte=30"`
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

// Handle PATCH /api/v1/clients/{clientId}/discount
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	clientID, err := strconv.ParseInt(vars["clientId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /clients/{id}/discount - Invalid client ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidClientID)
		return
	}

	var req ApplyDiscountRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /clients/{id}/discount - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.ApplyDiscount(r.Context(), clientID, req.Discount); err != nil {
		switch {
		case errors.Is(err, clients.ErrValidation):
			h.logger.Warn("PATCH /clients/{id}/discount - Invalid discount %d: client_id=%d", req.Discount, clientID)
			handlers.RespondBadRequest(w, msgInvalidDiscount)

		case errors.Is(err, clients.ErrClientNotFound):
			h.logger.Warn("PATCH /clients/{id}/discount - Client not found: client_id=%d", clientID)
			handlers.RespondNotFound(w, msgClientNotFound)

		default:
			h.logger.Error("PATCH /clients/{id}/discount - Failed to apply discount: client_id=%d, error=%v", clientID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /clients/{id}/discount - Discount applied: client_id=%d, discount=%d%%", clientID, req.Discount)
	handlers.RespondJSON(w, http.StatusOK, nil)
}
