package add_client

import (
	"errors"
	"net/http"

	"github.com/m0rkovka/LS-BookingService/internal/api/handlers"
	"github.com/m0rkovka/LS-BookingService/internal/service/clients"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgValidationFailed   = "некорректные данные клиента"
)

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

// Handle POST /api/v1/clients
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req AddClientRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /clients - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	created, err := h.service.AddClient(r.Context(), req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, clients.ErrValidation):
			h.logger.Warn("POST /clients - Validation failed: %v", err)
			handlers.RespondBadRequest(w, msgValidationFailed)

		default:
			h.logger.Error("POST /clients - Failed to add client: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /clients - Client added: client_id=%d", created.ID)
	handlers.RespondJSON(w, http.StatusCreated, FromDomainClient(created))
}
