package list_clients

import (
	"net/http"

	"github.com/m0rkovka/LS-BookingService/internal/api/handlers"
	"github.com/m0rkovka/LS-BookingService/internal/domain"
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

// ClientResponse HTTP response model
type ClientResponse struct {
	ID         int64  `json:"id"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Phone      string `json:"phone"`
	Discount   int    `json:"discount"`
	PhoneValid bool   `json:"phoneValid"`
}

// ClientListResponse список клиентов в порядке регистрации
type ClientListResponse struct {
	Clients []ClientResponse `json:"clients"`
}

// Handle GET /api/v1/clients
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /clients - Failed to list clients: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	resp := ClientListResponse{Clients: make([]ClientResponse, len(list))}
	for i, c := range list {
		resp.Clients[i] = fromDomainClient(c)
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}

func fromDomainClient(c *domain.Client) ClientResponse {
	return ClientResponse{
		ID:         c.ID,
		FirstName:  c.FirstName,
		LastName:   c.LastName,
		Phone:      c.Phone,
		Discount:   c.Discount,
		PhoneValid: c.HasValidPhone(),
	}
}
