package list_halls

import (
	"net/http"

	"github.com/m0rkovka/LS-BookingService/internal/api/handlers"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HallResponse HTTP response model
type HallResponse struct {
	Number     int     `json:"number"`
	HourlyRate float64 `json:"hourlyRate"`
	Capacity   int     `json:"capacity"`
}

// HallListResponse список залов в порядке регистрации
type HallListResponse struct {
	Halls []HallResponse `json:"halls"`
}

// Handle GET /api/v1/halls
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	halls, err := h.service.ListHalls(r.Context())
	if err != nil {
		h.logger.Error("GET /halls - Failed to list halls: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	resp := HallListResponse{Halls: make([]HallResponse, len(halls))}
	for i, hall := range halls {
		resp.Halls[i] = HallResponse{
			Number:     hall.Number,
			HourlyRate: hall.HourlyRate,
			Capacity:   hall.Capacity,
		}
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}
