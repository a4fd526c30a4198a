package most_expensive_hall

import (
	"errors"
	"net/http"

	"github.com/m0rkovka/LS-BookingService/internal/api/handlers"
	"github.com/m0rkovka/LS-BookingService/internal/service/catalog"
)

const msgNoHalls = "в каталоге нет залов"

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

// Handle GET /api/v1/halls/most-expensive
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	hall, err := h.service.MostExpensiveHall(r.Context())
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrNoHalls):
			h.logger.Warn("GET /halls/most-expensive - Catalog is empty")
			handlers.RespondNotFound(w, msgNoHalls)

		default:
			h.logger.Error("GET /halls/most-expensive - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, HallResponse{
		Number:     hall.Number,
		HourlyRate: hall.HourlyRate,
		Capacity:   hall.Capacity,
	})
}
