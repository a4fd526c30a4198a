package list_equipment

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

// EquipmentResponse HTTP response model
type EquipmentResponse struct {
	Name       string  `json:"name"`
	HourlyRate float64 `json:"hourlyRate"`
}

// EquipmentListResponse список оборудования в порядке регистрации
type EquipmentListResponse struct {
	Equipment []EquipmentResponse `json:"equipment"`
}

// Handle GET /api/v1/equipment
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.ListEquipment(r.Context())
	if err != nil {
		h.logger.Error("GET /equipment - Failed to list equipment: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	resp := EquipmentListResponse{Equipment: make([]EquipmentResponse, len(items))}
	for i, item := range items {
		resp.Equipment[i] = EquipmentResponse{
			Name:       item.Name,
			HourlyRate: item.HourlyRate,
		}
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}
