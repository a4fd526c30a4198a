package get_report

import (
	"math"
	"net/http"

	"github.com/m0rkovka/LS-BookingService/internal/api/handlers"
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

// ReportResponse сводка для экрана отчетов
type ReportResponse struct {
	TotalClients  int     `json:"totalClients"`
	TotalBookings int     `json:"totalBookings"`
	TotalRevenue  float64 `json:"totalRevenue"`
}

// Handle GET /api/v1/report
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	report, err := h.service.Report(r.Context())
	if err != nil {
		h.logger.Error("GET /report - Failed to build report: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	// Округление до копеек выполняется только здесь, на границе представления
	handlers.RespondJSON(w, http.StatusOK, ReportResponse{
		TotalClients:  report.TotalClients,
		TotalBookings: report.TotalBookings,
		TotalRevenue:  math.Round(report.TotalRevenue*100) / 100,
	})
}
