package get_report

import (
	"context"

	"github.com/m0rkovka/LS-BookingService/internal/service/bookings/models"
)

type BookingService interface {
	Report(ctx context.Context) (*models.ReportResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
