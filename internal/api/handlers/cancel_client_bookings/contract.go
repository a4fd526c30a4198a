package cancel_client_bookings

import (
	"context"

	"github.com/m0rkovka/LS-BookingService/internal/service/bookings/models"
)

type BookingService interface {
	Cancel(ctx context.Context, clientID int64) (*models.CancelResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
