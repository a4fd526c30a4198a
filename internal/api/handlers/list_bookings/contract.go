package list_bookings

import (
	"context"

	"github.com/m0rkovka/LS-BookingService/internal/service/bookings/models"
)

type BookingService interface {
	List(ctx context.Context) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
