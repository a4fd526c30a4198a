package bookings

import (
	"context"

	"github.com/m0rkovka/LS-BookingService/internal/domain"
)

// BookingRepository интерфейс журнала бронирований
type BookingRepository interface {
	List(ctx context.Context) ([]*domain.Booking, error)
	DeleteByClientID(ctx context.Context, clientID int64) (int, error)
}

// ClientRepository интерфейс реестра клиентов
type ClientRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Client, error)
	Count(ctx context.Context) (int, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
