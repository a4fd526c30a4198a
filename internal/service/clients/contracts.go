package clients

import (
	"context"

	"github.com/m0rkovka/LS-BookingService/internal/domain"
)

// ClientRepository интерфейс реестра клиентов
type ClientRepository interface {
	Create(ctx context.Context, c *domain.Client) (*domain.Client, error)
	GetByID(ctx context.Context, id int64) (*domain.Client, error)
	List(ctx context.Context) ([]*domain.Client, error)
	UpdatePhone(ctx context.Context, id int64, phone string) error
	UpdateDiscount(ctx context.Context, id int64, discount int) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
