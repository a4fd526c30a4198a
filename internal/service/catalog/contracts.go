package catalog

import (
	"context"

	"github.com/m0rkovka/LS-BookingService/internal/domain"
)

// CatalogRepository интерфейс реестра залов и оборудования
type CatalogRepository interface {
	AddHall(ctx context.Context, hall domain.Hall) error
	AddEquipment(ctx context.Context, item domain.EquipmentItem) error
	ListHalls(ctx context.Context) ([]domain.Hall, error)
	ListEquipment(ctx context.Context) ([]domain.EquipmentItem, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
