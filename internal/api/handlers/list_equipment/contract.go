package list_equipment

import (
	"context"

	"github.com/m0rkovka/LS-BookingService/internal/domain"
)

type CatalogService interface {
	ListEquipment(ctx context.Context) ([]domain.EquipmentItem, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
