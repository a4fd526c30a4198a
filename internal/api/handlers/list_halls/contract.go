package list_halls

import (
	"context"

	"github.com/m0rkovka/LS-BookingService/internal/domain"
)

type CatalogService interface {
	ListHalls(ctx context.Context) ([]domain.Hall, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
