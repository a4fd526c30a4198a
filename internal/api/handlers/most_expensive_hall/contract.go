package most_expensive_hall

import (
	"context"

	"github.com/m0rkovka/LS-BookingService/internal/domain"
)

type CatalogService interface {
	MostExpensiveHall(ctx context.Context) (domain.Hall, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
