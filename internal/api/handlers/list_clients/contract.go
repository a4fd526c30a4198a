package list_clients

import (
	"context"

	"github.com/m0rkovka/LS-BookingService/internal/domain"
)

type ClientService interface {
	List(ctx context.Context) ([]*domain.Client, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
