package add_client

import (
	"context"

	"github.com/m0rkovka/LS-BookingService/internal/domain"
	"github.com/m0rkovka/LS-BookingService/internal/service/clients"
)

type ClientService interface {
	AddClient(ctx context.Context, req *clients.AddClientRequest) (*domain.Client, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
