package create_booking

import (
	"context"
	"time"

	"github.com/m0rkovka/LS-BookingService/internal/domain"
)

// BookingRepository интерфейс журнала бронирований
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error)
	ListByHallAndDate(ctx context.Context, hallNumber int, date time.Time) ([]*domain.Booking, error)
}

// CatalogRepository интерфейс каталога залов и оборудования
type CatalogRepository interface {
	GetHall(ctx context.Context, number int) (domain.Hall, error)
	GetEquipment(ctx context.Context, name string) (domain.EquipmentItem, error)
}

// ClientRepository интерфейс реестра клиентов
type ClientRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Client, error)
}

// TransactionManager сериализует критическую секцию "проверить и вставить"
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Metrics интерфейс счетчиков admission-операций
type Metrics interface {
	AdmissionGranted(hall string)
	AdmissionRejected(hall, reason string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// NopMetrics заглушка счетчиков на случай выключенных метрик
type NopMetrics struct{}

func (NopMetrics) AdmissionGranted(string)         {}
func (NopMetrics) AdmissionRejected(string, string) {}
