package bookings

import (
	"context"
	"errors"
	"fmt"

	bookingRepo "github.com/m0rkovka/LS-BookingService/internal/infra/storage/booking"
	clientRepo "github.com/m0rkovka/LS-BookingService/internal/infra/storage/client"
	"github.com/m0rkovka/LS-BookingService/internal/service/bookings/models"
)

// Service сервис чтения и отмены бронирований
// Создание бронирований живет отдельно в usecase create_booking:
// там нужна сериализация "проверить и вставить"
type Service struct {
	bookingRepo BookingRepository
	clientRepo  ClientRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, clientRepo ClientRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		clientRepo:  clientRepo,
		logger:      logger,
	}
}

// List возвращает все бронирования, сгруппированные по дате
// Группы идут по возрастанию даты, внутри группы сохранен порядок вставки
func (s *Service) List(ctx context.Context) (*models.BookingListResponse, error) {
	all, err := s.bookingRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d bookings", len(all))
	return models.GroupByDate(all), nil
}

// Cancel удаляет все бронирования клиента и возвращает их количество
// Клиент идентифицируется по ID реестра - это полная идентичность,
// а не совпадение только по имени. Если удалять нечего, возвращается
// ErrNoBookingsForClient, журнал остается без изменений
func (s *Service) Cancel(ctx context.Context, clientID int64) (*models.CancelResponse, error) {
	s.logger.Info("Cancel: cancelling bookings for client id=%d", clientID)

	// Проверяем, что клиент вообще зарегистрирован
	if _, err := s.clientRepo.GetByID(ctx, clientID); err != nil {
		if errors.Is(err, clientRepo.ErrClientNotFound) {
			s.logger.Warn("Cancel: client id=%d not found", clientID)
			return nil, ErrClientNotFound
		}
		s.logger.Error("Cancel: client repository error for id=%d: %v", clientID, err)
		return nil, fmt.Errorf("%w: Cancel - client repository error: %v", ErrInternal, err)
	}

	removed, err := s.bookingRepo.DeleteByClientID(ctx, clientID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: client id=%d has no bookings", clientID)
			return nil, ErrNoBookingsForClient
		}
		s.logger.Error("Cancel: repository error for client id=%d: %v", clientID, err)
		return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: removed %d bookings for client id=%d", removed, clientID)
	return &models.CancelResponse{ClientID: clientID, Removed: removed}, nil
}

// Report возвращает сводку для экрана отчетов: количество клиентов,
// количество бронирований и суммарную выручку
// Значения всегда выводятся из коллекций, отдельные счетчики не ведутся
func (s *Service) Report(ctx context.Context) (*models.ReportResponse, error) {
	clients, err := s.clientRepo.Count(ctx)
	if err != nil {
		s.logger.Error("Report: client repository error: %v", err)
		return nil, fmt.Errorf("%w: Report - client repository error: %v", ErrInternal, err)
	}

	all, err := s.bookingRepo.List(ctx)
	if err != nil {
		s.logger.Error("Report: booking repository error: %v", err)
		return nil, fmt.Errorf("%w: Report - booking repository error: %v", ErrInternal, err)
	}

	var revenue float64
	for _, b := range all {
		revenue += b.Cost
	}

	s.logger.Info("Report: clients=%d, bookings=%d, revenue=%.2f", clients, len(all), revenue)
	return &models.ReportResponse{
		TotalClients:  clients,
		TotalBookings: len(all),
		TotalRevenue:  revenue,
	}, nil
}
