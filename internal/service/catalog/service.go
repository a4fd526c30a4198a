package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/m0rkovka/LS-BookingService/internal/domain"
	catalogRepo "github.com/m0rkovka/LS-BookingService/internal/infra/storage/catalog"
)

// Service сервис каталога залов и оборудования
// Каталог заполняется при старте и дальше только читается
type Service struct {
	repo   CatalogRepository
	logger Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(repo CatalogRepository, logger Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// RegisterHall регистрирует зал в каталоге
func (s *Service) RegisterHall(ctx context.Context, hall domain.Hall) error {
	if hall.Number <= 0 {
		s.logger.Warn("RegisterHall: invalid hall number %d", hall.Number)
		return fmt.Errorf("%w: hall number must be positive", ErrInvalidInput)
	}
	if hall.HourlyRate < 0 {
		s.logger.Warn("RegisterHall: negative rate for hall %d", hall.Number)
		return fmt.Errorf("%w: hourly rate must be non-negative", ErrInvalidInput)
	}
	if hall.Capacity <= 0 {
		s.logger.Warn("RegisterHall: invalid capacity for hall %d", hall.Number)
		return fmt.Errorf("%w: capacity must be positive", ErrInvalidInput)
	}

	if err := s.repo.AddHall(ctx, hall); err != nil {
		if errors.Is(err, catalogRepo.ErrDuplicateHall) {
			s.logger.Warn("RegisterHall: hall %d already registered", hall.Number)
			return ErrDuplicateHall
		}
		s.logger.Error("RegisterHall: repository error for hall %d: %v", hall.Number, err)
		return fmt.Errorf("%w: RegisterHall - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("RegisterHall: hall %d registered, rate=%.2f, capacity=%d",
		hall.Number, hall.HourlyRate, hall.Capacity)
	return nil
}

// RegisterEquipment регистрирует позицию оборудования в каталоге
func (s *Service) RegisterEquipment(ctx context.Context, item domain.EquipmentItem) error {
	if item.Name == "" {
		s.logger.Warn("RegisterEquipment: empty equipment name")
		return fmt.Errorf("%w: equipment name must not be empty", ErrInvalidInput)
	}
	if item.HourlyRate < 0 {
		s.logger.Warn("RegisterEquipment: negative rate for %q", item.Name)
		return fmt.Errorf("%w: hourly rate must be non-negative", ErrInvalidInput)
	}

	if err := s.repo.AddEquipment(ctx, item); err != nil {
		if errors.Is(err, catalogRepo.ErrDuplicateEquipment) {
			s.logger.Warn("RegisterEquipment: equipment %q already registered", item.Name)
			return ErrDuplicateEquipment
		}
		s.logger.Error("RegisterEquipment: repository error for %q: %v", item.Name, err)
		return fmt.Errorf("%w: RegisterEquipment - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("RegisterEquipment: equipment %q registered, rate=%.2f", item.Name, item.HourlyRate)
	return nil
}

// ListHalls возвращает снимок залов каталога
func (s *Service) ListHalls(ctx context.Context) ([]domain.Hall, error) {
	halls, err := s.repo.ListHalls(ctx)
	if err != nil {
		s.logger.Error("ListHalls: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListHalls - repository error: %v", ErrInternal, err)
	}
	return halls, nil
}

// ListEquipment возвращает снимок оборудования каталога
func (s *Service) ListEquipment(ctx context.Context) ([]domain.EquipmentItem, error) {
	equipment, err := s.repo.ListEquipment(ctx)
	if err != nil {
		s.logger.Error("ListEquipment: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListEquipment - repository error: %v", ErrInternal, err)
	}
	return equipment, nil
}

// MostExpensiveHall возвращает зал с максимальной часовой ставкой
// Линейный проход по каталогу; при равных ставках побеждает первый
// встреченный в порядке регистрации - выбор детерминирован
func (s *Service) MostExpensiveHall(ctx context.Context) (domain.Hall, error) {
	halls, err := s.repo.ListHalls(ctx)
	if err != nil {
		s.logger.Error("MostExpensiveHall: repository error: %v", err)
		return domain.Hall{}, fmt.Errorf("%w: MostExpensiveHall - repository error: %v", ErrInternal, err)
	}

	if len(halls) == 0 {
		s.logger.Warn("MostExpensiveHall: catalog is empty")
		return domain.Hall{}, ErrNoHalls
	}

	best := halls[0]
	for _, hall := range halls[1:] {
		if hall.HourlyRate > best.HourlyRate {
			best = hall
		}
	}

	s.logger.Info("MostExpensiveHall: hall %d, rate=%.2f", best.Number, best.HourlyRate)
	return best, nil
}
