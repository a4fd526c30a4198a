package clients

import (
	"context"
	"errors"
	"fmt"

	"github.com/m0rkovka/LS-BookingService/internal/domain"
	clientRepo "github.com/m0rkovka/LS-BookingService/internal/infra/storage/client"
)

// Service реестр клиентов студии
type Service struct {
	repo   ClientRepository
	logger Logger
}

// NewService создает новый экземпляр сервиса клиентов
func NewService(repo ClientRepository, logger Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// AddClient регистрирует клиента
// Пустые имя, фамилия или телефон и скидка вне [0, 30] отклоняются.
// Формат телефона (11 цифр) при регистрации НЕ проверяется: он валидируется
// по требованию, перед бронированием, и проблема сообщается явно, а не глотается
func (s *Service) AddClient(ctx context.Context, req *AddClientRequest) (*domain.Client, error) {
	if req.FirstName == "" {
		s.logger.Warn("AddClient: empty first name")
		return nil, fmt.Errorf("%w: first name must not be empty", ErrValidation)
	}
	if req.LastName == "" {
		s.logger.Warn("AddClient: empty last name")
		return nil, fmt.Errorf("%w: last name must not be empty", ErrValidation)
	}
	if req.Phone == "" {
		s.logger.Warn("AddClient: empty phone")
		return nil, fmt.Errorf("%w: phone must not be empty", ErrValidation)
	}
	if !domain.IsValidDiscount(req.Discount) {
		s.logger.Warn("AddClient: discount %d out of range", req.Discount)
		return nil, fmt.Errorf("%w: discount must be between %d and %d",
			ErrValidation, domain.MinDiscountPercent, domain.MaxDiscountPercent)
	}

	created, err := s.repo.Create(ctx, &domain.Client{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Discount:  req.Discount,
	})
	if err != nil {
		s.logger.Error("AddClient: repository error: %v", err)
		return nil, fmt.Errorf("%w: AddClient - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("AddClient: client id=%d registered (%s, discount=%d%%)",
		created.ID, created.FullName(), created.Discount)
	return created, nil
}

// GetByID возвращает клиента по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Client, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, clientRepo.ErrClientNotFound) {
			s.logger.Warn("GetByID: client id=%d not found", id)
			return nil, ErrClientNotFound
		}
		s.logger.Error("GetByID: repository error for client id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}
	return c, nil
}

// List возвращает всех клиентов в порядке регистрации
func (s *Service) List(ctx context.Context) ([]*domain.Client, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}
	return list, nil
}

// UpdatePhone заменяет телефон клиента
// Новый телефон обязан состоять ровно из 11 цифр; иначе запись не меняется
// вообще - частичное применение исключено
func (s *Service) UpdatePhone(ctx context.Context, id int64, newPhone string) error {
	if !domain.IsValidPhone(newPhone) {
		s.logger.Warn("UpdatePhone: invalid phone for client id=%d", id)
		return fmt.Errorf("%w: phone must be exactly %d digits", ErrValidation, domain.PhoneDigits)
	}

	if err := s.repo.UpdatePhone(ctx, id, newPhone); err != nil {
		if errors.Is(err, clientRepo.ErrClientNotFound) {
			s.logger.Warn("UpdatePhone: client id=%d not found", id)
			return ErrClientNotFound
		}
		s.logger.Error("UpdatePhone: repository error for client id=%d: %v", id, err)
		return fmt.Errorf("%w: UpdatePhone - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdatePhone: client id=%d phone updated", id)
	return nil
}

// ApplyDiscount устанавливает скидку клиента
// Успех только при значении в [0, 30]; реестр никогда не хранит скидку вне диапазона
func (s *Service) ApplyDiscount(ctx context.Context, id int64, discount int) error {
	if !domain.IsValidDiscount(discount) {
		s.logger.Warn("ApplyDiscount: discount %d out of range for client id=%d", discount, id)
		return fmt.Errorf("%w: discount must be between %d and %d",
			ErrValidation, domain.MinDiscountPercent, domain.MaxDiscountPercent)
	}

	if err := s.repo.UpdateDiscount(ctx, id, discount); err != nil {
		if errors.Is(err, clientRepo.ErrClientNotFound) {
			s.logger.Warn("ApplyDiscount: client id=%d not found", id)
			return ErrClientNotFound
		}
		s.logger.Error("ApplyDiscount: repository error for client id=%d: %v", id, err)
		return fmt.Errorf("%w: ApplyDiscount - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ApplyDiscount: client id=%d discount set to %d%%", id, discount)
	return nil
}

// ValidatePhone проверяет формат телефона клиента: только цифры, длина 11
func (s *Service) ValidatePhone(ctx context.Context, id int64) (bool, error) {
	c, err := s.GetByID(ctx, id)
	if err != nil {
		return false, err
	}
	return c.HasValidPhone(), nil
}
