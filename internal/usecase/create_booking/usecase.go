package create_booking

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/m0rkovka/LS-BookingService/internal/domain"
	catalogRepo "github.com/m0rkovka/LS-BookingService/internal/infra/storage/catalog"
	clientRepo "github.com/m0rkovka/LS-BookingService/internal/infra/storage/client"
)

// Причины отклонения admission для метрик
const (
	reasonValidation   = "validation"
	reasonInvalidPhone = "invalid_phone"
	reasonNotFound     = "not_found"
	reasonConflict     = "conflict"
)

// UseCase use case создания бронирования (admission)
// Проверка доступности и вставка выполняются как один атомарный шаг
// под сериализатором, поэтому два конфликтующих запроса не могут
// пройти проверку одновременно
type UseCase struct {
	bookingRepo BookingRepository
	catalogRepo CatalogRepository
	clientRepo  ClientRepository
	txManager   TransactionManager
	metrics     Metrics
	bounds      Bounds
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	catalogRepo CatalogRepository,
	clientRepo ClientRepository,
	txManager TransactionManager,
	metrics Metrics,
	bounds Bounds,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		catalogRepo: catalogRepo,
		clientRepo:  clientRepo,
		txManager:   txManager,
		metrics:     metrics,
		bounds:      bounds,
		logger:      logger,
	}
}

// Execute выполняет admission: валидация, проверка телефона клиента,
// проверка доступности зала и вставка с расчетом стоимости
// При любом отказе журнал бронирований остается без изменений
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	hallLabel := strconv.Itoa(req.HallNumber)

	uc.logger.Info("CreateBooking: client=%d, hall=%d, date=%s, time=%s, duration=%dh, equipment=%d items",
		req.ClientID, req.HallNumber, req.Date.Format(domain.DateFormat), req.StartTime, req.Duration, len(req.Equipment))

	// 1. Валидация входных данных
	if err := validateRequest(req, uc.bounds); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		uc.metrics.AdmissionRejected(hallLabel, reasonValidation)
		return nil, err
	}

	// 2. Интервал должен помещаться в часы работы студии
	if err := validateWorkingHours(req.StartTime, req.Duration, uc.bounds); err != nil {
		uc.logger.Warn("CreateBooking: working hours check failed: %v", err)
		uc.metrics.AdmissionRejected(hallLabel, reasonValidation)
		return nil, err
	}

	// 3. Получаем клиента и проверяем формат его телефона
	client, err := uc.clientRepo.GetByID(ctx, req.ClientID)
	if err != nil {
		if errors.Is(err, clientRepo.ErrClientNotFound) {
			uc.logger.Warn("CreateBooking: client id=%d not found", req.ClientID)
			uc.metrics.AdmissionRejected(hallLabel, reasonNotFound)
			return nil, ErrClientNotFound
		}
		uc.logger.Error("CreateBooking: failed to get client id=%d: %v", req.ClientID, err)
		return nil, fmt.Errorf("%w: failed to get client: %v", ErrInternal, err)
	}

	if !client.HasValidPhone() {
		uc.logger.Warn("CreateBooking: client id=%d has invalid phone", req.ClientID)
		uc.metrics.AdmissionRejected(hallLabel, reasonInvalidPhone)
		return nil, fmt.Errorf("%w: phone must be exactly %d digits", ErrInvalidClientPhone, domain.PhoneDigits)
	}

	// 4. Получаем зал
	hall, err := uc.catalogRepo.GetHall(ctx, req.HallNumber)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrHallNotFound) {
			uc.logger.Warn("CreateBooking: hall %d not found", req.HallNumber)
			uc.metrics.AdmissionRejected(hallLabel, reasonNotFound)
			return nil, ErrHallNotFound
		}
		uc.logger.Error("CreateBooking: failed to get hall %d: %v", req.HallNumber, err)
		return nil, fmt.Errorf("%w: failed to get hall: %v", ErrInternal, err)
	}

	// 5. Разрешаем оборудование через каталог: каждая позиция обязана
	// существовать на момент создания бронирования
	equipment, err := uc.resolveEquipment(ctx, req.Equipment)
	if err != nil {
		uc.logger.Warn("CreateBooking: equipment resolution failed: %v", err)
		if errors.Is(err, ErrEquipmentNotFound) {
			uc.metrics.AdmissionRejected(hallLabel, reasonNotFound)
		}
		return nil, err
	}

	var result *domain.Booking

	// 6. Атомарный шаг admission: проверка доступности и вставка
	// выполняются под одним сериализатором
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		existing, err := uc.bookingRepo.ListByHallAndDate(txCtx, req.HallNumber, req.Date)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to list bookings: %v", err)
			return fmt.Errorf("%w: failed to list bookings: %v", ErrInternal, err)
		}

		available, err := isSlotAvailable(req.StartTime, req.Duration, existing)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to check availability: %v", err)
			return fmt.Errorf("%w: failed to check availability: %v", ErrInternal, err)
		}

		if !available {
			uc.logger.Warn("CreateBooking: hall %d occupied on %s at %s",
				req.HallNumber, req.Date.Format(domain.DateFormat), req.StartTime)
			return fmt.Errorf("%w: hall=%d date=%s time=%s",
				ErrHallNotAvailable, req.HallNumber, req.Date.Format(domain.DateFormat), req.StartTime)
		}

		// Стоимость фиксируется в бронировании со скидкой клиента на этот момент
		cost := domain.ComputeCost(hall, equipment, req.Duration, client.Discount)

		created, err := uc.bookingRepo.Create(txCtx, &domain.Booking{
			ClientID:      req.ClientID,
			HallNumber:    req.HallNumber,
			Equipment:     equipment,
			Date:          req.Date,
			StartTime:     req.StartTime,
			DurationHours: req.Duration,
			Cost:          cost,
		})
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		if errors.Is(err, ErrHallNotAvailable) {
			uc.metrics.AdmissionRejected(hallLabel, reasonConflict)
		}
		return nil, err
	}

	uc.metrics.AdmissionGranted(hallLabel)
	uc.logger.Info("CreateBooking: booking id=%d created, cost=%.2f", result.ID, result.Cost)

	return &Response{
		ID:         result.ID,
		ClientID:   result.ClientID,
		HallNumber: result.HallNumber,
		Equipment:  result.Equipment,
		Date:       result.Date,
		StartTime:  result.StartTime,
		Duration:   result.DurationHours,
		Cost:       result.Cost,
		CreatedAt:  result.CreatedAt,
	}, nil
}

// resolveEquipment превращает нормализованный список имен в денормализованные
// позиции бронирования со ставками из каталога
func (uc *UseCase) resolveEquipment(ctx context.Context, names []string) ([]domain.BookingEquipment, error) {
	normalized := normalizeEquipment(names)

	equipment := make([]domain.BookingEquipment, 0, len(normalized))
	for _, name := range normalized {
		item, err := uc.catalogRepo.GetEquipment(ctx, name)
		if err != nil {
			if errors.Is(err, catalogRepo.ErrEquipmentNotFound) {
				return nil, fmt.Errorf("%w: %q", ErrEquipmentNotFound, name)
			}
			return nil, fmt.Errorf("%w: failed to get equipment %q: %v", ErrInternal, name, err)
		}

		equipment = append(equipment, domain.BookingEquipment{
			Name:       item.Name,
			HourlyRate: item.HourlyRate,
		})
	}

	return equipment, nil
}
