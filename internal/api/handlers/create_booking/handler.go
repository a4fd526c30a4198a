package create_booking

import (
	"errors"
	"net/http"

	"github.com/m0rkovka/LS-BookingService/internal/api/handlers"
	createBooking "github.com/m0rkovka/LS-BookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidDateOrTime   = "некорректный формат даты или времени, ожидается YYYY-MM-DD и HH:MM"
	msgHallNotAvailable    = "зал занят в выбранное время"
	msgClientNotFound      = "клиент не найден"
	msgInvalidClientPhone  = "у клиента некорректный телефон"
	msgHallNotFound        = "зал не найден"
	msgEquipmentNotFound   = "оборудование не найдено в каталоге"
	msgOutsideWorkingHours = "бронирование выходит за часы работы студии"
	msgInvalidInput        = "некорректные данные бронирования"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse date/time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrHallNotAvailable):
			h.logger.Warn("POST /bookings - Hall not available: client_id=%d, hall=%d", req.ClientID, req.HallNumber)
			handlers.RespondConflict(w, msgHallNotAvailable)

		case errors.Is(err, createBooking.ErrClientNotFound):
			h.logger.Warn("POST /bookings - Client not found: client_id=%d", req.ClientID)
			handlers.RespondNotFound(w, msgClientNotFound)

		case errors.Is(err, createBooking.ErrInvalidClientPhone):
			h.logger.Warn("POST /bookings - Invalid client phone: client_id=%d", req.ClientID)
			handlers.RespondBadRequest(w, msgInvalidClientPhone)

		case errors.Is(err, createBooking.ErrHallNotFound):
			h.logger.Warn("POST /bookings - Hall not found: hall=%d", req.HallNumber)
			handlers.RespondNotFound(w, msgHallNotFound)

		case errors.Is(err, createBooking.ErrEquipmentNotFound):
			h.logger.Warn("POST /bookings - Equipment not found: client_id=%d", req.ClientID)
			handlers.RespondNotFound(w, msgEquipmentNotFound)

		case errors.Is(err, createBooking.ErrOutsideWorkingHours):
			h.logger.Warn("POST /bookings - Outside working hours: client_id=%d, hall=%d", req.ClientID, req.HallNumber)
			handlers.RespondBadRequest(w, msgOutsideWorkingHours)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: client_id=%d, hall=%d, error=%v",
				req.ClientID, req.HallNumber, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created: booking_id=%d, client_id=%d, hall=%d, cost=%.2f",
		result.ID, req.ClientID, req.HallNumber, result.Cost)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
