package create_booking

import (
	"time"

	"github.com/m0rkovka/LS-BookingService/internal/domain"
	createBooking "github.com/m0rkovka/LS-BookingService/internal/usecase/create_booking"
	"github.com/m0rkovka/LS-BookingService/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	ClientID   int64    `json:"clientId" validate:"required,gt=0"`
	HallNumber int      `json:"hallNumber" validate:"required,gt=0"`
	Equipment  []string `json:"equipment,omitempty"`
	Date       string   `json:"date" validate:"required"`      // "2025-02-10"
	StartTime  string   `json:"startTime" validate:"required"` // "15:00"
	Duration   int      `json:"durationHours" validate:"required,gt=0"`
}

// EquipmentResponse позиция оборудования в ответе
type EquipmentResponse struct {
	Name       string  `json:"name"`
	HourlyRate float64 `json:"hourlyRate"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID         int64               `json:"id"`
	ClientID   int64               `json:"clientId"`
	HallNumber int                 `json:"hallNumber"`
	Equipment  []EquipmentResponse `json:"equipment"`
	Date       string              `json:"date"`
	StartTime  string              `json:"startTime"`
	Duration   int                 `json:"durationHours"`
	Cost       float64             `json:"cost"`
	CreatedAt  string              `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		ClientID:   r.ClientID,
		HallNumber: r.HallNumber,
		Equipment:  r.Equipment,
		Date:       date,
		StartTime:  startTime,
		Duration:   r.Duration,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	equipment := make([]EquipmentResponse, len(resp.Equipment))
	for i, item := range resp.Equipment {
		equipment[i] = EquipmentResponse{
			Name:       item.Name,
			HourlyRate: item.HourlyRate,
		}
	}

	return &BookingResponse{
		ID:         resp.ID,
		ClientID:   resp.ClientID,
		HallNumber: resp.HallNumber,
		Equipment:  equipment,
		Date:       resp.Date.Format(domain.DateFormat),
		StartTime:  resp.StartTime.String(),
		Duration:   resp.Duration,
		Cost:       resp.Cost,
		CreatedAt:  resp.CreatedAt.Format(time.RFC3339),
	}
}
