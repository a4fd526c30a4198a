package models

import (
	"sort"
	"time"

	"github.com/m0rkovka/LS-BookingService/internal/domain"
)

// BookingResponse данные одного бронирования
type BookingResponse struct {
	ID            int64               `json:"id"`
	ClientID      int64               `json:"clientId"`
	HallNumber    int                 `json:"hallNumber"`
	Equipment     []EquipmentResponse `json:"equipment"`
	Date          string              `json:"date"`      // "2025-02-10"
	StartTime     string              `json:"startTime"` // "15:00"
	DurationHours int                 `json:"durationHours"`
	Cost          float64             `json:"cost"`
	CreatedAt     time.Time           `json:"createdAt"`
}

// EquipmentResponse позиция оборудования внутри бронирования
type EquipmentResponse struct {
	Name       string  `json:"name"`
	HourlyRate float64 `json:"hourlyRate"`
}

// DateGroup бронирования одной даты; внутри группы сохранен порядок вставки
type DateGroup struct {
	Date     string            `json:"date"`
	Bookings []BookingResponse `json:"bookings"`
}

// BookingListResponse список бронирований, сгруппированный по датам
type BookingListResponse struct {
	Groups []DateGroup `json:"groups"`
	Total  int         `json:"total"`
}

// CancelResponse результат отмены бронирований клиента
type CancelResponse struct {
	ClientID int64 `json:"clientId"`
	Removed  int   `json:"removed"`
}

// ReportResponse сводка для экрана отчетов
// Все значения выводятся из коллекций на момент запроса
type ReportResponse struct {
	TotalClients  int     `json:"totalClients"`
	TotalBookings int     `json:"totalBookings"`
	TotalRevenue  float64 `json:"totalRevenue"`
}

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) BookingResponse {
	equipment := make([]EquipmentResponse, len(b.Equipment))
	for i, item := range b.Equipment {
		equipment[i] = EquipmentResponse{
			Name:       item.Name,
			HourlyRate: item.HourlyRate,
		}
	}

	return BookingResponse{
		ID:            b.ID,
		ClientID:      b.ClientID,
		HallNumber:    b.HallNumber,
		Equipment:     equipment,
		Date:          b.Date.Format(domain.DateFormat),
		StartTime:     b.StartTime.String(),
		DurationHours: b.DurationHours,
		Cost:          b.Cost,
		CreatedAt:     b.CreatedAt,
	}
}

// GroupByDate группирует бронирования по дате
// Группы упорядочены по возрастанию даты, внутри группы сохранен порядок вставки
func GroupByDate(bookings []*domain.Booking) *BookingListResponse {
	groups := make([]DateGroup, 0)
	index := make(map[string]int)

	for _, b := range bookings {
		date := b.Date.Format(domain.DateFormat)

		i, ok := index[date]
		if !ok {
			i = len(groups)
			index[date] = i
			groups = append(groups, DateGroup{Date: date, Bookings: make([]BookingResponse, 0, 1)})
		}

		groups[i].Bookings = append(groups[i].Bookings, FromDomainBooking(b))
	}

	// Формат YYYY-MM-DD сортируется лексикографически
	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Date < groups[j].Date
	})

	return &BookingListResponse{
		Groups: groups,
		Total:  len(bookings),
	}
}
