package create_booking

import (
	"time"

	"github.com/m0rkovka/LS-BookingService/internal/domain"
	"github.com/m0rkovka/LS-BookingService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	ClientID   int64            // ID клиента из реестра
	HallNumber int              // Номер зала из каталога
	Equipment  []string         // Имена позиций оборудования; порядок не важен, дубликаты схлопываются
	Date       time.Time        // Дата бронирования (без времени)
	StartTime  types.TimeString // Время начала (например, "15:00")
	Duration   int              // Длительность в целых часах
}

// Response модель ответа с созданным бронированием и его стоимостью
type Response struct {
	ID         int64
	ClientID   int64
	HallNumber int
	Equipment  []domain.BookingEquipment
	Date       time.Time
	StartTime  types.TimeString
	Duration   int
	Cost       float64
	CreatedAt  time.Time
}

// Bounds пределы, в которых живет admission: границы длительности
// бронирования и часы работы студии. Берутся из конфигурации
type Bounds struct {
	MinDurationHours int
	MaxDurationHours int
	OpenTime         types.TimeString
	CloseTime        types.TimeString
}
