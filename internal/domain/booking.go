package domain

import (
	"time"

	"github.com/m0rkovka/LS-BookingService/pkg/types"
)

// Booking бронирование зала фотостудии
// Создается целиком операцией admission и после этого не изменяется:
// отмена удаляет бронирование, а не редактирует его
type Booking struct {
	ID       int64
	ClientID int64

	// HallNumber ссылка на зал каталога по его номеру
	HallNumber int

	// Equipment денормализованный список оборудования на момент создания:
	// имена и ставки скопированы из каталога, отсортированы по имени,
	// дубликаты схлопнуты. История не меняется при пересборке каталога
	Equipment []BookingEquipment

	// Date календарная дата без компонента времени
	Date time.Time

	// StartTime время начала, минутная точность, настенные часы
	StartTime types.TimeString

	// DurationHours длительность в целых часах
	DurationHours int

	// Cost итоговая стоимость с учетом скидки клиента на момент создания
	Cost float64

	CreatedAt time.Time
}

// BookingEquipment позиция оборудования внутри бронирования
type BookingEquipment struct {
	Name       string
	HourlyRate float64
}

// EndTime возвращает время конца интервала [start, start+duration)
func (b *Booking) EndTime() (types.TimeString, error) {
	return b.StartTime.AddMinutes(b.DurationHours * 60)
}

// SameDate проверяет, что бронирование относится к указанной дате
func (b *Booking) SameDate(date time.Time) bool {
	y1, m1, d1 := b.Date.Date()
	y2, m2, d2 := date.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// IntervalsOverlap проверяет пересечение двух интервалов [start, start+duration)
// Строгие неравенства: бронирования, граничащие по времени, не конфликтуют
// (конец 11:00-12:00 и начало 12:00-13:00 - это соседние, а не пересекающиеся)
func IntervalsOverlap(aStart types.TimeString, aDurationHours int, bStart types.TimeString, bDurationHours int) (bool, error) {
	aEnd, err := aStart.AddMinutes(aDurationHours * 60)
	if err != nil {
		return false, err
	}

	bEnd, err := bStart.AddMinutes(bDurationHours * 60)
	if err != nil {
		return false, err
	}

	return aStart.IsBefore(bEnd) && bStart.IsBefore(aEnd), nil
}
