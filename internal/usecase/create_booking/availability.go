package create_booking

import (
	"github.com/m0rkovka/LS-BookingService/internal/domain"
	"github.com/m0rkovka/LS-BookingService/pkg/types"
)

// isSlotAvailable проверяет, свободен ли зал в интервале [start, start+duration)
// относительно уже существующих бронирований этого зала на эту дату
//
// Политика конфликтов - пересечение интервалов, а не точное совпадение
// времени начала: бронирование 10:00 на 2 часа и бронирование 11:00 на час
// конфликтуют, потому что [10:00, 12:00) и [11:00, 12:00) пересекаются.
// Граничные случаи не считаются конфликтом: 10:00-12:00 и 12:00-13:00 соседят
func isSlotAvailable(start types.TimeString, durationHours int, existing []*domain.Booking) (bool, error) {
	for _, b := range existing {
		overlaps, err := domain.IntervalsOverlap(start, durationHours, b.StartTime, b.DurationHours)
		if err != nil {
			return false, err
		}
		if overlaps {
			return false, nil
		}
	}

	return true, nil
}
