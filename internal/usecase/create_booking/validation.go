package create_booking

import (
	"fmt"
	"sort"

	"github.com/m0rkovka/LS-BookingService/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request, bounds Bounds) error {
	if req.ClientID <= 0 {
		return fmt.Errorf("%w: clientID must be positive", ErrInvalidInput)
	}

	if req.HallNumber <= 0 {
		return fmt.Errorf("%w: hallNumber must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if req.Duration < bounds.MinDurationHours || req.Duration > bounds.MaxDurationHours {
		return fmt.Errorf("%w: duration must be between %d and %d hours",
			ErrInvalidInput, bounds.MinDurationHours, bounds.MaxDurationHours)
	}

	return nil
}

// validateWorkingHours проверяет, что интервал [start, start+duration)
// целиком помещается в часы работы студии
func validateWorkingHours(start types.TimeString, durationHours int, bounds Bounds) error {
	end, err := start.AddMinutes(durationHours * 60)
	if err != nil {
		return fmt.Errorf("%w: booking does not fit into a day", ErrOutsideWorkingHours)
	}

	if start.IsBefore(bounds.OpenTime) {
		return fmt.Errorf("%w: studio opens at %s", ErrOutsideWorkingHours, bounds.OpenTime)
	}

	if end.IsAfter(bounds.CloseTime) {
		return fmt.Errorf("%w: studio closes at %s", ErrOutsideWorkingHours, bounds.CloseTime)
	}

	return nil
}

// normalizeEquipment убирает дубликаты имен и сортирует их
// Набор оборудования нечувствителен к порядку, поэтому нормализованный
// вид делает бронирования сравнимыми и детерминированными
func normalizeEquipment(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	result := make([]string, 0, len(names))

	for _, name := range names {
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		result = append(result, name)
	}

	sort.Strings(result)
	return result
}
