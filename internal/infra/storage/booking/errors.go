package booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда по условию не нашлось ни одного бронирования
	ErrBookingNotFound = errors.New("booking.repository: booking not found")
)
