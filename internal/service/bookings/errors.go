package bookings

import "errors"

var (
	// ErrClientNotFound возвращается, когда клиент не зарегистрирован в реестре
	ErrClientNotFound = errors.New("bookings: client not found")

	// ErrNoBookingsForClient возвращается, когда отмена не нашла ни одного
	// бронирования клиента. Состояние журнала при этом не меняется
	ErrNoBookingsForClient = errors.New("bookings: client has no bookings")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("bookings: internal error")
)
