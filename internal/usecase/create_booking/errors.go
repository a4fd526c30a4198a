package create_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных:
	// неположительные идентификаторы, нулевая дата, битое время,
	// длительность вне допустимого диапазона
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrClientNotFound возвращается, когда клиент не зарегистрирован
	ErrClientNotFound = errors.New("create_booking: client not found")

	// ErrInvalidClientPhone возвращается, когда у клиента некорректный телефон
	// Запрос отклоняется явно, а не продолжается с испорченными данными
	ErrInvalidClientPhone = errors.New("create_booking: client phone is not valid")

	// ErrHallNotFound возвращается, когда зал не зарегистрирован в каталоге
	ErrHallNotFound = errors.New("create_booking: hall not found")

	// ErrEquipmentNotFound возвращается, когда запрошенное оборудование
	// отсутствует в каталоге на момент создания бронирования
	ErrEquipmentNotFound = errors.New("create_booking: equipment not found")

	// ErrHallNotAvailable возвращается, когда зал занят в запрошенный интервал
	ErrHallNotAvailable = errors.New("create_booking: hall is not available")

	// ErrOutsideWorkingHours возвращается, когда интервал бронирования
	// не помещается целиком в часы работы студии
	ErrOutsideWorkingHours = errors.New("create_booking: booking is outside working hours")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
