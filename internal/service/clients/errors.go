package clients

import "errors"

var (
	// ErrClientNotFound возвращается, когда клиент не найден
	ErrClientNotFound = errors.New("clients: client not found")

	// ErrValidation возвращается при некорректных входных данных:
	// пустые обязательные поля, телефон не из 11 цифр, скидка вне [0, 30]
	ErrValidation = errors.New("clients: validation failed")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("clients: internal error")
)
