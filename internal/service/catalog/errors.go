package catalog

import "errors"

var (
	// ErrNoHalls возвращается при запросе к пустому каталогу залов
	ErrNoHalls = errors.New("catalog: no halls registered")

	// ErrDuplicateHall возвращается при регистрации зала с занятым номером
	ErrDuplicateHall = errors.New("catalog: hall already registered")

	// ErrDuplicateEquipment возвращается при регистрации оборудования с занятым именем
	ErrDuplicateEquipment = errors.New("catalog: equipment already registered")

	// ErrInvalidInput возвращается при некорректных данных зала или оборудования
	ErrInvalidInput = errors.New("catalog: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("catalog: internal error")
)
