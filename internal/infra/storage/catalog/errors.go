package catalog

import "errors"

var (
	// ErrHallNotFound возвращается, когда зал с таким номером не зарегистрирован
	ErrHallNotFound = errors.New("catalog.repository: hall not found")

	// ErrEquipmentNotFound возвращается, когда позиция оборудования не зарегистрирована
	ErrEquipmentNotFound = errors.New("catalog.repository: equipment not found")

	// ErrDuplicateHall возвращается при попытке зарегистрировать зал с занятым номером
	ErrDuplicateHall = errors.New("catalog.repository: hall with this number already registered")

	// ErrDuplicateEquipment возвращается при попытке зарегистрировать оборудование с занятым именем
	ErrDuplicateEquipment = errors.New("catalog.repository: equipment with this name already registered")

	// ErrInvalidRate возвращается при отрицательной часовой ставке
	ErrInvalidRate = errors.New("catalog.repository: hourly rate must be non-negative")
)
