package domain

// Бизнес-константы фотостудии
const (
	// PhoneDigits требуемая длина телефона клиента (только цифры)
	PhoneDigits = 11

	// MinDiscountPercent и MaxDiscountPercent границы персональной скидки
	MinDiscountPercent = 0
	MaxDiscountPercent = 30

	// DefaultMinDurationHours и DefaultMaxDurationHours границы длительности
	// бронирования в часах; закрытый положительный диапазон
	DefaultMinDurationHours = 1
	DefaultMaxDurationHours = 8
)

// Форматы даты и времени
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Часы работы студии по умолчанию
const (
	DefaultOpenTime  = "09:00"
	DefaultCloseTime = "22:00"
)
