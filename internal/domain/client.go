package domain

import "time"

// Client клиент фотостудии
// Телефон и скидка могут меняться после создания, имя и фамилия - нет
type Client struct {
	ID        int64
	FirstName string
	LastName  string

	// Phone хранится как введён; формат (11 цифр) проверяется по требованию,
	// а не при создании: запись клиента может существовать с телефоном,
	// который позже будет признан некорректным
	Phone string

	// Discount персональная скидка в процентах, всегда в диапазоне [0, 30]
	Discount int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// FullName возвращает "Имя Фамилия" для отображения и логов
func (c *Client) FullName() string {
	return c.FirstName + " " + c.LastName
}

// HasValidPhone проверяет формат телефона: только цифры и ровно 11 знаков
func (c *Client) HasValidPhone() bool {
	return IsValidPhone(c.Phone)
}

// IsValidPhone чистый предикат формата телефона: только цифры, длина 11
func IsValidPhone(phone string) bool {
	if len(phone) != PhoneDigits {
		return false
	}
	for _, r := range phone {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// IsValidDiscount проверяет, что скидка в допустимом диапазоне
func IsValidDiscount(discount int) bool {
	return discount >= MinDiscountPercent && discount <= MaxDiscountPercent
}
