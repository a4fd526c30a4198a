package add_client

import (
	"github.com/m0rkovka/LS-BookingService/internal/domain"
	"github.com/m0rkovka/LS-BookingService/internal/service/clients"
)

// AddClientRequest HTTP request model
type AddClientRequest struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Phone     string `json:"phone" validate:"required"`
	Discount  int    `json:"discount" validate:"gte=0,lte=30"`
}

// ClientResponse HTTP response model
type ClientResponse struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
	Discount  int    `json:"discount"`

	// PhoneValid результат проверки формата телефона (11 цифр)
	// Запись может существовать с некорректным телефоном, флаг делает это видимым
	PhoneValid bool `json:"phoneValid"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *AddClientRequest) ToServiceRequest() *clients.AddClientRequest {
	return &clients.AddClientRequest{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Phone:     r.Phone,
		Discount:  r.Discount,
	}
}

// FromDomainClient конвертирует domain модель в HTTP response
func FromDomainClient(c *domain.Client) *ClientResponse {
	return &ClientResponse{
		ID:         c.ID,
		FirstName:  c.FirstName,
		LastName:   c.LastName,
		Phone:      c.Phone,
		Discount:   c.Discount,
		PhoneValid: c.HasValidPhone(),
	}
}
