package booking

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/m0rkovka/LS-BookingService/internal/domain"
)

// Repository журнал бронирований в памяти
// Единственная точка мутации коллекции; записи хранятся в порядке вставки
// и наружу отдаются только копиями
type Repository struct {
	mu       sync.RWMutex
	bookings []*domain.Booking
	nextID   int64
}

// NewRepository создает пустой журнал бронирований
func NewRepository() *Repository {
	return &Repository{nextID: 1}
}

// Create добавляет бронирование, выдает ему ID и время создания
func (r *Repository) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := copyBooking(b)
	stored.ID = r.nextID
	stored.CreatedAt = time.Now()

	r.nextID++
	r.bookings = append(r.bookings, stored)

	return copyBooking(stored), nil
}

// List возвращает снимок всех бронирований в порядке вставки
func (r *Repository) List(_ context.Context) ([]*domain.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.Booking, 0, len(r.bookings))
	for _, b := range r.bookings {
		result = append(result, copyBooking(b))
	}

	return result, nil
}

// ListByHallAndDate возвращает бронирования зала на дату в порядке вставки
// Используется проверкой доступности слота
func (r *Repository) ListByHallAndDate(_ context.Context, hallNumber int, date time.Time) ([]*domain.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.Booking, 0)
	for _, b := range r.bookings {
		if b.HallNumber == hallNumber && b.SameDate(date) {
			result = append(result, copyBooking(b))
		}
	}

	return result, nil
}

// DeleteByClientID удаляет все бронирования клиента и возвращает их количество
// Если удалять нечего, возвращает ErrBookingNotFound
func (r *Repository) DeleteByClientID(_ context.Context, clientID int64) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.bookings[:0]
	removed := 0

	for _, b := range r.bookings {
		if b.ClientID == clientID {
			removed++
			continue
		}
		kept = append(kept, b)
	}

	r.bookings = kept

	if removed == 0 {
		return 0, fmt.Errorf("%w: DeleteByClientID - client %d", ErrBookingNotFound, clientID)
	}

	return removed, nil
}

// Count возвращает текущее количество бронирований
// Счетчик всегда выводится из коллекции, отдельно он не хранится
func (r *Repository) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.bookings), nil
}

// copyBooking делает глубокую копию бронирования, включая список оборудования
func copyBooking(b *domain.Booking) *domain.Booking {
	c := *b
	if b.Equipment != nil {
		c.Equipment = make([]domain.BookingEquipment, len(b.Equipment))
		copy(c.Equipment, b.Equipment)
	}
	return &c
}
