package client

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/m0rkovka/LS-BookingService/internal/domain"
)

// Repository реестр клиентов в памяти
// Выдает ID, хранит записи в порядке добавления и отдает наружу только копии,
// чтобы мутация шла исключительно через методы репозитория
type Repository struct {
	mu      sync.RWMutex
	clients []*domain.Client
	byID    map[int64]*domain.Client
	nextID  int64
}

// NewRepository создает пустой реестр клиентов
func NewRepository() *Repository {
	return &Repository{
		byID:   make(map[int64]*domain.Client),
		nextID: 1,
	}
}

// Create добавляет клиента, выдает ему ID и проставляет временные метки
func (r *Repository) Create(_ context.Context, c *domain.Client) (*domain.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()

	stored := *c
	stored.ID = r.nextID
	stored.CreatedAt = now
	stored.UpdatedAt = now

	r.nextID++
	r.clients = append(r.clients, &stored)
	r.byID[stored.ID] = &stored

	result := stored
	return &result, nil
}

// GetByID возвращает копию клиента по ID
func (r *Repository) GetByID(_ context.Context, id int64) (*domain.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: GetByID - id %d", ErrClientNotFound, id)
	}

	result := *stored
	return &result, nil
}

// List возвращает снимок всех клиентов в порядке добавления
func (r *Repository) List(_ context.Context) ([]*domain.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	clients := make([]*domain.Client, 0, len(r.clients))
	for _, stored := range r.clients {
		c := *stored
		clients = append(clients, &c)
	}

	return clients, nil
}

// UpdatePhone заменяет телефон клиента
// Валидация формата выполняется на уровне сервиса, репозиторий пишет как есть
func (r *Repository) UpdatePhone(_ context.Context, id int64, phone string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.byID[id]
	if !ok {
		return fmt.Errorf("%w: UpdatePhone - id %d", ErrClientNotFound, id)
	}

	stored.Phone = phone
	stored.UpdatedAt = time.Now()

	return nil
}

// UpdateDiscount заменяет скидку клиента
func (r *Repository) UpdateDiscount(_ context.Context, id int64, discount int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.byID[id]
	if !ok {
		return fmt.Errorf("%w: UpdateDiscount - id %d", ErrClientNotFound, id)
	}

	stored.Discount = discount
	stored.UpdatedAt = time.Now()

	return nil
}

// Count возвращает количество зарегистрированных клиентов
func (r *Repository) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.clients), nil
}
