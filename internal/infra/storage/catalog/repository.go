package catalog

import (
	"context"
	"fmt"
	"sync"

	"github.com/m0rkovka/LS-BookingService/internal/domain"
)

// Repository реестр залов и оборудования в памяти
// Заполняется на старте из конфигурации и после этого только читается;
// порядок регистрации сохраняется - он важен для детерминированных выборок
type Repository struct {
	mu sync.RWMutex

	halls       []domain.Hall
	hallNumbers map[int]struct{}

	equipment      []domain.EquipmentItem
	equipmentNames map[string]struct{}
}

// NewRepository создает пустой каталог
func NewRepository() *Repository {
	return &Repository{
		hallNumbers:    make(map[int]struct{}),
		equipmentNames: make(map[string]struct{}),
	}
}

// AddHall регистрирует зал
// Повторный номер зала отклоняется, каталог остается без изменений
func (r *Repository) AddHall(_ context.Context, hall domain.Hall) error {
	if hall.HourlyRate < 0 {
		return fmt.Errorf("%w: AddHall - hall %d rate %f", ErrInvalidRate, hall.Number, hall.HourlyRate)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.hallNumbers[hall.Number]; ok {
		return fmt.Errorf("%w: AddHall - number %d", ErrDuplicateHall, hall.Number)
	}

	r.hallNumbers[hall.Number] = struct{}{}
	r.halls = append(r.halls, hall)

	return nil
}

// AddEquipment регистрирует позицию оборудования
// Повторное имя отклоняется, каталог остается без изменений
func (r *Repository) AddEquipment(_ context.Context, item domain.EquipmentItem) error {
	if item.HourlyRate < 0 {
		return fmt.Errorf("%w: AddEquipment - %q rate %f", ErrInvalidRate, item.Name, item.HourlyRate)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.equipmentNames[item.Name]; ok {
		return fmt.Errorf("%w: AddEquipment - name %q", ErrDuplicateEquipment, item.Name)
	}

	r.equipmentNames[item.Name] = struct{}{}
	r.equipment = append(r.equipment, item)

	return nil
}

// ListHalls возвращает снимок залов в порядке регистрации
func (r *Repository) ListHalls(_ context.Context) ([]domain.Hall, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	halls := make([]domain.Hall, len(r.halls))
	copy(halls, r.halls)

	return halls, nil
}

// ListEquipment возвращает снимок оборудования в порядке регистрации
func (r *Repository) ListEquipment(_ context.Context) ([]domain.EquipmentItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	equipment := make([]domain.EquipmentItem, len(r.equipment))
	copy(equipment, r.equipment)

	return equipment, nil
}

// GetHall возвращает зал по номеру
func (r *Repository) GetHall(_ context.Context, number int) (domain.Hall, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, hall := range r.halls {
		if hall.Number == number {
			return hall, nil
		}
	}

	return domain.Hall{}, fmt.Errorf("%w: GetHall - number %d", ErrHallNotFound, number)
}

// GetEquipment возвращает позицию оборудования по имени
func (r *Repository) GetEquipment(_ context.Context, name string) (domain.EquipmentItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.equipment {
		if item.Name == name {
			return item, nil
		}
	}

	return domain.EquipmentItem{}, fmt.Errorf("%w: GetEquipment - name %q", ErrEquipmentNotFound, name)
}
