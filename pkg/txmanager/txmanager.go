package txmanager

import (
	"context"
	"sync"
)

// Manager сериализует критические секции "проверить доступность, затем вставить"
// Хранилище у нас в памяти, поэтому вместо транзакций БД достаточно одного
// мьютекса: пока один admit выполняет проверку и вставку, второй ждёт
type Manager struct {
	mu sync.Mutex
}

// NewManager создает новый сериализатор операций
func NewManager() *Manager {
	return &Manager{}
}

// DoSerializable выполняет fn эксклюзивно относительно других DoSerializable
// Если контекст уже отменен, fn не вызывается
func (m *Manager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	return fn(ctx)
}
