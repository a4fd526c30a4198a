package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m0rkovka/LS-BookingService/internal/domain"
)

func TestRepository_Halls(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository()

	require.NoError(t, repo.AddHall(ctx, domain.Hall{Number: 1, HourlyRate: 2000, Capacity: 5}))
	require.NoError(t, repo.AddHall(ctx, domain.Hall{Number: 2, HourlyRate: 3000, Capacity: 10}))

	// Повторный номер зала отклоняется
	require.ErrorIs(t, repo.AddHall(ctx, domain.Hall{Number: 1, HourlyRate: 100, Capacity: 1}), ErrDuplicateHall)

	halls, err := repo.ListHalls(ctx)
	require.NoError(t, err)
	require.Len(t, halls, 2)
	assert.Equal(t, 1, halls[0].Number)
	assert.Equal(t, 2, halls[1].Number)

	hall, err := repo.GetHall(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, 3000.0, hall.HourlyRate)

	_, err = repo.GetHall(ctx, 42)
	require.ErrorIs(t, err, ErrHallNotFound)
}

func TestRepository_Equipment(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository()

	require.NoError(t, repo.AddEquipment(ctx, domain.EquipmentItem{Name: "Профессиональный свет", HourlyRate: 500}))
	require.NoError(t, repo.AddEquipment(ctx, domain.EquipmentItem{Name: "Фон белый", HourlyRate: 300}))

	require.ErrorIs(t,
		repo.AddEquipment(ctx, domain.EquipmentItem{Name: "Фон белый", HourlyRate: 100}),
		ErrDuplicateEquipment,
	)

	list, err := repo.ListEquipment(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Профессиональный свет", list[0].Name)

	item, err := repo.GetEquipment(ctx, "Фон белый")
	require.NoError(t, err)
	assert.Equal(t, 300.0, item.HourlyRate)

	_, err = repo.GetEquipment(ctx, "Дым-машина")
	require.ErrorIs(t, err, ErrEquipmentNotFound)
}
