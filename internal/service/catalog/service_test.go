package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m0rkovka/LS-BookingService/internal/domain"
	catalogRepo "github.com/m0rkovka/LS-BookingService/internal/infra/storage/catalog"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestService() *Service {
	return NewService(catalogRepo.NewRepository(), nopLogger{})
}

func TestService_RegisterHall(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	require.NoError(t, svc.RegisterHall(ctx, domain.Hall{Number: 1, HourlyRate: 2000, Capacity: 5}))

	tests := []struct {
		name    string
		hall    domain.Hall
		wantErr error
	}{
		{name: "duplicate number", hall: domain.Hall{Number: 1, HourlyRate: 100, Capacity: 1}, wantErr: ErrDuplicateHall},
		{name: "non-positive number", hall: domain.Hall{Number: 0, HourlyRate: 100, Capacity: 1}, wantErr: ErrInvalidInput},
		{name: "negative rate", hall: domain.Hall{Number: 2, HourlyRate: -1, Capacity: 1}, wantErr: ErrInvalidInput},
		{name: "non-positive capacity", hall: domain.Hall{Number: 2, HourlyRate: 100, Capacity: 0}, wantErr: ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.ErrorIs(t, svc.RegisterHall(ctx, tt.hall), tt.wantErr)
		})
	}
}

func TestService_RegisterEquipment(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	require.NoError(t, svc.RegisterEquipment(ctx, domain.EquipmentItem{Name: "Реквизит", HourlyRate: 200}))

	require.ErrorIs(t,
		svc.RegisterEquipment(ctx, domain.EquipmentItem{Name: "Реквизит", HourlyRate: 100}),
		ErrDuplicateEquipment,
	)
	require.ErrorIs(t,
		svc.RegisterEquipment(ctx, domain.EquipmentItem{Name: "", HourlyRate: 100}),
		ErrInvalidInput,
	)
	require.ErrorIs(t,
		svc.RegisterEquipment(ctx, domain.EquipmentItem{Name: "Дым-машина", HourlyRate: -1}),
		ErrInvalidInput,
	)
}

func TestService_MostExpensiveHall(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	require.NoError(t, svc.RegisterHall(ctx, domain.Hall{Number: 1, HourlyRate: 2000, Capacity: 5}))
	require.NoError(t, svc.RegisterHall(ctx, domain.Hall{Number: 2, HourlyRate: 3000, Capacity: 10}))
	require.NoError(t, svc.RegisterHall(ctx, domain.Hall{Number: 3, HourlyRate: 2500, Capacity: 8}))

	best, err := svc.MostExpensiveHall(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, best.Number)
}

func TestService_MostExpensiveHall_TieBreaksByRegistrationOrder(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	require.NoError(t, svc.RegisterHall(ctx, domain.Hall{Number: 5, HourlyRate: 3000, Capacity: 5}))
	require.NoError(t, svc.RegisterHall(ctx, domain.Hall{Number: 6, HourlyRate: 3000, Capacity: 10}))

	// При равных ставках побеждает первый зарегистрированный
	best, err := svc.MostExpensiveHall(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, best.Number)
}

func TestService_MostExpensiveHall_EmptyCatalog(t *testing.T) {
	svc := newTestService()

	_, err := svc.MostExpensiveHall(context.Background())
	require.ErrorIs(t, err, ErrNoHalls)
}

func TestService_ListHalls(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	require.NoError(t, svc.RegisterHall(ctx, domain.Hall{Number: 1, HourlyRate: 2000, Capacity: 5}))

	halls, err := svc.ListHalls(ctx)
	require.NoError(t, err)
	require.Len(t, halls, 1)
	assert.Equal(t, 1, halls[0].Number)
}
