package clients

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	clientRepo "github.com/m0rkovka/LS-BookingService/internal/infra/storage/client"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestService() (*Service, *clientRepo.Repository) {
	repo := clientRepo.NewRepository()
	return NewService(repo, nopLogger{}), repo
}

func TestService_AddClient(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	created, err := svc.AddClient(ctx, &AddClientRequest{
		FirstName: "Анна",
		LastName:  "Иванова",
		Phone:     "79161234567",
		Discount:  10,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, "Анна Иванова", created.FullName())
	assert.Equal(t, 10, created.Discount)
}

func TestService_AddClient_Validation(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	tests := []struct {
		name string
		req  AddClientRequest
	}{
		{name: "empty first name", req: AddClientRequest{LastName: "Иванова", Phone: "79161234567"}},
		{name: "empty last name", req: AddClientRequest{FirstName: "Анна", Phone: "79161234567"}},
		{name: "empty phone", req: AddClientRequest{FirstName: "Анна", LastName: "Иванова"}},
		{name: "discount below range", req: AddClientRequest{FirstName: "Анна", LastName: "Иванова", Phone: "79161234567", Discount: -1}},
		{name: "discount above range", req: AddClientRequest{FirstName: "Анна", LastName: "Иванова", Phone: "79161234567", Discount: 31}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.AddClient(ctx, &tt.req)
			require.ErrorIs(t, err, ErrValidation)
		})
	}
}

// Формат телефона при регистрации не проверяется: запись может существовать
// с телефоном, который позже будет признан некорректным
func TestService_AddClient_AcceptsUncheckedPhoneFormat(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	created, err := svc.AddClient(ctx, &AddClientRequest{
		FirstName: "Анна",
		LastName:  "Иванова",
		Phone:     "+7 (916) 123-45-67",
	})
	require.NoError(t, err)

	valid, err := svc.ValidatePhone(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, valid)
}

func TestService_UpdatePhone(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	created, err := svc.AddClient(ctx, &AddClientRequest{FirstName: "Анна", LastName: "Иванова", Phone: "79161234567"})
	require.NoError(t, err)

	require.NoError(t, svc.UpdatePhone(ctx, created.ID, "79990000000"))

	got, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "79990000000", got.Phone)
}

// Некорректный новый телефон отклоняется до обращения к хранилищу:
// запись либо обновляется целиком, либо не меняется вообще
func TestService_UpdatePhone_InvalidFormatLeavesRecordUntouched(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	created, err := svc.AddClient(ctx, &AddClientRequest{FirstName: "Анна", LastName: "Иванова", Phone: "79161234567"})
	require.NoError(t, err)

	require.ErrorIs(t, svc.UpdatePhone(ctx, created.ID, "short"), ErrValidation)

	got, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "79161234567", got.Phone)
}

func TestService_UpdatePhone_ClientNotFound(t *testing.T) {
	svc, _ := newTestService()
	require.ErrorIs(t, svc.UpdatePhone(context.Background(), 42, "79990000000"), ErrClientNotFound)
}

func TestService_ApplyDiscount(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	created, err := svc.AddClient(ctx, &AddClientRequest{FirstName: "Анна", LastName: "Иванова", Phone: "79161234567"})
	require.NoError(t, err)

	require.NoError(t, svc.ApplyDiscount(ctx, created.ID, 30))

	got, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 30, got.Discount)
}

func TestService_ApplyDiscount_OutOfRange(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	created, err := svc.AddClient(ctx, &AddClientRequest{FirstName: "Анна", LastName: "Иванова", Phone: "79161234567", Discount: 5})
	require.NoError(t, err)

	require.ErrorIs(t, svc.ApplyDiscount(ctx, created.ID, 31), ErrValidation)
	require.ErrorIs(t, svc.ApplyDiscount(ctx, created.ID, -1), ErrValidation)

	// Скидка осталась прежней
	got, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, got.Discount)
}

func TestService_GetByID_NotFound(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.GetByID(context.Background(), 42)
	require.ErrorIs(t, err, ErrClientNotFound)
}

func TestService_List(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	for _, name := range []string{"Анна", "Борис"} {
		_, err := svc.AddClient(ctx, &AddClientRequest{FirstName: name, LastName: "Тестова", Phone: "79161234567"})
		require.NoError(t, err)
	}

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Анна", list[0].FirstName)
	assert.Equal(t, "Борис", list[1].FirstName)
}
