package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m0rkovka/LS-BookingService/internal/domain"
	bookingRepo "github.com/m0rkovka/LS-BookingService/internal/infra/storage/booking"
	clientRepo "github.com/m0rkovka/LS-BookingService/internal/infra/storage/client"
	"github.com/m0rkovka/LS-BookingService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixture struct {
	svc      *Service
	bookings *bookingRepo.Repository
	clients  *clientRepo.Repository
}

func newFixture() *fixture {
	bookings := bookingRepo.NewRepository()
	clients := clientRepo.NewRepository()

	return &fixture{
		svc:      NewService(bookings, clients, nopLogger{}),
		bookings: bookings,
		clients:  clients,
	}
}

func (f *fixture) mustAddClient(t *testing.T) *domain.Client {
	t.Helper()
	c, err := f.clients.Create(context.Background(), &domain.Client{
		FirstName: "Анна", LastName: "Иванова", Phone: "79161234567",
	})
	require.NoError(t, err)
	return c
}

func (f *fixture) mustAddBooking(t *testing.T, clientID int64, day int, start types.TimeString, cost float64) {
	t.Helper()
	_, err := f.bookings.Create(context.Background(), &domain.Booking{
		ClientID:      clientID,
		HallNumber:    1,
		Date:          time.Date(2025, 2, day, 0, 0, 0, 0, time.UTC),
		StartTime:     start,
		DurationHours: 1,
		Cost:          cost,
	})
	require.NoError(t, err)
}

func TestService_List_GroupsByDateAscending(t *testing.T) {
	f := newFixture()
	c := f.mustAddClient(t)

	// Вставка не по порядку дат
	f.mustAddBooking(t, c.ID, 12, "10:00", 2000)
	f.mustAddBooking(t, c.ID, 10, "15:00", 3000)
	f.mustAddBooking(t, c.ID, 12, "09:00", 2500)

	resp, err := f.svc.List(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, resp.Total)
	require.Len(t, resp.Groups, 2)

	// Группы по возрастанию даты
	assert.Equal(t, "2025-02-10", resp.Groups[0].Date)
	assert.Equal(t, "2025-02-12", resp.Groups[1].Date)

	// Внутри группы сохранен порядок вставки, не сортировка по времени
	require.Len(t, resp.Groups[1].Bookings, 2)
	assert.Equal(t, "10:00", resp.Groups[1].Bookings[0].StartTime)
	assert.Equal(t, "09:00", resp.Groups[1].Bookings[1].StartTime)
}

func TestService_List_Empty(t *testing.T) {
	f := newFixture()

	resp, err := f.svc.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, resp.Total)
	assert.Empty(t, resp.Groups)
}

func TestService_Cancel(t *testing.T) {
	f := newFixture()
	target := f.mustAddClient(t)
	other := f.mustAddClient(t)

	f.mustAddBooking(t, target.ID, 10, "09:00", 2000)
	f.mustAddBooking(t, target.ID, 11, "12:00", 2000)
	f.mustAddBooking(t, other.ID, 10, "15:00", 3000)

	resp, err := f.svc.Cancel(context.Background(), target.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Removed)

	// Бронирования второго клиента не тронуты
	list, err := f.svc.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, list.Total)
}

func TestService_Cancel_ClientNotRegistered(t *testing.T) {
	f := newFixture()

	_, err := f.svc.Cancel(context.Background(), 42)
	require.ErrorIs(t, err, ErrClientNotFound)
}

func TestService_Cancel_NoBookings(t *testing.T) {
	f := newFixture()
	c := f.mustAddClient(t)
	other := f.mustAddClient(t)
	f.mustAddBooking(t, other.ID, 10, "09:00", 2000)

	_, err := f.svc.Cancel(context.Background(), c.ID)
	require.ErrorIs(t, err, ErrNoBookingsForClient)

	// Журнал не изменился
	list, err := f.svc.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, list.Total)
}

func TestService_Report(t *testing.T) {
	f := newFixture()
	c := f.mustAddClient(t)
	f.mustAddClient(t)

	f.mustAddBooking(t, c.ID, 10, "09:00", 4000)
	f.mustAddBooking(t, c.ID, 11, "12:00", 1500.5)

	resp, err := f.svc.Report(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, resp.TotalClients)
	assert.Equal(t, 2, resp.TotalBookings)
	assert.InDelta(t, 5500.5, resp.TotalRevenue, 1e-9)
}

func TestService_Report_ReflectsCancellations(t *testing.T) {
	f := newFixture()
	c := f.mustAddClient(t)

	f.mustAddBooking(t, c.ID, 10, "09:00", 4000)

	_, err := f.svc.Cancel(context.Background(), c.ID)
	require.NoError(t, err)

	resp, err := f.svc.Report(context.Background())
	require.NoError(t, err)

	// Клиент остался в реестре, бронирований и выручки нет
	assert.Equal(t, 1, resp.TotalClients)
	assert.Equal(t, 0, resp.TotalBookings)
	assert.Zero(t, resp.TotalRevenue)
}
