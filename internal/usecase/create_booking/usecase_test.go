package create_booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SLN-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/SLN-BookingService/internal/infra/storage/booking"
	scheduleRepo "github.com/m04kA/SLN-BookingService/internal/infra/storage/schedule"
	serviceRepo "github.com/m04kA/SLN-BookingService/internal/infra/storage/service"
	"github.com/m04kA/SLN-BookingService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type fakeBookingRepo struct {
	existing  []*domain.Booking
	created   *domain.Booking
	createErr error
}

func (f *fakeBookingRepo) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	created := *booking
	created.ID = 42
	created.CreatedAt = time.Date(2026, 9, 15, 8, 0, 0, 0, time.UTC)
	created.UpdatedAt = created.CreatedAt
	f.created = &created
	return &created, nil
}

func (f *fakeBookingRepo) GetByChairWithFilter(ctx context.Context, filter domain.ChairBookingsFilter) ([]*domain.Booking, error) {
	return f.existing, nil
}

type fakeServiceRepo struct {
	services []*domain.Service
	err      error
}

func (f *fakeServiceRepo) GetByIDs(ctx context.Context, ids []int64) ([]*domain.Service, error) {
	return f.services, f.err
}

type fakeChairRepo struct {
	chair *domain.Chair
	err   error
}

func (f *fakeChairRepo) GetByID(ctx context.Context, id int64) (*domain.Chair, error) {
	return f.chair, f.err
}

type fakeScheduleRepo struct {
	cfg *domain.ScheduleConfig
	err error
}

func (f *fakeScheduleRepo) Get(ctx context.Context) (*domain.ScheduleConfig, error) {
	return f.cfg, f.err
}

// fakeTxManager выполняет функцию без настоящей транзакции
type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type recordingNotifier struct {
	sent chan string
	err  error
}

func (n *recordingNotifier) Send(ctx context.Context, phone, message string) error {
	if n.sent != nil {
		n.sent <- message
	}
	return n.err
}

type countingMetrics struct{ created int }

func (m *countingMetrics) IncBookingCreated() { m.created++ }

func testServices() []*domain.Service {
	return []*domain.Service{
		{ID: 1, Name: "Стрижка", Price: 1500, DurationMinutes: 30, Active: true},
		{ID: 2, Name: "Окрашивание", Price: 4000, DurationMinutes: 45, Active: true},
	}
}

func testChair() *domain.Chair {
	return &domain.Chair{ID: 1, Name: "Кресло 1", Active: true, SupportedServiceIDs: []int64{1, 2}}
}

func testSchedule() *fakeScheduleRepo {
	return &fakeScheduleRepo{cfg: &domain.ScheduleConfig{
		OpenTime:               "09:00",
		CloseTime:              "21:00",
		SlotGranularityMinutes: 15,
	}}
}

func validRequest() *Request {
	return &Request{
		ClientName:  "Анна",
		ClientPhone: "+79001234567",
		ServiceIDs:  []int64{1, 2},
		ChairID:     1,
		Date:        time.Date(2026, 9, 16, 0, 0, 0, 0, time.UTC),
		StartTime:   "10:00",
	}
}

func newTestUseCase(
	bookings *fakeBookingRepo,
	services *fakeServiceRepo,
	chairs *fakeChairRepo,
	schedule *fakeScheduleRepo,
	notifier Notifier,
	metrics Metrics,
) *UseCase {
	uc := NewUseCase(bookings, services, chairs, schedule, fakeTxManager{}, notifier, metrics, nopLogger{})
	uc.timeProvider = fixedTime{now: time.Date(2026, 9, 15, 12, 0, 0, 0, time.UTC)}
	return uc
}

func TestExecute_CreatesBookingWithSnapshot(t *testing.T) {
	bookings := &fakeBookingRepo{}
	notifier := &recordingNotifier{sent: make(chan string, 1)}
	metrics := &countingMetrics{}

	uc := newTestUseCase(bookings, &fakeServiceRepo{services: testServices()},
		&fakeChairRepo{chair: testChair()}, testSchedule(), notifier, metrics)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(42), resp.ID)
	// Длительность - сумма длительностей услуг: 30 + 45
	assert.Equal(t, 75, resp.DurationMinutes)
	assert.Equal(t, types.TimeString("10:00"), resp.StartTime)
	assert.Equal(t, types.TimeString("11:15"), resp.EndTime)
	// Снапшот цены и названий услуг
	assert.Equal(t, 5500.0, resp.TotalPrice)
	assert.Equal(t, []string{"Стрижка", "Окрашивание"}, resp.ServiceNames)
	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)

	assert.Equal(t, 1, metrics.created)

	select {
	case msg := <-notifier.sent:
		assert.Contains(t, msg, "Анна")
		assert.Contains(t, msg, "10:00")
		assert.Contains(t, msg, "11:15")
	case <-time.After(time.Second):
		t.Fatal("expected confirmation message to be sent")
	}
}

func TestExecute_SlotTakenOnRecheck(t *testing.T) {
	// Слот занят между показом доступных слотов и коммитом
	bookings := &fakeBookingRepo{existing: []*domain.Booking{
		{StartTime: "10:30", DurationMinutes: 30, Status: domain.StatusConfirmed},
	}}

	uc := newTestUseCase(bookings, &fakeServiceRepo{services: testServices()},
		&fakeChairRepo{chair: testChair()}, testSchedule(), &recordingNotifier{}, nil)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotTaken)
	assert.Nil(t, bookings.created)
}

func TestExecute_BackToBackBookingSucceeds(t *testing.T) {
	// Существующая запись 09:00-10:00: новая запись с 10:00 легальна
	bookings := &fakeBookingRepo{existing: []*domain.Booking{
		{StartTime: "09:00", DurationMinutes: 60, Status: domain.StatusConfirmed},
	}}

	uc := newTestUseCase(bookings, &fakeServiceRepo{services: testServices()},
		&fakeChairRepo{chair: testChair()}, testSchedule(), &recordingNotifier{}, nil)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, types.TimeString("10:00"), resp.StartTime)
}

func TestExecute_CancelledBookingFreesSlot(t *testing.T) {
	bookings := &fakeBookingRepo{existing: []*domain.Booking{
		{StartTime: "10:00", DurationMinutes: 75, Status: domain.StatusCancelled},
	}}

	uc := newTestUseCase(bookings, &fakeServiceRepo{services: testServices()},
		&fakeChairRepo{chair: testChair()}, testSchedule(), &recordingNotifier{}, nil)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.NoError(t, err)
}

func TestExecute_StorageUniqueViolationMapsToSlotTaken(t *testing.T) {
	bookings := &fakeBookingRepo{createErr: bookingRepo.ErrSlotTaken}

	uc := newTestUseCase(bookings, &fakeServiceRepo{services: testServices()},
		&fakeChairRepo{chair: testChair()}, testSchedule(), &recordingNotifier{}, nil)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestExecute_CapabilityMismatch(t *testing.T) {
	chair := testChair()
	chair.SupportedServiceIDs = []int64{1} // услуга 2 не поддерживается

	uc := newTestUseCase(&fakeBookingRepo{}, &fakeServiceRepo{services: testServices()},
		&fakeChairRepo{chair: chair}, testSchedule(), &recordingNotifier{}, nil)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrCapabilityMismatch)
}

func TestExecute_InactiveChair(t *testing.T) {
	chair := testChair()
	chair.Active = false

	uc := newTestUseCase(&fakeBookingRepo{}, &fakeServiceRepo{services: testServices()},
		&fakeChairRepo{chair: chair}, testSchedule(), &recordingNotifier{}, nil)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrChairInactive)
}

func TestExecute_UnknownService(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeServiceRepo{err: serviceRepo.ErrServiceNotFound},
		&fakeChairRepo{chair: testChair()}, testSchedule(), &recordingNotifier{}, nil)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_InactiveService(t *testing.T) {
	services := testServices()
	services[1].Active = false

	uc := newTestUseCase(&fakeBookingRepo{}, &fakeServiceRepo{services: services},
		&fakeChairRepo{chair: testChair()}, testSchedule(), &recordingNotifier{}, nil)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_OutsideBusinessHours(t *testing.T) {
	req := validRequest()
	req.StartTime = "20:30" // 75 минут заканчиваются в 21:45, после закрытия

	uc := newTestUseCase(&fakeBookingRepo{}, &fakeServiceRepo{services: testServices()},
		&fakeChairRepo{chair: testChair()}, testSchedule(), &recordingNotifier{}, nil)

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrOutsideBusinessHours)
}

func TestExecute_PastDate(t *testing.T) {
	req := validRequest()
	req.Date = time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)

	uc := newTestUseCase(&fakeBookingRepo{}, &fakeServiceRepo{services: testServices()},
		&fakeChairRepo{chair: testChair()}, testSchedule(), &recordingNotifier{}, nil)

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestExecute_MinNoticeViolation(t *testing.T) {
	schedule := testSchedule()
	schedule.cfg.MinBookingNoticeMinutes = 120

	req := validRequest()
	req.Date = time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC) // сегодня
	req.StartTime = "13:00"                                 // now=12:00, нужно минимум 14:00

	uc := newTestUseCase(&fakeBookingRepo{}, &fakeServiceRepo{services: testServices()},
		&fakeChairRepo{chair: testChair()}, schedule, &recordingNotifier{}, nil)

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrTooLateToBook)
}

func TestExecute_NotifierFailureDoesNotFailBooking(t *testing.T) {
	notified := make(chan string, 1)
	notifier := &recordingNotifier{sent: notified, err: errors.New("gateway down")}

	uc := newTestUseCase(&fakeBookingRepo{}, &fakeServiceRepo{services: testServices()},
		&fakeChairRepo{chair: testChair()}, testSchedule(), notifier, nil)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.ID)

	select {
	case <-notified:
	case <-time.After(time.Second):
		t.Fatal("expected notifier to be called")
	}
}

func TestExecute_ValidationErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{name: "empty client name", mutate: func(r *Request) { r.ClientName = "  " }},
		{name: "empty phone", mutate: func(r *Request) { r.ClientPhone = "" }},
		{name: "no services", mutate: func(r *Request) { r.ServiceIDs = nil }},
		{name: "duplicate services", mutate: func(r *Request) { r.ServiceIDs = []int64{1, 1} }},
		{name: "non-positive service id", mutate: func(r *Request) { r.ServiceIDs = []int64{0} }},
		{name: "non-positive chair id", mutate: func(r *Request) { r.ChairID = 0 }},
		{name: "zero date", mutate: func(r *Request) { r.Date = time.Time{} }},
		{name: "empty start time", mutate: func(r *Request) { r.StartTime = "" }},
		{name: "malformed start time", mutate: func(r *Request) { r.StartTime = "25:99" }},
	}

	uc := newTestUseCase(&fakeBookingRepo{}, &fakeServiceRepo{services: testServices()},
		&fakeChairRepo{chair: testChair()}, testSchedule(), &recordingNotifier{}, nil)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExecute_ScheduleFallbackToDefaults(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeServiceRepo{services: testServices()},
		&fakeChairRepo{chair: testChair()}, &fakeScheduleRepo{err: scheduleRepo.ErrConfigNotFound},
		&recordingNotifier{}, nil)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, 75, resp.DurationMinutes)
}
