package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"lexdesk/config"
	"lexdesk/infras/otel/mocks"
	appointmentMocks "lexdesk/internal/domains/appointment/mocks"
	"lexdesk/internal/domains/appointment/model"
	"lexdesk/internal/domains/appointment/model/dto"
	"lexdesk/internal/domains/appointment/repository"
	"lexdesk/internal/domains/appointment/service"
	cacheMocks "lexdesk/shared/cache/mocks"
	"lexdesk/shared/constant"
	gDto "lexdesk/shared/dto"
)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

func schedulerConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.Scheduler.OpenTime = "09:00"
	cfg.Scheduler.CloseTime = "17:00"
	cfg.Scheduler.BusinessDays = []int{1, 2, 3, 4, 5}
	cfg.Kafka.Enable = false

	return cfg
}

func bookingErrorKind(t *testing.T, err error) model.BookingErrorKind {
	t.Helper()

	var bookingErr *model.BookingError
	if !errors.As(err, &bookingErr) {
		t.Fatalf("expected a BookingError, got %T: %v", err, err)
	}

	return bookingErr.Kind
}

func TestAppointmentService_RequestBooking(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := appointmentMocks.NewMockAppointment(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	// Cache invalidation runs on a detached goroutine after a booking lands.
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	clock := fixedClock{now: time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)}

	svc := service.New(mockRepo, schedulerConfig(), mockCache, nil, mockOtel, clock)

	validRequest := func() dto.RequestBookingRequest {
		return dto.RequestBookingRequest{
			OwnerName:       "Jane Doe",
			Phone:           "+14155551234",
			ContactEmail:    "jane@example.com",
			Message:         "Need advice on a contract dispute",
			AppointmentDate: "2024-06-10", // a Monday
			AppointmentTime: "09:00",
		}
	}

	tests := []struct {
		name      string
		mutate    func(req *dto.RequestBookingRequest)
		setupMock func()
		wantKind  model.BookingErrorKind
	}{
		{
			name:   "weekday at opening time succeeds",
			mutate: func(req *dto.RequestBookingRequest) {},
			setupMock: func() {
				mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				mockRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "closing time is still bookable",
			mutate: func(req *dto.RequestBookingRequest) {
				req.AppointmentTime = "17:00"
			},
			setupMock: func() {
				mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				mockRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "invalid phone format",
			mutate: func(req *dto.RequestBookingRequest) {
				req.Phone = "abc123"
			},
			wantKind: model.KindInvalidPhoneFormat,
		},
		{
			name: "phone is checked before the calendar rules",
			mutate: func(req *dto.RequestBookingRequest) {
				req.Phone = "abc123"
				req.AppointmentDate = "2024-06-15" // a Saturday
			},
			wantKind: model.KindInvalidPhoneFormat,
		},
		{
			name: "malformed date",
			mutate: func(req *dto.RequestBookingRequest) {
				req.AppointmentDate = "2024-13-40"
			},
			wantKind: model.KindInvalidDateTimeFormat,
		},
		{
			name: "malformed time",
			mutate: func(req *dto.RequestBookingRequest) {
				req.AppointmentTime = "quarter past nine"
			},
			wantKind: model.KindInvalidDateTimeFormat,
		},
		{
			name: "saturday is rejected",
			mutate: func(req *dto.RequestBookingRequest) {
				req.AppointmentDate = "2024-06-15"
			},
			wantKind: model.KindWeekendNotAvailable,
		},
		{
			name: "sunday is rejected",
			mutate: func(req *dto.RequestBookingRequest) {
				req.AppointmentDate = "2024-06-16"
			},
			wantKind: model.KindWeekendNotAvailable,
		},
		{
			name: "one minute before opening",
			mutate: func(req *dto.RequestBookingRequest) {
				req.AppointmentTime = "08:59"
			},
			wantKind: model.KindOutsideBusinessHours,
		},
		{
			name: "one minute after closing",
			mutate: func(req *dto.RequestBookingRequest) {
				req.AppointmentTime = "17:01"
			},
			wantKind: model.KindOutsideBusinessHours,
		},
		{
			name:   "slot already booked",
			mutate: func(req *dto.RequestBookingRequest) {},
			setupMock: func() {
				mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
			},
			wantKind: model.KindDuplicateSlot,
		},
		{
			name:   "availability check failure",
			mutate: func(req *dto.RequestBookingRequest) {},
			setupMock: func() {
				mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, errors.New("connection refused"))
			},
			wantKind: model.KindPersistenceError,
		},
		{
			name:   "concurrent booking trips the unique constraint",
			mutate: func(req *dto.RequestBookingRequest) {},
			setupMock: func() {
				mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				mockRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(&pq.Error{Code: "23505"})
			},
			wantKind: model.KindDuplicateSlot,
		},
		{
			name:   "insert failure",
			mutate: func(req *dto.RequestBookingRequest) {},
			setupMock: func() {
				mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				mockRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("database error"))
			},
			wantKind: model.KindPersistenceError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.setupMock != nil {
				tt.setupMock()
			}

			req := validRequest()
			tt.mutate(&req)

			res, err := svc.RequestBooking(context.Background(), req, "user-1")

			if tt.wantKind != "" {
				assert.Error(t, err)
				assert.Equal(t, tt.wantKind, bookingErrorKind(t, err))

				return
			}

			assert.NoError(t, err)
			assert.NotEmpty(t, res.ID)
			assert.Equal(t, "Jane Doe", res.OwnerName)
			assert.Equal(t, "jane@example.com", res.ContactEmail)
			assert.Equal(t, "Need advice on a contract dispute", res.Message)
			assert.Equal(t, req.AppointmentDate, res.AppointmentDate)
			assert.Equal(t, req.AppointmentTime, res.AppointmentTime)
			assert.Equal(t, model.StatusConfirmed, res.Status)
		})
	}
}

func TestAppointmentService_RequestBooking_WrappedUniqueViolation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := appointmentMocks.NewMockAppointment(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	clock := fixedClock{now: time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)}

	svc := service.New(mockRepo, schedulerConfig(), mockCache, nil, mockOtel, clock)

	mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
	// The generic repository wraps driver errors before returning them.
	wrapped := &pq.Error{Code: "23505", Constraint: model.UniqueSlotConstraint}
	mockRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(
		errors.Join(errors.New("failed to insert data (appointment)"), wrapped),
	)

	_, err := svc.RequestBooking(context.Background(), dto.RequestBookingRequest{
		OwnerName:       "Jane Doe",
		Phone:           "+14155551234",
		ContactEmail:    "jane@example.com",
		AppointmentDate: "2024-06-10",
		AppointmentTime: "10:30",
	}, "user-1")

	assert.Error(t, err)
	assert.Equal(t, model.KindDuplicateSlot, bookingErrorKind(t, err))
}

// fakeAppointmentRepo keeps bookings in memory so a single store can be
// exercised across calls. Only the methods the booking flow touches are
// implemented; anything else panics through the embedded nil interface.
type fakeAppointmentRepo struct {
	repository.Appointment
	stored []model.Appointment
}

func (f *fakeAppointmentRepo) Exist(_ context.Context, filter gDto.FilterGroup) (bool, error) {
	var userID, date, slot string

	for _, raw := range filter.Filters {
		flt, ok := raw.(gDto.Filter)
		if !ok {
			continue
		}

		value, _ := flt.Value.(string)

		switch flt.Field {
		case model.FieldUserID:
			userID = value
		case model.FieldAppointmentDate:
			date = value
		case model.FieldAppointmentTime:
			slot = value
		}
	}

	for _, appointment := range f.stored {
		if appointment.UserID == userID &&
			appointment.AppointmentDate.Format(constant.CalendarDayFormat) == date &&
			appointment.AppointmentTime == slot {
			return true, nil
		}
	}

	return false, nil
}

func (f *fakeAppointmentRepo) Insert(_ context.Context, appointment model.Appointment) error {
	for _, existing := range f.stored {
		if existing.UserID == appointment.UserID &&
			existing.AppointmentDate.Equal(appointment.AppointmentDate) &&
			existing.AppointmentTime == appointment.AppointmentTime {
			return &pq.Error{Code: "23505", Constraint: model.UniqueSlotConstraint}
		}
	}

	f.stored = append(f.stored, appointment)

	return nil
}

func (f *fakeAppointmentRepo) GetByUser(_ context.Context, userID string) ([]model.Appointment, error) {
	var appointments []model.Appointment

	for _, appointment := range f.stored {
		if appointment.UserID == userID {
			appointments = append(appointments, appointment)
		}
	}

	return appointments, nil
}

func TestAppointmentService_RequestBooking_SingleStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss")).AnyTimes()
	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	repo := &fakeAppointmentRepo{}
	clock := fixedClock{now: time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)}

	svc := service.New(repo, schedulerConfig(), mockCache, nil, mockOtel, clock)

	req := dto.RequestBookingRequest{
		OwnerName:       "Jane Doe",
		Phone:           "+14155551234",
		ContactEmail:    "jane@example.com",
		Message:         "Need advice on a contract dispute",
		AppointmentDate: "2024-06-10",
		AppointmentTime: "09:00",
	}

	res, err := svc.RequestBooking(context.Background(), req, "user-1")
	assert.NoError(t, err)

	// resubmitting the same booking is rejected and the store keeps one record
	_, err = svc.RequestBooking(context.Background(), req, "user-1")
	assert.Error(t, err)
	assert.Equal(t, model.KindDuplicateSlot, bookingErrorKind(t, err))
	assert.Len(t, repo.stored, 1)

	// the stored appointment reads back equal to what was requested
	listed, err := svc.GetMyAppointments(context.Background(), "user-1")
	assert.NoError(t, err)
	assert.Len(t, listed.Appointments, 1)

	got := listed.Appointments[0]
	assert.Equal(t, res.ID, got.ID)
	assert.Equal(t, req.OwnerName, got.OwnerName)
	assert.Equal(t, req.Phone, got.Phone)
	assert.Equal(t, req.ContactEmail, got.ContactEmail)
	assert.Equal(t, req.Message, got.Message)
	assert.Equal(t, req.AppointmentDate, got.AppointmentDate)
	assert.Equal(t, req.AppointmentTime, got.AppointmentTime)
	assert.Equal(t, model.StatusConfirmed, got.Status)
}

func TestAppointmentService_GetMyAppointments(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := appointmentMocks.NewMockAppointment(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	clock := fixedClock{now: time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)}

	svc := service.New(mockRepo, schedulerConfig(), mockCache, nil, mockOtel, clock)

	mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	appointments := []model.Appointment{
		{
			ID:              "appt-1",
			UserID:          "user-1",
			OwnerName:       "Jane Doe",
			Phone:           "+14155551234",
			AppointmentDate: time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC),
			AppointmentTime: "09:00:00",
			Status:          model.StatusConfirmed,
		},
		{
			ID:              "appt-2",
			UserID:          "user-1",
			OwnerName:       "Jane Doe",
			Phone:           "+14155551234",
			AppointmentDate: time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC),
			AppointmentTime: "14:30:00",
			Status:          model.StatusConfirmed,
		},
	}

	mockRepo.EXPECT().GetByUser(gomock.Any(), "user-1").Return(appointments, nil)

	res, err := svc.GetMyAppointments(context.Background(), "user-1")

	assert.NoError(t, err)
	assert.Len(t, res.Appointments, 2)
	assert.Equal(t, 2, res.TotalData)
	assert.Equal(t, "2024-06-10", res.Appointments[0].AppointmentDate)
	assert.Equal(t, "09:00", res.Appointments[0].AppointmentTime)
	assert.Equal(t, "14:30", res.Appointments[1].AppointmentTime)
}

func TestAppointmentService_GetMyAppointments_CacheHit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := appointmentMocks.NewMockAppointment(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	clock := fixedClock{now: time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)}

	svc := service.New(mockRepo, schedulerConfig(), mockCache, nil, mockOtel, clock)

	mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	_, err := svc.GetMyAppointments(context.Background(), "user-1")

	assert.NoError(t, err)
}

func TestAppointmentService_GetMyAppointments_RepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := appointmentMocks.NewMockAppointment(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	clock := fixedClock{now: time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)}

	svc := service.New(mockRepo, schedulerConfig(), mockCache, nil, mockOtel, clock)

	mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
	mockRepo.EXPECT().GetByUser(gomock.Any(), "user-1").Return(nil, errors.New("database error"))

	_, err := svc.GetMyAppointments(context.Background(), "user-1")

	assert.Error(t, err)
}
