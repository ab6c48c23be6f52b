package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"lexdesk/config"
	"lexdesk/infras/kafka"
	"lexdesk/infras/otel"
	"lexdesk/internal/domains/appointment/model"
	"lexdesk/internal/domains/appointment/model/dto"
	"lexdesk/internal/domains/appointment/repository"
	"lexdesk/shared"
	"lexdesk/shared/cache"
	"lexdesk/shared/constant"
	gDto "lexdesk/shared/dto"
	"lexdesk/shared/timezone"
	"lexdesk/shared/validator"
)

const (
	cacheGetMyAppointments = "appointment:mine"
)

type Appointment interface {
	RequestBooking(ctx context.Context, req dto.RequestBookingRequest, userID string) (dto.AppointmentResponse, error)
	GetMyAppointments(ctx context.Context, userID string) (dto.GetAppointmentsResponse, error)
}

type serviceImpl struct {
	repo         repository.Appointment
	cfg          *config.Config
	cache        cache.RedisCache
	kafka        kafka.Client
	otel         otel.Otel
	clock        timezone.Clock
	openMinutes  int
	closeMinutes int
	businessDays map[time.Weekday]bool
}

func New(repo repository.Appointment, cfg *config.Config, cache cache.RedisCache, kafkaClient kafka.Client, otel otel.Otel, clock timezone.Clock) Appointment {
	return &serviceImpl{
		repo:         repo,
		cfg:          cfg,
		cache:        cache,
		kafka:        kafkaClient,
		otel:         otel,
		clock:        clock,
		openMinutes:  parseClockMinutes(cfg.Scheduler.OpenTime),
		closeMinutes: parseClockMinutes(cfg.Scheduler.CloseTime),
		businessDays: parseBusinessDays(cfg.Scheduler.BusinessDays),
	}
}

// RequestBooking validates a booking request against the scheduling rules and
// stores the appointment. Checks run in a fixed order and the first violated
// rule wins: phone format, business day, business hours, slot availability.
// The duplicate check before insert is advisory only, the unique constraint on
// (user_id, appointment_date, appointment_time) is what actually guarantees a
// slot is booked once.
func (s *serviceImpl) RequestBooking(ctx context.Context, req dto.RequestBookingRequest, userID string) (res dto.AppointmentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RequestBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	if !validator.IsValidPhone(req.Phone) {
		return res, model.ErrInvalidPhoneFormat()
	}

	appointment, err := req.ToModel(userID, s.clock.Now())
	if err != nil {
		log.Warn().Err(err).Msg("failed to parse booking date or time")

		return res, model.ErrInvalidDateTimeFormat()
	}

	if !s.businessDays[appointment.AppointmentDate.Weekday()] {
		return res, model.ErrWeekendNotAvailable()
	}

	slotMinutes := parseClockMinutes(appointment.AppointmentTime)
	if slotMinutes < s.openMinutes || slotMinutes > s.closeMinutes {
		return res, model.ErrOutsideBusinessHours()
	}

	taken, err := s.repo.Exist(ctx, slotFilter(userID, req.AppointmentDate, appointment.AppointmentTime))
	if err != nil {
		log.Error().Err(err).Msg("failed to check slot availability")

		return res, model.ErrPersistence()
	}

	if taken {
		return res, model.ErrDuplicateSlot()
	}

	if err = s.repo.Insert(ctx, appointment); err != nil {
		if isUniqueViolation(err) {
			log.Info().
				Str("userID", userID).
				Str("date", req.AppointmentDate).
				Str("time", appointment.AppointmentTime).
				Msg("slot taken by concurrent booking")

			return res, model.ErrDuplicateSlot()
		}

		log.Error().Err(err).Msg("failed to store appointment")

		return res, model.ErrPersistence()
	}

	res.FromModel(appointment)

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, shared.BuildCacheKey(cacheGetMyAppointments, userID))

		s.publishBookingConfirmed(c, appointment)
	}()

	return res, nil
}

// GetMyAppointments returns the user's appointments ordered by date then time.
func (s *serviceImpl) GetMyAppointments(ctx context.Context, userID string) (res dto.GetAppointmentsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetMyAppointments")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetMyAppointments, userID)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for appointments")

		return res, nil
	}

	models, err := s.repo.GetByUser(ctx, userID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get appointments")

		return res, fmt.Errorf("failed to get appointments: %w", err)
	}

	res.FromModels(models, len(models), len(models))

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save appointments to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) publishBookingConfirmed(ctx context.Context, appointment model.Appointment) {
	if !s.cfg.Kafka.Enable {
		return
	}

	event := dto.BookingConfirmedEvent{}
	event.FromModel(appointment)

	err := s.kafka.SendMessages(ctx, s.cfg.Kafka.BookingTopic, kafka.Message{
		Key:   appointment.ID,
		Value: event,
	})
	if err != nil {
		log.Error().Err(err).Str("appointmentID", appointment.ID).Msg("failed to publish booking confirmed event")
	}
}

func slotFilter(userID, date, slot string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldUserID,
				Value:    userID,
				Operator: gDto.FilterOperatorEq,
			},
			gDto.Filter{
				Field:    model.FieldAppointmentDate,
				Value:    date,
				Operator: gDto.FilterOperatorEq,
			},
			gDto.Filter{
				Field:    model.FieldAppointmentTime,
				Value:    slot,
				Operator: gDto.FilterOperatorEq,
			},
		},
	}
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == constant.PqErrorCodeUniqueViolation
	}

	return false
}

// parseClockMinutes converts "15:04" into minutes since midnight. Malformed
// values yield -1 so a broken configuration rejects every slot instead of
// silently accepting them.
func parseClockMinutes(value string) int {
	parsed, err := time.Parse(constant.ClockMinuteFormat, value)
	if err != nil {
		log.Error().Err(err).Str("value", value).Msg("invalid clock value")

		return -1
	}

	return parsed.Hour()*60 + parsed.Minute()
}

// parseBusinessDays converts ISO weekday numbers such as 1,2,3,4,5 into a
// weekday lookup. 7 maps to Sunday.
func parseBusinessDays(values []int) map[time.Weekday]bool {
	days := map[time.Weekday]bool{}

	for _, day := range values {
		if day < 1 || day > 7 {
			log.Error().Int("value", day).Msg("invalid business day, skipping")

			continue
		}

		days[time.Weekday(day%7)] = true
	}

	return days
}
