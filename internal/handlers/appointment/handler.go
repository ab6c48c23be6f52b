package appointment

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"lexdesk/infras/otel"
	"lexdesk/internal/domains/appointment/model"
	"lexdesk/internal/domains/appointment/model/dto"
	"lexdesk/internal/domains/appointment/service"
	"lexdesk/shared/constant"
	"lexdesk/shared/failure"
	"lexdesk/shared/validator"
	"lexdesk/transport/http/response"
)

type Handler struct {
	service service.Appointment
	otel    otel.Otel
}

func New(service service.Appointment, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/appointments", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.RequestBooking)
		routerGroup.Get("/mine", handler.GetMyAppointments)
	})
}

// RequestBooking books an appointment slot for the authenticated user.
// @Summary Book an appointment
// @Description Book an appointment slot. Slots are available on business days between opening and closing time.
// @Tags Appointment
// @Accept json
// @Produce json
// @Param request body dto.RequestBookingRequest true "Booking Request"
// @Success 201 {object} response.Data[dto.AppointmentResponse] "Booked appointment"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 422 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/appointments [post]
// @Security BearerAuth
func (handler *Handler) RequestBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RequestBooking")
	defer scope.End()

	userID, ok := ctx.Value(constant.ContextKeyUserID).(string)
	if !ok || userID == "" {
		err := failure.Unauthorized("unauthorized")
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	req := dto.RequestBookingRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.RequestBooking(ctx, req, userID)
	if err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Str("user_id", userID).Msg("booking rejected")

		response.WithError(writer, toFailure(err))

		return
	}

	scope.AddEvent("Appointment booked successfully by user " + userID)

	response.WithJSON(writer, http.StatusCreated, res)
}

// GetMyAppointments lists the authenticated user's appointments.
// @Summary Get my appointments
// @Description Retrieve the current user's appointments ordered by date and time.
// @Tags Appointment
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.GetAppointmentsResponse] "List of appointments"
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/appointments/mine [get]
// @Security BearerAuth
func (handler *Handler) GetMyAppointments(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMyAppointments")
	defer scope.End()

	userID, ok := ctx.Value(constant.ContextKeyUserID).(string)
	if !ok || userID == "" {
		err := failure.Unauthorized("unauthorized")
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.GetMyAppointments(ctx, userID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get appointments")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// toFailure maps booking rule violations onto HTTP status codes. Malformed
// input is a bad request, calendar rules are unprocessable, a taken slot is a
// conflict and storage trouble is an internal error.
func toFailure(err error) error {
	var bookingErr *model.BookingError
	if !errors.As(err, &bookingErr) {
		return err
	}

	switch bookingErr.Kind {
	case model.KindInvalidPhoneFormat, model.KindInvalidDateTimeFormat:
		return failure.BadRequestFromString(bookingErr.Message)
	case model.KindWeekendNotAvailable, model.KindOutsideBusinessHours:
		return failure.UnprocessableEntity(bookingErr.Message)
	case model.KindDuplicateSlot:
		return failure.Conflict(bookingErr.Message)
	default:
		return failure.InternalError(bookingErr)
	}
}
