package dto

import (
	"time"

	"github.com/google/uuid"

	"lexdesk/internal/domains/appointment/model"
	"lexdesk/shared"
	"lexdesk/shared/constant"
	gDto "lexdesk/shared/dto"
	gModel "lexdesk/shared/model"
	"lexdesk/shared/timezone"
)

type RequestBookingRequest struct {
	OwnerName       string `json:"owner_name"       validate:"required,max=100"`
	Phone           string `json:"phone"            validate:"required"`
	ContactEmail    string `json:"contact_email"    validate:"required,email"`
	Message         string `json:"message"          validate:"omitempty,max=2000"`
	AppointmentDate string `json:"appointment_date" validate:"required"`
	AppointmentTime string `json:"appointment_time" validate:"required"`
}

// ParseDate returns the requested calendar day.
func (r *RequestBookingRequest) ParseDate() (time.Time, error) {
	return time.Parse(constant.CalendarDayFormat, r.AppointmentDate)
}

// ParseTime returns the requested time of day at minute precision.
func (r *RequestBookingRequest) ParseTime() (time.Time, error) {
	return time.Parse(constant.ClockMinuteFormat, r.AppointmentTime)
}

func (r *RequestBookingRequest) ToModel(userID string, now time.Time) (model.Appointment, error) {
	date, err := r.ParseDate()
	if err != nil {
		return model.Appointment{}, err
	}

	slot, err := r.ParseTime()
	if err != nil {
		return model.Appointment{}, err
	}

	var message *string
	if r.Message != "" {
		message = &r.Message
	}

	return model.Appointment{
		ID:              uuid.NewString(),
		UserID:          userID,
		OwnerName:       r.OwnerName,
		Phone:           r.Phone,
		ContactEmail:    r.ContactEmail,
		Message:         message,
		AppointmentDate: date,
		AppointmentTime: slot.Format(constant.ClockMinuteFormat),
		Status:          model.StatusConfirmed,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  userID,
			ModifiedBy: userID,
		},
	}, nil
}

type AppointmentResponse struct {
	ID              string `json:"id"`
	OwnerName       string `json:"owner_name"`
	Phone           string `json:"phone"`
	ContactEmail    string `json:"contact_email"`
	Message         string `json:"message,omitempty"`
	AppointmentDate string `json:"appointment_date"`
	AppointmentTime string `json:"appointment_time"`
	Status          string `json:"status"`
	gDto.Metadata
}

func (r *AppointmentResponse) FromModel(model model.Appointment) {
	r.ID = model.ID
	r.OwnerName = model.OwnerName
	r.Phone = model.Phone
	r.ContactEmail = model.ContactEmail
	r.AppointmentDate = model.AppointmentDate.Format(constant.CalendarDayFormat)
	r.AppointmentTime = normalizeSlot(model.AppointmentTime)
	r.Status = model.Status

	if model.Message != nil {
		r.Message = *model.Message
	}

	r.Metadata.FromModel(model.Metadata)
}

// normalizeSlot trims a TIME column value such as "09:00:00" down to "09:00".
func normalizeSlot(slot string) string {
	if len(slot) > len(constant.ClockMinuteFormat) {
		return slot[:len(constant.ClockMinuteFormat)]
	}

	return slot
}

type GetAppointmentsResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	TotalPage    int                   `json:"total_page"`
	TotalData    int                   `json:"total_data"`
}

func (r *GetAppointmentsResponse) FromModels(models []model.Appointment, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Appointments = make([]AppointmentResponse, len(models))
	for i, mod := range models {
		r.Appointments[i].FromModel(mod)
	}
}

// BookingConfirmedEvent is published to Kafka after a booking is stored.
type BookingConfirmedEvent struct {
	AppointmentID   string `json:"appointment_id"`
	UserID          string `json:"user_id"`
	OwnerName       string `json:"owner_name"`
	Phone           string `json:"phone"`
	ContactEmail    string `json:"contact_email"`
	Message         string `json:"message,omitempty"`
	AppointmentDate string `json:"appointment_date"`
	AppointmentTime string `json:"appointment_time"`
	ConfirmedAt     string `json:"confirmed_at"`
}

func (e *BookingConfirmedEvent) FromModel(model model.Appointment) {
	e.AppointmentID = model.ID
	e.UserID = model.UserID
	e.OwnerName = model.OwnerName
	e.Phone = model.Phone
	e.ContactEmail = model.ContactEmail
	e.AppointmentDate = model.AppointmentDate.Format(constant.CalendarDayFormat)
	e.AppointmentTime = normalizeSlot(model.AppointmentTime)
	e.ConfirmedAt = timezone.Format(timezone.Now(), constant.DateFormat)

	if model.Message != nil {
		e.Message = *model.Message
	}
}
