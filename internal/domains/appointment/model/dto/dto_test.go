package dto_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"lexdesk/internal/domains/appointment/model"
	"lexdesk/internal/domains/appointment/model/dto"
)

func TestRequestBookingRequest_ToModel(t *testing.T) {
	now := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

	req := dto.RequestBookingRequest{
		OwnerName:       "Jane Doe",
		Phone:           "+14155551234",
		ContactEmail:    "jane@example.com",
		Message:         "Need advice on a contract dispute",
		AppointmentDate: "2024-06-10",
		AppointmentTime: "09:00",
	}

	appointment, err := req.ToModel("user-1", now)

	assert.NoError(t, err)
	assert.NotEmpty(t, appointment.ID)
	assert.Equal(t, "user-1", appointment.UserID)
	assert.Equal(t, "jane@example.com", appointment.ContactEmail)
	if assert.NotNil(t, appointment.Message) {
		assert.Equal(t, "Need advice on a contract dispute", *appointment.Message)
	}
	assert.Equal(t, time.Monday, appointment.AppointmentDate.Weekday())
	assert.Equal(t, "09:00", appointment.AppointmentTime)
	assert.Equal(t, model.StatusConfirmed, appointment.Status)
	assert.True(t, appointment.CreatedAt.Equal(now))
}

func TestRequestBookingRequest_ToModel_NoMessage(t *testing.T) {
	now := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

	req := dto.RequestBookingRequest{
		OwnerName:       "Jane Doe",
		Phone:           "+14155551234",
		ContactEmail:    "jane@example.com",
		AppointmentDate: "2024-06-10",
		AppointmentTime: "09:00",
	}

	appointment, err := req.ToModel("user-1", now)

	assert.NoError(t, err)
	assert.Nil(t, appointment.Message)
}

func TestRequestBookingRequest_ToModel_InvalidInput(t *testing.T) {
	now := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		date string
		slot string
	}{
		{name: "invalid date", date: "10-06-2024", slot: "09:00"},
		{name: "out of range date", date: "2024-13-40", slot: "09:00"},
		{name: "invalid time", date: "2024-06-10", slot: "9am"},
		{name: "seconds are not accepted", date: "2024-06-10", slot: "09:00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := dto.RequestBookingRequest{
				OwnerName:       "Jane Doe",
				Phone:           "+14155551234",
				ContactEmail:    "jane@example.com",
				AppointmentDate: tt.date,
				AppointmentTime: tt.slot,
			}

			_, err := req.ToModel("user-1", now)

			assert.Error(t, err)
		})
	}
}

func TestAppointmentResponse_FromModel(t *testing.T) {
	message := "Need advice on a contract dispute"

	appointment := model.Appointment{
		ID:              "appt-1",
		UserID:          "user-1",
		OwnerName:       "Jane Doe",
		Phone:           "+14155551234",
		ContactEmail:    "jane@example.com",
		Message:         &message,
		AppointmentDate: time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC),
		AppointmentTime: "09:00:00", // as read back from a TIME column
		Status:          model.StatusConfirmed,
	}

	var res dto.AppointmentResponse
	res.FromModel(appointment)

	assert.Equal(t, "2024-06-10", res.AppointmentDate)
	assert.Equal(t, "09:00", res.AppointmentTime)
	assert.Equal(t, "jane@example.com", res.ContactEmail)
	assert.Equal(t, message, res.Message)
}

func TestAppointmentResponse_FromModel_NoMessage(t *testing.T) {
	appointment := model.Appointment{
		ID:              "appt-1",
		ContactEmail:    "jane@example.com",
		AppointmentDate: time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC),
		AppointmentTime: "09:00",
	}

	var res dto.AppointmentResponse
	res.FromModel(appointment)

	assert.Empty(t, res.Message)
}

func TestGetAppointmentsResponse_FromModels(t *testing.T) {
	models := []model.Appointment{
		{ID: "appt-1", AppointmentDate: time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC), AppointmentTime: "09:00"},
		{ID: "appt-2", AppointmentDate: time.Date(2024, 6, 11, 0, 0, 0, 0, time.UTC), AppointmentTime: "10:00"},
	}

	var res dto.GetAppointmentsResponse
	res.FromModels(models, 2, 10)

	assert.Len(t, res.Appointments, 2)
	assert.Equal(t, 2, res.TotalData)
	assert.Equal(t, 1, res.TotalPage)
}

func TestBookingConfirmedEvent_FromModel(t *testing.T) {
	message := "Need advice on a contract dispute"

	appointment := model.Appointment{
		ID:              "appt-1",
		UserID:          "user-1",
		OwnerName:       "Jane Doe",
		Phone:           "+14155551234",
		ContactEmail:    "jane@example.com",
		Message:         &message,
		AppointmentDate: time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC),
		AppointmentTime: "09:00",
	}

	var event dto.BookingConfirmedEvent
	event.FromModel(appointment)

	assert.Equal(t, "appt-1", event.AppointmentID)
	assert.Equal(t, "2024-06-10", event.AppointmentDate)
	assert.Equal(t, "jane@example.com", event.ContactEmail)
	assert.Equal(t, message, event.Message)
	assert.NotEmpty(t, event.ConfirmedAt)
}
