package model

import (
	"time"

	"lexdesk/shared/model"
)

const (
	TableName  = "appointments"
	EntityName = "appointment"

	FieldID              = "id"
	FieldUserID          = "user_id"
	FieldOwnerName       = "owner_name"
	FieldPhone           = "phone"
	FieldContactEmail    = "contact_email"
	FieldMessage         = "message"
	FieldAppointmentDate = "appointment_date"
	FieldAppointmentTime = "appointment_time"
	FieldStatus          = "status"

	StatusConfirmed = "confirmed"

	// UniqueSlotConstraint backs the slot uniqueness guarantee. A violation of
	// this constraint is the authoritative signal that a slot is taken.
	UniqueSlotConstraint = "appointments_user_slot_key"
)

type Appointment struct {
	ID              string    `db:"id"`
	UserID          string    `db:"user_id"`
	OwnerName       string    `db:"owner_name"`
	Phone           string    `db:"phone"`
	ContactEmail    string    `db:"contact_email"`
	Message         *string   `db:"message"`
	AppointmentDate time.Time `db:"appointment_date"`
	AppointmentTime string    `db:"appointment_time"`
	Status          string    `db:"status"`
	model.Metadata
}
