package model

import (
	"time"

	"lexdesk/shared/model"
)

const (
	TableName  = "users"
	EntityName = "user"

	FieldID          = "id"
	FieldUsername    = "username"
	FieldEmail       = "email"
	FieldPassword    = "password"
	FieldFirstName   = "first_name"
	FieldLastName    = "last_name"
	FieldDateOfBirth = "date_of_birth"
	FieldNationality = "nationality"
	FieldPhone       = "phone"
	FieldAddress     = "address"
	FieldLevel       = "level"
	FieldActive      = "active"
	FieldLastLogin   = "last_login"
)

type User struct {
	ID          string     `db:"id"`
	Username    string     `db:"username"`
	Email       string     `db:"email"`
	Password    string     `db:"password"`
	FirstName   string     `db:"first_name"`
	LastName    string     `db:"last_name"`
	DateOfBirth time.Time  `db:"date_of_birth"`
	Nationality string     `db:"nationality"`
	Phone       string     `db:"phone"`
	Address     *string    `db:"address"`
	Level       string     `db:"level"`
	Active      bool       `db:"active"`
	LastLogin   *time.Time `db:"last_login"`
	model.Metadata
}
