package dto

import (
	"lexdesk/internal/domains/user/model"
	"lexdesk/shared/constant"
	gDto "lexdesk/shared/dto"
	"lexdesk/shared/timezone"
)

type UserResponse struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	DateOfBirth string `json:"date_of_birth"`
	Nationality string `json:"nationality"`
	Phone       string `json:"phone"`
	Address     string `json:"address,omitempty"`
	Level       string `json:"level"`
	Active      bool   `json:"active"`
	LastLogin   string `json:"last_login,omitempty"`
	gDto.Metadata
}

func (r *UserResponse) FromModel(model model.User) {
	r.ID = model.ID
	r.Username = model.Username
	r.Email = model.Email
	r.FirstName = model.FirstName
	r.LastName = model.LastName
	r.DateOfBirth = model.DateOfBirth.Format(constant.CalendarDayFormat)
	r.Nationality = model.Nationality
	r.Phone = model.Phone
	r.Level = model.Level
	r.Active = model.Active

	if model.Address != nil {
		r.Address = *model.Address
	}

	if model.LastLogin != nil {
		r.LastLogin = timezone.Format(*model.LastLogin, constant.DateFormat)
	}

	r.Metadata.FromModel(model.Metadata)
}

type UpdateUserRequest struct {
	FirstName   string `db:"first_name"  json:"first_name"  validate:"omitempty,max=100"`
	LastName    string `db:"last_name"   json:"last_name"   validate:"omitempty,max=100"`
	Nationality string `db:"nationality" json:"nationality" validate:"omitempty,max=100"`
	Phone       string `db:"phone"       json:"phone"       validate:"omitempty,intlphone"`
	Address     string `db:"address"     json:"address"     validate:"omitempty,max=255"`
}
