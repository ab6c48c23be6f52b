package dto

import (
	"time"

	"github.com/google/uuid"

	"lexdesk/infras/jwt"
	userModel "lexdesk/internal/domains/user/model"
	"lexdesk/shared/constant"
	gModel "lexdesk/shared/model"
)

type RegisterRequest struct {
	Username        string `json:"username"         validate:"required,min=3,max=50"`
	Email           string `json:"email"            validate:"required,email"`
	Password        string `json:"password"         validate:"required,min=8"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=Password"`
	FirstName       string `json:"first_name"       validate:"required,max=100"`
	LastName        string `json:"last_name"        validate:"required,max=100"`
	DateOfBirth     string `json:"date_of_birth"    validate:"required"`
	Nationality     string `json:"nationality"      validate:"required,max=100"`
	Phone           string `json:"phone"            validate:"required,intlphone"`
	Address         string `json:"address"          validate:"omitempty,max=255"`
}

// ParseDateOfBirth returns the applicant's birth date.
func (r *RegisterRequest) ParseDateOfBirth() (time.Time, error) {
	return time.Parse(constant.CalendarDayFormat, r.DateOfBirth)
}

func (r *RegisterRequest) ToUserModel(hashedPassword string, dateOfBirth, now time.Time) userModel.User {
	var address *string
	if r.Address != "" {
		address = &r.Address
	}

	return userModel.User{
		ID:          uuid.NewString(),
		Username:    r.Username,
		Email:       r.Email,
		Password:    hashedPassword,
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		DateOfBirth: dateOfBirth,
		Nationality: r.Nationality,
		Phone:       r.Phone,
		Address:     address,
		Level:       constant.RoleClient,
		Active:      true,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  constant.ContextSystem,
			ModifiedBy: constant.ContextSystem,
		},
	}
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type UpdateLastLoginRequest struct {
	LastLogin time.Time `db:"last_login" json:"last_login" validate:"required"`
}

type LoginResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

func (l *LoginResponse) FromTokenPair(tokenPair *jwt.TokenPair) {
	l.AccessToken = tokenPair.AccessToken
	l.RefreshToken = tokenPair.RefreshToken
	l.ExpiresIn = tokenPair.ExpiresIn
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type RefreshTokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

func (r *RefreshTokenResponse) FromTokenPair(tokenPair *jwt.TokenPair) {
	r.AccessToken = tokenPair.AccessToken
	r.RefreshToken = tokenPair.RefreshToken
	r.ExpiresIn = tokenPair.ExpiresIn
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password"     validate:"required,min=8"`
}

type UpdatePasswordRequest struct {
	Password string `db:"password" json:"password" validate:"required,min=8"`
}
