package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"lexdesk/config"
	"lexdesk/infras/jwt"
	jwtMocks "lexdesk/infras/jwt/mocks"
	"lexdesk/infras/otel/mocks"
	"lexdesk/internal/domains/auth/model/dto"
	"lexdesk/internal/domains/auth/service"
	userMocks "lexdesk/internal/domains/user/mocks"
	userModel "lexdesk/internal/domains/user/model"
	"lexdesk/shared/failure"
	"lexdesk/shared/password"
)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

func authConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Scheduler.MinimumAge = 18

	return cfg
}

func validRegisterRequest() dto.RegisterRequest {
	return dto.RegisterRequest{
		Username:        "janedoe",
		Email:           "jane@example.com",
		Password:        "secret-password",
		ConfirmPassword: "secret-password",
		FirstName:       "Jane",
		LastName:        "Doe",
		DateOfBirth:     "1990-05-20",
		Nationality:     "Dutch",
		Phone:           "+14155551234",
	}
}

func TestAuthService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := userMocks.NewMockUser(ctrl)
	mockJWT := jwtMocks.NewMockJWT(ctrl)
	mockOtel := mocks.NewOtel()

	clock := fixedClock{now: time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)}

	svc := service.New(mockUserRepo, authConfig(), mockOtel, mockJWT, clock)

	tests := []struct {
		name      string
		mutate    func(req *dto.RegisterRequest)
		setupMock func()
		wantCode  int
	}{
		{
			name:   "success",
			mutate: func(req *dto.RegisterRequest) {},
			setupMock: func() {
				mockUserRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				mockUserRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, user userModel.User) error {
						assert.Equal(t, "janedoe", user.Username)
						assert.NoError(t, password.Verify("secret-password", user.Password))
						assert.True(t, user.Active)
						assert.True(t, user.CreatedAt.Equal(clock.now))

						return nil
					},
				)
			},
		},
		{
			name: "malformed date of birth",
			mutate: func(req *dto.RegisterRequest) {
				req.DateOfBirth = "20-05-1990"
			},
			wantCode: 400,
		},
		{
			name: "underage applicant",
			mutate: func(req *dto.RegisterRequest) {
				req.DateOfBirth = "2006-06-02" // turns 18 the day after the fixed clock
			},
			wantCode: 422,
		},
		{
			name: "exactly at the minimum age",
			mutate: func(req *dto.RegisterRequest) {
				req.DateOfBirth = "2006-06-01"
			},
			setupMock: func() {
				mockUserRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				mockUserRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name:   "username or email already registered",
			mutate: func(req *dto.RegisterRequest) {},
			setupMock: func() {
				mockUserRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
			},
			wantCode: 409,
		},
		{
			name:   "existence check failure",
			mutate: func(req *dto.RegisterRequest) {},
			setupMock: func() {
				mockUserRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, errors.New("connection refused"))
			},
			wantCode: 500,
		},
		{
			name:   "insert failure",
			mutate: func(req *dto.RegisterRequest) {},
			setupMock: func() {
				mockUserRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				mockUserRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("database error"))
			},
			wantCode: 500,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.setupMock != nil {
				tt.setupMock()
			}

			req := validRegisterRequest()
			tt.mutate(&req)

			err := svc.Register(context.Background(), req)

			if tt.wantCode != 0 {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	hashedPassword, err := password.Hash("secret-password")
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	activeUser := userModel.User{
		ID:       "user-1",
		Username: "janedoe",
		Email:    "jane@example.com",
		Password: hashedPassword,
		Level:    "client",
		Active:   true,
	}

	tokenPair := &jwt.TokenPair{
		AccessToken:  "access-token",
		RefreshToken: "refresh-token",
		ExpiresIn:    900,
	}

	tests := []struct {
		name      string
		req       dto.LoginRequest
		setupMock func(mockUserRepo *userMocks.MockUser, mockJWT *jwtMocks.MockJWT)
		wantCode  int
	}{
		{
			name: "success",
			req:  dto.LoginRequest{Username: "janedoe", Password: "secret-password"},
			setupMock: func(mockUserRepo *userMocks.MockUser, mockJWT *jwtMocks.MockJWT) {
				mockUserRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(activeUser, nil)
				mockJWT.EXPECT().GenerateTokenPair("user-1", "janedoe", "jane@example.com", "client").Return(tokenPair, nil)
				mockUserRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "unknown username",
			req:  dto.LoginRequest{Username: "nobody", Password: "secret-password"},
			setupMock: func(mockUserRepo *userMocks.MockUser, mockJWT *jwtMocks.MockJWT) {
				mockUserRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(userModel.User{}, nil)
			},
			wantCode: 401,
		},
		{
			name: "wrong password",
			req:  dto.LoginRequest{Username: "janedoe", Password: "not-the-password"},
			setupMock: func(mockUserRepo *userMocks.MockUser, mockJWT *jwtMocks.MockJWT) {
				mockUserRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(activeUser, nil)
			},
			wantCode: 401,
		},
		{
			name: "deactivated account",
			req:  dto.LoginRequest{Username: "janedoe", Password: "secret-password"},
			setupMock: func(mockUserRepo *userMocks.MockUser, mockJWT *jwtMocks.MockJWT) {
				inactive := activeUser
				inactive.Active = false
				mockUserRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(inactive, nil)
			},
			wantCode: 401,
		},
		{
			name: "repository failure",
			req:  dto.LoginRequest{Username: "janedoe", Password: "secret-password"},
			setupMock: func(mockUserRepo *userMocks.MockUser, mockJWT *jwtMocks.MockJWT) {
				mockUserRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(userModel.User{}, errors.New("database error"))
			},
			wantCode: 500,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockUserRepo := userMocks.NewMockUser(ctrl)
			mockJWT := jwtMocks.NewMockJWT(ctrl)
			mockOtel := mocks.NewOtel()

			clock := fixedClock{now: time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)}

			svc := service.New(mockUserRepo, authConfig(), mockOtel, mockJWT, clock)

			tt.setupMock(mockUserRepo, mockJWT)

			res, err := svc.Login(context.Background(), tt.req)

			if tt.wantCode != 0 {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, "access-token", res.AccessToken)
			assert.Equal(t, "refresh-token", res.RefreshToken)
			assert.Equal(t, int64(900), res.ExpiresIn)
		})
	}
}

func TestAuthService_RefreshToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := userMocks.NewMockUser(ctrl)
	mockJWT := jwtMocks.NewMockJWT(ctrl)
	mockOtel := mocks.NewOtel()

	clock := fixedClock{now: time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)}

	svc := service.New(mockUserRepo, authConfig(), mockOtel, mockJWT, clock)

	t.Run("success", func(t *testing.T) {
		mockJWT.EXPECT().RefreshTokens("old-refresh-token").Return(&jwt.TokenPair{
			AccessToken:  "new-access-token",
			RefreshToken: "new-refresh-token",
			ExpiresIn:    900,
		}, nil)

		res, err := svc.RefreshToken(context.Background(), dto.RefreshTokenRequest{RefreshToken: "old-refresh-token"})

		assert.NoError(t, err)
		assert.Equal(t, "new-access-token", res.AccessToken)
		assert.Equal(t, "new-refresh-token", res.RefreshToken)
	})

	t.Run("invalid refresh token", func(t *testing.T) {
		mockJWT.EXPECT().RefreshTokens("tampered").Return(nil, errors.New("invalid token"))

		_, err := svc.RefreshToken(context.Background(), dto.RefreshTokenRequest{RefreshToken: "tampered"})

		assert.Error(t, err)
		assert.Equal(t, 401, failure.GetCode(err))
	})
}

func TestAuthService_ChangePassword(t *testing.T) {
	hashedPassword, err := password.Hash("current-password")
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := userModel.User{
		ID:       "user-1",
		Username: "janedoe",
		Password: hashedPassword,
		Active:   true,
	}

	tests := []struct {
		name      string
		req       dto.ChangePasswordRequest
		setupMock func(mockUserRepo *userMocks.MockUser)
		wantCode  int
	}{
		{
			name: "success",
			req:  dto.ChangePasswordRequest{CurrentPassword: "current-password", NewPassword: "next-password"},
			setupMock: func(mockUserRepo *userMocks.MockUser) {
				mockUserRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(user, nil)
				mockUserRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "wrong current password",
			req:  dto.ChangePasswordRequest{CurrentPassword: "not-the-password", NewPassword: "next-password"},
			setupMock: func(mockUserRepo *userMocks.MockUser) {
				mockUserRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(user, nil)
			},
			wantCode: 401,
		},
		{
			name: "user not found",
			req:  dto.ChangePasswordRequest{CurrentPassword: "current-password", NewPassword: "next-password"},
			setupMock: func(mockUserRepo *userMocks.MockUser) {
				mockUserRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(userModel.User{}, nil)
			},
			wantCode: 404,
		},
		{
			name: "update failure",
			req:  dto.ChangePasswordRequest{CurrentPassword: "current-password", NewPassword: "next-password"},
			setupMock: func(mockUserRepo *userMocks.MockUser) {
				mockUserRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(user, nil)
				mockUserRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("database error"))
			},
			wantCode: 500,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockUserRepo := userMocks.NewMockUser(ctrl)
			mockJWT := jwtMocks.NewMockJWT(ctrl)
			mockOtel := mocks.NewOtel()

			clock := fixedClock{now: time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)}

			svc := service.New(mockUserRepo, authConfig(), mockOtel, mockJWT, clock)

			tt.setupMock(mockUserRepo)

			err := svc.ChangePassword(context.Background(), tt.req, "user-1")

			if tt.wantCode != 0 {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
		})
	}
}
