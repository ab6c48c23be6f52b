package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"lexdesk/config"
	"lexdesk/infras/otel"
	"lexdesk/internal/domains/user/model"
	"lexdesk/internal/domains/user/model/dto"
	"lexdesk/internal/domains/user/repository"
	"lexdesk/shared"
	"lexdesk/shared/cache"
	"lexdesk/shared/constant"
	"lexdesk/shared/failure"
)

const (
	cacheGetUser = "user:get"
)

type User interface {
	GetProfile(ctx context.Context, userID string) (dto.UserResponse, error)
	UpdateProfile(ctx context.Context, req dto.UpdateUserRequest, userID string) error
}

type serviceImpl struct {
	repo  repository.User
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.User, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) User {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) GetProfile(ctx context.Context, userID string) (res dto.UserResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetProfile")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetUser, userID)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for user profile")

		return res, nil
	}

	user, err := s.repo.Get(ctx, shared.FilterByID(userID, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return res, fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == constant.Empty {
		return res, failure.NotFound("user not found") // nolint:wrapcheck
	}

	res.FromModel(user)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save user profile to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) UpdateProfile(ctx context.Context, req dto.UpdateUserRequest, userID string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateProfile")
	defer scope.End()

	if req == (dto.UpdateUserRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	username, _ := ctx.Value(constant.ContextKeyUsername).(string)
	filter := shared.FilterByID(userID, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if user exists")

		return fmt.Errorf("failed to check if user exists: %w", err)
	}

	if !exist {
		return failure.NotFound("user not found") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, username)
	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update user")

		return fmt.Errorf("failed to update user: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetUser, userID)); err != nil {
			log.Error().Err(err).Msg("failed to delete user profile from cache")
		}
	}()

	return nil
}
