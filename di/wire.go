//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"lexdesk/config"
	"lexdesk/infras/assistant"
	"lexdesk/infras/jwt"
	"lexdesk/infras/kafka"
	"lexdesk/infras/otel"
	"lexdesk/infras/postgres"
	"lexdesk/infras/redis"
	"lexdesk/infras/s3"
	"lexdesk/permissions"
	"lexdesk/shared/cache"
	"lexdesk/shared/timezone"
	"lexdesk/transport/http"
	"lexdesk/transport/http/middleware"
	"lexdesk/transport/http/router"

	appointmentRepository "lexdesk/internal/domains/appointment/repository"
	appointmentService "lexdesk/internal/domains/appointment/service"
	authService "lexdesk/internal/domains/auth/service"
	chatRepository "lexdesk/internal/domains/chat/repository"
	chatService "lexdesk/internal/domains/chat/service"
	userRepository "lexdesk/internal/domains/user/repository"
	userService "lexdesk/internal/domains/user/service"

	appointmentHandler "lexdesk/internal/handlers/appointment"
	authHandler "lexdesk/internal/handlers/auth"
	chatHandler "lexdesk/internal/handlers/chat"
	healthHandler "lexdesk/internal/handlers/health"
	userHandler "lexdesk/internal/handlers/user"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
	s3.New,
	assistant.New,
	timezone.SystemClock,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var authDomain = wire.NewSet(
	userRepository.New,
	authService.New,
)

var userDomain = wire.NewSet(
	userService.New,
)

var appointmentDomain = wire.NewSet(
	appointmentRepository.New,
	appointmentService.New,
)

var chatDomain = wire.NewSet(
	chatRepository.New,
	chatService.New,
)

var domains = wire.NewSet(
	authDomain,
	userDomain,
	appointmentDomain,
	chatDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	healthHandler.New,
	authHandler.New,
	userHandler.New,
	appointmentHandler.New,
	chatHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
