package router

import (
	"github.com/go-chi/chi/v5"

	"lexdesk/internal/handlers/appointment"
	"lexdesk/internal/handlers/auth"
	"lexdesk/internal/handlers/chat"
	"lexdesk/internal/handlers/health"
	"lexdesk/internal/handlers/user"
)

type DomainHandlers struct {
	Health      health.Handler
	Auth        auth.Handler
	User        user.Handler
	Appointment appointment.Handler
	Chat        chat.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	r.DomainHandlers.Health.Router(router)

	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.User.Router(routerGroup)
		r.DomainHandlers.Appointment.Router(routerGroup)
		r.DomainHandlers.Chat.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
