package health

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"lexdesk/infras/postgres"
	"lexdesk/transport/http/response"
)

type Handler struct {
	db *postgres.Connection
}

func New(db *postgres.Connection) Handler {
	return Handler{db: db}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/health", handler.Health)
}

// Health reports whether the service and its database are reachable.
// @Summary Health check
// @Description Report service and database health.
// @Tags Health
// @Produce json
// @Success 200 {object} response.Message "Service healthy"
// @Failure 503 {object} response.Message "Service unhealthy"
// @Router /health [get]
func (handler *Handler) Health(writer http.ResponseWriter, request *http.Request) {
	if err := handler.db.Read.PingContext(request.Context()); err != nil {
		response.WithUnhealthy(writer)

		return
	}

	if err := handler.db.Write.PingContext(request.Context()); err != nil {
		response.WithUnhealthy(writer)

		return
	}

	response.WithMessage(writer, http.StatusOK, "OK")
}
