package chat

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"lexdesk/infras/otel"
	"lexdesk/internal/domains/chat/model/dto"
	"lexdesk/internal/domains/chat/service"
	"lexdesk/shared/constant"
	"lexdesk/shared/failure"
	"lexdesk/shared/validator"
	"lexdesk/transport/http/response"
)

type Handler struct {
	service service.Chat
	otel    otel.Otel
}

func New(service service.Chat, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/chat", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.Ask)
		routerGroup.Get("/history", handler.GetHistory)
		routerGroup.Delete("/history", handler.ClearHistory)
	})
}

// Ask sends a question to the legal assistant.
// @Summary Ask the assistant
// @Description Ask the legal assistant a question. The reply is grounded in the firm's knowledge base.
// @Tags Chat
// @Accept json
// @Produce json
// @Param request body dto.AskRequest true "Ask Request"
// @Success 200 {object} response.Data[dto.AskResponse] "Assistant reply"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/chat [post]
// @Security BearerAuth
func (handler *Handler) Ask(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Ask")
	defer scope.End()

	userID, ok := ctx.Value(constant.ContextKeyUserID).(string)
	if !ok || userID == "" {
		err := failure.Unauthorized("unauthorized")
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	req := dto.AskRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Ask(ctx, req, userID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get assistant reply")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// GetHistory lists the authenticated user's recent exchanges.
// @Summary Get chat history
// @Description Retrieve the current user's recent assistant exchanges, newest first.
// @Tags Chat
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.GetHistoryResponse] "Chat history"
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/chat/history [get]
// @Security BearerAuth
func (handler *Handler) GetHistory(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetHistory")
	defer scope.End()

	userID, ok := ctx.Value(constant.ContextKeyUserID).(string)
	if !ok || userID == "" {
		err := failure.Unauthorized("unauthorized")
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.GetHistory(ctx, userID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get chat history")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// ClearHistory removes the authenticated user's conversation history.
// @Summary Clear chat history
// @Description Delete the current user's entire conversation history.
// @Tags Chat
// @Accept json
// @Produce json
// @Success 200 {object} response.Message "Chat history cleared"
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/chat/history [delete]
// @Security BearerAuth
func (handler *Handler) ClearHistory(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ClearHistory")
	defer scope.End()

	userID, ok := ctx.Value(constant.ContextKeyUserID).(string)
	if !ok || userID == "" {
		err := failure.Unauthorized("unauthorized")
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	if err := handler.service.ClearHistory(ctx, userID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to clear chat history")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Chat history cleared by user " + userID)

	response.WithMessage(writer, http.StatusOK, "Chat history cleared")
}
