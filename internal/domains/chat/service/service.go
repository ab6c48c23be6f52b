package service

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/rs/zerolog/log"

	"lexdesk/config"
	"lexdesk/infras/assistant"
	"lexdesk/infras/otel"
	"lexdesk/infras/s3"
	"lexdesk/internal/domains/chat/model"
	"lexdesk/internal/domains/chat/model/dto"
	"lexdesk/internal/domains/chat/repository"
	"lexdesk/shared/constant"
	"lexdesk/shared/timezone"
)

const (
	// historyLimit caps how many exchanges the History endpoint returns.
	historyLimit = 50

	systemPromptTemplate = "You are a legal assistant for a law firm. Answer questions " +
		"using only the reference material below. If the material does not cover the " +
		"question, say so and suggest booking an appointment with one of our lawyers.\n\n" +
		"Reference material:\n%s"
)

type Chat interface {
	Ask(ctx context.Context, req dto.AskRequest, userID string) (dto.AskResponse, error)
	GetHistory(ctx context.Context, userID string) (dto.GetHistoryResponse, error)
	ClearHistory(ctx context.Context, userID string) error
}

type serviceImpl struct {
	repo      repository.Chat
	cfg       *config.Config
	s3        s3.S3
	assistant assistant.Assistant
	otel      otel.Otel
	clock     timezone.Clock

	knowledgeOnce sync.Once
	knowledge     string
}

func New(repo repository.Chat, cfg *config.Config, s3Client s3.S3, assistantClient assistant.Assistant, otel otel.Otel, clock timezone.Clock) Chat {
	return &serviceImpl{
		repo:      repo,
		cfg:       cfg,
		s3:        s3Client,
		assistant: assistantClient,
		otel:      otel,
		clock:     clock,
	}
}

// Ask sends the user's question to the assistant together with the firm's
// knowledge base and the user's recent conversation, then stores the exchange.
func (s *serviceImpl) Ask(ctx context.Context, req dto.AskRequest, userID string) (res dto.AskResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Ask")
	defer scope.End()
	defer scope.TraceIfError(err)

	knowledge := s.loadKnowledge(ctx)

	history, err := s.repo.GetRecentByUser(ctx, userID, s.cfg.Assistant.HistoryWindow)
	if err != nil {
		log.Error().Err(err).Msg("failed to load chat history")

		return res, fmt.Errorf("failed to load chat history: %w", err)
	}

	messages := buildMessages(knowledge, history, req.Question)

	answer, err := s.assistant.Complete(ctx, messages)
	if err != nil {
		log.Error().Err(err).Msg("failed to get assistant reply")

		return res, fmt.Errorf("failed to get assistant reply: %w", err)
	}

	exchange := req.ToModel(userID, answer, s.clock.Now())

	if err = s.repo.Insert(ctx, exchange); err != nil {
		log.Error().Err(err).Msg("failed to store chat exchange")

		return res, fmt.Errorf("failed to store chat exchange: %w", err)
	}

	res.Answer = answer

	return res, nil
}

// GetHistory returns the user's recent exchanges, newest first.
func (s *serviceImpl) GetHistory(ctx context.Context, userID string) (res dto.GetHistoryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetHistory")
	defer scope.End()
	defer scope.TraceIfError(err)

	history, err := s.repo.GetRecentByUser(ctx, userID, historyLimit)
	if err != nil {
		log.Error().Err(err).Msg("failed to get chat history")

		return res, fmt.Errorf("failed to get chat history: %w", err)
	}

	res.FromModels(history)

	return res, nil
}

// ClearHistory removes the user's entire conversation.
func (s *serviceImpl) ClearHistory(ctx context.Context, userID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ClearHistory")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.repo.DeleteByUser(ctx, userID); err != nil {
		log.Error().Err(err).Msg("failed to clear chat history")

		return fmt.Errorf("failed to clear chat history: %w", err)
	}

	return nil
}

// loadKnowledge fetches the knowledge base once per process, preferring the
// object store copy and falling back to the bundled file. A missing knowledge
// base degrades the answers but never blocks them.
func (s *serviceImpl) loadKnowledge(ctx context.Context) string {
	s.knowledgeOnce.Do(func() {
		knowledgeCfg := s.cfg.Assistant.Knowledge

		if knowledgeCfg.Bucket != constant.Empty && knowledgeCfg.Key != constant.Empty {
			data, err := s.s3.FetchObject(ctx, knowledgeCfg.Bucket, knowledgeCfg.Key)
			if err == nil {
				s.knowledge = string(data)

				return
			}

			log.Warn().Err(err).Msg("failed to fetch knowledge base from object store, falling back to local file")
		}

		data, err := os.ReadFile(knowledgeCfg.File)
		if err != nil {
			log.Warn().Err(err).Str("file", knowledgeCfg.File).Msg("failed to read knowledge file, answering without reference material")

			return
		}

		s.knowledge = string(data)
	})

	return s.knowledge
}

// buildMessages assembles the completion prompt: the system instructions,
// the recent exchanges in chronological order, then the new question.
func buildMessages(knowledge string, history []model.ChatHistory, question string) []assistant.Message {
	messages := make([]assistant.Message, 0, len(history)*2+2)

	messages = append(messages, assistant.Message{
		Role:    assistant.RoleSystem,
		Content: fmt.Sprintf(systemPromptTemplate, knowledge),
	})

	// history arrives newest first
	for i := len(history) - 1; i >= 0; i-- {
		messages = append(messages,
			assistant.Message{Role: assistant.RoleUser, Content: history[i].Question},
			assistant.Message{Role: assistant.RoleAssistant, Content: history[i].Answer},
		)
	}

	messages = append(messages, assistant.Message{Role: assistant.RoleUser, Content: question})

	return messages
}
