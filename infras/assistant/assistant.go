package assistant

//go:generate go run go.uber.org/mock/mockgen -source=./assistant.go -destination=./mocks/assistant_mock.go -package=mocks

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"lexdesk/config"
	"lexdesk/infras/otel"
	"lexdesk/shared/constant"
)

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"

	otelAttrModel = "assistant.model"

	completionsPath = "/chat/completions"
)

// Message is a single turn of a chat completion conversation.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Assistant is a chat completion client for an OpenAI-compatible API.
type Assistant interface {
	Complete(ctx context.Context, messages []Message) (reply string, err error)
}

type completionRequest struct {
	Model    string    `json:"model"`
	Messages []Message `json:"messages"`
}

type completionResponse struct {
	Choices []struct {
		Message Message `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error,omitempty"`
}

type assistantImpl struct {
	config     *config.Config
	httpClient *http.Client
	otel       otel.Otel
}

func New(cfg *config.Config, otl otel.Otel) Assistant {
	return &assistantImpl{
		config: cfg,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.Assistant.TimeoutSeconds) * time.Second,
		},
		otel: otl,
	}
}

// Complete implements Assistant.
func (a *assistantImpl) Complete(ctx context.Context, messages []Message) (reply string, err error) {
	ctx, scope := a.otel.NewScope(ctx, constant.OtelAssistantScope, constant.OtelAssistantScope+".Complete")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(otelAttrModel, a.config.Assistant.Model)

	payload, err := json.Marshal(completionRequest{
		Model:    a.config.Assistant.Model,
		Messages: messages,
	})
	if err != nil {
		return constant.Empty, fmt.Errorf("failed to marshal completion request: %w", err)
	}

	url := a.config.Assistant.BaseURL + completionsPath

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return constant.Empty, fmt.Errorf("failed to build completion request: %w", err)
	}

	req.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	req.Header.Set(constant.RequestHeaderAuthorization, "Bearer "+a.config.Assistant.APIKey)

	resp, err := a.httpClient.Do(req)
	if err != nil {
		log.Error().Err(err).Str("url", url).Msg("Failed to call assistant API")

		return constant.Empty, fmt.Errorf("failed to call assistant API: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return constant.Empty, fmt.Errorf("failed to read assistant response: %w", err)
	}

	var completion completionResponse
	if err = json.Unmarshal(body, &completion); err != nil {
		return constant.Empty, fmt.Errorf("failed to decode assistant response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		if completion.Error != nil {
			return constant.Empty, fmt.Errorf("assistant API error (%s): %s", completion.Error.Type, completion.Error.Message)
		}

		return constant.Empty, fmt.Errorf("assistant API returned status %d", resp.StatusCode)
	}

	if len(completion.Choices) == 0 {
		return constant.Empty, fmt.Errorf("assistant API returned no choices")
	}

	return completion.Choices[0].Message.Content, nil
}
