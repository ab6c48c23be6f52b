package dto

import (
	"time"

	"github.com/google/uuid"

	"lexdesk/internal/domains/chat/model"
	"lexdesk/shared/constant"
	gModel "lexdesk/shared/model"
	"lexdesk/shared/timezone"
)

type AskRequest struct {
	Question string `json:"question" validate:"required,max=2000"`
}

func (r *AskRequest) ToModel(userID, answer string, now time.Time) model.ChatHistory {
	return model.ChatHistory{
		ID:       uuid.NewString(),
		UserID:   userID,
		Question: r.Question,
		Answer:   answer,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  userID,
			ModifiedBy: userID,
		},
	}
}

type AskResponse struct {
	Answer string `json:"answer"`
}

type ChatMessageResponse struct {
	ID        string `json:"id"`
	Question  string `json:"question"`
	Answer    string `json:"answer"`
	CreatedAt string `json:"created_at"`
}

func (c *ChatMessageResponse) FromModel(history model.ChatHistory) {
	c.ID = history.ID
	c.Question = history.Question
	c.Answer = history.Answer
	c.CreatedAt = timezone.Format(history.CreatedAt, constant.DateFormat)
}

type GetHistoryResponse struct {
	Messages  []ChatMessageResponse `json:"messages"`
	TotalData int                   `json:"total_data"`
}

func (g *GetHistoryResponse) FromModels(models []model.ChatHistory) {
	g.Messages = make([]ChatMessageResponse, 0, len(models))
	g.TotalData = len(models)

	for _, history := range models {
		var message ChatMessageResponse
		message.FromModel(history)

		g.Messages = append(g.Messages, message)
	}
}
