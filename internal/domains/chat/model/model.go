package model

import (
	"lexdesk/shared/model"
)

const (
	TableName  = "chat_history"
	EntityName = "chat_history"

	FieldID       = "id"
	FieldUserID   = "user_id"
	FieldQuestion = "question"
	FieldAnswer   = "answer"
)

type ChatHistory struct {
	ID       string `db:"id"`
	UserID   string `db:"user_id"`
	Question string `db:"question"`
	Answer   string `db:"answer"`
	model.Metadata
}
