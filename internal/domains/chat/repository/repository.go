package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"lexdesk/infras/otel"
	"lexdesk/infras/postgres"
	"lexdesk/internal/domains/chat/model"
	"lexdesk/shared/constant"
	gDto "lexdesk/shared/dto"
	"lexdesk/shared/logger"
	gRepo "lexdesk/shared/repository"
)

type Chat interface {
	Insert(ctx context.Context, model model.ChatHistory) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.ChatHistory, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.ChatHistory, error)
	GetRecentByUser(ctx context.Context, userID string, limit int) ([]model.ChatHistory, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	DeleteByUser(ctx context.Context, userID string) error
}

type repositoryImpl struct {
	gRepo.Repository[model.ChatHistory]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Chat {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.ChatHistory](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// GetRecentByUser returns the user's most recent exchanges, newest first.
func (repo *repositoryImpl) GetRecentByUser(ctx context.Context, userID string, limit int) (history []model.ChatHistory, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".chat_history.GetRecentByUser")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := fmt.Sprintf(
		"SELECT * FROM %s WHERE %s = $1 ORDER BY created_at DESC LIMIT $2",
		model.TableName,
		model.FieldUserID,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	err = repo.db.Read.SelectContext(ctx, &history, query, userID, limit)
	if err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to get chat history by user: %w", err)
	}

	return history, nil
}

// DeleteByUser removes the user's entire conversation history.
func (repo *repositoryImpl) DeleteByUser(ctx context.Context, userID string) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".chat_history.DeleteByUser")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := fmt.Sprintf("DELETE FROM %s WHERE %s = $1", model.TableName, model.FieldUserID)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	_, err = repo.db.Write.ExecContext(ctx, query, userID)
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to delete chat history by user: %w", err)
	}

	return nil
}
