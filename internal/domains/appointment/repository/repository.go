package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"lexdesk/infras/otel"
	"lexdesk/infras/postgres"
	"lexdesk/internal/domains/appointment/model"
	"lexdesk/shared/constant"
	gDto "lexdesk/shared/dto"
	"lexdesk/shared/logger"
	gRepo "lexdesk/shared/repository"
)

type Appointment interface {
	Insert(ctx context.Context, model model.Appointment) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Appointment, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Appointment, error)
	GetByUser(ctx context.Context, userID string) ([]model.Appointment, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Appointment]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Appointment {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Appointment](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// GetByUser returns the user's appointments ordered chronologically, earliest
// slot first.
func (repo *repositoryImpl) GetByUser(ctx context.Context, userID string) (appointments []model.Appointment, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".appointment.GetByUser")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := fmt.Sprintf(
		"SELECT * FROM %s WHERE %s = $1 ORDER BY %s, %s",
		model.TableName,
		model.FieldUserID,
		model.FieldAppointmentDate,
		model.FieldAppointmentTime,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	err = repo.db.Read.SelectContext(ctx, &appointments, query, userID)
	if err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to get appointments by user: %w", err)
	}

	return appointments, nil
}
