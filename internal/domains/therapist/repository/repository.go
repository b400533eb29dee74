package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"goldentower/infras/otel"
	"goldentower/infras/postgres"
	"goldentower/internal/domains/therapist/model"
	gDto "goldentower/shared/dto"
	gRepo "goldentower/shared/repository"
)

type Therapist interface {
	Insert(ctx context.Context, model model.Therapist) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Therapist, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Therapist, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error

	InsertBlockout(ctx context.Context, blockout model.Blockout) error
	GetBlockouts(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.Blockout, error)
	BlockoutExist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	DeleteBlockout(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Therapist]
	blockouts gRepo.Repository[model.Blockout]
	db        *postgres.Connection
	otel      otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Therapist {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Therapist](model.EntityName, model.TableName, model.FieldID, db, otel),
		blockouts:  gRepo.NewRepository[model.Blockout](model.BlockoutEntityName, model.BlockoutTableName, model.BlockoutFieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (repo *repositoryImpl) InsertBlockout(ctx context.Context, blockout model.Blockout) error {
	return repo.blockouts.Insert(ctx, blockout) //nolint:wrapcheck
}

func (repo *repositoryImpl) GetBlockouts(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.Blockout, error) {
	return repo.blockouts.GetAll(ctx, params, filter) //nolint:wrapcheck
}

func (repo *repositoryImpl) BlockoutExist(ctx context.Context, filter gDto.FilterGroup) (bool, error) {
	return repo.blockouts.Exist(ctx, filter) //nolint:wrapcheck
}

func (repo *repositoryImpl) DeleteBlockout(ctx context.Context, filter gDto.FilterGroup) error {
	return repo.blockouts.Delete(ctx, filter) //nolint:wrapcheck
}
