package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"reflect"
	"strings"

	"goldentower/infras/otel"
	"goldentower/infras/postgres"
	"goldentower/internal/domains/booking/model"
	"goldentower/shared/constant"
	gDto "goldentower/shared/dto"
	"goldentower/shared/logger"
	gRepo "goldentower/shared/repository"
)

type Booking interface {
	Insert(ctx context.Context, model model.Booking) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error

	// InsertPending persists a new pending booking only while the identity
	// holds fewer than cap pending bookings. The count and the insert run in
	// one statement so concurrent submissions cannot both slip under the cap.
	// Returns false without error when the cap is already reached.
	InsertPending(ctx context.Context, booking model.Booking, identityField, identityValue string, pendingCap int) (bool, error)

	GetView(ctx context.Context, filter gDto.FilterGroup) (model.View, error)
	GetAllViews(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.View, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	views gRepo.Repository[model.View]
	db    *postgres.Connection
	otel  otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		views:      gRepo.NewRepository[model.View](model.EntityName+"_view", model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (repo *repositoryImpl) InsertPending(ctx context.Context, booking model.Booking, identityField, identityValue string, pendingCap int) (inserted bool, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.InsertPending")
	defer scope.End()
	defer scope.TraceIfError(err)

	placeholders := make([]string, len(repo.InsertColumns))
	for i, col := range repo.InsertColumns {
		placeholders[i] = ":" + col
	}

	query := fmt.Sprintf(
		`INSERT INTO %s (%s)
		SELECT %s
		WHERE (
			SELECT COUNT(*) FROM %s
			WHERE %s = :identity_value AND %s = :pending_status AND %s IS NULL
		) < :pending_cap`,
		model.TableName,
		strings.Join(repo.InsertColumns, ", "),
		strings.Join(placeholders, ", "),
		model.TableName,
		identityField,
		model.FieldStatus,
		model.FieldDeletedAt,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	args := bindArgs(booking)
	args["identity_value"] = identityValue
	args["pending_status"] = string(model.StatusPending)
	args["pending_cap"] = pendingCap

	result, err := repo.db.Write.NamedExecContext(ctx, query, args)
	if err != nil {
		logger.ErrorWithStack(err)

		return false, fmt.Errorf("failed to insert pending booking: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		logger.ErrorWithStack(err)

		return false, fmt.Errorf("failed to read insert result: %w", err)
	}

	return affected == 1, nil
}

// bindArgs flattens the booking into named-exec arguments keyed by db tag so
// extra parameters can ride along in the same statement.
func bindArgs(booking model.Booking) map[string]any {
	args := map[string]any{}
	collectArgs(reflect.ValueOf(booking), args)

	return args
}

func collectArgs(value reflect.Value, args map[string]any) {
	valueType := value.Type()

	for i := range valueType.NumField() {
		field := valueType.Field(i)

		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			collectArgs(value.Field(i), args)

			continue
		}

		tag := field.Tag.Get("db")
		if tag == "" {
			continue
		}

		args[tag] = value.Field(i).Interface()
	}
}

func (repo *repositoryImpl) GetView(ctx context.Context, filter gDto.FilterGroup) (model.View, error) {
	return repo.views.Get(ctx, filter) //nolint:wrapcheck
}

func (repo *repositoryImpl) GetAllViews(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.View, error) {
	return repo.views.GetAll(ctx, params, filter) //nolint:wrapcheck
}
