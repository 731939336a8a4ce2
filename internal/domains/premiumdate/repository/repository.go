package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"time"

	"courtbook/infras/otel"
	"courtbook/infras/postgres"
	"courtbook/internal/domains/premiumdate/model"
	"courtbook/internal/schedule"
	gDto "courtbook/shared/dto"
	gRepo "courtbook/shared/repository"

	sq "github.com/Masterminds/squirrel"
)

type PremiumDate interface {
	Insert(ctx context.Context, model model.PremiumDate) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.PremiumDate, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.PremiumDate, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	ListBetween(ctx context.Context, from, to time.Time) ([]model.PremiumDate, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.PremiumDate]
}

func New(db *postgres.Connection, otel otel.Otel) PremiumDate {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.PremiumDate](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}

// ListBetween returns the overrides dated within [from, to], oldest entry first so a
// duplicated month resolves to the same row every time.
func (r *repositoryImpl) ListBetween(ctx context.Context, from, to time.Time) ([]model.PremiumDate, error) {
	query := gRepo.Builder.
		Select(r.Columns()...).
		From(model.TableName).
		Where(sq.And{
			sq.GtOrEq{model.TableName + "." + model.FieldDate: schedule.FormatDate(from)},
			sq.LtOrEq{model.TableName + "." + model.FieldDate: schedule.FormatDate(to)},
		}).
		OrderBy(model.TableName+".created_at", model.TableName+".id")

	res := []model.PremiumDate{}
	if err := r.Select(ctx, &res, query); err != nil {
		return nil, err
	}

	return res, nil
}
