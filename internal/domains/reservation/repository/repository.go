package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"time"

	"courtbook/infras/otel"
	"courtbook/infras/postgres"
	"courtbook/internal/domains/reservation/model"
	"courtbook/internal/schedule"
	gDto "courtbook/shared/dto"
	gRepo "courtbook/shared/repository"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

type Reservation interface {
	InsertTx(ctx context.Context, tx *sqlx.Tx, model model.Reservation) error
	WithTransaction(ctx context.Context, fn func(tx *sqlx.Tx) error) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Reservation, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Reservation, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error

	// IsSlotBooked reports whether a non-cancelled reservation holds the slot.
	IsSlotBooked(ctx context.Context, courtID string, date time.Time, start schedule.Clock) (bool, error)
	// ActiveOnCourt lists the non-cancelled reservations of a court on one date.
	ActiveOnCourt(ctx context.Context, courtID string, date time.Time) ([]model.Reservation, error)
	// ActiveByTenant lists a tenant's non-cancelled reservations on any court for the given dates.
	ActiveByTenant(ctx context.Context, tenantID string, dates []time.Time) ([]model.Reservation, error)
	// ActiveDaysByTenant lists the distinct dates, from onward, on which the tenant holds a slot.
	ActiveDaysByTenant(ctx context.Context, tenantID string, from time.Time) ([]time.Time, error)
	// WeeklyUsage counts a tenant's active reservations per week start, keyed by YYYY-MM-DD.
	WeeklyUsage(ctx context.Context, tenantID string, weeks []time.Time) (map[string]int, error)
	// CountActive counts a tenant's active reservations of one category dated within [from, to].
	// A zero to leaves the range open.
	CountActive(ctx context.Context, tenantID string, category schedule.BookingType, from, to time.Time) (int, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Reservation]
}

func New(db *postgres.Connection, otel otel.Otel) Reservation {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Reservation](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}

func column(field string) string {
	return model.TableName + "." + field
}

func active() sq.Sqlizer {
	return sq.NotEq{column(model.FieldStatus): string(model.StatusCancelled)}
}

func (r *repositoryImpl) selectJoined() sq.SelectBuilder {
	return gRepo.Builder.
		Select(r.Columns()...).
		From(model.TableName).
		Join(model.JoinCourts).
		Join(model.JoinTenants)
}

func (r *repositoryImpl) IsSlotBooked(ctx context.Context, courtID string, date time.Time, start schedule.Clock) (bool, error) {
	query := gRepo.Builder.
		Select("COUNT(1) > 0").
		From(model.TableName).
		Where(sq.Eq{
			column(model.FieldCourtID):     courtID,
			column(model.FieldBookingDate): schedule.FormatDate(date),
			column(model.FieldStartTime):   start,
		}).
		Where(active())

	var booked bool
	if err := r.Scalar(ctx, &booked, query); err != nil {
		return false, err
	}

	return booked, nil
}

func (r *repositoryImpl) ActiveOnCourt(ctx context.Context, courtID string, date time.Time) ([]model.Reservation, error) {
	query := r.selectJoined().
		Where(sq.Eq{
			column(model.FieldCourtID):     courtID,
			column(model.FieldBookingDate): schedule.FormatDate(date),
		}).
		Where(active()).
		OrderBy(column(model.FieldStartTime))

	res := []model.Reservation{}
	if err := r.Select(ctx, &res, query); err != nil {
		return nil, err
	}

	return res, nil
}

func (r *repositoryImpl) ActiveByTenant(ctx context.Context, tenantID string, dates []time.Time) ([]model.Reservation, error) {
	res := []model.Reservation{}
	if len(dates) == 0 {
		return res, nil
	}

	days := make([]string, len(dates))
	for i, date := range dates {
		days[i] = schedule.FormatDate(date)
	}

	query := r.selectJoined().
		Where(sq.Eq{
			column(model.FieldTenantID):    tenantID,
			column(model.FieldBookingDate): days,
		}).
		Where(active()).
		OrderBy(column(model.FieldBookingDate), column(model.FieldStartTime))

	if err := r.Select(ctx, &res, query); err != nil {
		return nil, err
	}

	return res, nil
}

func (r *repositoryImpl) ActiveDaysByTenant(ctx context.Context, tenantID string, from time.Time) ([]time.Time, error) {
	query := gRepo.Builder.
		Select("DISTINCT " + column(model.FieldBookingDate)).
		From(model.TableName).
		Where(sq.Eq{column(model.FieldTenantID): tenantID}).
		Where(sq.GtOrEq{column(model.FieldBookingDate): schedule.FormatDate(from)}).
		Where(active()).
		OrderBy(column(model.FieldBookingDate))

	days := []time.Time{}
	if err := r.Select(ctx, &days, query); err != nil {
		return nil, err
	}

	for i, day := range days {
		days[i] = schedule.DateOf(day)
	}

	return days, nil
}

type weekUsage struct {
	WeekStart time.Time `db:"booking_week_start"`
	Used      int       `db:"used"`
}

func (r *repositoryImpl) WeeklyUsage(ctx context.Context, tenantID string, weeks []time.Time) (map[string]int, error) {
	usage := map[string]int{}
	if len(weeks) == 0 {
		return usage, nil
	}

	starts := make([]string, len(weeks))
	for i, week := range weeks {
		starts[i] = schedule.FormatDate(week)
	}

	query := gRepo.Builder.
		Select(column(model.FieldWeekStart), "COUNT(1) AS used").
		From(model.TableName).
		Where(sq.Eq{
			column(model.FieldTenantID):  tenantID,
			column(model.FieldWeekStart): starts,
		}).
		Where(active()).
		GroupBy(column(model.FieldWeekStart))

	rows := []weekUsage{}
	if err := r.Select(ctx, &rows, query); err != nil {
		return nil, err
	}

	for _, row := range rows {
		usage[schedule.FormatDate(schedule.DateOf(row.WeekStart))] = row.Used
	}

	return usage, nil
}

func (r *repositoryImpl) CountActive(ctx context.Context, tenantID string, category schedule.BookingType, from, to time.Time) (int, error) {
	query := gRepo.Builder.
		Select("COUNT(1)").
		From(model.TableName).
		Where(sq.Eq{
			column(model.FieldTenantID): tenantID,
			column(model.FieldCategory): string(category),
		}).
		Where(sq.GtOrEq{column(model.FieldBookingDate): schedule.FormatDate(from)}).
		Where(active())

	if !to.IsZero() {
		query = query.Where(sq.LtOrEq{column(model.FieldBookingDate): schedule.FormatDate(to)})
	}

	var count int
	if err := r.Scalar(ctx, &count, query); err != nil {
		return 0, err
	}

	return count, nil
}
