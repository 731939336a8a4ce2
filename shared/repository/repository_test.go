package repository

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"reflect"
	"testing"

	"courtbook/infras/otel/mocks"
	"courtbook/shared/dto"
	"courtbook/shared/model"

	"github.com/jackc/pgerrcode"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

type sample struct {
	ID       string `db:"id"`
	CourtID  string `db:"court_id"`
	Court    string `db:"court_name" table:"courts" column:"name"`
	Computed string `db:"-"`
	model.Metadata
}

func (sample) GetJoinQuery() string {
	return "JOIN courts ON courts.id = samples.court_id"
}

func TestGetColumns(t *testing.T) {
	columns, insertColumns := getColumns("samples", reflect.TypeOf(sample{}))

	assert.Equal(t, []string{"id", "court_id", "created_at", "modified_at", "created_by", "modified_by"}, insertColumns)
	assert.Contains(t, columns, column{name: "name", table: "courts", alias: "court_name"})
	assert.NotContains(t, columns, column{name: "-", table: "samples"})
}

func TestNewRepository_SelectQuery(t *testing.T) {
	repo := NewRepository[sample]("sample", "samples", "id", nil, mocks.NewOtel())

	assert.Equal(t, "JOIN courts ON courts.id = samples.court_id", repo.join)
	assert.Equal(t, "samples.id, courts.name AS court_name", repo.getSelectQuery("id", "name"))
	assert.Contains(t, repo.Columns(), "samples.created_at")
}

func TestBuildWhereClause(t *testing.T) {
	repo := NewRepository[sample]("sample", "samples", "id", nil, mocks.NewOtel())

	where, args := repo.BuildWhereClause(dto.FilterGroup{})
	assert.Empty(t, where)
	assert.Empty(t, args)

	where, args = repo.BuildWhereClause(dto.NewAndGroup(dto.Filter{Field: "id", Value: "s-1", Operator: dto.FilterOperatorEq, Table: "samples"}))
	assert.Equal(t, " WHERE (samples.id = :id) ", where)
	assert.Equal(t, map[string]any{"id": "s-1"}, args)
}

func TestIsUniqueViolation(t *testing.T) {
	pqErr := &pq.Error{Code: pgerrcode.UniqueViolation}

	assert.True(t, IsUniqueViolation(pqErr))
	assert.True(t, IsUniqueViolation(fmt.Errorf("wrapped: %w", pqErr)))
	assert.True(t, IsUniqueViolation(ErrUniqueViolation))
	assert.False(t, IsUniqueViolation(&pq.Error{Code: pgerrcode.ForeignKeyViolation}))
	assert.False(t, IsUniqueViolation(errors.New("boom")))
	assert.True(t, IsForeignKeyViolation(fmt.Errorf("wrapped: %w", &pq.Error{Code: pgerrcode.ForeignKeyViolation})))
	assert.False(t, IsForeignKeyViolation(pqErr))

	repo := NewRepository[sample]("sample", "samples", "id", nil, mocks.NewOtel())
	err := repo.wrapWriteError("insert", pqErr)

	assert.ErrorIs(t, err, ErrUniqueViolation)
	assert.ErrorAs(t, err, &pqErr)
}

type recordingExecer struct {
	query    string
	args     map[string]any
	affected int64
}

func (r *recordingExecer) NamedExecContext(_ context.Context, query string, arg interface{}) (sql.Result, error) {
	r.query = query
	r.args, _ = arg.(map[string]any)

	return driver.RowsAffected(r.affected), nil
}

func TestUpdate_GuardedColumnKeepsFilterValue(t *testing.T) {
	repo := NewRepository[sample]("sample", "samples", "id", nil, mocks.NewOtel())
	exec := &recordingExecer{affected: 1}

	err := repo.update(context.Background(), exec,
		map[string]any{"status": "confirmed"},
		dto.NewAndGroup(
			dto.Filter{Field: "id", Value: "s-1", Operator: dto.FilterOperatorEq, Table: "samples"},
			dto.Filter{Field: "status", Value: "pending", Operator: dto.FilterOperatorEq, Table: "samples"},
		),
	)

	assert.NoError(t, err)
	assert.Contains(t, exec.query, "UPDATE samples SET status = :set_status")
	assert.Contains(t, exec.query, "samples.status = :status")
	assert.Equal(t, "pending", exec.args["status"])
	assert.Equal(t, "confirmed", exec.args["set_status"])
}

func TestUpdate_NoRowsAffected(t *testing.T) {
	repo := NewRepository[sample]("sample", "samples", "id", nil, mocks.NewOtel())

	err := repo.update(context.Background(), &recordingExecer{}, map[string]any{"status": "confirmed"},
		dto.NewAndGroup(dto.Filter{Field: "id", Value: "s-1", Operator: dto.FilterOperatorEq, Table: "samples"}),
	)

	assert.ErrorIs(t, err, ErrNoRowsAffected)
}

func TestUpdate_RequiresFilter(t *testing.T) {
	repo := NewRepository[sample]("sample", "samples", "id", nil, mocks.NewOtel())

	err := repo.update(context.Background(), &recordingExecer{}, map[string]any{"status": "confirmed"}, dto.FilterGroup{})

	assert.ErrorIs(t, err, errRequiredFilter)
}
