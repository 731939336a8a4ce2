package dto_test

import (
	"net/http/httptest"
	"testing"
	"time"

	"courtbook/shared/constant"
	"courtbook/shared/dto"
	"courtbook/shared/model"

	"github.com/stretchr/testify/assert"
)

func TestMetadata_FromModel(t *testing.T) {
	createdAt := time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)
	modifiedAt := time.Date(2025, 7, 2, 12, 0, 0, 0, time.UTC)

	metadata := &dto.Metadata{}
	metadata.FromModel(model.Metadata{
		CreatedAt:  createdAt,
		ModifiedAt: modifiedAt,
		CreatedBy:  "creator",
		ModifiedBy: "modifier",
	})

	assert.NotEmpty(t, metadata.CreatedAt)
	assert.NotEmpty(t, metadata.ModifiedAt)
	assert.Equal(t, "creator", metadata.CreatedBy)
	assert.Equal(t, "modifier", metadata.ModifiedBy)
}

func TestMetadata_FromModel_NeverModified(t *testing.T) {
	metadata := &dto.Metadata{}
	metadata.FromModel(model.Metadata{
		CreatedAt: time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC),
		CreatedBy: "creator",
	})

	assert.NotEmpty(t, metadata.CreatedAt)
	assert.Empty(t, metadata.ModifiedAt)
	assert.Empty(t, metadata.ModifiedBy)
}

func TestQueryParams_FromRequest(t *testing.T) {
	tests := []struct {
		name           string
		rawQuery       string
		defaultRequest bool
		expected       dto.QueryParams
	}{
		{
			name:     "all valid parameters",
			rawQuery: "page=2&limit=20&sort_by=name&sort_dir=asc",
			expected: dto.QueryParams{Page: 2, Limit: 20, SortBy: "name", SortDir: "ASC"},
		},
		{
			name:           "defaults when empty",
			defaultRequest: true,
			expected:       dto.QueryParams{Page: constant.DefaultValuePage, Limit: constant.DefaultValueLimit},
		},
		{
			name:     "no defaults when disabled",
			expected: dto.QueryParams{},
		},
		{
			name:           "invalid numbers fall back to defaults",
			rawQuery:       "page=-1&limit=abc",
			defaultRequest: true,
			expected:       dto.QueryParams{Page: constant.DefaultValuePage, Limit: constant.DefaultValueLimit},
		},
		{
			name:     "unknown sort direction ignored",
			rawQuery: "sort_by=name&sort_dir=sideways",
			expected: dto.QueryParams{SortBy: "name"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/courts?"+tt.rawQuery, nil)

			params := dto.QueryParams{}
			params.FromRequest(req, tt.defaultRequest)

			assert.Equal(t, tt.expected, params)
		})
	}
}

func TestQueryParams_RestrictSort(t *testing.T) {
	params := dto.QueryParams{SortBy: "name; DROP TABLE courts", SortDir: dto.SortDirAsc}
	params.RestrictSort("name", "created_at")

	assert.Empty(t, params.SortBy)
	assert.Empty(t, params.SortDir)

	params = dto.QueryParams{SortBy: "name", SortDir: dto.SortDirDesc}
	params.RestrictSort("name", "created_at")

	assert.Equal(t, "name", params.SortBy)
	assert.Equal(t, dto.SortDirDesc, params.SortDir)
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	group := dto.NewAndGroup()
	group.AddEqIfPresent("reservations", "tenant_id", "t-1")
	group.AddEqIfPresent("reservations", "court_id", "")
	group.Filters = append(group.Filters, dto.Filter{
		Table:    "reservations",
		Field:    "status",
		Operator: dto.FilterOperatorNotEq,
		Value:    "cancelled",
	})

	where, args := group.GetWhereClause()

	assert.Equal(t, "(reservations.tenant_id = :tenant_id AND reservations.status != :status)", where)
	assert.Equal(t, map[string]any{"tenant_id": "t-1", "status": "cancelled"}, args)
}

func TestFilterGroup_Empty(t *testing.T) {
	group := dto.NewAndGroup()

	where, args := group.GetWhereClause()

	assert.Empty(t, where)
	assert.Empty(t, args)
}

func TestFilter_InOperator(t *testing.T) {
	filter := dto.Filter{Field: "status", Operator: dto.FilterOperatorIn, Value: []string{"pending", "confirmed"}}

	where, args := filter.GetWhereClause()

	assert.Equal(t, "status IN (:status_0, :status_1) ", where)
	assert.Equal(t, "pending", args["status_0"])
	assert.Equal(t, "confirmed", args["status_1"])
}
