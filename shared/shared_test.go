package shared_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"courtbook/shared"
	cacheMocks "courtbook/shared/cache/mocks"
	"courtbook/shared/constant"
	"courtbook/shared/dto"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func boolPtr(b bool) *bool {
	return &b
}

func TestConvertStringToBool(t *testing.T) {
	tests := []struct {
		input    string
		expected *bool
	}{
		{input: "", expected: nil},
		{input: "true", expected: boolPtr(true)},
		{input: "0", expected: boolPtr(false)},
		{input: "F", expected: boolPtr(false)},
		{input: "yes please", expected: nil},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, shared.ConvertStringToBool(tt.input))
		})
	}
}

func TestCalculateTotalPage(t *testing.T) {
	assert.Equal(t, 1, shared.CalculateTotalPage(0, 10))
	assert.Equal(t, 1, shared.CalculateTotalPage(100, 0))
	assert.Equal(t, 10, shared.CalculateTotalPage(100, 10))
	assert.Equal(t, 11, shared.CalculateTotalPage(101, 10))
}

func TestTransformFields(t *testing.T) {
	type update struct {
		Name    string `db:"name"`
		Active  *bool  `db:"active"`
		Skipped string `db:"-"`
		NoTag   string
		Empty   string `db:"empty"`
	}

	active := false
	result := shared.TransformFields(update{Name: "Court 1", Active: &active, Skipped: "x", NoTag: "y"}, "admin-1")

	assert.Equal(t, "Court 1", result["name"])
	assert.Equal(t, &active, result["active"])
	assert.NotContains(t, result, "-")
	assert.NotContains(t, result, "empty")
	assert.Equal(t, "admin-1", result[constant.FieldModifiedBy])
	assert.IsType(t, time.Time{}, result[constant.FieldModifiedAt])
	assert.Len(t, result, 4)
}

func TestFilterByID(t *testing.T) {
	result := shared.FilterByID("c-1", "id", "courts")

	assert.Equal(t, dto.FilterGroup{
		Filters: []any{
			dto.Filter{Field: "id", Value: "c-1", Operator: dto.FilterOperatorEq, Table: "courts"},
		},
	}, result)
}

func TestBuildCacheKey(t *testing.T) {
	assert.Equal(t, "court:get:c-1", shared.BuildCacheKey("court:get", "c-1"))
	assert.Equal(t, "court:gets", shared.BuildCacheKey("court:gets"))
}

func TestBuildCacheKeyWithQuery_IsStable(t *testing.T) {
	params := dto.QueryParams{Page: 1, Limit: 10}

	first := dto.NewAndGroup()
	first.AddEqIfPresent("courts", "name", "Court 1")
	first.AddEqIfPresent("courts", "active", "true")

	second := dto.NewAndGroup()
	second.AddEqIfPresent("courts", "name", "Court 1")
	second.AddEqIfPresent("courts", "active", "true")

	assert.Equal(t,
		shared.BuildCacheKeyWithQuery("court:gets", params, first),
		shared.BuildCacheKeyWithQuery("court:gets", params, second),
	)
	assert.NotEqual(t,
		shared.BuildCacheKeyWithQuery("court:gets", params, first),
		shared.BuildCacheKeyWithQuery("court:gets", dto.QueryParams{Page: 2, Limit: 10}, first),
	)
}

func TestInvalidateCaches(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	mockCache.EXPECT().Clear(gomock.Any(), "court:gets:*").Return(nil)
	shared.InvalidateCaches(context.Background(), mockCache, "court:gets")

	mockCache.EXPECT().Clear(gomock.Any(), "court:count:*").Return(errors.New("redis down"))
	shared.InvalidateCaches(context.Background(), mockCache, "court:count")
}
