package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"courtbook/config"
	"courtbook/infras/otel/mocks"
	courtMocks "courtbook/internal/domains/court/mocks"
	"courtbook/internal/domains/court/model"
	"courtbook/internal/domains/court/model/dto"
	"courtbook/internal/domains/court/service"
	"courtbook/internal/schedule"
	cacheMocks "courtbook/shared/cache/mocks"
	"courtbook/shared/constant"
	gDto "courtbook/shared/dto"
	"courtbook/shared/failure"

	"github.com/jackc/pgerrcode"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	repo  *courtMocks.MockCourt
	cache *cacheMocks.MockRedisCache
	svc   service.Court
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	repo := courtMocks.NewMockCourt(ctrl)
	redis := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	redis.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	redis.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	redis.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return fixture{
		repo:  repo,
		cache: redis,
		svc:   service.New(repo, cfg, redis, mocks.NewOtel()),
	}
}

func clock(t *testing.T, value string) *schedule.Clock {
	t.Helper()

	c, err := schedule.ParseClock(value)
	require.NoError(t, err)

	return &c
}

func TestCourtService_Create(t *testing.T) {
	tests := []struct {
		name      string
		req       func(t *testing.T) dto.CreateCourtRequest
		setupMock func(f fixture)
		wantCode  int
	}{
		{
			name: "successful creation",
			req: func(t *testing.T) dto.CreateCourtRequest {
				return dto.CreateCourtRequest{
					Name:           "Court 1",
					HourlyRate:     decimal.NewFromInt(100000),
					LightSurcharge: decimal.NewFromInt(25000),
					OpenTime:       clock(t, "06:00"),
					CloseTime:      clock(t, "23:00"),
				}
			},
			setupMock: func(f fixture) {
				f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, court model.Court) error {
					assert.True(t, court.Active)
					assert.Equal(t, "admin-1", court.CreatedBy)

					return nil
				})
			},
		},
		{
			name: "negative rate",
			req: func(_ *testing.T) dto.CreateCourtRequest {
				return dto.CreateCourtRequest{Name: "Court 1", HourlyRate: decimal.NewFromInt(-1)}
			},
			setupMock: func(_ fixture) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "close before open",
			req: func(t *testing.T) dto.CreateCourtRequest {
				return dto.CreateCourtRequest{Name: "Court 1", OpenTime: clock(t, "20:00"), CloseTime: clock(t, "08:00")}
			},
			setupMock: func(_ fixture) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "repository error",
			req: func(_ *testing.T) dto.CreateCourtRequest {
				return dto.CreateCourtRequest{Name: "Court 1"}
			},
			setupMock: func(f fixture) {
				f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("database error"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-1")
			res, err := f.svc.Create(ctx, tt.req(t))

			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, res.ID)
			assert.Equal(t, "Court 1", res.Name)
		})
	}
}

func TestCourtService_Get(t *testing.T) {
	t.Run("cache hit", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().Get(gomock.Any(), "court:get:c-1", gomock.Any()).DoAndReturn(func(_ context.Context, _ string, value any) error {
			res, ok := value.(*dto.CourtResponse)
			require.True(t, ok)
			res.ID = "c-1"

			return nil
		})

		res, err := f.svc.Get(context.Background(), "c-1")
		require.NoError(t, err)
		assert.Equal(t, "c-1", res.ID)
	})

	t.Run("cache miss loads from repository", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("redis: nil"))
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Court{ID: "c-1", Name: "Court 1", Active: true}, nil)

		res, err := f.svc.Get(context.Background(), "c-1")
		require.NoError(t, err)
		assert.Equal(t, "Court 1", res.Name)
	})

	t.Run("not found", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("redis: nil"))
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Court{}, nil)

		_, err := f.svc.Get(context.Background(), "missing")
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestCourtService_GetAll(t *testing.T) {
	f := newFixture(t)

	params := gDto.QueryParams{Page: 1, Limit: 10}

	f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("redis: nil")).Times(2)
	f.repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(11, nil)
	f.repo.EXPECT().GetAll(gomock.Any(), params, gomock.Any()).Return([]model.Court{{ID: "c-1"}, {ID: "c-2"}}, nil)

	res, err := f.svc.GetAll(context.Background(), params, gDto.FilterGroup{})
	require.NoError(t, err)

	assert.Equal(t, 11, res.TotalData)
	assert.Equal(t, 2, res.TotalPage)
	assert.Len(t, res.Courts, 2)
}

func TestCourtService_Update(t *testing.T) {
	rate := decimal.NewFromInt(120000)

	t.Run("updates changed fields", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Court{ID: "c-1"}, nil)
		f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
			assert.Equal(t, &rate, fields[model.FieldHourlyRate])
			assert.NotContains(t, fields, model.FieldName)

			return nil
		})

		err := f.svc.Update(context.Background(), dto.UpdateCourtRequest{HourlyRate: &rate}, "c-1")
		assert.NoError(t, err)
	})

	t.Run("rejects window inverted against current hours", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Court{ID: "c-1", CloseTime: clock(t, "10:00")}, nil)

		err := f.svc.Update(context.Background(), dto.UpdateCourtRequest{OpenTime: clock(t, "12:00")}, "c-1")
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("not found", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Court{}, nil)

		err := f.svc.Update(context.Background(), dto.UpdateCourtRequest{Name: "x"}, "c-1")
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestCourtService_Delete(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		f.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)

		assert.NoError(t, f.svc.Delete(context.Background(), "c-1"))
	})

	t.Run("court with reservations", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		f.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(&pq.Error{Code: pgerrcode.ForeignKeyViolation})

		err := f.svc.Delete(context.Background(), "c-1")
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})

	t.Run("not found", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		err := f.svc.Delete(context.Background(), "c-1")
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestCourt_WithinHoursAndPrice(t *testing.T) {
	court := model.Court{
		HourlyRate:     decimal.NewFromInt(100),
		LightSurcharge: decimal.NewFromInt(20),
		OpenTime:       clock(t, "08:00"),
		CloseTime:      clock(t, "22:00"),
	}

	assert.False(t, court.WithinHours(schedule.NewClock(7, 0)))
	assert.True(t, court.WithinHours(schedule.NewClock(8, 0)))
	assert.True(t, court.WithinHours(schedule.NewClock(21, 0)))
	assert.False(t, court.WithinHours(schedule.NewClock(22, 0)))
	assert.True(t, model.Court{}.WithinHours(schedule.NewClock(22, 0)))

	price, surcharge := court.Price(true)
	assert.True(t, price.Equal(decimal.NewFromInt(120)))
	assert.True(t, surcharge.Equal(decimal.NewFromInt(20)))

	price, surcharge = court.Price(false)
	assert.True(t, price.Equal(decimal.NewFromInt(100)))
	assert.True(t, surcharge.IsZero())
}
