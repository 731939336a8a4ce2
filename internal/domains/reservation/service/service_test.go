package service_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"testing"
	"time"

	"courtbook/config"
	kafkaMocks "courtbook/infras/kafka/mocks"
	"courtbook/infras/otel/mocks"
	availabilityMocks "courtbook/internal/domains/availability/mocks"
	availabilityModel "courtbook/internal/domains/availability/model"
	reservationMocks "courtbook/internal/domains/reservation/mocks"
	"courtbook/internal/domains/reservation/model"
	"courtbook/internal/domains/reservation/model/dto"
	"courtbook/internal/domains/reservation/service"
	"courtbook/internal/schedule"
	cacheMocks "courtbook/shared/cache/mocks"
	"courtbook/shared/constant"
	gDto "courtbook/shared/dto"
	"courtbook/shared/failure"
	gRepo "courtbook/shared/repository"

	"github.com/jackc/pgerrcode"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	repo         *reservationMocks.MockReservation
	availability *availabilityMocks.MockAvailability
	kafka        *kafkaMocks.MockClient
	redis        *cacheMocks.MockRedisCache
	svc          service.Reservation
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := &fixture{
		repo:         reservationMocks.NewMockReservation(ctrl),
		availability: availabilityMocks.NewMockAvailability(ctrl),
		kafka:        kafkaMocks.NewMockClient(ctrl),
		redis:        cacheMocks.NewMockRedisCache(ctrl),
	}

	f.redis.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.redis.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.redis.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.kafka.EXPECT().SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	cfg := &config.Config{}
	cfg.Cache.TTL = 60
	cfg.Kafka.Topics.Reservation = "reservation-events"

	f.svc = service.New(f.repo, f.availability, f.kafka, cfg, f.redis, mocks.NewOtel())

	return f
}

func asTenant(tenantID string) context.Context {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "u-"+tenantID)
	ctx = context.WithValue(ctx, constant.ContextKeyUserRole, constant.RoleTenant)

	return context.WithValue(ctx, constant.ContextKeyTenantID, tenantID)
}

func asAdmin() context.Context {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-1")

	return context.WithValue(ctx, constant.ContextKeyUserRole, constant.RoleAdmin)
}

func bookable(t *testing.T, keys ...string) availabilityModel.ValidationResult {
	t.Helper()

	res := availabilityModel.ValidationResult{CanBook: true, Warnings: []string{}, Conflicts: []availabilityModel.ConflictDetail{}}

	for _, raw := range keys {
		key, err := schedule.ParseSlotKey(raw)
		require.NoError(t, err)

		res.Slots = append(res.Slots, availabilityModel.SlotDecision{
			Key:      key,
			Category: schedule.BookingTypeFree,
			Price:    decimal.NewFromInt(50000),
		})
	}

	return res
}

func expectInserts(f *fixture, inserted *[]model.Reservation, insertErr error) {
	f.repo.EXPECT().WithTransaction(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, fn func(*sqlx.Tx) error) error {
		return fn(nil)
	})

	f.repo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, _ *sqlx.Tx, reservation model.Reservation) error {
		if insertErr != nil {
			return insertErr
		}

		*inserted = append(*inserted, reservation)

		return nil
	}).AnyTimes()
}

func TestReservationService_Create(t *testing.T) {
	keys := []string{"2025-07-08-10:00", "2025-07-08-11:00"}

	t.Run("tenant books a pending batch", func(t *testing.T) {
		f := newFixture(t)
		inserted := []model.Reservation{}

		f.availability.EXPECT().ValidateSlotSelection(gomock.Any(), "t-1", keys, "c-1").Return(bookable(t, keys...), nil)
		expectInserts(f, &inserted, nil)

		res, err := f.svc.Create(asTenant("t-1"), dto.CreateReservationRequest{CourtID: "c-1", SlotKeys: keys, Notes: "league night"})
		require.NoError(t, err)

		require.Len(t, inserted, 2)
		assert.Regexp(t, regexp.MustCompile(`^RSV-\d{8}-[0-9A-F]{6}$`), res.Reference)
		assert.True(t, decimal.NewFromInt(100000).Equal(res.Total))

		for _, reservation := range inserted {
			assert.Equal(t, model.StatusPending, reservation.Status)
			assert.Equal(t, res.Reference, reservation.Reference)
			assert.Equal(t, "t-1", reservation.TenantID)
			assert.Equal(t, "2025-07-07", schedule.FormatDate(reservation.WeekStart))
			assert.Equal(t, reservation.StartTime.Add(time.Hour), reservation.EndTime)
			assert.Nil(t, reservation.ApprovedBy)
		}
	})

	t.Run("admin books a confirmed batch for a tenant", func(t *testing.T) {
		f := newFixture(t)
		inserted := []model.Reservation{}

		f.availability.EXPECT().ValidateSlotSelection(gomock.Any(), "t-2", keys[:1], "c-1").Return(bookable(t, keys[0]), nil)
		expectInserts(f, &inserted, nil)

		_, err := f.svc.Create(asAdmin(), dto.CreateReservationRequest{TenantID: "t-2", CourtID: "c-1", SlotKeys: keys[:1]})
		require.NoError(t, err)

		require.Len(t, inserted, 1)
		assert.Equal(t, model.StatusConfirmed, inserted[0].Status)
		require.NotNil(t, inserted[0].ApprovedBy)
		assert.Equal(t, "admin-1", *inserted[0].ApprovedBy)
	})

	t.Run("rejected batch carries the validation result", func(t *testing.T) {
		f := newFixture(t)

		rejected := availabilityModel.ValidationResult{Warnings: []string{"Maximum 2 hours per day allowed."}}
		f.availability.EXPECT().ValidateSlotSelection(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(rejected, nil)

		_, err := f.svc.Create(asTenant("t-1"), dto.CreateReservationRequest{CourtID: "c-1", SlotKeys: keys})
		require.Error(t, err)
		assert.Equal(t, http.StatusUnprocessableEntity, failure.GetCode(err))
		assert.Equal(t, rejected, failure.GetDetails(err))
	})

	t.Run("lost race becomes slot taken", func(t *testing.T) {
		f := newFixture(t)

		f.availability.EXPECT().ValidateSlotSelection(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(bookable(t, keys...), nil)
		expectInserts(f, &[]model.Reservation{}, fmt.Errorf("failed to insert data (reservation): %w", &pq.Error{Code: pgerrcode.UniqueViolation}))

		_, err := f.svc.Create(asTenant("t-1"), dto.CreateReservationRequest{CourtID: "c-1", SlotKeys: keys})
		require.ErrorIs(t, err, service.ErrSlotTaken)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
		assert.Equal(t, "this slot was just booked by someone else", err.Error())
	})

	t.Run("database failure", func(t *testing.T) {
		f := newFixture(t)

		f.availability.EXPECT().ValidateSlotSelection(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(bookable(t, keys...), nil)
		expectInserts(f, &[]model.Reservation{}, errors.New("connection reset"))

		_, err := f.svc.Create(asTenant("t-1"), dto.CreateReservationRequest{CourtID: "c-1", SlotKeys: keys})
		assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
	})

	t.Run("who may book for whom", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.Create(asAdmin(), dto.CreateReservationRequest{CourtID: "c-1", SlotKeys: keys})
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))

		_, err = f.svc.Create(asTenant("t-1"), dto.CreateReservationRequest{TenantID: "t-2", CourtID: "c-1", SlotKeys: keys})
		assert.Equal(t, http.StatusForbidden, failure.GetCode(err))

		_, err = f.svc.Create(context.Background(), dto.CreateReservationRequest{CourtID: "c-1", SlotKeys: keys})
		assert.Equal(t, http.StatusForbidden, failure.GetCode(err))
	})
}

func TestReservationService_Confirm(t *testing.T) {
	tests := []struct {
		name     string
		current  model.Status
		missing  bool
		wantCode int
	}{
		{name: "pending is confirmed", current: model.StatusPending},
		{name: "confirmed cannot be confirmed again", current: model.StatusConfirmed, wantCode: http.StatusConflict},
		{name: "cancelled is terminal", current: model.StatusCancelled, wantCode: http.StatusConflict},
		{name: "unknown reservation", missing: true, wantCode: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			current := model.Reservation{ID: "r-1", TenantID: "t-1", Status: tt.current}
			if tt.missing {
				current = model.Reservation{}
			}

			f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(current, nil)

			if tt.wantCode == 0 {
				f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, fields map[string]any, filter gDto.FilterGroup) error {
					assert.Equal(t, "confirmed", fields[model.FieldStatus])
					assert.Equal(t, "admin-1", fields[model.FieldApprovedBy])

					where, args := filter.GetWhereClause()
					assert.Contains(t, where, "reservations.status = :status")
					assert.Equal(t, "pending", args["status"])

					return nil
				})
			}

			err := f.svc.Confirm(asAdmin(), "r-1")

			if tt.wantCode != 0 {
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestReservationService_Confirm_LostRace(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Reservation{ID: "r-1", TenantID: "t-1", Status: model.StatusPending}, nil)
	f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(fmt.Errorf("failed to update reservation: %w", gRepo.ErrNoRowsAffected))

	err := f.svc.Confirm(asAdmin(), "r-1")

	assert.Equal(t, http.StatusConflict, failure.GetCode(err))
}

func TestReservationService_Cancel(t *testing.T) {
	tests := []struct {
		name     string
		ctx      context.Context
		current  model.Status
		wantCode int
	}{
		{name: "owner cancels pending", ctx: asTenant("t-1"), current: model.StatusPending},
		{name: "admin cancels confirmed", ctx: asAdmin(), current: model.StatusConfirmed},
		{name: "other tenant cannot see it", ctx: asTenant("t-2"), current: model.StatusPending, wantCode: http.StatusNotFound},
		{name: "already cancelled", ctx: asTenant("t-1"), current: model.StatusCancelled, wantCode: http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Reservation{ID: "r-1", TenantID: "t-1", Status: tt.current}, nil)

			if tt.wantCode == 0 {
				f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
					assert.Equal(t, "cancelled", fields[model.FieldStatus])
					assert.Equal(t, "rain", fields[model.FieldCancelReason])

					return nil
				})
			}

			err := f.svc.Cancel(tt.ctx, dto.CancelReservationRequest{Reason: " rain "}, "r-1")

			if tt.wantCode != 0 {
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestReservationService_Get(t *testing.T) {
	f := newFixture(t)

	stored := model.Reservation{
		ID:          "r-1",
		TenantID:    "t-1",
		CourtName:   "Court 1",
		BookingDate: time.Date(2025, time.July, 8, 0, 0, 0, 0, time.UTC),
		StartTime:   schedule.NewClock(10, 0),
		EndTime:     schedule.NewClock(11, 0),
		Status:      model.StatusPending,
	}

	f.redis.EXPECT().Get(gomock.Any(), "reservation:get:r-1", gomock.Any()).Return(errors.New("redis: nil")).Times(2)
	f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(stored, nil).Times(2)

	res, err := f.svc.Get(asTenant("t-1"), "r-1")
	require.NoError(t, err)
	assert.Equal(t, "2025-07-08-10:00", res.SlotKey)
	assert.Equal(t, "Court 1", res.CourtName)

	_, err = f.svc.Get(asTenant("t-2"), "r-1")
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}

func TestReservationService_GetMine(t *testing.T) {
	f := newFixture(t)

	f.redis.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("redis: nil")).Times(2)
	f.repo.EXPECT().Count(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, filter gDto.FilterGroup) (int, error) {
		_, args := filter.GetWhereClause()
		assert.Equal(t, "t-1", args["tenant_id"])

		return 1, nil
	})
	f.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.Reservation{{ID: "r-1", TenantID: "t-1"}}, nil)

	res, err := f.svc.GetMine(asTenant("t-1"), gDto.QueryParams{Page: 1, Limit: 10}, gDto.FilterGroup{})
	require.NoError(t, err)
	assert.Equal(t, 1, res.TotalData)

	_, err = f.svc.GetMine(asAdmin(), gDto.QueryParams{}, gDto.FilterGroup{})
	assert.Equal(t, http.StatusForbidden, failure.GetCode(err))
}
