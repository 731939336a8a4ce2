package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"courtbook/config"
	"courtbook/infras/otel/mocks"
	"courtbook/internal/domains/availability/model"
	"courtbook/internal/domains/availability/service"
	courtMocks "courtbook/internal/domains/court/mocks"
	courtModel "courtbook/internal/domains/court/model"
	premiumMocks "courtbook/internal/domains/premiumdate/mocks"
	premiumModel "courtbook/internal/domains/premiumdate/model"
	reservationMocks "courtbook/internal/domains/reservation/mocks"
	reservationModel "courtbook/internal/domains/reservation/model"
	tenantMocks "courtbook/internal/domains/tenant/mocks"
	tenantModel "courtbook/internal/domains/tenant/model"
	"courtbook/internal/schedule"
	"courtbook/shared/constant"
	"courtbook/shared/failure"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// Thursday; the free window is Mon 2025-07-07 through Sun 2025-07-13.
var thursday = time.Date(2025, time.July, 3, 9, 0, 0, 0, time.UTC)

type fixture struct {
	court       *courtMocks.MockCourt
	tenant      *tenantMocks.MockTenant
	premium     *premiumMocks.MockPremiumDate
	reservation *reservationMocks.MockReservation
	svc         service.Availability
}

func newFixture(t *testing.T, now time.Time) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := &fixture{
		court:       courtMocks.NewMockCourt(ctrl),
		tenant:      tenantMocks.NewMockTenant(ctrl),
		premium:     premiumMocks.NewMockPremiumDate(ctrl),
		reservation: reservationMocks.NewMockReservation(ctrl),
	}

	cfg := &config.Config{}
	cfg.Booking.DailyHourCap = 2
	cfg.Booking.DistinctDayCap = 3

	f.svc = service.NewWithClock(f.court, f.tenant, f.premium, f.reservation, cfg, mocks.NewOtel(), func() time.Time { return now })

	return f
}

func day(t *testing.T, value string) time.Time {
	t.Helper()

	date, err := schedule.ParseDate(value)
	require.NoError(t, err)

	return date
}

func courtOne() courtModel.Court {
	return courtModel.Court{
		ID:             "c-1",
		Name:           "Court 1",
		HourlyRate:     decimal.NewFromInt(50000),
		LightSurcharge: decimal.NewFromInt(20000),
		Active:         true,
	}
}

func tenantOne() tenantModel.Tenant {
	return tenantModel.Tenant{ID: "t-1", Code: "PB01", BookingLimit: 3, Active: true}
}

// state is the datastore as the engine sees it.
type state struct {
	court    courtModel.Court
	tenant   tenantModel.Tenant
	existing []reservationModel.Reservation
	days     []time.Time
	booked   map[string]bool
	usage    map[string]int
}

func (f *fixture) load(s state) {
	f.court.EXPECT().Get(gomock.Any(), gomock.Any()).Return(s.court, nil).AnyTimes()
	f.tenant.EXPECT().Get(gomock.Any(), gomock.Any()).Return(s.tenant, nil).AnyTimes()
	f.premium.EXPECT().ListBetween(gomock.Any(), gomock.Any(), gomock.Any()).Return([]premiumModel.PremiumDate{}, nil).AnyTimes()

	f.reservation.EXPECT().ActiveByTenant(gomock.Any(), s.tenant.ID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, dates []time.Time) ([]reservationModel.Reservation, error) {
			res := []reservationModel.Reservation{}

			for _, reservation := range s.existing {
				for _, date := range dates {
					if reservation.BookingDate.Equal(date) {
						res = append(res, reservation)
					}
				}
			}

			return res, nil
		}).AnyTimes()

	f.reservation.EXPECT().ActiveDaysByTenant(gomock.Any(), s.tenant.ID, gomock.Any()).Return(s.days, nil).AnyTimes()

	f.reservation.EXPECT().IsSlotBooked(gomock.Any(), s.court.ID, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, date time.Time, start schedule.Clock) (bool, error) {
			return s.booked[schedule.NewSlotKey(date, start).String()], nil
		}).AnyTimes()

	f.reservation.EXPECT().WeeklyUsage(gomock.Any(), s.tenant.ID, gomock.Any()).Return(s.usage, nil).AnyTimes()
}

func reservationAt(t *testing.T, courtID, courtName, date string, hour int) reservationModel.Reservation {
	t.Helper()

	start := schedule.NewClock(hour, 0)

	return reservationModel.Reservation{
		ID:          "r-" + courtID + "-" + date,
		TenantID:    "t-1",
		CourtID:     courtID,
		CourtName:   courtName,
		BookingDate: day(t, date),
		StartTime:   start,
		EndTime:     start.Add(schedule.SlotDuration),
		Status:      reservationModel.StatusConfirmed,
	}
}

func TestValidateSlotSelection_Scenarios(t *testing.T) {
	tests := []struct {
		name         string
		state        func(t *testing.T) state
		keys         []string
		courtID      string
		wantCanBook  bool
		wantWarning  string
		wantConflict model.ConflictType
		check        func(t *testing.T, res model.ValidationResult)
	}{
		{
			name:        "single slot next week",
			state:       func(_ *testing.T) state { return state{court: courtOne(), tenant: tenantOne()} },
			keys:        []string{"2025-07-08-10:00"},
			wantCanBook: true,
			check: func(t *testing.T, res model.ValidationResult) {
				assert.Equal(t, 1, res.NewDaysCount)
				assert.Equal(t, 0, res.BookedDaysCount)
				assert.Equal(t, []string{"2025-07-08"}, res.SelectedDates)
				require.Len(t, res.Slots, 1)
				assert.Equal(t, schedule.BookingTypeFree, res.Slots[0].Category)
				assert.True(t, decimal.NewFromInt(50000).Equal(res.Slots[0].Price))
			},
		},
		{
			name:        "three hours on one day breaks the daily cap",
			state:       func(_ *testing.T) state { return state{court: courtOne(), tenant: tenantOne()} },
			keys:        []string{"2025-07-08-10:00", "2025-07-08-11:00", "2025-07-08-12:00"},
			wantWarning: "Maximum 2 hours per day allowed.",
		},
		{
			name: "a fourth distinct day breaks the day cap",
			state: func(t *testing.T) state {
				return state{
					court:  courtOne(),
					tenant: tenantOne(),
					days:   []time.Time{day(t, "2025-07-07"), day(t, "2025-07-08"), day(t, "2025-07-09")},
				}
			},
			keys:        []string{"2025-07-10-10:00"},
			wantWarning: "Maximum 3 different booking days allowed.",
			check: func(t *testing.T, res model.ValidationResult) {
				assert.Equal(t, 3, res.BookedDaysCount)
				assert.Equal(t, 1, res.NewDaysCount)
			},
		},
		{
			name: "slot already taken on the court",
			state: func(_ *testing.T) state {
				return state{court: courtOne(), tenant: tenantOne(), booked: map[string]bool{"2025-07-10-18:00": true}}
			},
			keys:         []string{"2025-07-10-18:00"},
			wantConflict: model.ConflictSlotTaken,
			check: func(t *testing.T, res model.ValidationResult) {
				assert.Equal(t, "2025-07-10-18:00", res.Conflicts[0].SlotKey)
				assert.Equal(t, "Court 1", res.Conflicts[0].CourtName)
			},
		},
		{
			name: "same hour on another court",
			state: func(t *testing.T) state {
				court := courtOne()
				court.ID, court.Name = "c-2", "Court 2"

				return state{
					court:    court,
					tenant:   tenantOne(),
					existing: []reservationModel.Reservation{reservationAt(t, "c-1", "Court 1", "2025-07-10", 10)},
					days:     []time.Time{day(t, "2025-07-10")},
				}
			},
			keys:         []string{"2025-07-10-10:00"},
			courtID:      "c-2",
			wantConflict: model.ConflictCrossCourt,
			check: func(t *testing.T, res model.ValidationResult) {
				assert.Equal(t, "Court 1", res.Conflicts[0].CourtName)
				assert.Equal(t, "r-c-1-2025-07-10", res.Conflicts[0].ReservationID)
			},
		},
		{
			name: "weekly quota exhausted",
			state: func(_ *testing.T) state {
				return state{court: courtOne(), tenant: tenantOne(), usage: map[string]int{"2025-07-07": 2}}
			},
			keys:        []string{"2025-07-08-10:00", "2025-07-09-10:00"},
			wantWarning: "Weekly limit reached for the week of 2025-07-07: 1 of 3 slots remaining.",
		},
		{
			name:        "date beyond both windows",
			state:       func(_ *testing.T) state { return state{court: courtOne(), tenant: tenantOne()} },
			keys:        []string{"2025-07-20-10:00", "2025-07-20-11:00"},
			wantWarning: "2025-07-20 is outside the free and premium booking windows.",
			check: func(t *testing.T, res model.ValidationResult) {
				assert.Len(t, res.Warnings, 1)
				assert.Empty(t, res.Slots)
			},
		},
		{
			name:        "slot that already started",
			state:       func(_ *testing.T) state { return state{court: courtOne(), tenant: tenantOne()} },
			keys:        []string{"2025-07-03-08:00"},
			wantWarning: "2025-07-03-08:00 has already started.",
		},
		{
			name: "inactive court",
			state: func(_ *testing.T) state {
				court := courtOne()
				court.Active = false

				return state{court: court, tenant: tenantOne()}
			},
			keys:        []string{"2025-07-08-10:00"},
			wantWarning: "Court 1 is not accepting reservations.",
		},
		{
			name: "outside operating hours",
			state: func(_ *testing.T) state {
				court := courtOne()
				open, closing := schedule.NewClock(8, 0), schedule.NewClock(21, 0)
				court.OpenTime, court.CloseTime = &open, &closing

				return state{court: court, tenant: tenantOne()}
			},
			keys:        []string{"2025-07-08-21:00"},
			wantWarning: "2025-07-08 21:00 is outside the operating hours of Court 1.",
		},
		{
			name: "inactive tenant",
			state: func(_ *testing.T) state {
				tenant := tenantOne()
				tenant.Active = false

				return state{court: courtOne(), tenant: tenant}
			},
			keys:        []string{"2025-07-08-10:00"},
			wantWarning: "Tenant PB01 is not active.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, thursday)
			st := tt.state(t)
			f.load(st)

			courtID := tt.courtID
			if courtID == "" {
				courtID = st.court.ID
			}

			res, err := f.svc.ValidateSlotSelection(context.Background(), "t-1", tt.keys, courtID)
			require.NoError(t, err)

			assert.Equal(t, tt.wantCanBook, res.CanBook)
			assert.Equal(t, len(res.Warnings) == 0 && len(res.Conflicts) == 0, res.CanBook)

			if tt.wantWarning != "" {
				assert.Contains(t, res.Warnings, tt.wantWarning)
			}

			if tt.wantConflict != "" {
				require.NotEmpty(t, res.Conflicts)
				assert.Equal(t, tt.wantConflict, res.Conflicts[0].Type)
			}

			if tt.check != nil {
				tt.check(t, res)
			}
		})
	}
}

func TestValidateSlotSelection_DailyCapStopsAtFirstOffendingDate(t *testing.T) {
	f := newFixture(t, thursday)
	f.load(state{court: courtOne(), tenant: tenantOne(), usage: map[string]int{}})

	res, err := f.svc.ValidateSlotSelection(context.Background(), "t-1", []string{
		"2025-07-08-10:00", "2025-07-08-11:00", "2025-07-08-12:00",
		"2025-07-09-10:00", "2025-07-09-11:00", "2025-07-09-12:00",
	}, "c-1")
	require.NoError(t, err)

	count := 0

	for _, warning := range res.Warnings {
		if warning == "Maximum 2 hours per day allowed." {
			count++
		}
	}

	assert.Equal(t, 1, count)
	assert.False(t, res.CanBook)
}

func TestValidateSlotSelection_DuplicateKeysCollapse(t *testing.T) {
	f := newFixture(t, thursday)
	f.load(state{court: courtOne(), tenant: tenantOne()})

	res, err := f.svc.ValidateSlotSelection(context.Background(), "t-1", []string{"2025-07-08-10:00", "2025-07-08-10:00"}, "c-1")
	require.NoError(t, err)

	assert.True(t, res.CanBook)
	assert.Len(t, res.Slots, 1)
}

func TestValidateSlotSelection_IsIdempotent(t *testing.T) {
	f := newFixture(t, thursday)
	f.load(state{
		court:    courtOne(),
		tenant:   tenantOne(),
		existing: []reservationModel.Reservation{reservationAt(t, "c-2", "Court 2", "2025-07-09", 10)},
		days:     []time.Time{day(t, "2025-07-09")},
		booked:   map[string]bool{"2025-07-08-18:00": true},
		usage:    map[string]int{"2025-07-07": 1},
	})

	keys := []string{"2025-07-08-18:00", "2025-07-09-10:00", "2025-07-20-10:00"}

	first, err := f.svc.ValidateSlotSelection(context.Background(), "t-1", keys, "c-1")
	require.NoError(t, err)

	second, err := f.svc.ValidateSlotSelection(context.Background(), "t-1", keys, "c-1")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.False(t, first.CanBook)
	assert.Len(t, first.Conflicts, 2)
}

func TestValidateSlotSelection_InputErrors(t *testing.T) {
	tests := []struct {
		name     string
		keys     []string
		setup    func(f *fixture)
		wantCode int
	}{
		{name: "no slots", keys: []string{}, wantCode: http.StatusBadRequest},
		{name: "malformed key", keys: []string{"2025-07-08 10:00"}, wantCode: http.StatusBadRequest},
		{name: "off the grid", keys: []string{"2025-07-08-05:00"}, wantCode: http.StatusBadRequest},
		{name: "not on the hour", keys: []string{"2025-07-08-10:30"}, wantCode: http.StatusBadRequest},
		{
			name: "unknown court",
			keys: []string{"2025-07-08-10:00"},
			setup: func(f *fixture) {
				f.court.EXPECT().Get(gomock.Any(), gomock.Any()).Return(courtModel.Court{}, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "unknown tenant",
			keys: []string{"2025-07-08-10:00"},
			setup: func(f *fixture) {
				f.court.EXPECT().Get(gomock.Any(), gomock.Any()).Return(courtOne(), nil)
				f.tenant.EXPECT().Get(gomock.Any(), gomock.Any()).Return(tenantModel.Tenant{}, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "datastore failure",
			keys: []string{"2025-07-08-10:00"},
			setup: func(f *fixture) {
				f.court.EXPECT().Get(gomock.Any(), gomock.Any()).Return(courtModel.Court{}, errors.New("connection refused"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, thursday)
			if tt.setup != nil {
				tt.setup(f)
			}

			_, err := f.svc.ValidateSlotSelection(context.Background(), "t-1", tt.keys, "c-1")
			require.Error(t, err)
			assert.Equal(t, tt.wantCode, failure.GetCode(err))
		})
	}
}

func TestCheckCrossCourtConflicts_IsAsymmetric(t *testing.T) {
	f := newFixture(t, thursday)
	f.load(state{
		court:    courtOne(),
		tenant:   tenantOne(),
		existing: []reservationModel.Reservation{reservationAt(t, "c-1", "Court 1", "2025-07-10", 10)},
	})

	keys := []string{"2025-07-10-10:00"}

	onOtherCourt, err := f.svc.CheckCrossCourtConflicts(context.Background(), "t-1", keys, "c-2")
	require.NoError(t, err)
	require.Len(t, onOtherCourt, 1)
	assert.Equal(t, model.ConflictCrossCourt, onOtherCourt[0].Type)
	assert.Equal(t, "c-1", onOtherCourt[0].CourtID)

	onSameCourt, err := f.svc.CheckCrossCourtConflicts(context.Background(), "t-1", keys, "c-1")
	require.NoError(t, err)
	assert.Empty(t, onSameCourt)

	adjacent, err := f.svc.CheckCrossCourtConflicts(context.Background(), "t-1", []string{"2025-07-10-11:00"}, "c-2")
	require.NoError(t, err)
	assert.Empty(t, adjacent)
}

func TestIsSlotAlreadyBooked(t *testing.T) {
	f := newFixture(t, thursday)

	f.court.EXPECT().Get(gomock.Any(), gomock.Any()).Return(courtOne(), nil).Times(2)
	f.reservation.EXPECT().IsSlotBooked(gomock.Any(), "c-1", day(t, "2025-07-10"), schedule.NewClock(18, 0)).Return(true, nil)
	f.reservation.EXPECT().IsSlotBooked(gomock.Any(), "c-1", day(t, "2025-07-10"), schedule.NewClock(19, 0)).Return(false, nil)

	booked, err := f.svc.IsSlotAlreadyBooked(context.Background(), "c-1", day(t, "2025-07-10"), schedule.NewClock(18, 0))
	require.NoError(t, err)
	assert.True(t, booked)

	booked, err = f.svc.IsSlotAlreadyBooked(context.Background(), "c-1", day(t, "2025-07-10"), schedule.NewClock(19, 0))
	require.NoError(t, err)
	assert.False(t, booked)
}

func TestIsSlotAlreadyBooked_UnknownCourt(t *testing.T) {
	f := newFixture(t, thursday)
	f.court.EXPECT().Get(gomock.Any(), gomock.Any()).Return(courtModel.Court{}, nil)

	booked, err := f.svc.IsSlotAlreadyBooked(context.Background(), "c-9", day(t, "2025-07-10"), schedule.NewClock(18, 0))

	assert.False(t, booked)
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}

func TestCheckCrossCourtConflicts_UnknownIDs(t *testing.T) {
	tests := []struct {
		name   string
		tenant tenantModel.Tenant
		court  courtModel.Court
	}{
		{name: "unknown tenant", tenant: tenantModel.Tenant{}, court: courtOne()},
		{name: "unknown court", tenant: tenantOne(), court: courtModel.Court{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, thursday)
			f.tenant.EXPECT().Get(gomock.Any(), gomock.Any()).Return(tt.tenant, nil)
			f.court.EXPECT().Get(gomock.Any(), gomock.Any()).Return(tt.court, nil).MaxTimes(1)

			conflicts, err := f.svc.CheckCrossCourtConflicts(context.Background(), "t-9", []string{"2025-07-10-10:00"}, "c-9")

			assert.Nil(t, conflicts)
			assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
		})
	}
}

func TestPremiumRegistration_RollsToNextMonth(t *testing.T) {
	after := time.Date(2025, time.July, 26, 10, 0, 0, 0, time.UTC)

	f := newFixture(t, after)
	f.premium.EXPECT().ListBetween(gomock.Any(), day(t, "2025-07-01"), day(t, "2025-08-31")).Return([]premiumModel.PremiumDate{}, nil).AnyTimes()

	open, err := f.svc.IsPremiumBookingOpen(context.Background())
	require.NoError(t, err)
	assert.False(t, open)

	info, err := f.svc.Window(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, "2025-08-25", info.PremiumOpenDate)
	assert.Equal(t, "2025-07-26", info.Today)
}

func TestPremiumRegistration_Override(t *testing.T) {
	openDay := time.Date(2025, time.August, 20, 7, 0, 0, 0, time.UTC)

	f := newFixture(t, openDay)
	f.premium.EXPECT().ListBetween(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]premiumModel.PremiumDate{{ID: "p-1", Date: day(t, "2025-08-20")}}, nil).AnyTimes()

	open, err := f.svc.IsPremiumBookingOpen(context.Background())
	require.NoError(t, err)
	assert.True(t, open)

	// free window Aug 25-31, premium window Sep 1-30
	category, err := f.svc.BookingType(context.Background(), day(t, "2025-09-10"))
	require.NoError(t, err)
	assert.Equal(t, schedule.BookingTypePremium, category)

	category, err = f.svc.BookingType(context.Background(), day(t, "2025-08-27"))
	require.NoError(t, err)
	assert.Equal(t, schedule.BookingTypeFree, category)

	category, err = f.svc.BookingType(context.Background(), day(t, "2025-10-01"))
	require.NoError(t, err)
	assert.Equal(t, schedule.BookingTypeNone, category)

	premium, err := f.svc.CanBookPremium(context.Background(), day(t, "2025-08-27"))
	require.NoError(t, err)
	assert.False(t, premium)
	assert.True(t, f.svc.CanBookFree(context.Background(), day(t, "2025-08-27")))

	date := day(t, "2025-09-10")
	info, err := f.svc.Window(context.Background(), &date)
	require.NoError(t, err)
	assert.True(t, info.PremiumOpen)
	assert.True(t, info.CanBookPremium)
	assert.Equal(t, schedule.BookingTypePremium, info.BookingType)
}

func TestGetAvailableTimeSlots(t *testing.T) {
	court := courtOne()
	open, closing := schedule.NewClock(8, 0), schedule.NewClock(22, 0)
	court.OpenTime, court.CloseTime = &open, &closing

	other := reservationAt(t, "c-1", "Court 1", "2025-07-08", 18)
	other.TenantID, other.TenantCode = "t-2", "PB02"

	tests := []struct {
		name       string
		ctx        context.Context
		wantBooker string
	}{
		{
			name: "tenant does not see other owners",
			ctx:  context.WithValue(context.WithValue(context.Background(), constant.ContextKeyUserRole, constant.RoleTenant), constant.ContextKeyTenantID, "t-1"),
		},
		{
			name:       "owner sees itself",
			ctx:        context.WithValue(context.WithValue(context.Background(), constant.ContextKeyUserRole, constant.RoleTenant), constant.ContextKeyTenantID, "t-2"),
			wantBooker: "PB02",
		},
		{
			name:       "admin sees everyone",
			ctx:        context.WithValue(context.Background(), constant.ContextKeyUserRole, constant.RoleAdmin),
			wantBooker: "PB02",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, thursday)
			f.court.EXPECT().Get(gomock.Any(), gomock.Any()).Return(court, nil)
			f.reservation.EXPECT().ActiveOnCourt(gomock.Any(), "c-1", day(t, "2025-07-08")).Return([]reservationModel.Reservation{other}, nil)
			f.premium.EXPECT().ListBetween(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)

			slots, err := f.svc.GetAvailableTimeSlots(tt.ctx, "c-1", day(t, "2025-07-08"))
			require.NoError(t, err)
			require.Len(t, slots, 17)

			byKey := map[string]model.SlotView{}
			for _, slot := range slots {
				byKey[slot.SlotKey] = slot
			}

			early := byKey["2025-07-08-06:00"]
			assert.False(t, early.WithinHours)
			assert.False(t, early.IsAvailable)

			morning := byKey["2025-07-08-10:00"]
			assert.True(t, morning.IsAvailable)
			assert.Equal(t, schedule.BookingTypeFree, morning.Category)
			assert.False(t, morning.IsPeak)

			evening := byKey["2025-07-08-18:00"]
			assert.True(t, evening.IsBooked)
			assert.True(t, evening.IsPeak)
			assert.False(t, evening.IsAvailable)
			assert.True(t, decimal.NewFromInt(70000).Equal(evening.Price))
			assert.Equal(t, tt.wantBooker, evening.BookedBy)

			last := byKey["2025-07-08-22:00"]
			assert.False(t, last.WithinHours)
		})
	}
}

func TestGetAvailableTimeSlots_UnknownCourt(t *testing.T) {
	f := newFixture(t, thursday)
	f.court.EXPECT().Get(gomock.Any(), gomock.Any()).Return(courtModel.Court{}, nil)

	_, err := f.svc.GetAvailableTimeSlots(context.Background(), "c-9", day(t, "2025-07-08"))
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}

func TestGetTenantQuotaInfo(t *testing.T) {
	f := newFixture(t, thursday)

	f.tenant.EXPECT().Get(gomock.Any(), gomock.Any()).Return(tenantOne(), nil)
	f.reservation.EXPECT().ActiveDaysByTenant(gomock.Any(), "t-1", day(t, "2025-07-03")).
		Return([]time.Time{day(t, "2025-07-04"), day(t, "2025-07-08")}, nil)
	f.reservation.EXPECT().CountActive(gomock.Any(), "t-1", schedule.BookingTypeFree, day(t, "2025-07-07"), day(t, "2025-07-13")).Return(1, nil)
	f.reservation.EXPECT().CountActive(gomock.Any(), "t-1", schedule.BookingTypePremium, day(t, "2025-07-14"), time.Time{}).Return(5, nil)
	f.reservation.EXPECT().WeeklyUsage(gomock.Any(), "t-1", []time.Time{day(t, "2025-06-30")}).Return(map[string]int{"2025-06-30": 1}, nil)

	info, err := f.svc.GetTenantQuotaInfo(context.Background(), "t-1")
	require.NoError(t, err)

	assert.Equal(t, model.Usage{Limit: 3, Used: 2, Remaining: 1}, info.Combined)
	assert.Equal(t, model.Usage{Limit: 3, Used: 1, Remaining: 2}, info.Free)
	assert.Equal(t, model.Usage{Limit: 3, Used: 5, Remaining: 0}, info.Premium)
	assert.Equal(t, 2, info.WeeklyRemaining)
	assert.Equal(t, 1, info.CurrentWeekUsage)
	assert.Equal(t, "2025-06-30", info.WeekStart)
}

func TestNewUsage_NeverNegative(t *testing.T) {
	for used := 0; used <= 10; used++ {
		usage := model.NewUsage(3, used)

		assert.GreaterOrEqual(t, usage.Remaining, 0)
		assert.Equal(t, max(0, 3-used), usage.Remaining)
	}
}

func TestWeeklyQuota_IsMonotonic(t *testing.T) {
	keys := []string{"2025-07-08-10:00"}
	previous := true

	for used := 0; used <= 4; used++ {
		f := newFixture(t, thursday)
		f.load(state{court: courtOne(), tenant: tenantOne(), usage: map[string]int{"2025-07-07": used}})

		res, err := f.svc.ValidateSlotSelection(context.Background(), "t-1", keys, "c-1")
		require.NoError(t, err)

		assert.Equal(t, used < 3, res.CanBook, "used=%d", used)

		if !previous {
			assert.False(t, res.CanBook, "more usage must never reopen the quota")
		}

		previous = res.CanBook
	}
}
