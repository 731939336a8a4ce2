// Package service implements the booking engine: slot catalog, conflict detection, quota
// accounting and batch validation. Every operation is read-only.
package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"courtbook/config"
	"courtbook/infras/otel"
	"courtbook/internal/domains/availability/model"
	courtModel "courtbook/internal/domains/court/model"
	courtRepo "courtbook/internal/domains/court/repository"
	premiumModel "courtbook/internal/domains/premiumdate/model"
	premiumRepo "courtbook/internal/domains/premiumdate/repository"
	reservationModel "courtbook/internal/domains/reservation/model"
	reservationRepo "courtbook/internal/domains/reservation/repository"
	tenantModel "courtbook/internal/domains/tenant/model"
	tenantRepo "courtbook/internal/domains/tenant/repository"
	"courtbook/internal/schedule"
	"courtbook/shared"
	"courtbook/shared/constant"
	"courtbook/shared/failure"
	"courtbook/shared/timezone"

	"github.com/rs/zerolog/log"
)

type Availability interface {
	ValidateSlotSelection(ctx context.Context, tenantID string, slotKeys []string, courtID string) (model.ValidationResult, error)
	IsSlotAlreadyBooked(ctx context.Context, courtID string, date time.Time, start schedule.Clock) (bool, error)
	CheckCrossCourtConflicts(ctx context.Context, tenantID string, slotKeys []string, excludeCourtID string) ([]model.ConflictDetail, error)
	CanBookFree(ctx context.Context, date time.Time) bool
	CanBookPremium(ctx context.Context, date time.Time) (bool, error)
	IsPremiumBookingOpen(ctx context.Context) (bool, error)
	BookingType(ctx context.Context, date time.Time) (schedule.BookingType, error)
	Window(ctx context.Context, date *time.Time) (model.WindowInfo, error)
	GetAvailableTimeSlots(ctx context.Context, courtID string, date time.Time) ([]model.SlotView, error)
	GetTenantQuotaInfo(ctx context.Context, tenantID string) (model.QuotaInfo, error)
}

type serviceImpl struct {
	courtRepo       courtRepo.Court
	tenantRepo      tenantRepo.Tenant
	premiumRepo     premiumRepo.PremiumDate
	reservationRepo reservationRepo.Reservation
	rules           schedule.Rules
	otel            otel.Otel
	now             func() time.Time
}

func New(
	courtRepo courtRepo.Court,
	tenantRepo tenantRepo.Tenant,
	premiumRepo premiumRepo.PremiumDate,
	reservationRepo reservationRepo.Reservation,
	cfg *config.Config,
	otel otel.Otel,
) Availability {
	return NewWithClock(courtRepo, tenantRepo, premiumRepo, reservationRepo, cfg, otel, timezone.Now)
}

// NewWithClock is New with an explicit source of the current instant.
func NewWithClock(
	courtRepo courtRepo.Court,
	tenantRepo tenantRepo.Tenant,
	premiumRepo premiumRepo.PremiumDate,
	reservationRepo reservationRepo.Reservation,
	cfg *config.Config,
	otel otel.Otel,
	now func() time.Time,
) Availability {
	return &serviceImpl{
		courtRepo:       courtRepo,
		tenantRepo:      tenantRepo,
		premiumRepo:     premiumRepo,
		reservationRepo: reservationRepo,
		rules:           RulesFromConfig(cfg),
		otel:            otel,
		now:             now,
	}
}

// RulesFromConfig maps the BOOKING_* settings onto the engine rules.
func RulesFromConfig(cfg *config.Config) schedule.Rules {
	return schedule.Rules{
		SlotStartHour:        cfg.Booking.SlotStartHour,
		SlotEndHour:          cfg.Booking.SlotEndHour,
		PeakStartHour:        cfg.Booking.PeakStartHour,
		DailyHourCap:         cfg.Booking.DailyHourCap,
		DistinctDayCap:       cfg.Booking.DistinctDayCap,
		DefaultPremiumDay:    cfg.Booking.DefaultPremiumDay,
		FreeHorizonDays:      cfg.Booking.FreeHorizonDays,
		PremiumHorizonMonths: cfg.Booking.PremiumHorizonMonths,
		DefaultBookingLimit:  cfg.Booking.DefaultBookingLimit,
	}.Normalize()
}

func (s *serviceImpl) IsSlotAlreadyBooked(ctx context.Context, courtID string, date time.Time, start schedule.Clock) (booked bool, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Availability.IsSlotAlreadyBooked")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if _, err = s.getCourt(ctx, courtID); err != nil {
		return false, err
	}

	return s.isSlotBooked(ctx, courtID, date, start)
}

// isSlotBooked checks occupancy for a court the caller has already resolved.
func (s *serviceImpl) isSlotBooked(ctx context.Context, courtID string, date time.Time, start schedule.Clock) (bool, error) {
	booked, err := s.reservationRepo.IsSlotBooked(ctx, courtID, schedule.DateOf(date), start)
	if err != nil {
		log.Error().Err(err).Msg("failed to check slot occupancy")

		return false, fmt.Errorf("failed to check slot occupancy: %w", err)
	}

	return booked, nil
}

func (s *serviceImpl) CanBookFree(_ context.Context, date time.Time) bool {
	return s.rules.CanBookFree(date, s.now())
}

func (s *serviceImpl) CanBookPremium(ctx context.Context, date time.Time) (bool, error) {
	now := s.now()

	overrides, err := s.overrides(ctx, now)
	if err != nil {
		return false, err
	}

	return s.rules.CanBookPremium(date, now, overrides), nil
}

func (s *serviceImpl) IsPremiumBookingOpen(ctx context.Context) (bool, error) {
	now := s.now()

	overrides, err := s.overrides(ctx, now)
	if err != nil {
		return false, err
	}

	return s.rules.IsPremiumOpen(now, overrides), nil
}

func (s *serviceImpl) BookingType(ctx context.Context, date time.Time) (schedule.BookingType, error) {
	now := s.now()

	overrides, err := s.overrides(ctx, now)
	if err != nil {
		return schedule.BookingTypeNone, err
	}

	return s.rules.BookingTypeOf(date, now, overrides), nil
}

// Window reports the free and premium windows at the current instant and, when date is given,
// how that date classifies.
func (s *serviceImpl) Window(ctx context.Context, date *time.Time) (res model.WindowInfo, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Availability.Window")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	now := s.now()

	overrides, err := s.overrides(ctx, now)
	if err != nil {
		return res, err
	}

	res = model.WindowInfo{
		Today:           schedule.FormatDate(schedule.DateOf(now)),
		FreeWindow:      s.rules.FreeWindow(now),
		PremiumWindow:   s.rules.PremiumWindow(now),
		PremiumOpenDate: schedule.FormatDate(s.rules.PremiumOpenDate(now, overrides)),
		PremiumOpen:     s.rules.IsPremiumOpen(now, overrides),
	}

	if date != nil {
		res.Date = schedule.FormatDate(*date)
		res.BookingType = s.rules.BookingTypeOf(*date, now, overrides)
		res.CanBookFree = s.rules.CanBookFree(*date, now)
		res.CanBookPremium = s.rules.CanBookPremium(*date, now, overrides)
	}

	return res, nil
}

func (s *serviceImpl) GetAvailableTimeSlots(ctx context.Context, courtID string, date time.Time) (res []model.SlotView, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Availability.GetAvailableTimeSlots")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	court, err := s.getCourt(ctx, courtID)
	if err != nil {
		return nil, err
	}

	date = schedule.DateOf(date)

	reservations, err := s.reservationRepo.ActiveOnCourt(ctx, courtID, date)
	if err != nil {
		log.Error().Err(err).Msg("failed to get court reservations")

		return nil, fmt.Errorf("failed to get court reservations: %w", err)
	}

	occupied := make(map[schedule.Clock]reservationModel.Reservation, len(reservations))
	for _, reservation := range reservations {
		occupied[reservation.StartTime] = reservation
	}

	now := s.now()

	overrides, err := s.overrides(ctx, now)
	if err != nil {
		return nil, err
	}

	category := s.rules.BookingTypeOf(date, now, overrides)
	viewer := viewerOf(ctx)
	grid := s.rules.Grid()

	for _, key := range grid.Keys(date) {
		reservation, booked := occupied[key.Start]
		peak := grid.IsPeak(key.Start)
		price, _ := court.Price(peak)

		view := model.SlotView{
			SlotKey:     key.String(),
			StartTime:   key.Start,
			EndTime:     key.End(),
			IsPeak:      peak,
			IsBooked:    booked,
			IsPast:      schedule.IsPast(key, now),
			WithinHours: court.WithinHours(key.Start),
			Category:    category,
			Price:       price,
		}

		if booked && viewer.canSee(reservation.TenantID) {
			view.BookedBy = reservation.TenantCode
		}

		view.IsAvailable = !view.IsBooked &&
			!view.IsPast &&
			s.rules.IsBookable(key, now, overrides) &&
			view.WithinHours &&
			court.Active

		res = append(res, view)
	}

	return res, nil
}

// overrides loads the premium-open overrides relevant to now: this month and the next.
func (s *serviceImpl) overrides(ctx context.Context, now time.Time) ([]time.Time, error) {
	today := schedule.DateOf(now)

	dates, err := s.premiumRepo.ListBetween(ctx, schedule.DayOfMonth(today, 0, 1), schedule.MonthEnd(today, 1))
	if err != nil {
		log.Error().Err(err).Msg("failed to load premium date overrides")

		return nil, fmt.Errorf("failed to load premium date overrides: %w", err)
	}

	return premiumModel.Dates(dates), nil
}

func (s *serviceImpl) getCourt(ctx context.Context, courtID string) (courtModel.Court, error) {
	court, err := s.courtRepo.Get(ctx, shared.FilterByID(courtID, courtModel.FieldID, courtModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get court")

		return court, fmt.Errorf("failed to get court: %w", err)
	}

	if court.ID == constant.Empty {
		return court, failure.NotFound("court not found")
	}

	return court, nil
}

func (s *serviceImpl) getTenant(ctx context.Context, tenantID string) (tenantModel.Tenant, error) {
	tenant, err := s.tenantRepo.Get(ctx, shared.FilterByID(tenantID, tenantModel.FieldID, tenantModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get tenant")

		return tenant, fmt.Errorf("failed to get tenant: %w", err)
	}

	if tenant.ID == constant.Empty {
		return tenant, failure.NotFound("tenant not found")
	}

	return tenant, nil
}

// viewer is the caller as far as slot ownership disclosure is concerned.
type viewer struct {
	admin    bool
	tenantID string
}

func viewerOf(ctx context.Context) viewer {
	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)
	tenantID, _ := ctx.Value(constant.ContextKeyTenantID).(string)

	return viewer{
		admin:    role == constant.RoleAdmin || role == constant.RoleSuperAdmin,
		tenantID: tenantID,
	}
}

func (v viewer) canSee(owner string) bool {
	return v.admin || (v.tenantID != constant.Empty && v.tenantID == owner)
}
