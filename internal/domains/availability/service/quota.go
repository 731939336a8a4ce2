package service

import (
	"context"
	"fmt"
	"time"

	"courtbook/internal/domains/availability/model"
	reservationModel "courtbook/internal/domains/reservation/model"
	"courtbook/internal/schedule"
	"courtbook/shared/constant"

	"github.com/rs/zerolog/log"
)

// checkDailyCap stops at the first date whose held plus requested slots exceed the cap.
func (s *serviceImpl) checkDailyCap(res *model.ValidationResult, keys []schedule.SlotKey, dates []time.Time, existing []reservationModel.Reservation) {
	held := map[time.Time]int{}
	for _, reservation := range existing {
		held[schedule.DateOf(reservation.BookingDate)]++
	}

	requested := map[time.Time]int{}
	for _, key := range keys {
		requested[key.Date]++
	}

	for _, date := range dates {
		if held[date]+requested[date] > s.rules.DailyHourCap {
			res.Warn("Maximum %d hours per day allowed.", s.rules.DailyHourCap)

			return
		}
	}
}

// checkDistinctDays counts the days the tenant already holds from today on plus the days the
// batch would add.
func (s *serviceImpl) checkDistinctDays(ctx context.Context, res *model.ValidationResult, tenantID string, dates []time.Time, now time.Time) error {
	days, err := s.reservationRepo.ActiveDaysByTenant(ctx, tenantID, schedule.DateOf(now))
	if err != nil {
		log.Error().Err(err).Msg("failed to get tenant booking days")

		return fmt.Errorf("failed to get tenant booking days: %w", err)
	}

	booked := make(map[time.Time]bool, len(days))
	for _, day := range days {
		booked[schedule.DateOf(day)] = true
	}

	fresh := 0

	for _, date := range dates {
		if !booked[date] {
			fresh++
		}
	}

	res.BookedDaysCount = len(booked)
	res.NewDaysCount = fresh

	if len(booked)+fresh > s.rules.DistinctDayCap {
		res.Warn("Maximum %d different booking days allowed.", s.rules.DistinctDayCap)
	}

	return nil
}

// checkWeeklyQuota rejects the batch when, for any week it touches, it asks for more slots
// than the tenant has left in that week.
func (s *serviceImpl) checkWeeklyQuota(ctx context.Context, res *model.ValidationResult, tenantID string, limit int, keys []schedule.SlotKey) error {
	weeks := []time.Time{}
	requested := map[time.Time]int{}

	for _, key := range keys {
		week := schedule.WeekStart(key.Date)
		if requested[week] == 0 {
			weeks = append(weeks, week)
		}

		requested[week]++
	}

	usage, err := s.reservationRepo.WeeklyUsage(ctx, tenantID, weeks)
	if err != nil {
		log.Error().Err(err).Msg("failed to get weekly usage")

		return fmt.Errorf("failed to get weekly usage: %w", err)
	}

	for _, week := range weeks {
		remaining := model.NewUsage(limit, usage[schedule.FormatDate(week)]).Remaining
		if requested[week] > remaining {
			res.Warn("Weekly limit reached for the week of %s: %d of %d slots remaining.", schedule.FormatDate(week), remaining, limit)
		}
	}

	return nil
}

func (s *serviceImpl) GetTenantQuotaInfo(ctx context.Context, tenantID string) (res model.QuotaInfo, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Availability.GetTenantQuotaInfo")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	tenant, err := s.getTenant(ctx, tenantID)
	if err != nil {
		return res, err
	}

	now := s.now()
	today := schedule.DateOf(now)
	free := s.rules.FreeWindow(now)

	days, err := s.reservationRepo.ActiveDaysByTenant(ctx, tenantID, today)
	if err != nil {
		log.Error().Err(err).Msg("failed to get tenant booking days")

		return res, fmt.Errorf("failed to get tenant booking days: %w", err)
	}

	freeUsed, err := s.reservationRepo.CountActive(ctx, tenantID, schedule.BookingTypeFree, free.Start, free.End)
	if err != nil {
		log.Error().Err(err).Msg("failed to count free reservations")

		return res, fmt.Errorf("failed to count free reservations: %w", err)
	}

	premiumUsed, err := s.reservationRepo.CountActive(ctx, tenantID, schedule.BookingTypePremium, free.End.AddDate(0, 0, 1), time.Time{})
	if err != nil {
		log.Error().Err(err).Msg("failed to count premium reservations")

		return res, fmt.Errorf("failed to count premium reservations: %w", err)
	}

	week := schedule.WeekStart(today)
	weekKey := schedule.FormatDate(week)

	usage, err := s.reservationRepo.WeeklyUsage(ctx, tenantID, []time.Time{week})
	if err != nil {
		log.Error().Err(err).Msg("failed to get weekly usage")

		return res, fmt.Errorf("failed to get weekly usage: %w", err)
	}

	return model.QuotaInfo{
		TenantID:         tenant.ID,
		Combined:         model.NewUsage(s.rules.DistinctDayCap, len(days)),
		Free:             model.NewUsage(tenant.BookingLimit, freeUsed),
		Premium:          model.NewUsage(tenant.BookingLimit, premiumUsed),
		WeeklyRemaining:  model.NewUsage(tenant.BookingLimit, usage[weekKey]).Remaining,
		CurrentWeekUsage: usage[weekKey],
		WeekStart:        weekKey,
	}, nil
}
