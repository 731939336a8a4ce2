package service

import (
	"context"
	"fmt"
	"time"

	"courtbook/internal/domains/availability/model"
	courtModel "courtbook/internal/domains/court/model"
	reservationModel "courtbook/internal/domains/reservation/model"
	"courtbook/internal/schedule"
	"courtbook/shared/constant"
	"courtbook/shared/failure"

	"github.com/rs/zerolog/log"
)

// ValidateSlotSelection decides whether tenantID may book every slot in slotKeys on courtID.
// Malformed input fails fast with an error; business-rule violations are collected in the
// result so the caller sees all of them at once.
func (s *serviceImpl) ValidateSlotSelection(ctx context.Context, tenantID string, slotKeys []string, courtID string) (res model.ValidationResult, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Availability.ValidateSlotSelection")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	keys, err := s.parseSelection(slotKeys)
	if err != nil {
		return res, err
	}

	court, err := s.getCourt(ctx, courtID)
	if err != nil {
		return res, err
	}

	tenant, err := s.getTenant(ctx, tenantID)
	if err != nil {
		return res, err
	}

	now := s.now()
	dates := schedule.UniqueDates(keys)

	res = model.ValidationResult{
		Warnings:      []string{},
		Conflicts:     []model.ConflictDetail{},
		SelectedDates: make([]string, len(dates)),
		Slots:         []model.SlotDecision{},
	}

	for i, date := range dates {
		res.SelectedDates[i] = schedule.FormatDate(date)
	}

	existing, err := s.reservationRepo.ActiveByTenant(ctx, tenantID, dates)
	if err != nil {
		log.Error().Err(err).Msg("failed to get tenant reservations")

		return res, fmt.Errorf("failed to get tenant reservations: %w", err)
	}

	s.checkDailyCap(&res, keys, dates, existing)

	if err = s.checkDistinctDays(ctx, &res, tenantID, dates, now); err != nil {
		return res, err
	}

	for _, key := range keys {
		booked, err := s.isSlotBooked(ctx, courtID, key.Date, key.Start)
		if err != nil {
			return res, err
		}

		if booked {
			res.Conflict(model.ConflictDetail{
				Type:      model.ConflictSlotTaken,
				SlotKey:   key.String(),
				CourtID:   court.ID,
				CourtName: court.Name,
				Date:      schedule.FormatDate(key.Date),
				StartTime: key.Start,
				EndTime:   key.End(),
				Message:   fmt.Sprintf("%s %s-%s on %s is already booked.", schedule.FormatDate(key.Date), key.Start, key.End(), court.Name),
			})
		}
	}

	for _, conflict := range crossCourtConflicts(keys, existing, courtID) {
		res.Conflict(conflict)
	}

	s.checkCourt(&res, court, keys)

	if !tenant.Active {
		res.Warn("Tenant %s is not active.", tenant.Code)
	}

	overrides, err := s.overrides(ctx, now)
	if err != nil {
		return res, err
	}

	s.classify(&res, court, keys, now, overrides)

	if err = s.checkWeeklyQuota(ctx, &res, tenant.ID, tenant.BookingLimit, keys); err != nil {
		return res, err
	}

	res.Settle()

	return res, nil
}

// parseSelection turns raw keys into distinct on-grid slot keys.
func (s *serviceImpl) parseSelection(slotKeys []string) ([]schedule.SlotKey, error) {
	if len(slotKeys) == 0 {
		return nil, failure.BadRequestFromString("at least one slot must be selected")
	}

	keys, err := schedule.ParseSlotKeys(slotKeys)
	if err != nil {
		return nil, failure.BadRequest(err)
	}

	grid := s.rules.Grid()

	for _, key := range keys {
		if !grid.Contains(key.Start) {
			return nil, failure.BadRequestFromString(fmt.Sprintf("slot %s is not on the booking grid", key))
		}
	}

	return schedule.UniqueKeys(keys), nil
}

func (s *serviceImpl) CheckCrossCourtConflicts(ctx context.Context, tenantID string, slotKeys []string, excludeCourtID string) (res []model.ConflictDetail, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Availability.CheckCrossCourtConflicts")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if _, err = s.getTenant(ctx, tenantID); err != nil {
		return nil, err
	}

	if _, err = s.getCourt(ctx, excludeCourtID); err != nil {
		return nil, err
	}

	keys, err := s.parseSelection(slotKeys)
	if err != nil {
		return nil, err
	}

	existing, err := s.reservationRepo.ActiveByTenant(ctx, tenantID, schedule.UniqueDates(keys))
	if err != nil {
		log.Error().Err(err).Msg("failed to get tenant reservations")

		return nil, fmt.Errorf("failed to get tenant reservations: %w", err)
	}

	return crossCourtConflicts(keys, existing, excludeCourtID), nil
}

// crossCourtConflicts pairs every key with the tenant's reservations on other courts that
// overlap it.
func crossCourtConflicts(keys []schedule.SlotKey, existing []reservationModel.Reservation, excludeCourtID string) []model.ConflictDetail {
	conflicts := []model.ConflictDetail{}

	for _, key := range keys {
		for _, reservation := range existing {
			if reservation.CourtID == excludeCourtID || !key.Overlaps(reservation.SlotKey()) {
				continue
			}

			conflicts = append(conflicts, model.ConflictDetail{
				Type:          model.ConflictCrossCourt,
				SlotKey:       key.String(),
				CourtID:       reservation.CourtID,
				CourtName:     reservation.CourtName,
				Date:          schedule.FormatDate(reservation.BookingDate),
				StartTime:     reservation.StartTime,
				EndTime:       reservation.EndTime,
				ReservationID: reservation.ID,
				Message: fmt.Sprintf("You already have %s booked at %s-%s on %s.",
					reservation.CourtName, reservation.StartTime, reservation.EndTime, schedule.FormatDate(reservation.BookingDate)),
			})
		}
	}

	return conflicts
}

// checkCourt flags an inactive court and slots outside its operating hours.
func (s *serviceImpl) checkCourt(res *model.ValidationResult, court courtModel.Court, keys []schedule.SlotKey) {
	if !court.Active {
		res.Warn("%s is not accepting reservations.", court.Name)

		return
	}

	for _, key := range keys {
		if !court.WithinHours(key.Start) {
			res.Warn("%s %s is outside the operating hours of %s.", schedule.FormatDate(key.Date), key.Start, court.Name)
		}
	}
}

// classify resolves each slot to free or premium and prices it. Past slots and slots outside
// both windows are rejected.
func (s *serviceImpl) classify(res *model.ValidationResult, court courtModel.Court, keys []schedule.SlotKey, now time.Time, overrides []time.Time) {
	grid := s.rules.Grid()
	closed := map[time.Time]bool{}

	for _, key := range keys {
		if schedule.IsPast(key, now) {
			res.Warn("%s has already started.", key)

			continue
		}

		category := s.rules.BookingTypeOf(key.Date, now, overrides)
		if category == schedule.BookingTypeNone {
			if !closed[key.Date] {
				closed[key.Date] = true

				res.Warn("%s is outside the free and premium booking windows.", schedule.FormatDate(key.Date))
			}

			continue
		}

		peak := grid.IsPeak(key.Start)
		price, surcharge := court.Price(peak)

		res.Slots = append(res.Slots, model.SlotDecision{
			Key:            key,
			Category:       category,
			IsPeak:         peak,
			Price:          price,
			LightSurcharge: surcharge,
		})
	}
}
