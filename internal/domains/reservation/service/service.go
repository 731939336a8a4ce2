package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"courtbook/config"
	"courtbook/infras/kafka"
	"courtbook/infras/otel"
	availability "courtbook/internal/domains/availability/service"
	"courtbook/internal/domains/reservation/model"
	"courtbook/internal/domains/reservation/model/dto"
	"courtbook/internal/domains/reservation/repository"
	"courtbook/internal/schedule"
	"courtbook/shared"
	"courtbook/shared/cache"
	"courtbook/shared/constant"
	gDto "courtbook/shared/dto"
	"courtbook/shared/failure"
	gModel "courtbook/shared/model"
	gRepo "courtbook/shared/repository"
	"courtbook/shared/timezone"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetReservation    = "reservation:get"
	cacheGetAllReservation = "reservation:gets"
	cacheCountReservation  = "reservation:count"

	referencePrefix = "RSV"
)

// ErrSlotTaken reports that a slot was taken between validation and insert. Callers should
// validate again before retrying.
var ErrSlotTaken = &failure.Failure{Code: http.StatusConflict, Message: "this slot was just booked by someone else"}

var errConcurrentTransition = failure.Conflict("the reservation was changed by another request, reload and retry")

type Reservation interface {
	Create(ctx context.Context, req dto.CreateReservationRequest) (dto.CreateReservationResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetReservationsResponse, error)
	GetMine(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetReservationsResponse, error)
	Get(ctx context.Context, id string) (dto.ReservationResponse, error)
	Confirm(ctx context.Context, id string) error
	Cancel(ctx context.Context, req dto.CancelReservationRequest, id string) error
}

type serviceImpl struct {
	repo         repository.Reservation
	availability availability.Availability
	kafka        kafka.Client
	cfg          *config.Config
	cache        cache.RedisCache
	otel         otel.Otel
}

func New(
	repo repository.Reservation,
	availability availability.Availability,
	kafka kafka.Client,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Reservation {
	return &serviceImpl{
		repo:         repo,
		availability: availability,
		kafka:        kafka,
		cfg:          cfg,
		cache:        cache,
		otel:         otel,
	}
}

// Create books every requested slot or none. The batch must pass slot validation first; the
// partial unique index on active slots settles races with concurrent bookings.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateReservationRequest) (res dto.CreateReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Reservation.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	caller := callerOf(ctx)

	tenantID, err := caller.bookingTenant(req.TenantID)
	if err != nil {
		return res, err
	}

	result, err := s.availability.ValidateSlotSelection(ctx, tenantID, req.SlotKeys, req.CourtID)
	if err != nil {
		return res, err
	}

	if !result.CanBook {
		return res, failure.Unprocessable("selected slots cannot be booked", result)
	}

	status := model.StatusPending
	if caller.admin {
		status = model.StatusConfirmed
	}

	now := timezone.Now()
	reference := newReference(now)
	reservations := make([]model.Reservation, len(result.Slots))

	for i, slot := range result.Slots {
		reservations[i] = model.Reservation{
			ID:             uuid.NewString(),
			Reference:      reference,
			TenantID:       tenantID,
			CourtID:        req.CourtID,
			BookingDate:    slot.Key.Date,
			StartTime:      slot.Key.Start,
			EndTime:        slot.Key.End(),
			Status:         status,
			Category:       slot.Category,
			WeekStart:      schedule.WeekStart(slot.Key.Date),
			Price:          slot.Price,
			LightSurcharge: slot.LightSurcharge,
			Notes:          req.Notes,
			Metadata: gModel.Metadata{
				CreatedAt:  now,
				ModifiedAt: now,
				CreatedBy:  caller.userID,
				ModifiedBy: caller.userID,
			},
		}

		if caller.admin {
			reservations[i].ApprovedBy = &caller.userID
			reservations[i].ApprovedAt = &now
		}
	}

	err = s.repo.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		for _, reservation := range reservations {
			if err := s.repo.InsertTx(ctx, tx, reservation); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		if gRepo.IsUniqueViolation(err) {
			log.Warn().Str("tenant", tenantID).Strs("slots", req.SlotKeys).Msg("slot taken during reservation")

			return res, ErrSlotTaken
		}

		log.Error().Err(err).Msg("failed to create reservations")

		return res, fmt.Errorf("failed to create reservations: %w", err)
	}

	res.FromModels(reservations)

	events := make([]Event, len(reservations))
	for i, reservation := range reservations {
		events[i] = newEvent(EventCreated, caller.userID, reservation, now)
	}

	s.publish(ctx, events...)

	go s.invalidate(context.WithoutCancel(ctx), constant.Empty)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetReservationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Reservation.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllReservation, req, filter)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for reservations")

		return res, nil
	}

	total, err := s.count(ctx, req, filter)
	if err != nil {
		return res, err
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservations")

		return res, fmt.Errorf("failed to get reservations: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save reservations to cache")
		}
	}()

	return res, nil
}

// GetMine lists the caller's own reservations.
func (s *serviceImpl) GetMine(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetReservationsResponse, error) {
	caller := callerOf(ctx)
	if caller.tenantID == constant.Empty {
		return dto.GetReservationsResponse{}, failure.Forbidden("only tenant accounts have their own reservations")
	}

	mine := gDto.NewAndGroup(gDto.Filter{
		Field:    model.FieldTenantID,
		Value:    caller.tenantID,
		Operator: gDto.FilterOperatorEq,
		Table:    model.TableName,
	})

	if len(filter.Filters) > 0 {
		mine.Filters = append(mine.Filters, filter)
	}

	return s.GetAll(ctx, req, mine)
}

func (s *serviceImpl) count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountReservation, req, filter)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count reservations")

		return res, fmt.Errorf("failed to count reservations: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save reservation count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Reservation.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetReservation, id)

	if err = s.cache.Get(ctx, cacheKey, &res); err != nil {
		reservation, err := s.get(ctx, id)
		if err != nil {
			return res, err
		}

		res.FromModel(reservation)

		go func() {
			c := context.WithoutCancel(ctx)

			if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
				log.Error().Err(err).Msg("failed to save reservation to cache")
			}
		}()
	}

	if !callerOf(ctx).canAccess(res.TenantID) {
		return dto.ReservationResponse{}, failure.NotFound("reservation not found")
	}

	return res, nil
}

// Confirm approves a pending reservation.
func (s *serviceImpl) Confirm(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Reservation.Confirm")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	caller := callerOf(ctx)

	reservation, err := s.get(ctx, id)
	if err != nil {
		return err
	}

	if !reservation.Status.CanTransitionTo(model.StatusConfirmed) {
		return failure.Conflict(fmt.Sprintf("a %s reservation cannot be confirmed", reservation.Status))
	}

	now := timezone.Now()
	fields := map[string]any{
		model.FieldStatus:        string(model.StatusConfirmed),
		model.FieldApprovedBy:    caller.userID,
		model.FieldApprovedAt:    now,
		constant.FieldModifiedBy: caller.userID,
		constant.FieldModifiedAt: now,
	}

	if err = s.repo.Update(ctx, fields, s.transitionFilter(id, reservation.Status)); err != nil {
		if errors.Is(err, gRepo.ErrNoRowsAffected) {
			return errConcurrentTransition
		}

		log.Error().Err(err).Msg("failed to confirm reservation")

		return fmt.Errorf("failed to confirm reservation: %w", err)
	}

	reservation.Status = model.StatusConfirmed
	s.publish(ctx, newEvent(EventConfirmed, caller.userID, reservation, now))

	go s.invalidate(context.WithoutCancel(ctx), id)

	return nil
}

// Cancel releases the slot. Tenants may cancel only their own reservations.
func (s *serviceImpl) Cancel(ctx context.Context, req dto.CancelReservationRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Reservation.Cancel")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	caller := callerOf(ctx)

	reservation, err := s.get(ctx, id)
	if err != nil {
		return err
	}

	if !caller.canAccess(reservation.TenantID) {
		return failure.NotFound("reservation not found")
	}

	if !reservation.Status.CanTransitionTo(model.StatusCancelled) {
		return failure.Conflict(fmt.Sprintf("a %s reservation cannot be cancelled", reservation.Status))
	}

	now := timezone.Now()
	fields := map[string]any{
		model.FieldStatus:        string(model.StatusCancelled),
		model.FieldCancelledBy:   caller.userID,
		model.FieldCancelledAt:   now,
		constant.FieldModifiedBy: caller.userID,
		constant.FieldModifiedAt: now,
	}

	if reason := strings.TrimSpace(req.Reason); reason != constant.Empty {
		fields[model.FieldCancelReason] = reason
	}

	if err = s.repo.Update(ctx, fields, s.transitionFilter(id, reservation.Status)); err != nil {
		if errors.Is(err, gRepo.ErrNoRowsAffected) {
			return errConcurrentTransition
		}

		log.Error().Err(err).Msg("failed to cancel reservation")

		return fmt.Errorf("failed to cancel reservation: %w", err)
	}

	reservation.Status = model.StatusCancelled
	s.publish(ctx, newEvent(EventCancelled, caller.userID, reservation, now))

	go s.invalidate(context.WithoutCancel(ctx), id)

	return nil
}

func (s *serviceImpl) get(ctx context.Context, id string) (model.Reservation, error) {
	reservation, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservation")

		return reservation, fmt.Errorf("failed to get reservation: %w", err)
	}

	if reservation.ID == constant.Empty {
		return reservation, failure.NotFound("reservation not found")
	}

	return reservation, nil
}

// transitionFilter matches the row only while it still has the status the transition was
// checked against.
func (s *serviceImpl) transitionFilter(id string, from model.Status) gDto.FilterGroup {
	return gDto.NewAndGroup(
		gDto.Filter{Field: model.FieldID, Value: id, Operator: gDto.FilterOperatorEq, Table: model.TableName},
		gDto.Filter{Field: model.FieldStatus, Value: string(from), Operator: gDto.FilterOperatorEq, Table: model.TableName},
	)
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	if id != constant.Empty {
		if err := s.cache.Delete(ctx, shared.BuildCacheKey(cacheGetReservation, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete reservation cache")
		}
	}

	shared.InvalidateCaches(ctx, s.cache, cacheGetAllReservation)
	shared.InvalidateCaches(ctx, s.cache, cacheCountReservation)
}

// newReference builds the human-readable booking code, e.g. RSV-20250703-1A2B3C.
func newReference(at time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:6]

	return fmt.Sprintf("%s-%s-%s", referencePrefix, at.Format("20060102"), suffix)
}

// caller is the authenticated principal as stored in the request context.
type caller struct {
	userID   string
	tenantID string
	admin    bool
}

func callerOf(ctx context.Context) caller {
	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)
	tenantID, _ := ctx.Value(constant.ContextKeyTenantID).(string)

	return caller{
		userID:   userID,
		tenantID: tenantID,
		admin:    role == constant.RoleAdmin || role == constant.RoleSuperAdmin,
	}
}

var errTenantRequired = errors.New("tenant_id is required when booking on behalf of a tenant")

// bookingTenant resolves whose quota a booking consumes. Admins name the tenant; tenants
// always book for themselves.
func (c caller) bookingTenant(requested string) (string, error) {
	switch {
	case c.admin && requested == constant.Empty:
		return constant.Empty, failure.BadRequest(errTenantRequired)
	case c.admin:
		return requested, nil
	case c.tenantID == constant.Empty:
		return constant.Empty, failure.Forbidden("only tenant accounts can book")
	case requested != constant.Empty && requested != c.tenantID:
		return constant.Empty, failure.Forbidden("tenants can only book for themselves")
	default:
		return c.tenantID, nil
	}
}

func (c caller) canAccess(tenantID string) bool {
	return c.admin || (c.tenantID != constant.Empty && c.tenantID == tenantID)
}
