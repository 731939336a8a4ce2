package service

import (
	"context"
	"fmt"
	"time"

	"courtbook/config"
	"courtbook/infras/otel"
	"courtbook/internal/domains/premiumdate/model"
	"courtbook/internal/domains/premiumdate/model/dto"
	"courtbook/internal/domains/premiumdate/repository"
	"courtbook/internal/schedule"
	"courtbook/shared"
	"courtbook/shared/cache"
	"courtbook/shared/constant"
	gDto "courtbook/shared/dto"
	"courtbook/shared/failure"
	gRepo "courtbook/shared/repository"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetPremiumDate    = "premium_date:get"
	cacheGetAllPremiumDate = "premium_date:gets"
)

type PremiumDate interface {
	Create(ctx context.Context, req dto.CreatePremiumDateRequest) (dto.PremiumDateResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetPremiumDatesResponse, error)
	Get(ctx context.Context, id string) (dto.PremiumDateResponse, error)
	Update(ctx context.Context, req dto.UpdatePremiumDateRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo  repository.PremiumDate
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.PremiumDate, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) PremiumDate {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreatePremiumDateRequest) (res dto.PremiumDateResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".PremiumDate.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	premiumDate, err := req.ToModel(user)
	if err != nil {
		return res, failure.BadRequest(err)
	}

	if err = s.checkMonthFree(ctx, premiumDate.Date, constant.Empty); err != nil {
		return res, err
	}

	if err = s.repo.Insert(ctx, premiumDate); err != nil {
		if gRepo.IsUniqueViolation(err) {
			return res, monthTaken(premiumDate.Date)
		}

		log.Error().Err(err).Msg("failed to create premium date")

		return res, fmt.Errorf("failed to create premium date: %w", err)
	}

	res.FromModel(premiumDate)

	go s.invalidate(context.WithoutCancel(ctx), constant.Empty)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetPremiumDatesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".PremiumDate.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllPremiumDate, req, filter)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count premium dates")

		return res, fmt.Errorf("failed to count premium dates: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get premium dates")

		return res, fmt.Errorf("failed to get premium dates: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save premium dates to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.PremiumDateResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".PremiumDate.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetPremiumDate, id)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	premiumDate, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get premium date")

		return res, fmt.Errorf("failed to get premium date: %w", err)
	}

	if premiumDate.ID == constant.Empty {
		return res, failure.NotFound("premium date not found")
	}

	res.FromModel(premiumDate)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save premium date to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdatePremiumDateRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".PremiumDate.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check premium date existence")

		return fmt.Errorf("failed to check premium date existence: %w", err)
	}

	if !exist {
		return failure.NotFound("premium date not found")
	}

	fields := shared.TransformFields(req, user)

	if req.Date != constant.Empty {
		date, err := schedule.ParseDate(req.Date)
		if err != nil {
			return failure.BadRequest(err)
		}

		if err = s.checkMonthFree(ctx, date, id); err != nil {
			return err
		}

		fields[model.FieldDate] = schedule.FormatDate(date)
	}

	if err = s.repo.Update(ctx, fields, filter); err != nil {
		if gRepo.IsUniqueViolation(err) {
			return failure.Conflict("another premium date already exists in that month")
		}

		log.Error().Err(err).Msg("failed to update premium date")

		return fmt.Errorf("failed to update premium date: %w", err)
	}

	go s.invalidate(context.WithoutCancel(ctx), id)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".PremiumDate.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if premium date exists")

		return fmt.Errorf("failed to check if premium date exists: %w", err)
	}

	if !exist {
		return failure.NotFound("premium date not found")
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete premium date")

		return fmt.Errorf("failed to delete premium date: %w", err)
	}

	go s.invalidate(context.WithoutCancel(ctx), id)

	return nil
}

// checkMonthFree rejects a date whose month already has an override other than self.
func (s *serviceImpl) checkMonthFree(ctx context.Context, date time.Time, self string) error {
	existing, err := s.repo.ListBetween(ctx, schedule.DayOfMonth(date, 0, 1), schedule.MonthEnd(date, 0))
	if err != nil {
		log.Error().Err(err).Msg("failed to list premium dates of month")

		return fmt.Errorf("failed to list premium dates of month: %w", err)
	}

	for _, other := range existing {
		if other.ID != self {
			return monthTaken(date)
		}
	}

	return nil
}

func monthTaken(date time.Time) error {
	return failure.Conflict(fmt.Sprintf("premium date for %s is already set", date.Format("January 2006")))
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	if id != constant.Empty {
		if err := s.cache.Delete(ctx, shared.BuildCacheKey(cacheGetPremiumDate, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete premium date cache")
		}
	}

	shared.InvalidateCaches(ctx, s.cache, cacheGetAllPremiumDate)
}
