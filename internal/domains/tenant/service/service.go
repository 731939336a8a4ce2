package service

import (
	"context"
	"fmt"
	"strings"

	"courtbook/config"
	"courtbook/infras/otel"
	"courtbook/internal/domains/tenant/model"
	"courtbook/internal/domains/tenant/model/dto"
	"courtbook/internal/domains/tenant/repository"
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
	cacheGetTenant    = "tenant:get"
	cacheGetAllTenant = "tenant:gets"
	cacheCountTenant  = "tenant:count"
)

type Tenant interface {
	Create(ctx context.Context, req dto.CreateTenantRequest) (dto.TenantResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetTenantsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.TenantResponse, error)
	Update(ctx context.Context, req dto.UpdateTenantRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo  repository.Tenant
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Tenant, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Tenant {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateTenantRequest) (res dto.TenantResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Tenant.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	code := strings.ToUpper(req.Code)

	exist, err := s.repo.Exist(ctx, gDto.NewAndGroup(gDto.Filter{
		Field:    model.FieldCode,
		Value:    code,
		Operator: gDto.FilterOperatorEq,
		Table:    model.TableName,
	}))
	if err != nil {
		log.Error().Err(err).Msg("failed to check tenant code")

		return res, fmt.Errorf("failed to check tenant code: %w", err)
	}

	if exist {
		return res, failure.Conflict(fmt.Sprintf("tenant code %s is already used", code))
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	limit := schedule.Rules{DefaultBookingLimit: s.cfg.Booking.DefaultBookingLimit}.Normalize().DefaultBookingLimit
	tenant := req.ToModel(user, limit)

	if err = s.repo.Insert(ctx, tenant); err != nil {
		if gRepo.IsUniqueViolation(err) {
			return res, failure.Conflict(fmt.Sprintf("tenant code %s is already used", code))
		}

		log.Error().Err(err).Msg("failed to create tenant")

		return res, fmt.Errorf("failed to create tenant: %w", err)
	}

	res.FromModel(tenant)

	go s.invalidateLists(context.WithoutCancel(ctx))

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetTenantsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Tenant.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllTenant, req, filter)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for tenants")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		return res, err
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get tenants")

		return res, fmt.Errorf("failed to get tenants: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save tenants to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Tenant.Count")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountTenant, req, filter)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count tenants")

		return res, fmt.Errorf("failed to count tenants: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save tenant count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.TenantResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Tenant.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetTenant, id)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	tenant, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get tenant")

		return res, fmt.Errorf("failed to get tenant: %w", err)
	}

	if tenant.ID == constant.Empty {
		return res, failure.NotFound("tenant not found")
	}

	res.FromModel(tenant)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save tenant to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateTenantRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Tenant.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check tenant existence")

		return fmt.Errorf("failed to check tenant existence: %w", err)
	}

	if !exist {
		return failure.NotFound("tenant not found")
	}

	if err = s.repo.Update(ctx, shared.TransformFields(req, user), filter); err != nil {
		log.Error().Err(err).Msg("failed to update tenant")

		return fmt.Errorf("failed to update tenant: %w", err)
	}

	go s.invalidate(context.WithoutCancel(ctx), id)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Tenant.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if tenant exists")

		return fmt.Errorf("failed to check if tenant exists: %w", err)
	}

	if !exist {
		return failure.NotFound("tenant not found")
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		if gRepo.IsForeignKeyViolation(err) {
			return failure.Conflict("tenant has reservations, deactivate it instead")
		}

		log.Error().Err(err).Msg("failed to delete tenant")

		return fmt.Errorf("failed to delete tenant: %w", err)
	}

	go s.invalidate(context.WithoutCancel(ctx), id)

	return nil
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	if err := s.cache.Delete(ctx, shared.BuildCacheKey(cacheGetTenant, id)); err != nil {
		log.Error().Err(err).Msg("failed to delete tenant cache")
	}

	s.invalidateLists(ctx)
}

func (s *serviceImpl) invalidateLists(ctx context.Context) {
	shared.InvalidateCaches(ctx, s.cache, cacheGetAllTenant)
	shared.InvalidateCaches(ctx, s.cache, cacheCountTenant)
}
