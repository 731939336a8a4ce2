//go:build wireinject
// +build wireinject

package di

import (
	"courtbook/config"
	"courtbook/infras/jwt"
	"courtbook/infras/kafka"
	"courtbook/infras/otel"
	"courtbook/infras/postgres"
	"courtbook/infras/redis"
	"courtbook/permissions"
	"courtbook/shared/cache"
	"courtbook/transport/http"
	"courtbook/transport/http/middleware"
	"courtbook/transport/http/router"

	availabilityService "courtbook/internal/domains/availability/service"
	courtRepository "courtbook/internal/domains/court/repository"
	courtService "courtbook/internal/domains/court/service"
	premiumDateRepository "courtbook/internal/domains/premiumdate/repository"
	premiumDateService "courtbook/internal/domains/premiumdate/service"
	reservationRepository "courtbook/internal/domains/reservation/repository"
	reservationService "courtbook/internal/domains/reservation/service"
	tenantRepository "courtbook/internal/domains/tenant/repository"
	tenantService "courtbook/internal/domains/tenant/service"

	availabilityHandler "courtbook/internal/handlers/availability"
	courtHandler "courtbook/internal/handlers/court"
	premiumDateHandler "courtbook/internal/handlers/premiumdate"
	reservationHandler "courtbook/internal/handlers/reservation"
	tenantHandler "courtbook/internal/handlers/tenant"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var courtDomain = wire.NewSet(
	courtRepository.New,
	courtService.New,
)

var tenantDomain = wire.NewSet(
	tenantRepository.New,
	tenantService.New,
)

var premiumDateDomain = wire.NewSet(
	premiumDateRepository.New,
	premiumDateService.New,
)

var reservationDomain = wire.NewSet(
	reservationRepository.New,
	reservationService.New,
)

var availabilityDomain = wire.NewSet(
	availabilityService.New,
)

var domains = wire.NewSet(
	courtDomain,
	tenantDomain,
	premiumDateDomain,
	reservationDomain,
	availabilityDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	courtHandler.New,
	tenantHandler.New,
	premiumDateHandler.New,
	reservationHandler.New,
	availabilityHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
