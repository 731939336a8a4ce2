package router

import (
	"courtbook/internal/handlers/availability"
	"courtbook/internal/handlers/court"
	"courtbook/internal/handlers/premiumdate"
	"courtbook/internal/handlers/reservation"
	"courtbook/internal/handlers/tenant"
	"courtbook/transport/http/middleware"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"
)

type DomainHandlers struct {
	Court        court.Handler
	Tenant       tenant.Handler
	PremiumDate  premiumdate.Handler
	Reservation  reservation.Handler
	Availability availability.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	App            middleware.AppMiddleware
	AuthRole       middleware.AuthRole
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Use(r.App.Tracing, r.App.RateLimit())

	router.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	router.Route("/v1", func(routerGroup chi.Router) {
		routerGroup.Use(r.AuthRole.APIKey, r.AuthRole.Auth, r.AuthRole.RBAC)

		r.DomainHandlers.Court.Router(routerGroup)
		r.DomainHandlers.Tenant.Router(routerGroup)
		r.DomainHandlers.PremiumDate.Router(routerGroup)
		r.DomainHandlers.Reservation.Router(routerGroup)
		r.DomainHandlers.Availability.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers, app middleware.AppMiddleware, authRole middleware.AuthRole) Router {
	return Router{
		DomainHandlers: domainHandlers,
		App:            app,
		AuthRole:       authRole,
	}
}
