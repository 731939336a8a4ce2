package availability

import (
	"context"
	"net/http"
	"time"

	"courtbook/infras/otel"
	"courtbook/internal/domains/availability/model/dto"
	"courtbook/internal/domains/availability/service"
	"courtbook/internal/schedule"
	"courtbook/shared/constant"
	"courtbook/shared/failure"
	"courtbook/shared/validator"
	"courtbook/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Availability
	otel    otel.Otel
}

func New(service service.Availability, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/availability", func(routerGroup chi.Router) {
		routerGroup.Post("/validate", handler.ValidateSelection)
		routerGroup.Post("/cross-court", handler.CrossCourtConflicts)
		routerGroup.Get("/courts/{id}/slots", handler.GetSlots)
		routerGroup.Get("/courts/{id}/booked", handler.IsSlotBooked)
		routerGroup.Get("/window", handler.GetWindow)
		routerGroup.Get("/quota", handler.GetQuota)
	})
}

// ValidateSelection dry-runs a booking.
// @Summary Validate a slot selection
// @Description Run every booking rule against the selected slots without booking them.
// @Description Rule violations are reported as warnings and conflicts, never as errors.
// @Tags Availability
// @Accept json
// @Produce json
// @Param request body dto.ValidateSelectionRequest true "Validate Selection Request"
// @Success 200 {object} response.Data[model.ValidationResult] "Validation result"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/availability/validate [post]
// @Security BearerAuth
func (handler *Handler) ValidateSelection(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ValidateSelection")
	defer scope.End()

	req := dto.ValidateSelectionRequest{}
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	tenantID, err := resolveTenant(ctx, req.TenantID)
	if err != nil {
		response.WithError(writer, err)

		return
	}

	result, err := handler.service.ValidateSlotSelection(ctx, tenantID, req.SlotKeys, req.CourtID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate slot selection")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, result)
}

// CrossCourtConflicts lists the tenant's bookings on other courts at the selected times.
// @Summary Check cross-court conflicts
// @Tags Availability
// @Accept json
// @Produce json
// @Param request body dto.CrossCourtRequest true "Cross Court Request"
// @Success 200 {object} response.Data[[]model.ConflictDetail] "Conflicts"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/availability/cross-court [post]
// @Security BearerAuth
func (handler *Handler) CrossCourtConflicts(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CrossCourtConflicts")
	defer scope.End()

	req := dto.CrossCourtRequest{}
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	tenantID, err := resolveTenant(ctx, req.TenantID)
	if err != nil {
		response.WithError(writer, err)

		return
	}

	conflicts, err := handler.service.CheckCrossCourtConflicts(ctx, tenantID, req.SlotKeys, req.ExcludeCourtID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to check cross-court conflicts")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, conflicts)
}

// GetSlots returns the slot grid of a court for one day.
// @Summary Get court slots for a date
// @Description Every grid slot of the day with its price, peak flag and availability. Owners are shown to admins and to the owning tenant.
// @Tags Availability
// @Accept json
// @Produce json
// @Param id path string true "Court ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} response.Data[[]model.SlotView] "Slots"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/availability/courts/{id}/slots [get]
// @Security BearerAuth
func (handler *Handler) GetSlots(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSlots")
	defer scope.End()

	date, err := requiredDate(request)
	if err != nil {
		response.WithError(writer, err)

		return
	}

	slots, err := handler.service.GetAvailableTimeSlots(ctx, chi.URLParam(request, constant.RequestParamID), date)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get available time slots")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, slots)
}

// IsSlotBooked reports whether one slot is held by an active reservation.
// @Summary Check a single slot
// @Tags Availability
// @Accept json
// @Produce json
// @Param id path string true "Court ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Param time query string true "Start time (HH:MM)"
// @Success 200 {object} response.Data[dto.SlotBookedResponse] "Slot state"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/availability/courts/{id}/booked [get]
// @Security BearerAuth
func (handler *Handler) IsSlotBooked(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".IsSlotBooked")
	defer scope.End()

	date, err := requiredDate(request)
	if err != nil {
		response.WithError(writer, err)

		return
	}

	value := request.URL.Query().Get(constant.RequestParamTime)
	if err = validator.ValidateVar(value, "required,clock"); err != nil {
		response.WithError(writer, err)

		return
	}

	start, _ := schedule.ParseClock(value)
	courtID := chi.URLParam(request, constant.RequestParamID)

	booked, err := handler.service.IsSlotAlreadyBooked(ctx, courtID, date, start)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to check slot")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, dto.SlotBookedResponse{
		CourtID:  courtID,
		Date:     schedule.FormatDate(date),
		Time:     start.String(),
		IsBooked: booked,
	})
}

// GetWindow describes today's booking windows, and how a given date would be booked.
// @Summary Get booking windows
// @Tags Availability
// @Accept json
// @Produce json
// @Param date query string false "Date to classify (YYYY-MM-DD)"
// @Success 200 {object} response.Data[model.WindowInfo] "Window information"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/availability/window [get]
// @Security BearerAuth
func (handler *Handler) GetWindow(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetWindow")
	defer scope.End()

	var date *time.Time

	if value := request.URL.Query().Get(constant.RequestParamDate); value != constant.Empty {
		parsed, err := schedule.ParseDate(value)
		if err != nil {
			response.WithError(writer, failure.BadRequest(err))

			return
		}

		date = &parsed
	}

	window, err := handler.service.Window(ctx, date)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get booking window")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, window)
}

// GetQuota summarises a tenant's quota usage.
// @Summary Get tenant quota
// @Description Tenants always see their own quota; admins name the tenant.
// @Tags Availability
// @Accept json
// @Produce json
// @Param tenant_id query string false "Tenant ID (admins only)"
// @Success 200 {object} response.Data[model.QuotaInfo] "Quota information"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/availability/quota [get]
// @Security BearerAuth
func (handler *Handler) GetQuota(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetQuota")
	defer scope.End()

	tenantID, err := resolveTenant(ctx, request.URL.Query().Get(constant.RequestParamTenantID))
	if err != nil {
		response.WithError(writer, err)

		return
	}

	quota, err := handler.service.GetTenantQuotaInfo(ctx, tenantID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get tenant quota")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, quota)
}

func requiredDate(request *http.Request) (time.Time, error) {
	value := request.URL.Query().Get(constant.RequestParamDate)
	if err := validator.ValidateVar(value, "required,day"); err != nil {
		return time.Time{}, err
	}

	date, err := schedule.ParseDate(value)
	if err != nil {
		return time.Time{}, failure.BadRequest(err)
	}

	return date, nil
}

// resolveTenant picks whose quota a request is about. Tenants are pinned to their own tenant.
func resolveTenant(ctx context.Context, requested string) (string, error) {
	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)
	own, _ := ctx.Value(constant.ContextKeyTenantID).(string)

	switch {
	case role == constant.RoleAdmin || role == constant.RoleSuperAdmin:
		if requested == constant.Empty {
			return constant.Empty, failure.BadRequestFromString("tenant_id is required")
		}

		return requested, nil
	case own == constant.Empty:
		return constant.Empty, failure.ForbiddenError
	case requested != constant.Empty && requested != own:
		return constant.Empty, failure.ResourceRestrictedError
	default:
		return own, nil
	}
}
