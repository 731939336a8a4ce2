package premiumdate

import (
	"net/http"

	"courtbook/infras/otel"
	"courtbook/internal/domains/premiumdate/model"
	"courtbook/internal/domains/premiumdate/model/dto"
	"courtbook/internal/domains/premiumdate/service"
	"courtbook/shared/constant"
	gDto "courtbook/shared/dto"
	"courtbook/shared/validator"
	"courtbook/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.PremiumDate
	otel    otel.Otel
}

func New(service service.PremiumDate, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/premium-dates", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreatePremiumDate)
		routerGroup.Get("/", handler.GetPremiumDates)
		routerGroup.Get("/{id}", handler.GetPremiumDateByID)
		routerGroup.Patch("/{id}", handler.UpdatePremiumDate)
		routerGroup.Delete("/{id}", handler.DeletePremiumDate)
	})
}

// CreatePremiumDate sets the premium registration day for a month.
// @Summary Set a premium opening date
// @Description Override the day premium registration opens for the month of the given date. One override per month.
// @Tags PremiumDate
// @Accept json
// @Produce json
// @Param request body dto.CreatePremiumDateRequest true "Create Premium Date Request"
// @Success 201 {object} response.Data[dto.PremiumDateResponse] "Created override"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error "Month already has an override"
// @Failure 500 {object} response.Error
// @Router /v1/premium-dates [post]
// @Security BearerAuth
func (handler *Handler) CreatePremiumDate(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreatePremiumDate")
	defer scope.End()

	req := dto.CreatePremiumDateRequest{}
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	premiumDate, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create premium date")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Premium date set for " + req.Date)

	response.WithJSON(writer, http.StatusCreated, premiumDate)
}

// GetPremiumDates lists premium opening overrides.
// @Summary Get all premium dates
// @Tags PremiumDate
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param premium_date query string false "Filter by date (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.GetPremiumDatesResponse] "List of premium dates"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/premium-dates [get]
// @Security BearerAuth
func (handler *Handler) GetPremiumDates(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPremiumDates")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(request, true)
	queryParams.RestrictSort(constant.FieldCreatedAt, model.FieldDate)

	date := request.URL.Query().Get(model.FieldDate)
	if date != "" {
		if err := validator.ValidateVar(date, "day"); err != nil {
			response.WithError(writer, err)

			return
		}
	}

	filterGroup := gDto.NewAndGroup()
	filterGroup.AddEqIfPresent(model.TableName, model.FieldDate, date)

	premiumDates, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get premium dates")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, premiumDates)
}

// GetPremiumDateByID retrieves a premium opening override.
// @Summary Get a premium date by ID
// @Tags PremiumDate
// @Accept json
// @Produce json
// @Param id path string true "Premium Date ID"
// @Success 200 {object} response.Data[dto.PremiumDateResponse] "Premium date details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/premium-dates/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetPremiumDateByID(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPremiumDateByID")
	defer scope.End()

	premiumDate, err := handler.service.Get(ctx, chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get premium date by ID")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, premiumDate)
}

// UpdatePremiumDate moves or annotates a premium opening override.
// @Summary Update a premium date by ID
// @Tags PremiumDate
// @Accept json
// @Produce json
// @Param id path string true "Premium Date ID"
// @Param request body dto.UpdatePremiumDateRequest true "Update Premium Date Request"
// @Success 200 {object} response.Message "Premium date updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/premium-dates/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdatePremiumDate(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdatePremiumDate")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	req := dto.UpdatePremiumDateRequest{}
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update premium date")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Premium date updated successfully")
}

// DeletePremiumDate removes an override so the month falls back to the default opening day.
// @Summary Delete a premium date by ID
// @Tags PremiumDate
// @Accept json
// @Produce json
// @Param id path string true "Premium Date ID"
// @Success 200 {object} response.Message "Premium date deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/premium-dates/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeletePremiumDate(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeletePremiumDate")
	defer scope.End()

	if err := handler.service.Delete(ctx, chi.URLParam(request, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete premium date")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Premium date deleted successfully by user " + user)

	response.WithMessage(writer, http.StatusOK, "Premium date deleted successfully")
}
