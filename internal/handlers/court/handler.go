package court

import (
	"net/http"

	"courtbook/infras/otel"
	"courtbook/internal/domains/court/model"
	"courtbook/internal/domains/court/model/dto"
	"courtbook/internal/domains/court/service"
	"courtbook/shared/constant"
	gDto "courtbook/shared/dto"
	"courtbook/shared/validator"
	"courtbook/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Court
	otel    otel.Otel
}

func New(service service.Court, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/courts", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateCourt)
		routerGroup.Get("/", handler.GetCourts)
		routerGroup.Get("/{id}", handler.GetCourtByID)
		routerGroup.Patch("/{id}", handler.UpdateCourt)
		routerGroup.Delete("/{id}", handler.DeleteCourt)
	})
}

// CreateCourt handles the creation of a new court.
// @Summary Create a new court
// @Description Register a court with its hourly rate, light surcharge and optional operating hours.
// @Tags Court
// @Accept json
// @Produce json
// @Param request body dto.CreateCourtRequest true "Create Court Request"
// @Success 201 {object} response.Data[dto.CourtResponse] "Created court"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/courts [post]
// @Security BearerAuth
func (handler *Handler) CreateCourt(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateCourt")
	defer scope.End()

	req := dto.CreateCourtRequest{}
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	court, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create court")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Court created successfully by user " + user)

	response.WithJSON(writer, http.StatusCreated, court)
}

// GetCourts retrieves all courts.
// @Summary Get all courts
// @Description Retrieve courts with optional filtering and pagination.
// @Tags Court
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param name query string false "Filter by name"
// @Param active query string false "Filter by active flag (true, false)"
// @Success 200 {object} response.Data[dto.GetCourtsResponse] "List of courts"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/courts [get]
// @Security BearerAuth
func (handler *Handler) GetCourts(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCourts")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(request, true)
	queryParams.RestrictSort(constant.FieldCreatedAt, model.FieldName)

	query := request.URL.Query()

	filterGroup := gDto.NewAndGroup()
	filterGroup.AddEqIfPresent(model.TableName, model.FieldName, query.Get(model.FieldName))
	filterGroup.AddEqIfPresent(model.TableName, model.FieldActive, query.Get(model.FieldActive))

	courts, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get courts")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Courts retrieved successfully")

	response.WithJSON(writer, http.StatusOK, courts)
}

// GetCourtByID retrieves a court by its ID.
// @Summary Get a court by ID
// @Tags Court
// @Accept json
// @Produce json
// @Param id path string true "Court ID"
// @Success 200 {object} response.Data[dto.CourtResponse] "Court details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/courts/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetCourtByID(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCourtByID")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	court, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get court by ID")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, court)
}

// UpdateCourt updates an existing court by its ID.
// @Summary Update a court by ID
// @Tags Court
// @Accept json
// @Produce json
// @Param id path string true "Court ID"
// @Param request body dto.UpdateCourtRequest true "Update Court Request"
// @Success 200 {object} response.Message "Court updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/courts/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateCourt(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateCourt")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	req := dto.UpdateCourtRequest{}
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update court")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Court updated successfully by user " + user)

	response.WithMessage(writer, http.StatusOK, "Court updated successfully")
}

// DeleteCourt deletes a court by its ID.
// @Summary Delete a court by ID
// @Description Courts with reservations cannot be deleted; deactivate them instead.
// @Tags Court
// @Accept json
// @Produce json
// @Param id path string true "Court ID"
// @Success 200 {object} response.Message "Court deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/courts/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteCourt(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteCourt")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete court")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Court deleted successfully by user " + user)

	response.WithMessage(writer, http.StatusOK, "Court deleted successfully")
}
