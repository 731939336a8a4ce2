package tenant

import (
	"net/http"
	"strings"

	"courtbook/infras/otel"
	"courtbook/internal/domains/tenant/model"
	"courtbook/internal/domains/tenant/model/dto"
	"courtbook/internal/domains/tenant/service"
	"courtbook/shared/constant"
	gDto "courtbook/shared/dto"
	"courtbook/shared/validator"
	"courtbook/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Tenant
	otel    otel.Otel
}

func New(service service.Tenant, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/tenants", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateTenant)
		routerGroup.Get("/", handler.GetTenants)
		routerGroup.Get("/{id}", handler.GetTenantByID)
		routerGroup.Patch("/{id}", handler.UpdateTenant)
		routerGroup.Delete("/{id}", handler.DeleteTenant)
	})
}

// CreateTenant handles the creation of a new tenant.
// @Summary Create a new tenant
// @Description Register a tenant organisation. Codes are upper-cased and must be unique; booking_limit defaults to the configured weekly limit.
// @Tags Tenant
// @Accept json
// @Produce json
// @Param request body dto.CreateTenantRequest true "Create Tenant Request"
// @Success 201 {object} response.Data[dto.TenantResponse] "Created tenant"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 409 {object} response.Error "Tenant code already exists"
// @Failure 500 {object} response.Error
// @Router /v1/tenants [post]
// @Security BearerAuth
func (handler *Handler) CreateTenant(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateTenant")
	defer scope.End()

	req := dto.CreateTenantRequest{}
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	tenant, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create tenant")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Tenant created successfully by user " + user)

	response.WithJSON(writer, http.StatusCreated, tenant)
}

// GetTenants retrieves all tenants.
// @Summary Get all tenants
// @Description Retrieve tenants with optional filtering and pagination.
// @Tags Tenant
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param code query string false "Filter by tenant code"
// @Param name query string false "Filter by name"
// @Param active query string false "Filter by active flag (true, false)"
// @Success 200 {object} response.Data[dto.GetTenantsResponse] "List of tenants"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/tenants [get]
// @Security BearerAuth
func (handler *Handler) GetTenants(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTenants")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(request, true)
	queryParams.RestrictSort(constant.FieldCreatedAt, model.FieldCode, model.FieldName)

	query := request.URL.Query()

	filterGroup := gDto.NewAndGroup()
	filterGroup.AddEqIfPresent(model.TableName, model.FieldCode, strings.ToUpper(query.Get(model.FieldCode)))
	filterGroup.AddEqIfPresent(model.TableName, model.FieldName, query.Get(model.FieldName))
	filterGroup.AddEqIfPresent(model.TableName, model.FieldActive, query.Get(model.FieldActive))

	tenants, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get tenants")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Tenants retrieved successfully")

	response.WithJSON(writer, http.StatusOK, tenants)
}

// GetTenantByID retrieves a tenant by its ID.
// @Summary Get a tenant by ID
// @Tags Tenant
// @Accept json
// @Produce json
// @Param id path string true "Tenant ID"
// @Success 200 {object} response.Data[dto.TenantResponse] "Tenant details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/tenants/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetTenantByID(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTenantByID")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	tenant, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get tenant by ID")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, tenant)
}

// UpdateTenant updates an existing tenant by its ID.
// @Summary Update a tenant by ID
// @Tags Tenant
// @Accept json
// @Produce json
// @Param id path string true "Tenant ID"
// @Param request body dto.UpdateTenantRequest true "Update Tenant Request"
// @Success 200 {object} response.Message "Tenant updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/tenants/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateTenant(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateTenant")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	req := dto.UpdateTenantRequest{}
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update tenant")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Tenant updated successfully by user " + user)

	response.WithMessage(writer, http.StatusOK, "Tenant updated successfully")
}

// DeleteTenant deletes a tenant by its ID.
// @Summary Delete a tenant by ID
// @Description Tenants with reservations cannot be deleted; deactivate them instead.
// @Tags Tenant
// @Accept json
// @Produce json
// @Param id path string true "Tenant ID"
// @Success 200 {object} response.Message "Tenant deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/tenants/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteTenant(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteTenant")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete tenant")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Tenant deleted successfully by user " + user)

	response.WithMessage(writer, http.StatusOK, "Tenant deleted successfully")
}
