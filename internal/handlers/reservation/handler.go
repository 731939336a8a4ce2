package reservation

import (
	"net/http"

	"courtbook/infras/otel"
	"courtbook/internal/domains/reservation/model"
	"courtbook/internal/domains/reservation/model/dto"
	"courtbook/internal/domains/reservation/service"
	"courtbook/shared/constant"
	gDto "courtbook/shared/dto"
	"courtbook/shared/failure"
	"courtbook/shared/validator"
	"courtbook/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Reservation
	otel    otel.Otel
}

func New(service service.Reservation, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/reservations", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateReservation)
		routerGroup.Get("/", handler.GetReservations)
		routerGroup.Get("/mine", handler.GetMyReservations)
		routerGroup.Get("/{id}", handler.GetReservationByID)
		routerGroup.Patch("/{id}/confirm", handler.ConfirmReservation)
		routerGroup.Patch("/{id}/cancel", handler.CancelReservation)
	})
}

// CreateReservation books a batch of slots on one court.
// @Summary Create reservations
// @Description Validate and book the selected slots. Tenant bookings start pending; admin bookings are confirmed immediately.
// @Description A rejected selection answers 422 with the full validation result in details.
// @Tags Reservation
// @Accept json
// @Produce json
// @Param request body dto.CreateReservationRequest true "Create Reservation Request"
// @Success 201 {object} response.Data[dto.CreateReservationResponse] "Booked reservations"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error "Slot was booked concurrently"
// @Failure 422 {object} response.Error "Selection rejected"
// @Failure 500 {object} response.Error
// @Router /v1/reservations [post]
// @Security BearerAuth
func (handler *Handler) CreateReservation(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateReservation")
	defer scope.End()

	req := dto.CreateReservationRequest{}
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	reservations, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create reservations")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Reservations created with reference " + reservations.Reference)

	response.WithJSON(writer, http.StatusCreated, reservations)
}

// GetReservations retrieves all reservations.
// @Summary Get all reservations
// @Description Retrieve reservations across tenants with optional filtering and pagination.
// @Tags Reservation
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param tenant_id query string false "Filter by tenant"
// @Param court_id query string false "Filter by court"
// @Param status query string false "Filter by status (pending, confirmed, cancelled)"
// @Param booking_date query string false "Filter by booking date (YYYY-MM-DD)"
// @Param reference query string false "Filter by booking reference"
// @Success 200 {object} response.Data[dto.GetReservationsResponse] "List of reservations"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reservations [get]
// @Security BearerAuth
func (handler *Handler) GetReservations(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetReservations")
	defer scope.End()

	queryParams, filterGroup, err := listRequest(request)
	if err != nil {
		response.WithError(writer, err)

		return
	}

	query := request.URL.Query()
	filterGroup.AddEqIfPresent(model.TableName, model.FieldTenantID, query.Get(model.FieldTenantID))

	reservations, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get reservations")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Reservations retrieved successfully")

	response.WithJSON(writer, http.StatusOK, reservations)
}

// GetMyReservations retrieves the reservations of the caller's tenant.
// @Summary Get my reservations
// @Tags Reservation
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param court_id query string false "Filter by court"
// @Param status query string false "Filter by status (pending, confirmed, cancelled)"
// @Param booking_date query string false "Filter by booking date (YYYY-MM-DD)"
// @Param reference query string false "Filter by booking reference"
// @Success 200 {object} response.Data[dto.GetReservationsResponse] "List of the tenant's reservations"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reservations/mine [get]
// @Security BearerAuth
func (handler *Handler) GetMyReservations(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMyReservations")
	defer scope.End()

	queryParams, filterGroup, err := listRequest(request)
	if err != nil {
		response.WithError(writer, err)

		return
	}

	reservations, err := handler.service.GetMine(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get tenant reservations")

		response.WithError(writer, err)

		return
	}

	tenantID, _ := ctx.Value(constant.ContextKeyTenantID).(string)
	scope.AddEvent("Reservations retrieved successfully for tenant " + tenantID)

	response.WithJSON(writer, http.StatusOK, reservations)
}

// GetReservationByID retrieves a reservation by its ID.
// @Summary Get a reservation by ID
// @Tags Reservation
// @Accept json
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} response.Data[dto.ReservationResponse] "Reservation details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reservations/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetReservationByID(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetReservationByID")
	defer scope.End()

	reservation, err := handler.service.Get(ctx, chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get reservation by ID")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, reservation)
}

// ConfirmReservation approves a pending reservation.
// @Summary Confirm a reservation
// @Tags Reservation
// @Accept json
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} response.Message "Reservation confirmed successfully"
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error "Reservation is not pending"
// @Failure 500 {object} response.Error
// @Router /v1/reservations/{id}/confirm [patch]
// @Security BearerAuth
func (handler *Handler) ConfirmReservation(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ConfirmReservation")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	if err := handler.service.Confirm(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to confirm reservation")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Reservation confirmed by user " + user)

	response.WithMessage(writer, http.StatusOK, "Reservation confirmed successfully")
}

// CancelReservation cancels a pending or confirmed reservation and frees its slot.
// @Summary Cancel a reservation
// @Tags Reservation
// @Accept json
// @Produce json
// @Param id path string true "Reservation ID"
// @Param request body dto.CancelReservationRequest false "Cancel Reservation Request"
// @Success 200 {object} response.Message "Reservation cancelled successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error "Reservation is already cancelled"
// @Failure 500 {object} response.Error
// @Router /v1/reservations/{id}/cancel [patch]
// @Security BearerAuth
func (handler *Handler) CancelReservation(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CancelReservation")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	req := dto.CancelReservationRequest{}
	if request.ContentLength != 0 {
		if err := validator.Validate(request.Body, &req); err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Msg("failed to validate request body")

			response.WithError(writer, err)

			return
		}
	}

	if err := handler.service.Cancel(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to cancel reservation")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Reservation cancelled by user " + user)

	response.WithMessage(writer, http.StatusOK, "Reservation cancelled successfully")
}

// listRequest reads pagination and the filters shared by both listing endpoints.
func listRequest(request *http.Request) (gDto.QueryParams, gDto.FilterGroup, error) {
	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(request, true)
	queryParams.RestrictSort(constant.FieldCreatedAt, model.FieldBookingDate, model.FieldStartTime, model.FieldStatus)

	query := request.URL.Query()

	status := query.Get(model.FieldStatus)
	if status != constant.Empty {
		if _, err := model.ParseStatus(status); err != nil {
			return queryParams, gDto.FilterGroup{}, failure.BadRequest(err)
		}
	}

	bookingDate := query.Get(model.FieldBookingDate)
	if bookingDate != constant.Empty {
		if err := validator.ValidateVar(bookingDate, "day"); err != nil {
			return queryParams, gDto.FilterGroup{}, err
		}
	}

	filterGroup := gDto.NewAndGroup()
	filterGroup.AddEqIfPresent(model.TableName, model.FieldCourtID, query.Get(model.FieldCourtID))
	filterGroup.AddEqIfPresent(model.TableName, model.FieldStatus, status)
	filterGroup.AddEqIfPresent(model.TableName, model.FieldBookingDate, bookingDate)
	filterGroup.AddEqIfPresent(model.TableName, model.FieldReference, query.Get(model.FieldReference))

	return queryParams, filterGroup, nil
}
