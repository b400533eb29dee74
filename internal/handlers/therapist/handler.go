package therapist

import (
	"net/http"

	"goldentower/infras/otel"
	"goldentower/internal/domains/therapist/model"
	"goldentower/internal/domains/therapist/model/dto"
	"goldentower/internal/domains/therapist/service"
	"goldentower/shared/constant"
	gDto "goldentower/shared/dto"
	"goldentower/shared/validator"
	"goldentower/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Therapist
	otel    otel.Otel
}

func New(service service.Therapist, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/therapists", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateTherapist)
		routerGroup.Get("/", handler.GetTherapists)
		routerGroup.Get("/{id}", handler.GetTherapistByID)
		routerGroup.Patch("/{id}", handler.UpdateTherapist)
		routerGroup.Post("/{id}/blockouts", handler.AddBlockout)
		routerGroup.Get("/{id}/blockouts", handler.GetBlockouts)
		routerGroup.Delete("/{id}/blockouts/{blockoutID}", handler.RemoveBlockout)
	})
}

// CreateTherapist registers a new therapist.
// @Summary Create a new therapist
// @Description Register a therapist on the roster.
// @Tags Therapist
// @Accept json
// @Produce json
// @Param request body dto.CreateTherapistRequest true "Create Therapist Request"
// @Success 201 {object} response.Message "Therapist created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/therapists [post]
// @Security BearerAuth
func (handler *Handler) CreateTherapist(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateTherapist")
	defer scope.End()

	req := dto.CreateTherapistRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create therapist")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Therapist created successfully by user " + user)

	response.WithMessage(writer, http.StatusCreated, "Therapist created successfully")
}

// GetTherapists retrieves the roster.
// @Summary Get all therapists
// @Description Retrieve all therapists with optional filtering and pagination.
// @Tags Therapist
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param active query string false "Filter by active flag (true/false)"
// @Success 200 {object} response.Data[dto.GetTherapistsResponse] "List of therapists"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/therapists [get]
// @Security BearerAuth
func (handler *Handler) GetTherapists(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTherapists")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if active := r.URL.Query().Get(model.FieldActive); active != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldActive,
			Operator: gDto.FilterOperatorEq,
			Value:    active == "true",
			Table:    model.TableName,
		})
	}

	therapists, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get therapists")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Therapists retrieved successfully")

	response.WithJSON(w, http.StatusOK, therapists)
}

// GetTherapistByID retrieves a therapist by their ID.
// @Summary Get a therapist by ID
// @Description Retrieve a therapist by their unique identifier.
// @Tags Therapist
// @Accept json
// @Produce json
// @Param id path string true "Therapist ID"
// @Success 200 {object} response.Data[dto.TherapistResponse] "Therapist details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/therapists/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetTherapistByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTherapistByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	therapist, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get therapist by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Therapist retrieved successfully")

	response.WithJSON(w, http.StatusOK, therapist)
}

// UpdateTherapist updates a therapist by their ID.
// @Summary Update a therapist by ID
// @Description Update the details of an existing therapist.
// @Tags Therapist
// @Accept json
// @Produce json
// @Param id path string true "Therapist ID"
// @Param request body dto.UpdateTherapistRequest true "Update Therapist Request"
// @Success 200 {object} response.Message "Therapist updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/therapists/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateTherapist(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateTherapist")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateTherapistRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update therapist")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Therapist updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Therapist updated successfully")
}

// AddBlockout marks a date the therapist is unavailable.
// @Summary Add a blockout date
// @Description Mark a civil date on which the therapist may not take bookings.
// @Tags Therapist
// @Accept json
// @Produce json
// @Param id path string true "Therapist ID"
// @Param request body dto.CreateBlockoutRequest true "Create Blockout Request"
// @Success 201 {object} response.Message "Blockout created successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/therapists/{id}/blockouts [post]
// @Security BearerAuth
func (handler *Handler) AddBlockout(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AddBlockout")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.CreateBlockoutRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.AddBlockout(ctx, id, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to add blockout")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Blockout created successfully by user " + user)

	response.WithMessage(w, http.StatusCreated, "Blockout created successfully")
}

// GetBlockouts lists a therapist's blockout dates.
// @Summary Get a therapist's blockouts
// @Description Retrieve the blockout dates for one therapist, earliest first.
// @Tags Therapist
// @Accept json
// @Produce json
// @Param id path string true "Therapist ID"
// @Success 200 {object} response.Data[[]dto.BlockoutResponse] "List of blockouts"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/therapists/{id}/blockouts [get]
// @Security BearerAuth
func (handler *Handler) GetBlockouts(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBlockouts")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	blockouts, err := handler.service.GetBlockouts(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get blockouts")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Blockouts retrieved successfully")

	response.WithJSON(w, http.StatusOK, blockouts)
}

// RemoveBlockout deletes one blockout date.
// @Summary Remove a blockout date
// @Description Delete a blockout so the therapist can take bookings on that date again.
// @Tags Therapist
// @Accept json
// @Produce json
// @Param id path string true "Therapist ID"
// @Param blockoutID path string true "Blockout ID"
// @Success 200 {object} response.Message "Blockout removed successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/therapists/{id}/blockouts/{blockoutID} [delete]
// @Security BearerAuth
func (handler *Handler) RemoveBlockout(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RemoveBlockout")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	blockoutID := chi.URLParam(r, "blockoutID")

	if err := handler.service.RemoveBlockout(ctx, id, blockoutID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to remove blockout")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Blockout removed successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Blockout removed successfully")
}
