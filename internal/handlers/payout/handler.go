package payout

import (
	"net/http"

	"goldentower/infras/otel"
	"goldentower/internal/domains/payout/model"
	"goldentower/internal/domains/payout/model/dto"
	"goldentower/internal/domains/payout/service"
	"goldentower/shared/constant"
	gDto "goldentower/shared/dto"
	"goldentower/shared/validator"
	"goldentower/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Payout
	otel    otel.Otel
}

func New(service service.Payout, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/payouts", func(routerGroup chi.Router) {
		routerGroup.Get("/unsettled", handler.GetUnsettled)
		routerGroup.Post("/settle", handler.Settle)
		routerGroup.Get("/", handler.GetPayouts)
		routerGroup.Get("/{id}", handler.GetPayoutByID)
	})

	router.Get("/reports/revenue", handler.GetRevenue)
}

// GetUnsettled quotes the outstanding ledger per therapist.
// @Summary Get unsettled commissions
// @Description Quote everything currently owed per therapist: commission plus therapist-directed tips on completed, unsettled bookings.
// @Tags Payout
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[[]dto.UnsettledTherapistResponse] "Unsettled totals per therapist"
// @Failure 500 {object} response.Error
// @Router /v1/payouts/unsettled [get]
// @Security BearerAuth
func (handler *Handler) GetUnsettled(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetUnsettled")
	defer scope.End()

	unsettled, err := handler.service.Unsettled(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get unsettled commissions")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Unsettled commissions retrieved successfully")

	response.WithJSON(w, http.StatusOK, unsettled)
}

// Settle batches the quoted bookings into one payout.
// @Summary Settle a therapist's commissions
// @Description Create a payout for the quoted bookings. Rejected with 409 when the quoted total no longer matches the ledger.
// @Tags Payout
// @Accept json
// @Produce json
// @Param request body dto.SettleRequest true "Settle Request"
// @Success 201 {object} response.Data[dto.PayoutResponse] "Payout created successfully"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/payouts/settle [post]
// @Security BearerAuth
func (handler *Handler) Settle(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Settle")
	defer scope.End()

	req := dto.SettleRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	payout, err := handler.service.Settle(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to settle payout")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Payout settled successfully by user " + user)

	response.WithJSON(w, http.StatusCreated, payout)
}

// GetPayouts retrieves the payout history.
// @Summary Get all payouts
// @Description Retrieve past payouts with optional filtering and pagination.
// @Tags Payout
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param therapist_id query string false "Filter by therapist ID"
// @Success 200 {object} response.Data[dto.GetPayoutsResponse] "List of payouts"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/payouts [get]
// @Security BearerAuth
func (handler *Handler) GetPayouts(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPayouts")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if therapistID := r.URL.Query().Get(model.FieldTherapistID); therapistID != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldTherapistID,
			Operator: gDto.FilterOperatorEq,
			Value:    therapistID,
			Table:    model.TableName,
		})
	}

	payouts, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get payouts")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Payouts retrieved successfully")

	response.WithJSON(w, http.StatusOK, payouts)
}

// GetPayoutByID retrieves a payout by its ID.
// @Summary Get a payout by ID
// @Description Retrieve a payout by its unique identifier.
// @Tags Payout
// @Accept json
// @Produce json
// @Param id path string true "Payout ID"
// @Success 200 {object} response.Data[dto.PayoutResponse] "Payout details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/payouts/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetPayoutByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPayoutByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	payout, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get payout by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Payout retrieved successfully")

	response.WithJSON(w, http.StatusOK, payout)
}

// GetRevenue reports revenue for one shift window.
// @Summary Get the revenue report for a shift window
// @Description Report gross revenue, tip attribution and completion count for the 16:00 to 15:59 shift window opening on the given date.
// @Tags Payout
// @Accept json
// @Produce json
// @Param date query string false "Window opening date (YYYY-MM-DD), defaults to today"
// @Success 200 {object} response.Data[dto.RevenueReportResponse] "Revenue report"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reports/revenue [get]
// @Security BearerAuth
func (handler *Handler) GetRevenue(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRevenue")
	defer scope.End()

	date := r.URL.Query().Get(constant.RequestParamDate)

	report, err := handler.service.Revenue(ctx, date)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get revenue report")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Revenue report retrieved successfully")

	response.WithJSON(w, http.StatusOK, report)
}
