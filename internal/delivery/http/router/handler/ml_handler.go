package handler

import (
	"log/slog"
	"net/http"

	"guardian/internal/delivery/http/response"
	"guardian/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// MLHandlerParams holds dependencies for MLHandler, injected by Fx.
type MLHandlerParams struct {
	fx.In

	AnomalyUC usecase.AnomalyUsecase
	Logger    *slog.Logger
}

// MLHandler holds dependencies for anomaly analysis handlers
type MLHandler struct {
	anomalyUC usecase.AnomalyUsecase
	logger    *slog.Logger
}

// NewMLHandler is the constructor for MLHandler
func NewMLHandler(params MLHandlerParams) *MLHandler {
	return &MLHandler{
		anomalyUC: params.AnomalyUC,
		logger:    params.Logger,
	}
}

// AnalyzeGeofence handles re-scoring an archived geofence on demand
func (h *MLHandler) AnalyzeGeofence(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	geofenceID, err := uuid.Parse(c.Param("geofenceId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid geofence ID")
	}

	result, err := h.anomalyUC.AnalyzeGeofence(c.Request().Context(), userID, geofenceID)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result, "Geofence analyzed successfully")
}

// ListSamples handles retrieving the caller's classifier feature samples
func (h *MLHandler) ListSamples(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	page, limit, offset := parsePagination(c)

	samples, total, err := h.anomalyUC.ListSamples(c.Request().Context(), userID, limit, offset)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, response.Paginated{
		Items: samples,
		Total: total,
		Page:  page,
		Limit: limit,
	}, "Classifier samples retrieved successfully")
}
