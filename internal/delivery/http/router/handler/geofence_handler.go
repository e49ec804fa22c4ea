package handler

import (
	"log/slog"
	"net/http"

	"guardian/internal/delivery/http/response"
	"guardian/internal/domain/entity"
	"guardian/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// GeofenceHandlerParams holds dependencies for GeofenceHandler, injected by Fx.
type GeofenceHandlerParams struct {
	fx.In

	GeofenceUC usecase.GeofenceUsecase
	Logger     *slog.Logger
}

// GeofenceHandler holds dependencies for geofence lifecycle handlers
type GeofenceHandler struct {
	geofenceUC usecase.GeofenceUsecase
	logger     *slog.Logger
}

// NewGeofenceHandler is the constructor for GeofenceHandler
func NewGeofenceHandler(params GeofenceHandlerParams) *GeofenceHandler {
	return &GeofenceHandler{
		geofenceUC: params.GeofenceUC,
		logger:     params.Logger,
	}
}

// WeatherRequest is the optional weather observation captured at creation time
type WeatherRequest struct {
	Temperature float64 `json:"temperature"`
	Condition   string  `json:"condition"`
}

// CreateGeofenceRequest represents the request body for creating a geofence
type CreateGeofenceRequest struct {
	Name      string          `json:"name" validate:"required"`
	Latitude  float64         `json:"latitude" validate:"min=-90,max=90"`
	Longitude float64         `json:"longitude" validate:"min=-180,max=180"`
	Radius    float64         `json:"radius" validate:"required"`
	Duration  int             `json:"duration" validate:"required"`
	Weather   *WeatherRequest `json:"weather,omitempty"`
}

// CreateGeofence handles activating a new geofence
func (h *GeofenceHandler) CreateGeofence(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	var req CreateGeofenceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid geofence input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := usecase.CreateGeofenceInput{
		Name:      req.Name,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		Radius:    req.Radius,
		Duration:  req.Duration,
	}
	if req.Weather != nil {
		input.Weather = &entity.WeatherSnapshot{
			Temperature: req.Weather.Temperature,
			Condition:   req.Weather.Condition,
		}
	}

	fence, err := h.geofenceUC.CreateGeofence(c.Request().Context(), userID, input)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, fence, "Geofence activated successfully")
}

// GetActiveGeofence handles retrieving the caller's active geofence
func (h *GeofenceHandler) GetActiveGeofence(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	fence, err := h.geofenceUC.GetActiveGeofence(c.Request().Context(), userID)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, fence, "Active geofence retrieved successfully")
}

// DeleteGeofence handles archiving a geofence immediately
func (h *GeofenceHandler) DeleteGeofence(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	geofenceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid geofence ID")
	}

	history, err := h.geofenceUC.DeleteGeofence(c.Request().Context(), userID, geofenceID)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, history, "Geofence archived successfully")
}

// ListHistory handles retrieving the caller's archived geofences
func (h *GeofenceHandler) ListHistory(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	page, limit, offset := parsePagination(c)

	histories, total, err := h.geofenceUC.ListHistory(c.Request().Context(), userID, limit, offset)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, response.Paginated{
		Items: histories,
		Total: total,
		Page:  page,
		Limit: limit,
	}, "Geofence history retrieved successfully")
}
