package handler

import (
	"log/slog"
	"net/http"

	"guardian/internal/delivery/http/response"
	"guardian/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SafetyHandlerParams holds dependencies for SafetyHandler, injected by Fx.
type SafetyHandlerParams struct {
	fx.In

	SafetyUC usecase.SafetyUsecase
	Logger   *slog.Logger
}

// SafetyHandler holds dependencies for the breach and panic endpoints
type SafetyHandler struct {
	safetyUC usecase.SafetyUsecase
	logger   *slog.Logger
}

// NewSafetyHandler is the constructor for SafetyHandler
func NewSafetyHandler(params SafetyHandlerParams) *SafetyHandler {
	return &SafetyHandler{
		safetyUC: params.SafetyUC,
		logger:   params.Logger,
	}
}

// LocationRequest represents a latitude/longitude sample sent by the client
type LocationRequest struct {
	Latitude  float64 `json:"latitude" validate:"min=-90,max=90"`
	Longitude float64 `json:"longitude" validate:"min=-180,max=180"`
}

// CheckLocation handles evaluating one location sample against the active geofence
func (h *SafetyHandler) CheckLocation(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	var req LocationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid location input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	result, err := h.safetyUC.CheckLocation(c.Request().Context(), userID, req.Latitude, req.Longitude)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result, "Location checked successfully")
}

// TriggerPanic handles the panic button
func (h *SafetyHandler) TriggerPanic(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	var req LocationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid location input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	alert, err := h.safetyUC.TriggerPanic(c.Request().Context(), userID, req.Latitude, req.Longitude)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, alert, "Panic alert sent to all trusted contacts")
}
