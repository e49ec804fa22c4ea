package handler

import (
	"log/slog"
	"net/http"

	"guardian/internal/delivery/http/response"
	"guardian/internal/domain/entity"
	"guardian/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AlertHandlerParams holds dependencies for AlertHandler, injected by Fx.
type AlertHandlerParams struct {
	fx.In

	AlertUC usecase.AlertUsecase
	Logger  *slog.Logger
}

// AlertHandler holds dependencies for alert query handlers
type AlertHandler struct {
	alertUC usecase.AlertUsecase
	logger  *slog.Logger
}

// NewAlertHandler is the constructor for AlertHandler
func NewAlertHandler(params AlertHandlerParams) *AlertHandler {
	return &AlertHandler{
		alertUC: params.AlertUC,
		logger:  params.Logger,
	}
}

// ListAlerts handles retrieving the caller's alerts, newest first
func (h *AlertHandler) ListAlerts(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	var alertType *entity.AlertType
	if raw := c.QueryParam("type"); raw != "" {
		parsed := entity.AlertType(raw)
		alertType = &parsed
	}

	page, limit, offset := parsePagination(c)

	alerts, total, err := h.alertUC.ListAlerts(c.Request().Context(), userID, alertType, limit, offset)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, response.Paginated{
		Items: alerts,
		Total: total,
		Page:  page,
		Limit: limit,
	}, "Alerts retrieved successfully")
}
