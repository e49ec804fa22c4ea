// Package handler contains the HTTP request handlers.
package handler

import (
	"net/http"
	"strconv"

	deliverycontext "guardian/internal/delivery/context"
	"guardian/internal/delivery/http/response"
	domainerrors "guardian/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// Pagination bounds applied to every list endpoint.
const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// getUserID extracts the authenticated user ID set by the auth middleware.
func getUserID(c echo.Context) (uuid.UUID, error) {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return uuid.Nil, response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	return userID, nil
}

// handleAppError converts business errors into the unified error response.
// Unknown errors propagate to the global error handler.
func handleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return errors.WithStack(err)
}

// parsePagination reads page/limit query parameters with sane bounds and
// returns the derived offset.
func parsePagination(c echo.Context) (page, limit, offset int) {
	page = 1
	if v, err := strconv.Atoi(c.QueryParam("page")); err == nil && v > 0 {
		page = v
	}

	limit = defaultPageSize
	if v, err := strconv.Atoi(c.QueryParam("limit")); err == nil && v > 0 {
		limit = v
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}

	return page, limit, (page - 1) * limit
}
