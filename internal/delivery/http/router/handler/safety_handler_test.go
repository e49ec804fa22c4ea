package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	deliverycontext "guardian/internal/delivery/context"
	"guardian/internal/delivery/http/validator"
	"guardian/internal/domain/entity"
	mockUC "guardian/internal/mocks/usecase"
	"guardian/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHandlerTestContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder, uuid.UUID) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	userID := uuid.New()
	deliverycontext.SetUserID(c, userID)

	return c, rec, userID
}

func TestSafetyHandler_CheckLocation_Inside(t *testing.T) {
	mockSafety := mockUC.NewMockSafetyUsecase(t)
	h := NewSafetyHandler(SafetyHandlerParams{
		SafetyUC: mockSafety,
		Logger:   slog.Default(),
	})

	c, rec, userID := newHandlerTestContext(t, http.MethodPost, "/api/location/check",
		`{"latitude":25.0330,"longitude":121.5654}`)

	mockSafety.EXPECT().
		CheckLocation(c.Request().Context(), userID, 25.0330, 121.5654).
		Return(&usecase.CheckResult{Outcome: usecase.OutcomeInside, Distance: 12.5}, nil)

	require.NoError(t, h.CheckLocation(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			Outcome  string  `json:"outcome"`
			Distance float64 `json:"distance"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "inside", resp.Data.Outcome)
	assert.Equal(t, 12.5, resp.Data.Distance)
}

func TestSafetyHandler_CheckLocation_InvalidLatitude(t *testing.T) {
	mockSafety := mockUC.NewMockSafetyUsecase(t)
	h := NewSafetyHandler(SafetyHandlerParams{
		SafetyUC: mockSafety,
		Logger:   slog.Default(),
	})

	c, rec, _ := newHandlerTestContext(t, http.MethodPost, "/api/location/check",
		`{"latitude":95.0,"longitude":121.5654}`)

	require.NoError(t, h.CheckLocation(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
}

func TestSafetyHandler_CheckLocation_Unauthenticated(t *testing.T) {
	mockSafety := mockUC.NewMockSafetyUsecase(t)
	h := NewSafetyHandler(SafetyHandlerParams{
		SafetyUC: mockSafety,
		Logger:   slog.Default(),
	})

	e := echo.New()
	e.Validator = validator.New()
	req := httptest.NewRequest(http.MethodPost, "/api/location/check",
		strings.NewReader(`{"latitude":25.0330,"longitude":121.5654}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.CheckLocation(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSafetyHandler_TriggerPanic(t *testing.T) {
	mockSafety := mockUC.NewMockSafetyUsecase(t)
	h := NewSafetyHandler(SafetyHandlerParams{
		SafetyUC: mockSafety,
		Logger:   slog.Default(),
	})

	c, rec, userID := newHandlerTestContext(t, http.MethodPost, "/api/alerts/panic",
		`{"latitude":25.0330,"longitude":121.5654}`)

	alert := &entity.Alert{
		ID:      uuid.New(),
		UserID:  userID,
		Type:    entity.AlertPanicButton,
		Message: "Panic button activated! User may be in danger.",
		SentTo: []entity.DeliveryAttempt{
			{ContactID: uuid.New(), Method: entity.MethodBoth, Status: entity.DeliverySent},
		},
	}

	mockSafety.EXPECT().
		TriggerPanic(c.Request().Context(), userID, 25.0330, 121.5654).
		Return(alert, nil)

	require.NoError(t, h.TriggerPanic(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "panic_button")
	assert.Contains(t, rec.Body.String(), "Panic alert sent to all trusted contacts")
}
