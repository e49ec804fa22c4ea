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

// ContactHandlerParams holds dependencies for ContactHandler, injected by Fx.
type ContactHandlerParams struct {
	fx.In

	ContactUC usecase.ContactUsecase
	Logger    *slog.Logger
}

// ContactHandler holds dependencies for emergency contact handlers
type ContactHandler struct {
	contactUC usecase.ContactUsecase
	logger    *slog.Logger
}

// NewContactHandler is the constructor for ContactHandler
func NewContactHandler(params ContactHandlerParams) *ContactHandler {
	return &ContactHandler{
		contactUC: params.ContactUC,
		logger:    params.Logger,
	}
}

// ContactRequest represents the request body for creating or updating a contact
type ContactRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email,omitempty" validate:"omitempty,email"`
	Mobile   string `json:"mobile,omitempty"`
	IsActive bool   `json:"is_active"`
}

// CreateContact handles registering a new emergency contact
func (h *ContactHandler) CreateContact(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	var req ContactRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid contact input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	contact, err := h.contactUC.CreateContact(c.Request().Context(), userID, usecase.ContactInput{
		Name:     req.Name,
		Email:    req.Email,
		Mobile:   req.Mobile,
		IsActive: req.IsActive,
	})
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, contact, "Contact created successfully")
}

// ListContacts handles retrieving all of the caller's contacts
func (h *ContactHandler) ListContacts(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	contacts, err := h.contactUC.ListContacts(c.Request().Context(), userID)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, contacts, "Contacts retrieved successfully")
}

// UpdateContact handles updating an emergency contact
func (h *ContactHandler) UpdateContact(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	contactID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid contact ID")
	}

	var req ContactRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid contact input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	contact, err := h.contactUC.UpdateContact(c.Request().Context(), userID, contactID, usecase.ContactInput{
		Name:     req.Name,
		Email:    req.Email,
		Mobile:   req.Mobile,
		IsActive: req.IsActive,
	})
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, contact, "Contact updated successfully")
}

// DeleteContact handles removing an emergency contact
func (h *ContactHandler) DeleteContact(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	contactID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid contact ID")
	}

	if err := h.contactUC.DeleteContact(c.Request().Context(), userID, contactID); err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Contact deleted successfully"}, "Contact deleted successfully")
}
