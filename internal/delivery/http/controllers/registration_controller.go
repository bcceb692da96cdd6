package controllers

import (
	"log/slog"
	"net/http"
	"strings"

	"campusevents/internal/delivery/http/helpers"
	"campusevents/internal/domain"
)

// RegisterForEventRequest is the request body for POST /api/registrations/register.
type RegisterForEventRequest struct {
	EventID string `json:"event_id"`
}

// Validate implements helpers.Validator.
func (req RegisterForEventRequest) Validate() []string {
	if strings.TrimSpace(req.EventID) == "" {
		return []string{"event_id is required"}
	}
	return nil
}

type RegistrationController struct {
	Logger      *slog.Logger
	Service     domain.RegistrationService
	AuthService domain.AuthService
}

func NewRegistrationController(logger *slog.Logger, svc domain.RegistrationService, authSvc domain.AuthService) *RegistrationController {
	return &RegistrationController{
		Logger:      logger,
		Service:     svc,
		AuthService: authSvc,
	}
}

// Register godoc
// @Summary Register for an event
// @Description Registers the authenticated user and returns the registration with its QR ticket. Fails when the event is full or the user is already registered.
// @Tags registrations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body RegisterForEventRequest true "Event to register for"
// @Success 201 {object} helpers.APIResponse "data contains the registration"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request (event is full)"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (already registered)"
// @Router /api/registrations/register [post]
func (c *RegistrationController) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterForEventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	actor, ok := currentUser(w, r, c.AuthService, c.Logger)
	if !ok {
		return
	}
	reg, err := c.Service.Register(r.Context(), actor, req.EventID)
	if err != nil {
		writeError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, reg)
}

// ListMine godoc
// @Summary List the authenticated user's registrations
// @Tags registrations
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse "data contains the registrations"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /api/registrations/my [get]
func (c *RegistrationController) ListMine(w http.ResponseWriter, r *http.Request) {
	actor, ok := currentUser(w, r, c.AuthService, c.Logger)
	if !ok {
		return
	}
	regs, err := c.Service.ListMine(r.Context(), actor)
	if err != nil {
		writeError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, regs)
}

// ListForEvent godoc
// @Summary List registrations for an event
// @Description Owner or admin only.
// @Tags registrations
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID"
// @Success 200 {object} helpers.APIResponse "data contains the registrations"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /api/registrations/event/{eventID} [get]
func (c *RegistrationController) ListForEvent(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if eventID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing eventID")
		return
	}
	actor, ok := currentUser(w, r, c.AuthService, c.Logger)
	if !ok {
		return
	}
	regs, err := c.Service.ListForEvent(r.Context(), actor, eventID)
	if err != nil {
		writeError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, regs)
}

// Cancel godoc
// @Summary Cancel a registration
// @Description Hard-deletes the registration, freeing one capacity slot. Only the registrant may cancel.
// @Tags registrations
// @Produce json
// @Security BearerAuth
// @Param registrationID path string true "Registration ID"
// @Success 200 {object} helpers.APIResponse "data contains a confirmation message"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /api/registrations/{registrationID} [delete]
func (c *RegistrationController) Cancel(w http.ResponseWriter, r *http.Request) {
	registrationID := r.PathValue("registrationID")
	if registrationID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing registrationID")
		return
	}
	actor, ok := currentUser(w, r, c.AuthService, c.Logger)
	if !ok {
		return
	}
	if err := c.Service.Cancel(r.Context(), actor, registrationID); err != nil {
		writeError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, MessageResponse{Message: "Registration cancelled successfully"})
}
