package controllers

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"campusevents/internal/delivery/http/helpers"
	"campusevents/internal/domain"
)

// AddOrganizerRequest is the request body for POST /api/organizers/add.
type AddOrganizerRequest struct {
	Email string `json:"email"`
}

// Validate implements helpers.Validator.
func (req AddOrganizerRequest) Validate() []string {
	email := strings.TrimSpace(strings.ToLower(req.Email))
	if email == "" {
		return []string{"email is required"}
	}
	if !emailRegexp.MatchString(email) {
		return []string{"invalid email format"}
	}
	return nil
}

type UserController struct {
	Logger      *slog.Logger
	Service     domain.UserService
	AuthService domain.AuthService
}

func NewUserController(logger *slog.Logger, svc domain.UserService, authSvc domain.AuthService) *UserController {
	return &UserController{
		Logger:      logger,
		Service:     svc,
		AuthService: authSvc,
	}
}

// AddOrganizer godoc
// @Summary Promote a user to organizer
// @Description Sets the target user's role to organizer. Admin only.
// @Tags organizers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body AddOrganizerRequest true "Target user email"
// @Success 200 {object} helpers.APIResponse "data contains a confirmation message"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /api/organizers/add [post]
func (c *UserController) AddOrganizer(w http.ResponseWriter, r *http.Request) {
	var req AddOrganizerRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	actor, ok := currentUser(w, r, c.AuthService, c.Logger)
	if !ok {
		return
	}
	if err := c.Service.PromoteToOrganizer(r.Context(), actor, req.Email); err != nil {
		writeError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, MessageResponse{
		Message: fmt.Sprintf("User %s is now an organizer", strings.TrimSpace(strings.ToLower(req.Email))),
	})
}
