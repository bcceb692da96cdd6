package controllers

import (
	"log/slog"
	"net/http"
	"strings"

	"campusevents/internal/delivery/http/helpers"
	"campusevents/internal/domain"
)

// RegisterRequest is the request body for POST /api/auth/register.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Role     string `json:"role"` // optional: admin, organizer, or student (defaults to student)
}

// Validate implements helpers.Validator.
func (req RegisterRequest) Validate() []string {
	var errs []string
	email := strings.TrimSpace(strings.ToLower(req.Email))
	if email == "" {
		errs = append(errs, "email is required")
	} else if !emailRegexp.MatchString(email) {
		errs = append(errs, "invalid email format")
	}
	if req.Password == "" {
		errs = append(errs, "password is required")
	} else if len(req.Password) < 8 {
		errs = append(errs, "password must be at least 8 characters")
	}
	if strings.TrimSpace(req.Name) == "" {
		errs = append(errs, "name is required")
	}
	if _, err := domain.ParseRole(req.Role); err != nil {
		errs = append(errs, "role must be admin, organizer, or student")
	}
	return errs
}

// LoginRequest is the request body for POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate implements helpers.Validator.
func (req LoginRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(req.Email) == "" {
		errs = append(errs, "email is required")
	}
	if req.Password == "" {
		errs = append(errs, "password is required")
	}
	return errs
}

type AuthController struct {
	Logger  *slog.Logger
	Service domain.AuthService
}

func NewAuthController(logger *slog.Logger, svc domain.AuthService) *AuthController {
	return &AuthController{
		Logger:  logger,
		Service: svc,
	}
}

// Register godoc
// @Summary Register a new user
// @Description Create a new account. Role defaults to student. Returns a signed session token and the public user view; the password is stored hashed and never returned.
// @Tags auth
// @Accept json
// @Produce json
// @Param body body RegisterRequest true "Registration data"
// @Success 201 {object} helpers.APIResponse "data contains access_token, token_type, and user"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (email already registered)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/auth/register [post]
func (c *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	token, err := c.Service.SignUp(r.Context(), req.Email, req.Password, req.Name, req.Role)
	if err != nil {
		writeError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, token)
}

// Login godoc
// @Summary Log in
// @Description Authenticate with email and password. Returns a fresh session token and the public user view.
// @Tags auth
// @Accept json
// @Produce json
// @Param body body LoginRequest true "Login credentials"
// @Success 200 {object} helpers.APIResponse "data contains access_token, token_type, and user"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/auth/login [post]
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	token, err := c.Service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, token)
}

// Me godoc
// @Summary Get the authenticated user
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse "data contains the user"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found (account deleted)"
// @Router /api/auth/me [get]
func (c *AuthController) Me(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r, c.Service, c.Logger)
	if !ok {
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, user)
}
