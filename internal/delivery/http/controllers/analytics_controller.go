package controllers

import (
	"log/slog"
	"net/http"

	"campusevents/internal/delivery/http/helpers"
	"campusevents/internal/domain"
)

type AnalyticsController struct {
	Logger      *slog.Logger
	Service     domain.AnalyticsService
	AuthService domain.AuthService
}

func NewAnalyticsController(logger *slog.Logger, svc domain.AnalyticsService, authSvc domain.AuthService) *AnalyticsController {
	return &AnalyticsController{
		Logger:      logger,
		Service:     svc,
		AuthService: authSvc,
	}
}

// ForEvent godoc
// @Summary Get analytics for an event
// @Description Registration, attendance, and feedback figures. Owner or admin only.
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID"
// @Success 200 {object} helpers.APIResponse "data contains the event analytics"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /api/analytics/event/{eventID} [get]
func (c *AnalyticsController) ForEvent(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if eventID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing eventID")
		return
	}
	actor, ok := currentUser(w, r, c.AuthService, c.Logger)
	if !ok {
		return
	}
	analytics, err := c.Service.ForEvent(r.Context(), actor, eventID)
	if err != nil {
		writeError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, analytics)
}

// Overview godoc
// @Summary Get role-scoped overview analytics
// @Description Admins see global counts; organizers see their own events and registrations; students see global events and their own registrations.
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse "data contains the overview analytics"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /api/analytics/overview [get]
func (c *AnalyticsController) Overview(w http.ResponseWriter, r *http.Request) {
	actor, ok := currentUser(w, r, c.AuthService, c.Logger)
	if !ok {
		return
	}
	overview, err := c.Service.Overview(r.Context(), actor)
	if err != nil {
		writeError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, overview)
}
