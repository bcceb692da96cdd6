package controllers

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"campusevents/internal/delivery/http/helpers"
	"campusevents/internal/domain"
)

// SubmitFeedbackRequest is the request body for POST /api/feedback.
type SubmitFeedbackRequest struct {
	EventID string `json:"event_id"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// Validate implements helpers.Validator.
func (req SubmitFeedbackRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(req.EventID) == "" {
		errs = append(errs, "event_id is required")
	}
	if req.Rating < domain.MinRating || req.Rating > domain.MaxRating {
		errs = append(errs, fmt.Sprintf("rating must be between %d and %d", domain.MinRating, domain.MaxRating))
	}
	return errs
}

type FeedbackController struct {
	Logger      *slog.Logger
	Service     domain.FeedbackService
	AuthService domain.AuthService
}

func NewFeedbackController(logger *slog.Logger, svc domain.FeedbackService, authSvc domain.AuthService) *FeedbackController {
	return &FeedbackController{
		Logger:      logger,
		Service:     svc,
		AuthService: authSvc,
	}
}

// Submit godoc
// @Summary Submit feedback for an event
// @Description One feedback per user per event; a second submission fails with conflict.
// @Tags feedback
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body SubmitFeedbackRequest true "Feedback"
// @Success 201 {object} helpers.APIResponse "data contains the feedback"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Router /api/feedback [post]
func (c *FeedbackController) Submit(w http.ResponseWriter, r *http.Request) {
	var req SubmitFeedbackRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	actor, ok := currentUser(w, r, c.AuthService, c.Logger)
	if !ok {
		return
	}
	fb, err := c.Service.Submit(r.Context(), actor, req.EventID, req.Rating, req.Comment)
	if err != nil {
		writeError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, fb)
}

// ListForEvent godoc
// @Summary List feedback for an event
// @Tags feedback
// @Produce json
// @Param eventID path string true "Event ID"
// @Success 200 {object} helpers.APIResponse "data contains the feedback entries"
// @Router /api/feedback/event/{eventID} [get]
func (c *FeedbackController) ListForEvent(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if eventID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing eventID")
		return
	}
	list, err := c.Service.ListForEvent(r.Context(), eventID)
	if err != nil {
		writeError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, list)
}
