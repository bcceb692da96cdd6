package controllers

import (
	"log/slog"
	"net/http"
	"strings"

	"campusevents/internal/delivery/http/helpers"
	"campusevents/internal/domain"
)

// CreateEventRequest is the request body for POST /api/events.
type CreateEventRequest struct {
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	Category        string   `json:"category"`
	Date            string   `json:"date"`
	Time            string   `json:"time"`
	Location        string   `json:"location"`
	Capacity        int      `json:"capacity"`
	OrganizerEmails []string `json:"organizer_emails"`
	ImageURL        *string  `json:"image_url"`
}

// Validate implements helpers.Validator.
func (req CreateEventRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(req.Title) == "" {
		errs = append(errs, "title is required")
	}
	if strings.TrimSpace(req.Category) == "" {
		errs = append(errs, "category is required")
	}
	if strings.TrimSpace(req.Date) == "" {
		errs = append(errs, "date is required")
	}
	if strings.TrimSpace(req.Time) == "" {
		errs = append(errs, "time is required")
	}
	if strings.TrimSpace(req.Location) == "" {
		errs = append(errs, "location is required")
	}
	if req.Capacity <= 0 {
		errs = append(errs, "capacity must be a positive integer")
	}
	return errs
}

// UpdateEventRequest is the request body for PUT /api/events/{eventID}.
// Only fields present in the body are changed.
type UpdateEventRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
	Date        *string `json:"date"`
	Time        *string `json:"time"`
	Location    *string `json:"location"`
	Capacity    *int    `json:"capacity"`
	Status      *string `json:"status"`
	ImageURL    *string `json:"image_url"`
}

// Validate implements helpers.Validator.
func (req UpdateEventRequest) Validate() []string {
	var errs []string
	if req.Title != nil && strings.TrimSpace(*req.Title) == "" {
		errs = append(errs, "title cannot be empty")
	}
	if req.Capacity != nil && *req.Capacity <= 0 {
		errs = append(errs, "capacity must be a positive integer")
	}
	if req.Status != nil {
		if _, err := domain.ParseEventStatus(*req.Status); err != nil {
			errs = append(errs, "status must be upcoming, ongoing, completed, or cancelled")
		}
	}
	return errs
}

func (req UpdateEventRequest) toUpdate() domain.EventUpdate {
	update := domain.EventUpdate{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Date:        req.Date,
		Time:        req.Time,
		Location:    req.Location,
		Capacity:    req.Capacity,
		ImageURL:    req.ImageURL,
	}
	if req.Status != nil {
		status := domain.EventStatus(*req.Status)
		update.Status = &status
	}
	return update
}

type EventController struct {
	Logger      *slog.Logger
	Service     domain.EventService
	AuthService domain.AuthService
}

func NewEventController(logger *slog.Logger, svc domain.EventService, authSvc domain.AuthService) *EventController {
	return &EventController{
		Logger:      logger,
		Service:     svc,
		AuthService: authSvc,
	}
}

// Create godoc
// @Summary Create an event
// @Description Create a new event owned by the authenticated user. Admins and organizers only; the organizer id is always the caller's.
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreateEventRequest true "Event fields"
// @Success 201 {object} helpers.APIResponse "data contains the created event"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Router /api/events [post]
func (c *EventController) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateEventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	actor, ok := currentUser(w, r, c.AuthService, c.Logger)
	if !ok {
		return
	}
	event := &domain.Event{
		Title:           req.Title,
		Description:     req.Description,
		Category:        req.Category,
		Date:            req.Date,
		Time:            req.Time,
		Location:        req.Location,
		Capacity:        req.Capacity,
		OrganizerEmails: req.OrganizerEmails,
		ImageURL:        req.ImageURL,
	}
	created, err := c.Service.Create(r.Context(), actor, event)
	if err != nil {
		writeError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, created)
}

// List godoc
// @Summary List events
// @Description Public listing. category filters exactly; search matches title or description case-insensitively.
// @Tags events
// @Produce json
// @Param category query string false "Exact category filter"
// @Param search query string false "Substring search on title or description"
// @Success 200 {object} helpers.APIResponse "data contains the events"
// @Router /api/events [get]
func (c *EventController) List(w http.ResponseWriter, r *http.Request) {
	filter := domain.EventFilter{
		Category: r.URL.Query().Get("category"),
		Search:   r.URL.Query().Get("search"),
	}
	events, err := c.Service.List(r.Context(), filter)
	if err != nil {
		writeError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, events)
}

// Get godoc
// @Summary Get an event
// @Tags events
// @Produce json
// @Param eventID path string true "Event ID"
// @Success 200 {object} helpers.APIResponse "data contains the event"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /api/events/{eventID} [get]
func (c *EventController) Get(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if eventID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing eventID")
		return
	}
	event, err := c.Service.Get(r.Context(), eventID)
	if err != nil {
		writeError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, event)
}

// Update godoc
// @Summary Update an event
// @Description Partial update: only fields present in the body change. Owner or admin only.
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID"
// @Param body body UpdateEventRequest true "Fields to change"
// @Success 200 {object} helpers.APIResponse "data contains the updated event"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /api/events/{eventID} [put]
func (c *EventController) Update(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if eventID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing eventID")
		return
	}
	var req UpdateEventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	actor, ok := currentUser(w, r, c.AuthService, c.Logger)
	if !ok {
		return
	}
	event, err := c.Service.Update(r.Context(), actor, eventID, req.toUpdate())
	if err != nil {
		writeError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, event)
}

// Delete godoc
// @Summary Delete an event
// @Description Deletes the event and its registrations and feedback. Owner or admin only.
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID"
// @Success 200 {object} helpers.APIResponse "data contains a confirmation message"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /api/events/{eventID} [delete]
func (c *EventController) Delete(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if eventID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing eventID")
		return
	}
	actor, ok := currentUser(w, r, c.AuthService, c.Logger)
	if !ok {
		return
	}
	if err := c.Service.Delete(r.Context(), actor, eventID); err != nil {
		writeError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, MessageResponse{Message: "Event deleted successfully"})
}

// ListOrganized godoc
// @Summary List events organized by the authenticated user
// @Tags events
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse "data contains the events"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Router /api/events/my/organized [get]
func (c *EventController) ListOrganized(w http.ResponseWriter, r *http.Request) {
	actor, ok := currentUser(w, r, c.AuthService, c.Logger)
	if !ok {
		return
	}
	events, err := c.Service.ListOrganized(r.Context(), actor)
	if err != nil {
		writeError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, events)
}
