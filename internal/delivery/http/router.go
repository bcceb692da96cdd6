package http

import (
	"log/slog"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"campusevents/internal/delivery/http/controllers"
	"campusevents/internal/delivery/http/middleware"
	"campusevents/internal/domain"
)

// Controllers bundles the per-resource controllers the router mounts.
type Controllers struct {
	Auth         *controllers.AuthController
	User         *controllers.UserController
	Event        *controllers.EventController
	Registration *controllers.RegistrationController
	Feedback     *controllers.FeedbackController
	Analytics    *controllers.AnalyticsController
}

// NewRouter initializes the HTTP router with all application routes.
// Public endpoints skip the auth wrapper; everything else requires a valid
// Bearer token before the handler runs.
func NewRouter(c Controllers, verifier domain.TokenVerifier, logger *slog.Logger) *http.ServeMux {
	mux := http.NewServeMux()
	protected := middleware.RequireAuth(verifier, logger)

	// Auth
	mux.HandleFunc("POST /api/auth/register", c.Auth.Register)
	mux.HandleFunc("POST /api/auth/login", c.Auth.Login)
	mux.HandleFunc("GET /api/auth/me", protected(c.Auth.Me))

	// Events
	mux.HandleFunc("POST /api/events", protected(c.Event.Create))
	mux.HandleFunc("GET /api/events", c.Event.List)
	mux.HandleFunc("GET /api/events/my/organized", protected(c.Event.ListOrganized))
	mux.HandleFunc("GET /api/events/{eventID}", c.Event.Get)
	mux.HandleFunc("PUT /api/events/{eventID}", protected(c.Event.Update))
	mux.HandleFunc("DELETE /api/events/{eventID}", protected(c.Event.Delete))

	// Registrations
	mux.HandleFunc("POST /api/registrations/register", protected(c.Registration.Register))
	mux.HandleFunc("GET /api/registrations/my", protected(c.Registration.ListMine))
	mux.HandleFunc("GET /api/registrations/event/{eventID}", protected(c.Registration.ListForEvent))
	mux.HandleFunc("DELETE /api/registrations/{registrationID}", protected(c.Registration.Cancel))

	// Feedback
	mux.HandleFunc("POST /api/feedback", protected(c.Feedback.Submit))
	mux.HandleFunc("GET /api/feedback/event/{eventID}", c.Feedback.ListForEvent)

	// Analytics
	mux.HandleFunc("GET /api/analytics/event/{eventID}", protected(c.Analytics.ForEvent))
	mux.HandleFunc("GET /api/analytics/overview", protected(c.Analytics.Overview))

	// Organizers
	mux.HandleFunc("POST /api/organizers/add", protected(c.User.AddOrganizer))

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
