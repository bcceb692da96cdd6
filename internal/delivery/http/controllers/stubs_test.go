package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"

	"campusevents/internal/delivery/http/middleware"
	"campusevents/internal/domain"
)

// stubAuthService returns canned values; CurrentUser resolves any user ID to
// the configured user so handlers under test see an authenticated actor.
type stubAuthService struct {
	user  *domain.User
	token *domain.AuthToken
	err   error
}

func (s *stubAuthService) SignUp(ctx context.Context, email, password, name, role string) (*domain.AuthToken, error) {
	return s.token, s.err
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (*domain.AuthToken, error) {
	return s.token, s.err
}

func (s *stubAuthService) CurrentUser(ctx context.Context, userID string) (*domain.User, error) {
	if s.user == nil {
		return nil, domain.ErrUserNotFound
	}
	return s.user, nil
}

type stubEventService struct {
	event  *domain.Event
	events []*domain.Event
	err    error
}

func (s *stubEventService) Create(ctx context.Context, actor *domain.User, event *domain.Event) (*domain.Event, error) {
	return s.event, s.err
}

func (s *stubEventService) List(ctx context.Context, filter domain.EventFilter) ([]*domain.Event, error) {
	return s.events, s.err
}

func (s *stubEventService) Get(ctx context.Context, id string) (*domain.Event, error) {
	return s.event, s.err
}

func (s *stubEventService) Update(ctx context.Context, actor *domain.User, id string, update domain.EventUpdate) (*domain.Event, error) {
	return s.event, s.err
}

func (s *stubEventService) Delete(ctx context.Context, actor *domain.User, id string) error {
	return s.err
}

func (s *stubEventService) ListOrganized(ctx context.Context, actor *domain.User) ([]*domain.Event, error) {
	return s.events, s.err
}

type stubRegistrationService struct {
	reg  *domain.Registration
	regs []*domain.Registration
	err  error
}

func (s *stubRegistrationService) Register(ctx context.Context, actor *domain.User, eventID string) (*domain.Registration, error) {
	return s.reg, s.err
}

func (s *stubRegistrationService) ListMine(ctx context.Context, actor *domain.User) ([]*domain.Registration, error) {
	return s.regs, s.err
}

func (s *stubRegistrationService) ListForEvent(ctx context.Context, actor *domain.User, eventID string) ([]*domain.Registration, error) {
	return s.regs, s.err
}

func (s *stubRegistrationService) Cancel(ctx context.Context, actor *domain.User, registrationID string) error {
	return s.err
}

type stubFeedbackService struct {
	fb   *domain.Feedback
	list []*domain.Feedback
	err  error
}

func (s *stubFeedbackService) Submit(ctx context.Context, actor *domain.User, eventID string, rating int, comment string) (*domain.Feedback, error) {
	return s.fb, s.err
}

func (s *stubFeedbackService) ListForEvent(ctx context.Context, eventID string) ([]*domain.Feedback, error) {
	return s.list, s.err
}

type stubUserService struct {
	err error
}

func (s *stubUserService) PromoteToOrganizer(ctx context.Context, actor *domain.User, targetEmail string) error {
	return s.err
}

type stubAnalyticsService struct {
	event    *domain.EventAnalytics
	overview *domain.OverviewAnalytics
	err      error
}

func (s *stubAnalyticsService) ForEvent(ctx context.Context, actor *domain.User, eventID string) (*domain.EventAnalytics, error) {
	return s.event, s.err
}

func (s *stubAnalyticsService) Overview(ctx context.Context, actor *domain.User) (*domain.OverviewAnalytics, error) {
	return s.overview, s.err
}

// newRequest builds a JSON request carrying an authenticated user ID, the way
// requests arrive after the auth middleware has run.
func newRequest(method, target, body string) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	return req.WithContext(middleware.SetUserID(req.Context(), "user-1"))
}
