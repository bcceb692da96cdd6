package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"campusevents/internal/domain"
)

// fakeUserRepo implements domain.UserRepository for tests.
type fakeUserRepo struct {
	mu      sync.Mutex
	nextID  int
	byID    map[string]*domain.User
	byEmail map[string]*domain.User
	getErr  error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byID:    make(map[string]*domain.User),
		byEmail: make(map[string]*domain.User),
	}
}

func (f *fakeUserRepo) Create(ctx context.Context, u *domain.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.byEmail[u.Email]; ok {
		return domain.ErrDuplicateEmail
	}
	f.nextID++
	u.ID = fmt.Sprintf("user-%d", f.nextID)
	f.byID[u.ID] = u
	f.byEmail[u.Email] = u
	return nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if u, ok := f.byEmail[email]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if u, ok := f.byID[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeUserRepo) UpdateRoleByEmail(ctx context.Context, email string, role domain.Role) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.byEmail[email]
	if !ok {
		return domain.ErrNotFound
	}
	u.Role = role
	return nil
}

func (f *fakeUserRepo) CountAll(ctx context.Context) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.byID), nil
}

// fakeEventRepo implements domain.EventRepository for tests.
type fakeEventRepo struct {
	mu     sync.Mutex
	nextID int
	byID   map[string]*domain.Event
}

func newFakeEventRepo() *fakeEventRepo {
	return &fakeEventRepo{byID: make(map[string]*domain.Event)}
}

func (f *fakeEventRepo) Create(ctx context.Context, e *domain.Event) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	e.ID = fmt.Sprintf("event-%d", f.nextID)
	cp := *e
	f.byID[e.ID] = &cp
	return nil
}

func (f *fakeEventRepo) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if e, ok := f.byID[id]; ok {
		cp := *e
		return &cp, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeEventRepo) List(ctx context.Context, filter domain.EventFilter) ([]*domain.Event, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*domain.Event
	for _, e := range f.byID {
		cp := *e
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeEventRepo) ListByOrganizerID(ctx context.Context, organizerID string) ([]*domain.Event, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*domain.Event, 0)
	for _, e := range f.byID {
		if e.OrganizerID == organizerID {
			cp := *e
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeEventRepo) Update(ctx context.Context, id string, update domain.EventUpdate) (*domain.Event, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	e, ok := f.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if update.Title != nil {
		e.Title = *update.Title
	}
	if update.Description != nil {
		e.Description = *update.Description
	}
	if update.Category != nil {
		e.Category = *update.Category
	}
	if update.Date != nil {
		e.Date = *update.Date
	}
	if update.Time != nil {
		e.Time = *update.Time
	}
	if update.Location != nil {
		e.Location = *update.Location
	}
	if update.Capacity != nil {
		e.Capacity = *update.Capacity
	}
	if update.Status != nil {
		e.Status = *update.Status
	}
	if update.ImageURL != nil {
		e.ImageURL = update.ImageURL
	}
	cp := *e
	return &cp, nil
}

func (f *fakeEventRepo) Delete(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

func (f *fakeEventRepo) CountAll(ctx context.Context) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.byID), nil
}

func (f *fakeEventRepo) CountByOrganizerID(ctx context.Context, organizerID string) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	count := 0
	for _, e := range f.byID {
		if e.OrganizerID == organizerID {
			count++
		}
	}
	return count, nil
}

// fakeRegistrationRepo implements domain.RegistrationRepository. Its
// CreateIfCapacity serializes on a mutex and re-checks the count, mirroring
// the row lock the Postgres implementation takes.
type fakeRegistrationRepo struct {
	mu     sync.Mutex
	nextID int
	byID   map[string]*domain.Registration
	events *fakeEventRepo
}

func newFakeRegistrationRepo(events *fakeEventRepo) *fakeRegistrationRepo {
	return &fakeRegistrationRepo{
		byID:   make(map[string]*domain.Registration),
		events: events,
	}
}

func (f *fakeRegistrationRepo) CreateIfCapacity(ctx context.Context, reg *domain.Registration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	event, err := f.events.GetByID(ctx, reg.EventID)
	if err != nil {
		return domain.ErrNotFound
	}
	count := 0
	for _, existing := range f.byID {
		if existing.EventID == reg.EventID {
			if existing.UserID == reg.UserID {
				return domain.ErrAlreadyRegistered
			}
			count++
		}
	}
	if count >= event.Capacity {
		return domain.ErrEventFull
	}
	f.nextID++
	reg.ID = fmt.Sprintf("reg-%d", f.nextID)
	cp := *reg
	f.byID[reg.ID] = &cp
	return nil
}

func (f *fakeRegistrationRepo) GetByID(ctx context.Context, id string) (*domain.Registration, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if reg, ok := f.byID[id]; ok {
		cp := *reg
		return &cp, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeRegistrationRepo) GetByEventAndUser(ctx context.Context, eventID, userID string) (*domain.Registration, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, reg := range f.byID {
		if reg.EventID == eventID && reg.UserID == userID {
			cp := *reg
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeRegistrationRepo) ListByUserID(ctx context.Context, userID string) ([]*domain.Registration, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*domain.Registration, 0)
	for _, reg := range f.byID {
		if reg.UserID == userID {
			cp := *reg
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeRegistrationRepo) ListByEventID(ctx context.Context, eventID string) ([]*domain.Registration, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*domain.Registration, 0)
	for _, reg := range f.byID {
		if reg.EventID == eventID {
			cp := *reg
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeRegistrationRepo) Delete(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

func (f *fakeRegistrationRepo) CountByEventID(ctx context.Context, eventID string) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	count := 0
	for _, reg := range f.byID {
		if reg.EventID == eventID {
			count++
		}
	}
	return count, nil
}

func (f *fakeRegistrationRepo) CountAttendedByEventID(ctx context.Context, eventID string) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	count := 0
	for _, reg := range f.byID {
		if reg.EventID == eventID && reg.Attendance {
			count++
		}
	}
	return count, nil
}

func (f *fakeRegistrationRepo) CountAll(ctx context.Context) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.byID), nil
}

func (f *fakeRegistrationRepo) CountByUserID(ctx context.Context, userID string) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	count := 0
	for _, reg := range f.byID {
		if reg.UserID == userID {
			count++
		}
	}
	return count, nil
}

func (f *fakeRegistrationRepo) CountByEventOrganizerID(ctx context.Context, organizerID string) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	count := 0
	for _, reg := range f.byID {
		event, err := f.events.GetByID(context.Background(), reg.EventID)
		if err != nil {
			continue
		}
		if event.OrganizerID == organizerID {
			count++
		}
	}
	return count, nil
}

// fakeFeedbackRepo implements domain.FeedbackRepository for tests.
type fakeFeedbackRepo struct {
	mu     sync.Mutex
	nextID int
	byID   map[string]*domain.Feedback
}

func newFakeFeedbackRepo() *fakeFeedbackRepo {
	return &fakeFeedbackRepo{byID: make(map[string]*domain.Feedback)}
}

func (f *fakeFeedbackRepo) Create(ctx context.Context, fb *domain.Feedback) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.byID {
		if existing.EventID == fb.EventID && existing.UserID == fb.UserID {
			return domain.ErrFeedbackExists
		}
	}
	f.nextID++
	fb.ID = fmt.Sprintf("fb-%d", f.nextID)
	cp := *fb
	f.byID[fb.ID] = &cp
	return nil
}

func (f *fakeFeedbackRepo) ListByEventID(ctx context.Context, eventID string) ([]*domain.Feedback, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*domain.Feedback, 0)
	for _, fb := range f.byID {
		if fb.EventID == eventID {
			cp := *fb
			out = append(out, &cp)
		}
	}
	return out, nil
}

// fakeHasher implements domain.PasswordHasher for tests.
type fakeHasher struct {
	hashErr error
}

func (f *fakeHasher) Hash(password string) (string, error) {
	if f.hashErr != nil {
		return "", f.hashErr
	}
	return "hash-" + password, nil
}

func (f *fakeHasher) Compare(hash, password string) error {
	if hash != "hash-"+password {
		return errors.New("mismatch")
	}
	return nil
}

// fakeTokenIssuer implements domain.TokenIssuer for tests.
type fakeTokenIssuer struct {
	err error
}

func (f *fakeTokenIssuer) Issue(userID string, expiry time.Duration) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return "token-" + userID, nil
}

// fakeTicketRenderer implements domain.TicketRenderer for tests.
type fakeTicketRenderer struct {
	err error
}

func (f *fakeTicketRenderer) Render(payload string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return "qr:" + payload, nil
}

// fakeEmailService implements domain.EmailService for tests.
type fakeEmailService struct {
	mu   sync.Mutex
	sent []*domain.TicketEmailData
	err  error
}

func (f *fakeEmailService) SendTicketConfirmation(ctx context.Context, data *domain.TicketEmailData) error {
	if f.err != nil {
		return f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, data)
	return nil
}
