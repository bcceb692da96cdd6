package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campusevents/internal/domain"
)

var (
	testAdmin      = &domain.User{ID: "admin-1", Email: "admin@campus.edu", Name: "Admin", Role: domain.RoleAdmin}
	testOrganizer  = &domain.User{ID: "org-1", Email: "org@campus.edu", Name: "Organizer", Role: domain.RoleOrganizer}
	testOrganizer2 = &domain.User{ID: "org-2", Email: "org2@campus.edu", Name: "Other Organizer", Role: domain.RoleOrganizer}
	testStudent    = &domain.User{ID: "stu-1", Email: "stu@campus.edu", Name: "Student", Role: domain.RoleStudent}
)

func sampleEvent() *domain.Event {
	return &domain.Event{
		Title:       "Tech Talk",
		Description: "An evening on distributed systems",
		Category:    "tech",
		Date:        "2026-09-15",
		Time:        "18:00",
		Location:    "Auditorium B",
		Capacity:    100,
	}
}

func TestEventService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("organizer creates an event and owns it", func(t *testing.T) {
		svc := NewEventService(newFakeEventRepo())

		created, err := svc.Create(ctx, testOrganizer, sampleEvent())
		require.NoError(t, err)
		assert.NotEmpty(t, created.ID)
		assert.Equal(t, testOrganizer.ID, created.OrganizerID)
		assert.Equal(t, domain.EventUpcoming, created.Status)
	})

	t.Run("organizer id from the payload is overwritten", func(t *testing.T) {
		svc := NewEventService(newFakeEventRepo())

		event := sampleEvent()
		event.OrganizerID = "someone-else"
		created, err := svc.Create(ctx, testAdmin, event)
		require.NoError(t, err)
		assert.Equal(t, testAdmin.ID, created.OrganizerID)
	})

	t.Run("student may not create events", func(t *testing.T) {
		svc := NewEventService(newFakeEventRepo())

		_, err := svc.Create(ctx, testStudent, sampleEvent())
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("capacity must be positive", func(t *testing.T) {
		svc := NewEventService(newFakeEventRepo())

		event := sampleEvent()
		event.Capacity = 0
		_, err := svc.Create(ctx, testOrganizer, event)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)

		event.Capacity = -5
		_, err = svc.Create(ctx, testOrganizer, event)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("title is required", func(t *testing.T) {
		svc := NewEventService(newFakeEventRepo())

		event := sampleEvent()
		event.Title = "   "
		_, err := svc.Create(ctx, testOrganizer, event)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("unknown status is rejected", func(t *testing.T) {
		svc := NewEventService(newFakeEventRepo())

		event := sampleEvent()
		event.Status = "archived"
		_, err := svc.Create(ctx, testOrganizer, event)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestEventService_Update(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (domain.EventService, *domain.Event) {
		t.Helper()
		svc := NewEventService(newFakeEventRepo())
		created, err := svc.Create(ctx, testOrganizer, sampleEvent())
		require.NoError(t, err)
		return svc, created
	}

	t.Run("owner updates only the provided fields", func(t *testing.T) {
		svc, event := setup(t)

		title := "Tech Talk (rescheduled)"
		date := "2026-09-22"
		updated, err := svc.Update(ctx, testOrganizer, event.ID, domain.EventUpdate{Title: &title, Date: &date})
		require.NoError(t, err)

		assert.Equal(t, title, updated.Title)
		assert.Equal(t, date, updated.Date)
		assert.Equal(t, event.Description, updated.Description)
		assert.Equal(t, event.Capacity, updated.Capacity)
		assert.Equal(t, event.Location, updated.Location)
	})

	t.Run("admin may update any event", func(t *testing.T) {
		svc, event := setup(t)

		status := domain.EventCancelled
		updated, err := svc.Update(ctx, testAdmin, event.ID, domain.EventUpdate{Status: &status})
		require.NoError(t, err)
		assert.Equal(t, domain.EventCancelled, updated.Status)
	})

	t.Run("non-owning organizer is forbidden", func(t *testing.T) {
		svc, event := setup(t)

		title := "hijacked"
		_, err := svc.Update(ctx, testOrganizer2, event.ID, domain.EventUpdate{Title: &title})
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("student is forbidden", func(t *testing.T) {
		svc, event := setup(t)

		title := "hijacked"
		_, err := svc.Update(ctx, testStudent, event.ID, domain.EventUpdate{Title: &title})
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("capacity update must be positive", func(t *testing.T) {
		svc, event := setup(t)

		capacity := 0
		_, err := svc.Update(ctx, testOrganizer, event.ID, domain.EventUpdate{Capacity: &capacity})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("missing event is not found", func(t *testing.T) {
		svc, _ := setup(t)

		title := "x"
		_, err := svc.Update(ctx, testOrganizer, "missing", domain.EventUpdate{Title: &title})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestEventService_Delete(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (domain.EventService, *domain.Event) {
		t.Helper()
		svc := NewEventService(newFakeEventRepo())
		created, err := svc.Create(ctx, testOrganizer, sampleEvent())
		require.NoError(t, err)
		return svc, created
	}

	t.Run("owner deletes", func(t *testing.T) {
		svc, event := setup(t)

		require.NoError(t, svc.Delete(ctx, testOrganizer, event.ID))
		_, err := svc.Get(ctx, event.ID)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("admin deletes any event", func(t *testing.T) {
		svc, event := setup(t)
		require.NoError(t, svc.Delete(ctx, testAdmin, event.ID))
	})

	t.Run("non-owning organizer is forbidden", func(t *testing.T) {
		svc, event := setup(t)
		assert.ErrorIs(t, svc.Delete(ctx, testOrganizer2, event.ID), domain.ErrForbidden)
	})

	t.Run("missing event is not found", func(t *testing.T) {
		svc, _ := setup(t)
		assert.ErrorIs(t, svc.Delete(ctx, testOrganizer, "missing"), domain.ErrNotFound)
	})
}

func TestEventService_ListOrganized(t *testing.T) {
	ctx := context.Background()
	repo := newFakeEventRepo()
	svc := NewEventService(repo)

	_, err := svc.Create(ctx, testOrganizer, sampleEvent())
	require.NoError(t, err)
	other := sampleEvent()
	other.Title = "Career Fair"
	_, err = svc.Create(ctx, testOrganizer2, other)
	require.NoError(t, err)

	mine, err := svc.ListOrganized(ctx, testOrganizer)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "Tech Talk", mine[0].Title)

	_, err = svc.ListOrganized(ctx, testStudent)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
