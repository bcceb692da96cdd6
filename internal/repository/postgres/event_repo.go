package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"campusevents/internal/domain"
)

// Public listings return at most this many events.
const listLimit = 1000

const eventColumns = `id, title, description, category, date, time, location, capacity, organizer_id, organizer_emails, image_url, status, created_at`

type eventRepository struct {
	DB *sql.DB
}

func NewEventRepository(db *sql.DB) domain.EventRepository {
	return &eventRepository{DB: db}
}

func (r *eventRepository) Create(ctx context.Context, e *domain.Event) error {
	query := `
		INSERT INTO events (title, description, category, date, time, location, capacity, organizer_id, organizer_emails, image_url, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query,
		e.Title, e.Description, e.Category, e.Date, e.Time, e.Location,
		e.Capacity, e.OrganizerID, pq.Array(e.OrganizerEmails), e.ImageURL,
		string(e.Status), e.CreatedAt,
	).Scan(&e.ID)
}

func (r *eventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := fmt.Sprintf(`SELECT %s FROM events WHERE id = $1`, eventColumns)
	e, err := scanEvent(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (r *eventRepository) List(ctx context.Context, filter domain.EventFilter) ([]*domain.Event, error) {
	var conds []string
	var args []interface{}
	n := 1
	if filter.Category != "" {
		conds = append(conds, fmt.Sprintf("category = $%d", n))
		args = append(args, filter.Category)
		n++
	}
	if filter.Search != "" {
		pattern := "%" + escapeLike(filter.Search) + "%"
		conds = append(conds, fmt.Sprintf("(title ILIKE $%d OR description ILIKE $%d)", n, n))
		args = append(args, pattern)
		n++
	}
	where := ""
	if len(conds) > 0 {
		where = "WHERE " + strings.Join(conds, " AND ")
	}
	query := fmt.Sprintf(`
		SELECT %s FROM events
		%s
		ORDER BY created_at DESC
		LIMIT %d
	`, eventColumns, where, listLimit)
	return r.queryEvents(ctx, query, args...)
}

func (r *eventRepository) ListByOrganizerID(ctx context.Context, organizerID string) ([]*domain.Event, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM events
		WHERE organizer_id = $1
		ORDER BY created_at DESC
		LIMIT %d
	`, eventColumns, listLimit)
	return r.queryEvents(ctx, query, organizerID)
}

func (r *eventRepository) Update(ctx context.Context, id string, update domain.EventUpdate) (*domain.Event, error) {
	var setClauses []string
	var args []interface{}
	n := 1
	set := func(col string, val interface{}) {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", col, n))
		args = append(args, val)
		n++
	}
	if update.Title != nil {
		set("title", *update.Title)
	}
	if update.Description != nil {
		set("description", *update.Description)
	}
	if update.Category != nil {
		set("category", *update.Category)
	}
	if update.Date != nil {
		set("date", *update.Date)
	}
	if update.Time != nil {
		set("time", *update.Time)
	}
	if update.Location != nil {
		set("location", *update.Location)
	}
	if update.Capacity != nil {
		set("capacity", *update.Capacity)
	}
	if update.Status != nil {
		set("status", string(*update.Status))
	}
	if update.ImageURL != nil {
		set("image_url", *update.ImageURL)
	}
	if len(setClauses) == 0 {
		// Nothing to change; return the current row.
		return r.GetByID(ctx, id)
	}
	args = append(args, id)
	query := fmt.Sprintf(`
		UPDATE events SET %s
		WHERE id = $%d
		RETURNING %s
	`, strings.Join(setClauses, ", "), n, eventColumns)
	e, err := scanEvent(r.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (r *eventRepository) Delete(ctx context.Context, id string) error {
	// Registrations and feedback go with the event (ON DELETE CASCADE).
	result, err := r.DB.ExecContext(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *eventRepository) CountAll(ctx context.Context) (int, error) {
	var count int
	err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM events`).Scan(&count)
	return count, err
}

func (r *eventRepository) CountByOrganizerID(ctx context.Context, organizerID string) (int, error) {
	var count int
	err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM events WHERE organizer_id = $1`, organizerID).Scan(&count)
	return count, err
}

func (r *eventRepository) queryEvents(ctx context.Context, query string, args ...interface{}) ([]*domain.Event, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := make([]*domain.Event, 0)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanEvent(row rowScanner) (*domain.Event, error) {
	e := &domain.Event{}
	var status string
	var imageNull sql.NullString
	err := row.Scan(
		&e.ID, &e.Title, &e.Description, &e.Category, &e.Date, &e.Time,
		&e.Location, &e.Capacity, &e.OrganizerID, pq.Array(&e.OrganizerEmails),
		&imageNull, &status, &e.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if imageNull.Valid {
		e.ImageURL = &imageNull.String
	}
	e.Status = domain.EventStatus(status)
	if e.OrganizerEmails == nil {
		e.OrganizerEmails = []string{}
	}
	return e, nil
}

// escapeLike escapes LIKE wildcards so user input matches literally.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	s = strings.ReplaceAll(s, `_`, `\_`)
	return s
}
