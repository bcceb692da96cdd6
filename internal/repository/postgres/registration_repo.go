package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"campusevents/internal/domain"
)

const registrationColumns = `id, event_id, user_id, user_name, user_email, ticket_qr_code, status, attendance, registered_at`

type registrationRepository struct {
	DB *sql.DB
}

func NewRegistrationRepository(db *sql.DB) domain.RegistrationRepository {
	return &registrationRepository{DB: db}
}

// CreateIfCapacity locks the event row, so concurrent registrations for the
// same event serialize on the capacity check and the count can never pass it.
func (r *registrationRepository) CreateIfCapacity(ctx context.Context, reg *domain.Registration) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var capacity int
	err = tx.QueryRowContext(ctx, `SELECT capacity FROM events WHERE id = $1 FOR UPDATE`, reg.EventID).Scan(&capacity)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("lock event: %w", err)
	}

	var count int
	err = tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM registrations WHERE event_id = $1`, reg.EventID).Scan(&count)
	if err != nil {
		return fmt.Errorf("count registrations: %w", err)
	}
	if count >= capacity {
		return domain.ErrEventFull
	}

	query := `
		INSERT INTO registrations (event_id, user_id, user_name, user_email, ticket_qr_code, status, attendance, registered_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`
	err = tx.QueryRowContext(ctx, query,
		reg.EventID, reg.UserID, reg.UserName, reg.UserEmail,
		reg.TicketQRCode, string(reg.Status), reg.Attendance, reg.RegisteredAt,
	).Scan(&reg.ID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return domain.ErrAlreadyRegistered
		}
		return fmt.Errorf("insert registration: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

func (r *registrationRepository) GetByID(ctx context.Context, id string) (*domain.Registration, error) {
	query := fmt.Sprintf(`SELECT %s FROM registrations WHERE id = $1`, registrationColumns)
	return r.scanRegistration(r.DB.QueryRowContext(ctx, query, id))
}

func (r *registrationRepository) GetByEventAndUser(ctx context.Context, eventID, userID string) (*domain.Registration, error) {
	query := fmt.Sprintf(`SELECT %s FROM registrations WHERE event_id = $1 AND user_id = $2`, registrationColumns)
	return r.scanRegistration(r.DB.QueryRowContext(ctx, query, eventID, userID))
}

func (r *registrationRepository) ListByUserID(ctx context.Context, userID string) ([]*domain.Registration, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM registrations
		WHERE user_id = $1
		ORDER BY registered_at DESC
		LIMIT %d
	`, registrationColumns, listLimit)
	return r.queryRegistrations(ctx, query, userID)
}

func (r *registrationRepository) ListByEventID(ctx context.Context, eventID string) ([]*domain.Registration, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM registrations
		WHERE event_id = $1
		ORDER BY registered_at DESC
		LIMIT %d
	`, registrationColumns, listLimit)
	return r.queryRegistrations(ctx, query, eventID)
}

func (r *registrationRepository) Delete(ctx context.Context, id string) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM registrations WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *registrationRepository) CountByEventID(ctx context.Context, eventID string) (int, error) {
	var count int
	err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM registrations WHERE event_id = $1`, eventID).Scan(&count)
	return count, err
}

func (r *registrationRepository) CountAttendedByEventID(ctx context.Context, eventID string) (int, error) {
	var count int
	err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM registrations WHERE event_id = $1 AND attendance = TRUE`, eventID).Scan(&count)
	return count, err
}

func (r *registrationRepository) CountAll(ctx context.Context) (int, error) {
	var count int
	err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM registrations`).Scan(&count)
	return count, err
}

func (r *registrationRepository) CountByUserID(ctx context.Context, userID string) (int, error) {
	var count int
	err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM registrations WHERE user_id = $1`, userID).Scan(&count)
	return count, err
}

func (r *registrationRepository) CountByEventOrganizerID(ctx context.Context, organizerID string) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM registrations r
		JOIN events e ON e.id = r.event_id
		WHERE e.organizer_id = $1
	`
	var count int
	err := r.DB.QueryRowContext(ctx, query, organizerID).Scan(&count)
	return count, err
}

func (r *registrationRepository) scanRegistration(row *sql.Row) (*domain.Registration, error) {
	reg := &domain.Registration{}
	var status string
	err := row.Scan(
		&reg.ID, &reg.EventID, &reg.UserID, &reg.UserName, &reg.UserEmail,
		&reg.TicketQRCode, &status, &reg.Attendance, &reg.RegisteredAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	reg.Status = domain.RegistrationStatus(status)
	return reg, nil
}

func (r *registrationRepository) queryRegistrations(ctx context.Context, query string, args ...interface{}) ([]*domain.Registration, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	regs := make([]*domain.Registration, 0)
	for rows.Next() {
		reg := &domain.Registration{}
		var status string
		if err := rows.Scan(
			&reg.ID, &reg.EventID, &reg.UserID, &reg.UserName, &reg.UserEmail,
			&reg.TicketQRCode, &status, &reg.Attendance, &reg.RegisteredAt,
		); err != nil {
			return nil, err
		}
		reg.Status = domain.RegistrationStatus(status)
		regs = append(regs, reg)
	}
	return regs, rows.Err()
}
