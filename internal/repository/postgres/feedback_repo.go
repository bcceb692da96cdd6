package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"campusevents/internal/domain"
)

type feedbackRepository struct {
	DB *sql.DB
}

func NewFeedbackRepository(db *sql.DB) domain.FeedbackRepository {
	return &feedbackRepository{DB: db}
}

func (r *feedbackRepository) Create(ctx context.Context, fb *domain.Feedback) error {
	query := `
		INSERT INTO feedback (event_id, user_id, user_name, rating, comment, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query,
		fb.EventID, fb.UserID, fb.UserName, fb.Rating, fb.Comment, fb.CreatedAt,
	).Scan(&fb.ID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return domain.ErrFeedbackExists
		}
		return err
	}
	return nil
}

func (r *feedbackRepository) ListByEventID(ctx context.Context, eventID string) ([]*domain.Feedback, error) {
	query := fmt.Sprintf(`
		SELECT id, event_id, user_id, user_name, rating, comment, created_at
		FROM feedback
		WHERE event_id = $1
		ORDER BY created_at DESC
		LIMIT %d
	`, listLimit)
	rows, err := r.DB.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]*domain.Feedback, 0)
	for rows.Next() {
		fb := &domain.Feedback{}
		if err := rows.Scan(&fb.ID, &fb.EventID, &fb.UserID, &fb.UserName, &fb.Rating, &fb.Comment, &fb.CreatedAt); err != nil {
			return nil, err
		}
		list = append(list, fb)
	}
	return list, rows.Err()
}
