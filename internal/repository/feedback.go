package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/c0d3g3n/codegen-api/internal/model"
)

// FeedbackRepository defines persistence for conversion feedback.
type FeedbackRepository interface {
	Create(ctx context.Context, feedback *model.Feedback) (*model.Feedback, error)
	ListByUser(ctx context.Context, userID int64) ([]model.Feedback, error)
}

type feedbackPostgresRepository struct {
	db *sql.DB
}

// NewFeedbackPostgresRepository creates a Postgres-backed FeedbackRepository.
func NewFeedbackPostgresRepository(db *sql.DB) FeedbackRepository {
	return &feedbackPostgresRepository{db: db}
}

func (r *feedbackPostgresRepository) Create(ctx context.Context, feedback *model.Feedback) (*model.Feedback, error) {
	query := `INSERT INTO feedback (user_id, original_code, converted_code, rating, comments)
	          VALUES ($1, $2, $3, $4, NULLIF($5, ''))
	          RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query,
		feedback.UserID,
		feedback.OriginalCode,
		feedback.ConvertedCode,
		feedback.Rating,
		feedback.Comments,
	).Scan(&feedback.ID, &feedback.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create feedback: %w", err)
	}

	return feedback, nil
}

func (r *feedbackPostgresRepository) ListByUser(ctx context.Context, userID int64) ([]model.Feedback, error) {
	query := `SELECT id, user_id, original_code, converted_code, rating, comments, created_at
	          FROM feedback
	          WHERE user_id = $1
	          ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list feedback: %w", err)
	}
	defer rows.Close()

	var entries []model.Feedback
	for rows.Next() {
		var f model.Feedback
		var comments sql.NullString
		if err := rows.Scan(
			&f.ID,
			&f.UserID,
			&f.OriginalCode,
			&f.ConvertedCode,
			&f.Rating,
			&comments,
			&f.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan feedback: %w", err)
		}

		f.Comments = comments.String
		entries = append(entries, f)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate feedback: %w", err)
	}

	return entries, nil
}
