package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/c0d3g3n/codegen-api/internal/model"
)

// ConversionRepository defines persistence for conversion history.
type ConversionRepository interface {
	Create(ctx context.Context, conversion *model.Conversion) (*model.Conversion, error)
	ListByUser(ctx context.Context, userID int64) ([]model.Conversion, error)
}

type conversionPostgresRepository struct {
	db *sql.DB
}

// NewConversionPostgresRepository creates a Postgres-backed ConversionRepository.
func NewConversionPostgresRepository(db *sql.DB) ConversionRepository {
	return &conversionPostgresRepository{db: db}
}

func (r *conversionPostgresRepository) Create(
	ctx context.Context,
	conversion *model.Conversion,
) (*model.Conversion, error) {
	query := `INSERT INTO conversions (user_id, legacy_code, source_language, target_language, modern_code)
	          VALUES ($1, $2, $3, $4, $5)
	          RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query,
		conversion.UserID,
		conversion.LegacyCode,
		conversion.SourceLanguage,
		conversion.TargetLanguage,
		conversion.ModernCode,
	).Scan(&conversion.ID, &conversion.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create conversion: %w", err)
	}

	return conversion, nil
}

func (r *conversionPostgresRepository) ListByUser(ctx context.Context, userID int64) ([]model.Conversion, error) {
	query := `SELECT id, user_id, legacy_code, source_language, target_language, modern_code, created_at
	          FROM conversions
	          WHERE user_id = $1
	          ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list conversions: %w", err)
	}
	defer rows.Close()

	var conversions []model.Conversion
	for rows.Next() {
		var c model.Conversion
		if err := rows.Scan(
			&c.ID,
			&c.UserID,
			&c.LegacyCode,
			&c.SourceLanguage,
			&c.TargetLanguage,
			&c.ModernCode,
			&c.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan conversion: %w", err)
		}

		conversions = append(conversions, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate conversions: %w", err)
	}

	return conversions, nil
}
