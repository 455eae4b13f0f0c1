package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/dealerdesk/finance-engine/internal/domain"
)

type categoryRepository struct {
	db *sqlx.DB
}

func NewCategoryRepository(db *sqlx.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) List(ctx context.Context) ([]domain.Category, error) {
	query := `
		SELECT id, name, type
		FROM categories
		ORDER BY name
	`

	var categories []domain.Category
	if err := r.db.SelectContext(ctx, &categories, query); err != nil {
		return nil, err
	}

	return categories, nil
}

func (r *categoryRepository) ListByType(ctx context.Context, txType string) ([]domain.Category, error) {
	query := `
		SELECT id, name, type
		FROM categories
		WHERE type = $1
		ORDER BY name
	`

	var categories []domain.Category
	if err := r.db.SelectContext(ctx, &categories, query, txType); err != nil {
		return nil, err
	}

	return categories, nil
}
