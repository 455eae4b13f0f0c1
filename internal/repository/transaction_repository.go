package repository

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"github.com/dealerdesk/finance-engine/internal/domain"
)

type transactionRepository struct {
	db *sqlx.DB
}

func NewTransactionRepository(db *sqlx.DB) TransactionRepository {
	return &transactionRepository{db: db}
}

func (r *transactionRepository) Create(ctx context.Context, tx *domain.Transaction) error {
	query := `
		INSERT INTO transactions (id, description, amount, category_id, type, date, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.ExecContext(ctx, query,
		tx.ID,
		tx.Description,
		tx.Amount,
		tx.CategoryID,
		tx.Type,
		tx.Date,
		tx.Notes,
		tx.CreatedAt,
	)

	return err
}

func (r *transactionRepository) ListByPeriod(ctx context.Context, from, to string) ([]*domain.Transaction, error) {
	query := `
		SELECT id, description, amount, category_id, type, date, notes, created_at
		FROM transactions
		WHERE date >= $1 AND date <= $2
		ORDER BY date, created_at
	`

	var txs []*domain.Transaction
	if err := r.db.SelectContext(ctx, &txs, query, from, to); err != nil {
		return nil, err
	}

	return txs, nil
}

func (r *transactionRepository) SumByTypeInPeriod(ctx context.Context, txType, from, to string) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM transactions
		WHERE type = $1 AND date >= $2 AND date <= $3
	`

	var total decimal.Decimal
	err := r.db.GetContext(ctx, &total, query, txType, from, to)
	if err != nil && err != sql.ErrNoRows {
		return decimal.Zero, err
	}

	return total, nil
}
