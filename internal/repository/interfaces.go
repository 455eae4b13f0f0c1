package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dealerdesk/finance-engine/internal/domain"
)

// TransactionRepository defines the interface for cash-flow entry operations
type TransactionRepository interface {
	// Create persists a single cash-flow entry
	Create(ctx context.Context, tx *domain.Transaction) error

	// ListByPeriod returns entries with from <= date <= to (yyyy-mm-dd bounds)
	ListByPeriod(ctx context.Context, from, to string) ([]*domain.Transaction, error)

	// SumByTypeInPeriod totals entry amounts of one type inside a period
	SumByTypeInPeriod(ctx context.Context, txType, from, to string) (decimal.Decimal, error)
}

// CategoryRepository defines the interface for category operations
type CategoryRepository interface {
	// List returns all categories
	List(ctx context.Context) ([]domain.Category, error)

	// ListByType returns categories of one transaction type
	ListByType(ctx context.Context, txType string) ([]domain.Category, error)
}

// QuoteRepository defines the interface for stored financing simulations
type QuoteRepository interface {
	// Create persists a financing quote
	Create(ctx context.Context, quote *domain.Quote) error

	// GetByID retrieves a quote by its id
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Quote, error)

	// ListRecent returns the newest quotes, most recent first
	ListRecent(ctx context.Context, limit int) ([]*domain.Quote, error)
}
