package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/dealerdesk/finance-engine/internal/domain"
	"github.com/dealerdesk/finance-engine/internal/repository"
	customError "github.com/dealerdesk/finance-engine/pkg/errors"
	"github.com/dealerdesk/finance-engine/pkg/utils"
)

// SummaryCache stores computed period summaries keyed by "yyyy-mm".
type SummaryCache interface {
	Get(ctx context.Context, period string) (*domain.CashflowSummary, error)
	Set(ctx context.Context, period string, summary *domain.CashflowSummary) error
}

type CashflowService struct {
	txRepo repository.TransactionRepository
	cache  SummaryCache
	log    *zap.Logger
}

func NewCashflowService(txRepo repository.TransactionRepository, cache SummaryCache, log *zap.Logger) *CashflowService {
	if log == nil {
		log = zap.NewNop()
	}
	return &CashflowService{txRepo: txRepo, cache: cache, log: log}
}

// MonthlySummary totals income and expense entries for ref's month.
func (s *CashflowService) MonthlySummary(ctx context.Context, ref time.Time) (*domain.CashflowSummary, error) {
	from, to := utils.MonthBounds(ref)

	income, err := s.txRepo.SumByTypeInPeriod(ctx, domain.TransactionTypeIncome, from, to)
	if err != nil {
		return nil, customError.WrapDatabaseError(err)
	}

	expense, err := s.txRepo.SumByTypeInPeriod(ctx, domain.TransactionTypeExpense, from, to)
	if err != nil {
		return nil, customError.WrapDatabaseError(err)
	}

	start, _ := time.Parse(utils.DateLayout, from)
	end, _ := time.Parse(utils.DateLayout, to)

	return &domain.CashflowSummary{
		PeriodStart: start,
		PeriodEnd:   end,
		Income:      income,
		Expense:     expense,
		Net:         income.Sub(expense),
		ComputedAt:  time.Now(),
	}, nil
}

// RefreshMonthlySummary recomputes ref's month and writes it to the cache.
// Called by the nightly scheduler job.
func (s *CashflowService) RefreshMonthlySummary(ctx context.Context, ref time.Time) (*domain.CashflowSummary, error) {
	summary, err := s.MonthlySummary(ctx, ref)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, ref.Format("2006-01"), summary); err != nil {
		return nil, err
	}

	s.log.Info("cashflow summary refreshed",
		zap.String("period", ref.Format("2006-01")),
		zap.String("net", summary.Net.String()),
	)

	return summary, nil
}

// Summary serves ref's month from cache, falling back to a live computation
// on a miss.
func (s *CashflowService) Summary(ctx context.Context, ref time.Time) (*domain.CashflowSummary, error) {
	cached, err := s.cache.Get(ctx, ref.Format("2006-01"))
	if err != nil {
		s.log.Warn("summary cache read failed", zap.Error(err))
	}
	if cached != nil {
		return cached, nil
	}

	return s.MonthlySummary(ctx, ref)
}

const summaryKeyPrefix = "cashflow-summary:"

// RedisSummaryCache keeps summaries in Redis with a day-scale TTL; the
// nightly refresh overwrites them well before expiry.
type RedisSummaryCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisSummaryCache(client *redis.Client) *RedisSummaryCache {
	return &RedisSummaryCache{client: client, ttl: 48 * time.Hour}
}

func (c *RedisSummaryCache) Get(ctx context.Context, period string) (*domain.CashflowSummary, error) {
	raw, err := c.client.Get(ctx, summaryKeyPrefix+period).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, customError.WrapCacheError(err)
	}

	var summary domain.CashflowSummary
	if err := json.Unmarshal(raw, &summary); err != nil {
		return nil, customError.WrapCacheError(err)
	}
	return &summary, nil
}

func (c *RedisSummaryCache) Set(ctx context.Context, period string, summary *domain.CashflowSummary) error {
	raw, err := json.Marshal(summary)
	if err != nil {
		return customError.WrapCacheError(err)
	}

	if err := c.client.Set(ctx, summaryKeyPrefix+period, raw, c.ttl).Err(); err != nil {
		return customError.WrapCacheError(err)
	}
	return nil
}
