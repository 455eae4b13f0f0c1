package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/dealerdesk/finance-engine/internal/config"
	"github.com/dealerdesk/finance-engine/internal/history"
	"github.com/dealerdesk/finance-engine/internal/repository"
	"github.com/dealerdesk/finance-engine/internal/service"
	"github.com/dealerdesk/finance-engine/pkg/logger"
)

const jobTimeout = 5 * time.Minute

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zlog, err := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = zlog.Sync() }()

	db, err := sqlx.Connect("postgres", cfg.Database.URL)
	if err != nil {
		zlog.Fatal("failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Host + ":" + cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	txRepo := repository.NewTransactionRepository(db)
	cashflowService := service.NewCashflowService(txRepo, service.NewRedisSummaryCache(redisClient), zlog)
	historyService := history.NewService(history.NewRedisStore(redisClient), cfg.Business.HistoryLimit)

	c := cron.New(cron.WithSeconds(), cron.WithLocation(cfg.GetSchedulerLocation()))
	if err := setupCronJobs(c, cfg, cashflowService, historyService, zlog); err != nil {
		zlog.Fatal("failed to schedule jobs", zap.Error(err))
	}

	c.Start()
	zlog.Info("scheduler started",
		zap.String("summary_spec", cfg.Scheduler.SummarySpec),
		zap.String("trim_spec", cfg.Scheduler.TrimSpec),
	)

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zlog.Info("shutting down scheduler")
	<-c.Stop().Done()
	zlog.Info("scheduler stopped")
}

func setupCronJobs(
	c *cron.Cron,
	cfg *config.Config,
	cashflow *service.CashflowService,
	hist *history.Service,
	zlog *zap.Logger,
) error {
	// Nightly cash-flow summary refresh for the current month.
	_, err := c.AddFunc(cfg.Scheduler.SummarySpec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
		defer cancel()

		summary, err := cashflow.RefreshMonthlySummary(ctx, time.Now())
		if err != nil {
			zlog.Error("cashflow summary refresh failed", zap.Error(err))
			return
		}
		zlog.Info("cashflow summary refreshed",
			zap.String("income", summary.Income.String()),
			zap.String("expense", summary.Expense.String()),
		)
	})
	if err != nil {
		return err
	}

	// Weekly trim of the lookup-history list, re-applying the configured cap.
	_, err = c.AddFunc(cfg.Scheduler.TrimSpec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
		defer cancel()

		if err := hist.Trim(ctx, cfg.Business.HistoryOwner); err != nil {
			zlog.Error("lookup history trim failed", zap.Error(err))
			return
		}
		zlog.Info("lookup history trimmed", zap.String("owner", cfg.Business.HistoryOwner))
	})
	return err
}
