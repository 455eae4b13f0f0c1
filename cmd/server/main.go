package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/dealerdesk/finance-engine/internal/config"
	"github.com/dealerdesk/finance-engine/internal/handler"
	"github.com/dealerdesk/finance-engine/internal/history"
	"github.com/dealerdesk/finance-engine/internal/importer"
	"github.com/dealerdesk/finance-engine/internal/repository"
	"github.com/dealerdesk/finance-engine/internal/service"
	"github.com/dealerdesk/finance-engine/pkg/logger"
	"github.com/dealerdesk/finance-engine/pkg/response"
)

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

	// Initialize database
	db, err := initDB(cfg)
	if err != nil {
		zlog.Fatal("failed to initialize database", zap.Error(err))
	}
	defer db.Close()

	// Initialize Redis
	redisClient := initRedis(cfg)
	defer redisClient.Close()

	// Initialize repositories
	txRepo := repository.NewTransactionRepository(db)
	catRepo := repository.NewCategoryRepository(db)
	quoteRepo := repository.NewQuoteRepository(db)

	// Initialize services
	financingService := service.NewFinancingService(quoteRepo, zlog)
	importService := service.NewImportService(importer.New(zlog), txRepo, catRepo, zlog)
	cashflowService := service.NewCashflowService(txRepo, service.NewRedisSummaryCache(redisClient), zlog)
	historyService := history.NewService(history.NewRedisStore(redisClient), cfg.Business.HistoryLimit)

	// Initialize handlers
	financingHandler := handler.NewFinancingHandler(financingService, cfg)
	importHandler := handler.NewImportHandler(importService, catRepo)
	cashflowHandler := handler.NewCashflowHandler(cashflowService)
	lookupHandler := handler.NewLookupHandler(historyService)
	healthHandler := handler.NewHealthHandler(db, redisClient, cfg.GetHealthTimeout())

	router := setupRoutes(financingHandler, importHandler, cashflowHandler, lookupHandler, healthHandler)
	router.Use(response.LoggingMiddleware(zlog))

	server := &http.Server{
		Addr:         cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:      cors.AllowAll().Handler(router),
		ReadTimeout:  cfg.GetReadTimeout(),
		WriteTimeout: cfg.GetWriteTimeout(),
	}

	// Start server in a goroutine
	go func() {
		zlog.Info("server starting", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Fatal("server failed to start", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zlog.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		zlog.Fatal("server forced to shutdown", zap.Error(err))
	}

	zlog.Info("server exited")
}

func initDB(cfg *config.Config) (*sqlx.DB, error) {
	db, err := sqlx.Connect("postgres", cfg.Database.URL)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)

	return db, nil
}

func initRedis(cfg *config.Config) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Host + ":" + cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
}

func setupRoutes(
	financingHandler *handler.FinancingHandler,
	importHandler *handler.ImportHandler,
	cashflowHandler *handler.CashflowHandler,
	lookupHandler *handler.LookupHandler,
	healthHandler *handler.HealthHandler,
) *mux.Router {
	router := mux.NewRouter()

	// Health check
	router.HandleFunc("/health", healthHandler.Health).Methods("GET")
	router.HandleFunc("/health/ready", healthHandler.Ready).Methods("GET")

	// API routes
	api := router.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/financing/quote", financingHandler.CreateQuote).Methods("POST")
	api.HandleFunc("/financing/quotes", financingHandler.ListQuotes).Methods("GET")
	api.HandleFunc("/financing/quotes/{quoteId}", financingHandler.GetQuote).Methods("GET")

	api.HandleFunc("/imports/preview", importHandler.Preview).Methods("POST")
	api.HandleFunc("/imports/commit", importHandler.Commit).Methods("POST")
	api.HandleFunc("/categories", importHandler.Categories).Methods("GET")

	api.HandleFunc("/cashflow/summary", cashflowHandler.Summary).Methods("GET")

	api.HandleFunc("/lookups", lookupHandler.Record).Methods("POST")
	api.HandleFunc("/lookups/{owner}", lookupHandler.List).Methods("GET")
	api.HandleFunc("/lookups/{owner}/{key}", lookupHandler.Find).Methods("GET")

	return router
}
