package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	partnerapp "github.com/smedge/backend/internal/application/partner"
	reportapp "github.com/smedge/backend/internal/application/report"
	tradeapp "github.com/smedge/backend/internal/application/trade"
	"github.com/smedge/backend/internal/domain/ledger"
	"github.com/smedge/backend/internal/domain/trade"
	"github.com/smedge/backend/internal/infrastructure/config"
	"github.com/smedge/backend/internal/infrastructure/logger"
	"github.com/smedge/backend/internal/infrastructure/persistence"
	"github.com/smedge/backend/internal/interfaces/http/handler"
	"github.com/smedge/backend/internal/interfaces/http/middleware"
	"github.com/smedge/backend/internal/interfaces/http/router"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load configuration: " + err.Error())
	}

	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("starting smedge backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("error closing database", zap.Error(err))
		}
	}()

	if err := db.Migrate(); err != nil {
		log.Fatal("failed to run migrations", zap.Error(err))
	}

	clientRepo := persistence.NewGormClientRepository(db.DB)
	txRepo := persistence.NewGormTransactionRepository(db.DB)
	orderRepo := persistence.NewGormOrderRepository(db.DB)

	// The reporting ledger lives in memory; hydrate it from storage so
	// reports cover entries recorded in previous runs.
	l := ledger.NewLedger()
	entries, err := txRepo.List(context.Background())
	if err != nil {
		log.Fatal("failed to hydrate ledger", zap.Error(err))
	}
	for _, tx := range entries {
		l.Append(tx)
	}
	log.Info("ledger hydrated", zap.Int("entries", l.Len()))

	clientService := partnerapp.NewClientService(clientRepo, txRepo, l, log)
	orderService := tradeapp.NewOrderService(orderRepo, clientRepo, txRepo, l, trade.NewOrderNumberGenerator(), log)
	reportService := reportapp.NewReportService(l)

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("failed to set trusted proxies", zap.Error(err))
		}
	}

	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.CORS())

	engine.GET("/health", healthHandler(db))

	router.NewRouter(engine, router.WithAPIVersion("v1")).
		Register(handler.NewClientHandler(clientService)).
		Register(handler.NewOrderHandler(orderService)).
		Register(handler.NewReportHandler(reportService)).
		Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("http server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("http server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("forced shutdown", zap.Error(err))
	}
	log.Info("server stopped")
}

func healthHandler(db *persistence.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
