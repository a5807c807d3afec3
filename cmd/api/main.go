package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	httpadp "fineract-prequalification/internal/adapter/http"
	idem "fineract-prequalification/internal/adapter/middleware"
	"fineract-prequalification/internal/adapter/repository/mysql"
	"fineract-prequalification/internal/config"
	"fineract-prequalification/internal/domain/codes"
	"fineract-prequalification/internal/domain/policy"
	"fineract-prequalification/internal/infrastructure/bureau"
	"fineract-prequalification/internal/infrastructure/cache"
	"fineract-prequalification/internal/infrastructure/db"
	"fineract-prequalification/internal/infrastructure/logger"
	bureauuc "fineract-prequalification/internal/usecase/bureau"
	checklistuc "fineract-prequalification/internal/usecase/checklist"
	scheduleuc "fineract-prequalification/internal/usecase/schedule"
	"fineract-prequalification/pkg/id"
)

func main() {
	cfg := config.Load()

	log, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	if err := cfg.Validate(); err != nil {
		log.Fatal("invalid config", zap.Error(err))
	}
	table, _ := cfg.PolicyTable()

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatal("open mysql", zap.Error(err))
	}
	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err != nil {
		log.Fatal("open redis", zap.Error(err))
	}
	defer func() { _ = rdb.Close() }()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	registry, err := codes.Load(ctx, mysql.NewCodeRepository(gdb))
	cancel()
	if err != nil {
		log.Fatal("load code values", zap.Error(err))
	}

	loans := mysql.NewLoanRepository(gdb)
	tx := mysql.NewGormUoW(gdb)
	checker := bureau.NewCachedChecker(bureau.NewHistoryChecker(loans), rdb, cfg.BureauCacheTTL(), log)

	checklistUC := checklistuc.NewUsecase(tx, mysql.NewChecklistRepository(gdb), policy.NewEvaluator(table), registry, log)
	bureauUC := bureauuc.NewUsecase(tx, checker, log)
	scheduleUC := scheduleuc.NewUsecase(loans, log)

	sqlDB, err := gdb.DB()
	if err != nil {
		log.Fatal("sql handle", zap.Error(err))
	}
	h := httpadp.NewHandler(
		httpadp.Dependency{Name: "mysql", Ping: sqlDB.PingContext},
		httpadp.Dependency{Name: "redis", Ping: func(ctx context.Context) error { return rdb.Ping(ctx).Err() }},
	)
	ch := httpadp.NewChecklistHandler(checklistUC, bureauUC, log)
	sh := httpadp.NewScheduleHandler(scheduleUC, log)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{Generator: id.NewID32}))
	e.Use(middleware.Logger(), middleware.Recover())

	idempotent := idem.IdempotencyMiddleware(rdb, cfg.IdempotencyTTL(), log)

	// routes
	e.GET("/health", h.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/prequalification/checklist", ch.List)
	e.POST("/prequalification/checklist/:prequalification_id", ch.Command, idempotent)
	e.POST("/loans/:loan_id/schedule/recalculate", sh.Recalculate, idempotent)

	go func() {
		addr := ":" + cfg.AppPort
		log.Info("listening", zap.String("addr", addr))
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server stopped", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	shutdownCtx, stop := context.WithTimeout(context.Background(), 10*time.Second)
	defer stop()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown", zap.Error(err))
	}
}
