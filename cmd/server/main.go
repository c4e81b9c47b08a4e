package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/mamadbah2/poultryfarm/internal/config"
	"github.com/mamadbah2/poultryfarm/internal/metrics"
	"github.com/mamadbah2/poultryfarm/internal/repository/mongodb"
	"github.com/mamadbah2/poultryfarm/internal/repository/relational"
	"github.com/mamadbah2/poultryfarm/internal/repository/sheets"
	"github.com/mamadbah2/poultryfarm/internal/scheduler"
	"github.com/mamadbah2/poultryfarm/internal/server/handlers"
	"github.com/mamadbah2/poultryfarm/internal/server/router"
	authsvc "github.com/mamadbah2/poultryfarm/internal/service/auth"
	dashboardsvc "github.com/mamadbah2/poultryfarm/internal/service/dashboard"
	recordsvc "github.com/mamadbah2/poultryfarm/internal/service/records"
	reportingsvc "github.com/mamadbah2/poultryfarm/internal/service/reporting"
	whatsappsvc "github.com/mamadbah2/poultryfarm/internal/service/whatsapp"
	whatsappclient "github.com/mamadbah2/poultryfarm/pkg/clients/whatsapp"
	"github.com/mamadbah2/poultryfarm/pkg/logger"
)

func main() {
	envFile := pflag.String("env-file", "", "path to a .env file (default: ./.env when present)")
	migrateOnly := pflag.Bool("migrate-only", false, "migrate the database schema and exit")
	pflag.Parse()

	cfg, err := config.Load(*envFile)
	if err != nil {
		panic(err)
	}

	baseLogger := logger.Must(logger.New(cfg.Log.Level))
	defer func() { _ = baseLogger.Sync() }()

	zap.ReplaceGlobals(baseLogger)

	// Amounts go over the wire as JSON numbers, as the dashboard expects.
	decimal.MarshalJSONWithoutQuotes = true

	loc, err := cfg.Location()
	if err != nil {
		baseLogger.Fatal("invalid timezone", zap.Error(err))
	}

	startupCtx, cancelStartup := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancelStartup()

	store, err := relational.Open(startupCtx, cfg.Database, logger.Named(baseLogger, "repo.relational"))
	if err != nil {
		baseLogger.Fatal("failed to init relational store", zap.Error(err))
	}
	defer func() {
		if err := store.Close(); err != nil {
			baseLogger.Error("failed to close database", zap.Error(err))
		}
	}()

	if *migrateOnly {
		baseLogger.Info("schema migrated")
		return
	}

	var sinks []reportingsvc.Sink

	if cfg.MongoDB.Enabled() {
		mongoRepo, err := mongodb.NewMongoDBRepository(startupCtx, cfg.MongoDB.URI, cfg.MongoDB.DBName)
		if err != nil {
			baseLogger.Fatal("failed to init mongodb repository", zap.Error(err))
		}
		defer func() {
			if err := mongoRepo.Close(context.Background()); err != nil {
				baseLogger.Error("failed to close mongodb connection", zap.Error(err))
			}
		}()
		sinks = append(sinks, mongoRepo)
	} else {
		baseLogger.Warn("MONGODB_URI missing, report archive disabled")
	}

	if cfg.Sheets.Enabled() {
		reportSheet, err := sheets.NewReportSheet(startupCtx, cfg.Sheets, logger.Named(baseLogger, "repo.sheets"))
		if err != nil {
			baseLogger.Fatal("failed to init sheets repository", zap.Error(err))
		}
		sinks = append(sinks, sheets.NewReportExporter(reportSheet, logger.Named(baseLogger, "repo.sheets")))
	} else {
		baseLogger.Warn("google sheets credentials missing, report export disabled")
	}

	if cfg.WhatsApp.Enabled() {
		whatsClient := whatsappclient.NewClient(cfg.WhatsApp)
		sinks = append(sinks, whatsappsvc.NewReportNotifier(whatsClient, cfg.WhatsApp.ReportRecipient, logger.Named(baseLogger, "svc.whatsapp")))
	} else {
		baseLogger.Warn("whatsapp credentials missing, report notifications disabled")
	}

	appMetrics := metrics.New()

	recordServices := recordsvc.New(store, appMetrics, cfg.Reporting.CurrencyPrefix, logger.Named(baseLogger, "svc.records"))
	dashboardSvc := dashboardsvc.NewService(store, loc, logger.Named(baseLogger, "svc.dashboard"))
	authSvc := authsvc.NewService(store, cfg.Auth.JWTSecret, logger.Named(baseLogger, "svc.auth"))
	reportingSvc := reportingsvc.NewService(store, cfg.Reporting.CurrencyPrefix, logger.Named(baseLogger, "svc.reporting"), sinks...)

	gin.SetMode(gin.ReleaseMode)
	engine := router.New(router.Deps{
		Auth:          handlers.NewAuthHandler(authSvc, logger.Named(baseLogger, "handlers.auth")),
		Records:       handlers.NewRecordsHandler(recordServices, logger.Named(baseLogger, "handlers.records")),
		Dashboard:     handlers.NewDashboardHandler(dashboardSvc, reportingSvc, loc, logger.Named(baseLogger, "handlers.dashboard")),
		Authenticator: authSvc,
		Health:        handlers.Health(store, logger.Named(baseLogger, "handlers.health")),
		Metrics:       appMetrics,
		MetricsExport: appMetrics.Handler(),
	}, logger.Named(baseLogger, "router"))

	if len(sinks) > 0 {
		sched := scheduler.NewScheduler(cfg.Reporting.CronSchedule, loc, reportingSvc, logger.Named(baseLogger, "scheduler"))
		if err := sched.Start(); err != nil {
			baseLogger.Fatal("failed to start scheduler", zap.Error(err))
		}
		defer sched.Stop()
	} else {
		baseLogger.Warn("no report sinks configured, daily report job disabled")
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		baseLogger.Info("server starting", zap.String("port", cfg.Server.Port), zap.Strings("report_sinks", reportingSvc.Sinks()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			baseLogger.Fatal("http server crashed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	baseLogger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		baseLogger.Error("graceful shutdown failed", zap.Error(err))
	}
}
