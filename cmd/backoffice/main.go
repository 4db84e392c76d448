package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"carshare/internal/app"
	"carshare/internal/auth"
	"carshare/internal/backup"
	"carshare/internal/cache"
	"carshare/internal/config"
	"carshare/internal/database"
	"carshare/internal/export"
	"carshare/internal/metrics"
	"carshare/internal/notify"
)

func main() {
	// Initialize logger
	output := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	logger := zerolog.New(output).With().Timestamp().Logger()

	_ = godotenv.Load()

	cfg, err := config.Load(os.Getenv("CARSHARE_CONFIG_PATH"))
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}

	db, err := database.New(cfg.Database.Path, &logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("open db error")
	}
	defer db.Close()

	store := cache.NewStore()
	var rdb *redis.Client
	if cfg.Redis.Address != "" {
		rdb = redis.NewClient(&redis.Options{Addr: cfg.Redis.Address, Password: cfg.Redis.Password, DB: cfg.Redis.DB})
		store.UseMirror(cache.NewMirror(rdb, cfg.RedisTTL()))
	}

	toasts := notify.NewCenter()
	application := app.New(db, store, toasts, &logger, cfg.CacheRefreshInterval())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := bootstrapAdmin(ctx, db, cfg, &logger); err != nil {
		logger.Fatal().Err(err).Msg("admin bootstrap failed")
	}

	backups := backup.NewService(db, *cfg, &logger)
	go backups.Start(ctx)

	reports := export.NewService(db, export.NewExcelizeWriter, &logger)
	if cfg.Export.Path != "" {
		go runDailyExport(ctx, reports, cfg.Export.Path, &logger)
	}

	if cfg.Monitoring.HealthCheckPort == 0 {
		cfg.Monitoring.HealthCheckPort = 8090
	}
	go startHealthServer(ctx, cfg.Monitoring.HealthCheckPort, db, rdb, &logger)

	if cfg.Monitoring.PrometheusEnabled {
		if cfg.Monitoring.PrometheusPort == 0 {
			cfg.Monitoring.PrometheusPort = 9090
		}
		metrics.Register()
		go startMetricsServer(ctx, cfg.Monitoring.PrometheusPort, &logger)
	}

	application.Start(ctx)
	logger.Info().Msg("Back office started")

	<-ctx.Done()
	logger.Info().Msg("Back office stopped")
}

// bootstrapAdmin creates the first administrator account from the environment
// when the user table is empty, so a fresh install is immediately usable.
func bootstrapAdmin(ctx context.Context, db *database.DB, cfg *config.Config, logger *zerolog.Logger) error {
	svc := auth.NewService(db, cfg.BcryptCost(), logger)

	has, err := svc.HasUsers(ctx)
	if err != nil || has {
		return err
	}

	email := os.Getenv("CARSHARE_ADMIN_EMAIL")
	password := os.Getenv("CARSHARE_ADMIN_PASSWORD")
	if email == "" || password == "" {
		logger.Warn().Msg("No users and no CARSHARE_ADMIN_EMAIL/CARSHARE_ADMIN_PASSWORD set, login disabled")
		return nil
	}

	session, err := svc.CreateAdmin(ctx, "admin", email, password, password)
	if err != nil {
		return err
	}
	logger.Info().Str("email", session.Email).Msg("Administrator account created")
	return nil
}

func runDailyExport(ctx context.Context, reports *export.Service, dir string, logger *zerolog.Logger) {
	ticker := time.NewTicker(24 * time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			path := dir + "/" + export.Filename(time.Now())
			if err := reports.ExportToFile(ctx, path); err != nil {
				logger.Error().Err(err).Msg("daily export failed")
			}
		}
	}
}

func startHealthServer(ctx context.Context, port int, db *database.DB, rdb *redis.Client, logger *zerolog.Logger) {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	mux.HandleFunc("/readyz", func(w http.ResponseWriter, _ *http.Request) {
		ctxPing, cancel := context.WithTimeout(ctx, time.Second)
		defer cancel()
		if err := db.PingContext(ctxPing); err != nil {
			http.Error(w, "db not ready", http.StatusServiceUnavailable)
			return
		}
		if rdb != nil {
			if err := rdb.Ping(ctxPing).Err(); err != nil {
				http.Error(w, "redis not ready", http.StatusServiceUnavailable)
				return
			}
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	srv := &http.Server{Addr: fmt.Sprintf(":%d", port), Handler: mux}
	go func() {
		<-ctx.Done()
		ctxShutdown, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctxShutdown)
	}()
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error().Err(err).Msg("health server error")
	}
}

func startMetricsServer(ctx context.Context, port int, logger *zerolog.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{Addr: fmt.Sprintf(":%d", port), Handler: mux}
	go func() {
		<-ctx.Done()
		ctxShutdown, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctxShutdown)
	}()
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error().Err(err).Msg("metrics server error")
	}
}
