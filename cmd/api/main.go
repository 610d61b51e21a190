package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	server "foodi/internal/adapters/http_server"
	"foodi/internal/adapters/observability"
	redisad "foodi/internal/adapters/redis"
	"foodi/internal/app"
	"foodi/internal/domain"
	"foodi/internal/shared"
	"foodi/internal/storage/jsonfile"
	mysqlrepo "foodi/internal/storage/mysql"
)

func main() {
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv, cfg.LogLevel)

	reg := observability.InitRegistry()
	observability.Serve(cfg.MetricsAddr, reg)

	// db
	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}
	log.Info().Msg("database connection ok")

	// deps
	repo := mysqlrepo.New(db)
	cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	defer cache.Close()
	if err := cache.Ping(context.Background()); err != nil {
		// the listing cache is optional; misses fall through to MySQL
		log.Warn().Err(err).Str("addr", cfg.RedisAddr).Msg("redis unavailable")
	}

	var persist domain.ReportPersistence
	switch cfg.ReportsBackend {
	case shared.ReportsFile:
		persist = jsonfile.New(cfg.ReportsFile)
	default:
		persist = mysqlrepo.NewReportRepo(db)
	}
	store := app.NewReportStore(persist)
	if err := store.Load(context.Background()); err != nil {
		log.Fatal().Err(err).Str("backend", cfg.ReportsBackend).Msg("loading reports failed")
	}

	pred := app.NewPredictor(store, app.DefaultPredictorConfig())
	q := app.NewQueryService(repo, cache, cfg.CacheTTL, pred)
	rs := app.NewReportService(repo, store, cache)
	cs := app.NewCatalogService(repo, cache)

	// http
	var lim *rate.Limiter
	if cfg.HTTPRPS > 0 {
		lim = rate.NewLimiter(rate.Limit(cfg.HTTPRPS), int(cfg.HTTPRPS)+1)
	}
	srv := server.New(lim)
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{Q: q, R: rs, C: cs})

	httpSrv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           srv.Mux(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info().
			Str("addr", cfg.HTTPAddr).
			Str("reports_backend", cfg.ReportsBackend).
			Int("reports", store.Len()).
			Msg("API listening")
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("http server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("http shutdown failed")
	}
	log.Info().Msg("API stopped")
}
