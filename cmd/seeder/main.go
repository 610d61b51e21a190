package main

import (
	"context"
	"database/sql"
	"flag"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"

	"foodi/internal/adapters/observability"
	redisad "foodi/internal/adapters/redis"
	"foodi/internal/app"
	"foodi/internal/shared"
	"foodi/internal/storage/jsonfile"
	mysqlrepo "foodi/internal/storage/mysql"
)

func main() {
	importPath := flag.String("import", "", "legacy reports.json to copy into MySQL")
	skipSeed := flag.Bool("skip-seed", false, "do not insert the built-in restaurant list")
	flag.Parse()

	ctx := context.Background()
	cfg := shared.Load()

	// 1) initialize global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv, cfg.LogLevel)

	log.Info().
		Int("workers", cfg.SeedWorkers).
		Int("seeds", len(shared.RestaurantSeeds)).
		Str("import", *importPath).
		Msg("seeder starting")

	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}
	log.Info().Msg("db ping ok")

	repo := mysqlrepo.New(db)
	cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	defer cache.Close()
	catalog := app.NewCatalogService(repo, cache)

	if !*skipSeed {
		n, err := catalog.Seed(ctx, shared.RestaurantSeeds, cfg.SeedWorkers)
		if err != nil {
			log.Fatal().Err(err).Int("inserted", n).Msg("seeding failed")
		}
		log.Info().Int("inserted", n).Msg("seed ok")
	}

	if _, err := catalog.NormalizeStoredTypes(ctx); err != nil {
		log.Fatal().Err(err).Msg("normalizing types failed")
	}

	if *importPath != "" {
		if err := importReports(ctx, *importPath, mysqlrepo.NewReportRepo(db)); err != nil {
			log.Fatal().Err(err).Str("path", *importPath).Msg("report import failed")
		}
	}
	log.Info().Msg("seeding completed")
}

// importReports copies a legacy report file into MySQL as-is. Records with
// bad timestamps are copied too; the API skips them when it loads.
func importReports(ctx context.Context, path string, dst *mysqlrepo.ReportRepo) error {
	recs, err := jsonfile.New(path).LoadAll(ctx)
	if err != nil {
		return err
	}
	if err := dst.SaveAll(ctx, recs); err != nil {
		return err
	}
	log.Info().Int("reports", len(recs)).Msg("reports imported")
	return nil
}
