package shared

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

const (
	ReportsMySQL = "mysql"
	ReportsFile  = "file"
)

type Config struct {
	AppEnv         string
	LogLevel       string
	HTTPAddr       string
	MetricsAddr    string
	MySQLDSN       string
	RedisAddr      string
	RedisDB        int
	RedisPass      string
	CacheTTL       time.Duration
	ReportsBackend string
	ReportsFile    string
	HTTPRPS        float64
	SeedWorkers    int
}

// Load reads configuration from the environment. Outside production a .env
// file in the working directory is applied first; real env vars win.
func Load() Config {
	if os.Getenv("APP_ENV") != "production" {
		if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
			log.Warn().Err(err).Msg("could not read .env")
		}
	}

	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
			log.Warn().Str("key", k).Str("value", os.Getenv(k)).Msg("not an integer, using default")
		}
		return def
	}
	atof := func(k string, def float64) float64 {
		if v := os.Getenv(k); v != "" {
			if f, err := strconv.ParseFloat(v, 64); err == nil {
				return f
			}
			log.Warn().Str("key", k).Str("value", os.Getenv(k)).Msg("not a number, using default")
		}
		return def
	}

	c := Config{
		AppEnv:         env("APP_ENV", "prod"),
		LogLevel:       env("LOG_LEVEL", "info"),
		HTTPAddr:       env("HTTP_ADDR", ":8080"),
		MetricsAddr:    env("METRICS_ADDR", ":9100"),
		MySQLDSN:       env("MYSQL_DSN", "root:root@tcp(localhost:3306)/foodi?parseTime=true&charset=utf8mb4,utf8&loc=UTC"),
		RedisAddr:      env("REDIS_ADDR", "localhost:6379"),
		RedisPass:      env("REDIS_PASSWORD", ""),
		RedisDB:        atoi("REDIS_DB", 0),
		CacheTTL:       time.Duration(atoi("CACHE_TTL_SECONDS", 300)) * time.Second,
		ReportsBackend: env("REPORTS_BACKEND", ReportsMySQL),
		ReportsFile:    env("REPORTS_FILE", "reports.json"),
		HTTPRPS:        atof("HTTP_RPS", 50),
		SeedWorkers:    atoi("SEED_WORKERS", 8),
	}
	if c.ReportsBackend != ReportsMySQL && c.ReportsBackend != ReportsFile {
		log.Warn().Str("backend", c.ReportsBackend).Msg("unknown REPORTS_BACKEND, falling back to mysql")
		c.ReportsBackend = ReportsMySQL
	}
	return c
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
