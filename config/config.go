package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseURL            string
	HTTPAddr               string
	JWTSecret              string
	TokenTTL               time.Duration
	AllowedOrigins         []string
	LogLevel               string
	Env                    string // dev|prod
	SentryDSN              string
	Release                string
	RedisURL               string
	LeaderboardCacheTTL    time.Duration
	GCSBucket              string
	UploadDir              string
	MaxQuizAttempts        int
	// LeaderboardVideoPoints is what one completed video is worth.
	LeaderboardVideoPoints int
	RateLimitPerMinute     int
	NotificationRetention  time.Duration
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	dsn, err := databaseURL()
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		DatabaseURL:    dsn,
		HTTPAddr:       httpAddr(),
		JWTSecret:      getenv("JWT_SECRET", "your-secret-key-change-in-production"),
		AllowedOrigins: parseCommaSeparated(getenv("ALLOWED_ORIGINS", "*")),
		LogLevel:       getenv("LOG_LEVEL", "info"),
		Env:            getenv("ENV", "dev"),
		SentryDSN:      os.Getenv("SENTRY_DSN"),
		Release:        getenv("RELEASE", "dev"),
		RedisURL:       os.Getenv("REDIS_URL"),
		GCSBucket:      os.Getenv("GCS_BUCKET"),
		UploadDir:      getenv("UPLOAD_DIR", "uploads"),
	}

	if cfg.TokenTTL, err = durationEnv("TOKEN_TTL", 7*24*time.Hour); err != nil {
		return nil, err
	}
	if cfg.LeaderboardCacheTTL, err = durationEnv("LEADERBOARD_CACHE_TTL", time.Minute); err != nil {
		return nil, err
	}
	if cfg.NotificationRetention, err = durationEnv("NOTIFICATION_RETENTION", 30*24*time.Hour); err != nil {
		return nil, err
	}
	if cfg.MaxQuizAttempts, err = intEnv("MAX_QUIZ_ATTEMPTS", 2); err != nil {
		return nil, err
	}
	if cfg.RateLimitPerMinute, err = intEnv("RATE_LIMIT_PER_MINUTE", 100); err != nil {
		return nil, err
	}
	if cfg.LeaderboardVideoPoints, err = intEnv("LEADERBOARD_VIDEO_POINTS", 10); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Production() bool { return strings.EqualFold(c.Env, "prod") }

func databaseURL() (string, error) {
	if u := os.Getenv("DATABASE_URL"); u != "" {
		return u, nil
	}
	port, err := intEnv("DB_PORT", 5432)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		getenv("DB_HOST", "localhost"), port, os.Getenv("DB_USER"), os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"), getenv("DB_SSLMODE", "disable")), nil
}

func httpAddr() string {
	if a := os.Getenv("HTTP_ADDR"); a != "" {
		return a
	}
	if p := os.Getenv("PORT"); p != "" {
		return ":" + p
	}
	return ":8080"
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func intEnv(k string, def int) (int, error) {
	v := os.Getenv(k)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, fmt.Errorf("%s: must be a number: %w", k, err)
	}
	return n, nil
}

func durationEnv(k string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(k)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(strings.TrimSpace(v))
	if err != nil {
		return 0, fmt.Errorf("%s: %w", k, err)
	}
	return d, nil
}

func parseCommaSeparated(s string) []string {
	parts := strings.FieldsFunc(s, func(r rune) bool { return r == ',' })
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
