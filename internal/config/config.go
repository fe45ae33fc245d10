package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App        AppConfig
	Database   DatabaseConfig
	Redis      RedisConfig
	Scoring    ScoringConfig
	HeadHunter HeadHunterConfig
}

type AppConfig struct {
	AppName     string
	Environment string
	HTTPPort    string
}

type DatabaseConfig struct {
	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string
	DBSSLMode  string

	ConnectTimeout        time.Duration
	PoolMaxConns          int32
	PoolMinConns          int32
	PoolMaxConnLifetime   time.Duration
	PoolMaxConnIdleTime   time.Duration
	PoolHealthCheckPeriod time.Duration
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	TTL      time.Duration
}

// ScoringConfig carries the recommendation knobs. Weights must sum to 1.0.
type ScoringConfig struct {
	WeightSkill      float64
	WeightSalary     float64
	WeightExperience float64
	WeightRole       float64
	WeightText       float64

	PoolWindowDays int
	PoolCap        int
	DefaultLimit   int
	MinScore       float64
}

type HeadHunterConfig struct {
	BaseURL   string
	UserAgent string
	AreaID    int
	PerPage   int
	MaxPages  int
}

var errMissingRequiredEnv = errors.New("missing required environment variables")

func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{}

	var missing []string
	req := func(key string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}
	opt := func(key string) string {
		return strings.TrimSpace(os.Getenv(key))
	}

	cfg.App = AppConfig{
		AppName:     req("APP_NAME"),
		Environment: req("APP_ENV"),
		HTTPPort:    req("HTTP_PORT"),
	}

	cfg.Database = DatabaseConfig{
		DBHost:     opt("DB_HOST"),
		DBPort:     opt("DB_PORT"),
		DBName:     opt("DB_NAME"),
		DBUser:     opt("DB_USER"),
		DBPassword: opt("DB_PASSWORD"),
		DBSSLMode:  opt("DB_SSL_MODE"),

		ConnectTimeout:        optDuration("DB_CONNECT_TIMEOUT", 5*time.Second),
		PoolMaxConns:          int32(optInt("DB_POOL_MAX_CONNS", 0)),
		PoolMinConns:          int32(optInt("DB_POOL_MIN_CONNS", 0)),
		PoolMaxConnLifetime:   optDuration("DB_POOL_MAX_CONN_LIFETIME", 0),
		PoolMaxConnIdleTime:   optDuration("DB_POOL_MAX_CONN_IDLE_TIME", 0),
		PoolHealthCheckPeriod: optDuration("DB_POOL_HEALTH_CHECK_PERIOD", 0),
	}

	cfg.Redis = RedisConfig{
		Host:     opt("REDIS_HOST"),
		Port:     opt("REDIS_PORT"),
		Password: opt("REDIS_PASSWORD"),
		TTL:      optDuration("REDIS_TTL", 600*time.Second),
	}

	cfg.Scoring = ScoringConfig{
		WeightSkill:      optFloat("SCORE_WEIGHT_SKILL", 0.4),
		WeightSalary:     optFloat("SCORE_WEIGHT_SALARY", 0.1),
		WeightExperience: optFloat("SCORE_WEIGHT_EXPERIENCE", 0.2),
		WeightRole:       optFloat("SCORE_WEIGHT_ROLE", 0.2),
		WeightText:       optFloat("SCORE_WEIGHT_TEXT", 0.1),

		PoolWindowDays: optInt("REC_POOL_WINDOW_DAYS", 30),
		PoolCap:        optInt("REC_POOL_CAP", 100),
		DefaultLimit:   optInt("REC_DEFAULT_LIMIT", 10),
		MinScore:       optFloat("REC_MIN_SCORE", 0.3),
	}

	cfg.HeadHunter = HeadHunterConfig{
		BaseURL:   withDefault(opt("HH_BASE_URL"), "https://api.hh.ru"),
		UserAgent: opt("HH_USER_AGENT"),
		AreaID:    optInt("HH_AREA_ID", 22),
		PerPage:   optInt("HH_PER_PAGE", 100),
		MaxPages:  optInt("HH_MAX_PAGES", 5),
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}

	if err := validateScoring(cfg.Scoring); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func validateScoring(s ScoringConfig) error {
	weights := []float64{s.WeightSkill, s.WeightSalary, s.WeightExperience, s.WeightRole, s.WeightText}
	sum := 0.0
	for _, w := range weights {
		if w < 0 {
			return fmt.Errorf("scoring weights must be non-negative")
		}
		sum += w
	}
	if sum < 0.999 || sum > 1.001 {
		return fmt.Errorf("scoring weights must sum to 1.0, got %.3f", sum)
	}
	if s.MinScore < 0 || s.MinScore > 1 {
		return fmt.Errorf("REC_MIN_SCORE must be within [0,1]")
	}
	return nil
}

func withDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func optInt(key string, def int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}

func optFloat(key string, def float64) float64 {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return def
	}
	return v
}

func optDuration(key string, def time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	if v, err := strconv.Atoi(raw); err == nil {
		if v <= 0 {
			return def
		}
		return time.Duration(v) * time.Second
	}
	if d, err := time.ParseDuration(raw); err == nil && d > 0 {
		return d
	}
	return def
}
