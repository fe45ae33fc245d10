package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("APP_NAME", "vacancy-match")
	t.Setenv("APP_ENV", "test")
	t.Setenv("HTTP_PORT", "8080")
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "vacancy-match", cfg.App.AppName)
	require.Equal(t, "8080", cfg.App.HTTPPort)

	require.Equal(t, 0.4, cfg.Scoring.WeightSkill)
	require.Equal(t, 0.1, cfg.Scoring.WeightSalary)
	require.Equal(t, 0.2, cfg.Scoring.WeightExperience)
	require.Equal(t, 0.2, cfg.Scoring.WeightRole)
	require.Equal(t, 0.1, cfg.Scoring.WeightText)
	require.Equal(t, 30, cfg.Scoring.PoolWindowDays)
	require.Equal(t, 100, cfg.Scoring.PoolCap)
	require.Equal(t, 10, cfg.Scoring.DefaultLimit)
	require.Equal(t, 0.3, cfg.Scoring.MinScore)

	require.Equal(t, "https://api.hh.ru", cfg.HeadHunter.BaseURL)
	require.Equal(t, 100, cfg.HeadHunter.PerPage)

	require.Equal(t, 600*time.Second, cfg.Redis.TTL)
}

func TestLoad_MissingRequired(t *testing.T) {
	t.Setenv("APP_NAME", "")
	t.Setenv("APP_ENV", "")
	t.Setenv("HTTP_PORT", "")

	_, err := Load()
	require.Error(t, err)
	require.Contains(t, err.Error(), "APP_NAME")
	require.Contains(t, err.Error(), "HTTP_PORT")
}

func TestLoad_WeightsMustSumToOne(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("SCORE_WEIGHT_SKILL", "0.9")

	_, err := Load()
	require.Error(t, err)
	require.Contains(t, err.Error(), "sum to 1.0")
}

func TestLoad_NegativeWeightRejected(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("SCORE_WEIGHT_SKILL", "-0.1")
	t.Setenv("SCORE_WEIGHT_SALARY", "0.6")

	_, err := Load()
	require.Error(t, err)
	require.Contains(t, err.Error(), "non-negative")
}

func TestLoad_MinScoreRange(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("REC_MIN_SCORE", "1.2")

	_, err := Load()
	require.Error(t, err)
	require.Contains(t, err.Error(), "REC_MIN_SCORE")
}

func TestLoad_Overrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("REC_POOL_WINDOW_DAYS", "7")
	t.Setenv("REC_DEFAULT_LIMIT", "25")
	t.Setenv("HH_AREA_ID", "1")
	t.Setenv("HH_PER_PAGE", "50")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 7, cfg.Scoring.PoolWindowDays)
	require.Equal(t, 25, cfg.Scoring.DefaultLimit)
	require.Equal(t, 1, cfg.HeadHunter.AreaID)
	require.Equal(t, 50, cfg.HeadHunter.PerPage)
}
