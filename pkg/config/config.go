// Package config loads the driver's own settings — not the timetable
// Config itself, which is an in-memory value the caller builds directly (see
// internal/scheduler.Config). This package only binds the handful of knobs
// the cmd/timetable-gen driver needs: which file to read, which seed to run
// with, how to log, and where the optional result cache lives.
package config

import (
	"errors"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Config governs the cmd/timetable-gen driver.
type Config struct {
	Env string
	Log LogConfig

	ConfigPath string
	Years      []string
	Seed       int64

	Redis     RedisConfig
	Scheduler SchedulerConfig
}

// LogConfig selects zap's encoder/level.
type LogConfig struct {
	Level  string
	Format string
}

// RedisConfig points at an optional ensemble result cache.
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// SchedulerConfig tunes the construction/repair/hardening pipeline.
type SchedulerConfig struct {
	CacheEnabled bool
	CacheTTL     time.Duration
	Workers      int
}

// Load reads .env then environment variables into a Config, applying
// defaults for anything unset.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	cfg := &Config{
		Env: v.GetString("ENV"),
		Log: LogConfig{
			Level:  v.GetString("LOG_LEVEL"),
			Format: v.GetString("LOG_FORMAT"),
		},
		ConfigPath: v.GetString("TIMETABLE_CONFIG"),
		Years:      splitAndTrim(v.GetString("TIMETABLE_YEARS")),
		Seed:       v.GetInt64("TIMETABLE_SEED"),
		Redis: RedisConfig{
			Host:     v.GetString("TIMETABLE_REDIS_HOST"),
			Port:     v.GetInt("TIMETABLE_REDIS_PORT"),
			Password: v.GetString("TIMETABLE_REDIS_PASSWORD"),
			DB:       v.GetInt("TIMETABLE_REDIS_DB"),
		},
		Scheduler: SchedulerConfig{
			CacheEnabled: v.GetBool("TIMETABLE_CACHE_ENABLED"),
			CacheTTL:     parseDuration(v.GetString("TIMETABLE_CACHE_TTL"), 30*time.Minute),
			Workers:      v.GetInt("TIMETABLE_WORKERS"),
		},
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")

	v.SetDefault("TIMETABLE_CONFIG", "timetable.json")
	v.SetDefault("TIMETABLE_YEARS", "SY,TY,BTech")
	v.SetDefault("TIMETABLE_SEED", 1)

	v.SetDefault("TIMETABLE_REDIS_HOST", "localhost")
	v.SetDefault("TIMETABLE_REDIS_PORT", 6379)
	v.SetDefault("TIMETABLE_REDIS_PASSWORD", "")
	v.SetDefault("TIMETABLE_REDIS_DB", 0)

	v.SetDefault("TIMETABLE_CACHE_ENABLED", false)
	v.SetDefault("TIMETABLE_CACHE_TTL", "30m")
	v.SetDefault("TIMETABLE_WORKERS", 0)
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}
	return d
}

func splitAndTrim(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
