package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Planner specifics
	Planner   PlannerConfig
	RateLimit RateLimitConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// PlannerConfig controls the calendar and the per-page-view sessions.
type PlannerConfig struct {
	Timezone     string
	WeekStart    string
	RemovalDelay time.Duration // delay between completing a task and removing it
	SessionTTL   time.Duration
	MaxSessions  int
	YearRadius   int
	SeedExamples bool
}

type RateLimitConfig struct {
	PerMin int
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Planner
	cfg.Planner.Timezone = viper.GetString("planner.timezone")
	cfg.Planner.WeekStart = viper.GetString("planner.week_start")
	cfg.Planner.RemovalDelay = viper.GetDuration("planner.removal_delay")
	cfg.Planner.SessionTTL = viper.GetDuration("planner.session_ttl")
	cfg.Planner.MaxSessions = viper.GetInt("planner.max_sessions")
	cfg.Planner.YearRadius = viper.GetInt("planner.year_radius")
	cfg.Planner.SeedExamples = viper.GetBool("planner.seed_examples")

	cfg.RateLimit.PerMin = viper.GetInt("rate_limit.per_min")

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	// Planner defaults
	viper.SetDefault("planner.timezone", "Local")
	viper.SetDefault("planner.week_start", "sunday")
	viper.SetDefault("planner.removal_delay", "500ms")
	viper.SetDefault("planner.session_ttl", "30m")
	viper.SetDefault("planner.max_sessions", 1000)
	viper.SetDefault("planner.year_radius", 10)
	viper.SetDefault("planner.seed_examples", false)

	viper.SetDefault("rate_limit.per_min", 600)
}

// validate rejects values the planner cannot run with.
func validate(cfg *Config) error {
	if cfg.Planner.RemovalDelay < 0 {
		return fmt.Errorf("planner.removal_delay must not be negative")
	}
	if cfg.Planner.SessionTTL <= 0 {
		return fmt.Errorf("planner.session_ttl must be positive")
	}
	if cfg.Planner.MaxSessions <= 0 {
		return fmt.Errorf("planner.max_sessions must be positive")
	}
	if cfg.Planner.YearRadius < 1 {
		return fmt.Errorf("planner.year_radius must be at least 1")
	}
	return nil
}
