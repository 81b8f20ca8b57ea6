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

	// Calendar scheduling specifics
	Google     GoogleConfig
	Database   DatabaseConfig
	Scheduling SchedulingConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port            int
	Mode            string
	RateLimitPerMin int
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// GoogleConfig points at the Workspace service-account credentials and the
// calendar owner impersonated when a request names none.
type GoogleConfig struct {
	CredentialsPath string
	DefaultEmail    string
}

type DatabaseConfig struct {
	URL string
}

// SchedulingConfig tunes the slot grid. Zero values fall back to the engine
// defaults.
type SchedulingConfig struct {
	DayStart      time.Duration
	DayEnd        time.Duration
	Stride        time.Duration
	SlotDuration  time.Duration
	LookaheadDays int
	BusyCacheTTL  time.Duration
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
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
	cfg.HTTPServer.RateLimitPerMin = viper.GetInt("http_server.rate_limit_per_min")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Google Workspace
	cfg.Google.CredentialsPath = viper.GetString("google.credentials_path")
	cfg.Google.DefaultEmail = viper.GetString("google.default_email")
	if googleCreds := viper.GetString("google_credentials"); googleCreds != "" {
		cfg.Google.CredentialsPath = googleCreds
	}
	if defaultEmail := viper.GetString("calendar_email"); defaultEmail != "" {
		cfg.Google.DefaultEmail = defaultEmail
	}

	// Database
	cfg.Database.URL = viper.GetString("database.url")
	if dbURL := viper.GetString("database_url"); dbURL != "" {
		cfg.Database.URL = dbURL
	}

	// Scheduling grid
	cfg.Scheduling.DayStart = viper.GetDuration("scheduling.day_start")
	cfg.Scheduling.DayEnd = viper.GetDuration("scheduling.day_end")
	cfg.Scheduling.Stride = viper.GetDuration("scheduling.stride")
	cfg.Scheduling.SlotDuration = viper.GetDuration("scheduling.slot_duration")
	cfg.Scheduling.LookaheadDays = viper.GetInt("scheduling.lookahead_days")
	cfg.Scheduling.BusyCacheTTL = viper.GetDuration("scheduling.busy_cache_ttl")

	if cfg.Google.DefaultEmail == "" {
		return nil, fmt.Errorf("google.default_email is required - set it in config.yaml or via CALENDAR_EMAIL")
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("http_server.rate_limit_per_min", 120)
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("google.credentials_path", "credentials.json")

	// Scheduling defaults mirror the engine's grid.
	viper.SetDefault("scheduling.day_start", "5h")
	viper.SetDefault("scheduling.day_end", "13h30m59s")
	viper.SetDefault("scheduling.stride", "40m")
	viper.SetDefault("scheduling.slot_duration", "29m59s")
	viper.SetDefault("scheduling.lookahead_days", 30)
	viper.SetDefault("scheduling.busy_cache_ttl", "2m")
}
