// Package config loads service settings from .env, config.yaml and the environment.
//
// Environment variables take the FEES_ prefix with dots replaced by underscores, for
// example FEES_HTTP_ADDR, FEES_LOG_LEVEL, FEES_DATABASE_DSN. The fee source keys are
// bound without repeating the prefix: FEES_SOURCE and FEES_PATH.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	SourceFile     = "file"
	SourceYAML     = "yaml"
	SourceDatabase = "database"
)

// Config holds application configuration.
type Config struct {
	AppName     string
	AppVersion  string
	Environment string
	HTTPAddr    string
	NodeID      int64

	Log      LogConfig
	Fees     FeesConfig
	Database DatabaseConfig
}

type LogConfig struct {
	Level  string
	Format string
}

type FeesConfig struct {
	Source string
	Path   string
}

type DatabaseConfig struct {
	Type string
	DSN  string
}

// Load reads an optional .env file, an optional config.yaml, and FEES_* environment
// variables, in increasing order of precedence.
func Load() (Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.SetEnvPrefix("FEES")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	_ = v.BindEnv("fees.source", "FEES_SOURCE")
	_ = v.BindEnv("fees.path", "FEES_PATH")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}
	return fromViper(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "service-fees")
	v.SetDefault("app.version", "0.1.0")
	v.SetDefault("app.environment", "development")
	v.SetDefault("http.addr", ":8080")
	v.SetDefault("node.id", 1)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("fees.source", SourceFile)
	v.SetDefault("fees.path", "data/fees.json")
	v.SetDefault("database.type", "sqlite")
	v.SetDefault("database.dsn", "file:fees.db?cache=shared")
}

func fromViper(v *viper.Viper) (Config, error) {
	cfg := Config{
		AppName:     v.GetString("app.name"),
		AppVersion:  v.GetString("app.version"),
		Environment: v.GetString("app.environment"),
		HTTPAddr:    v.GetString("http.addr"),
		NodeID:      v.GetInt64("node.id"),
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
		},
		Fees: FeesConfig{
			Source: strings.ToLower(strings.TrimSpace(v.GetString("fees.source"))),
			Path:   v.GetString("fees.path"),
		},
		Database: DatabaseConfig{
			Type: strings.ToLower(strings.TrimSpace(v.GetString("database.type"))),
			DSN:  v.GetString("database.dsn"),
		},
	}

	switch cfg.Fees.Source {
	case SourceFile, SourceYAML, SourceDatabase:
	default:
		return Config{}, fmt.Errorf("unsupported fee source %q", cfg.Fees.Source)
	}
	return cfg, nil
}
