// Package config loads service settings from the environment and an
// optional .env file
package config

import (
	"io/fs"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/KirkDiggler/statblock-api/internal/errors"
	"github.com/KirkDiggler/statblock-api/internal/statblock"
)

// Stores accepted by Store
const (
	StoreRedis  = "redis"
	StoreMemory = "memory"
)

var (
	logLevels = []string{"debug", "info", "warn", "error"}
	stores    = []string{StoreRedis, StoreMemory}
)

// Config holds the settings shared by the server and the CLI commands
type Config struct {
	GRPCPort       int           `env:"STATBLOCK_GRPC_PORT" envDefault:"50051"`
	Store          string        `env:"STATBLOCK_STORE" envDefault:"redis"`
	RedisAddr      string        `env:"STATBLOCK_REDIS_ADDR" envDefault:"localhost:6379"`
	ResultTTL      time.Duration `env:"STATBLOCK_RESULT_TTL" envDefault:"168h"`
	FuzzyWindow    int           `env:"STATBLOCK_FUZZY_WINDOW" envDefault:"30"`
	FuzzyThreshold int           `env:"STATBLOCK_FUZZY_THRESHOLD" envDefault:"2"`
	// SRDBaseURL enables cross-checks when set
	SRDBaseURL   string `env:"STATBLOCK_SRD_BASE_URL"`
	LogLevel     string `env:"STATBLOCK_LOG_LEVEL" envDefault:"info"`
	OTelEndpoint string `env:"STATBLOCK_OTEL_ENDPOINT"`
	ServiceName  string `env:"STATBLOCK_SERVICE_NAME" envDefault:"statblock-api"`
}

// Load reads envFile when it exists, then parses the environment. Variables
// already set in the environment win over the file.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to load "+envFile)
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse env")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return cfg, nil
}

// Validate checks ranges and enums
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRange("GRPCPort", c.GRPCPort, 1, 65535, vb)
	errors.ValidateEnum("Store", c.Store, stores, vb)
	if c.Store == StoreRedis {
		errors.ValidateRequired("RedisAddr", c.RedisAddr, vb)
	}
	if c.ResultTTL < 0 {
		vb.InvalidField("ResultTTL", "must not be negative")
	}
	errors.ValidateEnum("LogLevel", strings.ToLower(c.LogLevel), logLevels, vb)
	errors.ValidateRequired("ServiceName", c.ServiceName, vb)

	if err := vb.Build(); err != nil {
		return err
	}
	return c.ParserConfig().Validate()
}

// Level maps LogLevel to a slog level
func (c *Config) Level() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ParserConfig returns the parser settings carried by c
func (c *Config) ParserConfig() *statblock.Config {
	return &statblock.Config{
		FuzzyWindow:    c.FuzzyWindow,
		FuzzyThreshold: c.FuzzyThreshold,
	}
}
