package main

import (
	"errors"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/exascience/parscan/device"
	"github.com/exascience/parscan/internal/logging"
)

// Config is read from PARSCAN_ prefixed environment variables.
type Config struct {
	Device      string `envconfig:"DEVICE" default:"parallel"`
	Batches     int    `envconfig:"BATCHES" default:"0"`
	MaxMemory   int64  `envconfig:"MAX_MEMORY" default:"0"`
	Iterations  int    `envconfig:"ITERATIONS" default:"10"`
	Verify      bool   `envconfig:"VERIFY" default:"false"`
	MetricsAddr string `envconfig:"METRICS_ADDR"`
	LogFormat   string `envconfig:"LOG_FORMAT" default:"console"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`
}

// Config validation errors
var (
	ErrInvalidDevice     = errors.New("device must be 'parallel' or 'sequential'")
	ErrInvalidBatches    = errors.New("batches must not be negative")
	ErrInvalidMaxMemory  = errors.New("max_memory must not be negative")
	ErrInvalidIterations = errors.New("iterations must be positive")
	ErrInvalidLogFormat  = errors.New("log_format must be 'json', 'console' or 'text'")
	ErrInvalidLogLevel   = errors.New("log_level must be debug, info, warn or error")
	ErrInvalidSize       = errors.New("n must not be negative")
)

// DefaultConfig returns a Config with default values
func DefaultConfig() Config {
	return Config{
		Device:     device.KindParallel,
		Iterations: 10,
		LogFormat:  "console",
		LogLevel:   "info",
	}
}

// LoadConfig loads envFile into the environment, if it exists, and then
// processes the PARSCAN_ environment variables. Variables already set in
// the environment take precedence over the file.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, err
		}
	}
	var cfg Config
	if err := envconfig.Process("PARSCAN", &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ValidateConfig normalizes the configuration to lower case and returns
// an error if it is invalid. It accepts the same spellings as device.New
// and logging.NewLogger.
func ValidateConfig(cfg *Config) error {
	cfg.Device = strings.ToLower(cfg.Device)
	cfg.LogFormat = strings.ToLower(cfg.LogFormat)
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)

	switch cfg.Device {
	case device.KindParallel, device.KindSequential:
	default:
		return ErrInvalidDevice
	}
	if cfg.Batches < 0 {
		return ErrInvalidBatches
	}
	if cfg.MaxMemory < 0 {
		return ErrInvalidMaxMemory
	}
	if cfg.Iterations <= 0 {
		return ErrInvalidIterations
	}
	switch cfg.LogFormat {
	case "", "json", "console", "text":
	default:
		return ErrInvalidLogFormat
	}
	if _, err := logging.ParseLevel(cfg.LogLevel); err != nil {
		return ErrInvalidLogLevel
	}
	return nil
}
