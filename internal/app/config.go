package app

import (
	"io"
	"log/slog"

	"github.com/dmitrymomot/rulekit/pkg/config"
	"github.com/dmitrymomot/rulekit/pkg/httpserver"
	"github.com/dmitrymomot/rulekit/pkg/logger"
	"github.com/dmitrymomot/rulekit/pkg/requestid"
	"github.com/dmitrymomot/rulekit/pkg/validator"
)

type Config struct {
	Env       string `env:"APP_ENV" envDefault:"development"`
	Name      string `env:"APP_NAME" envDefault:"rulekit"`
	LogLevel  string `env:"LOG_LEVEL"`
	LogFormat string `env:"LOG_FORMAT"`

	HTTP httpserver.Config
}

// ConfigRule checks a Config. Violations are keyed by environment variable.
func ConfigRule() validator.Rule[Config] {
	return validator.Object(func(f *validator.Fields, c Config) {
		validator.Field(f, "APP_ENV", c.Env, validator.OneOfFold(
			logger.EnvDevelopment, logger.EnvStaging, logger.EnvProduction,
		))
		validator.Field(f, "APP_NAME", c.Name, validator.NotBlank(), validator.MaxLen(64))
		validator.Field(f, "LOG_LEVEL", c.LogLevel, validator.Optional(parses(logger.ParseLevel, "must be one of: debug, info, warn, error")))
		validator.Field(f, "LOG_FORMAT", c.LogFormat, validator.Optional(parses(logger.ParseFormat, "must be one of: json, text")))
		validator.Field(f, "http", c.HTTP, httpserver.ConfigRule())
	})
}

func parses[V any](parse func(string) (V, error), message string) validator.Rule[string] {
	return validator.Predicate(func(s string) bool {
		_, err := parse(s)
		return err == nil
	}, message)
}

// LoadConfig reads .env files, then the environment, and validates the result.
func LoadConfig(envFiles ...string) (Config, error) {
	if err := config.LoadEnv(envFiles...); err != nil {
		return Config{}, err
	}
	var cfg Config
	if err := config.LoadValid(&cfg, ConfigRule()); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// NewLogger builds the logger for cfg. LOG_LEVEL and LOG_FORMAT override the
// environment defaults.
func NewLogger(cfg Config, out io.Writer) *slog.Logger {
	opts := []logger.Option{
		logger.WithOutput(out),
		logger.WithEnvironment(cfg.Env, cfg.Name),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	}
	if cfg.LogLevel != "" {
		if level, err := logger.ParseLevel(cfg.LogLevel); err == nil {
			opts = append(opts, logger.WithLevel(level))
		}
	}
	if cfg.LogFormat != "" {
		if format, err := logger.ParseFormat(cfg.LogFormat); err == nil {
			opts = append(opts, logger.WithFormat(format))
		}
	}
	return logger.New(opts...)
}
