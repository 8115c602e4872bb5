package httpserver

import (
	"net"
	"time"

	"github.com/dmitrymomot/rulekit/pkg/validator"
)

type Config struct {
	Addr            string        `env:"HTTP_ADDR" envDefault:":8080"`
	ReadTimeout     time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"30s"`
	WriteTimeout    time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"30s"`
	IdleTimeout     time.Duration `env:"HTTP_IDLE_TIMEOUT" envDefault:"120s"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"5s"`
}

// ConfigRule checks a Config. Violations are keyed by environment variable.
func ConfigRule() validator.Rule[Config] {
	timeout := validator.Between(time.Millisecond, time.Hour)
	return validator.Object(func(f *validator.Fields, c Config) {
		validator.Field(f, "HTTP_ADDR", c.Addr, validator.NotBlank(), hostPort())
		validator.Field(f, "HTTP_READ_TIMEOUT", c.ReadTimeout, timeout)
		validator.Field(f, "HTTP_WRITE_TIMEOUT", c.WriteTimeout, timeout)
		validator.Field(f, "HTTP_IDLE_TIMEOUT", c.IdleTimeout, timeout)
		validator.Field(f, "HTTP_SHUTDOWN_TIMEOUT", c.ShutdownTimeout, timeout)
	})
}

func hostPort() validator.Rule[string] {
	return validator.Predicate(func(addr string) bool {
		_, port, err := net.SplitHostPort(addr)
		return err == nil && port != ""
	}, "must be a host:port address")
}

// NewFromConfig builds a Server from cfg. Zero fields keep the defaults and
// opts are applied last.
func NewFromConfig(cfg Config, opts ...Option) *Server {
	configOpts := make([]Option, 0, 5+len(opts))

	if cfg.Addr != "" {
		configOpts = append(configOpts, WithAddr(cfg.Addr))
	}
	if cfg.ReadTimeout > 0 {
		configOpts = append(configOpts, WithReadTimeout(cfg.ReadTimeout))
	}
	if cfg.WriteTimeout > 0 {
		configOpts = append(configOpts, WithWriteTimeout(cfg.WriteTimeout))
	}
	if cfg.IdleTimeout > 0 {
		configOpts = append(configOpts, WithIdleTimeout(cfg.IdleTimeout))
	}
	if cfg.ShutdownTimeout > 0 {
		configOpts = append(configOpts, WithShutdownTimeout(cfg.ShutdownTimeout))
	}

	return New(append(configOpts, opts...)...)
}
