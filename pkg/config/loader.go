package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/dmitrymomot/rulekit/pkg/validator"
)

// cache holds one parsed value per configuration type.
type cache struct {
	mu     sync.Mutex
	values map[reflect.Type]any
}

var (
	global = &cache{values: make(map[reflect.Type]any)}

	dotenvOnce sync.Once
)

// Load parses the environment into v using env struct tags. The default .env
// file in the working directory is read once if it exists. Each type is
// parsed on first use; later calls copy the cached value into v.
//
//	type HTTP struct {
//		Addr string `env:"HTTP_ADDR" envDefault:":8080"`
//	}
//
//	var cfg HTTP
//	if err := config.Load(&cfg); err != nil { ... }
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}
	dotenvOnce.Do(func() {
		// a missing .env is fine
		_ = godotenv.Load()
	})

	key := reflect.TypeFor[T]()

	global.mu.Lock()
	defer global.mu.Unlock()

	if cached, ok := global.values[key]; ok {
		*v = cached.(T)
		return nil
	}

	var parsed T
	if err := env.Parse(&parsed); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	global.values[key] = parsed
	*v = parsed
	return nil
}

// MustLoad is Load that panics on failure.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("config: load %T: %v", v, err))
	}
}

// LoadValid loads v and checks it with rule. Violations are returned as an
// error matching both ErrInvalidConfig and validator.AsReport. Invalid
// values are not cached.
func LoadValid[T any](v *T, rule validator.Rule[T]) error {
	if err := Load(v); err != nil {
		return err
	}
	if _, err := rule.Check(*v, "config"); err != nil {
		forget[T]()
		return errors.Join(ErrInvalidConfig, err)
	}
	return nil
}

// LoadEnv loads the given .env files into the process environment. Later
// files override earlier ones, and both override variables already set.
// The cache is cleared so that the next Load sees the new values.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		return nil
	}
	if err := godotenv.Overload(files...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	ResetCache()
	return nil
}

func MustLoadEnv(files ...string) {
	if err := LoadEnv(files...); err != nil {
		panic(err)
	}
}

// ResetCache drops every cached configuration.
func ResetCache() {
	global.mu.Lock()
	defer global.mu.Unlock()
	clear(global.values)
}

func forget[T any]() {
	global.mu.Lock()
	defer global.mu.Unlock()
	delete(global.values, reflect.TypeFor[T]())
}
