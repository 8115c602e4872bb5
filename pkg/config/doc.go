// Package config loads application configuration from environment variables.
//
// It wraps github.com/caarlos0/env/v11 for struct-tag parsing and
// github.com/joho/godotenv for .env files. Every configuration type is parsed
// once and cached; ResetCache forces a fresh parse, which tests rely on.
//
//	type App struct {
//		Name  string `env:"APP_NAME" envDefault:"rulekit"`
//		Level string `env:"LOG_LEVEL" envDefault:"info"`
//	}
//
//	var cfg App
//	err := config.LoadValid(&cfg, validator.Object(func(f *validator.Fields, c App) {
//		validator.Field(f, "APP_NAME", c.Name, validator.NotBlank())
//		validator.Field(f, "LOG_LEVEL", c.Level, validator.OneOf("debug", "info", "warn", "error"))
//	}))
//
// Errors are sentinel values usable with errors.Is. LoadValid failures also
// carry the validator.Report describing which variables are wrong.
package config
