package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"golang.org/x/text/language"

	"github.com/cashmath/money"
)

var validate = validator.New()

// Config holds the runtime configuration of the money command.
type Config struct {
	Locale   string `validate:"required,bcp47_language_tag"`
	Currency string `validate:"omitempty,iso4217"`
	LogLevel string `validate:"required,oneof=debug info warn error"`
}

// Load reads configuration from environment variables, applies defaults,
// and validates values. Variables may also be provided by an env file,
// named by MONEY_ENV_FILE (".env" by default); a missing file is not an error.
// Variables already present in the environment take precedence over the file.
func Load() (*Config, error) {
	envFile := getStr("MONEY_ENV_FILE", ".env")
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading %v: %w", envFile, err)
	}

	locale := money.DefaultLocale()
	if v := getStr("MONEY_LOCALE", ""); v != "" {
		t, err := money.ParseLocale(v)
		if err != nil {
			return nil, fmt.Errorf("invalid MONEY_LOCALE: %q: %w", v, err)
		}
		locale = t
	}

	cfg := &Config{
		Locale:   locale.String(),
		Currency: strings.ToUpper(getStr("MONEY_CURRENCY", "")),
		LogLevel: strings.ToLower(getStr("MONEY_LOG_LEVEL", "info")),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the values of the configuration.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Override replaces the locale and the currency with the non-empty values
// given on the command line and validates the result.
func (c *Config) Override(locale, currency string) error {
	if locale != "" {
		t, err := money.ParseLocale(locale)
		if err != nil {
			return fmt.Errorf("invalid locale %q: %w", locale, err)
		}
		c.Locale = t.String()
	}
	if currency != "" {
		c.Currency = strings.ToUpper(currency)
	}
	return c.Validate()
}

// Tag returns the configured locale as a language tag.
func (c *Config) Tag() language.Tag {
	t, err := language.Parse(c.Locale)
	if err != nil {
		return money.DefaultLocale()
	}
	return t
}

// Curr returns the configured currency.
// If no currency is configured, it returns the currency of the configured locale.
func (c *Config) Curr() (money.Currency, error) {
	if c.Currency == "" {
		return money.LocaleCurr(c.Tag()), nil
	}
	return money.ParseCurr(c.Currency)
}

func getStr(key, defaultVal string) string {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	return v
}
