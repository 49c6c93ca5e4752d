package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/cashmath/money"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"MONEY_LOCALE", "MONEY_CURRENCY", "MONEY_LOG_LEVEL",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
	t.Setenv("MONEY_ENV_FILE", filepath.Join(t.TempDir(), "missing.env"))
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, money.DefaultLocale().String(), cfg.Locale)
	assert.Equal(t, "", cfg.Currency)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_CustomValues(t *testing.T) {
	clearEnv(t)
	t.Setenv("MONEY_LOCALE", "ja_JP.UTF-8")
	t.Setenv("MONEY_CURRENCY", "usd")
	t.Setenv("MONEY_LOG_LEVEL", "DEBUG")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "ja-JP", cfg.Locale)
	assert.Equal(t, "USD", cfg.Currency)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, language.MustParse("ja-JP"), cfg.Tag())

	c, err := cfg.Curr()
	require.NoError(t, err)
	assert.Equal(t, money.USD, c)
}

func TestLoad_EnvFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "test.env")
	data := "MONEY_LOCALE=en-GB\nMONEY_CURRENCY=GBP\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))
	t.Setenv("MONEY_ENV_FILE", path)
	t.Cleanup(func() {
		os.Unsetenv("MONEY_LOCALE")
		os.Unsetenv("MONEY_CURRENCY")
	})

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "en-GB", cfg.Locale)
	assert.Equal(t, "GBP", cfg.Currency)
}

func TestLoad_Invalid(t *testing.T) {
	tests := map[string]struct {
		key, value string
	}{
		"posix locale":  {"MONEY_LOCALE", "C"},
		"bad locale":    {"MONEY_LOCALE", "not a locale"},
		"bad currency":  {"MONEY_CURRENCY", "DOLLARS"},
		"bad log level": {"MONEY_LOG_LEVEL", "verbose"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestConfig_Curr(t *testing.T) {
	t.Run("from locale", func(t *testing.T) {
		cfg := &Config{Locale: "ja-JP", LogLevel: "info"}
		c, err := cfg.Curr()
		require.NoError(t, err)
		assert.Equal(t, money.JPY, c)
	})

	t.Run("unknown", func(t *testing.T) {
		cfg := &Config{Locale: "en-US", Currency: "ZZZ", LogLevel: "info"}
		_, err := cfg.Curr()
		assert.ErrorIs(t, err, money.ErrInvalidCurrency)
	})
}

func TestConfig_Override(t *testing.T) {
	t.Run("flags replace env values", func(t *testing.T) {
		cfg := &Config{Locale: "ja-JP", Currency: "JPY", LogLevel: "info"}
		require.NoError(t, cfg.Override("en_GB.UTF-8", "eur"))

		assert.Equal(t, "en-GB", cfg.Locale)
		assert.Equal(t, "EUR", cfg.Currency)
		assert.Equal(t, language.MustParse("en-GB"), cfg.Tag())
	})

	t.Run("empty flags keep env values", func(t *testing.T) {
		cfg := &Config{Locale: "ja-JP", Currency: "USD", LogLevel: "info"}
		require.NoError(t, cfg.Override("", ""))

		assert.Equal(t, "ja-JP", cfg.Locale)
		assert.Equal(t, "USD", cfg.Currency)
	})

	t.Run("invalid", func(t *testing.T) {
		tests := map[string]struct {
			locale, currency string
		}{
			"posix locale": {"POSIX", ""},
			"bad locale":   {"not a locale", ""},
			"bad currency": {"", "DOLLARS"},
		}
		for name, tt := range tests {
			t.Run(name, func(t *testing.T) {
				cfg := &Config{Locale: "en-US", LogLevel: "info"}
				assert.Error(t, cfg.Override(tt.locale, tt.currency))
			})
		}
	})
}
