package money

import (
	"os"
	"strings"
	"sync/atomic"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
)

// defaultLocale holds the process-wide locale used by [DefaultCurr] and
// [Amount.DisplayDefault].
var defaultLocale atomic.Value

func init() {
	defaultLocale.Store(envLocale())
}

// envLocale returns the locale configured by the POSIX environment variables,
// falling back to American English.
func envLocale() language.Tag {
	for _, key := range []string{"LC_ALL", "LC_MONETARY", "LANG"} {
		if t, err := ParseLocale(os.Getenv(key)); err == nil {
			return t
		}
	}
	return language.AmericanEnglish
}

// ParseLocale converts a BCP 47 tag ("en-GB") or a POSIX locale name
// ("en_GB.UTF-8", "de_DE@euro") to a language tag.
// The POSIX names "C" and "POSIX" are not accepted, since they carry no region.
func ParseLocale(s string) (language.Tag, error) {
	if i := strings.IndexAny(s, ".@"); i >= 0 {
		s = s[:i]
	}
	switch s {
	case "", "C", "POSIX":
		return language.Und, errInvalidLocale
	}
	t, err := language.Parse(strings.ReplaceAll(s, "_", "-"))
	if err != nil {
		return language.Und, err
	}
	return t, nil
}

// DefaultLocale returns the current process-wide default locale.
// It is initialized from LC_ALL, LC_MONETARY or LANG at program start.
func DefaultLocale() language.Tag {
	return defaultLocale.Load().(language.Tag)
}

// SetDefaultLocale replaces the process-wide default locale.
// Amounts constructed earlier keep their currency; only subsequent calls to
// [DefaultCurr], the NewLocalAmount constructors and [Amount.DisplayDefault]
// observe the change.
func SetDefaultLocale(t language.Tag) {
	defaultLocale.Store(t)
}

// DefaultCurr returns the currency of the region of the default locale.
// The currency is resolved on every call and never cached.
// If the region has no known currency, DefaultCurr returns [XXX].
func DefaultCurr() Currency {
	return LocaleCurr(DefaultLocale())
}

// LocaleCurr returns the currency used in the region of the given locale,
// or [XXX] if the region or its currency is unknown.
func LocaleCurr(t language.Tag) Currency {
	u, conf := currency.FromTag(t)
	if conf == language.No {
		return XXX
	}
	c, err := ParseCurr(u.String())
	if err != nil {
		return XXX
	}
	return c
}

// localeRegion returns the region of the locale in the form used by
// the symbol tables, or an empty string if the locale names no region.
// A region guessed from the language alone ("en" -> US) is not used, so
// such locales get the international symbols.
func localeRegion(t language.Tag) string {
	r, conf := t.Region()
	if conf < language.High {
		return ""
	}
	return r.String()
}
