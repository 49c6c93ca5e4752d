// Command money is a calculator for monetary amounts.
//
// Usage:
//
//	money [-locale TAG] [-currency CODE] fmt   AMOUNT
//	money [-locale TAG] [-currency CODE] add   AMOUNT AMOUNT...
//	money [-locale TAG] [-currency CODE] sub   AMOUNT AMOUNT
//	money [-locale TAG] [-currency CODE] mul   AMOUNT AMOUNT
//	money [-locale TAG] [-currency CODE] div   AMOUNT AMOUNT
//	money [-locale TAG] [-currency CODE] rem   AMOUNT AMOUNT
//	money [-locale TAG] [-currency CODE] scale AMOUNT FACTOR
//	money [-locale TAG] [-currency CODE] split AMOUNT PARTS
//	money [-locale TAG] [-currency CODE] conv  AMOUNT CODE RATE [FACTOR]
//	money [-locale TAG] [-currency CODE] invconv AMOUNT CODE RATE
//
// An AMOUNT is either CODE:NUMBER, such as USD:10.11, or a plain NUMBER
// in the default currency. Results are printed as shown to users of the
// locale, one per line.
// The optional FACTOR of conv scales the rate, for example to apply a fee.
// The RATE of invconv is quoted from CODE to the currency of the AMOUNT.
//
// Defaults are read from MONEY_LOCALE, MONEY_CURRENCY and MONEY_LOG_LEVEL,
// optionally stored in a .env file. The flags take precedence over them.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/govalues/decimal"

	"github.com/cashmath/money"
	"github.com/cashmath/money/internal/config"
)

// Exit codes.
const (
	exitOK       = 0
	exitFailure  = 1
	exitUsage    = 2
	exitMismatch = 3
	exitDivZero  = 4
	exitNumber   = 5
)

var errUsage = errors.New("usage")

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(stderr))

	cfg, err := config.Load()
	if err != nil {
		level.Error(logger).Log("msg", "failed to load config", "err", err)
		return exitFailure
	}
	logger = level.NewFilter(logger, allowLevel(cfg.LogLevel))

	fs := flag.NewFlagSet("money", flag.ContinueOnError)
	fs.SetOutput(stderr)
	locale := fs.String("locale", "", "display locale, BCP 47 or POSIX form (default $MONEY_LOCALE)")
	curr := fs.String("currency", "", "currency of amounts without a code (default $MONEY_CURRENCY)")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	if err := cfg.Override(*locale, *curr); err != nil {
		level.Error(logger).Log("msg", "invalid flags", "err", err)
		return exitUsage
	}

	tag := cfg.Tag()
	money.SetDefaultLocale(tag)
	def, err := cfg.Curr()
	if err != nil {
		level.Error(logger).Log("msg", "invalid currency", "currency", cfg.Currency, "err", err)
		return exitUsage
	}

	level.Debug(logger).Log("msg", "running", "args", strings.Join(fs.Args(), " "), "locale", tag, "currency", def)

	res, err := execute(fs.Args(), def)
	if err != nil {
		level.Error(logger).Log("msg", "command failed", "err", err)
		if errors.Is(err, errUsage) {
			fs.Usage()
		}
		return exitCode(err)
	}
	for _, a := range res {
		fmt.Fprintln(stdout, a.DisplayDefault())
	}
	return exitOK
}

func execute(args []string, def money.Currency) ([]money.Amount, error) {
	if len(args) < 2 {
		return nil, fmt.Errorf("%w: missing command or amount", errUsage)
	}
	cmd, args := args[0], args[1:]
	a, err := parseAmount(args[0], def)
	if err != nil {
		return nil, err
	}
	rest := args[1:]

	switch cmd {
	case "fmt":
		if len(rest) != 0 {
			return nil, fmt.Errorf("%w: fmt takes one amount", errUsage)
		}
		return []money.Amount{a}, nil
	case "add":
		bs := make([]money.Amount, len(rest))
		for i, s := range rest {
			if bs[i], err = parseAmount(s, def); err != nil {
				return nil, err
			}
		}
		return one(a.Add(bs...))
	case "sub", "mul", "div", "rem":
		if len(rest) != 1 {
			return nil, fmt.Errorf("%w: %v takes two amounts", errUsage, cmd)
		}
		b, err := parseAmount(rest[0], def)
		if err != nil {
			return nil, err
		}
		switch cmd {
		case "sub":
			return one(a.Sub(b))
		case "mul":
			return one(a.MulAmount(b))
		case "div":
			return one(a.QuoAmount(b))
		default:
			return one(a.Rem(b))
		}
	case "scale":
		if len(rest) != 1 {
			return nil, fmt.Errorf("%w: scale takes an amount and a factor", errUsage)
		}
		e, err := parseNumber(rest[0])
		if err != nil {
			return nil, err
		}
		return one(a.Mul(e))
	case "split":
		if len(rest) != 1 {
			return nil, fmt.Errorf("%w: split takes an amount and a number of parts", errUsage)
		}
		n, err := strconv.Atoi(rest[0])
		if err != nil {
			return nil, fmt.Errorf("%w: %w", money.ErrInvalidNumber, err)
		}
		return a.Split(n)
	case "conv":
		if len(rest) != 2 && len(rest) != 3 {
			return nil, fmt.Errorf("%w: conv takes an amount, a currency, a rate and an optional factor", errUsage)
		}
		r, err := parseRate(a.Curr().Code(), rest[0], rest[1])
		if err != nil {
			return nil, err
		}
		if len(rest) == 3 {
			e, err := parseNumber(rest[2])
			if err != nil {
				return nil, err
			}
			if r, err = r.Mul(e); err != nil {
				return nil, fmt.Errorf("%w: %w", money.ErrInvalidNumber, err)
			}
		}
		return one(r.Conv(a))
	case "invconv":
		if len(rest) != 2 {
			return nil, fmt.Errorf("%w: invconv takes an amount, a currency and a rate", errUsage)
		}
		// The rate is quoted in the opposite direction, CODE to the amount's currency.
		r, err := parseRate(rest[0], a.Curr().Code(), rest[1])
		if err != nil {
			return nil, err
		}
		inv, err := r.Inv()
		if err != nil {
			return nil, err
		}
		return one(inv.Conv(a))
	}
	return nil, fmt.Errorf("%w: unknown command %q", errUsage, cmd)
}

func parseRate(base, quote, rate string) (money.ExchangeRate, error) {
	r, err := money.ParseExchRate(base, quote, rate)
	if err != nil {
		if errors.Is(err, money.ErrInvalidCurrency) {
			return money.ExchangeRate{}, err
		}
		return money.ExchangeRate{}, fmt.Errorf("%w: %w", money.ErrInvalidNumber, err)
	}
	return r, nil
}

func one(a money.Amount, err error) ([]money.Amount, error) {
	if err != nil {
		return nil, err
	}
	return []money.Amount{a}, nil
}

// parseAmount parses CODE:NUMBER or NUMBER in the default currency.
func parseAmount(s string, def money.Currency) (money.Amount, error) {
	code, num, ok := strings.Cut(s, ":")
	if !ok {
		code, num = def.Code(), s
	}
	c, err := money.ParseCurr(code)
	if err != nil {
		return money.Amount{}, err
	}
	d, err := parseNumber(num)
	if err != nil {
		return money.Amount{}, err
	}
	return money.NewAmountFromDecimal(c, d)
}

func parseNumber(s string) (decimal.Decimal, error) {
	d, err := decimal.Parse(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %w", money.ErrInvalidNumber, err)
	}
	return d, nil
}

func exitCode(err error) int {
	switch {
	case errors.Is(err, errUsage):
		return exitUsage
	case errors.Is(err, money.ErrCurrencyMismatch):
		return exitMismatch
	case errors.Is(err, money.ErrDivisionByZero):
		return exitDivZero
	case errors.Is(err, money.ErrInvalidNumber):
		return exitNumber
	}
	return exitFailure
}

func allowLevel(name string) level.Option {
	switch name {
	case "debug":
		return level.AllowDebug()
	case "warn":
		return level.AllowWarn()
	case "error":
		return level.AllowError()
	}
	return level.AllowInfo()
}
