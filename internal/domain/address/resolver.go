package address

import (
	"context"
	"strings"
	"time"
	"unicode"

	"golang.org/x/exp/slog"
)

const postalCodeLen = 8

// Resolver ищет адрес по CEP, перебирая уровни справочника по порядку.
type Resolver struct {
	lookups []Lookup
	timeout time.Duration
	log     *slog.Logger
}

func NewResolver(timeout time.Duration, log *slog.Logger, lookups ...Lookup) *Resolver {
	return &Resolver{
		lookups: lookups,
		timeout: timeout,
		log:     log.With("component", "address_resolver"),
	}
}

// Resolve не возвращает ошибок: если все уровни отказали - (Address{}, false).
func (r *Resolver) Resolve(ctx context.Context, postalCode string) (Address, bool) {
	code, ok := NormalizePostalCode(postalCode)
	if !ok {
		r.log.Debug("skip lookup", "postal_code", postalCode, "error", ErrInvalidPostalCode)
		return Address{}, false
	}

	strategies := make([]Strategy[Address], 0, len(r.lookups))
	for _, l := range r.lookups {
		strategies = append(strategies, Strategy[Address]{
			Name: l.Name(),
			Run: func(ctx context.Context) (Address, error) {
				return l.Lookup(ctx, code)
			},
		})
	}

	addr, err := FirstSuccess(ctx, r.timeout, strategies)
	if err != nil {
		r.log.Warn("address lookup failed", "postal_code", code, "error", err)
		return Address{}, false
	}

	return addr, true
}

// NormalizePostalCode убирает разделители ("01001-000" -> "01001000") и
// отклоняет все, что не является кодом из 8 цифр.
func NormalizePostalCode(s string) (string, bool) {
	code := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		if unicode.IsSpace(r) || r == '-' || r == '.' {
			return -1
		}
		return 'x'
	}, s)

	if len(code) != postalCodeLen || strings.ContainsRune(code, 'x') {
		return "", false
	}
	return code, true
}
