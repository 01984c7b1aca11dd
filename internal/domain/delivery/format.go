package delivery

import (
	"strings"
	"time"

	"courierdesk/internal/domain/address"
)

const (
	partSeparator     = ", "
	timeLayout        = "02/01/2006 15:04"
	postalCodeLabel   = "CEP: "
	houseNumberPrefix = "Nº "
)

// fields - расшифрованные части адреса; пустая строка означает "нет значения".
type fields struct {
	postalCode  string
	houseNumber string
	complement  string
}

func joinNonEmpty(sep string, parts ...string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}

func withPrefix(prefix, v string) string {
	if strings.TrimSpace(v) == "" {
		return ""
	}
	return prefix + strings.TrimSpace(v)
}

// formatResolved: street, Nº number, complement, neighborhood, city - region.
func formatResolved(addr address.Address, f fields) string {
	return joinNonEmpty(partSeparator,
		addr.Street,
		withPrefix(houseNumberPrefix, f.houseNumber),
		f.complement,
		addr.Neighborhood,
		joinNonEmpty(" - ", addr.City, addr.Region),
	)
}

// formatRaw: CEP: code, Nº number, complement.
func formatRaw(f fields) string {
	return joinNonEmpty(partSeparator,
		withPrefix(postalCodeLabel, f.postalCode),
		withPrefix(houseNumberPrefix, f.houseNumber),
		f.complement,
	)
}

func formatTime(t *time.Time, loc *time.Location) string {
	if t == nil || t.IsZero() {
		return TimeUnavailable
	}
	return t.In(loc).Format(timeLayout)
}
