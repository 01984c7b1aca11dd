package delivery

import (
	"context"
	"errors"
	"fmt"
	"time"

	"courierdesk/internal/app/server/crypto"
	"courierdesk/internal/domain/address"

	"golang.org/x/exp/slog"
	"golang.org/x/sync/errgroup"
)

type Decrypter interface {
	Decrypt(ciphertextHex string) (string, error)
}

type AddressResolver interface {
	Resolve(ctx context.Context, postalCode string) (address.Address, bool)
}

// Aggregator собирает Record для каждой Order. Ошибки одной записи
// не влияют на остальные, количество и порядок сохраняются.
type Aggregator struct {
	codec    Decrypter
	resolver AddressResolver
	limit    int
	loc      *time.Location
	log      *slog.Logger
}

func NewAggregator(codec Decrypter, resolver AddressResolver, limit int, loc *time.Location, log *slog.Logger) *Aggregator {
	if limit <= 0 {
		limit = 1
	}
	if loc == nil {
		loc = time.UTC
	}
	return &Aggregator{
		codec:    codec,
		resolver: resolver,
		limit:    limit,
		loc:      loc,
		log:      log.With("component", "delivery_aggregator"),
	}
}

// BuildRecords возвращает ровно одну запись на заказ в исходном порядке.
// Поиск адресов идет параллельно, не больше limit одновременно.
func (a *Aggregator) BuildRecords(ctx context.Context, orders []Order) []Record {
	records := make([]Record, len(orders))

	var g errgroup.Group
	g.SetLimit(a.limit)
	for i, o := range orders {
		g.Go(func() error {
			records[i] = a.buildSafe(ctx, o)
			return nil
		})
	}
	_ = g.Wait()

	return records
}

func (a *Aggregator) buildSafe(ctx context.Context, o Order) (rec Record) {
	defer func() {
		if r := recover(); r != nil {
			a.log.Error("failed to build delivery record", "order_id", o.ID, "panic", fmt.Sprint(r))
			rec = degraded(o)
		}
	}()
	return a.build(ctx, o)
}

func (a *Aggregator) build(ctx context.Context, o Order) Record {
	if o.Unreadable {
		return degraded(o)
	}

	f := fields{
		postalCode:  a.decryptField(o.ID, "postal_code", o.PostalCodeCipher).OrZero(),
		houseNumber: a.decryptField(o.ID, "house_number", o.HouseNumberCipher).OrZero(),
		complement:  a.decryptField(o.ID, "complement", o.ComplementCipher).OrZero(),
	}

	return Record{
		ID:          o.ID,
		Title:       title(o),
		Description: description(o),
		Address:     a.formatAddress(ctx, f),
		Status:      StatusPending,
		Time:        formatTime(o.CreatedAt, a.loc),
		Read:        false,
	}
}

func (a *Aggregator) decryptField(orderID int64, name, ciphertext string) Result[string] {
	if ciphertext == "" {
		return Ok("")
	}

	plain, err := a.codec.Decrypt(ciphertext)
	if err != nil {
		if errors.Is(err, crypto.ErrConfig) {
			a.log.Error("field cipher is not configured", "order_id", orderID, "field", name, "error", err)
		} else {
			a.log.Warn("failed to decrypt field", "order_id", orderID, "field", name, "error", err)
		}
		return Err[string](err)
	}

	return Ok(plain)
}

func (a *Aggregator) formatAddress(ctx context.Context, f fields) string {
	if f.postalCode != "" {
		if addr, ok := a.resolver.Resolve(ctx, f.postalCode); ok {
			return formatResolved(addr, f)
		}
	}

	if s := formatRaw(f); s != "" {
		return s
	}
	return AddressUnavailable
}

func title(o Order) string {
	return "Order #" + o.Number
}

func description(o Order) string {
	return "Customer: " + o.CustomerName
}

func degraded(o Order) Record {
	return Record{
		ID:          o.ID,
		Title:       title(o),
		Description: description(o),
		Address:     AddressError,
		Status:      StatusPending,
		Time:        TimeUnavailable,
		Read:        false,
	}
}
