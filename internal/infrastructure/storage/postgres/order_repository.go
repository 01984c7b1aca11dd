package postgres

import (
	"context"
	"time"

	"courierdesk/internal/domain/delivery"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"
)

var _ delivery.Repository = (*OrderRepository)(nil)

const listOrders = `
SELECT
	e.id_encomenda,
	e.nr_encomenda::text,
	COALESCE(e.nm_cliente, ''),
	e.created_at,
	COALESCE(a.nr_cep, ''),
	COALESCE(a.nr_casa, ''),
	COALESCE(a.ds_complemento, '')
FROM tb_encomenda AS e
LEFT JOIN tb_endereco AS a ON e.cd_endereco = a.id_endereco
WHERE $1::bigint IS NULL OR e.cd_motorista = $1
ORDER BY e.id_encomenda`

func NewOrderRepository(pool *pgxpool.Pool, log *slog.Logger) *OrderRepository {
	return &OrderRepository{
		pool: pool,
		log:  log.With("component", "order_repository"),
	}
}

type OrderRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

// ListOrders только читает; соединение возвращается в пул на любом пути.
func (r *OrderRepository) ListOrders(ctx context.Context, driverID *int64) ([]delivery.Order, error) {
	conn, err := r.pool.Acquire(ctx)
	if err != nil {
		return nil, classify("acquire connection", err)
	}
	defer conn.Release()

	rows, err := conn.Query(ctx, listOrders, driverID)
	if err != nil {
		return nil, classify("list orders", err)
	}

	orders, err := r.collectOrders(rows)
	if err != nil {
		return nil, classify("scan orders", err)
	}

	r.log.Debug("orders loaded", "count", len(orders))
	return orders, nil
}

// collectOrders читает строки по одной. Строка, которую не удалось
// прочитать, но чей id известен, становится Order{Unreadable: true};
// строка без id пропускается. Ошибкой считается только сбой самого курсора.
func (r *OrderRepository) collectOrders(rows pgx.Rows) ([]delivery.Order, error) {
	defer rows.Close()

	orders := make([]delivery.Order, 0)
	for rows.Next() {
		o, err := scanOrder(rows)
		if err == nil {
			orders = append(orders, o)
			continue
		}

		id, ok := rowID(rows)
		if !ok {
			r.log.Error("skip unreadable order row", "error", err)
			continue
		}
		r.log.Warn("order row partially unreadable", "order_id", id, "error", err)
		orders = append(orders, delivery.Order{ID: id, Unreadable: true})
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return orders, nil
}

func rowID(rows pgx.Rows) (int64, bool) {
	values, err := rows.Values()
	if err != nil || len(values) == 0 {
		return 0, false
	}
	switch id := values[0].(type) {
	case int64:
		return id, true
	case int32:
		return int64(id), true
	case int16:
		return int64(id), true
	default:
		return 0, false
	}
}

func scanOrder(row pgx.CollectableRow) (delivery.Order, error) {
	var (
		o         delivery.Order
		createdAt *time.Time
	)
	err := row.Scan(
		&o.ID,
		&o.Number,
		&o.CustomerName,
		&createdAt,
		&o.PostalCodeCipher,
		&o.HouseNumberCipher,
		&o.ComplementCipher,
	)
	o.CreatedAt = createdAt
	return o, err
}
