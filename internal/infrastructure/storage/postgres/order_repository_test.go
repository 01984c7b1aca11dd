package postgres

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"courierdesk/internal/domain/delivery"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

// fakeRows отдает заранее заданные строки; scanErr[i] делает строку i нечитаемой.
type fakeRows struct {
	data    [][]any
	scanErr map[int]error
	err     error
	pos     int
	closed  bool
}

func (f *fakeRows) Close()                                       { f.closed = true }
func (f *fakeRows) Err() error                                   { return f.err }
func (f *fakeRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (f *fakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (f *fakeRows) RawValues() [][]byte                          { return nil }
func (f *fakeRows) Conn() *pgx.Conn                              { return nil }

func (f *fakeRows) Next() bool {
	if f.pos >= len(f.data) {
		return false
	}
	f.pos++
	return true
}

func (f *fakeRows) Values() ([]any, error) {
	return f.data[f.pos-1], nil
}

func (f *fakeRows) Scan(dest ...any) error {
	if err := f.scanErr[f.pos-1]; err != nil {
		return err
	}
	row := f.data[f.pos-1]
	for i, d := range dest {
		reflect.ValueOf(d).Elem().Set(reflect.ValueOf(row[i]))
	}
	return nil
}

func orderRow(id int64, number string, createdAt *time.Time) []any {
	return []any{id, number, "Maria", createdAt, "a2399f97257ea52012dde991ce0b1ec4", "", ""}
}

func TestOrderRepository_CollectOrders(t *testing.T) {
	created := time.Date(2026, 10, 18, 14, 5, 0, 0, time.UTC)
	rows := &fakeRows{
		data: [][]any{
			orderRow(1, "1001", &created),
			orderRow(2, "1002", nil),
			{"not-an-id", "1003", "", nil, "", "", ""},
			orderRow(4, "1004", nil),
		},
		scanErr: map[int]error{
			1: errors.New("cannot scan NULL into *string"),
			2: errors.New("cannot scan text into *int64"),
		},
	}
	repo := NewOrderRepository(nil, slog.Default())

	orders, err := repo.collectOrders(rows)
	require.NoError(t, err)
	assert.True(t, rows.closed)

	require.Len(t, orders, 3)
	assert.Equal(t, delivery.Order{
		ID:               1,
		Number:           "1001",
		CustomerName:     "Maria",
		CreatedAt:        &created,
		PostalCodeCipher: "a2399f97257ea52012dde991ce0b1ec4",
	}, orders[0])
	assert.Equal(t, delivery.Order{ID: 2, Unreadable: true}, orders[1])
	assert.Equal(t, int64(4), orders[2].ID)
	assert.False(t, orders[2].Unreadable)
}

func TestOrderRepository_CollectOrders_CursorError(t *testing.T) {
	rows := &fakeRows{
		data: [][]any{orderRow(1, "1001", nil)},
		err:  errors.New("connection reset"),
	}
	repo := NewOrderRepository(nil, slog.Default())

	_, err := repo.collectOrders(rows)
	assert.EqualError(t, err, "connection reset")
}

func TestOrderRepository_CollectOrders_Empty(t *testing.T) {
	repo := NewOrderRepository(nil, slog.Default())

	orders, err := repo.collectOrders(&fakeRows{})
	require.NoError(t, err)
	assert.NotNil(t, orders)
	assert.Empty(t, orders)
}
