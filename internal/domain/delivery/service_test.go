package delivery

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) ListOrders(ctx context.Context, driverID *int64) ([]Order, error) {
	args := m.Called(ctx, driverID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Order), args.Error(1)
}

func TestService_List(t *testing.T) {
	repo := new(MockRepository)
	resolver := new(MockResolver)
	resolver.On("Resolve", mock.Anything, "01001000").Return(centro, true)

	driverID := int64(7)
	repo.On("ListOrders", mock.Anything, &driverID).Return([]Order{
		{ID: 1, Number: "1", PostalCodeCipher: cipherPostal},
		{ID: 2, Number: "2"},
	}, nil)

	agg := NewAggregator(newCodec(t), resolver, 2, time.UTC, slog.Default())
	svc := NewService(repo, agg, slog.Default())

	records, err := svc.List(context.Background(), &driverID)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Rua A, Centro, X - Y", records[0].Address)
	assert.Equal(t, AddressUnavailable, records[1].Address)

	repo.AssertExpectations(t)
}

func TestService_List_RepositoryError(t *testing.T) {
	repo := new(MockRepository)
	dbErr := errors.New("connection refused")
	repo.On("ListOrders", mock.Anything, (*int64)(nil)).Return(nil, dbErr)

	agg := NewAggregator(newCodec(t), new(MockResolver), 2, time.UTC, slog.Default())
	svc := NewService(repo, agg, slog.Default())

	records, err := svc.List(context.Background(), nil)
	assert.Nil(t, records)
	assert.ErrorIs(t, err, dbErr)
}

func TestResult(t *testing.T) {
	ok := Ok("v")
	assert.True(t, ok.IsOk())
	assert.Equal(t, "v", ok.OrZero())
	assert.NoError(t, ok.Err())

	bad := Err[string](errors.New("x"))
	assert.False(t, bad.IsOk())
	assert.Equal(t, "", bad.OrZero())
	assert.Error(t, bad.Err())
}
