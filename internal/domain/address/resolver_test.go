package address

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/exp/slog"
)

type MockLookup struct {
	mock.Mock
	name string
}

func (m *MockLookup) Name() string { return m.name }

func (m *MockLookup) Lookup(ctx context.Context, postalCode string) (Address, error) {
	args := m.Called(ctx, postalCode)
	return args.Get(0).(Address), args.Error(1)
}

// slowLookup blocks until its context is done.
type slowLookup struct{}

func (slowLookup) Name() string { return "slow" }

func (slowLookup) Lookup(ctx context.Context, _ string) (Address, error) {
	<-ctx.Done()
	return Address{}, ctx.Err()
}

var centro = Address{Street: "Rua A", Neighborhood: "Centro", City: "X", Region: "Y"}

func TestResolver_InternalWins(t *testing.T) {
	internal := &MockLookup{name: "internal"}
	public := &MockLookup{name: "public"}
	internal.On("Lookup", mock.Anything, "01001000").Return(centro, nil)

	r := NewResolver(time.Second, slog.Default(), internal, public)
	got, ok := r.Resolve(context.Background(), "01001-000")

	assert.True(t, ok)
	assert.Equal(t, centro, got)
	public.AssertNotCalled(t, "Lookup", mock.Anything, mock.Anything)
}

func TestResolver_FallsBackToPublic(t *testing.T) {
	tests := []struct {
		name        string
		internalErr error
	}{
		{name: "internal not found", internalErr: ErrNotFound},
		{name: "internal unavailable", internalErr: ErrUnavailable},
		{name: "internal timeout", internalErr: context.DeadlineExceeded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			internal := &MockLookup{name: "internal"}
			public := &MockLookup{name: "public"}
			internal.On("Lookup", mock.Anything, "01001000").Return(Address{}, tt.internalErr)
			public.On("Lookup", mock.Anything, "01001000").Return(centro, nil)

			r := NewResolver(time.Second, slog.Default(), internal, public)
			got, ok := r.Resolve(context.Background(), "01001000")

			assert.True(t, ok)
			assert.Equal(t, centro, got)
			internal.AssertExpectations(t)
			public.AssertExpectations(t)
		})
	}
}

func TestResolver_SlowTierIsBoundedByTimeout(t *testing.T) {
	public := &MockLookup{name: "public"}
	public.On("Lookup", mock.Anything, "01001000").Return(centro, nil)

	r := NewResolver(20*time.Millisecond, slog.Default(), slowLookup{}, public)

	start := time.Now()
	got, ok := r.Resolve(context.Background(), "01001000")

	assert.True(t, ok)
	assert.Equal(t, centro, got)
	assert.Less(t, time.Since(start), time.Second)
}

func TestResolver_BothFail(t *testing.T) {
	internal := &MockLookup{name: "internal"}
	public := &MockLookup{name: "public"}
	internal.On("Lookup", mock.Anything, "01001000").Return(Address{}, ErrNotFound)
	public.On("Lookup", mock.Anything, "01001000").Return(Address{}, errors.New("boom"))

	r := NewResolver(time.Second, slog.Default(), internal, public)
	_, ok := r.Resolve(context.Background(), "01001000")

	assert.False(t, ok)
	internal.AssertExpectations(t)
	public.AssertExpectations(t)
}

func TestResolver_InvalidPostalCodeSkipsLookups(t *testing.T) {
	internal := &MockLookup{name: "internal"}
	r := NewResolver(time.Second, slog.Default(), internal)

	for _, code := range []string{"", "123", "0100100A", "010010001"} {
		_, ok := r.Resolve(context.Background(), code)
		assert.False(t, ok, code)
	}
	internal.AssertNotCalled(t, "Lookup", mock.Anything, mock.Anything)
}

func TestResolver_CancelledContext(t *testing.T) {
	internal := &MockLookup{name: "internal"}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := NewResolver(time.Second, slog.Default(), internal)
	_, ok := r.Resolve(ctx, "01001000")

	assert.False(t, ok)
	internal.AssertNotCalled(t, "Lookup", mock.Anything, mock.Anything)
}

func TestFirstSuccess(t *testing.T) {
	var order []string
	step := func(name string, err error) Strategy[int] {
		return Strategy[int]{Name: name, Run: func(context.Context) (int, error) {
			order = append(order, name)
			if err != nil {
				return 0, err
			}
			return len(name), nil
		}}
	}

	got, err := FirstSuccess(context.Background(), 0, []Strategy[int]{
		step("a", errors.New("fail")),
		step("bb", nil),
		step("ccc", nil),
	})
	assert.NoError(t, err)
	assert.Equal(t, 2, got)
	assert.Equal(t, []string{"a", "bb"}, order)

	_, err = FirstSuccess[int](context.Background(), 0, nil)
	assert.ErrorIs(t, err, ErrNoLookups)

	_, err = FirstSuccess(context.Background(), 0, []Strategy[int]{step("x", ErrNotFound), step("y", ErrUnavailable)})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestNormalizePostalCode(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{in: "01001000", want: "01001000", ok: true},
		{in: "01001-000", want: "01001000", ok: true},
		{in: " 01.001-000 ", want: "01001000", ok: true},
		{in: "0100100", ok: false},
		{in: "01001-00a", ok: false},
		{in: "", ok: false},
	}

	for _, tt := range tests {
		got, ok := NormalizePostalCode(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}
