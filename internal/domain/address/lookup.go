package address

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Lookup - один уровень справочника адресов.
type Lookup interface {
	Name() string
	Lookup(ctx context.Context, postalCode string) (Address, error)
}

// Strategy - одна попытка в цепочке FirstSuccess.
type Strategy[T any] struct {
	Name string
	Run  func(ctx context.Context) (T, error)
}

// FirstSuccess запускает стратегии по порядку и возвращает первый успешный результат.
// При timeout > 0 у каждой попытки свой таймаут. Если все упали, ошибки объединяются.
func FirstSuccess[T any](ctx context.Context, timeout time.Duration, strategies []Strategy[T]) (T, error) {
	var zero T
	if len(strategies) == 0 {
		return zero, ErrNoLookups
	}

	errs := make([]error, 0, len(strategies))
	for _, s := range strategies {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}

		v, err := attempt(ctx, timeout, s)
		if err == nil {
			return v, nil
		}
		errs = append(errs, fmt.Errorf("%s: %w", s.Name, err))
	}

	return zero, errors.Join(errs...)
}

func attempt[T any](ctx context.Context, timeout time.Duration, s Strategy[T]) (T, error) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	return s.Run(ctx)
}
