package delivery

// Result хранит значение или ошибку, из-за которой его нет.
type Result[T any] struct {
	value T
	err   error
}

func Ok[T any](v T) Result[T] {
	return Result[T]{value: v}
}

func Err[T any](err error) Result[T] {
	return Result[T]{err: err}
}

func (r Result[T]) IsOk() bool {
	return r.err == nil
}

func (r Result[T]) Err() error {
	return r.err
}

// OrZero возвращает значение или нулевое значение при ошибке.
func (r Result[T]) OrZero() T {
	if r.err != nil {
		var zero T
		return zero
	}
	return r.value
}
