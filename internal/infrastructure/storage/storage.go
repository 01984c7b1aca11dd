package storage

import (
	"errors"
	"fmt"
)

// Kind - класс ошибки инфраструктуры, по нему API подбирает сообщение.
type Kind int

const (
	KindUnknown Kind = iota
	KindUnreachable
	KindAccessDenied
	KindDatabaseMissing
	KindSchemaMismatch
)

func (k Kind) String() string {
	switch k {
	case KindUnreachable:
		return "unreachable"
	case KindAccessDenied:
		return "access_denied"
	case KindDatabaseMissing:
		return "database_missing"
	case KindSchemaMismatch:
		return "schema_mismatch"
	default:
		return "unknown"
	}
}

// Error - ошибка инфраструктуры БД с классификацией.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf возвращает Kind первой *Error в цепочке err или KindUnknown.
func KindOf(err error) Kind {
	var se *Error
	if errors.As(err, &se) {
		return se.Kind
	}
	return KindUnknown
}
