package driver

import (
	"context"
)

type Repository interface {
	// FindByLogin возвращает ErrNotFound, если водителя нет.
	FindByLogin(ctx context.Context, login string) (Credential, error)
}
