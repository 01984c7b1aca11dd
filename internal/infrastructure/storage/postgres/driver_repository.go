package postgres

import (
	"context"
	"errors"

	"courierdesk/internal/domain/driver"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"
)

var _ driver.Repository = (*DriverRepository)(nil)

const findDriverByLogin = `SELECT nm_usuario, nr_senha, nm_motorista FROM tb_motorista WHERE nm_usuario = $1`

func NewDriverRepository(pool *pgxpool.Pool, log *slog.Logger) *DriverRepository {
	return &DriverRepository{
		pool: pool,
		log:  log.With("component", "driver_repository"),
	}
}

type DriverRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

// FindByLogin берет соединение из пула на время одного запроса.
func (r *DriverRepository) FindByLogin(ctx context.Context, login string) (driver.Credential, error) {
	conn, err := r.pool.Acquire(ctx)
	if err != nil {
		return driver.Credential{}, classify("acquire connection", err)
	}
	defer conn.Release()

	var (
		stored string
		cred   driver.Credential
	)
	err = conn.QueryRow(ctx, findDriverByLogin, login).Scan(&cred.Login, &stored, &cred.DisplayName)
	if errors.Is(err, pgx.ErrNoRows) {
		return driver.Credential{}, driver.ErrNotFound
	}
	if err != nil {
		return driver.Credential{}, classify("find driver", err)
	}

	cred.Secret = driver.ParseSecret(stored)
	return cred, nil
}
