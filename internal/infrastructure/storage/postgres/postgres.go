package postgres

import (
	"context"
	"errors"
	"fmt"
	"net"

	"courierdesk/internal/app/server/config"
	"courierdesk/internal/infrastructure/storage"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Коды SQLSTATE, по которым классифицируются ошибки.
const (
	codeInvalidPassword       = "28P01"
	codeInvalidAuthorization  = "28000"
	codeInvalidCatalogName    = "3D000"
	codeUndefinedColumn       = "42703"
	codeUndefinedTable        = "42P01"
	codeInsufficientPrivilege = "42501"
)

type Storage struct {
	pool *pgxpool.Pool
}

// New создает пул. Подключение ленивое: ошибки сети проявятся при первом Acquire.
func New(ctx context.Context, cfg *config.Config) (*Storage, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DB.URL())
	if err != nil {
		return nil, fmt.Errorf("parse pool config: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	return &Storage{pool: pool}, nil
}

func (s *Storage) Close() error {
	s.pool.Close()
	return nil
}

func (s *Storage) Pool() *pgxpool.Pool {
	return s.pool
}

// Ping проверяет соединение с БД.
func (s *Storage) Ping(ctx context.Context) error {
	if err := s.pool.Ping(ctx); err != nil {
		return classify("ping", err)
	}
	return nil
}

// classify оборачивает ошибку pgx в storage.Error с нужным Kind.
func classify(op string, err error) error {
	if err == nil {
		return nil
	}
	return &storage.Error{Kind: kindOf(err), Op: op, Err: err}
}

func kindOf(err error) storage.Kind {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeInvalidPassword, codeInvalidAuthorization, codeInsufficientPrivilege:
			return storage.KindAccessDenied
		case codeInvalidCatalogName:
			return storage.KindDatabaseMissing
		case codeUndefinedColumn, codeUndefinedTable:
			return storage.KindSchemaMismatch
		}
		return storage.KindUnknown
	}

	var opErr *net.OpError
	var dnsErr *net.DNSError
	if errors.As(err, &opErr) || errors.As(err, &dnsErr) {
		return storage.KindUnreachable
	}

	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return storage.KindUnreachable
	}

	return storage.KindUnknown
}
