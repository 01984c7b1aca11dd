// cmd/server/cmd/serve.go
package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"courierdesk/internal/app/server/api"
	"courierdesk/internal/app/server/crypto"
	"courierdesk/internal/infrastructure/storage/postgres"
	"courierdesk/internal/utils/logger"

	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Запустить HTTP сервер",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		// Неверный ключ или IV: дальше не идем, иначе все адреса будут пустыми.
		codec, err := crypto.NewFieldCodec(cfg.Crypto.Key, cfg.Crypto.IV)
		if err != nil {
			log.Error("encryption is not configured", logger.Err(err))
			return fmt.Errorf("check ENCRYPTION_KEY and ENCRYPTION_IV: %w", err)
		}

		storage, err := postgres.New(ctx, cfg)
		if err != nil {
			log.Error("failed to init storage", logger.Err(err))
			return err
		}
		defer storage.Close()

		srv := &http.Server{
			Addr: cfg.Server.RunAddress,
			Handler: api.New(api.Deps{
				Config:  cfg,
				Storage: storage,
				Codec:   codec,
				Log:     log,
			}),
			ReadHeaderTimeout: 5 * time.Second,
		}

		errCh := make(chan error, 1)
		go func() {
			log.Info("starting server", "address", cfg.Server.RunAddress, "env", cfg.Env)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
			close(errCh)
		}()

		select {
		case err := <-errCh:
			return err
		case <-ctx.Done():
		}

		log.Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		return srv.Shutdown(shutdownCtx)
	},
}
