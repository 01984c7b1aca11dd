// cmd/server/cmd/root.go
package cmd

import (
	"fmt"
	"os"

	"courierdesk/internal/app/server/config"
	"courierdesk/internal/utils/logger"

	"github.com/spf13/cobra"
	"golang.org/x/exp/slog"
)

var (
	cfg *config.Config
	log *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "courierdesk",
	Short: "Courierdesk - бэкенд логистики: вход водителей и маршруты доставки",
	Long: `Courierdesk проверяет учетные данные водителей и отдает записи доставки
с расшифрованным и найденным по CEP адресом.

Настройки читаются из .env и переменных окружения.`,
	PersistentPreRunE: setup,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Ошибка: %v\n", err)
		os.Exit(1)
	}
}

func setup(_ *cobra.Command, _ []string) error {
	cfg = config.MustLoad()
	log = logger.New(cfg.Env, cfg.Logger.LogLevel)
	return nil
}

func init() {
	rootCmd.AddCommand(serveCmd, migrateCmd, decryptCmd, resolveCmd, hashPasswordCmd)
}
