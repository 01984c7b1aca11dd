// cmd/server/cmd/migrate.go
package cmd

import (
	"courierdesk/internal/infrastructure/migration"
	"courierdesk/internal/utils/logger"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Применить миграции схемы",
	Long:  `Создает таблицы tb_motorista, tb_endereco и tb_encomenda из MIGRATIONS_PATH.`,
	RunE: func(_ *cobra.Command, _ []string) error {
		if err := migration.NewMigration(cfg, nil).Up(); err != nil {
			log.Error("migration failed", logger.Err(err))
			return err
		}
		log.Info("migrations applied", "path", cfg.DB.Migrations)
		return nil
	},
}
