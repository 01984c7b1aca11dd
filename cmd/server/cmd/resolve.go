// cmd/server/cmd/resolve.go
package cmd

import (
	"encoding/json"
	"fmt"

	"courierdesk/internal/app/server/api"

	"github.com/spf13/cobra"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve <cep>",
	Short: "Найти адрес по CEP через справочники",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		resolver := api.NewResolver(cfg.Address, log)
		addr, ok := resolver.Resolve(cmd.Context(), args[0])
		if !ok {
			return fmt.Errorf("address for %q not found", args[0])
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(addr)
	},
}
