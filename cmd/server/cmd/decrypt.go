// cmd/server/cmd/decrypt.go
package cmd

import (
	"fmt"

	"courierdesk/internal/app/server/crypto"

	"github.com/spf13/cobra"
)

var decryptCmd = &cobra.Command{
	Use:   "decrypt <hex>",
	Short: "Расшифровать одно поле адреса",
	Long:  `Проверка ENCRYPTION_KEY и ENCRYPTION_IV на значении из tb_endereco.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		codec, err := crypto.NewFieldCodec(cfg.Crypto.Key, cfg.Crypto.IV)
		if err != nil {
			return err
		}
		plaintext, err := codec.Decrypt(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), plaintext)
		return nil
	},
}
