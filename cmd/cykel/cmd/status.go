// cmd/cykel/cmd/status.go
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Показать состояние хранилища",
	RunE: func(_ *cobra.Command, _ []string) error {
		fmt.Printf("Файл хранилища: %s\n", cfg.VaultPath)
		if app.IsSetup() {
			fmt.Println("Состояние: создано, заблокировано")
		} else {
			fmt.Println("Состояние: не создано (выполните: cykel setup)")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
