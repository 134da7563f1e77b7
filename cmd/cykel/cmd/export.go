// cmd/cykel/cmd/export.go
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Экспортировать данные в незашифрованный JSON",
	Long: `Команда export выводит весь агрегат данных в читаемом JSON.

Внимание: экспортированные данные не зашифрованы. Храните файл
в безопасном месте или удалите его после использования.`,
	RunE: func(_ *cobra.Command, _ []string) error {
		if err := unlockApp(); err != nil {
			return err
		}
		defer app.Lock()

		out, err := app.Export()
		if err != nil {
			return err
		}

		if exportOutput != "" {
			if err := os.WriteFile(exportOutput, out, 0600); err != nil {
				return fmt.Errorf("запись файла экспорта: %w", err)
			}
			fmt.Printf("Данные экспортированы в %s\n", exportOutput)
			return nil
		}

		fmt.Println(string(out))
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "файл для записи экспорта")
	rootCmd.AddCommand(exportCmd)
}
