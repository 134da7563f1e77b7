// cmd/cykel/cmd/setup.go
package cmd

import (
	"bytes"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/steveppt9/cykel/internal/crypto"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Создать новое зашифрованное хранилище",
	Long: `Команда setup создает пустое хранилище, зашифрованное парольной фразой.

Парольная фраза защищает все ваши данные. Убедитесь, что выбрали надежную
фразу и сохранили ее в безопасном месте. Без парольной фразы восстановить
данные невозможно.`,
	RunE: func(_ *cobra.Command, _ []string) error {
		if app.IsSetup() {
			fmt.Println("Хранилище уже создано.")
			return nil
		}

		fmt.Println("=== Создание хранилища Cykel ===")
		fmt.Println()

		passphrase, err := promptPassphrase("Введите парольную фразу: ")
		if err != nil {
			return err
		}
		defer crypto.ClearMemory(passphrase)

		confirm, err := promptPassphrase("Повторите парольную фразу: ")
		if err != nil {
			return err
		}
		defer crypto.ClearMemory(confirm)

		if !bytes.Equal(passphrase, confirm) {
			return fmt.Errorf("парольные фразы не совпадают")
		}
		if len(passphrase) < 8 {
			return fmt.Errorf("парольная фраза должна содержать минимум 8 символов")
		}

		if err := app.Setup(passphrase); err != nil {
			return err
		}
		defer app.Lock()

		fmt.Println()
		color.Green("✓ Хранилище создано: %s", cfg.VaultPath)
		fmt.Println()
		fmt.Println("Что дальше:")
		fmt.Println("1. Запишите первый день: cykel log 2026-01-01 --flow medium")
		fmt.Println("2. Посмотрите месяц: cykel month 2026 1")

		return nil
	},
}

func init() {
	rootCmd.AddCommand(setupCmd)
}
