// cmd/cykel/cmd/settings.go
package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	autoLockMinutes int
	fertility       string
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Показать или изменить настройки",
	Long: `Без флагов команда выводит текущие настройки. Флаги изменяют их:

  --auto-lock N     таймаут автоблокировки в минутах (1-60)
  --fertility on|off включить или выключить отображение фертильности`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := unlockApp(); err != nil {
			return err
		}
		defer app.Lock()

		changed := false

		if cmd.Flags().Changed("auto-lock") {
			if err := app.UpdateSettings(autoLockMinutes); err != nil {
				return err
			}
			changed = true
		}

		if cmd.Flags().Changed("fertility") {
			switch fertility {
			case "on":
				if err := app.ToggleFertility(true); err != nil {
					return err
				}
			case "off":
				if err := app.ToggleFertility(false); err != nil {
					return err
				}
			default:
				return fmt.Errorf("неверное значение --fertility %q, ожидается on или off", fertility)
			}
			changed = true
		}

		settings, err := app.Settings()
		if err != nil {
			return err
		}

		if changed {
			color.Green("✓ Настройки сохранены")
		}
		fmt.Printf("Автоблокировка: %d мин\n", settings.AutoLockMinutes)
		fmt.Printf("Отображение фертильности: %v\n", settings.ShowFertility)
		if settings.WipeAfterAttempts != nil {
			fmt.Printf("Удаление после неудачных попыток: %d\n", *settings.WipeAfterAttempts)
		}

		return nil
	},
}

func init() {
	settingsCmd.Flags().IntVar(&autoLockMinutes, "auto-lock", 5, "таймаут автоблокировки в минутах")
	settingsCmd.Flags().StringVar(&fertility, "fertility", "", "отображение фертильности: on или off")

	rootCmd.AddCommand(settingsCmd)
}
