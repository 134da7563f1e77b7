// cmd/cykel/cmd/wipe.go
package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var wipeYes bool

var wipeCmd = &cobra.Command{
	Use:   "wipe",
	Short: "Необратимо удалить все данные",
	Long: `Команда wipe блокирует сессию и удаляет файл хранилища.
Восстановить данные после удаления невозможно.`,
	RunE: func(_ *cobra.Command, _ []string) error {
		if !wipeYes {
			return fmt.Errorf("удаление необратимо; подтвердите флагом --yes")
		}

		if err := app.WipeAll(); err != nil {
			return err
		}

		color.Red("Все данные удалены.")
		return nil
	},
}

func init() {
	wipeCmd.Flags().BoolVar(&wipeYes, "yes", false, "подтвердить необратимое удаление")
	rootCmd.AddCommand(wipeCmd)
}
