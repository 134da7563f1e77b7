// cmd/cykel/cmd/log.go
package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/steveppt9/cykel/internal/domain/vault"
)

var (
	logFlow     string
	logNotes    string
	logSymptoms []string
)

var logCmd = &cobra.Command{
	Use:   "log <дата>",
	Short: "Записать день: кровотечение, заметки, симптомы",
	Long: `Команда log сохраняет дневную запись на дату в формате YYYY-MM-DD.
Повторная запись на ту же дату замещает предыдущую; набор симптомов
за дату замещается целиком.

Симптомы задаются в виде тип:тяжесть, например:
  cykel log 2026-01-01 --flow medium --symptom cramps:2 --symptom fatigue:1

Доступные типы симптомов: cramps, headache, mood_low, mood_high,
fatigue, bloating, breast_tenderness, acne. Тяжесть — от 1 до 3.`,
	Args: cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		symptoms, err := parseSymptoms(logSymptoms)
		if err != nil {
			return err
		}

		if err := unlockApp(); err != nil {
			return err
		}
		defer app.Lock()

		if err := app.LogDay(args[0], vault.FlowLevel(logFlow), logNotes, symptoms); err != nil {
			return err
		}

		color.Green("✓ Запись за %s сохранена", args[0])
		return nil
	},
}

func parseSymptoms(raw []string) ([]vault.SymptomEntry, error) {
	var entries []vault.SymptomEntry
	for _, item := range raw {
		parts := strings.SplitN(item, ":", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("неверный формат симптома %q, ожидается тип:тяжесть", item)
		}
		severity, err := strconv.Atoi(parts[1])
		if err != nil {
			return nil, fmt.Errorf("неверная тяжесть симптома %q: %w", item, err)
		}
		entries = append(entries, vault.SymptomEntry{
			Type:     vault.SymptomType(parts[0]),
			Severity: severity,
		})
	}
	return entries, nil
}

func init() {
	logCmd.Flags().StringVar(&logFlow, "flow", string(vault.FlowNone), "интенсивность кровотечения: none, light, medium, heavy")
	logCmd.Flags().StringVar(&logNotes, "notes", "", "заметки за день")
	logCmd.Flags().StringArrayVar(&logSymptoms, "symptom", nil, "симптом в формате тип:тяжесть (можно повторять)")

	rootCmd.AddCommand(logCmd)
}
