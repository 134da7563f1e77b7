// cmd/cykel/cmd/month.go
package cmd

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"
)

var monthJSON bool

var monthCmd = &cobra.Command{
	Use:   "month <год> <месяц>",
	Short: "Показать данные месяца",
	Long: `Команда month выводит записи и симптомы месяца, прогноз следующего
цикла, окно фертильности (если включено в настройках), текущий цикл
и статистику по всей истории.`,
	Args: cobra.ExactArgs(2),
	RunE: func(_ *cobra.Command, args []string) error {
		year, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("неверный год %q: %w", args[0], err)
		}
		monthNum, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("неверный месяц %q: %w", args[1], err)
		}

		if err := unlockApp(); err != nil {
			return err
		}
		defer app.Lock()

		data, err := app.Month(year, time.Month(monthNum))
		if err != nil {
			return err
		}

		if monthJSON {
			out, err := json.MarshalIndent(data, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(out))
			return nil
		}

		fmt.Printf("=== %d-%02d ===\n", data.Year, data.Month)
		for _, log := range data.DayLogs {
			fmt.Printf("%s  кровотечение: %-7s %s\n", log.Date, log.FlowLevel, log.Notes)
		}
		for _, s := range data.Symptoms {
			fmt.Printf("%s  симптом: %s (%d)\n", s.Date, s.Type, s.Severity)
		}
		if data.CurrentCycle != nil {
			fmt.Printf("Текущий цикл начался %s\n", data.CurrentCycle.StartDate)
		}
		for _, p := range data.Predictions {
			fmt.Printf("Прогноз: %s — %s (уверенность %.0f%%)\n",
				p.PredictedStart, p.PredictedEnd, p.Confidence*100)
		}
		if data.Fertility != nil {
			fmt.Printf("Фертильное окно: %s — %s, овуляция %s\n",
				data.Fertility.FertileStart, data.Fertility.FertileEnd, data.Fertility.OvulationDay)
		}
		fmt.Printf("Завершенных циклов: %d\n", data.Stats.TotalCycles)

		return nil
	},
}

func init() {
	monthCmd.Flags().BoolVar(&monthJSON, "json", false, "вывод в формате JSON")
	rootCmd.AddCommand(monthCmd)
}
