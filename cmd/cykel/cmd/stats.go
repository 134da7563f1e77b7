// cmd/cykel/cmd/stats.go
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Показать статистику по завершенным циклам",
	RunE: func(_ *cobra.Command, _ []string) error {
		if err := unlockApp(); err != nil {
			return err
		}
		defer app.Lock()

		stats, err := app.Stats()
		if err != nil {
			return err
		}

		fmt.Printf("Завершенных циклов: %d\n", stats.TotalCycles)
		if stats.AvgCycleLength != nil {
			fmt.Printf("Средняя длина цикла: %.1f дней\n", *stats.AvgCycleLength)
		}
		if stats.AvgPeriodLength != nil {
			fmt.Printf("Средняя длина менструации: %.1f дней\n", *stats.AvgPeriodLength)
		}
		if stats.ShortestCycle != nil && stats.LongestCycle != nil {
			fmt.Printf("Самый короткий/длинный цикл: %d / %d дней\n", *stats.ShortestCycle, *stats.LongestCycle)
		}
		if stats.LastPeriodStart != nil {
			end := "—"
			if stats.LastPeriodEnd != nil {
				end = stats.LastPeriodEnd.String()
			}
			fmt.Printf("Последняя менструация: %s — %s\n", *stats.LastPeriodStart, end)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
