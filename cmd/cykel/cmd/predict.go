// cmd/cykel/cmd/predict.go
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var predictCmd = &cobra.Command{
	Use:   "predict",
	Short: "Показать прогноз следующего цикла",
	RunE: func(_ *cobra.Command, _ []string) error {
		if err := unlockApp(); err != nil {
			return err
		}
		defer app.Lock()

		prediction, err := app.Predictions()
		if err != nil {
			return err
		}
		if prediction == nil {
			fmt.Println("Недостаточно данных для прогноза: нужно минимум два завершенных цикла.")
			return nil
		}

		fmt.Printf("Следующий цикл: %s — %s\n", prediction.PredictedStart, prediction.PredictedEnd)
		fmt.Printf("Уверенность: %.0f%%\n", prediction.Confidence*100)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(predictCmd)
}
