package session

import (
	"time"

	"github.com/steveppt9/cykel/internal/domain/cycle"
	"github.com/steveppt9/cykel/internal/domain/vault"
)

// MonthData — данные месяца для слоя представления: записи и симптомы
// в границах месяца, прогноз, окно фертильности (только при включенной
// настройке), текущий цикл и статистика по всей истории.
type MonthData struct {
	Year         int                    `json:"year"`
	Month        time.Month             `json:"month"`
	DayLogs      []vault.DayLog         `json:"day_logs"`
	Symptoms     []vault.Symptom        `json:"symptoms"`
	Predictions  []cycle.Prediction     `json:"predictions"`
	Fertility    *cycle.FertilityWindow `json:"fertility"`
	CurrentCycle *cycle.Cycle           `json:"current_cycle"`
	Stats        cycle.Stats            `json:"stats"`
}
