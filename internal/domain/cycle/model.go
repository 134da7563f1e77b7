package cycle

import (
	"github.com/google/uuid"

	"github.com/steveppt9/cykel/internal/domain/date"
)

// Cycle — один менструальный цикл, восстановленный из дневных записей.
// EndDate == nil означает незавершенный (текущий) цикл.
type Cycle struct {
	ID        uuid.UUID  `json:"id"`
	StartDate date.Date  `json:"start_date"`
	EndDate   *date.Date `json:"end_date"`
}

// Completed сообщает, завершен ли цикл.
func (c Cycle) Completed() bool {
	return c.EndDate != nil
}

// Prediction — прогноз следующего цикла. Вычисляется по запросу,
// никогда не сохраняется.
type Prediction struct {
	PredictedStart date.Date `json:"predicted_start"`
	PredictedEnd   date.Date `json:"predicted_end"`
	Confidence     float32   `json:"confidence"`
}

// FertilityWindow — окно фертильности, производное от прогноза.
type FertilityWindow struct {
	FertileStart date.Date `json:"fertile_start"`
	FertileEnd   date.Date `json:"fertile_end"`
	OvulationDay date.Date `json:"ovulation_day"`
	PeakStart    date.Date `json:"peak_start"`
	PeakEnd      date.Date `json:"peak_end"`
}

// Stats — агрегированная статистика по всем завершенным циклам.
type Stats struct {
	TotalCycles     int        `json:"total_cycles"`
	AvgCycleLength  *float32   `json:"avg_cycle_length"`
	AvgPeriodLength *float32   `json:"avg_period_length"`
	ShortestCycle   *int       `json:"shortest_cycle"`
	LongestCycle    *int       `json:"longest_cycle"`
	LastPeriodStart *date.Date `json:"last_period_start"`
	LastPeriodEnd   *date.Date `json:"last_period_end"`
}
