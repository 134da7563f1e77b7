package cycle

import (
	"math"
	"sort"

	"github.com/google/uuid"

	"github.com/steveppt9/cykel/internal/domain/date"
)

// maxGapDays — максимальный разрыв между днями с кровотечением,
// при котором они считаются одним циклом.
const maxGapDays = 2

// fallbackPeriodDays — длительность менструации по умолчанию, когда
// в выборке нет ни одного завершенного цикла с датой окончания.
const fallbackPeriodDays = 5.0

// recentWindow — сколько последних завершенных циклов участвует в прогнозе.
const recentWindow = 6

// Rebuild восстанавливает список циклов из дней с кровотечением.
// Дни сортируются и дедуплицируются; подряд идущие дни с разрывом
// не более 2 суток сливаются в один цикл. Последний цикл остается
// открытым, если сегодняшняя дата отстоит от его конца не более чем
// на 2 дня.
//
// Идентификаторы циклов генерируются заново при каждом вызове:
// идентичность цикла между перестроениями не сохраняется.
func Rebuild(flowDays []date.Date, today date.Date) []Cycle {
	if len(flowDays) == 0 {
		return nil
	}

	days := make([]date.Date, len(flowDays))
	copy(days, flowDays)
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j].Time) })

	deduped := days[:1]
	for _, d := range days[1:] {
		if !d.Equal(deduped[len(deduped)-1].Time) {
			deduped = append(deduped, d)
		}
	}
	days = deduped

	var cycles []Cycle
	start := days[0]
	end := days[0]

	for _, day := range days[1:] {
		if day.DaysSince(end) <= maxGapDays {
			end = day
			continue
		}
		closed := end
		cycles = append(cycles, Cycle{
			ID:        uuid.New(),
			StartDate: start,
			EndDate:   &closed,
		})
		start = day
		end = day
	}

	// Последний цикл: открыт, пока от его конца до сегодня не больше 2 дней
	var lastEnd *date.Date
	if today.DaysSince(end) > maxGapDays {
		closed := end
		lastEnd = &closed
	}
	cycles = append(cycles, Cycle{
		ID:        uuid.New(),
		StartDate: start,
		EndDate:   lastEnd,
	})

	return cycles
}

// Predict строит прогноз следующего цикла по последним завершенным
// циклам. Требуется не менее двух завершенных циклов, иначе nil.
func Predict(cycles []Cycle) *Prediction {
	in := internals(cycles)
	if in == nil {
		return nil
	}

	predictedStart := in.lastStart.AddDays(int(math.Round(in.avgCycle)))
	periodDays := math.Max(math.Round(in.avgPeriod)-1, 0)
	predictedEnd := predictedStart.AddDays(int(periodDays))

	confidence := float32(0.5)
	if len(in.cycleLengths) >= 2 {
		sd := stdDeviation(in.cycleLengths)
		confidence = clamp(1-float32(sd/in.avgCycle), 0.1, 0.95)
	}

	return &Prediction{
		PredictedStart: predictedStart,
		PredictedEnd:   predictedEnd,
		Confidence:     confidence,
	}
}

// Fertility оценивает окно фертильности по прогнозу следующего цикла.
// Овуляция — за 14 дней до прогнозируемого начала; фертильное окно —
// от овуляции минус 5 дней до дня овуляции; пик — последние 3 дня окна.
func Fertility(cycles []Cycle) *FertilityWindow {
	prediction := Predict(cycles)
	if prediction == nil {
		return nil
	}

	ovulation := prediction.PredictedStart.AddDays(-14)

	return &FertilityWindow{
		FertileStart: ovulation.AddDays(-5),
		FertileEnd:   ovulation,
		OvulationDay: ovulation,
		PeakStart:    ovulation.AddDays(-2),
		PeakEnd:      ovulation,
	}
}

// CalcStats вычисляет статистику по всем завершенным циклам.
// В отличие от Predict, здесь используется вся история в хронологическом
// порядке, а не последние шесть циклов: статистика отвечает на вопрос
// "как было", прогноз — "как будет". Не объединять.
func CalcStats(cycles []Cycle) Stats {
	completed := completedAscending(cycles)
	if len(completed) == 0 {
		return Stats{}
	}

	var periodLengths []float64
	for _, c := range completed {
		periodLengths = append(periodLengths, float64(c.EndDate.DaysSince(c.StartDate))+1)
	}

	var cycleLengths []int
	for i := 1; i < len(completed); i++ {
		cycleLengths = append(cycleLengths, completed[i].StartDate.DaysSince(completed[i-1].StartDate))
	}

	stats := Stats{TotalCycles: len(completed)}

	if len(cycleLengths) > 0 {
		var sum, shortest, longest int
		shortest = cycleLengths[0]
		longest = cycleLengths[0]
		for _, l := range cycleLengths {
			sum += l
			if l < shortest {
				shortest = l
			}
			if l > longest {
				longest = l
			}
		}
		avg := float32(sum) / float32(len(cycleLengths))
		stats.AvgCycleLength = &avg
		stats.ShortestCycle = &shortest
		stats.LongestCycle = &longest
	}

	if len(periodLengths) > 0 {
		avg := float32(mean(periodLengths))
		stats.AvgPeriodLength = &avg
	}

	last := completed[len(completed)-1]
	stats.LastPeriodStart = &last.StartDate
	stats.LastPeriodEnd = last.EndDate

	return stats
}

type predictionInternals struct {
	avgCycle     float64
	avgPeriod    float64
	cycleLengths []float64
	lastStart    date.Date
}

func internals(cycles []Cycle) *predictionInternals {
	completed := completedAscending(cycles)
	if len(completed) < 2 {
		return nil
	}

	// Прогноз строится по последним recentWindow циклам,
	// от самого свежего к более старым
	recent := make([]Cycle, 0, recentWindow)
	for i := len(completed) - 1; i >= 0 && len(recent) < recentWindow; i-- {
		recent = append(recent, completed[i])
	}

	var cycleLengths []float64
	for i := 1; i < len(recent); i++ {
		gap := recent[i-1].StartDate.DaysSince(recent[i].StartDate)
		if gap < 0 {
			gap = -gap
		}
		cycleLengths = append(cycleLengths, float64(gap))
	}
	if len(cycleLengths) == 0 {
		return nil
	}

	var periodLengths []float64
	for _, c := range recent {
		if c.EndDate != nil {
			periodLengths = append(periodLengths, float64(c.EndDate.DaysSince(c.StartDate))+1)
		}
	}

	avgPeriod := fallbackPeriodDays
	if len(periodLengths) > 0 {
		avgPeriod = mean(periodLengths)
	}

	return &predictionInternals{
		avgCycle:     mean(cycleLengths),
		avgPeriod:    avgPeriod,
		cycleLengths: cycleLengths,
		lastStart:    completed[len(completed)-1].StartDate,
	}
}

func completedAscending(cycles []Cycle) []Cycle {
	var completed []Cycle
	for _, c := range cycles {
		if c.Completed() {
			completed = append(completed, c)
		}
	}
	sort.Slice(completed, func(i, j int) bool {
		return completed[i].StartDate.Before(completed[j].StartDate.Time)
	})
	return completed
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// stdDeviation — выборочное стандартное отклонение (делитель n-1).
func stdDeviation(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	avg := mean(values)
	var variance float64
	for _, v := range values {
		variance += (v - avg) * (v - avg)
	}
	variance /= float64(len(values) - 1)
	return math.Sqrt(variance)
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
