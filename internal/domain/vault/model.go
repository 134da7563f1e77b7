package vault

import (
	"github.com/steveppt9/cykel/internal/domain/cycle"
	"github.com/steveppt9/cykel/internal/domain/date"
)

// FlowLevel — интенсивность кровотечения за день.
type FlowLevel string

const (
	FlowNone   FlowLevel = "none"
	FlowLight  FlowLevel = "light"
	FlowMedium FlowLevel = "medium"
	FlowHeavy  FlowLevel = "heavy"
)

// Valid проверяет, что значение входит в допустимое множество.
func (f FlowLevel) Valid() bool {
	switch f {
	case FlowNone, FlowLight, FlowMedium, FlowHeavy:
		return true
	}
	return false
}

// SymptomType — тип симптома, закрытое множество из восьми категорий.
type SymptomType string

const (
	SymptomCramps           SymptomType = "cramps"
	SymptomHeadache         SymptomType = "headache"
	SymptomMoodLow          SymptomType = "mood_low"
	SymptomMoodHigh         SymptomType = "mood_high"
	SymptomFatigue          SymptomType = "fatigue"
	SymptomBloating         SymptomType = "bloating"
	SymptomBreastTenderness SymptomType = "breast_tenderness"
	SymptomAcne             SymptomType = "acne"
)

// Valid проверяет, что значение входит в допустимое множество.
func (s SymptomType) Valid() bool {
	switch s {
	case SymptomCramps, SymptomHeadache, SymptomMoodLow, SymptomMoodHigh,
		SymptomFatigue, SymptomBloating, SymptomBreastTenderness, SymptomAcne:
		return true
	}
	return false
}

const (
	// MinSeverity и MaxSeverity — границы тяжести симптома.
	// Значения вне диапазона не отклоняются, а приводятся к границе.
	MinSeverity = 1
	MaxSeverity = 3
)

// DayLog — дневная запись: дата уникальна, повторная запись на ту же
// дату замещает предыдущую.
type DayLog struct {
	Date      date.Date `json:"date"`
	FlowLevel FlowLevel `json:"flow_level"`
	Notes     string    `json:"notes"`
}

// Symptom — симптом на дату с тяжестью в диапазоне [1,3].
type Symptom struct {
	Date     date.Date   `json:"date"`
	Type     SymptomType `json:"symptom_type"`
	Severity int         `json:"severity"`
}

// SymptomEntry — пара тип/тяжесть при записи симптомов за день.
type SymptomEntry struct {
	Type     SymptomType
	Severity int
}

const (
	// MinAutoLockMinutes и MaxAutoLockMinutes — границы таймаута
	// автоблокировки; значения вне диапазона приводятся к границе.
	MinAutoLockMinutes = 1
	MaxAutoLockMinutes = 60

	defaultAutoLockMinutes = 5
)

// Settings — настройки, сохраняемые вместе с данными.
type Settings struct {
	AutoLockMinutes   int  `json:"auto_lock_minutes"`
	WipeAfterAttempts *int `json:"wipe_after_attempts"`
	ShowFertility     bool `json:"show_fertility"`
}

// DefaultSettings возвращает настройки по умолчанию.
func DefaultSettings() Settings {
	return Settings{
		AutoLockMinutes:   defaultAutoLockMinutes,
		WipeAfterAttempts: nil,
		ShowFertility:     false,
	}
}

// Data — корневой агрегат хранилища. Шифруется и расшифровывается
// только целиком, частичной загрузки и сохранения нет.
//
// Инвариант: список циклов — всегда чистая функция от дневных записей.
// Циклы никогда не редактируются напрямую; любое изменение записей
// обязано сопровождаться вызовом RebuildCycles.
type Data struct {
	Cycles   []cycle.Cycle `json:"cycles"`
	DayLogs  []DayLog      `json:"day_logs"`
	Symptoms []Symptom     `json:"symptoms"`
	Settings Settings      `json:"settings"`
}

// NewData создает пустой агрегат с настройками по умолчанию.
func NewData() *Data {
	return &Data{Settings: DefaultSettings()}
}

// UpsertDayLog добавляет дневную запись или замещает существующую
// с той же датой.
func (d *Data) UpsertDayLog(log DayLog) {
	for i := range d.DayLogs {
		if d.DayLogs[i].Date.Equal(log.Date.Time) {
			d.DayLogs[i].FlowLevel = log.FlowLevel
			d.DayLogs[i].Notes = log.Notes
			return
		}
	}
	d.DayLogs = append(d.DayLogs, log)
}

// ReplaceSymptoms полностью замещает набор симптомов за дату.
// Тяжесть приводится к диапазону [MinSeverity, MaxSeverity].
func (d *Data) ReplaceSymptoms(day date.Date, entries []SymptomEntry) {
	kept := d.Symptoms[:0]
	for _, s := range d.Symptoms {
		if !s.Date.Equal(day.Time) {
			kept = append(kept, s)
		}
	}
	d.Symptoms = kept

	for _, e := range entries {
		d.Symptoms = append(d.Symptoms, Symptom{
			Date:     day,
			Type:     e.Type,
			Severity: clampSeverity(e.Severity),
		})
	}
}

// RebuildCycles перестраивает список циклов из дневных записей
// с ненулевым кровотечением. Вызывается после каждой мутации записей.
func (d *Data) RebuildCycles(today date.Date) {
	var flowDays []date.Date
	for _, log := range d.DayLogs {
		if log.FlowLevel != FlowNone {
			flowDays = append(flowDays, log.Date)
		}
	}
	d.Cycles = cycle.Rebuild(flowDays, today)
}

// CurrentCycle возвращает незавершенный цикл, если он есть.
func (d *Data) CurrentCycle() *cycle.Cycle {
	for i := range d.Cycles {
		if !d.Cycles[i].Completed() {
			c := d.Cycles[i]
			return &c
		}
	}
	return nil
}

// LogsInRange возвращает дневные записи в диапазоне дат включительно.
func (d *Data) LogsInRange(from, to date.Date) []DayLog {
	var logs []DayLog
	for _, log := range d.DayLogs {
		if !log.Date.Before(from.Time) && !log.Date.After(to.Time) {
			logs = append(logs, log)
		}
	}
	return logs
}

// SymptomsInRange возвращает симптомы в диапазоне дат включительно.
func (d *Data) SymptomsInRange(from, to date.Date) []Symptom {
	var symptoms []Symptom
	for _, s := range d.Symptoms {
		if !s.Date.Before(from.Time) && !s.Date.After(to.Time) {
			symptoms = append(symptoms, s)
		}
	}
	return symptoms
}

func clampSeverity(v int) int {
	if v < MinSeverity {
		return MinSeverity
	}
	if v > MaxSeverity {
		return MaxSeverity
	}
	return v
}
