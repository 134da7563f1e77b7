package vault

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/steveppt9/cykel/internal/domain/date"
)

func TestFlowLevelValid(t *testing.T) {
	for _, f := range []FlowLevel{FlowNone, FlowLight, FlowMedium, FlowHeavy} {
		assert.True(t, f.Valid(), "уровень %q должен быть допустимым", f)
	}
	assert.False(t, FlowLevel("spotting").Valid())
	assert.False(t, FlowLevel("").Valid())
}

func TestSymptomTypeValid(t *testing.T) {
	valid := []SymptomType{
		SymptomCramps, SymptomHeadache, SymptomMoodLow, SymptomMoodHigh,
		SymptomFatigue, SymptomBloating, SymptomBreastTenderness, SymptomAcne,
	}
	for _, s := range valid {
		assert.True(t, s.Valid(), "тип %q должен быть допустимым", s)
	}
	assert.False(t, SymptomType("nausea").Valid())
	assert.False(t, SymptomType("").Valid())
}

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()
	assert.Equal(t, 5, s.AutoLockMinutes)
	assert.Nil(t, s.WipeAfterAttempts)
	assert.False(t, s.ShowFertility)
}

func TestUpsertDayLog(t *testing.T) {
	d := NewData()
	day := date.New(2026, time.January, 5)

	d.UpsertDayLog(DayLog{Date: day, FlowLevel: FlowLight, Notes: "первая запись"})
	require.Len(t, d.DayLogs, 1)

	// Повторная запись на ту же дату замещает, а не дублирует
	d.UpsertDayLog(DayLog{Date: day, FlowLevel: FlowHeavy, Notes: "исправлено"})
	require.Len(t, d.DayLogs, 1)
	assert.Equal(t, FlowHeavy, d.DayLogs[0].FlowLevel)
	assert.Equal(t, "исправлено", d.DayLogs[0].Notes)

	d.UpsertDayLog(DayLog{Date: day.AddDays(1), FlowLevel: FlowMedium})
	assert.Len(t, d.DayLogs, 2)
}

func TestReplaceSymptoms(t *testing.T) {
	d := NewData()
	day := date.New(2026, time.January, 5)
	other := date.New(2026, time.January, 6)

	d.ReplaceSymptoms(day, []SymptomEntry{
		{Type: SymptomCramps, Severity: 2},
		{Type: SymptomHeadache, Severity: 1},
	})
	d.ReplaceSymptoms(other, []SymptomEntry{{Type: SymptomFatigue, Severity: 3}})
	require.Len(t, d.Symptoms, 3)

	// Замена симптомов за день: старый набор удаляется целиком,
	// симптомы других дат не затрагиваются
	d.ReplaceSymptoms(day, []SymptomEntry{{Type: SymptomBloating, Severity: 2}})
	require.Len(t, d.Symptoms, 2)
	assert.Equal(t, SymptomFatigue, d.Symptoms[0].Type)
	assert.Equal(t, SymptomBloating, d.Symptoms[1].Type)

	// Пустой набор очищает день
	d.ReplaceSymptoms(day, nil)
	require.Len(t, d.Symptoms, 1)
	assert.Equal(t, SymptomFatigue, d.Symptoms[0].Type)
}

func TestReplaceSymptomsClampsSeverity(t *testing.T) {
	d := NewData()
	day := date.New(2026, time.January, 5)

	d.ReplaceSymptoms(day, []SymptomEntry{
		{Type: SymptomCramps, Severity: 0},
		{Type: SymptomHeadache, Severity: 10},
		{Type: SymptomAcne, Severity: 2},
	})
	require.Len(t, d.Symptoms, 3)
	assert.Equal(t, MinSeverity, d.Symptoms[0].Severity)
	assert.Equal(t, MaxSeverity, d.Symptoms[1].Severity)
	assert.Equal(t, 2, d.Symptoms[2].Severity)
}

func TestRebuildCyclesSkipsFlowNone(t *testing.T) {
	d := NewData()
	today := date.New(2026, time.January, 20)

	d.UpsertDayLog(DayLog{Date: date.New(2026, time.January, 1), FlowLevel: FlowLight})
	d.UpsertDayLog(DayLog{Date: date.New(2026, time.January, 2), FlowLevel: FlowMedium})
	// Запись без кровотечения не участвует в построении циклов
	d.UpsertDayLog(DayLog{Date: date.New(2026, time.January, 3), FlowLevel: FlowNone, Notes: "только заметка"})

	d.RebuildCycles(today)
	require.Len(t, d.Cycles, 1)
	assert.Equal(t, date.New(2026, time.January, 1), d.Cycles[0].StartDate)
	require.NotNil(t, d.Cycles[0].EndDate)
	assert.Equal(t, date.New(2026, time.January, 2), *d.Cycles[0].EndDate)
}

func TestRebuildCyclesReplacesPrevious(t *testing.T) {
	d := NewData()
	today := date.New(2026, time.March, 1)

	d.UpsertDayLog(DayLog{Date: date.New(2026, time.January, 1), FlowLevel: FlowLight})
	d.RebuildCycles(today)
	require.Len(t, d.Cycles, 1)

	// Смена уровня на none убирает день из циклов
	d.UpsertDayLog(DayLog{Date: date.New(2026, time.January, 1), FlowLevel: FlowNone})
	d.RebuildCycles(today)
	assert.Empty(t, d.Cycles)
}

func TestCurrentCycle(t *testing.T) {
	d := NewData()
	today := date.New(2026, time.January, 3)

	assert.Nil(t, d.CurrentCycle())

	d.UpsertDayLog(DayLog{Date: date.New(2026, time.January, 1), FlowLevel: FlowLight})
	d.UpsertDayLog(DayLog{Date: date.New(2026, time.January, 2), FlowLevel: FlowMedium})
	d.RebuildCycles(today)

	current := d.CurrentCycle()
	require.NotNil(t, current)
	assert.Equal(t, date.New(2026, time.January, 1), current.StartDate)
	assert.Nil(t, current.EndDate)

	// Через неделю цикл закрыт, текущего нет
	d.RebuildCycles(date.New(2026, time.January, 10))
	assert.Nil(t, d.CurrentCycle())
}

func TestLogsInRange(t *testing.T) {
	d := NewData()
	for day := 28; day <= 31; day++ {
		d.UpsertDayLog(DayLog{Date: date.New(2026, time.January, day), FlowLevel: FlowLight})
	}
	d.UpsertDayLog(DayLog{Date: date.New(2026, time.February, 1), FlowLevel: FlowLight})

	logs := d.LogsInRange(date.New(2026, time.January, 29), date.New(2026, time.January, 31))
	require.Len(t, logs, 3)
	assert.Equal(t, date.New(2026, time.January, 29), logs[0].Date)
	assert.Equal(t, date.New(2026, time.January, 31), logs[2].Date)
}

func TestSymptomsInRange(t *testing.T) {
	d := NewData()
	d.ReplaceSymptoms(date.New(2026, time.January, 30), []SymptomEntry{{Type: SymptomCramps, Severity: 2}})
	d.ReplaceSymptoms(date.New(2026, time.February, 2), []SymptomEntry{{Type: SymptomHeadache, Severity: 1}})

	symptoms := d.SymptomsInRange(date.New(2026, time.February, 1), date.New(2026, time.February, 28))
	require.Len(t, symptoms, 1)
	assert.Equal(t, SymptomHeadache, symptoms[0].Type)
}
