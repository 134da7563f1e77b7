package session

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"golang.org/x/exp/slog"

	"github.com/steveppt9/cykel/internal/crypto"
	"github.com/steveppt9/cykel/internal/domain/cycle"
	"github.com/steveppt9/cykel/internal/domain/date"
	"github.com/steveppt9/cykel/internal/domain/vault"
	"github.com/steveppt9/cykel/internal/infrastructure/storage"
)

// Service — машина из двух состояний: Locked / Unlocked.
// В разблокированном состоянии держит единственную копию расшифрованного
// агрегата и парольную фразу, которой он был открыт. Все операции
// сериализуются одним мьютексом: один пользователь, низкая частота
// обращений, корректность важнее пропускной способности.
type Service struct {
	store *storage.Store
	log   *slog.Logger

	mu         sync.Mutex
	passphrase []byte
	data       *vault.Data

	// today подменяется в тестах для детерминированного перестроения циклов
	today func() date.Date
}

// NewService создает сервис в заблокированном состоянии.
func NewService(store *storage.Store, log *slog.Logger) *Service {
	return &Service{
		store: store,
		log:   log,
		today: date.Today,
	}
}

// IsSetup сообщает, создано ли хранилище.
func (s *Service) IsSetup() bool {
	return s.store.Exists()
}

// Unlocked сообщает, разблокирована ли сессия.
func (s *Service) Unlocked() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data != nil
}

// Setup создает новое пустое хранилище, сохраняет его под парольной
// фразой и переводит сессию в разблокированное состояние.
func (s *Service) Setup(passphrase []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data := vault.NewData()
	if err := s.store.Save(passphrase, data); err != nil {
		return fmt.Errorf("создание хранилища: %w", err)
	}

	s.setUnlocked(passphrase, data)
	s.log.Info("хранилище создано", "path", s.store.Path())

	return nil
}

// Unlock пытается открыть хранилище парольной фразой. Неверная фраза
// или поврежденный файл — это false, а не ошибка; сессия при этом
// остается заблокированной без частичного состояния. При успехе циклы
// перестраиваются и хранилище пересохраняется, чтобы вылечить
// устаревшее производное состояние.
func (s *Service) Unlock(passphrase []byte) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.store.Load(passphrase)
	if err != nil {
		s.log.Debug("не удалось открыть хранилище", "error", err)
		return false, nil
	}

	data.RebuildCycles(s.today())
	s.setUnlocked(passphrase, data)

	if err := s.saveLocked(); err != nil {
		return true, err
	}

	return true, nil
}

// Lock затирает парольную фразу в памяти и сбрасывает агрегат.
// Любая последующая операция завершится ErrLocked до нового Unlock.
func (s *Service) Lock() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lockLocked()
}

// LogDay записывает дневную запись и набор симптомов на дату
// (YYYY-MM-DD), перестраивает циклы и сохраняет хранилище.
func (s *Service) LogDay(dateStr string, flow vault.FlowLevel, notes string, symptoms []vault.SymptomEntry) error {
	day, err := date.Parse(dateStr)
	if err != nil {
		return err
	}
	if !flow.Valid() {
		return fmt.Errorf("%w: %q", vault.ErrInvalidFlowLevel, flow)
	}
	for _, entry := range symptoms {
		if !entry.Type.Valid() {
			return fmt.Errorf("%w: %q", vault.ErrInvalidSymptomType, entry.Type)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.data == nil {
		return ErrLocked
	}

	s.data.UpsertDayLog(vault.DayLog{Date: day, FlowLevel: flow, Notes: notes})
	s.data.ReplaceSymptoms(day, symptoms)
	s.data.RebuildCycles(s.today())

	return s.saveLocked()
}

// Month собирает данные месяца: записи и симптомы в его границах,
// прогноз, окно фертильности (если включено в настройках), текущий
// цикл и статистику по всей истории.
func (s *Service) Month(year int, month time.Month) (*MonthData, error) {
	if month < time.January || month > time.December {
		return nil, fmt.Errorf("неверный месяц: %d", month)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.data == nil {
		return nil, ErrLocked
	}

	first := date.New(year, month, 1)
	last := first.AddDays(daysInMonth(year, month) - 1)

	result := &MonthData{
		Year:         year,
		Month:        month,
		DayLogs:      s.data.LogsInRange(first, last),
		Symptoms:     s.data.SymptomsInRange(first, last),
		CurrentCycle: s.data.CurrentCycle(),
		Stats:        cycle.CalcStats(s.data.Cycles),
	}

	if p := cycle.Predict(s.data.Cycles); p != nil {
		result.Predictions = []cycle.Prediction{*p}
	}
	if s.data.Settings.ShowFertility {
		result.Fertility = cycle.Fertility(s.data.Cycles)
	}

	return result, nil
}

// Predictions возвращает прогноз следующего цикла, если данных достаточно.
func (s *Service) Predictions() (*cycle.Prediction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.data == nil {
		return nil, ErrLocked
	}
	return cycle.Predict(s.data.Cycles), nil
}

// Stats возвращает статистику по всем завершенным циклам.
func (s *Service) Stats() (cycle.Stats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.data == nil {
		return cycle.Stats{}, ErrLocked
	}
	return cycle.CalcStats(s.data.Cycles), nil
}

// Settings возвращает текущие настройки.
func (s *Service) Settings() (vault.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.data == nil {
		return vault.Settings{}, ErrLocked
	}
	return s.data.Settings, nil
}

// ToggleFertility включает или выключает отображение фертильности.
func (s *Service) ToggleFertility(enabled bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.data == nil {
		return ErrLocked
	}
	s.data.Settings.ShowFertility = enabled
	return s.saveLocked()
}

// UpdateSettings задает таймаут автоблокировки в минутах,
// приводя его к диапазону [1,60].
func (s *Service) UpdateSettings(autoLockMinutes int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.data == nil {
		return ErrLocked
	}

	if autoLockMinutes < vault.MinAutoLockMinutes {
		autoLockMinutes = vault.MinAutoLockMinutes
	}
	if autoLockMinutes > vault.MaxAutoLockMinutes {
		autoLockMinutes = vault.MaxAutoLockMinutes
	}
	s.data.Settings.AutoLockMinutes = autoLockMinutes

	return s.saveLocked()
}

// Export возвращает агрегат в читаемом JSON без шифрования.
// В заблокированном состоянии экспорт запрещен.
func (s *Service) Export() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.data == nil {
		return nil, ErrLocked
	}

	out, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("сериализация данных: %w", err)
	}
	return out, nil
}

// WipeAll блокирует сессию и необратимо удаляет файл хранилища.
func (s *Service) WipeAll() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lockLocked()
	if err := s.store.Wipe(); err != nil {
		return err
	}
	s.log.Info("хранилище удалено", "path", s.store.Path())
	return nil
}

// setUnlocked сохраняет собственную копию парольной фразы и агрегат.
// Вызывается под мьютексом.
func (s *Service) setUnlocked(passphrase []byte, data *vault.Data) {
	s.lockLocked()
	s.passphrase = make([]byte, len(passphrase))
	copy(s.passphrase, passphrase)
	s.data = data
}

// lockLocked переводит сессию в заблокированное состояние: парольная
// фраза затирается нулями до освобождения, агрегат сбрасывается.
// Вызывается под мьютексом.
func (s *Service) lockLocked() {
	crypto.ClearMemory(s.passphrase)
	s.passphrase = nil
	s.data = nil
}

// saveLocked сохраняет агрегат под удерживаемой парольной фразой.
// Вызывается под мьютексом.
func (s *Service) saveLocked() error {
	if s.data == nil || s.passphrase == nil {
		return ErrLocked
	}
	return s.store.Save(s.passphrase, s.data)
}

func daysInMonth(year int, month time.Month) int {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return first.AddDate(0, 1, -1).Day()
}
