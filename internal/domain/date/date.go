package date

import (
	"fmt"
	"time"
)

// Layout — формат календарной даты во всех внешних интерфейсах.
const Layout = "2006-01-02"

// Date — календарная дата без времени суток и часового пояса.
// Внутри хранится как полночь UTC, поэтому сравнения через
// time.Time работают корректно.
type Date struct {
	time.Time
}

// New создает дату из года, месяца и дня.
func New(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// Parse разбирает дату в формате YYYY-MM-DD.
func Parse(s string) (Date, error) {
	t, err := time.Parse(Layout, s)
	if err != nil {
		return Date{}, fmt.Errorf("разбор даты %q: %w", s, err)
	}
	return Date{t}, nil
}

// Today возвращает сегодняшнюю дату в локальном часовом поясе.
func Today() Date {
	now := time.Now()
	return New(now.Year(), now.Month(), now.Day())
}

// AddDays возвращает дату, сдвинутую на n дней (n может быть отрицательным).
func (d Date) AddDays(n int) Date {
	return Date{d.Time.AddDate(0, 0, n)}
}

// DaysSince возвращает количество дней между d и other (d - other).
func (d Date) DaysSince(other Date) int {
	return int(d.Time.Sub(other.Time) / (24 * time.Hour))
}

func (d Date) String() string {
	return d.Time.Format(Layout)
}

// MarshalJSON сериализует дату как строку "YYYY-MM-DD".
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON разбирает дату из строки "YYYY-MM-DD".
func (d *Date) UnmarshalJSON(data []byte) error {
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return fmt.Errorf("неверный формат даты: %s", data)
	}
	parsed, err := Parse(string(data[1 : len(data)-1]))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
