package state

import "fmt"

// In-world calendar: fixed-length months and years.
const (
	DaysPerMonth   = 30
	MonthsPerYear  = 12
	HoursPerDay    = 24
	MinutesPerHour = 60

	minutesPerDay = HoursPerDay * MinutesPerHour
)

// WorldDate is a point on the in-world calendar, at minute resolution.
type WorldDate struct {
	Day    int `json:"day"`   // 1-30
	Month  int `json:"month"` // 1-12
	Year   int `json:"year"`
	Hour   int `json:"hour"`   // 0-23
	Minute int `json:"minute"` // 0-59
}

// Validate checks that each field is within the calendar's range.
func (wd WorldDate) Validate() error {
	switch {
	case wd.Day < 1 || wd.Day > DaysPerMonth:
		return fmt.Errorf("day %d out of range 1-%d", wd.Day, DaysPerMonth)
	case wd.Month < 1 || wd.Month > MonthsPerYear:
		return fmt.Errorf("month %d out of range 1-%d", wd.Month, MonthsPerYear)
	case wd.Hour < 0 || wd.Hour >= HoursPerDay:
		return fmt.Errorf("hour %d out of range 0-%d", wd.Hour, HoursPerDay-1)
	case wd.Minute < 0 || wd.Minute >= MinutesPerHour:
		return fmt.Errorf("minute %d out of range 0-%d", wd.Minute, MinutesPerHour-1)
	}
	return nil
}

// Minutes returns the absolute minute count since the calendar epoch.
func (wd WorldDate) Minutes() int64 {
	days := (int64(wd.Year)*MonthsPerYear+int64(wd.Month-1))*DaysPerMonth + int64(wd.Day-1)
	return days*minutesPerDay + int64(wd.Hour)*MinutesPerHour + int64(wd.Minute)
}

// Compare returns -1, 0 or +1 as wd is before, equal to or after other.
func (wd WorldDate) Compare(other WorldDate) int {
	a, b := wd.Minutes(), other.Minutes()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// AddMinutes returns wd moved forward (or back, for negative n) by n minutes.
func (wd WorldDate) AddMinutes(n int64) WorldDate {
	return FromMinutes(wd.Minutes() + n)
}

// FromMinutes converts an absolute minute count back to a calendar date.
func FromMinutes(total int64) WorldDate {
	days := floorDiv(total, minutesPerDay)
	rem := total - days*minutesPerDay
	months := floorDiv(days, DaysPerMonth)
	day := days - months*DaysPerMonth
	years := floorDiv(months, MonthsPerYear)
	month := months - years*MonthsPerYear
	return WorldDate{
		Day:    int(day) + 1,
		Month:  int(month) + 1,
		Year:   int(years),
		Hour:   int(rem / MinutesPerHour),
		Minute: int(rem % MinutesPerHour),
	}
}

func (wd WorldDate) String() string {
	return fmt.Sprintf("day %d, month %d, year %d, %02d:%02d", wd.Day, wd.Month, wd.Year, wd.Hour, wd.Minute)
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
