// Proleptic Gregorian calendar dates and the validating constructors used
// to materialize parsed date fields. All arithmetic is day-granular and
// timezone-free; the wall clock is only consulted for the processing date.
package calendar

import (
	"errors"
	"fmt"
	"time"

	"partialdate/oops"
)

// ErrInvalidDate is wrapped by every constructor rejection, so callers can
// errors.Is a failure down to "the fields don't form a real date".
var ErrInvalidDate = errors.New("invalid calendar date")

type Date struct {
	Year  int
	Month time.Month
	Day   int
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

func Compare(d1, d2 Date) int {
	if d1.Year != d2.Year {
		if d1.Year < d2.Year {
			return -1
		}
		return 1
	}
	if d1.Month != d2.Month {
		if d1.Month < d2.Month {
			return -1
		}
		return 1
	}
	if d1.Day != d2.Day {
		if d1.Day < d2.Day {
			return -1
		}
		return 1
	}
	return 0
}

var daysInMonth = [13]int{0, 31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

func isLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

func daysInYear(year int) int {
	if isLeap(year) {
		return 366
	}
	return 365
}

// New validates year/month/day and rejects combinations like Feb 30.
func New(year int, month time.Month, day int) (Date, error) {
	if month < time.January || month > time.December {
		return Date{}, oops.Wrapf(ErrInvalidDate, "month %d out of range in %d-%02d-%02d", month, year, month, day)
	}
	maxDay := daysInMonth[month]
	if month == time.February && isLeap(year) {
		maxDay = 29
	}
	if day < 1 || day > maxDay {
		return Date{}, oops.Wrapf(ErrInvalidDate, "day %d out of range in %d-%02d-%02d", day, year, month, day)
	}
	return Date{year, month, day}, nil
}

// NewOrdinal converts year + day-of-year, rejecting day counts past the
// year's length (365 or 366).
func NewOrdinal(year int, dayOfYear int) (Date, error) {
	if dayOfYear < 1 || dayOfYear > daysInYear(year) {
		return Date{}, oops.Wrapf(ErrInvalidDate, "day %d out of range for year %d", dayOfYear, year)
	}
	t := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, dayOfYear-1)
	return fromTime(t), nil
}

// NewWeekDate converts ISO week year + week + weekday (1=Monday..7=Sunday).
// Week 1 is the week containing January 4, so the resulting calendar date
// can fall in the neighboring calendar year.
func NewWeekDate(year int, week int, weekday int) (Date, error) {
	if weekday < 1 || weekday > 7 {
		return Date{}, oops.Wrapf(ErrInvalidDate, "weekday %d out of range in %d-W%02d-%d", weekday, year, week, weekday)
	}
	if week < 1 || week > weeksInYear(year) {
		return Date{}, oops.Wrapf(ErrInvalidDate, "week %d out of range for year %d", week, year)
	}
	jan4 := time.Date(year, time.January, 4, 0, 0, 0, 0, time.UTC)
	week1Monday := jan4.AddDate(0, 0, -(isoWeekday(jan4) - 1))
	t := week1Monday.AddDate(0, 0, (week-1)*7+(weekday-1))
	return fromTime(t), nil
}

// weeksInYear is 53 when January 1 falls on Thursday, or on Wednesday in a
// leap year, and 52 otherwise.
func weeksInYear(year int) int {
	jan1 := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	if jan1.Weekday() == time.Thursday || (isLeap(year) && jan1.Weekday() == time.Wednesday) {
		return 53
	}
	return 52
}

// ISOWeek reports the ISO week year and week number the date belongs to.
func (d Date) ISOWeek() (year int, week int) {
	return d.time().ISOWeek()
}

func (d Date) time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

func fromTime(t time.Time) Date {
	return Date{t.Year(), t.Month(), t.Day()}
}

func isoWeekday(t time.Time) int {
	if t.Weekday() == time.Sunday {
		return 7
	}
	return int(t.Weekday())
}

// System is the calendar handed to the parse engine. The processing date
// defaults to the UTC wall clock and can be pinned for deterministic runs.
type System struct {
	todayOverride *Date
}

func NewSystem() *System {
	return &System{todayOverride: nil}
}

// NewSystemAt pins the processing date, for tests and the CLI --today flag.
func NewSystemAt(today Date) *System {
	return &System{todayOverride: &today}
}

func (s *System) Today() Date {
	if s.todayOverride != nil {
		return *s.todayOverride
	}
	return fromTime(time.Now().UTC())
}

func (s *System) FromYMD(year int, month int, day int) (Date, error) {
	return New(year, time.Month(month), day)
}

func (s *System) FromOrdinal(year int, dayOfYear int) (Date, error) {
	return NewOrdinal(year, dayOfYear)
}

func (s *System) FromWeekDate(year int, week int, weekday int) (Date, error) {
	return NewWeekDate(year, week, weekday)
}
