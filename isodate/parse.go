// Parses dates in the extended ISO 8601 family, including abbreviated
// spellings (two- and one-digit years, bare centuries), ordinal-day and
// week-date forms, and expanded six-digit years. Fields absent from the
// input are filled with defaults pivoted on the processing date, and the
// result records which of year/month/day had to be synthesized.
package isodate

import (
	"errors"
	"slices"
	"strconv"

	"partialdate/calendar"
	"partialdate/oops"
)

// ErrNoMatch is wrapped by Parse when no format accepts the input, either
// because no format lists the input's length or because none of the
// length-eligible patterns match.
var ErrNoMatch = errors.New("no matching date format")

type Component int

const (
	ComponentYear Component = iota
	ComponentMonth
	ComponentDay
)

// Missing records which of year/month/day were absent from the input and
// filled with a default. A fresh record is produced by every Parse call.
type Missing struct {
	Year  bool `json:"year"`
	Month bool `json:"month"`
	Day   bool `json:"day"`
}

func (m Missing) IsMissing(c Component) bool {
	switch c {
	case ComponentYear:
		return m.Year
	case ComponentMonth:
		return m.Month
	case ComponentDay:
		return m.Day
	default:
		panic("unknown date component")
	}
}

// Calendar materializes matched fields into real dates and supplies the
// processing date that abbreviated and partial forms are resolved against.
type Calendar interface {
	Today() calendar.Date
	FromYMD(year int, month int, day int) (calendar.Date, error)
	FromOrdinal(year int, dayOfYear int) (calendar.Date, error)
	FromWeekDate(year int, week int, weekday int) (calendar.Date, error)
}

type Result struct {
	Date    calendar.Date
	Missing Missing
}

type Parser struct {
	cal Calendar
}

func NewParser(cal Calendar) *Parser {
	return &Parser{cal: cal}
}

// fields holds the numbers captured from one format match, before and
// after normalization.
type fields struct {
	year      int
	month     int
	day       int
	dayOfYear int
	week      int
	weekday   int

	hasYear      bool
	hasMonth     bool
	hasDay       bool
	hasDayOfYear bool
	hasWeek      bool
	hasWeekday   bool
}

func (f *fields) set(r role, value int) {
	switch r {
	case roleYear:
		f.year = value
		f.hasYear = true
	case roleMonth:
		f.month = value
		f.hasMonth = true
	case roleDay:
		f.day = value
		f.hasDay = true
	case roleDayOfYear:
		f.dayOfYear = value
		f.hasDayOfYear = true
	case roleWeek:
		f.week = value
		f.hasWeek = true
	case roleWeekday:
		f.weekday = value
		f.hasWeekday = true
	}
}

// A normalizer rewrites captured values or fills an absent one with a
// default, recording year/month/day defaults in the missing record.
type normalizer func(f *fields, today calendar.Date, missing *Missing)

// expandCentury turns a bare century into its first year: 19 -> 1900.
func expandCentury(f *fields, _ calendar.Date, _ *Missing) {
	f.year *= 100
}

// fixTwoDigitYear windows a two-digit year on the processing year: values
// up to and including the processing year's last two digits land in the
// current century, the rest in the previous one.
func fixTwoDigitYear(f *fields, today calendar.Date, _ *Missing) {
	century := today.Year / 100
	if f.year > today.Year%100 {
		century--
	}
	f.year += century * 100
}

// fixOneDigitYear treats the digit as the last digit of the processing
// decade.
func fixOneDigitYear(f *fields, today calendar.Date, _ *Missing) {
	f.year += today.Year / 10 * 10
}

func defaultYear(f *fields, today calendar.Date, missing *Missing) {
	f.year = today.Year
	f.hasYear = true
	missing.Year = true
}

// defaultWeekYear fills the year for week-date forms with the ISO week
// year of the processing date, which can differ from its calendar year
// around January 1.
func defaultWeekYear(f *fields, today calendar.Date, missing *Missing) {
	f.year, _ = today.ISOWeek()
	f.hasYear = true
	missing.Year = true
}

func defaultWeek(f *fields, today calendar.Date, _ *Missing) {
	_, f.week = today.ISOWeek()
	f.hasWeek = true
}

func defaultMonth(f *fields, _ calendar.Date, missing *Missing) {
	f.month = 1
	f.hasMonth = true
	missing.Month = true
}

func defaultCurrentMonth(f *fields, today calendar.Date, missing *Missing) {
	f.month = int(today.Month)
	f.hasMonth = true
	missing.Month = true
}

func defaultDay(f *fields, _ calendar.Date, missing *Missing) {
	f.day = 1
	f.hasDay = true
	missing.Day = true
}

// Parse matches text against the format table and materializes the date.
// Formats are filtered by input length and tried in table order; the
// first pattern match is authoritative, so a calendar rejection of its
// fields is surfaced rather than falling through to later formats.
func (p *Parser) Parse(text string) (Result, error) {
	var missing Missing
	today := p.cal.Today()

	for i := range formats {
		f := &formats[i]
		if !slices.Contains(f.lengths, len(text)) {
			continue
		}
		match, err := f.pattern.FindStringMatch(text)
		if err != nil || match == nil {
			continue
		}

		var flds fields
		groups := match.Groups()
		for gi, r := range f.roles {
			group := groups[gi+1]
			if group.Length == 0 {
				continue
			}
			value, err := strconv.Atoi(group.String())
			if err != nil {
				return Result{}, oops.Wrapf(ErrNoMatch, "bad capture %q in %q", group.String(), text)
			}
			flds.set(r, value)
		}

		for _, normalize := range f.normalizers {
			normalize(&flds, today, &missing)
		}

		var date calendar.Date
		var calErr error
		switch f.strategy {
		case strategyPlain:
			date, calErr = p.cal.FromYMD(flds.year, flds.month, flds.day)
		case strategyOrdinal:
			date, calErr = p.cal.FromOrdinal(flds.year, flds.dayOfYear)
		case strategyWeek:
			weekday := 1
			if flds.hasWeekday {
				weekday = flds.weekday
			}
			date, calErr = p.cal.FromWeekDate(flds.year, flds.week, weekday)
		}
		if calErr != nil {
			// The calendar error already names the offending fields.
			return Result{}, calErr
		}

		return Result{Date: date, Missing: missing}, nil
	}

	return Result{}, oops.Wrapf(ErrNoMatch, "%q (length %d)", text, len(text))
}
