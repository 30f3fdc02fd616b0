package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	date, err := New(1985, time.April, 12)
	require.NoError(t, err)
	require.Equal(t, Date{1985, time.April, 12}, date)

	_, err = New(1985, time.February, 30)
	require.ErrorIs(t, err, ErrInvalidDate)
	_, err = New(1985, time.February, 29)
	require.ErrorIs(t, err, ErrInvalidDate)
	_, err = New(1985, time.April, 31)
	require.ErrorIs(t, err, ErrInvalidDate)
	_, err = New(1985, time.Month(0), 1)
	require.ErrorIs(t, err, ErrInvalidDate)
	_, err = New(1985, time.Month(13), 1)
	require.ErrorIs(t, err, ErrInvalidDate)
	_, err = New(1985, time.April, 0)
	require.ErrorIs(t, err, ErrInvalidDate)

	// leap years, including the century rules
	date, err = New(2024, time.February, 29)
	require.NoError(t, err)
	require.Equal(t, Date{2024, time.February, 29}, date)
	date, err = New(2000, time.February, 29)
	require.NoError(t, err)
	require.Equal(t, Date{2000, time.February, 29}, date)
	_, err = New(1900, time.February, 29)
	require.ErrorIs(t, err, ErrInvalidDate)
}

func TestNewOrdinal(t *testing.T) {
	type Test struct {
		Year      int
		DayOfYear int
		Expected  string
	}

	tests := []Test{
		{1985, 1, "1985-01-01"},
		{1985, 102, "1985-04-12"},
		{1985, 365, "1985-12-31"},
		{2024, 366, "2024-12-31"},
		{2024, 60, "2024-02-29"},
	}
	for _, test := range tests {
		date, err := NewOrdinal(test.Year, test.DayOfYear)
		require.NoError(t, err)
		require.Equal(t, test.Expected, date.String())
	}

	_, err := NewOrdinal(1985, 0)
	require.ErrorIs(t, err, ErrInvalidDate)
	_, err = NewOrdinal(1985, 366)
	require.ErrorIs(t, err, ErrInvalidDate)
	_, err = NewOrdinal(2024, 367)
	require.ErrorIs(t, err, ErrInvalidDate)
}

func TestNewWeekDate(t *testing.T) {
	type Test struct {
		Year     int
		Week     int
		Weekday  int
		Expected string
	}

	tests := []Test{
		{1985, 15, 1, "1985-04-08"},
		{1985, 15, 5, "1985-04-12"},
		{1985, 1, 1, "1984-12-31"},
		{2019, 1, 1, "2018-12-31"},
		{2020, 53, 1, "2020-12-28"},
		{2020, 53, 5, "2021-01-01"},
		{2020, 53, 7, "2021-01-03"},
		{2015, 53, 4, "2015-12-31"},
	}
	for _, test := range tests {
		date, err := NewWeekDate(test.Year, test.Week, test.Weekday)
		require.NoError(t, err)
		require.Equal(t, test.Expected, date.String())
	}

	_, err := NewWeekDate(2021, 53, 1)
	require.ErrorIs(t, err, ErrInvalidDate)
	_, err = NewWeekDate(1985, 0, 1)
	require.ErrorIs(t, err, ErrInvalidDate)
	_, err = NewWeekDate(1985, 15, 0)
	require.ErrorIs(t, err, ErrInvalidDate)
	_, err = NewWeekDate(1985, 15, 8)
	require.ErrorIs(t, err, ErrInvalidDate)
}

func TestISOWeek(t *testing.T) {
	year, week := Date{2024, time.April, 15}.ISOWeek()
	require.Equal(t, 2024, year)
	require.Equal(t, 16, week)

	// January 1 can belong to the previous ISO week year
	year, week = Date{2021, time.January, 1}.ISOWeek()
	require.Equal(t, 2020, year)
	require.Equal(t, 53, week)
}

func TestCompare(t *testing.T) {
	d1 := Date{1985, time.April, 12}
	d2 := Date{1985, time.April, 13}
	require.Equal(t, -1, Compare(d1, d2))
	require.Equal(t, 1, Compare(d2, d1))
	require.Equal(t, 0, Compare(d1, d1))
	require.Equal(t, -1, Compare(Date{1984, time.December, 31}, d1))
	require.Equal(t, -1, Compare(Date{1985, time.March, 31}, d1))
}

func TestStringAndJson(t *testing.T) {
	require.Equal(t, "1985-04-12", Date{1985, time.April, 12}.String())
	require.Equal(t, "0985-04-12", Date{985, time.April, 12}.String())
	require.Equal(t, "11985-04-12", Date{11985, time.April, 12}.String())

	bytes, err := Date{1985, time.April, 12}.MarshalJSON()
	require.NoError(t, err)
	require.Equal(t, `"1985-04-12"`, string(bytes))
}

func TestSystemToday(t *testing.T) {
	pinned := Date{2024, time.April, 15}
	require.Equal(t, pinned, NewSystemAt(pinned).Today())

	today := NewSystem().Today()
	require.NotZero(t, today.Year)
	require.NotZero(t, today.Day)
}
