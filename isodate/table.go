package isodate

import (
	"github.com/dlclark/regexp2"
)

type role int

const (
	roleYear role = iota
	roleMonth
	roleDay
	roleDayOfYear
	roleWeek
	roleWeekday
)

type strategy int

const (
	strategyPlain strategy = iota
	strategyOrdinal
	strategyWeek
)

// format describes one family of accepted spellings: the input lengths it
// applies to, the anchored pattern, which calendar role each capture group
// binds to, and the fix-ups to run on a match. Table order is priority
// among formats that share a length.
type format struct {
	lengths     []int
	pattern     *regexp2.Regexp
	roles       []role
	normalizers []normalizer
	strategy    strategy
}

func pat(pattern string) *regexp2.Regexp {
	return regexp2.MustCompile(`\A(?:`+pattern+`)\z`, regexp2.None)
}

var formats = []format{
	// YYYYMMDD, YYYY-MM-DD
	{
		lengths: []int{8, 10},
		pattern: pat(`([0-9]{4})-?([0-9]{2})-?([0-9]{2})`),
		roles:   []role{roleYear, roleMonth, roleDay},
	},
	// YYYY-MM
	{
		lengths:     []int{7},
		pattern:     pat(`([0-9]{4})-([0-9]{2})`),
		roles:       []role{roleYear, roleMonth},
		normalizers: []normalizer{defaultDay},
	},
	// YYYY
	{
		lengths:     []int{4},
		pattern:     pat(`([0-9]{4})`),
		roles:       []role{roleYear},
		normalizers: []normalizer{defaultMonth, defaultDay},
	},
	// YY, a bare century
	{
		lengths:     []int{2},
		pattern:     pat(`([0-9]{2})`),
		roles:       []role{roleYear},
		normalizers: []normalizer{expandCentury, defaultMonth, defaultDay},
	},
	// YYMMDD, YY-MM-DD
	{
		lengths:     []int{6, 8},
		pattern:     pat(`([0-9]{2})-?([0-9]{2})-?([0-9]{2})`),
		roles:       []role{roleYear, roleMonth, roleDay},
		normalizers: []normalizer{fixTwoDigitYear},
	},
	// -YYMM, -YY-MM
	{
		lengths:     []int{5, 6},
		pattern:     pat(`-([0-9]{2})-?([0-9]{2})`),
		roles:       []role{roleYear, roleMonth},
		normalizers: []normalizer{fixTwoDigitYear, defaultDay},
	},
	// -YY
	{
		lengths:     []int{3},
		pattern:     pat(`-([0-9]{2})`),
		roles:       []role{roleYear},
		normalizers: []normalizer{fixTwoDigitYear, defaultMonth, defaultDay},
	},
	// --MMDD, --MM-DD
	{
		lengths:     []int{6, 7},
		pattern:     pat(`--([0-9]{2})-?([0-9]{2})`),
		roles:       []role{roleMonth, roleDay},
		normalizers: []normalizer{defaultYear},
	},
	// --MM
	{
		lengths:     []int{4},
		pattern:     pat(`--([0-9]{2})`),
		roles:       []role{roleMonth},
		normalizers: []normalizer{defaultYear, defaultDay},
	},
	// ---DD
	{
		lengths:     []int{5},
		pattern:     pat(`---([0-9]{2})`),
		roles:       []role{roleDay},
		normalizers: []normalizer{defaultYear, defaultCurrentMonth},
	},
	// +YYYYYYMMDD, +YYYYYY-MM-DD (expanded year)
	{
		lengths: []int{11, 13},
		pattern: pat(`([-+][0-9]{6})-?([0-9]{2})-?([0-9]{2})`),
		roles:   []role{roleYear, roleMonth, roleDay},
	},
	// +YYYYYY-MM
	{
		lengths:     []int{10},
		pattern:     pat(`([-+][0-9]{6})-([0-9]{2})`),
		roles:       []role{roleYear, roleMonth},
		normalizers: []normalizer{defaultDay},
	},
	// +YYYYYY
	{
		lengths:     []int{7},
		pattern:     pat(`([-+][0-9]{6})`),
		roles:       []role{roleYear},
		normalizers: []normalizer{defaultMonth, defaultDay},
	},
	// +YYYY, an expanded century
	{
		lengths:     []int{5},
		pattern:     pat(`([-+][0-9]{4})`),
		roles:       []role{roleYear},
		normalizers: []normalizer{expandCentury, defaultMonth, defaultDay},
	},
	// YYYYDDD, YYYY-DDD (ordinal)
	{
		lengths:  []int{7, 8},
		pattern:  pat(`([0-9]{4})-?([0-9]{3})`),
		roles:    []role{roleYear, roleDayOfYear},
		strategy: strategyOrdinal,
	},
	// YYDDD, YY-DDD
	{
		lengths:     []int{5, 6},
		pattern:     pat(`([0-9]{2})-?([0-9]{3})`),
		roles:       []role{roleYear, roleDayOfYear},
		normalizers: []normalizer{fixTwoDigitYear},
		strategy:    strategyOrdinal,
	},
	// -DDD
	{
		lengths:     []int{4},
		pattern:     pat(`-([0-9]{3})`),
		roles:       []role{roleDayOfYear},
		normalizers: []normalizer{defaultYear},
		strategy:    strategyOrdinal,
	},
	// +YYYYYYDDD, +YYYYYY-DDD
	{
		lengths:  []int{10, 11},
		pattern:  pat(`([-+][0-9]{6})-?([0-9]{3})`),
		roles:    []role{roleYear, roleDayOfYear},
		strategy: strategyOrdinal,
	},
	// YYYYWwwD, YYYY-Www-D
	{
		lengths:  []int{8, 10},
		pattern:  pat(`([0-9]{4})-?W([0-9]{2})-?([0-9])`),
		roles:    []role{roleYear, roleWeek, roleWeekday},
		strategy: strategyWeek,
	},
	// YYYYWww, YYYY-Www
	{
		lengths:  []int{7, 8},
		pattern:  pat(`([0-9]{4})-?W([0-9]{2})`),
		roles:    []role{roleYear, roleWeek},
		strategy: strategyWeek,
	},
	// YYWwwD, YY-Www-D
	{
		lengths:     []int{6, 8},
		pattern:     pat(`([0-9]{2})-?W([0-9]{2})-?([0-9])`),
		roles:       []role{roleYear, roleWeek, roleWeekday},
		normalizers: []normalizer{fixTwoDigitYear},
		strategy:    strategyWeek,
	},
	// YYWww, YY-Www
	{
		lengths:     []int{5, 6},
		pattern:     pat(`([0-9]{2})-?W([0-9]{2})`),
		roles:       []role{roleYear, roleWeek},
		normalizers: []normalizer{fixTwoDigitYear},
		strategy:    strategyWeek,
	},
	// -YWwwD, -Y-Www-D
	{
		lengths:     []int{6, 8},
		pattern:     pat(`-([0-9])-?W([0-9]{2})-?([0-9])`),
		roles:       []role{roleYear, roleWeek, roleWeekday},
		normalizers: []normalizer{fixOneDigitYear},
		strategy:    strategyWeek,
	},
	// -YWww, -Y-Www
	{
		lengths:     []int{5, 6},
		pattern:     pat(`-([0-9])-?W([0-9]{2})`),
		roles:       []role{roleYear, roleWeek},
		normalizers: []normalizer{fixOneDigitYear},
		strategy:    strategyWeek,
	},
	// -WwwD, -Www-D
	{
		lengths:     []int{5, 6},
		pattern:     pat(`-W([0-9]{2})-?([0-9])`),
		roles:       []role{roleWeek, roleWeekday},
		normalizers: []normalizer{defaultWeekYear},
		strategy:    strategyWeek,
	},
	// -Www
	{
		lengths:     []int{4},
		pattern:     pat(`-W([0-9]{2})`),
		roles:       []role{roleWeek},
		normalizers: []normalizer{defaultWeekYear},
		strategy:    strategyWeek,
	},
	// -W-D
	{
		lengths:     []int{4},
		pattern:     pat(`-W-([0-9])`),
		roles:       []role{roleWeekday},
		normalizers: []normalizer{defaultWeekYear, defaultWeek},
		strategy:    strategyWeek,
	},
	// +YYYYYYWww, +YYYYYYWwwD, +YYYYYY-Www-D
	{
		lengths:  []int{10, 11, 13},
		pattern:  pat(`([-+][0-9]{6})-?W([0-9]{2})(?:-?([0-9]))?`),
		roles:    []role{roleYear, roleWeek, roleWeekday},
		strategy: strategyWeek,
	},
}
