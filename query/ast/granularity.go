package ast

// Granularity is the truncation/extraction unit requested for a temporal
// expression. The set is closed: every value must resolve to exactly one
// dialect rule, and an unmapped value is a compile-time defect.
type Granularity string

const (
	GranularityDefault       Granularity = "default"
	GranularityMinute        Granularity = "minute"
	GranularityMinuteOfHour  Granularity = "minute-of-hour"
	GranularityHour          Granularity = "hour"
	GranularityHourOfDay     Granularity = "hour-of-day"
	GranularityDay           Granularity = "day"
	GranularityDayOfMonth    Granularity = "day-of-month"
	GranularityDayOfYear     Granularity = "day-of-year"
	GranularityDayOfWeek     Granularity = "day-of-week"
	GranularityWeek          Granularity = "week"
	GranularityWeekOfYear    Granularity = "week-of-year"
	GranularityMonth         Granularity = "month"
	GranularityMonthOfYear   Granularity = "month-of-year"
	GranularityQuarter       Granularity = "quarter"
	GranularityQuarterOfYear Granularity = "quarter-of-year"
	GranularityYear          Granularity = "year"
)

// Granularities lists every member of the closed enumeration.
var Granularities = []Granularity{
	GranularityDefault,
	GranularityMinute,
	GranularityMinuteOfHour,
	GranularityHour,
	GranularityHourOfDay,
	GranularityDay,
	GranularityDayOfMonth,
	GranularityDayOfYear,
	GranularityDayOfWeek,
	GranularityWeek,
	GranularityWeekOfYear,
	GranularityMonth,
	GranularityMonthOfYear,
	GranularityQuarter,
	GranularityQuarterOfYear,
	GranularityYear,
}

// Valid reports whether g is a member of the closed enumeration.
func (g Granularity) Valid() bool {
	for _, known := range Granularities {
		if g == known {
			return true
		}
	}
	return false
}

// String returns the granularity name.
func (g Granularity) String() string { return string(g) }
