package ast

// IntervalUnit is the unit token of an INTERVAL literal. The engine
// requires the unit unquoted and unparameterized, so only members of
// this closed set are ever emitted.
type IntervalUnit string

const (
	UnitYear   IntervalUnit = "year"
	UnitMonth  IntervalUnit = "month"
	UnitWeek   IntervalUnit = "week"
	UnitDay    IntervalUnit = "day"
	UnitHour   IntervalUnit = "hour"
	UnitMinute IntervalUnit = "minute"
	UnitSecond IntervalUnit = "second"
)

// IntervalUnits lists every valid interval unit.
var IntervalUnits = []IntervalUnit{
	UnitYear, UnitMonth, UnitWeek, UnitDay, UnitHour, UnitMinute, UnitSecond,
}

// Valid reports whether u is a member of the closed unit set.
func (u IntervalUnit) Valid() bool {
	for _, known := range IntervalUnits {
		if u == known {
			return true
		}
	}
	return false
}

// String returns the unit token.
func (u IntervalUnit) String() string { return string(u) }
