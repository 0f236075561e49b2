// Package types: temporal value variants.
package types

import (
	"fmt"
	"time"
)

// TemporalKind tags the variant of a TemporalValue.
type TemporalKind int

const (
	// KindInstant is an absolute point on the timeline, zone-free.
	KindInstant TemporalKind = iota
	// KindZonedDateTime is a civil date-time in a named timezone.
	KindZonedDateTime
	// KindOffsetDateTime is a civil date-time at a fixed UTC offset.
	KindOffsetDateTime
	// KindLocalDateTime is a civil date-time with no zone information.
	KindLocalDateTime
	// KindLocalDate is a calendar date with no time-of-day and no zone.
	KindLocalDate
)

// String returns the kind name.
func (k TemporalKind) String() string {
	switch k {
	case KindInstant:
		return "instant"
	case KindZonedDateTime:
		return "zoned-date-time"
	case KindOffsetDateTime:
		return "offset-date-time"
	case KindLocalDateTime:
		return "local-date-time"
	case KindLocalDate:
		return "local-date"
	default:
		return fmt.Sprintf("temporal-kind(%d)", int(k))
	}
}

// TemporalValue is a tagged temporal variant. Wall carries the civil
// date-time fields; its location is meaningful only for the instant,
// zoned and offset kinds. The local kinds ignore it.
type TemporalValue struct {
	Kind TemporalKind
	Wall time.Time
}

// Instant builds an instant value from an absolute time.
func Instant(t time.Time) TemporalValue {
	return TemporalValue{Kind: KindInstant, Wall: t.UTC()}
}

// ZonedDateTime builds a zoned value. The zone is t's location.
func ZonedDateTime(t time.Time) TemporalValue {
	return TemporalValue{Kind: KindZonedDateTime, Wall: t}
}

// OffsetDateTime builds an offset value. The offset is t's location offset.
func OffsetDateTime(t time.Time) TemporalValue {
	return TemporalValue{Kind: KindOffsetDateTime, Wall: t}
}

// LocalDateTime builds a zone-free civil date-time.
func LocalDateTime(year int, month time.Month, day, hour, min, sec int) TemporalValue {
	return TemporalValue{
		Kind: KindLocalDateTime,
		Wall: time.Date(year, month, day, hour, min, sec, 0, time.UTC),
	}
}

// LocalDateTimeOf builds a zone-free civil date-time from t's wall fields,
// discarding t's location.
func LocalDateTimeOf(t time.Time) TemporalValue {
	return LocalDateTime(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second())
}

// LocalDate builds a zone-free calendar date.
func LocalDate(year int, month time.Month, day int) TemporalValue {
	return TemporalValue{
		Kind: KindLocalDate,
		Wall: time.Date(year, month, day, 0, 0, 0, 0, time.UTC),
	}
}
