package impala

import (
	"fmt"
	"time"

	"github.com/datagrove-io/impala-dialect/query/sqlgen"
	"github.com/datagrove-io/impala-dialect/runtime/types"
)

const (
	// wireTimestampLayout is the Go layout of the wire timestamp string.
	wireTimestampLayout = "2006-01-02 15:04:05"
	// wireTimestampPattern is the same format in the engine's own
	// pattern syntax, as passed to to_timestamp / from_timestamp.
	wireTimestampPattern = "yyyy-MM-dd HH:mm:ss"
)

// EncodeTemporal converts a temporal value into its wire form.
//
// Local date-times are emitted as a to_timestamp(...) SQL fragment
// spliced into the statement text rather than bound, because the
// driver's parameter binding for this type is defective. Zoned and
// offset values are normalized to UTC via to_utc_timestamp. Local dates
// widen to midnight (the engine has no DATE type), and instants encode
// as zoned-at-UTC.
func (d *Dialect) EncodeTemporal(v types.TemporalValue) (sqlgen.WireValue, error) {
	switch v.Kind {
	case types.KindLocalDateTime:
		return sqlgen.WireValue{
			SQL:    timestampLiteral(v.Wall),
			Splice: true,
		}, nil
	case types.KindLocalDate:
		midnight := time.Date(v.Wall.Year(), v.Wall.Month(), v.Wall.Day(), 0, 0, 0, 0, time.UTC)
		return sqlgen.WireValue{
			SQL:    timestampLiteral(midnight),
			Splice: true,
		}, nil
	case types.KindZonedDateTime:
		return sqlgen.WireValue{
			SQL:    utcTimestampLiteral(v.Wall, zoneID(v.Wall)),
			Splice: true,
		}, nil
	case types.KindOffsetDateTime:
		return sqlgen.WireValue{
			SQL:    utcTimestampLiteral(v.Wall, v.Wall.Format("-07:00")),
			Splice: true,
		}, nil
	case types.KindInstant:
		return sqlgen.WireValue{
			SQL:    utcTimestampLiteral(v.Wall.UTC(), "UTC"),
			Splice: true,
		}, nil
	default:
		return sqlgen.WireValue{}, fmt.Errorf("%w: %s", ErrUnrepresentableTemporal, v.Kind)
	}
}

// DriverTimestamp normalizes a temporal value to the naive timestamp the
// statement API binds when splicing is not wanted. Zone information is
// folded in by converting to UTC first.
func (d *Dialect) DriverTimestamp(v types.TemporalValue) (time.Time, error) {
	switch v.Kind {
	case types.KindLocalDateTime, types.KindLocalDate:
		return v.Wall, nil
	case types.KindZonedDateTime, types.KindOffsetDateTime, types.KindInstant:
		u := v.Wall.UTC()
		return time.Date(u.Year(), u.Month(), u.Day(), u.Hour(), u.Minute(), u.Second(), u.Nanosecond(), time.UTC), nil
	default:
		return time.Time{}, fmt.Errorf("%w: %s", ErrUnrepresentableTemporal, v.Kind)
	}
}

// DecodeTimestamp decodes a result-set timestamp column. The engine
// stores no zone, so the configured results zone is reattached to the
// raw wall-clock fields. Nulls pass through as nil.
func (d *Dialect) DecodeTimestamp(raw interface{}) (*time.Time, error) {
	switch v := raw.(type) {
	case nil:
		return nil, nil
	case time.Time:
		t := time.Date(v.Year(), v.Month(), v.Day(), v.Hour(), v.Minute(), v.Second(), v.Nanosecond(), d.loc)
		return &t, nil
	case string:
		return d.parseWireTimestamp(v)
	case []byte:
		return d.parseWireTimestamp(string(v))
	default:
		return nil, fmt.Errorf("impala: cannot decode timestamp from %T", raw)
	}
}

func (d *Dialect) parseWireTimestamp(s string) (*time.Time, error) {
	for _, layout := range []string{
		wireTimestampLayout + ".999999999",
		wireTimestampLayout,
		"2006-01-02",
	} {
		if t, err := time.ParseInLocation(layout, s, d.loc); err == nil {
			return &t, nil
		}
	}
	return nil, fmt.Errorf("impala: malformed timestamp %q", s)
}

// timestampLiteral renders a naive timestamp as a to_timestamp call.
func timestampLiteral(t time.Time) string {
	return fmt.Sprintf("to_timestamp('%s', '%s')", t.Format(wireTimestampLayout), wireTimestampPattern)
}

// utcTimestampLiteral renders a wall time plus zone as a
// to_utc_timestamp call, folding the zone into a naive UTC value.
func utcTimestampLiteral(t time.Time, zone string) string {
	return fmt.Sprintf("to_utc_timestamp('%s', '%s')", t.Format(wireTimestampLayout), zone)
}

// zoneID names t's zone for to_utc_timestamp. Named zones pass through;
// anonymous zones fall back to the numeric offset.
func zoneID(t time.Time) string {
	name := t.Location().String()
	if name == "" || name == "Local" {
		return t.Format("-07:00")
	}
	return name
}
