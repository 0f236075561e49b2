package impala

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datagrove-io/impala-dialect/runtime/types"
)

func TestEncodeLocalDateTime(t *testing.T) {
	d := New()

	wire, err := d.EncodeTemporal(types.LocalDateTime(2024, time.January, 15, 10, 30, 0))
	require.NoError(t, err)

	// The driver's binding for this type is defective, so the value is
	// spliced as a function call instead of bound.
	assert.True(t, wire.Splice)
	assert.Equal(t, "to_timestamp('2024-01-15 10:30:00', 'yyyy-MM-dd HH:mm:ss')", wire.SQL)
}

func TestEncodeLocalDateWidensToMidnight(t *testing.T) {
	d := New()

	wire, err := d.EncodeTemporal(types.LocalDate(2024, time.July, 4))
	require.NoError(t, err)
	assert.True(t, wire.Splice)
	assert.Equal(t, "to_timestamp('2024-07-04 00:00:00', 'yyyy-MM-dd HH:mm:ss')", wire.SQL)
}

func TestEncodeZonedDateTime(t *testing.T) {
	d := New()

	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	wire, err := d.EncodeTemporal(types.ZonedDateTime(time.Date(2024, time.March, 9, 23, 15, 42, 0, loc)))
	require.NoError(t, err)
	assert.True(t, wire.Splice)
	assert.Equal(t, "to_utc_timestamp('2024-03-09 23:15:42', 'America/New_York')", wire.SQL)
}

func TestEncodeOffsetDateTime(t *testing.T) {
	d := New()

	loc := time.FixedZone("", 2*60*60)
	wire, err := d.EncodeTemporal(types.OffsetDateTime(time.Date(2024, time.March, 9, 23, 15, 42, 0, loc)))
	require.NoError(t, err)
	assert.Equal(t, "to_utc_timestamp('2024-03-09 23:15:42', '+02:00')", wire.SQL)
}

func TestEncodeInstant(t *testing.T) {
	d := New()

	wire, err := d.EncodeTemporal(types.Instant(time.Date(2024, time.March, 9, 23, 15, 42, 0, time.UTC)))
	require.NoError(t, err)
	assert.Equal(t, "to_utc_timestamp('2024-03-09 23:15:42', 'UTC')", wire.SQL)
}

func TestEncodeUnknownKindFails(t *testing.T) {
	d := New()

	_, err := d.EncodeTemporal(types.TemporalValue{Kind: types.TemporalKind(99)})
	assert.ErrorIs(t, err, ErrUnrepresentableTemporal)
}

func TestDriverTimestampFoldsZone(t *testing.T) {
	d := New()

	loc := time.FixedZone("", 2*60*60)
	got, err := d.DriverTimestamp(types.OffsetDateTime(time.Date(2024, time.March, 9, 23, 15, 42, 0, loc)))
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.March, 9, 21, 15, 42, 0, time.UTC), got)
}

func TestDecodeTimestampNullPassesThrough(t *testing.T) {
	d := New()

	got, err := d.DecodeTimestamp(nil)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestDecodeTimestampAttachesConfiguredZone(t *testing.T) {
	loc := time.FixedZone("MST", -7*60*60)
	d := NewWithConfig(Config{ResultsLocation: loc})

	got, err := d.DecodeTimestamp("2024-03-09 23:15:42")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 2024, got.Year())
	assert.Equal(t, time.March, got.Month())
	assert.Equal(t, 9, got.Day())
	assert.Equal(t, 23, got.Hour())
	assert.Equal(t, 15, got.Minute())
	assert.Equal(t, 42, got.Second())
	assert.Equal(t, loc, got.Location())
}

func TestDecodeTimestampMalformed(t *testing.T) {
	d := New()

	_, err := d.DecodeTimestamp("not-a-timestamp")
	assert.Error(t, err)
}

// Encoding a local date-time, storing it timezone-naive and decoding it
// with a fixed assumed zone must reproduce the original wall fields with
// the assumed zone attached.
func TestTemporalRoundTrip(t *testing.T) {
	loc := time.FixedZone("MST", -7*60*60)
	d := NewWithConfig(Config{ResultsLocation: loc})

	original := types.LocalDateTime(2024, time.March, 9, 23, 15, 42)

	wire, err := d.EncodeTemporal(original)
	require.NoError(t, err)

	// The naive stored value is exactly the wall string inside the
	// to_timestamp literal.
	stored := original.Wall.Format("2006-01-02 15:04:05")
	assert.Contains(t, wire.SQL, stored)

	decoded, err := d.DecodeTimestamp(stored)
	require.NoError(t, err)
	require.NotNil(t, decoded)
	assert.Equal(t, original.Wall.Year(), decoded.Year())
	assert.Equal(t, original.Wall.Month(), decoded.Month())
	assert.Equal(t, original.Wall.Day(), decoded.Day())
	assert.Equal(t, original.Wall.Hour(), decoded.Hour())
	assert.Equal(t, original.Wall.Minute(), decoded.Minute())
	assert.Equal(t, original.Wall.Second(), decoded.Second())
	assert.Equal(t, loc, decoded.Location())
}
