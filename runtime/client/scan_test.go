package client

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datagrove-io/impala-dialect/dialect/impala"
	"github.com/datagrove-io/impala-dialect/runtime/types"
)

func TestNormalizeValueDecodesTimestamps(t *testing.T) {
	d := impala.NewWithConfig(impala.Config{ResultsLocation: time.UTC})
	col := Column{Name: "created_at", DatabaseType: "TIMESTAMP", Base: types.BaseDateTime}

	got, err := normalizeValue(d, col, "2024-01-15 10:30:00")
	require.NoError(t, err)
	ts, ok := got.(*time.Time)
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, time.January, 15, 10, 30, 0, 0, time.UTC), *ts)

	got, err = normalizeValue(d, col, nil)
	require.NoError(t, err)
	assert.Nil(t, got)

	_, err = normalizeValue(d, col, 42)
	assert.Error(t, err)
}

func TestNormalizeValueTextAndPassthrough(t *testing.T) {
	d := impala.New()

	got, err := normalizeValue(d, Column{Name: "name", Base: types.BaseText}, []byte("ada"))
	require.NoError(t, err)
	assert.Equal(t, "ada", got)

	got, err = normalizeValue(d, Column{Name: "total", Base: types.BaseBigInteger}, int64(7))
	require.NoError(t, err)
	assert.Equal(t, int64(7), got)
}

func TestScanRows(t *testing.T) {
	type order struct {
		ID        int64      `db:"id"`
		Status    string     `db:"status"`
		Total     float64    `db:"total"`
		CreatedAt *time.Time `db:"created_at"`
	}

	when := time.Date(2024, time.January, 15, 10, 30, 0, 0, time.UTC)
	result := &Result{
		Columns: []Column{
			{Name: "id", Base: types.BaseBigInteger},
			{Name: "status", Base: types.BaseText},
			{Name: "total", Base: types.BaseFloat},
			{Name: "created_at", Base: types.BaseDateTime},
		},
		Rows: [][]interface{}{
			{int64(1), "shipped", 99.5, &when},
			{int64(2), "pending", 12.0, nil},
		},
	}

	orders, err := ScanRows[order](result)
	require.NoError(t, err)
	require.Len(t, orders, 2)

	assert.Equal(t, int64(1), orders[0].ID)
	assert.Equal(t, "shipped", orders[0].Status)
	assert.Equal(t, 99.5, orders[0].Total)
	require.NotNil(t, orders[0].CreatedAt)
	assert.Equal(t, when, *orders[0].CreatedAt)

	assert.Equal(t, int64(2), orders[1].ID)
	assert.Nil(t, orders[1].CreatedAt)
}

func TestScanRowsSkipsUnmatchedColumns(t *testing.T) {
	type row struct {
		ID int64 `db:"id"`
	}

	result := &Result{
		Columns: []Column{{Name: "id"}, {Name: "mystery"}},
		Rows:    [][]interface{}{{int64(5), "ignored"}},
	}

	rows, err := ScanRows[row](result)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, int64(5), rows[0].ID)
}

func TestScanRowsRejectsNonStruct(t *testing.T) {
	_, err := ScanRows[int](&Result{})
	assert.Error(t, err)
}
