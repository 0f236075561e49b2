package impala

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/datagrove-io/impala-dialect/runtime/types"
)

func TestBaseTypeKnownNames(t *testing.T) {
	d := New()

	cases := map[string]types.BaseType{
		"TINYINT":          types.BaseInteger,
		"SMALLINT":         types.BaseInteger,
		"INT":              types.BaseInteger,
		"BIGINT":           types.BaseBigInteger,
		"FLOAT":            types.BaseFloat,
		"DOUBLE":           types.BaseFloat,
		"DECIMAL(10,2)":    types.BaseDecimal,
		"TIMESTAMP":        types.BaseDateTime,
		"STRING":           types.BaseText,
		"VARCHAR(255)":     types.BaseText,
		"CHAR(4)":          types.BaseText,
		"BOOLEAN":          types.BaseBoolean,
		"ARRAY<INT>":       types.BaseArray,
		"MAP<STRING,INT>":  types.BaseMap,
	}
	for raw, want := range cases {
		assert.Equal(t, want, d.BaseType(raw), "raw type %s", raw)
	}
}

func TestBaseTypeTotality(t *testing.T) {
	d := New()

	// Any input resolves; unrecognized names map to unknown, never error.
	for _, raw := range []string{"FOOBAR123", "", "struct<a:int>", "int", "decimal"} {
		assert.Equal(t, types.BaseUnknown, d.BaseType(raw), "raw type %q", raw)
	}
}

func TestBaseTypeCaseSensitive(t *testing.T) {
	d := New()

	// The engine reports upper-case names; lower case falls through to
	// the catch-all.
	assert.Equal(t, types.BaseUnknown, d.BaseType("bigint"))
}
