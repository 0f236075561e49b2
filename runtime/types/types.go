// Package types provides the engine-agnostic base type system and the
// temporal value representations shared by the compiler, the dialect
// adapter and the runtime client.
package types

// BaseType is the abstract column type the schema-sync layer works in.
type BaseType string

const (
	// BaseBoolean is a true/false column.
	BaseBoolean BaseType = "boolean"
	// BaseInteger covers the narrow integer family (TINYINT through INT).
	BaseInteger BaseType = "integer"
	// BaseBigInteger is a wide (64-bit) integer column.
	BaseBigInteger BaseType = "biginteger"
	// BaseFloat covers binary floating point columns.
	BaseFloat BaseType = "float"
	// BaseDecimal is an exact fixed-precision numeric column.
	BaseDecimal BaseType = "decimal"
	// BaseText covers STRING, VARCHAR and CHAR columns.
	BaseText BaseType = "text"
	// BaseDateTime is a timestamp column.
	BaseDateTime BaseType = "datetime"
	// BaseArray is a complex array column.
	BaseArray BaseType = "array"
	// BaseMap is a complex map column.
	BaseMap BaseType = "map"
	// BaseUnknown is the catch-all for type names the mapper does not
	// recognize. It is a valid result, not an error.
	BaseUnknown BaseType = "unknown"
)

// String returns the base type name.
func (t BaseType) String() string { return string(t) }
