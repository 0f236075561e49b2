package impala

import (
	"regexp"

	"github.com/datagrove-io/impala-dialect/runtime/types"
)

// typePattern is one (pattern, base type) rule. Rules are matched in
// order against the raw type name; the first match wins.
type typePattern struct {
	pattern *regexp.Regexp
	base    types.BaseType
}

// typePatterns maps Impala's native column-type names onto the base type
// system. Matching is case-sensitive: the engine reports type names in
// upper case. The final catch-all guarantees every raw name resolves.
var typePatterns = []typePattern{
	{regexp.MustCompile(`^TINYINT`), types.BaseInteger},
	{regexp.MustCompile(`^SMALLINT`), types.BaseInteger},
	{regexp.MustCompile(`^INT`), types.BaseInteger},
	{regexp.MustCompile(`^BIGINT`), types.BaseBigInteger},
	{regexp.MustCompile(`^FLOAT`), types.BaseFloat},
	{regexp.MustCompile(`^DOUBLE`), types.BaseFloat},
	{regexp.MustCompile(`^DECIMAL`), types.BaseDecimal},
	{regexp.MustCompile(`^TIMESTAMP`), types.BaseDateTime},
	{regexp.MustCompile(`^STRING`), types.BaseText},
	{regexp.MustCompile(`^VARCHAR`), types.BaseText},
	{regexp.MustCompile(`^CHAR`), types.BaseText},
	{regexp.MustCompile(`^BOOLEAN`), types.BaseBoolean},
	{regexp.MustCompile(`^ARRAY`), types.BaseArray},
	{regexp.MustCompile(`^MAP`), types.BaseMap},
	{regexp.MustCompile(`.*`), types.BaseUnknown},
}

// BaseType maps a raw Impala column-type name onto the base type system.
// It never fails: unrecognized names map to types.BaseUnknown.
func (d *Dialect) BaseType(raw string) types.BaseType {
	for _, rule := range typePatterns {
		if rule.pattern.MatchString(raw) {
			return rule.base
		}
	}
	// Unreachable: the catch-all matches everything.
	return types.BaseUnknown
}

// TypeMapping is one pattern rule of the type map, for display.
type TypeMapping struct {
	Pattern string
	Base    types.BaseType
}

// TypeMappings returns the ordered pattern rules of the type map.
func (d *Dialect) TypeMappings() []TypeMapping {
	out := make([]TypeMapping, len(typePatterns))
	for i, rule := range typePatterns {
		out[i] = TypeMapping{Pattern: rule.pattern.String(), Base: rule.base}
	}
	return out
}
