package impala

import "errors"

// The adapter's failures are compile-time defect signals, never
// transient conditions: they propagate unmodified to the outer compiler
// and are neither retried nor swallowed.
var (
	// ErrUnmappedGranularity reports a truncation or extraction request
	// for a granularity with no dialect rule. Silently defaulting would
	// produce wrong aggregation results, so this fails loudly.
	ErrUnmappedGranularity = errors.New("impala: no rule for granularity")

	// ErrInvalidPagination reports a non-positive page number or page size.
	ErrInvalidPagination = errors.New("impala: pagination requires positive page and items per page")

	// ErrPaginationNeedsOrdering reports an offset page with no ORDER BY:
	// the row-number window has no ordering to reproduce.
	ErrPaginationNeedsOrdering = errors.New("impala: offset pagination requires an ORDER BY clause")

	// ErrUnrepresentableTemporal reports a temporal variant that cannot
	// be normalized to the engine's timezone-naive representation.
	ErrUnrepresentableTemporal = errors.New("impala: temporal value cannot be represented")

	// ErrInvalidIntervalUnit reports an interval unit outside the closed
	// unit set. Units are emitted as bare SQL tokens, so unknown units
	// are rejected rather than interpolated.
	ErrInvalidIntervalUnit = errors.New("impala: invalid interval unit")
)
