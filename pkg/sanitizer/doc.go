// Package sanitizer provides the value normalizers that run on raw INI
// attributes before type coercion.
//
// INI text carries every value as a string. Before a value can be coerced to
// its declared type it is shaped by small, total functions:
//
//   - SplitDelimited turns "1; 2; 3" into []string{"1", "2", "3"}.
//   - PromoteToList wraps a single value so list fields always hold a sequence.
//   - NormalizeEnum replaces a case-insensitive match with the canonical
//     spelling of an enumeration member.
//
// Normalizers never fail. A value they do not recognise passes through
// unchanged and is left for coercion to reject. Every normalizer is
// idempotent, so running a pipeline twice yields the same value.
//
// # Usage
//
//	import "github.com/dmitrymomot/hydroini/pkg/sanitizer"
//
//	normalize := sanitizer.Chain(
//		sanitizer.Splitter(";"),
//		sanitizer.PromoteToList,
//		sanitizer.EnumMatcher([]string{"TimeSeries", "Constant"}),
//	)
//
//	v := normalize("timeseries; CONSTANT") // []string{"TimeSeries", "Constant"}
//
// The generic Apply and Compose helpers build pipelines over any value type.
//
// # Concurrency
//
// The package is stateless; all functions are safe for concurrent use.
package sanitizer
