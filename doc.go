// Package unitconv dynamically converts values between measurement units.
//
// Units resolve by string identifier at call time against a registry of
// dimensions (length, mass, temperature, ...). Conversions route through
// each dimension's canonical base unit, so any two units of a dimension
// convert without a pairwise table:
//
//	meters, err := unitconv.Convert(1, "kilometer", "meter") // 1000
//	f, err := unitconv.Convert(0, "celsius", "fahrenheit")   // 32
//
// # Registry
//
// The package-level functions use a process-wide default registry built
// from the embedded catalog on first use. Custom catalogs load through the
// catalog package and swap in with SetDefault; long-running processes can
// keep catalogs fresh with the watch package. Conversion side effects are
// limited to an optional observer hook (see the metrics package), so any
// number of callers may convert concurrently.
//
// # Errors
//
// Failures carry the registry package's taxonomy: ErrUnknownUnit,
// ErrUnknownDimension, ErrIncompatibleDimensions, and ErrInvalidValue, each
// matchable with errors.Is.
package unitconv
