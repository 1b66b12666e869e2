package registry

// Failure kinds reported to an Observer, one per conversion error class.
const (
	FailureUnknownUnit            = "unknown_unit"
	FailureIncompatibleDimensions = "incompatible_dimensions"
	FailureInvalidValue           = "invalid_value"
)

// Observer receives conversion outcomes. Implementations must be safe for
// concurrent use; apart from this hook the engine has no side effects.
type Observer interface {
	// ObserveConversion is called after every successful conversion with the
	// dimension and the canonical symbols of the resolved units.
	ObserveConversion(dim Dimension, from, to string)

	// ObserveFailure is called with the failure kind of a rejected
	// conversion.
	ObserveFailure(kind string)
}
