package unitconv

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/c360studio/unitconv/registry"
)

// ParseQuantity parses a quantity literal of the form "<number> <unit>",
// e.g. "12.5 km" or "-40 celsius". The unit must resolve in the default
// registry; the returned quantity keeps the identifier as written, aliases
// included.
func ParseQuantity(s string) (Quantity, error) {
	fields := strings.Fields(s)
	if len(fields) != 2 {
		return Quantity{}, fmt.Errorf("malformed quantity %q: want \"<number> <unit>\"", s)
	}

	v, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return Quantity{}, fmt.Errorf("malformed quantity %q: %w", s, err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Quantity{}, &registry.InvalidValueError{Value: v}
	}

	if _, err := Resolve(fields[1]); err != nil {
		return Quantity{}, err
	}
	return Quantity{Value: v, Unit: fields[1]}, nil
}
