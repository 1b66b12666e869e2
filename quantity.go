package unitconv

import "fmt"

// Quantity is an immutable measured amount: a value paired with the unit it
// is expressed in. The unit is held by identifier and resolved per call, so
// a Quantity stays valid across registry swaps.
type Quantity struct {
	Value float64
	Unit  string
}

// Convert returns the quantity expressed in the target unit.
func (q Quantity) Convert(to string) (Quantity, error) {
	v, err := Convert(q.Value, q.Unit, to)
	if err != nil {
		return Quantity{}, err
	}
	return Quantity{Value: v, Unit: to}, nil
}

// String formats the quantity as "<value> <unit>", e.g. "12.5 km".
func (q Quantity) String() string {
	return fmt.Sprintf("%v %s", q.Value, q.Unit)
}
