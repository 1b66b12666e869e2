package registry

// RuleKind discriminates the conversion rule variants.
type RuleKind int

const (
	// KindLinear converts by a multiplicative factor to the base unit.
	KindLinear RuleKind = iota

	// KindAffine converts by scale and offset: base = value*Scale + Offset.
	KindAffine

	// KindFunctional converts through explicit to-base and from-base
	// functions.
	KindFunctional
)

// Rule describes how a unit maps onto its dimension's base unit. Rules are
// resolved by symbol lookup at call time, so adding a unit is a data change,
// not a new type.
type Rule struct {
	Kind RuleKind

	// Factor is the ratio of one unit to one base unit (KindLinear).
	Factor float64

	// Scale and Offset define base = value*Scale + Offset (KindAffine).
	Scale  float64
	Offset float64

	toBase   func(float64) float64
	fromBase func(float64) float64
}

// Linear returns a rule for units that are a fixed multiple of the base
// unit: one unit equals factor base units.
func Linear(factor float64) Rule {
	return Rule{Kind: KindLinear, Factor: factor}
}

// Affine returns a rule for scale-plus-offset units such as temperature
// scales: base = value*scale + offset.
func Affine(scale, offset float64) Rule {
	return Rule{Kind: KindAffine, Scale: scale, Offset: offset}
}

// Functional returns a rule with explicit conversion functions, for
// dimensions that are neither linear nor affine.
func Functional(toBase, fromBase func(float64) float64) Rule {
	return Rule{Kind: KindFunctional, toBase: toBase, fromBase: fromBase}
}

// ToBase converts a value in this unit to the dimension's base unit.
func (r Rule) ToBase(v float64) float64 {
	switch r.Kind {
	case KindAffine:
		return v*r.Scale + r.Offset
	case KindFunctional:
		return r.toBase(v)
	default:
		return v * r.Factor
	}
}

// FromBase converts a value in the dimension's base unit to this unit.
func (r Rule) FromBase(v float64) float64 {
	switch r.Kind {
	case KindAffine:
		return (v - r.Offset) / r.Scale
	case KindFunctional:
		return r.fromBase(v)
	default:
		return v / r.Factor
	}
}

// valid reports whether the rule can convert in both directions.
func (r Rule) valid() bool {
	switch r.Kind {
	case KindLinear:
		return r.Factor != 0
	case KindAffine:
		return r.Scale != 0
	case KindFunctional:
		return r.toBase != nil && r.fromBase != nil
	default:
		return false
	}
}
