package registry

import (
	"fmt"
	"math"
	"sync"
)

// Unit is a registered measurement scale. It belongs to exactly one
// dimension and carries the rule relating it to that dimension's base unit.
type Unit struct {
	// Symbol is the canonical identifier, unique across all dimensions.
	Symbol string

	// Aliases are alternate identifiers resolving to this unit (plurals,
	// SI abbreviations). They share the symbol namespace.
	Aliases []string

	// Dimension is the physical quantity this unit measures.
	Dimension Dimension

	// Rule relates the unit to the dimension's base unit.
	Rule Rule
}

// Registry holds unit definitions and performs conversions between them.
// The zero value is not usable; construct with New or catalog.Build.
type Registry struct {
	mu       sync.RWMutex
	units    map[string]*Unit      // symbol or alias -> unit
	byDim    map[Dimension][]*Unit // registration order
	base     map[Dimension]string  // canonical base unit symbol
	dims     []Dimension           // registration order
	observer Observer
}

// New returns an empty registry. Most callers want catalog.Build or the
// package-level unitconv API, which start from the builtin catalog.
func New() *Registry {
	return &Registry{
		units: make(map[string]*Unit),
		byDim: make(map[Dimension][]*Unit),
		base:  make(map[Dimension]string),
	}
}

// RegisterUnit adds a unit. The symbol and every alias must be unused; the
// dimension is created on its first unit.
func (r *Registry) RegisterUnit(u Unit) error {
	if u.Symbol == "" {
		return fmt.Errorf("unit has no symbol")
	}
	if u.Dimension == "" {
		return fmt.Errorf("unit %q has no dimension", u.Symbol)
	}
	if !u.Rule.valid() {
		return fmt.Errorf("unit %q has an unusable conversion rule", u.Symbol)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.units[u.Symbol]; taken {
		return &DuplicateUnitError{Symbol: u.Symbol}
	}
	for _, alias := range u.Aliases {
		if _, taken := r.units[alias]; taken {
			return &DuplicateUnitError{Symbol: alias}
		}
	}

	unit := u
	unit.Aliases = append([]string(nil), u.Aliases...)

	r.units[unit.Symbol] = &unit
	for _, alias := range unit.Aliases {
		r.units[alias] = &unit
	}
	if _, seen := r.byDim[unit.Dimension]; !seen {
		r.dims = append(r.dims, unit.Dimension)
	}
	r.byDim[unit.Dimension] = append(r.byDim[unit.Dimension], &unit)
	return nil
}

// SetBase records the canonical base unit of a dimension. The symbol must
// already resolve to a unit of that dimension.
func (r *Registry) SetBase(dim Dimension, symbol string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.units[symbol]
	if !ok {
		return &UnknownUnitError{Symbol: symbol}
	}
	if u.Dimension != dim {
		return fmt.Errorf("unit %q belongs to %s, not %s", symbol, u.Dimension, dim)
	}
	r.base[dim] = u.Symbol
	return nil
}

// Base returns the canonical base unit symbol for a dimension.
func (r *Registry) Base(dim Dimension) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	symbol, ok := r.base[dim]
	if !ok {
		return "", &UnknownDimensionError{Dimension: dim}
	}
	return symbol, nil
}

// SetObserver installs the conversion outcome hook. A nil observer removes
// it.
func (r *Registry) SetObserver(obs Observer) {
	r.mu.Lock()
	r.observer = obs
	r.mu.Unlock()
}

// Convert converts value from one unit to another within a dimension,
// routing through the dimension's base unit. It is pure: no state changes,
// any number of callers may convert concurrently.
func (r *Registry) Convert(value float64, from, to string) (float64, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		r.observeFailure(FailureInvalidValue)
		return 0, &InvalidValueError{Value: value}
	}

	r.mu.RLock()
	fu, fok := r.units[from]
	tu, tok := r.units[to]
	obs := r.observer
	r.mu.RUnlock()

	if !fok {
		if obs != nil {
			obs.ObserveFailure(FailureUnknownUnit)
		}
		return 0, &UnknownUnitError{Symbol: from}
	}
	if !tok {
		if obs != nil {
			obs.ObserveFailure(FailureUnknownUnit)
		}
		return 0, &UnknownUnitError{Symbol: to}
	}
	if fu.Dimension != tu.Dimension {
		if obs != nil {
			obs.ObserveFailure(FailureIncompatibleDimensions)
		}
		return 0, &IncompatibleDimensionsError{
			From:          fu.Symbol,
			To:            tu.Symbol,
			FromDimension: fu.Dimension,
			ToDimension:   tu.Dimension,
		}
	}

	var out float64
	switch {
	case fu == tu:
		// Identity conversions are exact, no arithmetic.
		out = value
	case fu.Rule.Kind == KindLinear && tu.Rule.Kind == KindLinear:
		out = value * fu.Rule.Factor / tu.Rule.Factor
	default:
		out = tu.Rule.FromBase(fu.Rule.ToBase(value))
	}

	if obs != nil {
		obs.ObserveConversion(fu.Dimension, fu.Symbol, tu.Symbol)
	}
	return out, nil
}

// Resolve returns the unit a symbol or alias refers to.
func (r *Registry) Resolve(symbol string) (Unit, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.units[symbol]
	if !ok {
		return Unit{}, &UnknownUnitError{Symbol: symbol}
	}
	out := *u
	out.Aliases = append([]string(nil), u.Aliases...)
	return out, nil
}

// Units returns the canonical unit symbols registered for a dimension, in
// registration order.
func (r *Registry) Units(dim Dimension) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	units, ok := r.byDim[dim]
	if !ok {
		return nil, &UnknownDimensionError{Dimension: dim}
	}
	symbols := make([]string, 0, len(units))
	for _, u := range units {
		symbols = append(symbols, u.Symbol)
	}
	return symbols, nil
}

// Dimensions returns all registered dimensions in registration order.
func (r *Registry) Dimensions() []Dimension {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]Dimension(nil), r.dims...)
}

func (r *Registry) observeFailure(kind string) {
	r.mu.RLock()
	obs := r.observer
	r.mu.RUnlock()

	if obs != nil {
		obs.ObserveFailure(kind)
	}
}
