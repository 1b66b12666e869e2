// Package registry implements the conversion engine: a table of unit
// definitions grouped by physical dimension, with conversion routed through
// each dimension's canonical base unit.
//
// Units resolve by string symbol (or alias) at call time. Conversion rules
// are tagged variants rather than per-unit types: a linear factor for most
// dimensions, an affine scale-plus-offset for temperature scales, or a pair
// of explicit functions for anything else.
//
// A Registry is safe for concurrent use. Reads take a shared lock and
// registration takes an exclusive one, so a registry built once at startup
// behaves as immutable shared state.
package registry
