package unitconv

import (
	"sync"

	"github.com/c360studio/unitconv/catalog"
	"github.com/c360studio/unitconv/registry"
)

var (
	defaultMu       sync.RWMutex
	defaultRegistry *registry.Registry
)

// Default returns the process-wide registry, building it from the embedded
// catalog on first use.
func Default() *registry.Registry {
	defaultMu.RLock()
	r := defaultRegistry
	defaultMu.RUnlock()
	if r != nil {
		return r
	}

	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultRegistry == nil {
		r, err := catalog.Build(catalog.Default())
		if err != nil {
			// The embedded catalog is validated by tests; failing here
			// means a broken build, not a runtime condition.
			panic("unitconv: builtin catalog: " + err.Error())
		}
		defaultRegistry = r
	}
	return defaultRegistry
}

// SetDefault replaces the process-wide registry. Call it early in startup,
// or from a catalog watcher; conversions in flight finish against the
// registry they resolved.
func SetDefault(r *registry.Registry) {
	defaultMu.Lock()
	defaultRegistry = r
	defaultMu.Unlock()
}

// Convert converts value from one unit to another within a dimension using
// the default registry.
func Convert(value float64, from, to string) (float64, error) {
	return Default().Convert(value, from, to)
}

// Units returns the unit symbols registered for a dimension, in
// registration order.
func Units(dim registry.Dimension) ([]string, error) {
	return Default().Units(dim)
}

// Dimensions returns all registered dimensions in registration order.
func Dimensions() []registry.Dimension {
	return Default().Dimensions()
}

// Resolve returns the unit a symbol or alias refers to.
func Resolve(symbol string) (registry.Unit, error) {
	return Default().Resolve(symbol)
}
