package catalog

import (
	"fmt"
	"log/slog"
	"os"
	"sort"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/c360studio/unitconv/registry"
)

// Loader loads and merges unit catalogs from disk over the builtin table.
type Loader struct {
	logger *slog.Logger
}

// NewLoader creates a catalog loader. A nil logger falls back to
// slog.Default.
func NewLoader(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{logger: logger}
}

// Load returns the builtin catalog with every catalog file matched by the
// given patterns merged over it, in pattern order then path order. Patterns
// support doublestar globs ("conf/**/*.yaml"). A pattern matching nothing
// is not an error; a file that fails to parse is.
func (l *Loader) Load(patterns ...string) (*Catalog, error) {
	cat := Default()
	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, fmt.Errorf("bad catalog pattern %q: %w", pattern, err)
		}
		if len(matches) == 0 {
			l.logger.Debug("No catalogs matched pattern", slog.String("pattern", pattern))
			continue
		}
		sort.Strings(matches)
		for _, path := range matches {
			overlay, err := LoadFile(path)
			if err != nil {
				return nil, err
			}
			l.logger.Debug("Loaded unit catalog", slog.String("path", path))
			cat.Merge(overlay)
		}
	}
	if err := cat.Validate(); err != nil {
		return nil, fmt.Errorf("merged catalog: %w", err)
	}
	return cat, nil
}

// Registry loads catalogs per Load and builds a registry from the result.
func (l *Loader) Registry(patterns ...string) (*registry.Registry, error) {
	cat, err := l.Load(patterns...)
	if err != nil {
		return nil, err
	}
	return Build(cat)
}

// LoadFile reads and parses a single catalog file. The result may be a
// partial overlay; validation happens after merging.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return c, nil
}
