// Package catalog defines unit catalogs: the data describing dimensions and
// their units, serialized as YAML. The builtin table ships embedded in the
// binary; user catalogs merge over it through a Loader.
package catalog

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/c360studio/unitconv/registry"
)

//go:embed units.yaml
var builtin []byte

// Catalog is an ordered set of dimension definitions.
type Catalog struct {
	Dimensions []DimensionDef `yaml:"dimensions"`
}

// DimensionDef defines one dimension and its units.
type DimensionDef struct {
	// Name is the dimension identifier (e.g. "length").
	Name string `yaml:"name"`

	// Base is the symbol of the canonical base unit. It must appear in
	// Units with factor 1 and no offset.
	Base string `yaml:"base"`

	// Units lists the dimension's units. Order is preserved through to the
	// registry listing.
	Units []UnitDef `yaml:"units"`
}

// UnitDef defines one unit relative to its dimension's base unit. Exactly
// one of Factor or Scale must be set; Offset only accompanies Scale.
type UnitDef struct {
	// Symbol is the canonical identifier, unique across the whole catalog.
	Symbol string `yaml:"symbol"`

	// Aliases are alternate identifiers (plurals, SI abbreviations).
	Aliases []string `yaml:"aliases,omitempty"`

	// Factor is the linear ratio to the base unit: 1 unit = Factor base.
	Factor float64 `yaml:"factor,omitempty"`

	// Scale and Offset define the affine mapping base = value*Scale + Offset.
	Scale  float64 `yaml:"scale,omitempty"`
	Offset float64 `yaml:"offset,omitempty"`
}

// rule returns the registry rule for the definition.
func (u UnitDef) rule() registry.Rule {
	if u.Scale != 0 {
		return registry.Affine(u.Scale, u.Offset)
	}
	return registry.Linear(u.Factor)
}

// Parse unmarshals a catalog document. It checks the YAML shape only; run
// Validate on the fully merged catalog before building a registry.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	for _, d := range c.Dimensions {
		if d.Name == "" {
			return nil, fmt.Errorf("parse catalog: dimension with no name")
		}
		for _, u := range d.Units {
			if u.Symbol == "" {
				return nil, fmt.Errorf("parse catalog: dimension %q has a unit with no symbol", d.Name)
			}
		}
	}
	return &c, nil
}

// Default returns the builtin catalog. The embedded table is covered by
// tests, so a parse failure here means a broken build.
func Default() *Catalog {
	c, err := Parse(builtin)
	if err != nil {
		panic("catalog: embedded units.yaml: " + err.Error())
	}
	return c
}

// Validate checks the catalog is complete enough to build a registry:
// symbols and aliases unique across all dimensions, every unit with exactly
// one conversion form, every dimension with a registered identity base.
func (c *Catalog) Validate() error {
	seen := make(map[string]string) // identifier -> dimension
	for _, d := range c.Dimensions {
		if d.Base == "" {
			return fmt.Errorf("dimension %q has no base unit", d.Name)
		}
		baseOK := false
		for _, u := range d.Units {
			if u.Factor != 0 && u.Scale != 0 {
				return fmt.Errorf("unit %q sets both factor and scale", u.Symbol)
			}
			if u.Factor == 0 && u.Scale == 0 {
				return fmt.Errorf("unit %q sets neither factor nor scale", u.Symbol)
			}
			if u.Offset != 0 && u.Scale == 0 {
				return fmt.Errorf("unit %q sets offset without scale", u.Symbol)
			}
			for _, id := range append([]string{u.Symbol}, u.Aliases...) {
				if owner, taken := seen[id]; taken {
					return fmt.Errorf("identifier %q defined in both %q and %q", id, owner, d.Name)
				}
				seen[id] = d.Name
			}
			if u.Symbol == d.Base {
				if u.Factor != 1 || u.Scale != 0 || u.Offset != 0 {
					return fmt.Errorf("base unit %q of %q must have factor 1", u.Symbol, d.Name)
				}
				baseOK = true
			}
		}
		if !baseOK {
			return fmt.Errorf("dimension %q does not define its base unit %q", d.Name, d.Base)
		}
	}
	return nil
}

// Merge overlays another catalog onto this one. Dimensions merge by name;
// within a dimension, units replace by symbol and otherwise append, so an
// overlay can both correct builtin units and add new ones. A non-empty
// overlay base replaces the dimension's base.
func (c *Catalog) Merge(other *Catalog) {
	if other == nil {
		return
	}
	for _, od := range other.Dimensions {
		merged := false
		for i := range c.Dimensions {
			if c.Dimensions[i].Name != od.Name {
				continue
			}
			c.Dimensions[i].merge(od)
			merged = true
			break
		}
		if !merged {
			c.Dimensions = append(c.Dimensions, od)
		}
	}
}

func (d *DimensionDef) merge(other DimensionDef) {
	if other.Base != "" {
		d.Base = other.Base
	}
	for _, ou := range other.Units {
		replaced := false
		for i := range d.Units {
			if d.Units[i].Symbol == ou.Symbol {
				d.Units[i] = ou
				replaced = true
				break
			}
		}
		if !replaced {
			d.Units = append(d.Units, ou)
		}
	}
}

// Build validates the catalog and constructs a registry from it. The result
// is immutable unless the caller registers further units.
func Build(c *Catalog) (*registry.Registry, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}

	r := registry.New()
	for _, d := range c.Dimensions {
		dim := registry.Dimension(d.Name)
		for _, u := range d.Units {
			unit := registry.Unit{
				Symbol:    u.Symbol,
				Aliases:   u.Aliases,
				Dimension: dim,
				Rule:      u.rule(),
			}
			if err := r.RegisterUnit(unit); err != nil {
				return nil, fmt.Errorf("build registry: %w", err)
			}
		}
		if err := r.SetBase(dim, d.Base); err != nil {
			return nil, fmt.Errorf("build registry: %w", err)
		}
	}
	return r, nil
}
