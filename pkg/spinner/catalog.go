package spinner

import (
	"slices"
	"time"

	"github.com/pkg/errors"

	"termspin/internal/glyphs"
)

// Catalog resolves glyph set names to definitions.
type Catalog struct {
	table *glyphs.Table
}

// BuiltinCatalog returns the glyph sets shipped with the package.
func BuiltinCatalog() (*Catalog, error) {
	table, err := glyphs.Builtin()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load built-in glyph sets")
	}
	return &Catalog{table: table}, nil
}

// LoadCatalog returns the built-in sets overlaid with the sets in path, a
// YAML or TOML file mapping names to {interval, frames}.
func LoadCatalog(path string) (*Catalog, error) {
	base, err := BuiltinCatalog()
	if err != nil {
		return nil, err
	}
	user, err := glyphs.LoadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load glyph sets from %s", path)
	}
	return &Catalog{table: base.table.Merge(user)}, nil
}

// Names lists the known glyph sets in sorted order.
func (c *Catalog) Names() []string {
	return c.table.Names()
}

// Has reports whether name is a known glyph set.
func (c *Catalog) Has(name string) bool {
	return c.table.Has(name)
}

// Lookup returns the definition registered under name.
func (c *Catalog) Lookup(name string) (Definition, error) {
	set, ok := c.table.Lookup(name)
	if !ok {
		return Definition{}, &UnknownNameError{Name: name}
	}
	return Definition{
		Frames:   slices.Clone(set.Frames),
		Interval: time.Duration(set.Interval) * time.Millisecond,
	}, nil
}

// Apply sets each name on the spinner by what it denotes: a glyph set, a
// color, a highlight, an attribute, or the side "left" or "right".
//
//	sp.Apply("dots2", "bold", "cyan", "right")
func (s *Spinner) Apply(names ...string) error {
	for _, name := range names {
		if err := s.applyName(name); err != nil {
			return err
		}
	}
	return nil
}

func (s *Spinner) applyName(name string) error {
	if def, err := s.catalog.Lookup(name); err == nil {
		s.SetDefinition(def)
		return nil
	}
	if _, ok := colorNames[name]; ok {
		return s.SetColor(name)
	}
	if _, ok := highlightNames[name]; ok {
		return s.SetHighlight(name)
	}
	if _, ok := attrNames[name]; ok {
		return s.SetAttrs(name)
	}
	if side := Side(name); side == SideLeft || side == SideRight {
		return s.SetSide(side)
	}
	return errors.WithStack(&UnknownNameError{Name: name})
}
