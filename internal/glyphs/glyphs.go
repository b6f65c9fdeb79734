// Package glyphs holds the table of named glyph sets a spinner can animate:
// the built-in sets shipped as data, sets drawn on a braille canvas, and sets
// loaded from user YAML or TOML files.
package glyphs

import (
	_ "embed"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"termspin/internal/canvas"
)

//go:embed spinners.yaml
var builtinData []byte

// Set is one named glyph sequence and its frame interval in milliseconds.
type Set struct {
	Name     string   `yaml:"-" toml:"-"`
	Interval int      `yaml:"interval" toml:"interval"`
	Frames   []string `yaml:"frames" toml:"frames"`
}

// Valid reports whether the set can be animated.
func (s Set) Valid() bool {
	return len(s.Frames) > 0 && s.Interval > 0
}

// Table maps glyph set names to sets. The zero value is empty and usable.
type Table struct {
	sets map[string]Set
}

// Lookup returns the set registered under name.
func (t *Table) Lookup(name string) (Set, bool) {
	if t == nil || t.sets == nil {
		return Set{}, false
	}
	s, ok := t.sets[name]
	return s, ok
}

// Has reports whether name is a known set.
func (t *Table) Has(name string) bool {
	_, ok := t.Lookup(name)
	return ok
}

// Names returns the registered names in sorted order.
func (t *Table) Names() []string {
	if t == nil {
		return nil
	}
	names := make([]string, 0, len(t.sets))
	for name := range t.sets {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Len returns the number of registered sets.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.sets)
}

// Add registers s, replacing any set with the same name.
func (t *Table) Add(s Set) error {
	if s.Name == "" {
		return errors.New("glyph set has no name")
	}
	if !s.Valid() {
		return errors.Errorf("glyph set %q needs at least one frame and a positive interval", s.Name)
	}
	if t.sets == nil {
		t.sets = make(map[string]Set)
	}
	s.Frames = slices.Clone(s.Frames)
	t.sets[s.Name] = s
	return nil
}

// Merge returns a new table holding t's sets overlaid with other's.
func (t *Table) Merge(other *Table) *Table {
	out := &Table{sets: make(map[string]Set, t.Len()+other.Len())}
	for _, src := range []*Table{t, other} {
		if src == nil {
			continue
		}
		for name, s := range src.sets {
			out.sets[name] = s
		}
	}
	return out
}

func fromMap(raw map[string]Set) (*Table, error) {
	t := &Table{}
	for name, s := range raw {
		s.Name = name
		if err := t.Add(s); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// ParseYAML reads a table written as a YAML mapping of name to set.
func ParseYAML(data []byte) (*Table, error) {
	var raw map[string]Set
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, errors.Wrap(err, "failed to parse glyph sets")
	}
	return fromMap(raw)
}

// ParseTOML reads a table written as TOML tables keyed by name.
func ParseTOML(data []byte) (*Table, error) {
	var raw map[string]Set
	if _, err := toml.Decode(string(data), &raw); err != nil {
		return nil, errors.Wrap(err, "failed to parse glyph sets")
	}
	return fromMap(raw)
}

// LoadFile reads a glyph table from path. The format follows the extension:
// .toml for TOML, anything else is read as YAML.
func LoadFile(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read glyph file")
	}
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return ParseTOML(data)
	}
	return ParseYAML(data)
}

// orbitPath is a clockwise circle on a 4x4 pixel grid, two braille cells wide.
//
//	  0   1   2   3
//	0     *   *
//	1 *           *
//	2 *           *
//	3     *   *
var orbitPath = []canvas.Point{
	{X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 1}, {X: 3, Y: 2},
	{X: 2, Y: 3}, {X: 1, Y: 3}, {X: 0, Y: 2}, {X: 0, Y: 1},
}

// generated returns the sets drawn on a braille canvas rather than listed.
func generated() []Set {
	return []Set{
		{Name: "orbit", Interval: 80, Frames: canvas.Trail(4, 4, orbitPath, 4)},
		{Name: "comet", Interval: 100, Frames: canvas.Trail(4, 4, orbitPath, 2)},
	}
}

var (
	builtinOnce  sync.Once
	builtinTable *Table
	builtinErr   error
)

// Builtin returns the table shipped with the package. The table is shared;
// callers must not Add to it.
func Builtin() (*Table, error) {
	builtinOnce.Do(func() {
		builtinTable, builtinErr = ParseYAML(builtinData)
		if builtinErr != nil {
			return
		}
		for _, s := range generated() {
			if builtinErr = builtinTable.Add(s); builtinErr != nil {
				return
			}
		}
	})
	return builtinTable, builtinErr
}
