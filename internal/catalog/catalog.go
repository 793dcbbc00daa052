// Package catalog holds the spinner sets a round draws its items from.
package catalog

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// Names of the built-in catalogs.
const (
	Preparatory = "preparatory"
	Funny       = "funny"
)

var ErrNotFound = errors.New("catalog not found")

//go:embed spinners.toml
var builtinTOML []byte

// Spinner is one animated glyph set.
type Spinner struct {
	Name   string   `toml:"name"`
	Frames []string `toml:"frames"`
}

// Catalog is a named set of spinners; a round uses all of them.
type Catalog struct {
	Name     string    `toml:"name"`
	Spinners []Spinner `toml:"spinner"`
}

type catalogFile struct {
	Catalog []Catalog `toml:"catalog"`
}

// Builtin returns the catalogs compiled into the binary.
func Builtin() ([]Catalog, error) {
	return Parse(builtinTOML)
}

// Load reads catalogs from a TOML file. An empty path yields the built-ins.
func Load(path string) ([]Catalog, error) {
	if strings.TrimSpace(path) == "" {
		return Builtin()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates TOML catalog definitions.
func Parse(data []byte) ([]Catalog, error) {
	var f catalogFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if len(f.Catalog) == 0 {
		return nil, fmt.Errorf("no catalogs defined")
	}
	for i, c := range f.Catalog {
		if strings.TrimSpace(c.Name) == "" {
			return nil, fmt.Errorf("catalog[%d]: name is required", i)
		}
		if err := c.Validate(); err != nil {
			return nil, err
		}
	}
	return f.Catalog, nil
}

// Validate checks that every spinner can be shown and told apart.
func (c Catalog) Validate() error {
	if len(c.Spinners) == 0 {
		return fmt.Errorf("catalog %q: no spinners defined", c.Name)
	}
	seen := make(map[string]bool, len(c.Spinners))
	for i, s := range c.Spinners {
		name := strings.TrimSpace(s.Name)
		if name == "" {
			return fmt.Errorf("catalog %q spinner[%d]: name is required", c.Name, i)
		}
		if seen[name] {
			return fmt.Errorf("catalog %q: duplicate spinner %q", c.Name, name)
		}
		seen[name] = true
		if len(s.Frames) == 0 {
			return fmt.Errorf("catalog %q spinner %q: frames are required", c.Name, name)
		}
	}
	return nil
}

// Find looks up a catalog by name (case-insensitive). A single catalog
// matches any name, so user files need not repeat the built-in names.
func Find(catalogs []Catalog, name string) (Catalog, error) {
	for _, c := range catalogs {
		if strings.EqualFold(c.Name, name) {
			return c, nil
		}
	}
	if len(catalogs) == 1 {
		return catalogs[0], nil
	}
	return Catalog{}, fmt.Errorf("%w: %q", ErrNotFound, name)
}

// Write encodes catalogs in the same layout Parse reads.
func Write(w io.Writer, catalogs []Catalog) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(catalogFile{Catalog: catalogs}); err != nil {
		return fmt.Errorf("encode catalog: %w", err)
	}
	_, err := w.Write(buf.Bytes())
	return err
}
