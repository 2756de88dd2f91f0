package recipe

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"
)

//go:embed catalog.json
var embeddedCatalog []byte

// Catalog is a read-only, in-memory set of recipe templates.
type Catalog struct {
	templates []Template
	byID      map[string]int
}

// NewCatalog builds a catalog from templates. Templates are copied, so later
// changes to the argument do not leak into the catalog.
func NewCatalog(templates []Template) (*Catalog, error) {
	c := &Catalog{
		templates: make([]Template, 0, len(templates)),
		byID:      make(map[string]int, len(templates)),
	}
	for _, t := range templates {
		if _, dup := c.byID[t.ID]; dup {
			return nil, fmt.Errorf("duplicate recipe id %q", t.ID)
		}
		c.byID[t.ID] = len(c.templates)
		c.templates = append(c.templates, t.Clone())
	}
	return c, nil
}

// LoadCatalog decodes a JSON array of templates and validates each one.
func LoadCatalog(r io.Reader) (*Catalog, error) {
	templates, err := decodeTemplates(r)
	if err != nil {
		return nil, err
	}
	for _, t := range templates {
		if err := t.Validate(); err != nil {
			return nil, fmt.Errorf("invalid recipe in catalog: %w", err)
		}
	}
	return NewCatalog(templates)
}

func decodeTemplates(r io.Reader) ([]Template, error) {
	var templates []Template
	if err := json.NewDecoder(r).Decode(&templates); err != nil {
		return nil, fmt.Errorf("failed to decode recipe catalog: %w", err)
	}
	return templates, nil
}

// LoadCatalogFile reads a catalog from a JSON file on disk.
func LoadCatalogFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open recipe catalog %s: %w", path, err)
	}
	defer f.Close()
	return LoadCatalog(f)
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
	defaultErr     error
)

// DefaultCatalog returns the built-in catalog. It is decoded once per process
// and, being curated, skips the per-template checks LoadCatalog applies.
func DefaultCatalog() (*Catalog, error) {
	defaultOnce.Do(func() {
		var templates []Template
		templates, defaultErr = decodeTemplates(bytes.NewReader(embeddedCatalog))
		if defaultErr == nil {
			defaultCatalog, defaultErr = NewCatalog(templates)
		}
	})
	return defaultCatalog, defaultErr
}

// MustDefaultCatalog is DefaultCatalog for callers that treat a broken
// built-in catalog as a programming error.
func MustDefaultCatalog() *Catalog {
	c, err := DefaultCatalog()
	if err != nil {
		panic(err)
	}
	return c
}

// Templates returns a copy of every template in catalog order.
func (c *Catalog) Templates() []Template {
	out := make([]Template, len(c.templates))
	for i, t := range c.templates {
		out[i] = t.Clone()
	}
	return out
}

// Get retrieves a template by its ID.
func (c *Catalog) Get(id string) (Template, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Template{}, false
	}
	return c.templates[i].Clone(), true
}

// Count returns the number of templates in the catalog.
func (c *Catalog) Count() int {
	return len(c.templates)
}

// Filter returns, in catalog order, the templates compatible with the
// constraints. An empty result is not an error here; callers decide.
func (c *Catalog) Filter(constraints Constraints) []Template {
	var out []Template
	for _, t := range c.templates {
		if Matches(t, constraints) {
			out = append(out, t.Clone())
		}
	}
	return out
}
