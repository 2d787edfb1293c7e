// Package catalog loads the section templates that define citation codes and
// required fields of a dossier.
package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/heartmarshall/dossier-backend/internal/domain"
)

//go:embed sections.yaml
var defaultSections []byte

type file struct {
	Sections []entry `yaml:"sections"`
}

type entry struct {
	Name           string   `yaml:"name"`
	Code           string   `yaml:"code"`
	Title          string   `yaml:"title"`
	RequiredFields []string `yaml:"required_fields"`
}

// Catalog is an immutable, ordered set of section templates.
type Catalog struct {
	templates []domain.SectionTemplate
	byName    map[string]int
}

// Default returns the embedded catalog.
func Default() (*Catalog, error) {
	return Parse(defaultSections)
}

// Load reads a catalog file. An empty path yields the embedded default.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes a YAML catalog and validates it.
func Parse(data []byte) (*Catalog, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("catalog: decode: %w", err)
	}

	templates := make([]domain.SectionTemplate, 0, len(f.Sections))
	for _, e := range f.Sections {
		templates = append(templates, domain.SectionTemplate{
			Name:           strings.TrimSpace(e.Name),
			Code:           strings.ToUpper(strings.TrimSpace(e.Code)),
			Title:          e.Title,
			RequiredFields: e.RequiredFields,
		})
	}
	return New(templates...)
}

// New builds a catalog from templates. Names and codes must be unique;
// a missing code is derived from the name.
func New(templates ...domain.SectionTemplate) (*Catalog, error) {
	c := &Catalog{
		templates: make([]domain.SectionTemplate, 0, len(templates)),
		byName:    make(map[string]int, len(templates)),
	}
	codes := make(map[string]string, len(templates))

	for _, t := range templates {
		if t.Name == "" {
			return nil, fmt.Errorf("catalog: section without name")
		}
		if _, dup := c.byName[t.Name]; dup {
			return nil, fmt.Errorf("catalog: duplicate section %q", t.Name)
		}
		if t.Code == "" {
			t.Code = domain.SectionCode(t.Name)
		}
		if t.Code == "" {
			return nil, fmt.Errorf("catalog: section %q yields an empty code", t.Name)
		}
		if other, dup := codes[t.Code]; dup {
			return nil, fmt.Errorf("catalog: sections %q and %q share code %s", other, t.Name, t.Code)
		}
		seen := make(map[string]bool, len(t.RequiredFields))
		for _, f := range t.RequiredFields {
			if f == "" || seen[f] {
				return nil, fmt.Errorf("catalog: section %q has an empty or repeated required field", t.Name)
			}
			seen[f] = true
		}

		codes[t.Code] = t.Name
		c.byName[t.Name] = len(c.templates)
		c.templates = append(c.templates, t)
	}
	return c, nil
}

// Template returns the template of a section name.
func (c *Catalog) Template(name string) (domain.SectionTemplate, bool) {
	i, ok := c.byName[name]
	if !ok {
		return domain.SectionTemplate{}, false
	}
	return c.templates[i], true
}

// Has reports whether the catalog defines a section name.
func (c *Catalog) Has(name string) bool {
	_, ok := c.byName[name]
	return ok
}

// Code returns the citation code of a section name. Codes are unique
// across the catalog, so citation keys never collide within a project.
func (c *Catalog) Code(name string) (string, bool) {
	t, ok := c.Template(name)
	return t.Code, ok
}

// RequiredFields returns the required fields of a section name; unknown
// sections have none.
func (c *Catalog) RequiredFields(name string) []string {
	t, _ := c.Template(name)
	return t.RequiredFields
}

// Trackable returns the templates that count toward project completeness,
// in catalog order.
func (c *Catalog) Trackable() []domain.SectionTemplate {
	out := make([]domain.SectionTemplate, 0, len(c.templates))
	for _, t := range c.templates {
		if t.IsTrackable() {
			out = append(out, t)
		}
	}
	return out
}

// All returns every template in catalog order.
func (c *Catalog) All() []domain.SectionTemplate {
	return append([]domain.SectionTemplate(nil), c.templates...)
}
