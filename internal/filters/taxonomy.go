package filters

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed filters.yml
var taxonomyYAML []byte

// Option is one selectable filter value.
type Option struct {
	Label string `yaml:"label" json:"label"`
	Value string `yaml:"value" json:"value"`
}

// ProjectOption is a choice for the project-only switch.
type ProjectOption struct {
	Label string `yaml:"label" json:"label"`
	Value bool   `yaml:"value" json:"value"`
}

// Taxonomy lists every filter value the catalog understands.
type Taxonomy struct {
	Status  []Option          `yaml:"status" json:"status"`
	Type    []Option          `yaml:"type" json:"type"`
	OrderBy []Option          `yaml:"orderby" json:"orderby"`
	Genres  []Option          `yaml:"genres" json:"genres"`
	Project []ProjectOption   `yaml:"project" json:"project"`
	Usage   map[string]string `yaml:"usage" json:"-"`
}

// HasGenre reports whether value (with or without the exclusion prefix) is
// a known genre.
func (t *Taxonomy) HasGenre(value string) bool {
	value = trimExclude(value)
	for _, g := range t.Genres {
		if g.Value == value {
			return true
		}
	}
	return false
}

func trimExclude(value string) string {
	if len(value) > 0 && value[:1] == excludePrefix {
		return value[1:]
	}
	return value
}

// ParseTaxonomy decodes a taxonomy document.
func ParseTaxonomy(data []byte) (*Taxonomy, error) {
	var t Taxonomy
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("failed to parse filter taxonomy: %w", err)
	}
	return &t, nil
}

var loadDefault = sync.OnceValues(func() (*Taxonomy, error) {
	return ParseTaxonomy(taxonomyYAML)
})

// Default returns the taxonomy embedded in the binary.
func Default() (*Taxonomy, error) {
	return loadDefault()
}
