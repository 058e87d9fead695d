// Package practice holds practice programs and the controller behind the
// practice page.
package practice

import (
	"fmt"
	"os"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"
)

// Program is one practice exercise.
type Program struct {
	ID        string `yaml:"id" json:"id"`
	Topic     string `yaml:"topic" json:"topic,omitempty"`
	Title     string `yaml:"title" json:"title"`
	Statement string `yaml:"statement" json:"statement"`
	Input     string `yaml:"input" json:"input,omitempty"`
	Output    string `yaml:"output" json:"output,omitempty"`
	Logic     string `yaml:"logic" json:"logic,omitempty"`
	Solution  string `yaml:"solution" json:"solution,omitempty"`
	Starter   string `yaml:"starter" json:"starter,omitempty"`
}

// programFile is the on-disk layout of a catalog file.
type programFile struct {
	Programs []Program `yaml:"programs"`
}

// Catalog is the set of practice programs, in load order.
type Catalog struct {
	programs []Program
	byID     map[string]int
}

// NewCatalog builds a catalog from programs. Duplicate or empty IDs are rejected.
func NewCatalog(programs []Program) (*Catalog, error) {
	c := &Catalog{byID: make(map[string]int, len(programs))}
	for _, p := range programs {
		if p.ID == "" {
			return nil, fmt.Errorf("program %q has no id", p.Title)
		}
		if _, dup := c.byID[p.ID]; dup {
			return nil, fmt.Errorf("duplicate program id %q", p.ID)
		}
		c.byID[p.ID] = len(c.programs)
		c.programs = append(c.programs, p)
	}
	return c, nil
}

// LoadCatalog reads every YAML file matching the doublestar patterns. Files
// are read in sorted path order so the catalog order is stable.
func LoadCatalog(patterns []string) (*Catalog, error) {
	seen := make(map[string]bool)
	var paths []string
	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, fmt.Errorf("bad program pattern %q: %w", pattern, err)
		}
		for _, m := range matches {
			if !seen[m] {
				seen[m] = true
				paths = append(paths, m)
			}
		}
	}
	sort.Strings(paths)

	var programs []Program
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading programs %s: %w", path, err)
		}
		var f programFile
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("parsing programs %s: %w", path, err)
		}
		programs = append(programs, f.Programs...)
	}
	return NewCatalog(programs)
}

// Get returns the program with the given ID.
func (c *Catalog) Get(id string) (*Program, bool) {
	if c == nil {
		return nil, false
	}
	i, ok := c.byID[id]
	if !ok {
		return nil, false
	}
	p := c.programs[i]
	return &p, true
}

// All returns every program.
func (c *Catalog) All() []Program {
	if c == nil {
		return nil
	}
	return append([]Program(nil), c.programs...)
}

// ForTopic returns the programs attached to a topic.
func (c *Catalog) ForTopic(topicID string) []Program {
	var out []Program
	for _, p := range c.All() {
		if p.Topic == topicID {
			out = append(out, p)
		}
	}
	return out
}
