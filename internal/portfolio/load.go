package portfolio

import (
	"errors"
	"fmt"
	"io/fs"

	"gopkg.in/yaml.v3"
)

var ErrInvalidContent = errors.New("invalid content")

// Load reads and validates the site content file at name in fsys.
func Load(fsys fs.FS, name string) (*Site, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("read content %s: %w", name, err)
	}
	var site Site
	if err := yaml.Unmarshal(data, &site); err != nil {
		return nil, fmt.Errorf("parse content %s: %w", name, err)
	}
	if err := site.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return &site, nil
}

// Validate checks the fields the page cannot render without.
func (s *Site) Validate() error {
	for i, p := range s.Projects {
		if p.Title == "" {
			return fmt.Errorf("%w: project %d has no title", ErrInvalidContent, i)
		}
		if p.Category == "" {
			return fmt.Errorf("%w: project %q has no category", ErrInvalidContent, p.Title)
		}
	}
	return nil
}

// Categories returns the gallery filter labels. An authored
// FilterCategories list is used as is; otherwise the labels are "All"
// followed by each project category in first-seen order.
func (s *Site) Categories() []string {
	if len(s.FilterCategories) > 0 {
		return s.FilterCategories
	}
	out := []string{AllCategories}
	seen := map[string]bool{}
	for _, p := range s.Projects {
		if seen[p.Category] {
			continue
		}
		seen[p.Category] = true
		out = append(out, p.Category)
	}
	return out
}
