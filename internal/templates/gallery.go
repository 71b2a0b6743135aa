package templates

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/alexisbeaulieu97/buildify/internal/logger"
	buildifyerrors "github.com/alexisbeaulieu97/buildify/pkg/errors"
)

// Gallery is an ordered, id-unique set of validated templates.
type Gallery struct {
	templates []Template
	index     map[string]int
	kinds     KindLookup
	log       *logger.Logger
}

// NewGallery returns a gallery holding the built-in templates.
func NewGallery(kinds KindLookup, log *logger.Logger) (*Gallery, error) {
	g := &Gallery{
		index: make(map[string]int),
		kinds: kinds,
		log:   log.With("component", "templates"),
	}

	builtin, err := Builtin()
	if err != nil {
		return nil, err
	}
	for _, tmpl := range builtin {
		if err := g.Add(tmpl); err != nil {
			return nil, fmt.Errorf("builtin template %s: %w", tmpl.ID, err)
		}
	}
	return g, nil
}

// Add validates tmpl and appends it. Ids must be unique within the gallery.
func (g *Gallery) Add(tmpl Template) error {
	if err := Validate(tmpl, g.kinds); err != nil {
		return err
	}
	if _, dup := g.index[tmpl.ID]; dup {
		return buildifyerrors.NewValidationError("id", fmt.Sprintf("duplicate template id %q", tmpl.ID), nil)
	}
	g.index[tmpl.ID] = len(g.templates)
	g.templates = append(g.templates, tmpl.Clone())
	return nil
}

// LoadDir adds every *.yaml and *.yml file in dir and returns how many were
// loaded. A missing directory is not an error.
func (g *Gallery) LoadDir(dir string) (int, error) {
	if dir == "" {
		return 0, nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			g.log.WithFields(map[string]any{"dir": dir}).Debug("template directory missing")
			return 0, nil
		}
		return 0, fmt.Errorf("read template dir: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if entry.IsDir() || (ext != ".yaml" && ext != ".yml") {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	loaded := 0
	for _, name := range names {
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			return loaded, buildifyerrors.NewParseError(path, 0, err)
		}
		tmpl, err := Parse(path, data)
		if err != nil {
			return loaded, err
		}
		if err := g.Add(tmpl); err != nil {
			return loaded, fmt.Errorf("%s: %w", path, err)
		}
		loaded++
	}

	g.log.WithFields(map[string]any{"dir": dir, "count": loaded}).Info("templates loaded")
	return loaded, nil
}

// All returns copies of every template in gallery order.
func (g *Gallery) All() []Template {
	return g.filter(func(Template) bool { return true })
}

// ByCategory returns the templates in category; an empty category means all.
func (g *Gallery) ByCategory(category string) []Template {
	if category == "" {
		return g.All()
	}
	return g.filter(func(t Template) bool { return t.Category == category })
}

// ByID returns a copy of the template with id.
func (g *Gallery) ByID(id string) (Template, error) {
	i, ok := g.index[id]
	if !ok {
		return Template{}, buildifyerrors.NewNotFoundError("template", id)
	}
	return g.templates[i].Clone(), nil
}

// Categories lists template categories in first-appearance order.
func (g *Gallery) Categories() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, t := range g.templates {
		if _, ok := seen[t.Category]; ok {
			continue
		}
		seen[t.Category] = struct{}{}
		out = append(out, t.Category)
	}
	return out
}

// Len reports how many templates the gallery holds.
func (g *Gallery) Len() int {
	return len(g.templates)
}

func (g *Gallery) filter(keep func(Template) bool) []Template {
	out := make([]Template, 0, len(g.templates))
	for _, t := range g.templates {
		if keep(t) {
			out = append(out, t.Clone())
		}
	}
	return out
}
