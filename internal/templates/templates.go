// Package templates provides the gallery of starter app documents.
package templates

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/buildify/internal/config"
	"github.com/alexisbeaulieu97/buildify/internal/document"
	buildifyerrors "github.com/alexisbeaulieu97/buildify/pkg/errors"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

// Template is a named starter document shown in the gallery.
type Template struct {
	ID          string               `json:"id" yaml:"id" validate:"required"`
	Name        string               `json:"name" yaml:"name" validate:"required"`
	Description string               `json:"description" yaml:"description"`
	Category    string               `json:"category" yaml:"category" validate:"required"`
	Thumbnail   string               `json:"thumbnail,omitempty" yaml:"thumbnail,omitempty"`
	Config      document.AppDocument `json:"config" yaml:"config"`
}

// Document returns a private copy of the template's app document.
func (t Template) Document() document.AppDocument {
	return t.Config.Clone()
}

// Clone deep copies the template.
func (t Template) Clone() Template {
	out := t
	out.Config = t.Config.Clone()
	return out
}

// Parse decodes a single template file. name is only used in errors.
func Parse(name string, data []byte) (Template, error) {
	var tmpl Template
	if err := yaml.Unmarshal(data, &tmpl); err != nil {
		return Template{}, buildifyerrors.NewParseError(name, config.ExtractLine(err), err)
	}
	return tmpl, nil
}

// Builtin decodes the templates shipped with the binary, in gallery order.
func Builtin() ([]Template, error) {
	entries, err := fs.ReadDir(builtinFS, "builtin")
	if err != nil {
		return nil, fmt.Errorf("read builtin templates: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	out := make([]Template, 0, len(names))
	for _, name := range names {
		file := path.Join("builtin", name)
		data, err := builtinFS.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", file, err)
		}
		tmpl, err := Parse(file, data)
		if err != nil {
			return nil, err
		}
		out = append(out, tmpl)
	}
	return out, nil
}
