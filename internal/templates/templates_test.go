package templates

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/buildify/internal/catalog"
	"github.com/alexisbeaulieu97/buildify/internal/document"
	"github.com/alexisbeaulieu97/buildify/internal/logger"
	"github.com/alexisbeaulieu97/buildify/internal/tree"
	buildifyerrors "github.com/alexisbeaulieu97/buildify/pkg/errors"
)

func newGallery(t *testing.T) *Gallery {
	t.Helper()
	g, err := NewGallery(catalog.New(), logger.Nop())
	require.NoError(t, err)
	return g
}

func TestBuiltinGallery(t *testing.T) {
	t.Parallel()

	g := newGallery(t)

	ids := make([]string, 0, g.Len())
	for _, tmpl := range g.All() {
		ids = append(ids, tmpl.ID)
	}
	assert.Equal(t, []string{"social-media-app", "e-commerce-app", "fitness-app", "news-app"}, ids)
	assert.Equal(t, []string{"Social", "E-Commerce", "Health & Fitness", "News & Media"}, g.Categories())
}

func TestBuiltinTemplateContents(t *testing.T) {
	t.Parallel()

	g := newGallery(t)

	social, err := g.ByID("social-media-app")
	require.NoError(t, err)
	doc := social.Document()
	require.Len(t, doc.Screens, 1)
	assert.Equal(t, "home-feed", doc.Screens[0].ID)
	assert.Equal(t, "#f8fafc", doc.Theme.BackgroundColor)
	assert.Equal(t,
		[]string{"navbar_1", "post_1", "user_info", "profile_pic", "username", "post_image", "post_text"},
		tree.IDs(doc.Screens[0].Components))

	username, ok := tree.FindByID(doc.Screens[0].Components, "username")
	require.True(t, ok)
	assert.Equal(t, 16, username.Props["fontSize"])
	assert.Nil(t, username.Children)

	fitness, err := g.ByID("fitness-app")
	require.NoError(t, err)
	chart, ok := tree.FindByID(fitness.Config.Screens[0].Components, "progress_chart")
	require.True(t, ok)
	data, ok := chart.Props["data"].([]any)
	require.True(t, ok)
	require.Len(t, data, 7)
	assert.Equal(t, map[string]any{"label": "Mon", "value": 45}, data[0])

	news, err := g.ByID("news-app")
	require.NoError(t, err)
	list, ok := tree.FindByID(news.Config.Screens[0].Components, "news_list")
	require.True(t, ok)
	assert.Len(t, list.Props["items"], 4)
}

func TestByIDReturnsIsolatedCopy(t *testing.T) {
	t.Parallel()

	g := newGallery(t)

	first, err := g.ByID("news-app")
	require.NoError(t, err)
	first.Config.Screens[0].Components[0].Props["title"] = "Edited"
	first.Config.Name = "Edited"

	second, err := g.ByID("news-app")
	require.NoError(t, err)
	assert.Equal(t, "Daily News", second.Config.Screens[0].Components[0].Props["title"])
	assert.Equal(t, "News Reader", second.Config.Name)
}

func TestByIDUnknown(t *testing.T) {
	t.Parallel()

	_, err := newGallery(t).ByID("todo-app")
	require.Error(t, err)
	assert.True(t, buildifyerrors.IsNotFound(err))
}

func TestByCategory(t *testing.T) {
	t.Parallel()

	g := newGallery(t)

	social := g.ByCategory("Social")
	require.Len(t, social, 1)
	assert.Equal(t, "social-media-app", social[0].ID)
	assert.Len(t, g.ByCategory(""), 4)
	assert.Empty(t, g.ByCategory("Games"))
}

func validTemplate() Template {
	return Template{
		ID:       "custom",
		Name:     "Custom",
		Category: "Custom",
		Config: document.AppDocument{
			ID:   "custom-doc",
			Name: "Custom",
			Screens: []document.Screen{
				{ID: "main", Name: "Main", Components: []document.Node{
					{ID: "box", Kind: "Container", Category: document.CategoryLayout, Props: document.Props{}, Children: []document.Node{
						{ID: "label", Kind: "Text", Category: document.CategoryBasic, Props: document.Props{"text": "hi"}},
					}},
				}},
			},
			Theme: document.Default().Theme,
		},
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	cat := catalog.New()

	tests := []struct {
		name    string
		mutate  func(*Template)
		wantErr string
	}{
		{name: "valid", mutate: func(*Template) {}},
		{
			name:    "missing id",
			mutate:  func(tmpl *Template) { tmpl.ID = "" },
			wantErr: "template.id",
		},
		{
			name:    "bad theme colour",
			mutate:  func(tmpl *Template) { tmpl.Config.Theme.TextColor = "black" },
			wantErr: "template.config.theme.textcolor",
		},
		{
			name: "duplicate screen id",
			mutate: func(tmpl *Template) {
				tmpl.Config.Screens = append(tmpl.Config.Screens, document.Screen{ID: "main", Name: "Again", Components: []document.Node{}})
			},
			wantErr: "config.screens[1].id",
		},
		{
			name: "duplicate node id across screens",
			mutate: func(tmpl *Template) {
				tmpl.Config.Screens = append(tmpl.Config.Screens, document.Screen{ID: "other", Name: "Other", Components: []document.Node{
					{ID: "label", Kind: "Text", Category: document.CategoryBasic, Props: document.Props{}},
				}})
			},
			wantErr: "config.screens[1].components[0].id",
		},
		{
			name: "leaf with children",
			mutate: func(tmpl *Template) {
				tmpl.Config.Screens[0].Components[0].Children[0].Children = []document.Node{}
			},
			wantErr: "config.screens[0].components[0].children[0].children",
		},
		{
			name: "unknown kind",
			mutate: func(tmpl *Template) {
				tmpl.Config.Screens[0].Components[0].Kind = "Hologram"
			},
			wantErr: "config.screens[0].components[0].type",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tmpl := validTemplate()
			tt.mutate(&tmpl)

			err := Validate(tmpl, cat)
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			var validationErr *buildifyerrors.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.wantErr, validationErr.Field)
		})
	}
}

func TestAddRejectsDuplicateID(t *testing.T) {
	t.Parallel()

	g := newGallery(t)
	tmpl := validTemplate()
	tmpl.ID = "news-app"

	err := g.Add(tmpl)
	var validationErr *buildifyerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, 4, g.Len())
}

func TestLoadDir(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	custom := `id: todo-app
name: Todo
category: Productivity
config:
  id: todo-doc
  name: Todo
  screens:
    - id: list
      name: List
      components:
        - id: todo_list
          type: List
          category: layout
          props:
            items: [Buy milk, Walk dog]
        - id: column
          type: Column
          category: layout
          props: {}
          children: []
  theme:
    primaryColor: "#3b82f6"
    secondaryColor: "#64748b"
    backgroundColor: "#ffffff"
    textColor: "#1f2937"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "todo.yaml"), []byte(custom), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o600))

	g := newGallery(t)
	n, err := g.LoadDir(dir)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, 5, g.Len())
	assert.Contains(t, g.Categories(), "Productivity")

	todo, err := g.ByID("todo-app")
	require.NoError(t, err)
	column, ok := tree.FindByID(todo.Config.Screens[0].Components, "column")
	require.True(t, ok)
	assert.NotNil(t, column.Children)
	assert.Empty(t, column.Children)
}

func TestLoadDirReportsParseLine(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	broken := "id: broken\nname: [oops\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.yml"), []byte(broken), 0o600))

	_, err := newGallery(t).LoadDir(dir)
	var parseErr *buildifyerrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, filepath.Join(dir, "broken.yml"), parseErr.Path)
}

func TestLoadDirMissingIsIgnored(t *testing.T) {
	t.Parallel()

	n, err := newGallery(t).LoadDir(filepath.Join(t.TempDir(), "absent"))
	require.NoError(t, err)
	assert.Zero(t, n)
}
