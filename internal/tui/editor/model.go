// Package editor is the interactive terminal mockup editor. Keyboard gestures
// are turned into drag gestures for the dnd resolver, or into store intents.
package editor

import (
	"context"
	"sort"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/buildify/internal/build"
	"github.com/alexisbeaulieu97/buildify/internal/catalog"
	"github.com/alexisbeaulieu97/buildify/internal/dnd"
	"github.com/alexisbeaulieu97/buildify/internal/document"
	"github.com/alexisbeaulieu97/buildify/internal/logger"
	"github.com/alexisbeaulieu97/buildify/internal/render"
	"github.com/alexisbeaulieu97/buildify/internal/store"
	"github.com/alexisbeaulieu97/buildify/internal/templates"
	"github.com/alexisbeaulieu97/buildify/internal/tree"
)

// Deps are the collaborators the editor drives.
type Deps struct {
	Store    *store.Store
	Catalog  *catalog.Catalog
	Gallery  *templates.Gallery
	Renderer *render.Renderer
	Builder  *build.Builder
	Logger   *logger.Logger
	Context  context.Context
	// Accent is the #rrggbb colour used for titles and the focused pane.
	Accent string
}

// Model is the Bubble Tea model of the editor.
type Model struct {
	store    *store.Store
	resolver *dnd.Resolver
	catalog  *catalog.Catalog
	gallery  *templates.Gallery
	renderer *render.Renderer
	builder  *build.Builder
	log      *logger.Logger
	ctx      context.Context

	keys    keyMap
	styles  styles
	help    help.Model
	input   textinput.Model
	spinner spinner.Model

	palette []catalog.Entry

	mode           Mode
	focus          Focus
	paletteCursor  int
	canvasCursor   int
	propCursor     int
	itemCursor     int
	templateCursor int

	inputFor inputPurpose
	editKey  string

	building bool
	status   string
	errMsg   string

	width  int
	height int
}

// canvasRow is one line of the canvas outline.
type canvasRow struct {
	node  document.Node
	depth int
}

// NewModel wires an editor around deps.
func NewModel(deps Deps) Model {
	ctx := deps.Context
	if ctx == nil {
		ctx = context.Background()
	}

	ti := textinput.New()
	ti.CharLimit = 256
	ti.Prompt = "› "

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle

	m := Model{
		store:    deps.Store,
		resolver: dnd.NewResolver(deps.Store, deps.Catalog, deps.Logger),
		catalog:  deps.Catalog,
		gallery:  deps.Gallery,
		renderer: deps.Renderer,
		builder:  deps.Builder,
		log:      deps.Logger.With("component", "tui"),
		ctx:      ctx,
		keys:     defaultKeyMap(),
		styles:   newStyles(deps.Accent),
		help:     help.New(),
		input:    ti,
		spinner:  s,
		width:    120,
		height:   40,
	}
	if m.renderer == nil {
		m.renderer = render.New(render.DefaultWidth)
	}

	for _, category := range deps.Catalog.Categories() {
		m.palette = append(m.palette, deps.Catalog.ByCategory(category)...)
	}
	return m
}

// Init starts the program.
func (m Model) Init() tea.Cmd {
	return nil
}

// State exposes the store state the editor is showing.
func (m Model) State() store.State {
	return m.store.State()
}

// Mode reports the active mode.
func (m Model) Mode() Mode {
	return m.mode
}

// Focus reports the focused pane.
func (m Model) Focus() Focus {
	return m.focus
}

// Dragging reports whether a drag gesture is in progress.
func (m Model) Dragging() bool {
	_, active := m.resolver.Active()
	return active
}

func (m Model) canvasRows() []canvasRow {
	screen, ok := m.store.CurrentScreen()
	if !ok {
		return nil
	}
	var rows []canvasRow
	tree.Walk(screen.Components, func(node document.Node, depth int) bool {
		rows = append(rows, canvasRow{node: node, depth: depth})
		return true
	})
	return rows
}

// propKeys lists the selected node's property keys in a stable order.
func (m Model) propKeys() ([]string, document.Node, bool) {
	node, ok := m.store.State().SelectedComponent()
	if !ok {
		return nil, document.Node{}, false
	}
	keys := make([]string, 0, len(node.Props))
	for k := range node.Props {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, node, true
}

func clampCursor(cursor, n int) int {
	if n == 0 || cursor < 0 {
		return 0
	}
	if cursor >= n {
		return n - 1
	}
	return cursor
}
