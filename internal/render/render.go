// Package render draws component trees as terminal text. Each component kind
// has its own render func; kinds without one fall back to a placeholder.
package render

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/buildify/internal/document"
)

// DefaultWidth is the content width of the simulated device screen.
const DefaultWidth = 36

// Context carries per-call render settings down the tree.
type Context struct {
	Preview bool
	Width   int
}

// Func renders one node. Container funcs call Renderer.Children for their
// subtrees.
type Func func(r *Renderer, node document.Node, ctx Context) string

// Renderer maps component kinds to render funcs.
type Renderer struct {
	funcs map[string]Func
	width int
}

// New returns a Renderer with every built-in kind registered.
func New(width int) *Renderer {
	if width <= 0 {
		width = DefaultWidth
	}
	r := &Renderer{funcs: make(map[string]Func), width: width}
	for kind, fn := range builtin() {
		r.Register(kind, fn)
	}
	return r
}

// Register installs or replaces the render func for kind.
func (r *Renderer) Register(kind string, fn Func) {
	r.funcs[kind] = fn
}

// Kinds lists the kinds with a registered render func.
func (r *Renderer) Kinds() []string {
	kinds := make([]string, 0, len(r.funcs))
	for kind := range r.funcs {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)
	return kinds
}

// Width reports the content width used for top-level nodes.
func (r *Renderer) Width() int {
	return r.width
}

// Render draws node at the renderer's width.
func (r *Renderer) Render(node document.Node, isPreview bool) string {
	return r.render(node, Context{Preview: isPreview, Width: r.width})
}

// Forest draws nodes one below the other.
func (r *Renderer) Forest(nodes []document.Node, isPreview bool) string {
	return r.Children(nodes, Context{Preview: isPreview, Width: r.width})
}

// Children draws nodes stacked vertically within ctx.Width.
func (r *Renderer) Children(nodes []document.Node, ctx Context) string {
	return vstack().render(r, nodes, ctx)
}

func (r *Renderer) render(node document.Node, ctx Context) string {
	if ctx.Width < 4 {
		ctx.Width = 4
	}
	fn, ok := r.funcs[node.Kind]
	if !ok {
		return unknown(node, ctx)
	}
	return fn(r, node, ctx)
}

var dashedBorder = lipgloss.Border{
	Top: "╌", Bottom: "╌", Left: "┆", Right: "┆",
	TopLeft: "┌", TopRight: "┐", BottomLeft: "└", BottomRight: "┘",
}

func unknown(node document.Node, ctx Context) string {
	return lipgloss.NewStyle().
		Border(dashedBorder).
		Foreground(lipgloss.Color("245")).
		Width(ctx.Width - 2).
		Align(lipgloss.Center).
		Render(fmt.Sprintf("Unknown component: %s", node.Kind))
}

// inner returns the content width left inside a bordered, padded box.
func inner(width, padding int) int {
	w := width - 2 - 2*padding
	if w < 1 {
		return 1
	}
	return w
}

func placeholder(text string, ctx Context) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("245")).
		Width(ctx.Width).
		Render(text)
}
