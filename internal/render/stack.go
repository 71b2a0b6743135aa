package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/buildify/internal/document"
)

// direction is the main axis of a stack.
type direction int

const (
	vertical direction = iota
	horizontal
)

// justify positions children along the main axis of a horizontal stack.
type justify int

const (
	justifyStart justify = iota
	justifyCenter
	justifyEnd
	justifyBetween
)

// stack lays out rendered children along one axis with a fixed gap. For a
// horizontal stack crossAlign reads as top/center/bottom.
type stack struct {
	direction  direction
	gap        int
	crossAlign lipgloss.Position
	mainAlign  justify
}

func vstack() stack {
	return stack{direction: vertical, crossAlign: lipgloss.Left}
}

func hstack() stack {
	return stack{direction: horizontal, crossAlign: lipgloss.Center}
}

// stackFor reads gap and alignment from a layout node's props.
func stackFor(node document.Node, dir direction) stack {
	s := vstack()
	if dir == horizontal {
		s = hstack()
	}
	s.gap = cells(num(node.Props, "gap", 0))
	if pos, ok := crossPosition(str(node.Props, "alignItems", "")); ok {
		s.crossAlign = pos
	}
	s.mainAlign = mainAlignment(str(node.Props, "justifyContent", ""))
	return s
}

func crossPosition(value string) (lipgloss.Position, bool) {
	switch value {
	case "flex-start", "stretch":
		return lipgloss.Left, true
	case "center":
		return lipgloss.Center, true
	case "flex-end":
		return lipgloss.Right, true
	}
	return 0, false
}

func mainAlignment(value string) justify {
	switch value {
	case "center":
		return justifyCenter
	case "flex-end":
		return justifyEnd
	case "space-between":
		return justifyBetween
	}
	return justifyStart
}

// childWidth divides the available width among n children after the gaps.
func (s stack) childWidth(width, n int) int {
	if s.direction == vertical || n == 0 {
		return width
	}
	available := width - s.gap*(n-1)
	if available <= 0 {
		return 1
	}
	return available / n
}

func (s stack) render(r *Renderer, children []document.Node, ctx Context) string {
	child := Context{Preview: ctx.Preview, Width: s.childWidth(ctx.Width, len(children))}
	views := make([]string, 0, len(children))
	for _, c := range children {
		views = append(views, r.render(c, child))
	}
	if s.direction == horizontal {
		return s.joinHorizontal(views, ctx.Width)
	}
	return s.joinVertical(views)
}

func (s stack) joinVertical(views []string) string {
	if s.gap == 0 || len(views) < 2 {
		return lipgloss.JoinVertical(s.crossAlign, views...)
	}

	spacer := strings.Repeat("\n", s.gap-1)
	parts := make([]string, 0, len(views)*2-1)
	for i, view := range views {
		if i > 0 {
			parts = append(parts, spacer)
		}
		parts = append(parts, view)
	}
	return lipgloss.JoinVertical(s.crossAlign, parts...)
}

func (s stack) joinHorizontal(views []string, width int) string {
	used := s.gap * (len(views) - 1)
	for _, view := range views {
		used += lipgloss.Width(view)
	}
	extra := width - used
	if extra < 0 {
		extra = 0
	}

	gaps := make([]int, len(views))
	for i := 1; i < len(views); i++ {
		gaps[i] = s.gap
	}
	lead := 0
	switch s.mainAlign {
	case justifyCenter:
		lead = extra / 2
	case justifyEnd:
		lead = extra
	case justifyBetween:
		if n := len(views) - 1; n > 0 {
			for i := 1; i < len(views); i++ {
				gaps[i] += extra / n
			}
			gaps[len(views)-1] += extra % n
		}
	}

	parts := make([]string, 0, len(views)*2)
	if lead > 0 {
		parts = append(parts, strings.Repeat(" ", lead))
	}
	for i, view := range views {
		if gaps[i] > 0 {
			parts = append(parts, strings.Repeat(" ", gaps[i]))
		}
		parts = append(parts, view)
	}
	return lipgloss.JoinHorizontal(s.crossAlign, parts...)
}
