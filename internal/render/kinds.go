package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/alexisbeaulieu97/buildify/internal/document"
)

const emptyContainerHint = "Drop components here"

func builtin() map[string]Func {
	return map[string]Func{
		"Text":          renderText,
		"Button":        renderButton,
		"Image":         renderImage,
		"Input":         renderInput,
		"Container":     renderContainer,
		"Row":           renderRow,
		"Column":        renderColumn,
		"List":          renderList,
		"Checkbox":      renderCheckbox,
		"Switch":        renderSwitch,
		"Video":         renderVideo,
		"Audio":         renderAudio,
		"Camera":        renderCamera,
		"NavigationBar": renderNavigationBar,
		"TabBar":        renderTabBar,
		"Chart":         renderChart,
		"Calendar":      renderCalendar,
		"Map":           renderMap,
	}
}

// cells converts a pixel measurement from the props into terminal cells.
func cells(px int) int {
	c := px / 8
	if c > 2 {
		return 2
	}
	if c < 0 {
		return 0
	}
	return c
}

func renderText(_ *Renderer, node document.Node, ctx Context) string {
	text := wordwrap.String(str(node.Props, "text", ""), ctx.Width)
	return lipgloss.NewStyle().
		Foreground(color(node.Props, "color")).
		Bold(bold(node.Props)).
		Width(ctx.Width).
		Align(align(node.Props)).
		Render(text)
}

func renderButton(_ *Renderer, node document.Node, ctx Context) string {
	width := inner(ctx.Width, 0)
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(color(node.Props, "backgroundColor")).
		Background(color(node.Props, "backgroundColor")).
		Foreground(color(node.Props, "textColor")).
		Bold(true).
		Width(width).
		Align(lipgloss.Center).
		Render(wordwrap.String(str(node.Props, "text", "Button"), width))
}

func renderImage(_ *Renderer, node document.Node, ctx Context) string {
	label := fmt.Sprintf("🖼  %s (%d×%d)", str(node.Props, "alt", "Image"), num(node.Props, "width", 0), num(node.Props, "height", 0))
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("245")).
		Width(inner(ctx.Width, 0)).
		Align(lipgloss.Center).
		Render(label)
}

func renderInput(_ *Renderer, node document.Node, ctx Context) string {
	return lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(color(node.Props, "borderColor")).
		Foreground(lipgloss.Color("245")).
		Width(inner(ctx.Width, 0)).
		Render(str(node.Props, "placeholder", ""))
}

func boxStyle(node document.Node, ctx Context) (lipgloss.Style, int) {
	padding := cells(num(node.Props, "padding", 0))
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(color(node.Props, "borderColor")).
		Padding(0, padding).
		Width(inner(ctx.Width, 0))
	return style, inner(ctx.Width, padding)
}

func renderContainer(r *Renderer, node document.Node, ctx Context) string {
	style, width := boxStyle(node, ctx)
	child := Context{Preview: ctx.Preview, Width: width}
	if len(node.Children) == 0 {
		return style.Render(placeholder(emptyContainerHint, child))
	}
	return style.Render(r.Children(node.Children, child))
}

func renderRow(r *Renderer, node document.Node, ctx Context) string {
	if len(node.Children) == 0 {
		return placeholder(emptyContainerHint, ctx)
	}
	return stackFor(node, horizontal).render(r, node.Children, ctx)
}

func renderColumn(r *Renderer, node document.Node, ctx Context) string {
	if len(node.Children) == 0 {
		return placeholder(emptyContainerHint, ctx)
	}
	return stackFor(node, vertical).render(r, node.Children, ctx)
}

func renderList(_ *Renderer, node document.Node, ctx Context) string {
	items := list(node.Props, "items")
	separator := flag(node.Props, "separator")
	rule := lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Render(strings.Repeat("─", ctx.Width))

	var lines []string
	for i, item := range items {
		if i > 0 && separator {
			lines = append(lines, rule)
		}
		lines = append(lines, wordwrap.String("• "+fmt.Sprint(item), ctx.Width))
	}
	return strings.Join(lines, "\n")
}

func renderCheckbox(_ *Renderer, node document.Node, _ Context) string {
	box := "[ ]"
	if flag(node.Props, "checked") {
		box = "[x]"
	}
	return lipgloss.NewStyle().Foreground(color(node.Props, "color")).Render(box) + " " + str(node.Props, "label", "")
}

func renderSwitch(_ *Renderer, node document.Node, _ Context) string {
	knob := lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Render("●○")
	if flag(node.Props, "enabled") {
		knob = lipgloss.NewStyle().Foreground(color(node.Props, "color")).Render("○●")
	}
	return "(" + knob + ") " + str(node.Props, "label", "")
}

// autoplay only applies in preview; the editor canvas never plays media.
func playbackLabel(node document.Node, ctx Context) string {
	var parts []string
	if flag(node.Props, "controls") {
		parts = append(parts, "controls")
	}
	if flag(node.Props, "autoPlay") && ctx.Preview {
		parts = append(parts, "autoplay")
	}
	return strings.Join(parts, " · ")
}

func mediaBox(icon, title string, node document.Node, ctx Context) string {
	lines := []string{icon + "  " + title}
	if w, h := num(node.Props, "width", 0), num(node.Props, "height", 0); w > 0 && h > 0 {
		lines = append(lines, fmt.Sprintf("%d×%d", w, h))
	}
	if extra := playbackLabel(node, ctx); extra != "" {
		lines = append(lines, extra)
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(inner(ctx.Width, 0)).
		Align(lipgloss.Center).
		Render(strings.Join(lines, "\n"))
}

func renderVideo(_ *Renderer, node document.Node, ctx Context) string {
	return mediaBox("▶", "Video Player", node, ctx)
}

func renderAudio(_ *Renderer, node document.Node, ctx Context) string {
	return mediaBox("♪", "Audio Player", node, ctx)
}

func renderCamera(_ *Renderer, node document.Node, ctx Context) string {
	return mediaBox("◉", "Camera ("+str(node.Props, "facing", "back")+")", node, ctx)
}

func renderNavigationBar(_ *Renderer, node document.Node, ctx Context) string {
	title := str(node.Props, "title", "")
	if flag(node.Props, "showBackButton") {
		title = "‹ " + title
	}
	return lipgloss.NewStyle().
		Background(color(node.Props, "backgroundColor")).
		Foreground(color(node.Props, "textColor")).
		Bold(true).
		Padding(0, 1).
		Width(ctx.Width).
		Render(title)
}

func renderTabBar(_ *Renderer, node document.Node, ctx Context) string {
	tabs := list(node.Props, "tabs")
	if len(tabs) == 0 {
		return placeholder("No tabs", ctx)
	}
	active := str(node.Props, "activeTab", "")
	width := ctx.Width / len(tabs)

	parts := make([]string, 0, len(tabs))
	for _, tab := range tabs {
		style := lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Foreground(color(node.Props, "inactiveColor"))
		if field(tab, "id") == active {
			style = style.Foreground(color(node.Props, "activeColor")).Bold(true)
		}
		parts = append(parts, style.Render(field(tab, "title")))
	}
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderTop(true).
		BorderForeground(lipgloss.Color("240")).
		Render(lipgloss.JoinHorizontal(lipgloss.Top, parts...))
}

func renderChart(_ *Renderer, node document.Node, ctx Context) string {
	data := list(node.Props, "data")
	header := fmt.Sprintf("Chart (%s)", str(node.Props, "type", "bar"))

	labelWidth, maxValue := 0, 0
	for _, item := range data {
		if l := lipgloss.Width(field(item, "label")); l > labelWidth {
			labelWidth = l
		}
		if v := fieldNum(item, "value"); v > maxValue {
			maxValue = v
		}
	}

	barSpace := ctx.Width - labelWidth - 6
	if barSpace < 1 {
		barSpace = 1
	}
	bar := lipgloss.NewStyle().Foreground(color(node.Props, "primaryColor"))

	lines := []string{lipgloss.NewStyle().Bold(true).Render(header)}
	for _, item := range data {
		value := fieldNum(item, "value")
		length := 0
		if maxValue > 0 {
			length = value * barSpace / maxValue
		}
		label := field(item, "label")
		lines = append(lines, fmt.Sprintf("%-*s %s %d", labelWidth, label, bar.Render(strings.Repeat("█", length)), value))
	}
	return strings.Join(lines, "\n")
}

func renderCalendar(_ *Renderer, node document.Node, _ Context) string {
	selected := 0
	if date, err := time.Parse(time.DateOnly, str(node.Props, "selectedDate", "")); err == nil {
		selected = date.Day()
	}
	highlight := lipgloss.NewStyle().Reverse(true).Foreground(color(node.Props, "primaryColor"))

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Render("Calendar"))
	b.WriteString("\n S  M  T  W  T  F  S")
	for day := 1; day <= 35; day++ {
		if (day-1)%7 == 0 {
			b.WriteString("\n")
		} else {
			b.WriteString(" ")
		}
		cell := "  "
		if day <= 31 {
			cell = fmt.Sprintf("%2d", day)
		}
		if day == selected {
			cell = highlight.Render(cell)
		}
		b.WriteString(cell)
	}
	return b.String()
}

func renderMap(_ *Renderer, node document.Node, ctx Context) string {
	return mediaBox("⌖", "Map View", node, ctx)
}
