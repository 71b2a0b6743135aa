package editor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/alexisbeaulieu97/buildify/internal/document"
	"github.com/alexisbeaulieu97/buildify/internal/props"
)

const minPaneWidth = 18

// View renders the current model state.
func (m Model) View() string {
	if m.mode == ModeTemplates {
		return m.renderTemplates()
	}

	state := m.store.State()
	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	if m.errMsg != "" {
		b.WriteString(errorBannerStyle.Render("✗ " + m.errMsg))
		b.WriteString("\n")
	} else if m.status != "" {
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}

	if state.PreviewMode {
		b.WriteString(m.renderPreview())
	} else {
		b.WriteString(m.renderPanes())
	}
	b.WriteString("\n")

	if m.mode == ModeInput {
		b.WriteString(m.renderInput())
		b.WriteString("\n")
	}

	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m Model) renderHeader() string {
	state := m.store.State()
	parts := []string{
		m.styles.title.Render("Buildify"),
		state.Document.Name,
		mutedStyle.Render(state.Device.Label()),
	}
	if state.PreviewMode {
		parts = append(parts, m.styles.cursor.Render("PREVIEW"))
	}
	if m.building {
		parts = append(parts, m.spinner.View()+" building")
	}
	return strings.Join(parts, "  ")
}

func (m Model) paneWidth() int {
	frame := m.renderer.Width() + 2
	w := (m.width - frame - 3*4) / 3
	if w < minPaneWidth {
		return minPaneWidth
	}
	return w
}

func (m Model) renderPanes() string {
	width := m.paneWidth()
	box := func(focus Focus, content string) string {
		style := m.styles.pane
		if m.focus == focus {
			style = m.styles.focused
		}
		return style.Width(width).Render(content)
	}

	state := m.store.State()
	screen, ok := state.CurrentScreen()
	var frame string
	if ok {
		frame = m.renderer.DeviceFrame(state.Device, &screen, false)
	} else {
		frame = m.renderer.DeviceFrame(state.Device, nil, false)
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		box(FocusPalette, m.renderPalette()),
		box(FocusCanvas, m.renderCanvas(width)),
		box(FocusProperties, m.renderProperties(width)),
		" ",
		frame,
	)
}

func (m Model) renderPalette() string {
	lines := []string{m.styles.heading.Render("Components")}
	var current document.Category
	for i, entry := range m.palette {
		if entry.Category != current {
			current = entry.Category
			lines = append(lines, m.styles.category.Render(string(current)))
		}
		line := "  " + entry.Name
		if i == m.paletteCursor && m.focus == FocusPalette {
			line = m.styles.cursor.Render("› " + entry.Name)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderCanvas(width int) string {
	state := m.store.State()
	screen, ok := state.CurrentScreen()
	if !ok {
		return m.styles.heading.Render("Canvas") + "\n" + mutedStyle.Render("No screen selected")
	}

	_, idx, _ := state.Document.Screen(screen.ID)
	heading := fmt.Sprintf("%s (%d/%d)", screen.Name, idx+1, len(state.Document.Screens))
	lines := []string{m.styles.heading.Render(heading)}

	rows := m.canvasRows()
	if len(rows) == 0 {
		lines = append(lines, mutedStyle.Render(wordwrap.String("Drop components here", width)))
		return strings.Join(lines, "\n")
	}

	src, dragging := m.resolver.Active()
	for i, row := range rows {
		name := row.node.Name
		if name == "" {
			name = row.node.Kind
		}
		label := strings.Repeat("  ", row.depth) + name
		if dragging && src.NodeID == row.node.ID {
			label += " ⇅"
		}
		switch {
		case i == m.canvasCursor && m.focus == FocusCanvas:
			label = m.styles.cursor.Render("› " + label)
		case row.node.ID == state.SelectedComponentID:
			label = m.styles.selected.Render("  " + label)
		default:
			label = "  " + label
		}
		lines = append(lines, label)
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderProperties(width int) string {
	lines := []string{m.styles.heading.Render("Properties")}

	keys, node, ok := m.propKeys()
	if !ok {
		lines = append(lines, mutedStyle.Render(wordwrap.String("Select a component to edit its properties", width)))
		return strings.Join(lines, "\n")
	}

	lines = append(lines, node.Kind, mutedStyle.Render(node.ID), "")
	for i, k := range keys {
		ed := props.EditorFor(k, node.Props[k])
		text := wordwrap.String(fmt.Sprintf("%s: %s", ed.Label, props.Format(node.Props[k])), width-2)
		active := i == m.propCursor && m.focus == FocusProperties
		if active {
			text = m.styles.cursor.Render("› " + text)
		} else {
			text = "  " + text
		}
		lines = append(lines, text)
		if active && ed.Kind == props.List {
			lines = append(lines, m.renderItems(props.Items(node.Props[k]), width)...)
		}
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderItems(items []any, width int) []string {
	lines := make([]string, 0, len(items))
	for i, item := range items {
		text := wordwrap.String(fmt.Sprintf("%d. %s", i+1, props.ItemText(item)), width-6)
		if i == clampCursor(m.itemCursor, len(items)) {
			lines = append(lines, m.styles.cursor.Render("    › "+text))
		} else {
			lines = append(lines, "      "+text)
		}
	}
	return lines
}

func (m Model) renderPreview() string {
	state := m.store.State()
	screen, ok := state.CurrentScreen()
	if !ok {
		return m.renderer.DeviceFrame(state.Device, nil, true)
	}
	frame := m.renderer.DeviceFrame(state.Device, &screen, true)
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, frame)
}

func (m Model) renderInput() string {
	label := "App name"
	if m.inputFor == inputProperty {
		label = props.Label(m.editKey)
	}
	return m.styles.heading.Render(label) + "\n" + m.input.View()
}

func (m Model) renderTemplates() string {
	lines := []string{m.styles.title.Render("Templates"), ""}
	if m.gallery == nil || m.gallery.Len() == 0 {
		lines = append(lines, mutedStyle.Render("No templates available"))
		return strings.Join(lines, "\n")
	}

	var current string
	for i, tmpl := range m.gallery.All() {
		if tmpl.Category != current {
			current = tmpl.Category
			lines = append(lines, m.styles.category.Render(current))
		}
		line := fmt.Sprintf("%s  %s", tmpl.Name, mutedStyle.Render(tmpl.Description))
		if i == m.templateCursor {
			line = m.styles.cursor.Render("› ") + line
		} else {
			line = "  " + line
		}
		lines = append(lines, line)
	}
	lines = append(lines, "", mutedStyle.Render("enter apply • esc back"))
	return strings.Join(lines, "\n")
}
