package editor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/buildify/internal/dnd"
	"github.com/alexisbeaulieu97/buildify/internal/document"
	"github.com/alexisbeaulieu97/buildify/internal/props"
	"github.com/alexisbeaulieu97/buildify/internal/store"
	"github.com/alexisbeaulieu97/buildify/internal/tree"
)

// Update handles incoming messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case spinner.TickMsg:
		if !m.building {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case BuildCompleteMsg:
		m.building = false
		m.status = fmt.Sprintf("%s build completed: %s", strings.ToUpper(msg.Result.Config.Platform), msg.Result.Path)
		return m, nil

	case BuildErrorMsg:
		m.building = false
		m.errMsg = msg.Err.Error()
		m.log.Error(msg.Err, "build failed")
		return m, nil

	case SavedMsg:
		m.status = fmt.Sprintf("Project saved (%d bytes)", msg.Bytes)
		return m, nil

	case ErrorMsg:
		m.errMsg = msg.Message
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	}

	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.mode {
	case ModeInput:
		return m.handleInputKeys(msg)
	case ModeTemplates:
		return m.handleTemplateKeys(msg)
	}

	m.errMsg = ""

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	if m.Dragging() {
		return m.handleDragKeys(msg), nil
	}

	switch {
	case key.Matches(msg, m.keys.Cancel):
		if m.store.State().PreviewMode {
			m.store.Dispatch(store.TogglePreviewMode{})
		}
		return m, nil

	case key.Matches(msg, m.keys.Preview):
		m.store.Dispatch(store.TogglePreviewMode{})
		return m, nil

	case key.Matches(msg, m.keys.Device):
		m.store.Dispatch(store.SetDeviceType{Device: m.store.State().Device.Other()})
		return m, nil

	case key.Matches(msg, m.keys.PrevScrn):
		return m.switchScreen(-1), nil

	case key.Matches(msg, m.keys.NextScrn):
		return m.switchScreen(1), nil
	}

	if m.store.State().PreviewMode {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Templates):
		m.mode = ModeTemplates
		m.templateCursor = 0
		return m, nil

	case key.Matches(msg, m.keys.Rename):
		return m.startInput(inputRename, "", m.store.State().Document.Name), nil

	case key.Matches(msg, m.keys.Build):
		if m.building || m.builder == nil {
			return m, nil
		}
		m.building = true
		m.status = "Building..."
		state := m.store.State()
		return m, tea.Batch(m.spinner.Tick, buildCmd(m.ctx, m.builder, state.Document, state.Device))

	case key.Matches(msg, m.keys.Save):
		if m.builder == nil {
			return m, nil
		}
		return m, saveCmd(m.builder, m.store.State().Document)

	case key.Matches(msg, m.keys.Focus):
		m.focus = m.focus.next()
		return m, nil

	case key.Matches(msg, m.keys.Remove):
		return m.removeSelected(), nil
	}

	switch m.focus {
	case FocusPalette:
		return m.handlePaletteKeys(msg), nil
	case FocusCanvas:
		return m.handleCanvasKeys(msg), nil
	default:
		return m.handlePropertyKeys(msg), nil
	}
}

// handleDragKeys keeps the document untouched while a gesture is in
// flight: only cursor movement, pane focus, drop and cancel are honoured.
func (m Model) handleDragKeys(msg tea.KeyMsg) Model {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.resolver.Cancel()
		m.status = "Drag cancelled"
		return m
	case key.Matches(msg, m.keys.Focus):
		m.focus = m.focus.next()
		return m
	case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down), key.Matches(msg, m.keys.Drop):
	default:
		return m
	}

	switch m.focus {
	case FocusPalette:
		return m.handlePaletteKeys(msg)
	case FocusCanvas:
		return m.handleCanvasKeys(msg)
	default:
		if key.Matches(msg, m.keys.Drop) {
			return m
		}
		return m.handlePropertyKeys(msg)
	}
}

func (m Model) handlePaletteKeys(msg tea.KeyMsg) Model {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.paletteCursor = clampCursor(m.paletteCursor-1, len(m.palette))
	case key.Matches(msg, m.keys.Down):
		m.paletteCursor = clampCursor(m.paletteCursor+1, len(m.palette))
	case key.Matches(msg, m.keys.Drop):
		if !m.Dragging() {
			m = m.pickUp(dnd.CatalogItem(m.paletteKind()))
		}
		return m.drop(dnd.CanvasRoot())
	case key.Matches(msg, m.keys.PickUp):
		m = m.pickUp(dnd.CatalogItem(m.paletteKind()))
		if m.Dragging() {
			m.focus = FocusCanvas
		}
	}
	return m
}

func (m Model) handleCanvasKeys(msg tea.KeyMsg) Model {
	rows := m.canvasRows()

	switch {
	case key.Matches(msg, m.keys.Up):
		return m.moveCanvasCursor(m.canvasCursor-1, rows)
	case key.Matches(msg, m.keys.Down):
		return m.moveCanvasCursor(m.canvasCursor+1, rows)

	case key.Matches(msg, m.keys.PickUp):
		if len(rows) == 0 {
			return m
		}
		return m.pickUp(dnd.TreeNode(rows[m.canvasCursor].node.ID))

	case key.Matches(msg, m.keys.Drop):
		src, dragging := m.resolver.Active()
		if !dragging {
			return m
		}
		if src.Kind == dnd.SourceCatalogItem || len(rows) == 0 {
			return m.drop(dnd.CanvasRoot())
		}
		return m.drop(dnd.OnNode(rows[m.canvasCursor].node.ID))

	case key.Matches(msg, m.keys.MoveUp):
		return m.nudge(rows, -1)
	case key.Matches(msg, m.keys.MoveDown):
		return m.nudge(rows, 1)
	}
	return m
}

func (m Model) handlePropertyKeys(msg tea.KeyMsg) Model {
	keys, node, ok := m.propKeys()
	if !ok || len(keys) == 0 {
		return m
	}

	m.propCursor = clampCursor(m.propCursor, len(keys))
	k := keys[m.propCursor]
	items := props.Items(node.Props[k])

	switch {
	case key.Matches(msg, m.keys.Up):
		m.propCursor = clampCursor(m.propCursor-1, len(keys))
		m.itemCursor = 0
	case key.Matches(msg, m.keys.Down):
		m.propCursor = clampCursor(m.propCursor+1, len(keys))
		m.itemCursor = 0
	case key.Matches(msg, m.keys.Edit), key.Matches(msg, m.keys.Drop):
		return m.editProperty(node, k)
	case key.Matches(msg, m.keys.PrevItem):
		m.itemCursor = clampCursor(m.itemCursor-1, len(items))
	case key.Matches(msg, m.keys.NextItem):
		m.itemCursor = clampCursor(m.itemCursor+1, len(items))
	case key.Matches(msg, m.keys.AddItem):
		if props.EditorFor(k, node.Props[k]).Kind == props.List {
			m.updateProp(node.ID, k, props.AppendItem(node.Props[k], "New item"))
			m.itemCursor = len(items)
		}
	case key.Matches(msg, m.keys.DropItem):
		if len(items) > 0 {
			idx := clampCursor(m.itemCursor, len(items))
			m.updateProp(node.ID, k, props.RemoveItem(items, idx))
			m.itemCursor = clampCursor(idx, len(items)-1)
		}
	}
	return m
}

func (m Model) handleInputKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.mode = ModeEdit
		m.input.Blur()
		return m, nil
	case tea.KeyEnter:
		return m.commitInput(), nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleTemplateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var count int
	if m.gallery != nil {
		count = m.gallery.Len()
	}

	switch {
	case key.Matches(msg, m.keys.Quit) && msg.String() == "ctrl+c":
		return m, tea.Quit
	case key.Matches(msg, m.keys.Cancel), key.Matches(msg, m.keys.Templates), key.Matches(msg, m.keys.Quit):
		m.mode = ModeEdit
	case key.Matches(msg, m.keys.Up):
		m.templateCursor = clampCursor(m.templateCursor-1, count)
	case key.Matches(msg, m.keys.Down):
		m.templateCursor = clampCursor(m.templateCursor+1, count)
	case key.Matches(msg, m.keys.Drop):
		if count == 0 {
			return m, nil
		}
		tmpl := m.gallery.All()[m.templateCursor]
		m.store.Dispatch(store.ReplaceDocument{Document: tmpl.Document()})
		m.mode = ModeEdit
		m.canvasCursor, m.propCursor, m.itemCursor = 0, 0, 0
		m.status = "Applied template " + tmpl.Name
		m.log.WithFields(map[string]any{"template": tmpl.ID}).Info("template applied")
	}
	return m, nil
}

func (m Model) paletteKind() string {
	if len(m.palette) == 0 {
		return ""
	}
	return m.palette[clampCursor(m.paletteCursor, len(m.palette))].Kind
}

func (m Model) pickUp(src dnd.Source) Model {
	if err := m.resolver.Begin(src); err != nil {
		m.errMsg = err.Error()
		return m
	}
	m.status = fmt.Sprintf("Dragging %s: enter to drop, esc to cancel", src)
	return m
}

func (m Model) drop(target dnd.Target) Model {
	intent, err := m.resolver.Drop(target)
	if err != nil {
		m.errMsg = err.Error()
		m.status = ""
		return m
	}

	switch in := intent.(type) {
	case store.AddComponent:
		m.store.Dispatch(store.SelectComponent{ComponentID: in.Node.ID})
		m.focusRow(in.Node.ID)
		m.status = "Added " + in.Node.Name
	case store.ReorderComponents:
		if sel := m.store.State().SelectedComponentID; sel != "" {
			m.focusRow(sel)
		}
		m.status = fmt.Sprintf("Reordered %d components", len(in.Order))
	default:
		m.status = "Nothing to drop there"
	}
	return m
}

// nudge moves the node under the cursor one slot among its top-level
// siblings by dragging it onto the neighbour.
func (m Model) nudge(rows []canvasRow, delta int) Model {
	if len(rows) == 0 || m.Dragging() {
		return m
	}
	screen, ok := m.store.CurrentScreen()
	if !ok {
		return m
	}

	id := rows[m.canvasCursor].node.ID
	idx := tree.IndexOf(screen.Components, id)
	if idx < 0 {
		m.status = "Only top-level components can be reordered"
		return m
	}
	target := idx + delta
	if target < 0 || target >= len(screen.Components) {
		return m
	}

	m.store.Dispatch(store.SelectComponent{ComponentID: id})
	m = m.pickUp(dnd.TreeNode(id))
	return m.drop(dnd.OnNode(screen.Components[target].ID))
}

func (m Model) moveCanvasCursor(cursor int, rows []canvasRow) Model {
	m.canvasCursor = clampCursor(cursor, len(rows))
	// the store is read-only mid-drag; selection follows on the next move
	if len(rows) == 0 || m.Dragging() {
		return m
	}
	m.store.Dispatch(store.SelectComponent{ComponentID: rows[m.canvasCursor].node.ID})
	m.propCursor, m.itemCursor = 0, 0
	return m
}

func (m *Model) focusRow(id string) {
	for i, row := range m.canvasRows() {
		if row.node.ID == id {
			m.canvasCursor = i
			return
		}
	}
}

func (m Model) removeSelected() Model {
	id := m.store.State().SelectedComponentID
	if id == "" {
		return m
	}
	m.store.Dispatch(store.RemoveComponent{ComponentID: id})
	m.canvasCursor = clampCursor(m.canvasCursor, len(m.canvasRows()))
	m.propCursor, m.itemCursor = 0, 0
	m.status = "Removed " + id
	return m
}

func (m Model) switchScreen(delta int) Model {
	state := m.store.State()
	screens := state.Document.Screens
	if len(screens) == 0 {
		return m
	}
	_, idx, ok := state.Document.Screen(state.SelectedScreenID)
	if !ok {
		idx = 0
	}
	next := (idx + delta + len(screens)) % len(screens)
	m.store.Dispatch(store.SelectScreen{ScreenID: screens[next].ID})
	m.canvasCursor, m.propCursor, m.itemCursor = 0, 0, 0
	return m
}

func (m Model) editProperty(node document.Node, k string) Model {
	value := node.Props[k]
	ed := props.EditorFor(k, value)

	switch ed.Kind {
	case props.Toggle:
		v, _ := props.Parse(ed, value, "")
		m.updateProp(node.ID, k, v)
		return m
	case props.Select:
		current, _ := value.(string)
		next := ed.Options[0]
		for i, option := range ed.Options {
			if option == current {
				next = ed.Options[(i+1)%len(ed.Options)]
				break
			}
		}
		m.updateProp(node.ID, k, next)
		return m
	case props.List:
		for _, item := range props.Items(value) {
			if _, ok := item.(string); !ok {
				m.errMsg = ed.Label + " holds structured items; use + and - to change it"
				return m
			}
		}
	}

	return m.startInput(inputProperty, k, props.Format(value))
}

func (m Model) updateProp(id, k string, value any) {
	m.store.Dispatch(store.UpdateComponentProps{ComponentID: id, Props: document.Props{k: value}})
}

func (m Model) startInput(purpose inputPurpose, k, initial string) Model {
	m.mode = ModeInput
	m.inputFor = purpose
	m.editKey = k
	m.input.SetValue(initial)
	m.input.CursorEnd()
	m.input.Focus()
	return m
}

func (m Model) commitInput() Model {
	value := m.input.Value()
	m.mode = ModeEdit
	m.input.Blur()

	if m.inputFor == inputRename {
		if name := strings.TrimSpace(value); name != "" {
			m.store.Dispatch(store.RenameApp{Name: name})
			m.status = "Renamed app to " + name
		}
		return m
	}

	node, ok := m.store.State().SelectedComponent()
	if !ok {
		return m
	}
	current := node.Props[m.editKey]
	parsed, err := props.Parse(props.EditorFor(m.editKey, current), current, value)
	if err != nil {
		m.errMsg = err.Error()
		return m
	}
	m.updateProp(node.ID, m.editKey, parsed)
	return m
}
