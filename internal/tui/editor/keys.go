package editor

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up        key.Binding
	Down      key.Binding
	Focus     key.Binding
	Drop      key.Binding
	PickUp    key.Binding
	Cancel    key.Binding
	MoveUp    key.Binding
	MoveDown  key.Binding
	Remove    key.Binding
	Edit      key.Binding
	AddItem   key.Binding
	DropItem  key.Binding
	PrevItem  key.Binding
	NextItem  key.Binding
	Preview   key.Binding
	Device    key.Binding
	Templates key.Binding
	PrevScrn  key.Binding
	NextScrn  key.Binding
	Rename    key.Binding
	Build     key.Binding
	Save      key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("↓/j", "down"),
		),
		Focus: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next pane"),
		),
		Drop: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "add / drop"),
		),
		PickUp: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "pick up"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		MoveUp: key.NewBinding(
			key.WithKeys("K"),
			key.WithHelp("K", "move up"),
		),
		MoveDown: key.NewBinding(
			key.WithKeys("J"),
			key.WithHelp("J", "move down"),
		),
		Remove: key.NewBinding(
			key.WithKeys("x", "delete"),
			key.WithHelp("x", "remove"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit property"),
		),
		AddItem: key.NewBinding(
			key.WithKeys("+"),
			key.WithHelp("+", "add item"),
		),
		DropItem: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "remove item"),
		),
		PrevItem: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("←/h", "prev item"),
		),
		NextItem: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("→/l", "next item"),
		),
		Preview: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "preview"),
		),
		Device: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "device"),
		),
		Templates: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "templates"),
		),
		PrevScrn: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "prev screen"),
		),
		NextScrn: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "next screen"),
		),
		Rename: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "rename app"),
		),
		Build: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "build"),
		),
		Save: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "save"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Focus, k.Drop, k.Remove, k.Preview, k.Templates, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Focus, k.Drop, k.PickUp, k.Cancel},
		{k.MoveUp, k.MoveDown, k.Remove, k.Edit, k.AddItem, k.DropItem, k.PrevItem, k.NextItem},
		{k.Preview, k.Device, k.Templates, k.PrevScrn, k.NextScrn},
		{k.Rename, k.Build, k.Save, k.Help, k.Quit},
	}
}
