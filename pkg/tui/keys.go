package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all key bindings for the TUI.
type KeyMap struct {
	Up           key.Binding
	Down         key.Binding
	Tab          key.Binding
	PrevDay      key.Binding
	NextDay      key.Binding
	PrevWeek     key.Binding
	NextWeek     key.Binding
	SetTarget    key.Binding
	ResetTarget  key.Binding
	InlineEdit   key.Binding
	ExternalEdit key.Binding
	Reload       key.Binding
	Sync         key.Binding
	Help         key.Binding
	Quit         key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "switch pane"),
		),
		PrevDay: key.NewBinding(
			key.WithKeys("[", "h", "left"),
			key.WithHelp("[", "target -1 business day"),
		),
		NextDay: key.NewBinding(
			key.WithKeys("]", "l", "right"),
			key.WithHelp("]", "target +1 business day"),
		),
		PrevWeek: key.NewBinding(
			key.WithKeys("{"),
			key.WithHelp("{", "target -1 week"),
		),
		NextWeek: key.NewBinding(
			key.WithKeys("}"),
			key.WithHelp("}", "target +1 week"),
		),
		SetTarget: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "set target date"),
		),
		ResetTarget: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "reset target"),
		),
		InlineEdit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit note"),
		),
		ExternalEdit: key.NewBinding(
			key.WithKeys("E"),
			key.WithHelp("E", "$EDITOR"),
		),
		Reload: key.NewBinding(
			key.WithKeys("R"),
			key.WithHelp("R", "reload"),
		),
		Sync: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "git sync"),
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

// ShortHelp returns the footer help text.
func (k KeyMap) ShortHelp() string {
	return "↑↓ nav  tab pane  [ ] day  { } week  t target  e note  E $EDITOR  ? help"
}

// FullHelp returns all key bindings for the help modal.
func (k KeyMap) FullHelp() [][]string {
	return [][]string{
		{"↑/k", "Previous stage"},
		{"↓/j", "Next stage"},
		{"tab", "Switch pane (stages / details)"},
		{"[ / ←", "Move target back one business day"},
		{"] / →", "Move target forward one business day"},
		{"{", "Move target back one week"},
		{"}", "Move target forward one week"},
		{"t", "Type a target date (YYYY-MM-DD)"},
		{"T", "Reset target to the default"},
		{"e", "Edit the stage note inline"},
		{"E", "Edit the stage file in $EDITOR"},
		{"R", "Reload catalog from disk"},
		{"s", "Git sync"},
		{"?", "Toggle help"},
		{"q", "Quit"},
	}
}
