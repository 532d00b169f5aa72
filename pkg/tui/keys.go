package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
)

// keyMap holds every binding of the composer and annotator views
type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Add      key.Binding
	Select   key.Binding
	Edit     key.Binding
	Remove   key.Binding
	Copy     key.Binding
	Switch   key.Binding
	Help     key.Binding
	Quit     key.Binding
	Dismiss  key.Binding
	Ok       key.Binding
	Cancel   key.Binding
	Commit   key.Binding
	Choose   key.Binding
	Bind     key.Binding
	Reset    key.Binding
	NextPart key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "prev part"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next part"),
		),
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add step"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "pick variable"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit part"),
		),
		Remove: key.NewBinding(
			key.WithKeys("d", "delete"),
			key.WithHelp("d", "remove step"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy steps"),
		),
		Switch: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "switch view"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
		Ok: key.NewBinding(
			key.WithKeys("ctrl+o"),
			key.WithHelp("ctrl+o", "ok"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		Commit: key.NewBinding(
			key.WithKeys("enter", "tab"),
			key.WithHelp("enter/tab", "commit"),
		),
		Choose: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "add"),
		),
		Bind: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "bind"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset boxes"),
		),
		NextPart: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next part"),
		),
	}
}

// bindingHelp adapts a fixed set of bindings to help.KeyMap
type bindingHelp struct {
	short []key.Binding
	full  [][]key.Binding
}

func (b bindingHelp) ShortHelp() []key.Binding {
	return b.short
}

func (b bindingHelp) FullHelp() [][]key.Binding {
	if len(b.full) == 0 {
		return [][]key.Binding{b.short}
	}
	return b.full
}

func (k keyMap) mainHelp() bindingHelp {
	return bindingHelp{
		short: []key.Binding{k.Add, k.Select, k.Edit, k.Remove, k.Copy, k.Help, k.Quit},
		full: [][]key.Binding{
			{k.Up, k.Down, k.Left, k.Right},
			{k.Add, k.Select, k.Edit, k.Remove},
			{k.Copy, k.Switch, k.Dismiss},
			{k.Help, k.Quit},
		},
	}
}

func (k keyMap) suggestionHelp() bindingHelp {
	return bindingHelp{short: []key.Binding{k.Up, k.Down, k.Choose, k.Dismiss}}
}

func (k keyMap) pickerHelp() bindingHelp {
	return bindingHelp{short: []key.Binding{k.Up, k.Down, k.Bind, k.Ok, k.Cancel}}
}

func (k keyMap) editHelp() bindingHelp {
	return bindingHelp{short: []key.Binding{k.Commit, k.Cancel}}
}

func (k keyMap) annotatorHelp() bindingHelp {
	return bindingHelp{
		short: []key.Binding{k.Reset, k.Switch, k.Help, k.Quit},
		full: [][]key.Binding{
			{k.Reset, k.Switch},
			{k.Help, k.Quit},
		},
	}
}

// renderHelp draws the short help inline and the full help in a box
func renderHelp(h help.Model, bindings bindingHelp) string {
	view := h.View(bindings)
	if h.ShowAll {
		view = HelpBorderStyle.Padding(0, 1).Render(view)
	}
	return ContentPaddingStyle.Render(view)
}
