package main

import (
	"github.com/charmbracelet/bubbles/key"
)

type Keymap struct {
	Quit          key.Binding
	MarketPanel   key.Binding
	NewsPanel     key.Binding
	RowDown       key.Binding
	RowUp         key.Binding
	JumpTop       key.Binding
	JumpBottom    key.Binding
	Filter        key.Binding
	ClearFilter   key.Binding
	Search        key.Binding
	JumpToRow     key.Binding
	MarkMode      key.Binding
	ShowMarksOnly key.Binding
	NextMark      key.Binding
	PrevMark      key.Binding
	CopyRow       key.Binding
	ExportToFile  key.Binding
	SaveToFile    key.Binding
	OpenHelp      key.Binding
}

var Keys = Keymap{
	Quit: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q/esc", "quit"),
	),
	MarketPanel: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←/h", "market data panel"),
	),
	NewsPanel: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→/l", "latest news panel"),
	),
	RowDown: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "scroll down"),
	),
	RowUp: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "scroll up"),
	),
	JumpTop: key.NewBinding(
		key.WithKeys("g", "home"),
		key.WithHelp("g/home", "jump to top"),
	),
	JumpBottom: key.NewBinding(
		key.WithKeys("G", "end"),
		key.WithHelp("G/end", "jump to bottom"),
	),
	Filter: key.NewBinding(
		key.WithKeys("f"),
		key.WithHelp("f", "filter quotes (regex)"),
	),
	ClearFilter: key.NewBinding(
		key.WithKeys("F"),
		key.WithHelp("F", "clear filter"),
	),
	Search: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "search quotes"),
	),
	JumpToRow: key.NewBinding(
		key.WithKeys(":"),
		key.WithHelp(":", "jump to row"),
	),
	MarkMode: key.NewBinding(
		key.WithKeys("m"),
		key.WithHelp("m", "mark focused quote"),
	),
	ShowMarksOnly: key.NewBinding(
		key.WithKeys("M"),
		key.WithHelp("M", "toggle show only marked"),
	),
	NextMark: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "next mark"),
	),
	PrevMark: key.NewBinding(
		key.WithKeys("N"),
		key.WithHelp("N", "previous mark"),
	),
	CopyRow: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy focused quote"),
	),
	ExportToFile: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "export quotes to CSV"),
	),
	SaveToFile: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "save snapshot"),
	),
	OpenHelp: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help / keys"),
	),
}

func (k Keymap) Legend() []key.Binding {
	return []key.Binding{
		k.Quit,
		k.MarketPanel,
		k.NewsPanel,
		k.RowDown,
		k.RowUp,
		k.JumpTop,
		k.JumpBottom,
		k.Filter,
		k.ClearFilter,
		k.Search,
		k.JumpToRow,
		k.MarkMode,
		k.ShowMarksOnly,
		k.NextMark,
		k.PrevMark,
		k.CopyRow,
		k.ExportToFile,
		k.SaveToFile,
		k.OpenHelp,
	}
}
