package studio

import (
	"github.com/charmbracelet/bubbles/key"
)

type keyMap struct {
	Quit key.Binding
	Help key.Binding

	Animation key.Binding
	Align     key.Binding
	Font      key.Binding
	Weight    key.Binding
	Direction key.Binding
	Gradient  key.Binding
	Shadow    key.Binding
	Outline   key.Binding
	Bigger    key.Binding
	Smaller   key.Binding
	AddStop   key.Binding
	DropStop  key.Binding
	EditText  key.Binding
	Highlight key.Binding
	DropMark  key.Binding
	Replay    key.Binding

	Reset   key.Binding
	Save    key.Binding
	Library key.Binding
	Next    key.Binding
	Export  key.Binding
	Theme   key.Binding

	Back     key.Binding
	Dismiss  key.Binding
	NextTab  key.Binding
	PrevTab  key.Binding
	Copy     key.Binding
	Download key.Binding
	Up       key.Binding
	Down     key.Binding
	Load     key.Binding
	Delete   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Help: key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),

		Animation: key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "animation")),
		Align:     key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "alignment")),
		Font:      key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "font family")),
		Weight:    key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "font weight")),
		Direction: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "gradient direction")),
		Gradient:  key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "toggle gradient")),
		Shadow:    key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "toggle shadow")),
		Outline:   key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "toggle outline")),
		Bigger:    key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "larger")),
		Smaller:   key.NewBinding(key.WithKeys("-", "_"), key.WithHelp("-", "smaller")),
		AddStop:   key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "add gradient stop")),
		DropStop:  key.NewBinding(key.WithKeys("C"), key.WithHelp("C", "remove last stop")),
		EditText:  key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "edit text")),
		Highlight: key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "add highlight")),
		DropMark:  key.NewBinding(key.WithKeys("H"), key.WithHelp("H", "remove last highlight")),
		Replay:    key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "replay typewriter")),

		Reset:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
		Save:    key.NewBinding(key.WithKeys("ctrl+s", "S"), key.WithHelp("S", "save")),
		Library: key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "saved headlines")),
		Next:    key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "load next saved")),
		Export:  key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "export")),
		Theme:   key.NewBinding(key.WithKeys("T"), key.WithHelp("T", "theme")),

		Back:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Dismiss:  key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "dismiss error")),
		NextTab:  key.NewBinding(key.WithKeys("right", "tab"), key.WithHelp("→", "next tab")),
		PrevTab:  key.NewBinding(key.WithKeys("left", "shift+tab"), key.WithHelp("←", "previous tab")),
		Copy:     key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy")),
		Download: key.NewBinding(key.WithKeys("D"), key.WithHelp("D", "download")),
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓", "down")),
		Load:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "load")),
		Delete:   key.NewBinding(key.WithKeys("X"), key.WithHelp("X", "delete")),
	}
}

// editorHelp lists the editor bindings in help order.
func (k keyMap) editorHelp() []key.Binding {
	return []key.Binding{
		k.EditText, k.Highlight, k.DropMark, k.Animation, k.Replay, k.Align, k.Font, k.Weight,
		k.Bigger, k.Smaller, k.Gradient, k.Direction, k.AddStop, k.DropStop, k.Shadow, k.Outline,
		k.Save, k.Next, k.Library, k.Export, k.Reset, k.Theme, k.Help, k.Quit,
	}
}

func (k keyMap) exportHelp() []key.Binding {
	return []key.Binding{k.PrevTab, k.NextTab, k.Up, k.Down, k.Copy, k.Download, k.Back}
}

func (k keyMap) libraryHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Load, k.Delete, k.Back}
}
