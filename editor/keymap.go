package editor

import (
	"reflect"

	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines the editor key bindings.
//
// Digits are not bindable: any single 0-9 rune types into the segment.
type KeyMap struct {
	Increment, Decrement       key.Binding
	IncrementTen, DecrementTen key.Binding

	Left, Right key.Binding
	Home, End   key.Binding

	NextSegment, PrevSegment key.Binding

	Backspace, Delete key.Binding

	Commit key.Binding
	Cancel key.Binding
	Clear  key.Binding

	Copy, Paste key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Increment:    key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "increment")),
		Decrement:    key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "decrement")),
		IncrementTen: key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "+10")),
		DecrementTen: key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "-10")),

		Left:  key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "left")),
		Right: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right")),
		Home:  key.NewBinding(key.WithKeys("home", "ctrl+a"), key.WithHelp("home", "first segment")),
		End:   key.NewBinding(key.WithKeys("end", "ctrl+e"), key.WithHelp("end", "last segment")),

		NextSegment: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next segment")),
		PrevSegment: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous segment")),

		Backspace: key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("backspace", "delete left")),
		Delete:    key.NewBinding(key.WithKeys("delete"), key.WithHelp("del", "delete right")),

		Commit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "apply")),
		Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "leave")),
		Clear:  key.NewBinding(key.WithKeys("ctrl+u"), key.WithHelp("ctrl+u", "clear")),

		Copy:  key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "copy")),
		Paste: key.NewBinding(key.WithKeys("ctrl+v"), key.WithHelp("ctrl+v", "paste")),
	}
}

// ShortHelp implements help.KeyMap.
func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Increment, km.Decrement, km.NextSegment, km.Commit, km.Clear}
}

// FullHelp implements help.KeyMap.
func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{km.Increment, km.Decrement, km.IncrementTen, km.DecrementTen},
		{km.Left, km.Right, km.Home, km.End, km.NextSegment, km.PrevSegment},
		{km.Backspace, km.Delete, km.Commit, km.Cancel, km.Clear},
		{km.Copy, km.Paste},
	}
}

func normalizeKeyMap(km KeyMap) KeyMap {
	if reflect.DeepEqual(km, KeyMap{}) {
		return DefaultKeyMap()
	}
	return km
}
