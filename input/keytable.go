package input

import "github.com/lixenwraith/vi-reader/terminal"

// KeyTable maps decoded keys to actions
// Named keys (arrows, Ctrl+*) and printable runes are kept apart
type KeyTable struct {
	Keys  map[terminal.Key]Action
	Runes map[rune]Action
}

// DefaultKeyTable returns the default bindings
// Printable input is inert: the viewer has no text insertion
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		Keys: map[terminal.Key]Action{
			terminal.KeyCtrlQ:    ActionQuit,
			terminal.KeyLeft:     ActionMoveLeft,
			terminal.KeyRight:    ActionMoveRight,
			terminal.KeyUp:       ActionMoveUp,
			terminal.KeyDown:     ActionMoveDown,
			terminal.KeyHome:     ActionLineStart,
			terminal.KeyEnd:      ActionLineEnd,
			terminal.KeyPageUp:   ActionPageUp,
			terminal.KeyPageDown: ActionPageDown,
		},
		Runes: map[rune]Action{},
	}
}

// Lookup returns the action bound to ev, ActionNone when unbound
func (kt *KeyTable) Lookup(ev terminal.Event) Action {
	if ev.Key == terminal.KeyRune {
		return kt.Runes[ev.Rune]
	}
	return kt.Keys[ev.Key]
}

// Clone returns a deep copy of the KeyTable with independent maps
func (kt *KeyTable) Clone() *KeyTable {
	c := &KeyTable{
		Keys:  make(map[terminal.Key]Action, len(kt.Keys)),
		Runes: make(map[rune]Action, len(kt.Runes)),
	}
	for k, v := range kt.Keys {
		c.Keys[k] = v
	}
	for r, v := range kt.Runes {
		c.Runes[r] = v
	}
	return c
}
