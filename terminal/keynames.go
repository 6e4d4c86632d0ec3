package terminal

// keyToName maps Key constants to canonical config string names
var keyToName = map[Key]string{
	KeyEscape:    "escape",
	KeyEnter:     "enter",
	KeyTab:       "tab",
	KeyBackspace: "backspace",
	KeyDelete:    "delete",

	KeyUp:       "up",
	KeyDown:     "down",
	KeyLeft:     "left",
	KeyRight:    "right",
	KeyHome:     "home",
	KeyEnd:      "end",
	KeyPageUp:   "page_up",
	KeyPageDown: "page_down",

	KeyCtrlA:            "ctrl_a",
	KeyCtrlB:            "ctrl_b",
	KeyCtrlC:            "ctrl_c",
	KeyCtrlD:            "ctrl_d",
	KeyCtrlE:            "ctrl_e",
	KeyCtrlF:            "ctrl_f",
	KeyCtrlG:            "ctrl_g",
	KeyCtrlK:            "ctrl_k",
	KeyCtrlL:            "ctrl_l",
	KeyCtrlN:            "ctrl_n",
	KeyCtrlO:            "ctrl_o",
	KeyCtrlP:            "ctrl_p",
	KeyCtrlQ:            "ctrl_q",
	KeyCtrlR:            "ctrl_r",
	KeyCtrlS:            "ctrl_s",
	KeyCtrlT:            "ctrl_t",
	KeyCtrlU:            "ctrl_u",
	KeyCtrlV:            "ctrl_v",
	KeyCtrlW:            "ctrl_w",
	KeyCtrlX:            "ctrl_x",
	KeyCtrlY:            "ctrl_y",
	KeyCtrlZ:            "ctrl_z",
	KeyCtrlSpace:        "ctrl_space",
	KeyCtrlBackslash:    "ctrl_backslash",
	KeyCtrlBracketRight: "ctrl_bracket_right",
	KeyCtrlCaret:        "ctrl_caret",
	KeyCtrlUnderscore:   "ctrl_underscore",
}

// nameToKey is the reverse lookup, built from keyToName
var nameToKey map[string]Key

func init() {
	nameToKey = make(map[string]Key, len(keyToName)+3)
	for k, v := range keyToName {
		nameToKey[v] = k
	}
	// Aliases
	nameToKey["esc"] = KeyEscape
	nameToKey["pgup"] = KeyPageUp
	nameToKey["pgdn"] = KeyPageDown
}

// String returns the canonical name, "rune" for KeyRune and "none" for unknown keys
func (k Key) String() string {
	if k == KeyRune {
		return "rune"
	}
	if name, ok := keyToName[k]; ok {
		return name
	}
	return "none"
}

// KeyByName resolves a canonical name to a Key constant
// Returns KeyNone and false if name is unknown
func KeyByName(name string) (Key, bool) {
	k, ok := nameToKey[name]
	return k, ok
}
