package input

import "sort"

// Action is what the session does in response to a key
type Action uint8

const (
	ActionNone Action = iota
	ActionQuit
	ActionMoveLeft
	ActionMoveRight
	ActionMoveUp
	ActionMoveDown
	ActionLineStart
	ActionLineEnd
	ActionPageUp
	ActionPageDown
)

// actionRegistry maps canonical action names to actions
// Used by the keymap loader to resolve TOML action strings
var actionRegistry = map[string]Action{
	// Unbind sentinel
	"none": ActionNone,

	"quit": ActionQuit,

	"move_left":  ActionMoveLeft,
	"move_right": ActionMoveRight,
	"move_up":    ActionMoveUp,
	"move_down":  ActionMoveDown,

	"line_start": ActionLineStart,
	"line_end":   ActionLineEnd,

	"page_up":   ActionPageUp,
	"page_down": ActionPageDown,
}

// actionToName is the reverse lookup, built from actionRegistry
var actionToName map[Action]string

func init() {
	actionToName = make(map[Action]string, len(actionRegistry))
	for name, a := range actionRegistry {
		actionToName[a] = name
	}
}

func (a Action) String() string {
	if name, ok := actionToName[a]; ok {
		return name
	}
	return "unknown"
}

// ActionByName resolves a canonical action name
// Returns ActionNone and false if name is unknown
func ActionByName(name string) (Action, bool) {
	a, ok := actionRegistry[name]
	return a, ok
}

// ActionNames returns all registered action names, sorted
func ActionNames() []string {
	names := make([]string, 0, len(actionRegistry))
	for name := range actionRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
