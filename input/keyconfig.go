package input

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/vi-reader/terminal"
)

// Rune aliases for keys that can't be bare single-char TOML keys
var runeAliases = map[string]rune{
	"space":     ' ',
	"backslash": '\\',
}

// ParseBindings resolves a [keys] table (key name -> action name) into a sparse override table
// Returns error on unknown key names or action names
func ParseBindings(bindings map[string]string) (*KeyTable, error) {
	kt := &KeyTable{
		Keys:  make(map[terminal.Key]Action),
		Runes: make(map[rune]Action),
	}

	for keyStr, actionName := range bindings {
		action, err := resolveAction(actionName)
		if err != nil {
			return nil, fmt.Errorf("[keys] key %q: %w", keyStr, err)
		}

		if k, ok := terminal.KeyByName(strings.ToLower(keyStr)); ok {
			kt.Keys[k] = action
			continue
		}

		r, err := resolveRune(keyStr)
		if err != nil {
			return nil, fmt.Errorf("[keys] %w", err)
		}
		kt.Runes[r] = action
	}

	return kt, nil
}

// resolveRune converts a TOML key string to a printable rune
// Accepts single characters and named aliases
func resolveRune(s string) (rune, error) {
	// Named alias
	if r, ok := runeAliases[strings.ToLower(s)]; ok {
		return r, nil
	}

	// Single printable ASCII character, the decoder emits one rune per byte
	if len(s) == 1 && s[0] >= 0x20 && s[0] < 0x7f {
		return rune(s[0]), nil
	}

	return 0, fmt.Errorf("unknown key name: %q (expected key name or single printable character)", s)
}

// resolveAction converts an action name string to an Action
func resolveAction(name string) (Action, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	a, ok := ActionByName(name)
	if !ok {
		return ActionNone, fmt.Errorf("unknown action: %q", name)
	}
	return a, nil
}

// MergeKeyTable returns a new KeyTable with base values overridden by override
// Override entries with ActionNone ("none" action) delete the key from the result
func MergeKeyTable(base, override *KeyTable) *KeyTable {
	result := base.Clone()
	if override == nil {
		return result
	}

	for k, v := range override.Keys {
		if v == ActionNone {
			delete(result.Keys, k)
		} else {
			result.Keys[k] = v
		}
	}
	for r, v := range override.Runes {
		if v == ActionNone {
			delete(result.Runes, r)
		} else {
			result.Runes[r] = v
		}
	}

	return result
}
