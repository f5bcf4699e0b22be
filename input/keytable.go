package input

import (
	"fmt"
	"maps"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Rune aliases for keys that can't be bare single-char TOML keys
var runeAliases = map[string]rune{
	"space":     ' ',
	"backslash": '\\',
}

// Special key names accepted in [keys]
var keyNames = map[string]tcell.Key{
	"esc":       tcell.KeyEscape,
	"escape":    tcell.KeyEscape,
	"enter":     tcell.KeyEnter,
	"tab":       tcell.KeyTab,
	"backspace": tcell.KeyBackspace2,
	"ctrl-c":    tcell.KeyCtrlC,
	"ctrl-q":    tcell.KeyCtrlQ,
	"ctrl-r":    tcell.KeyCtrlR,
	"ctrl-s":    tcell.KeyCtrlS,
	"f1":        tcell.KeyF1,
	"f2":        tcell.KeyF2,
	"f3":        tcell.KeyF3,
	"f4":        tcell.KeyF4,
}

// Bindable actions by config name; "none" unbinds
var actionNames = map[string]IntentType{
	"none":         IntentNone,
	"quit":         IntentQuit,
	"pause":        IntentPause,
	"toggle_debug": IntentToggleDebug,
	"toggle_mute":  IntentToggleMute,
	"reset":        IntentReset,
	"shoot_toggle": IntentShootToggle,
}

// KeyTable maps keyboard input to intents
type KeyTable struct {
	Runes map[rune]IntentType
	Keys  map[tcell.Key]IntentType
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		Runes: map[rune]IntentType{
			'q': IntentQuit,
			' ': IntentShootToggle,
			'r': IntentReset,
			'R': IntentReset,
			'p': IntentPause,
			'm': IntentToggleMute,
		},
		Keys: map[tcell.Key]IntentType{
			tcell.KeyEscape: IntentQuit,
			tcell.KeyCtrlC:  IntentQuit,
			tcell.KeyF1:     IntentToggleDebug,
		},
	}
}

// Clone returns a deep copy with independent maps
func (kt *KeyTable) Clone() *KeyTable {
	return &KeyTable{
		Runes: maps.Clone(kt.Runes),
		Keys:  maps.Clone(kt.Keys),
	}
}

// Lookup resolves a key event to an intent type
func (kt *KeyTable) Lookup(ev *tcell.EventKey) IntentType {
	if ev.Key() == tcell.KeyRune {
		return kt.Runes[ev.Rune()]
	}
	return kt.Keys[ev.Key()]
}

// Bind assigns action to key; key is a single character, a rune alias or a special key name
// Ctrl+C stays bound to quit so a bad keymap cannot trap the terminal
func (kt *KeyTable) Bind(key, action string) error {
	it, ok := actionNames[strings.ToLower(strings.TrimSpace(action))]
	if !ok {
		return fmt.Errorf("key %q: unknown action: %q", key, action)
	}

	if k, ok := keyNames[strings.ToLower(key)]; ok {
		if k == tcell.KeyCtrlC {
			return fmt.Errorf("key %q: reserved", key)
		}
		if it == IntentNone {
			delete(kt.Keys, k)
		} else {
			kt.Keys[k] = it
		}
		return nil
	}

	r, err := resolveRune(key)
	if err != nil {
		return err
	}
	if it == IntentNone {
		delete(kt.Runes, r)
	} else {
		kt.Runes[r] = it
	}
	return nil
}

// WithBindings returns a copy of the table with every binding applied
func (kt *KeyTable) WithBindings(bindings map[string]string) (*KeyTable, error) {
	out := kt.Clone()
	for key, action := range bindings {
		if err := out.Bind(key, action); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// resolveRune converts a key string to a rune
// Accepts single characters and named aliases
func resolveRune(s string) (rune, error) {
	if r, ok := runeAliases[strings.ToLower(s)]; ok {
		return r, nil
	}

	runes := []rune(s)
	if len(runes) == 1 {
		return runes[0], nil
	}

	return 0, fmt.Errorf("invalid key: %q (expected single character, alias or key name)", s)
}
