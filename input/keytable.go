package input

import (
	"fmt"
	"maps"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/arena/terminal"
)

// Key name aliases on top of tcell's own names
var keyAliases = map[string]tcell.Key{
	"escape": tcell.KeyEscape,
	"return": tcell.KeyEnter,
}

// Rune aliases for keys that can't be bare single-char TOML keys
var runeAliases = map[string]rune{
	"space": ' ',
}

var keyByName = func() map[string]tcell.Key {
	m := make(map[string]tcell.Key, len(tcell.KeyNames)+len(keyAliases))
	for k, name := range tcell.KeyNames {
		m[strings.ToLower(name)] = k
	}
	for name, k := range keyAliases {
		m[name] = k
	}
	return m
}()

// KeyTable maps special keys and runes to intents
type KeyTable struct {
	Keys  map[tcell.Key]Intent
	Runes map[rune]Intent
}

// DefaultKeyTable returns the default bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		Keys: map[tcell.Key]Intent{
			tcell.KeyLeft:   IntentMoveLeft,
			tcell.KeyRight:  IntentMoveRight,
			tcell.KeyUp:     IntentMoveUp,
			tcell.KeyDown:   IntentMoveDown,
			tcell.KeyEscape: IntentQuit,
			tcell.KeyCtrlC:  IntentQuit,
		},
		Runes: map[rune]Intent{
			'h': IntentMoveLeft,
			'l': IntentMoveRight,
			'k': IntentMoveUp,
			'j': IntentMoveDown,
			'o': IntentGrow,
			'p': IntentShrink,
			'd': IntentToggleDebug,
			'q': IntentQuit,
		},
	}
}

// Clone returns a deep copy
func (kt *KeyTable) Clone() *KeyTable {
	return &KeyTable{Keys: maps.Clone(kt.Keys), Runes: maps.Clone(kt.Runes)}
}

// Lookup resolves an event to its intent, IntentNone when unbound
func (kt *KeyTable) Lookup(ev terminal.KeyEvent) Intent {
	if ev.Key == tcell.KeyRune {
		return kt.Runes[ev.Rune]
	}
	return kt.Keys[ev.Key]
}

// Bind attaches intent to a key: a tcell key name ("left", "ctrl-c"),
// an alias ("space"), or a single character
// Binding IntentNone removes the key
func (kt *KeyTable) Bind(key string, intent Intent) error {
	name := strings.ToLower(strings.TrimSpace(key))

	if r, ok := runeAliases[name]; ok {
		kt.bindRune(r, intent)
		return nil
	}
	if runes := []rune(strings.TrimSpace(key)); len(runes) == 1 {
		kt.bindRune(runes[0], intent)
		return nil
	}
	if k, ok := keyByName[name]; ok {
		if intent == IntentNone {
			delete(kt.Keys, k)
		} else {
			kt.Keys[k] = intent
		}
		return nil
	}
	return fmt.Errorf("unknown key %q", key)
}

func (kt *KeyTable) bindRune(r rune, intent Intent) {
	if intent == IntentNone {
		delete(kt.Runes, r)
		return
	}
	kt.Runes[r] = intent
}

// Apply binds every key → action name pair, stopping at the first bad entry
func (kt *KeyTable) Apply(bindings map[string]string) error {
	for key, action := range bindings {
		intent, ok := IntentByName(action)
		if !ok {
			return fmt.Errorf("key %q: unknown action %q", key, action)
		}
		if err := kt.Bind(key, intent); err != nil {
			return err
		}
	}
	return nil
}
