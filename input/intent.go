// Package input turns raw key events into semantic intents
package input

import "strings"

// Intent is a semantic action independent of the key that produced it
type Intent uint8

const (
	IntentNone Intent = iota
	IntentMoveLeft
	IntentMoveRight
	IntentMoveUp
	IntentMoveDown
	IntentGrow
	IntentShrink
	IntentToggleDebug
	IntentQuit
)

// Action names used in the [keys] config section
var intentNames = map[string]Intent{
	"none":         IntentNone,
	"move_left":    IntentMoveLeft,
	"move_right":   IntentMoveRight,
	"move_up":      IntentMoveUp,
	"move_down":    IntentMoveDown,
	"grow":         IntentGrow,
	"shrink":       IntentShrink,
	"toggle_debug": IntentToggleDebug,
	"quit":         IntentQuit,
}

// IntentByName resolves a config action name, case-insensitive
func IntentByName(name string) (Intent, bool) {
	i, ok := intentNames[strings.ToLower(strings.TrimSpace(name))]
	return i, ok
}

func (i Intent) String() string {
	for name, v := range intentNames {
		if v == i {
			return name
		}
	}
	return "unknown"
}
