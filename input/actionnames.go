package input

import (
	"fmt"
	"sort"
)

// actionRegistry maps canonical action names to KeyEntry structs
// Used by keymap config loader to resolve TOML action strings to bindings
var actionRegistry map[string]KeyEntry

func init() {
	actionRegistry = buildActionRegistry()
}

func buildActionRegistry() map[string]KeyEntry {
	r := map[string]KeyEntry{
		// Unbind sentinel
		"none": {},

		// System
		"quit":         {Intent: IntentQuit},
		"escape":       {Intent: IntentEscape},
		"toggle_mute":  {Intent: IntentToggleMute},
		"toggle_debug": {Intent: IntentToggleDebug},

		// Session
		"send_wave": {Intent: IntentSendWave},

		// Shop
		"select_next": {Intent: IntentSelectNext},
		"sell":        {Intent: IntentSell},
		"buy_footman": {Intent: IntentQuickBuy, Buy: "F"},
		"buy_paladin": {Intent: IntentQuickBuy, Buy: "A"},
		"buy_wizard":  {Intent: IntentQuickBuy, Buy: "W"},
	}

	for n := 1; n <= 3; n++ {
		r[fmt.Sprintf("speed_%d", n)] = KeyEntry{Intent: IntentSpeed, Arg: n}
	}
	for n := 1; n <= 9; n++ {
		r[fmt.Sprintf("select_%d", n)] = KeyEntry{Intent: IntentSelectSpawner, Arg: n - 1}
		r[fmt.Sprintf("option_%d", n)] = KeyEntry{Intent: IntentOption, Arg: n - 1}
	}

	return r
}

// ActionEntry returns the binding for a canonical action name
func ActionEntry(name string) (KeyEntry, bool) {
	e, ok := actionRegistry[name]
	return e, ok
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
