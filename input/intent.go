package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit        // q, Ctrl+C, Ctrl+Q
	IntentEscape      // ESC, clears the selection
	IntentToggleMute  // m
	IntentToggleDebug // d

	// Session
	IntentSpeed    // 1-3, Arg is the multiplier
	IntentSendWave // space, g

	// Spawner selection and shop
	IntentSelectSpawner // F1-F6, Arg is the spawner index
	IntentSelectNext    // Tab
	IntentQuickBuy      // f, a, w, Buy is the creep key
	IntentOption        // u, i, o, Arg is the option index
	IntentSell          // s
)

// Intent is a resolved user action
type Intent struct {
	Type IntentType
	Arg  int
	Buy  string
}

var intentNames = [...]string{
	IntentNone:          "none",
	IntentQuit:          "quit",
	IntentEscape:        "escape",
	IntentToggleMute:    "toggle_mute",
	IntentToggleDebug:   "toggle_debug",
	IntentSpeed:         "speed",
	IntentSendWave:      "send_wave",
	IntentSelectSpawner: "select_spawner",
	IntentSelectNext:    "select_next",
	IntentQuickBuy:      "quick_buy",
	IntentOption:        "option",
	IntentSell:          "sell",
}

// String returns the intent name
func (t IntentType) String() string {
	if int(t) < len(intentNames) {
		return intentNames[t]
	}
	return "unknown"
}
