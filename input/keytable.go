package input

// KeyEntry describes what a key does, without function pointers
type KeyEntry struct {
	Intent IntentType
	Arg    int
	Buy    string
}

// KeyTable maps keys to intents
type KeyTable struct {
	// Special keys (Ctrl+*, function keys, Esc, Tab)
	SpecialKeys map[Key]KeyEntry

	// Printable bindings
	Runes map[rune]KeyEntry
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	kt := &KeyTable{
		SpecialKeys: map[Key]KeyEntry{
			KeyCtrlQ:  {Intent: IntentQuit},
			KeyCtrlC:  {Intent: IntentQuit},
			KeyEscape: {Intent: IntentEscape},
			KeyTab:    {Intent: IntentSelectNext},
		},

		Runes: map[rune]KeyEntry{
			// Game speed
			'1': {Intent: IntentSpeed, Arg: 1},
			'2': {Intent: IntentSpeed, Arg: 2},
			'3': {Intent: IntentSpeed, Arg: 3},

			// Waves
			' ': {Intent: IntentSendWave},
			'g': {Intent: IntentSendWave},

			// Shop
			'f': {Intent: IntentQuickBuy, Buy: "F"},
			'a': {Intent: IntentQuickBuy, Buy: "A"},
			'w': {Intent: IntentQuickBuy, Buy: "W"},
			'u': {Intent: IntentOption, Arg: 0},
			'i': {Intent: IntentOption, Arg: 1},
			'o': {Intent: IntentOption, Arg: 2},
			's': {Intent: IntentSell},

			// System
			'm': {Intent: IntentToggleMute},
			'd': {Intent: IntentToggleDebug},
			'q': {Intent: IntentQuit},
		},
	}

	for n := 1; n <= 6; n++ {
		k, _ := FunctionKey(n)
		kt.SpecialKeys[k] = KeyEntry{Intent: IntentSelectSpawner, Arg: n - 1}
	}

	return kt
}

// Resolve maps a key event to its intent
func (kt *KeyTable) Resolve(key Key, r rune) (Intent, bool) {
	var (
		e  KeyEntry
		ok bool
	)
	if key == KeyRune {
		e, ok = kt.Runes[r]
	} else {
		e, ok = kt.SpecialKeys[key]
	}
	if !ok || e.Intent == IntentNone {
		return Intent{}, false
	}
	return Intent{Type: e.Intent, Arg: e.Arg, Buy: e.Buy}, true
}

// Clone returns a deep copy
func (kt *KeyTable) Clone() *KeyTable {
	c := &KeyTable{
		SpecialKeys: make(map[Key]KeyEntry, len(kt.SpecialKeys)),
		Runes:       make(map[rune]KeyEntry, len(kt.Runes)),
	}
	for k, v := range kt.SpecialKeys {
		c.SpecialKeys[k] = v
	}
	for k, v := range kt.Runes {
		c.Runes[k] = v
	}
	return c
}

// Hint returns the display name of a key bound to the intent, printable keys first
// Returns "" when nothing is bound
func (kt *KeyTable) Hint(t IntentType, arg int) string {
	best := rune(-1)
	for r, e := range kt.Runes {
		if e.Intent == t && e.Arg == arg && r != ' ' && (best < 0 || r < best) {
			best = r
		}
	}
	if best >= 0 {
		return string(best)
	}

	bestKey := KeyNone
	for k, e := range kt.SpecialKeys {
		if e.Intent == t && e.Arg == arg && (bestKey == KeyNone || k < bestKey) {
			bestKey = k
		}
	}
	if bestKey == KeyNone {
		return ""
	}
	return bestKey.String()
}
