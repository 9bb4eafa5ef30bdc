package keyboard

// Keys holds the picker's keyboard shortcuts, as reported by tea.KeyMsg.String()
type Keys struct {
	// Navigation
	Up         []string // Move selection up
	Down       []string // Move selection down
	JumpTop    string   // Jump to first match
	JumpBottom string   // Jump to last match

	// Actions
	Switch string // Switch to the selected context
	Copy   string // Copy the selected context name

	// Global
	Back string // Clear the query, or quit when it is empty
	Quit string // Quit immediately
}

// Default returns the default key configuration
func Default() *Keys {
	return &Keys{
		Up:         []string{"up", "ctrl+k", "ctrl+p"},
		Down:       []string{"down", "ctrl+j", "ctrl+n"},
		JumpTop:    "home",
		JumpBottom: "end",

		Switch: "enter",
		Copy:   "ctrl+y",

		Back: "esc",
		Quit: "ctrl+c",
	}
}

// Matches reports whether key is one of bindings
func Matches(key string, bindings ...string) bool {
	for _, b := range bindings {
		if key == b {
			return true
		}
	}
	return false
}
