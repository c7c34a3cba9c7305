// Package keymap provides key binding definitions and lookup for the
// terminal storefront. Bindings are declared per mode; the help bar is
// rendered from the same tables.
package keymap

import tea "github.com/charmbracelet/bubbletea"

// Mode represents the current input mode of the TUI.
// Different modes have different key bindings active.
type Mode string

const (
	ModeBrowse       Mode = "browse"       // Product grid has focus
	ModeSearch       Mode = "search"       // Typing in the search box (after /)
	ModeCart         Mode = "cart"         // Cart panel has focus
	ModeMenu         Mode = "menu"         // Navigation drawer is open
	ModeAuth         Mode = "auth"         // Sign in / sign up modal
	ModeCheckout     Mode = "checkout"     // Checkout form
	ModeConfirmation Mode = "confirmation" // Order placed confirmation
)

// Command represents a named action that can be triggered by a key binding.
type Command string

// Browse mode commands
const (
	CmdMoveLeft      Command = "move_left"
	CmdMoveRight     Command = "move_right"
	CmdMoveUp        Command = "move_up"
	CmdMoveDown      Command = "move_down"
	CmdNextCategory  Command = "next_category"
	CmdPrevCategory  Command = "prev_category"
	CmdAddToCart     Command = "add_to_cart"
	CmdFocusSearch   Command = "focus_search"
	CmdToggleCart    Command = "toggle_cart"
	CmdOpenCheckout  Command = "open_checkout"
	CmdOpenMenu      Command = "open_menu"
	CmdSignIn        Command = "sign_in"
	CmdSignUp        Command = "sign_up"
	CmdSignOut       Command = "sign_out"
	CmdCloseOverlay  Command = "close_overlay"
	CmdQuit          Command = "quit"
	CmdForceQuit     Command = "force_quit"
	CmdClearSearch   Command = "clear_search"
	CmdConfirmSearch Command = "confirm_search"
)

// Cart panel commands
const (
	CmdIncrement  Command = "increment"
	CmdDecrement  Command = "decrement"
	CmdRemoveLine Command = "remove_line"
)

// Menu commands
const (
	CmdSelect Command = "select"
)

// Form commands
const (
	CmdNextField      Command = "next_field"
	CmdPrevField      Command = "prev_field"
	CmdSubmit         Command = "submit"
	CmdToggleAuthMode Command = "toggle_auth_mode"
	CmdContinue       Command = "continue_shopping"
)

// Modifier represents keyboard modifiers.
type Modifier uint8

const (
	ModNone Modifier = 0
	ModAlt  Modifier = 1 << iota
)

// String returns a human-readable representation of modifiers.
func (m Modifier) String() string {
	if m&ModAlt != 0 {
		return "alt+"
	}
	return ""
}

// KeyBinding represents a single key binding configuration.
type KeyBinding struct {
	// KeyType is the key. For rune keys use tea.KeyRunes and set Rune.
	KeyType tea.KeyType

	// Rune is the character for rune-based keys (when KeyType is tea.KeyRunes).
	Rune rune

	// Modifiers contains the modifier keys that must be pressed.
	Modifiers Modifier

	// Command is the action to execute when this binding is triggered.
	Command Command

	// Description is a human-readable description for help display.
	Description string

	// Hidden bindings work but are left out of the help bar.
	Hidden bool
}

// Matches checks if a tea.KeyMsg matches this binding.
func (kb KeyBinding) Matches(msg tea.KeyMsg) bool {
	wantAlt := kb.Modifiers&ModAlt != 0
	if msg.Alt != wantAlt {
		return false
	}

	if kb.KeyType != tea.KeyRunes {
		return msg.Type == kb.KeyType
	}

	if msg.Type != tea.KeyRunes || len(msg.Runes) == 0 {
		return false
	}
	return msg.Runes[0] == kb.Rune
}

// String returns a human-readable representation of the key binding.
func (kb KeyBinding) String() string {
	prefix := kb.Modifiers.String()

	if kb.KeyType != tea.KeyRunes {
		return prefix + kb.KeyType.String()
	}

	switch kb.Rune {
	case ' ':
		return prefix + "space"
	default:
		return prefix + string(kb.Rune)
	}
}

// ModeBindings holds all key bindings for a specific mode.
type ModeBindings struct {
	Mode     Mode
	Bindings []KeyBinding
}

// GetBinding looks up a command for a key in this mode.
func (mb *ModeBindings) GetBinding(msg tea.KeyMsg) (Command, bool) {
	for _, binding := range mb.Bindings {
		if binding.Matches(msg) {
			return binding.Command, true
		}
	}
	return "", false
}

// Keymap contains all key bindings organized by mode.
type Keymap struct {
	Name  string
	Modes map[Mode]*ModeBindings
}

// GetBinding looks up a command for a key in a specific mode.
func (km *Keymap) GetBinding(msg tea.KeyMsg, mode Mode) (Command, bool) {
	mb, ok := km.Modes[mode]
	if !ok {
		return "", false
	}
	return mb.GetBinding(msg)
}

// GetModeBindings returns all bindings for a specific mode.
func (km *Keymap) GetModeBindings(mode Mode) []KeyBinding {
	mb, ok := km.Modes[mode]
	if !ok {
		return nil
	}
	return mb.Bindings
}

// HelpEntry is one key hint shown in the help bar.
type HelpEntry struct {
	Keys        string
	Description string
}

// Help returns the visible bindings of mode with keys sharing a command
// merged into one entry, in declaration order.
func (km *Keymap) Help(mode Mode) []HelpEntry {
	var entries []HelpEntry
	index := make(map[Command]int)

	for _, b := range km.GetModeBindings(mode) {
		if b.Hidden {
			continue
		}
		if i, ok := index[b.Command]; ok {
			entries[i].Keys += "/" + b.String()
			continue
		}
		index[b.Command] = len(entries)
		entries = append(entries, HelpEntry{Keys: b.String(), Description: b.Description})
	}
	return entries
}
