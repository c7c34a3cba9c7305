package keymap

import tea "github.com/charmbracelet/bubbletea"

// DefaultKeymap returns the storefront key bindings.
func DefaultKeymap() *Keymap {
	return &Keymap{
		Name: "default",
		Modes: map[Mode]*ModeBindings{
			ModeBrowse:       defaultBrowseBindings(),
			ModeSearch:       defaultSearchBindings(),
			ModeCart:         defaultCartBindings(),
			ModeMenu:         defaultMenuBindings(),
			ModeAuth:         defaultAuthBindings(),
			ModeCheckout:     defaultCheckoutBindings(),
			ModeConfirmation: defaultConfirmationBindings(),
		},
	}
}

func runeKey(r rune, cmd Command, desc string) KeyBinding {
	return KeyBinding{KeyType: tea.KeyRunes, Rune: r, Command: cmd, Description: desc}
}

func key(t tea.KeyType, cmd Command, desc string) KeyBinding {
	return KeyBinding{KeyType: t, Command: cmd, Description: desc}
}

func hidden(kb KeyBinding) KeyBinding {
	kb.Hidden = true
	return kb
}

func defaultBrowseBindings() *ModeBindings {
	return &ModeBindings{
		Mode: ModeBrowse,
		Bindings: []KeyBinding{
			runeKey('/', CmdFocusSearch, "search"),
			key(tea.KeyTab, CmdNextCategory, "category"),
			key(tea.KeyShiftTab, CmdPrevCategory, "category"),
			hidden(key(tea.KeyLeft, CmdMoveLeft, "move")),
			hidden(runeKey('h', CmdMoveLeft, "move")),
			hidden(key(tea.KeyRight, CmdMoveRight, "move")),
			hidden(runeKey('l', CmdMoveRight, "move")),
			hidden(key(tea.KeyUp, CmdMoveUp, "move")),
			hidden(runeKey('k', CmdMoveUp, "move")),
			hidden(key(tea.KeyDown, CmdMoveDown, "move")),
			hidden(runeKey('j', CmdMoveDown, "move")),
			runeKey('a', CmdAddToCart, "add to cart"),
			key(tea.KeyEnter, CmdAddToCart, "add to cart"),
			runeKey('c', CmdToggleCart, "cart"),
			runeKey('o', CmdOpenCheckout, "checkout"),
			runeKey('m', CmdOpenMenu, "menu"),
			runeKey('L', CmdSignIn, "sign in"),
			runeKey('S', CmdSignUp, "sign up"),
			runeKey('O', CmdSignOut, "sign out"),
			hidden(key(tea.KeyEsc, CmdCloseOverlay, "close")),
			runeKey('q', CmdQuit, "quit"),
			hidden(key(tea.KeyCtrlC, CmdForceQuit, "quit")),
		},
	}
}

func defaultSearchBindings() *ModeBindings {
	return &ModeBindings{
		Mode: ModeSearch,
		Bindings: []KeyBinding{
			key(tea.KeyEnter, CmdConfirmSearch, "done"),
			key(tea.KeyEsc, CmdClearSearch, "clear"),
			hidden(key(tea.KeyCtrlC, CmdForceQuit, "quit")),
		},
	}
}

func defaultCartBindings() *ModeBindings {
	return &ModeBindings{
		Mode: ModeCart,
		Bindings: []KeyBinding{
			key(tea.KeyUp, CmdMoveUp, "line"),
			runeKey('k', CmdMoveUp, "line"),
			key(tea.KeyDown, CmdMoveDown, "line"),
			runeKey('j', CmdMoveDown, "line"),
			runeKey('+', CmdIncrement, "more"),
			hidden(runeKey('=', CmdIncrement, "more")),
			runeKey('-', CmdDecrement, "less"),
			runeKey('x', CmdRemoveLine, "remove"),
			runeKey('o', CmdOpenCheckout, "checkout"),
			hidden(key(tea.KeyEnter, CmdOpenCheckout, "checkout")),
			runeKey('c', CmdToggleCart, "close"),
			key(tea.KeyEsc, CmdCloseOverlay, "close"),
			runeKey('q', CmdQuit, "quit"),
			hidden(key(tea.KeyCtrlC, CmdForceQuit, "quit")),
		},
	}
}

func defaultMenuBindings() *ModeBindings {
	return &ModeBindings{
		Mode: ModeMenu,
		Bindings: []KeyBinding{
			key(tea.KeyUp, CmdMoveUp, "move"),
			runeKey('k', CmdMoveUp, "move"),
			key(tea.KeyDown, CmdMoveDown, "move"),
			runeKey('j', CmdMoveDown, "move"),
			key(tea.KeyEnter, CmdSelect, "select"),
			runeKey('m', CmdCloseOverlay, "close"),
			key(tea.KeyEsc, CmdCloseOverlay, "close"),
			runeKey('q', CmdQuit, "quit"),
			hidden(key(tea.KeyCtrlC, CmdForceQuit, "quit")),
		},
	}
}

func formBindings() []KeyBinding {
	return []KeyBinding{
		key(tea.KeyTab, CmdNextField, "next field"),
		hidden(key(tea.KeyDown, CmdNextField, "next field")),
		key(tea.KeyShiftTab, CmdPrevField, "previous field"),
		hidden(key(tea.KeyUp, CmdPrevField, "previous field")),
		key(tea.KeyEnter, CmdSubmit, "submit"),
		key(tea.KeyEsc, CmdCloseOverlay, "cancel"),
		hidden(key(tea.KeyCtrlC, CmdForceQuit, "quit")),
	}
}

func defaultAuthBindings() *ModeBindings {
	return &ModeBindings{
		Mode:     ModeAuth,
		Bindings: append(formBindings(), key(tea.KeyCtrlT, CmdToggleAuthMode, "switch sign in/sign up")),
	}
}

func defaultCheckoutBindings() *ModeBindings {
	return &ModeBindings{
		Mode:     ModeCheckout,
		Bindings: formBindings(),
	}
}

func defaultConfirmationBindings() *ModeBindings {
	return &ModeBindings{
		Mode: ModeConfirmation,
		Bindings: []KeyBinding{
			key(tea.KeyEnter, CmdContinue, "continue shopping"),
			hidden(key(tea.KeyEsc, CmdContinue, "continue shopping")),
			runeKey('q', CmdQuit, "quit"),
			hidden(key(tea.KeyCtrlC, CmdForceQuit, "quit")),
		},
	}
}
