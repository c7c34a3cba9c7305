package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/DanielWebDeveloper25/e-commerce/internal/account"
	"github.com/DanielWebDeveloper25/e-commerce/internal/tui/keymap"
)

// handleKeypress resolves msg against the bindings of the current mode.
// Keys without a binding are typed into the focused input, if any.
func (m Model) handleKeypress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	mode := m.Mode()
	cmd, ok := m.keys.GetBinding(msg, mode)
	if !ok {
		switch mode {
		case keymap.ModeSearch:
			return m.typeSearch(msg)
		case keymap.ModeAuth:
			return m.typeAuth(msg)
		case keymap.ModeCheckout:
			return m.typeCheckout(msg)
		}
		return m, nil
	}

	switch cmd {
	case keymap.CmdQuit, keymap.CmdForceQuit:
		return m.quit()
	}

	switch mode {
	case keymap.ModeSearch:
		return m.handleSearchCommand(cmd)
	case keymap.ModeCart:
		return m.handleCartCommand(cmd)
	case keymap.ModeMenu:
		return m.handleMenuCommand(cmd)
	case keymap.ModeAuth:
		return m.handleAuthCommand(cmd)
	case keymap.ModeCheckout:
		return m.handleCheckoutCommand(cmd)
	case keymap.ModeConfirmation:
		return m.handleConfirmationCommand(cmd)
	default:
		return m.handleBrowseCommand(cmd)
	}
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.front.Close()
	m.quitting = true
	m.logger.Info("storefront closed", "item_count", m.front.ItemCount())
	return m, tea.Quit
}

func (m Model) handleBrowseCommand(cmd keymap.Command) (tea.Model, tea.Cmd) {
	switch cmd {
	case keymap.CmdMoveLeft:
		m.moveCursor(-1)
	case keymap.CmdMoveRight:
		m.moveCursor(1)
	case keymap.CmdMoveUp:
		m.moveCursor(-m.gridColumns())
	case keymap.CmdMoveDown:
		m.moveCursor(m.gridColumns())

	case keymap.CmdNextCategory:
		m.front.CycleCategory(1)
		m.resetCursor()
	case keymap.CmdPrevCategory:
		m.front.CycleCategory(-1)
		m.resetCursor()

	case keymap.CmdFocusSearch:
		m.searching = true
		return m, m.search.Focus()

	case keymap.CmdAddToCart:
		p, ok := m.selected()
		if !ok {
			return m, nil
		}
		if err := m.front.AddToCart(p.ID); err != nil {
			m.setError(err)
			return m, nil
		}
		return m, m.setInfo(fmt.Sprintf("Added %s to cart", p.Name))

	case keymap.CmdToggleCart:
		m.front.ToggleCart()
		m.clampCartCursor()
		m.ensureCursorVisible()

	case keymap.CmdOpenCheckout:
		return m.openCheckout()

	case keymap.CmdOpenMenu:
		m.front.OpenMenu()
		m.menuCursor = 0

	case keymap.CmdSignIn:
		return m, m.openAuth(account.ModeLogin)
	case keymap.CmdSignUp:
		return m, m.openAuth(account.ModeSignup)
	case keymap.CmdSignOut:
		return m, m.signOut()

	case keymap.CmdCloseOverlay:
		if !m.front.CloseTop() && m.front.Search() != "" {
			m.clearSearch()
		}
	}
	return m, nil
}

// moveCursor moves the grid cursor by delta, staying within the visible
// products.
func (m *Model) moveCursor(delta int) {
	n := len(m.front.Visible())
	next := m.cursor + delta
	if next < 0 || next >= n {
		return
	}
	m.cursor = next
	m.ensureCursorVisible()
}

func (m Model) handleSearchCommand(cmd keymap.Command) (tea.Model, tea.Cmd) {
	switch cmd {
	case keymap.CmdConfirmSearch:
		m.searching = false
		m.search.Blur()
	case keymap.CmdClearSearch:
		m.clearSearch()
	}
	return m, nil
}

func (m Model) typeSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() != m.front.Search() {
		m.front.SetSearch(m.search.Value())
		m.resetCursor()
	}
	return m, cmd
}

func (m *Model) clearSearch() {
	m.searching = false
	m.search.Blur()
	m.search.SetValue("")
	m.front.SetSearch("")
	m.resetCursor()
}

func (m Model) handleCartCommand(cmd keymap.Command) (tea.Model, tea.Cmd) {
	lines := m.front.Summary().Lines
	switch cmd {
	case keymap.CmdMoveUp:
		if m.cartCursor > 0 {
			m.cartCursor--
		}
	case keymap.CmdMoveDown:
		if m.cartCursor < len(lines)-1 {
			m.cartCursor++
		}

	case keymap.CmdIncrement, keymap.CmdDecrement, keymap.CmdRemoveLine:
		if len(lines) == 0 {
			return m, nil
		}
		id := lines[m.cartCursor].Product.ID
		var err error
		switch cmd {
		case keymap.CmdIncrement:
			err = m.front.ChangeQuantity(id, 1)
		case keymap.CmdDecrement:
			err = m.front.ChangeQuantity(id, -1)
		default:
			err = m.front.RemoveFromCart(id)
		}
		if err != nil {
			m.setError(err)
		}
		m.clampCartCursor()

	case keymap.CmdOpenCheckout:
		return m.openCheckout()

	case keymap.CmdToggleCart, keymap.CmdCloseOverlay:
		m.front.CloseCart()
		m.ensureCursorVisible()
	}
	return m, nil
}

func (m Model) handleMenuCommand(cmd keymap.Command) (tea.Model, tea.Cmd) {
	items := m.menuItems()
	switch cmd {
	case keymap.CmdMoveUp:
		if m.menuCursor > 0 {
			m.menuCursor--
		}
	case keymap.CmdMoveDown:
		if m.menuCursor < len(items)-1 {
			m.menuCursor++
		}
	case keymap.CmdSelect:
		if m.menuCursor < len(items) {
			c := items[m.menuCursor].action(&m)
			m.menuCursor = 0
			return m, c
		}
	case keymap.CmdOpenMenu, keymap.CmdCloseOverlay:
		m.front.CloseMenu()
		m.menuCursor = 0
	}
	return m, nil
}

// openCheckout opens the checkout modal with the first field focused.
func (m Model) openCheckout() (tea.Model, tea.Cmd) {
	if err := m.front.OpenCheckout(); err != nil {
		m.setError(err)
		return m, nil
	}
	m.clearMessages()
	m.checkoutInputs = newCheckoutInputs()
	m.checkoutFocus = 0
	focusOnly(m.checkoutInputs, m.checkoutFocus)
	return m, nil
}

// openAuth opens the auth modal in mode with empty inputs.
func (m *Model) openAuth(mode account.AuthMode) tea.Cmd {
	m.front.OpenAuth(mode)
	m.clearMessages()
	m.authInputs = newAuthInputs()
	m.authFocus = authFieldIndexes(mode)[0]
	focusOnly(m.authInputs, m.authFocus)
	return nil
}

func (m *Model) signOut() tea.Cmd {
	if !m.front.Session().LoggedIn {
		m.front.CloseMenu()
		return m.setInfo("You are not signed in")
	}
	m.front.SignOut()
	return m.setInfo("Signed out")
}

func (m Model) handleAuthCommand(cmd keymap.Command) (tea.Model, tea.Cmd) {
	order := authFieldIndexes(m.front.AuthMode())
	switch cmd {
	case keymap.CmdNextField:
		m.authFocus = cycle(order, m.authFocus, 1)
		focusOnly(m.authInputs, m.authFocus)
	case keymap.CmdPrevField:
		m.authFocus = cycle(order, m.authFocus, -1)
		focusOnly(m.authInputs, m.authFocus)

	case keymap.CmdToggleAuthMode:
		m.front.ToggleAuthMode()
		order = authFieldIndexes(m.front.AuthMode())
		m.authFocus = cycle(order, m.authFocus, 0)
		focusOnly(m.authInputs, m.authFocus)
		m.errorMessage = ""

	case keymap.CmdSubmit:
		m.front.SetAuthForm(credentialsFrom(m.authInputs))
		session, err := m.front.SubmitAuth()
		if err != nil {
			m.setError(err)
			return m, nil
		}
		m.authInputs = newAuthInputs()
		return m, m.setInfo(fmt.Sprintf("Welcome, %s!", session.DisplayName))

	case keymap.CmdCloseOverlay:
		m.front.CloseAuth()
		m.authInputs = newAuthInputs()
		m.clearMessages()
	}
	return m, nil
}

func (m Model) typeAuth(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.authInputs[m.authFocus], cmd = m.authInputs[m.authFocus].Update(msg)
	m.front.SetAuthForm(credentialsFrom(m.authInputs))
	return m, cmd
}

func (m Model) handleCheckoutCommand(cmd keymap.Command) (tea.Model, tea.Cmd) {
	n := len(m.checkoutInputs)
	switch cmd {
	case keymap.CmdNextField:
		m.checkoutFocus = (m.checkoutFocus + 1) % n
		focusOnly(m.checkoutInputs, m.checkoutFocus)
	case keymap.CmdPrevField:
		m.checkoutFocus = (m.checkoutFocus - 1 + n) % n
		focusOnly(m.checkoutInputs, m.checkoutFocus)

	case keymap.CmdSubmit:
		m.front.SetCheckoutForm(detailsFrom(m.checkoutInputs))
		order, err := m.front.SubmitCheckout()
		if err != nil {
			m.setError(err)
			return m, nil
		}
		m.clearMessages()
		m.logger.Info("order placed", "number", order.Number, "item_count", order.ItemCount)

	case keymap.CmdCloseOverlay:
		m.front.CloseCheckout()
		m.checkoutInputs = newCheckoutInputs()
		m.clearMessages()
	}
	return m, nil
}

func (m Model) typeCheckout(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.checkoutInputs[m.checkoutFocus], cmd = m.checkoutInputs[m.checkoutFocus].Update(msg)
	m.front.SetCheckoutForm(detailsFrom(m.checkoutInputs))
	return m, cmd
}

func (m Model) handleConfirmationCommand(cmd keymap.Command) (tea.Model, tea.Cmd) {
	if cmd != keymap.CmdContinue {
		return m, nil
	}
	if err := m.front.ContinueShopping(); err != nil {
		m.setError(err)
		return m, nil
	}
	m.checkoutInputs = newCheckoutInputs()
	m.cartCursor = 0
	return m, m.setInfo("Thanks for shopping with us!")
}
