package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/DanielWebDeveloper25/e-commerce/internal/account"
	"github.com/DanielWebDeveloper25/e-commerce/internal/catalog"
	"github.com/DanielWebDeveloper25/e-commerce/internal/checkout"
	"github.com/DanielWebDeveloper25/e-commerce/internal/errors"
	"github.com/DanielWebDeveloper25/e-commerce/internal/logging"
	"github.com/DanielWebDeveloper25/e-commerce/internal/storefront"
	"github.com/DanielWebDeveloper25/e-commerce/internal/tui/keymap"
	"github.com/DanielWebDeveloper25/e-commerce/internal/tui/styles"
	"github.com/DanielWebDeveloper25/e-commerce/internal/tui/view"
)

// statusTimeout is how long an info message stays on the status line.
const statusTimeout = 4 * time.Second

// Options configures a Model.
type Options struct {
	StoreName        string
	Columns          int
	ShowDescriptions bool
	// Width and Height are the initial terminal size, replaced by the
	// first WindowSizeMsg.
	Width  int
	Height int
	Styles *styles.Styles
	Keymap *keymap.Keymap
	Logger *logging.Logger
}

// Model is the bubbletea model of the terminal storefront. All shopper
// state lives in the storefront; the model only holds what the terminal
// needs on top of it: cursors, text inputs and messages.
type Model struct {
	front  *storefront.Storefront
	keys   *keymap.Keymap
	styles *styles.Styles
	logger *logging.Logger

	storeName        string
	columns          int
	showDescriptions bool

	width  int
	height int

	cursor     int // index into the visible products
	scrollRow  int
	cartCursor int
	menuCursor int

	searching bool
	search    textinput.Model

	authInputs     []textinput.Model
	authFocus      int
	checkoutInputs []textinput.Model
	checkoutFocus  int

	infoMessage   string
	errorMessage  string
	errorSeverity errors.Severity
	statusSeq     int

	quitting bool
}

// clearStatusMsg clears the info message if nothing newer replaced it.
type clearStatusMsg struct{ seq int }

// NewModel creates a model driving front.
func NewModel(front *storefront.Storefront, opts Options) Model {
	if opts.StoreName == "" {
		opts.StoreName = "ShopZone"
	}
	if opts.Styles == nil {
		opts.Styles = styles.Active()
	}
	if opts.Keymap == nil {
		opts.Keymap = keymap.DefaultKeymap()
	}
	if opts.Logger == nil {
		opts.Logger = logging.NopLogger()
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		opts.Width, opts.Height = DefaultWidth, DefaultHeight
	}

	m := Model{
		front:            front,
		keys:             opts.Keymap,
		styles:           opts.Styles,
		logger:           opts.Logger,
		storeName:        opts.StoreName,
		columns:          opts.Columns,
		showDescriptions: opts.ShowDescriptions,
		width:            opts.Width,
		height:           opts.Height,
		search:           newSearchInput(),
		authInputs:       newAuthInputs(),
		checkoutInputs:   newCheckoutInputs(),
	}
	m.search.SetValue(front.Search())
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeypress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ensureCursorVisible()
		return m, nil

	case clearStatusMsg:
		if msg.seq == m.statusSeq {
			m.infoMessage = ""
		}
		return m, nil
	}
	return m, nil
}

// Mode returns the input mode implied by the storefront's overlays.
func (m Model) Mode() keymap.Mode {
	o := m.front.Overlays()
	switch {
	case o.Checkout && m.front.Order() != nil:
		return keymap.ModeConfirmation
	case o.Checkout:
		return keymap.ModeCheckout
	case o.Auth:
		return keymap.ModeAuth
	case o.Menu:
		return keymap.ModeMenu
	case m.searching:
		return keymap.ModeSearch
	case o.Cart:
		return keymap.ModeCart
	default:
		return keymap.ModeBrowse
	}
}

// Cursor returns the index of the selected product among the visible ones.
func (m Model) Cursor() int { return m.cursor }

// CartCursor returns the index of the selected cart line.
func (m Model) CartCursor() int { return m.cartCursor }

// InfoMessage returns the current info message.
func (m Model) InfoMessage() string { return m.infoMessage }

// ErrorMessage returns the current error message.
func (m Model) ErrorMessage() string { return m.errorMessage }

// ErrorSeverity returns the severity of the current error message.
func (m Model) ErrorSeverity() errors.Severity { return m.errorSeverity }

// Quitting reports whether the model has asked the program to exit.
func (m Model) Quitting() bool { return m.quitting }

// Storefront returns the storefront the model drives.
func (m Model) Storefront() *storefront.Storefront { return m.front }

// selected returns the product under the cursor.
func (m Model) selected() (catalog.Product, bool) {
	visible := m.front.Visible()
	if m.cursor < 0 || m.cursor >= len(visible) {
		return catalog.Product{}, false
	}
	return visible[m.cursor], true
}

func (m Model) gridColumns() int {
	o := m.front.Overlays()
	return view.Columns(m.columns, GridWidth(m.width, o.Menu, o.Cart))
}

func (m *Model) resetCursor() {
	m.cursor = 0
	m.scrollRow = 0
}

// ensureCursorVisible clamps the cursor to the visible products and scrolls
// the grid so the cursor's row is on screen.
func (m *Model) ensureCursorVisible() {
	n := len(m.front.Visible())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}

	cols := m.gridColumns()
	rows := view.VisibleRows(BodyHeight(m.height, m.showDescriptions), m.showDescriptions)
	row := m.cursor / cols
	if row < m.scrollRow {
		m.scrollRow = row
	}
	if row >= m.scrollRow+rows {
		m.scrollRow = row - rows + 1
	}
}

func (m *Model) clampCartCursor() {
	n := len(m.front.Summary().Lines)
	if m.cartCursor >= n {
		m.cartCursor = n - 1
	}
	if m.cartCursor < 0 {
		m.cartCursor = 0
	}
}

// setInfo shows msg on the status line for a while.
func (m *Model) setInfo(msg string) tea.Cmd {
	m.errorMessage = ""
	m.infoMessage = msg
	m.statusSeq++
	seq := m.statusSeq
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg {
		return clearStatusMsg{seq: seq}
	})
}

// setError shows err on the status line until the next action.
func (m *Model) setError(err error) {
	m.infoMessage = ""
	m.errorMessage = errors.UserMessage(err)
	m.errorSeverity = errors.GetSeverity(err)
	m.logger.Debug("action failed",
		"mode", string(m.Mode()),
		"severity", m.errorSeverity.String(),
		"error", err.Error(),
	)
}

func (m *Model) clearMessages() {
	m.infoMessage = ""
	m.errorMessage = ""
}

// View renders the storefront.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	header := view.RenderHeader(m.styles, view.HeaderState{
		StoreName:     m.storeName,
		SearchView:    m.search.View(),
		SearchFocused: m.searching,
		DisplayName:   m.front.Session().DisplayName,
		ItemCount:     m.front.ItemCount(),
		Width:         m.width,
	})
	categories := view.RenderCategories(m.styles, catalog.Categories(), m.front.Category())
	body := m.renderBody(BodyHeight(m.height, m.showDescriptions))

	var status string
	if m.errorMessage != "" {
		status = view.RenderErrorStatus(m.styles, m.errorMessage, m.errorSeverity)
	} else {
		status = view.RenderStatus(m.styles, m.infoMessage)
	}
	help := view.RenderHelpBar(m.styles, m.keys.Help(m.Mode()), m.width)

	return lipgloss.JoinVertical(lipgloss.Left, header, categories, body, status, help)
}

func (m Model) renderBody(height int) string {
	switch m.Mode() {
	case keymap.ModeConfirmation:
		return m.place(height, view.RenderConfirmation(m.styles, *m.front.Order()))
	case keymap.ModeCheckout:
		return m.place(height, view.RenderCheckout(m.styles, view.CheckoutState{
			Summary: m.front.Summary(),
			Fields:  m.checkoutFields(),
			Error:   m.errorMessage,
		}))
	case keymap.ModeAuth:
		return m.place(height, m.renderAuth())
	}

	o := m.front.Overlays()
	parts := make([]string, 0, 3)
	if o.Menu {
		parts = append(parts, view.RenderMenu(m.styles, view.MenuState{
			Title:  m.storeName,
			Items:  m.menuLabels(),
			Cursor: m.menuCursor,
			Height: height - 2,
		}))
	}

	gridWidth := GridWidth(m.width, o.Menu, o.Cart)
	parts = append(parts, view.RenderGrid(m.styles, view.GridState{
		Products:         m.front.Visible(),
		Cursor:           m.cursor,
		Columns:          view.Columns(m.columns, gridWidth),
		ScrollRow:        m.scrollRow,
		Width:            gridWidth,
		Height:           height,
		ShowDescriptions: m.showDescriptions,
	}))

	if o.Cart {
		parts = append(parts, view.RenderCart(m.styles, view.CartState{
			Summary: m.front.Summary(),
			Cursor:  m.cartCursor,
			Focused: m.Mode() == keymap.ModeCart,
			Height:  height - 2,
		}))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// place centers a modal over the body area.
func (m Model) place(height int, modal string) string {
	return lipgloss.Place(m.width, height, lipgloss.Center, lipgloss.Center, modal)
}

func (m Model) renderAuth() string {
	mode := m.front.AuthMode()
	fields := make([]view.Field, 0, len(m.authInputs))
	for _, i := range authFieldIndexes(mode) {
		fields = append(fields, view.Field{
			Label:   authLabel(i),
			Input:   m.authInputs[i].View(),
			Focused: i == m.authFocus,
		})
	}
	alt := "Don't have an account? [ctrl+t] Sign Up"
	if mode == account.ModeSignup {
		alt = "Already have an account? [ctrl+t] Sign In"
	}
	return view.RenderAuth(m.styles, view.AuthState{
		Title:     mode.Title(),
		Fields:    fields,
		Error:     m.errorMessage,
		AltPrompt: alt,
	})
}

func (m Model) checkoutFields() []view.Field {
	defs := checkout.Fields()
	fields := make([]view.Field, len(defs))
	for i, f := range defs {
		fields[i] = view.Field{
			Label:   f.Label,
			Input:   m.checkoutInputs[i].View(),
			Focused: i == m.checkoutFocus,
		}
	}
	return fields
}

// menuItem is one entry of the navigation drawer.
type menuItem struct {
	label  string
	action func(m *Model) tea.Cmd
}

func (m Model) menuItems() []menuItem {
	active := m.front.Category()
	items := make([]menuItem, 0, len(catalog.Categories())+3)
	for _, c := range catalog.Categories() {
		label := "  " + string(c)
		if c == active {
			label = "• " + string(c)
		}
		items = append(items, menuItem{label: label, action: func(m *Model) tea.Cmd {
			m.front.SelectCategory(c)
			m.resetCursor()
			return nil
		}})
	}

	items = append(items, menuItem{
		label: fmt.Sprintf("  My Cart (%d)", m.front.ItemCount()),
		action: func(m *Model) tea.Cmd {
			m.front.OpenCart()
			m.clampCartCursor()
			return nil
		},
	})

	if m.front.Session().LoggedIn {
		items = append(items, menuItem{label: "  Sign Out", action: func(m *Model) tea.Cmd {
			return m.signOut()
		}})
		return items
	}
	return append(items,
		menuItem{label: "  Sign In", action: func(m *Model) tea.Cmd {
			return m.openAuth(account.ModeLogin)
		}},
		menuItem{label: "  Sign Up", action: func(m *Model) tea.Cmd {
			return m.openAuth(account.ModeSignup)
		}},
	)
}

func (m Model) menuLabels() []string {
	items := m.menuItems()
	labels := make([]string, len(items))
	for i, it := range items {
		labels[i] = it.label
	}
	return labels
}
