package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/DanielWebDeveloper25/e-commerce/internal/account"
	"github.com/DanielWebDeveloper25/e-commerce/internal/catalog"
	"github.com/DanielWebDeveloper25/e-commerce/internal/errors"
	"github.com/DanielWebDeveloper25/e-commerce/internal/storefront"
	"github.com/DanielWebDeveloper25/e-commerce/internal/tui/keymap"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	front := storefront.New(catalog.Sample())
	return NewModel(front, Options{Columns: 2, ShowDescriptions: true})
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func keyType(k tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: k}
}

// press feeds msgs to m one at a time.
func press(m Model, msgs ...tea.KeyMsg) Model {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

// typeText types s one rune per key press.
func typeText(m Model, s string) Model {
	for _, r := range s {
		m = press(m, runes(string(r)))
	}
	return m
}

func TestModel_AddToCartFromGrid(t *testing.T) {
	m := newTestModel(t)

	m = press(m, runes("a"))
	if got := m.front.ItemCount(); got != 1 {
		t.Fatalf("ItemCount() = %d, want 1", got)
	}
	if !strings.Contains(m.InfoMessage(), "Added Wireless Bluetooth Headphones") {
		t.Errorf("InfoMessage() = %q", m.InfoMessage())
	}

	// right then down on a two-column grid lands on the fourth product
	m = press(m, runes("l"), keyType(tea.KeyDown), keyType(tea.KeyEnter))
	if m.Cursor() != 3 {
		t.Fatalf("Cursor() = %d, want 3", m.Cursor())
	}
	lines := m.front.Summary().Lines
	if len(lines) != 2 || lines[1].Product.ID != 4 {
		t.Errorf("cart lines = %+v, want product 4 second", lines)
	}
}

func TestModel_CursorStaysInGrid(t *testing.T) {
	m := newTestModel(t)

	m = press(m, runes("h"), runes("k"))
	if m.Cursor() != 0 {
		t.Errorf("Cursor() = %d after moving off the top left, want 0", m.Cursor())
	}

	for range 10 {
		m = press(m, runes("j"))
	}
	if m.Cursor() != 6 {
		t.Errorf("Cursor() = %d after moving past the bottom, want 6", m.Cursor())
	}
}

func TestModel_GridScrollsWithCursor(t *testing.T) {
	m := newTestModel(t)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: ChromeHeight + 8})
	m = next.(Model)

	m = press(m, runes("j"))
	if m.scrollRow != 1 {
		t.Fatalf("scrollRow = %d, want 1", m.scrollRow)
	}
	m = press(m, runes("j"), runes("j"))
	if m.scrollRow != 3 {
		t.Fatalf("scrollRow = %d, want 3", m.scrollRow)
	}
	m = press(m, runes("k"))
	if m.scrollRow != 2 {
		t.Errorf("scrollRow = %d, want 2", m.scrollRow)
	}
	if !strings.Contains(m.View(), "row 3-3 of 4") {
		t.Error("View() should show the scroll indicator")
	}
}

func TestModel_Search(t *testing.T) {
	m := newTestModel(t)

	m = press(m, runes("/"))
	if m.Mode() != keymap.ModeSearch {
		t.Fatalf("Mode() = %s, want search", m.Mode())
	}

	// "l" is typed into the search box, not taken as a move
	m = typeText(m, "wireless")
	if got := m.front.Search(); got != "wireless" {
		t.Fatalf("Search() = %q, want wireless", got)
	}
	if got := len(m.front.Visible()); got != 2 {
		t.Fatalf("visible products = %d, want 2", got)
	}
	if m.Mode() != keymap.ModeSearch {
		t.Error("typing should stay in search mode")
	}

	m = press(m, keyType(tea.KeyEnter))
	if m.Mode() != keymap.ModeBrowse {
		t.Fatalf("Mode() = %s after enter, want browse", m.Mode())
	}
	if m.front.Search() != "wireless" {
		t.Error("enter should keep the search text")
	}

	m = press(m, keyType(tea.KeyEsc))
	if m.front.Search() != "" {
		t.Errorf("esc in browse mode should clear the search, got %q", m.front.Search())
	}
}

func TestModel_SearchEscClears(t *testing.T) {
	m := newTestModel(t)
	m = press(m, runes("/"))
	m = typeText(m, "zzz")
	if !strings.Contains(m.View(), "No products found") {
		t.Error("View() should report no products")
	}

	m = press(m, keyType(tea.KeyEsc))
	if m.Mode() != keymap.ModeBrowse {
		t.Errorf("Mode() = %s, want browse", m.Mode())
	}
	if m.front.Search() != "" || len(m.front.Visible()) != 8 {
		t.Error("esc should clear the search and show every product")
	}
}

func TestModel_CycleCategory(t *testing.T) {
	m := newTestModel(t)
	m = press(m, runes("l"))

	m = press(m, keyType(tea.KeyTab))
	if got := m.front.Category(); got != catalog.CategoryElectronics {
		t.Fatalf("Category() = %s, want Electronics", got)
	}
	if m.Cursor() != 0 {
		t.Error("changing category should reset the cursor")
	}

	m = press(m, keyType(tea.KeyShiftTab), keyType(tea.KeyShiftTab))
	if got := m.front.Category(); got != catalog.CategorySports {
		t.Errorf("Category() = %s, want Sports", got)
	}
}

func TestModel_CartPanel(t *testing.T) {
	m := newTestModel(t)
	m = press(m, runes("a"), runes("c"))

	if m.Mode() != keymap.ModeCart {
		t.Fatalf("Mode() = %s, want cart", m.Mode())
	}
	if m.front.ScrollLocked() {
		t.Error("the cart panel must not lock scrolling")
	}
	if !strings.Contains(m.View(), "Shopping Cart (1)") {
		t.Error("View() should show the cart panel")
	}

	m = press(m, runes("+"))
	if got := m.front.Summary().Lines[0].Quantity; got != 2 {
		t.Fatalf("quantity = %d, want 2", got)
	}

	m = press(m, runes("-"), runes("-"))
	if !m.front.Summary().IsEmpty() {
		t.Fatalf("decrementing to zero should remove the line, got %+v", m.front.Summary().Lines)
	}

	m = press(m, keyType(tea.KeyEsc))
	if m.Mode() != keymap.ModeBrowse {
		t.Errorf("Mode() = %s after esc, want browse", m.Mode())
	}
}

func TestModel_CartRemoveLine(t *testing.T) {
	m := newTestModel(t)
	m = press(m, runes("a"), runes("l"), runes("a"), runes("c"))

	m = press(m, runes("j"))
	if m.CartCursor() != 1 {
		t.Fatalf("CartCursor() = %d, want 1", m.CartCursor())
	}
	m = press(m, runes("x"))

	lines := m.front.Summary().Lines
	if len(lines) != 1 || lines[0].Product.ID != 1 {
		t.Fatalf("lines = %+v, want only product 1", lines)
	}
	if m.CartCursor() != 0 {
		t.Errorf("CartCursor() = %d after removing the last line, want 0", m.CartCursor())
	}
}

func TestModel_CheckoutEmptyCart(t *testing.T) {
	m := newTestModel(t)
	m = press(m, runes("o"))

	if m.Mode() != keymap.ModeBrowse {
		t.Errorf("Mode() = %s, want browse", m.Mode())
	}
	if m.ErrorMessage() != "Your cart is empty" {
		t.Errorf("ErrorMessage() = %q", m.ErrorMessage())
	}
	if m.ErrorSeverity() != errors.SeverityWarning {
		t.Errorf("ErrorSeverity() = %s, want warning", m.ErrorSeverity())
	}
}

func TestModel_CheckoutFlow(t *testing.T) {
	m := newTestModel(t)
	m = press(m, runes("a"), runes("a"), runes("c"), runes("o"))

	if m.Mode() != keymap.ModeCheckout {
		t.Fatalf("Mode() = %s, want checkout", m.Mode())
	}
	if !m.front.ScrollLocked() {
		t.Error("checkout should lock scrolling")
	}
	if m.front.Overlays().Cart {
		t.Error("opening checkout should close the cart panel")
	}

	m = press(m, keyType(tea.KeyEnter))
	if !strings.HasPrefix(m.ErrorMessage(), "Please fill in") {
		t.Fatalf("ErrorMessage() = %q, want missing fields", m.ErrorMessage())
	}
	if m.front.Order() != nil {
		t.Fatal("an incomplete form must not place an order")
	}

	values := []string{"Jane", "1-Main-St", "Springfield", "12345", "4242424242424242", "12/30", "123"}
	for i, v := range values {
		m = typeText(m, v)
		if i < len(values)-1 {
			m = press(m, keyType(tea.KeyTab))
		}
	}
	if got := m.front.CheckoutForm().CVV; got != "123" {
		t.Fatalf("CheckoutForm().CVV = %q, want 123", got)
	}

	m = press(m, keyType(tea.KeyEnter))
	if m.Mode() != keymap.ModeConfirmation {
		t.Fatalf("Mode() = %s, want confirmation (error %q)", m.Mode(), m.ErrorMessage())
	}
	order := m.front.Order()
	if order == nil || order.ItemCount != 2 {
		t.Fatalf("Order() = %+v, want 2 items", order)
	}
	if m.front.ItemCount() != 2 {
		t.Error("the cart is kept until the confirmation is dismissed")
	}
	if !strings.Contains(m.View(), "Order Placed!") {
		t.Error("View() should show the confirmation")
	}

	m = press(m, keyType(tea.KeyEnter))
	if m.Mode() != keymap.ModeBrowse {
		t.Fatalf("Mode() = %s after continue, want browse", m.Mode())
	}
	if m.front.ItemCount() != 0 || m.front.ScrollLocked() {
		t.Error("continuing should empty the cart and release the scroll lock")
	}
}

func TestModel_CheckoutCancel(t *testing.T) {
	m := newTestModel(t)
	m = press(m, runes("a"), runes("o"))
	m = typeText(m, "Jane")
	m = press(m, keyType(tea.KeyEsc))

	if m.Mode() != keymap.ModeBrowse {
		t.Fatalf("Mode() = %s, want browse", m.Mode())
	}
	if m.front.CheckoutForm().FullName != "" {
		t.Error("cancelling should clear the form")
	}
	if m.front.ItemCount() != 1 {
		t.Error("cancelling should keep the cart")
	}
}

func TestModel_SignIn(t *testing.T) {
	m := newTestModel(t)
	m = press(m, runes("L"))

	if m.Mode() != keymap.ModeAuth {
		t.Fatalf("Mode() = %s, want auth", m.Mode())
	}
	if m.front.AuthMode() != account.ModeLogin {
		t.Fatalf("AuthMode() = %s, want login", m.front.AuthMode())
	}
	if m.authFocus != authEmail {
		t.Errorf("focus = %d, want the email field", m.authFocus)
	}

	m = press(m, keyType(tea.KeyEnter))
	if m.ErrorMessage() != "Please fill in: email, password" {
		t.Fatalf("ErrorMessage() = %q", m.ErrorMessage())
	}
	if m.ErrorSeverity() != errors.SeverityInfo {
		t.Errorf("ErrorSeverity() = %s, want info", m.ErrorSeverity())
	}

	m = typeText(m, "jane@example.com")
	m = press(m, keyType(tea.KeyTab))
	m = typeText(m, "secret")
	m = press(m, keyType(tea.KeyEnter))

	if m.Mode() != keymap.ModeBrowse {
		t.Fatalf("Mode() = %s, want browse", m.Mode())
	}
	session := m.front.Session()
	if !session.LoggedIn || session.DisplayName != "jane" {
		t.Errorf("Session() = %+v, want jane signed in", session)
	}
	if m.InfoMessage() != "Welcome, jane!" {
		t.Errorf("InfoMessage() = %q", m.InfoMessage())
	}
	if !strings.Contains(m.View(), "Hi, jane") {
		t.Error("View() should greet the shopper")
	}

	m = press(m, runes("O"))
	if m.front.Session().LoggedIn {
		t.Error("O should sign out")
	}
}

func TestModel_SignUpToggle(t *testing.T) {
	m := newTestModel(t)
	m = press(m, runes("S"))
	if m.front.AuthMode() != account.ModeSignup || m.authFocus != authName {
		t.Fatalf("sign up should focus the name field, mode %s focus %d", m.front.AuthMode(), m.authFocus)
	}

	m = typeText(m, "Jane")
	m = press(m, keyType(tea.KeyCtrlT))
	if m.front.AuthMode() != account.ModeLogin {
		t.Fatalf("AuthMode() = %s, want login", m.front.AuthMode())
	}
	if m.authFocus != authEmail {
		t.Errorf("the hidden name field should lose focus, focus = %d", m.authFocus)
	}
	if m.front.AuthForm().Name != "Jane" {
		t.Error("toggling should keep the form contents")
	}

	m = press(m, keyType(tea.KeyEsc))
	if m.Mode() != keymap.ModeBrowse || m.front.AuthForm().Name != "" {
		t.Error("esc should close the modal and clear the form")
	}
}

func TestModel_Menu(t *testing.T) {
	m := newTestModel(t)
	m = press(m, runes("m"))

	if m.Mode() != keymap.ModeMenu {
		t.Fatalf("Mode() = %s, want menu", m.Mode())
	}
	if !m.front.ScrollLocked() {
		t.Error("the menu should lock scrolling")
	}

	m = press(m, runes("j"), runes("j"), keyType(tea.KeyEnter))
	if got := m.front.Category(); got != catalog.CategoryAccessories {
		t.Errorf("Category() = %s, want Accessories", got)
	}
	if m.front.Overlays().Menu || m.front.ScrollLocked() {
		t.Error("selecting a category should close the menu")
	}
}

func TestModel_MenuSignIn(t *testing.T) {
	m := newTestModel(t)
	m = press(m, runes("m"))

	items := m.menuLabels()
	idx := -1
	for i, label := range items {
		if strings.TrimSpace(label) == "Sign In" {
			idx = i
		}
	}
	if idx < 0 {
		t.Fatalf("menu %v has no Sign In entry", items)
	}
	for range idx {
		m = press(m, keyType(tea.KeyDown))
	}
	m = press(m, keyType(tea.KeyEnter))

	if m.Mode() != keymap.ModeAuth {
		t.Fatalf("Mode() = %s, want auth", m.Mode())
	}
	if m.front.Overlays().Menu {
		t.Error("opening auth should close the menu")
	}
}

func TestModel_QuitReleasesOverlays(t *testing.T) {
	m := newTestModel(t)
	m = press(m, runes("m"))

	next, cmd := m.Update(runes("q"))
	m = next.(Model)
	if cmd == nil {
		t.Fatal("q should return a quit command")
	}
	if !m.Quitting() {
		t.Error("Quitting() should be true")
	}
	if m.front.ScrollLocked() {
		t.Error("quitting should release the scroll lock")
	}
	if m.View() != "" {
		t.Error("View() should be empty after quitting")
	}
}

func TestModel_ClearStatus(t *testing.T) {
	m := newTestModel(t)
	m = press(m, runes("a"))
	seq := m.statusSeq

	next, _ := m.Update(clearStatusMsg{seq: seq - 1})
	m = next.(Model)
	if m.InfoMessage() == "" {
		t.Fatal("a stale clear should keep the message")
	}

	next, _ = m.Update(clearStatusMsg{seq: seq})
	m = next.(Model)
	if m.InfoMessage() != "" {
		t.Errorf("InfoMessage() = %q, want cleared", m.InfoMessage())
	}
}
