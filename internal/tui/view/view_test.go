package view

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/DanielWebDeveloper25/e-commerce/internal/cart"
	"github.com/DanielWebDeveloper25/e-commerce/internal/catalog"
	"github.com/DanielWebDeveloper25/e-commerce/internal/checkout"
	"github.com/DanielWebDeveloper25/e-commerce/internal/errors"
	"github.com/DanielWebDeveloper25/e-commerce/internal/tui/keymap"
	"github.com/DanielWebDeveloper25/e-commerce/internal/tui/styles"
)

func testStyles() *styles.Styles {
	return styles.New(styles.DefaultPalette())
}

func testSummary(t *testing.T) cart.Summary {
	t.Helper()
	c := cart.New()
	cat := catalog.Sample()
	for _, id := range []int{1, 1, 3} {
		p, ok := cat.ByID(id)
		if !ok {
			t.Fatalf("product %d missing from sample catalog", id)
		}
		c.Add(p)
	}
	return c.Snapshot()
}

func TestStarBar(t *testing.T) {
	tests := []struct {
		rating float64
		want   string
	}{
		{4.5, "★★★★☆"},
		{5, "★★★★★"},
		{0.9, "☆☆☆☆☆"},
		{3, "★★★☆☆"},
	}
	for _, tt := range tests {
		if got := StarBar(tt.rating); got != tt.want {
			t.Errorf("StarBar(%v) = %q, want %q", tt.rating, got, tt.want)
		}
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		text  string
		limit int
		want  string
	}{
		{"Yoga Mat", 20, "Yoga Mat"},
		{"Yoga Mat Premium", 10, "Yoga Ma..."},
		{"Yoga", 2, "Yo"},
		{"Yoga", 0, ""},
		{"★★★★★", 4, "★..."},
	}
	for _, tt := range tests {
		if got := Truncate(tt.text, tt.limit); got != tt.want {
			t.Errorf("Truncate(%q, %d) = %q, want %q", tt.text, tt.limit, got, tt.want)
		}
	}
}

func TestColumns(t *testing.T) {
	tests := []struct {
		name       string
		configured int
		width      int
		want       int
	}{
		{"configured fits", 2, 100, 2},
		{"zero uses default", 0, 100, DefaultColumns},
		{"narrow terminal", 4, 60, 2},
		{"never below one", 3, 10, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Columns(tt.configured, tt.width); got != tt.want {
				t.Errorf("Columns(%d, %d) = %d, want %d", tt.configured, tt.width, got, tt.want)
			}
		})
	}
}

func TestRenderGrid(t *testing.T) {
	s := testStyles()
	products := catalog.Sample().Products()

	out := RenderGrid(s, GridState{
		Products: products,
		Columns:  2,
		Width:    100,
		Height:   CardHeight(false) * 2,
	})
	if !strings.Contains(out, "Wireless Bluetooth Headphones") {
		t.Error("grid should show the first product")
	}
	if !strings.Contains(out, "$89.99") {
		t.Error("grid should show prices")
	}
	if strings.Contains(out, "Yoga Mat Premium") {
		t.Error("grid should only show the visible rows")
	}
	if !strings.Contains(out, "row 1-2 of 4") {
		t.Error("grid should show the scroll indicator")
	}

	empty := RenderGrid(s, GridState{Width: 60, Height: 10})
	if !strings.Contains(empty, NoProducts) {
		t.Errorf("empty grid = %q, want %q", empty, NoProducts)
	}
}

func TestRenderGrid_Scrolled(t *testing.T) {
	out := RenderGrid(testStyles(), GridState{
		Products:  catalog.Sample().Products(),
		Columns:   2,
		ScrollRow: 3,
		Width:     100,
		Height:    CardHeight(false),
	})
	if !strings.Contains(out, "Yoga Mat Premium") {
		t.Error("last row should be visible when scrolled to the end")
	}
	if strings.Contains(out, "Wireless Bluetooth Headphones") {
		t.Error("first row should be scrolled out")
	}
}

func TestRenderCart(t *testing.T) {
	s := testStyles()

	empty := RenderCart(s, CartState{Height: 10})
	if !strings.Contains(empty, EmptyCart) {
		t.Error("empty cart should say so")
	}

	out := RenderCart(s, CartState{Summary: testSummary(t), Focused: true, Height: 20})
	for _, want := range []string{"Shopping Cart (3)", "$89.99 × 2 = $179.98", "Total: $219.97", "[o] Checkout", "▸"} {
		if !strings.Contains(out, want) {
			t.Errorf("cart panel missing %q", want)
		}
	}
}

func TestRenderHeader(t *testing.T) {
	s := testStyles()

	out := RenderHeader(s, HeaderState{StoreName: "ShopZone", ItemCount: 3, Width: 100})
	for _, want := range []string{"ShopZone", "[L] Sign In", "🛒 3"} {
		if !strings.Contains(out, want) {
			t.Errorf("header missing %q", want)
		}
	}

	out = RenderHeader(s, HeaderState{StoreName: "ShopZone", DisplayName: "jane", Width: 100})
	if !strings.Contains(out, "Hi, jane") || strings.Contains(out, "Sign In") {
		t.Error("signed-in header should greet instead of offering sign in")
	}
}

func TestRenderCategories(t *testing.T) {
	out := RenderCategories(testStyles(), catalog.Categories(), catalog.CategoryHome)
	for _, c := range catalog.Categories() {
		if !strings.Contains(out, string(c)) {
			t.Errorf("category bar missing %s", c)
		}
	}
}

func TestRenderModals(t *testing.T) {
	s := testStyles()

	auth := RenderAuth(s, AuthState{
		Title:     "Sign In",
		Fields:    []Field{{Label: "Email", Input: "> jane@", Focused: true}},
		Error:     "Please fill in: password",
		AltPrompt: "Don't have an account?",
	})
	for _, want := range []string{"Sign In", "Email", "> jane@", "Please fill in: password", "Don't have an account?"} {
		if !strings.Contains(auth, want) {
			t.Errorf("auth modal missing %q", want)
		}
	}

	co := RenderCheckout(s, CheckoutState{
		Summary: testSummary(t),
		Fields:  []Field{{Label: "Full Name", Input: "> "}},
	})
	for _, want := range []string{"Checkout", "Order Summary", "Full Name", "Place Order"} {
		if !strings.Contains(co, want) {
			t.Errorf("checkout modal missing %q", want)
		}
	}

	conf := RenderConfirmation(s, checkout.Order{
		Number:    123456,
		ItemCount: 3,
		Total:     decimal.RequireFromString("229.97"),
	})
	for _, want := range []string{"Order Placed!", "#123456", "Items: 3", "Total: $229.97", "Continue Shopping"} {
		if !strings.Contains(conf, want) {
			t.Errorf("confirmation missing %q", want)
		}
	}
}

func TestRenderMenu(t *testing.T) {
	out := RenderMenu(testStyles(), MenuState{
		Title:  "ShopZone",
		Items:  []string{"All", "Sign In"},
		Cursor: 1,
		Height: 10,
	})
	if !strings.Contains(out, "ShopZone") || !strings.Contains(out, "Sign In") {
		t.Errorf("menu = %q", out)
	}
}

func TestRenderHelpBar(t *testing.T) {
	s := testStyles()
	entries := keymap.DefaultKeymap().Help(keymap.ModeBrowse)

	wide := RenderHelpBar(s, entries, 500)
	if !strings.Contains(wide, "[/] search") {
		t.Error("help bar should list the search key")
	}

	narrow := RenderHelpBar(s, entries, 40)
	if strings.Count(narrow, "\n") <= strings.Count(wide, "\n") {
		t.Error("narrow help bar should wrap")
	}
}

func TestRenderStatus(t *testing.T) {
	s := testStyles()
	if RenderStatus(s, "") != "" || RenderErrorStatus(s, "", errors.SeverityError) != "" {
		t.Error("empty status should render nothing")
	}
	if !strings.Contains(RenderStatus(s, "Added Yoga Mat to cart"), "Added Yoga Mat to cart") {
		t.Error("status should contain the message")
	}
	if !strings.Contains(RenderErrorStatus(s, "Your cart is empty", errors.SeverityWarning), "Your cart is empty") {
		t.Error("error status should contain the message")
	}
}

func TestStatusStyle(t *testing.T) {
	p := styles.DefaultPalette()
	s := styles.New(p)
	tests := []struct {
		sev  errors.Severity
		want lipgloss.Color
	}{
		{errors.SeverityInfo, p.Warning},
		{errors.SeverityWarning, p.Warning},
		{errors.SeverityError, p.Error},
	}
	for _, tt := range tests {
		t.Run(tt.sev.String(), func(t *testing.T) {
			if got := StatusStyle(s, tt.sev).GetForeground(); got != tt.want {
				t.Errorf("foreground = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSummaryRowWidth(t *testing.T) {
	s := testStyles()
	tests := []struct {
		name string
		left string
	}{
		{"ascii", "Yoga Mat × 2"},
		{"wide runes", "ワイヤレスイヤホン × 1"},
		{"emoji", "🎧 Headphones × 3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := summaryRow(s, tt.left, "$59.98", ModalWidth)
			if got := lipgloss.Width(row); got != ModalWidth {
				t.Errorf("row width = %d, want %d: %q", got, ModalWidth, row)
			}
			if !strings.HasSuffix(row, s.Text.Render("$59.98")) {
				t.Errorf("price should end the row: %q", row)
			}
		})
	}

	narrow := summaryRow(s, strings.Repeat("x", ModalWidth), "$1.00", ModalWidth)
	if got, want := lipgloss.Width(narrow), ModalWidth+1+len("$1.00"); got != want {
		t.Errorf("overlong row width = %d, want %d (one separating space)", got, want)
	}
}
