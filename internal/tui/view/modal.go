package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/DanielWebDeveloper25/e-commerce/internal/cart"
	"github.com/DanielWebDeveloper25/e-commerce/internal/checkout"
	"github.com/DanielWebDeveloper25/e-commerce/internal/tui/styles"
)

// ModalWidth is the content width of the auth and checkout modals.
const ModalWidth = 46

// Field is one rendered form input.
type Field struct {
	Label   string
	Input   string // rendered textinput view
	Focused bool
}

// AuthState holds what the auth modal shows.
type AuthState struct {
	Title     string // "Sign In" or "Create Account"
	Fields    []Field
	Error     string
	AltPrompt string // hint for switching modes
}

// RenderAuth renders the sign in / sign up modal.
func RenderAuth(s *styles.Styles, st AuthState) string {
	var b strings.Builder
	b.WriteString(s.ModalTitle.Render(st.Title))
	b.WriteString("\n")
	writeFields(&b, s, st.Fields)
	writeError(&b, s, st.Error)
	b.WriteString("\n")
	b.WriteString(s.Button.Render(st.Title))
	b.WriteString("\n\n")
	b.WriteString(s.Muted.Render(st.AltPrompt))
	return s.Modal.Width(ModalWidth).Render(b.String())
}

// CheckoutState holds what the checkout modal shows.
type CheckoutState struct {
	Summary cart.Summary
	Fields  []Field
	Error   string
}

// RenderCheckout renders the order summary and the checkout form.
func RenderCheckout(s *styles.Styles, st CheckoutState) string {
	var b strings.Builder
	b.WriteString(s.ModalTitle.Render("Checkout"))
	b.WriteString("\n")

	b.WriteString(s.PanelTitle.Render("Order Summary"))
	b.WriteString("\n")
	for _, l := range st.Summary.Lines {
		left := fmt.Sprintf("%s × %d", Truncate(l.Product.Name, ModalWidth-18), l.Quantity)
		b.WriteString(summaryRow(s, left, cart.FormatMoney(l.Subtotal()), ModalWidth))
		b.WriteString("\n")
	}
	b.WriteString(s.Price.Render("Total: " + cart.FormatMoney(st.Summary.Total)))
	b.WriteString("\n\n")

	b.WriteString(s.PanelTitle.Render("Shipping & Payment"))
	b.WriteString("\n")
	writeFields(&b, s, st.Fields)
	writeError(&b, s, st.Error)
	b.WriteString("\n")
	b.WriteString(s.Button.Render("Place Order"))
	return s.Modal.Width(ModalWidth).Render(b.String())
}

// summaryRow right-aligns right against left within width cells, keeping
// at least one space between them.
func summaryRow(s *styles.Styles, left, right string, width int) string {
	l, r := s.Text.Render(left), s.Text.Render(right)
	pad := max(1, width-lipgloss.Width(l)-lipgloss.Width(r))
	return l + strings.Repeat(" ", pad) + r
}

// RenderConfirmation renders the order-placed confirmation.
func RenderConfirmation(s *styles.Styles, order checkout.Order) string {
	var b strings.Builder
	b.WriteString(s.Success.Render("✓ Order Placed!"))
	b.WriteString("\n\n")
	b.WriteString(s.Text.Render("Order number: ") + s.Primary.Render(order.DisplayNumber()))
	b.WriteString("\n")
	b.WriteString(s.Text.Render(fmt.Sprintf("Items: %d", order.ItemCount)))
	b.WriteString("\n")
	b.WriteString(s.Price.Render("Total: " + cart.FormatMoney(order.Total)))
	b.WriteString("\n\n")
	b.WriteString(s.Muted.Render("Thank you for your purchase!"))
	b.WriteString("\n\n")
	b.WriteString(s.Button.Render("[enter] Continue Shopping"))
	return s.Modal.Width(ModalWidth).Render(b.String())
}

func writeFields(b *strings.Builder, s *styles.Styles, fields []Field) {
	for _, f := range fields {
		label := s.FieldLabel.Render(f.Label)
		if f.Focused {
			label = s.FieldFocused.Render(f.Label)
		}
		b.WriteString(label)
		b.WriteString("\n")
		b.WriteString(f.Input)
		b.WriteString("\n")
	}
}

func writeError(b *strings.Builder, s *styles.Styles, msg string) {
	if msg == "" {
		return
	}
	b.WriteString("\n")
	b.WriteString(s.Error.Render(msg))
	b.WriteString("\n")
}
