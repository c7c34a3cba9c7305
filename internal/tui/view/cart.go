package view

import (
	"fmt"
	"strings"

	"github.com/DanielWebDeveloper25/e-commerce/internal/cart"
	"github.com/DanielWebDeveloper25/e-commerce/internal/tui/styles"
)

// EmptyCart is shown in the cart panel when there are no lines.
const EmptyCart = "Your cart is empty"

// CartPanelWidth is the width of the cart side panel.
const CartPanelWidth = 40

// CartState holds what the cart panel shows.
type CartState struct {
	Summary cart.Summary
	Cursor  int
	Focused bool
	Height  int
}

// RenderCart renders the cart side panel.
func RenderCart(s *styles.Styles, st CartState) string {
	inner := CartPanelWidth - 4
	var b strings.Builder

	b.WriteString(s.PanelTitle.Render(fmt.Sprintf("Shopping Cart (%d)", st.Summary.ItemCount)))
	b.WriteString("\n")

	if st.Summary.IsEmpty() {
		b.WriteString(s.Muted.Render(EmptyCart))
		return s.Panel.Width(CartPanelWidth - 2).Height(st.Height).Render(b.String())
	}

	for i, l := range st.Summary.Lines {
		name := Truncate(l.Product.Name, inner-2)
		detail := fmt.Sprintf("%s × %d = %s",
			cart.FormatMoney(l.Product.Price), l.Quantity, cart.FormatMoney(l.Subtotal()))

		if st.Focused && i == st.Cursor {
			b.WriteString(s.LineSelected.Render("▸ " + name))
		} else {
			b.WriteString(s.Text.Render("  " + name))
		}
		b.WriteString("\n")
		b.WriteString(s.Muted.Render("  " + detail))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(s.Price.Render("Total: " + cart.FormatMoney(st.Summary.Total)))
	b.WriteString("\n\n")
	b.WriteString(s.Button.Render("[o] Checkout"))

	return s.Panel.Width(CartPanelWidth - 2).Height(st.Height).Render(b.String())
}
