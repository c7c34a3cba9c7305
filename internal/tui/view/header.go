package view

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/DanielWebDeveloper25/e-commerce/internal/catalog"
	"github.com/DanielWebDeveloper25/e-commerce/internal/tui/styles"
)

// HeaderState holds what the header shows.
type HeaderState struct {
	StoreName     string
	SearchView    string // rendered search input
	SearchFocused bool
	DisplayName   string // empty when signed out
	ItemCount     int
	Width         int
}

// RenderHeader renders the store name, search box, account entry and cart
// badge on one row.
func RenderHeader(s *styles.Styles, st HeaderState) string {
	name := s.StoreName.Render(st.StoreName)

	searchStyle := s.SearchBox
	if st.SearchFocused {
		searchStyle = s.SearchFocus
	}
	search := searchStyle.Render("🔍 " + st.SearchView)

	account := s.Muted.Render("[L] Sign In")
	if st.DisplayName != "" {
		account = s.Account.Render("Hi, " + st.DisplayName)
	}

	badge := s.CartBadge.Render(fmt.Sprintf("🛒 %d", st.ItemCount))

	left := lipgloss.JoinHorizontal(lipgloss.Center, name, "  ", search)
	right := lipgloss.JoinHorizontal(lipgloss.Center, account, "  ", badge)

	gap := st.Width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 2 {
		gap = 2
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, left, lipgloss.NewStyle().Width(gap).Render(""), right)
}

// RenderCategories renders the category bar with active highlighted.
func RenderCategories(s *styles.Styles, categories []catalog.Category, active catalog.Category) string {
	tabs := make([]string, len(categories))
	for i, c := range categories {
		if c == active {
			tabs[i] = s.CategoryActive.Render(string(c))
		} else {
			tabs[i] = s.CategoryInactive.Render(string(c))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}
