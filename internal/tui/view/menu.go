package view

import (
	"strings"

	"github.com/DanielWebDeveloper25/e-commerce/internal/tui/styles"
)

// MenuWidth is the width of the navigation drawer.
const MenuWidth = 28

// MenuState holds what the navigation drawer shows.
type MenuState struct {
	Title  string
	Items  []string
	Cursor int
	Height int
}

// RenderMenu renders the navigation drawer.
func RenderMenu(s *styles.Styles, st MenuState) string {
	var b strings.Builder
	b.WriteString(s.PanelTitle.Render(st.Title))
	b.WriteString("\n")
	for i, item := range st.Items {
		if i == st.Cursor {
			b.WriteString(s.MenuSelected.Render(item))
		} else {
			b.WriteString(s.MenuItem.Render(item))
		}
		b.WriteString("\n")
	}
	return s.Panel.Width(MenuWidth - 2).Height(st.Height).Render(strings.TrimRight(b.String(), "\n"))
}
