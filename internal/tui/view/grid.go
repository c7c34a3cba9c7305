package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/DanielWebDeveloper25/e-commerce/internal/cart"
	"github.com/DanielWebDeveloper25/e-commerce/internal/catalog"
	"github.com/DanielWebDeveloper25/e-commerce/internal/tui/styles"
)

// NoProducts is shown when the filter matches nothing.
const NoProducts = "No products found"

// Grid layout
const (
	// DefaultColumns is used when the configured column count is zero.
	DefaultColumns = 2

	// MinCardWidth keeps cards readable on narrow terminals.
	MinCardWidth = 24

	// cardBorder is the width and height taken by a card's border.
	cardBorder = 2
	// cardPadding is the horizontal padding inside a card.
	cardPadding = 2
)

// GridState holds what the product grid shows.
type GridState struct {
	Products         []catalog.Product
	Cursor           int
	Columns          int
	ScrollRow        int // first visible row
	Width            int
	Height           int
	ShowDescriptions bool
}

// Columns returns the number of card columns that fit in width, at most
// the configured count.
func Columns(configured, width int) int {
	if configured <= 0 {
		configured = DefaultColumns
	}
	fit := width / (MinCardWidth + cardBorder)
	if fit < 1 {
		fit = 1
	}
	return min(configured, fit)
}

// CardHeight returns the rendered height of one card including borders.
func CardHeight(showDescriptions bool) int {
	h := 4 // name, stars, price, category
	if showDescriptions {
		h += 2
	}
	return h + cardBorder
}

// VisibleRows returns how many card rows fit in height.
func VisibleRows(height int, showDescriptions bool) int {
	return max(1, height/CardHeight(showDescriptions))
}

// RenderGrid renders the product cards in rows, starting at ScrollRow.
func RenderGrid(s *styles.Styles, st GridState) string {
	if len(st.Products) == 0 {
		return lipgloss.NewStyle().
			Width(st.Width).
			Align(lipgloss.Center).
			PaddingTop(2).
			Render(s.Muted.Render(NoProducts))
	}

	cols := Columns(st.Columns, st.Width)
	cardWidth := st.Width/cols - cardBorder

	rows := VisibleRows(st.Height, st.ShowDescriptions)
	start := st.ScrollRow * cols
	end := min(len(st.Products), start+rows*cols)

	var lines []string
	for i := start; i < end; i += cols {
		var cards []string
		for j := i; j < min(i+cols, end); j++ {
			cards = append(cards, renderCard(s, st.Products[j], cardWidth, j == st.Cursor, st.ShowDescriptions))
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}

	totalRows := (len(st.Products) + cols - 1) / cols
	if totalRows > rows {
		lines = append(lines, s.Muted.Render(fmt.Sprintf("row %d-%d of %d",
			st.ScrollRow+1, min(st.ScrollRow+rows, totalRows), totalRows)))
	}
	return strings.Join(lines, "\n")
}

func renderCard(s *styles.Styles, p catalog.Product, width int, selected, showDescription bool) string {
	inner := width - cardPadding
	lines := []string{
		s.ProductName.Render(Truncate(p.Name, inner)),
		s.Stars.Render(StarBar(p.Rating)) + s.Muted.Render(fmt.Sprintf(" (%d)", p.Reviews)),
		s.Price.Render(cart.FormatMoney(p.Price)),
	}
	if showDescription {
		lines = append(lines, s.Muted.Render(Truncate(p.Description, inner*2)))
	}
	lines = append(lines, s.Category.Render(string(p.Category)))

	style := s.Card
	if selected {
		style = s.CardSelected
	}
	return style.Width(width).Render(strings.Join(lines, "\n"))
}

// StarBar renders rating as five filled or empty stars.
func StarBar(rating float64) string {
	n := catalog.Stars(rating)
	return strings.Repeat("★", n) + strings.Repeat("☆", 5-n)
}

// Truncate shortens text to at most limit runes, ending with an ellipsis.
func Truncate(text string, limit int) string {
	r := []rune(text)
	if limit <= 0 {
		return ""
	}
	if len(r) <= limit {
		return text
	}
	if limit <= 3 {
		return string(r[:limit])
	}
	return string(r[:limit-3]) + "..."
}
