// Package tui provides the terminal storefront.
// This file contains layout-related constants and dimension calculation functions.
package tui

import "github.com/DanielWebDeveloper25/e-commerce/internal/tui/view"

// Fixed rows around the product grid.
const (
	// HeaderHeight is the header row including the search box border.
	HeaderHeight = 3

	// CategoryBarHeight is the category tab row.
	CategoryBarHeight = 1

	// StatusHeight is the status message row.
	StatusHeight = 1

	// HelpBarHeight is the help bar including its top margin.
	HelpBarHeight = 2

	// ChromeHeight is every row not available to the grid.
	ChromeHeight = HeaderHeight + CategoryBarHeight + StatusHeight + HelpBarHeight + 1
)

// Fallback terminal size used until the first WindowSizeMsg arrives.
const (
	DefaultWidth  = 100
	DefaultHeight = 32
)

// BodyHeight returns the rows available to the grid and panels.
func BodyHeight(termHeight int, showDescriptions bool) int {
	return max(view.CardHeight(showDescriptions), termHeight-ChromeHeight)
}

// GridWidth returns the width left for the product grid when the menu
// and/or cart panel are shown beside it.
func GridWidth(termWidth int, menuOpen, cartOpen bool) int {
	w := termWidth
	if menuOpen {
		w -= view.MenuWidth
	}
	if cartOpen {
		w -= view.CartPanelWidth
	}
	return max(view.MinCardWidth+2, w)
}
