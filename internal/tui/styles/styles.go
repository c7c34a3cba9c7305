// Package styles holds the color palettes and lipgloss styles of the
// terminal storefront. Built-in palettes can be extended with YAML theme
// files from the themes directory.
package styles

import "github.com/charmbracelet/lipgloss"

// Styles contains every lipgloss style the views use, built from one
// palette so that switching themes rebuilds them all.
type Styles struct {
	Palette *ColorPalette

	// Convenience styles for colors
	Primary   lipgloss.Style
	Secondary lipgloss.Style
	Warning   lipgloss.Style
	Error     lipgloss.Style
	Muted     lipgloss.Style
	Text      lipgloss.Style

	// Header
	StoreName   lipgloss.Style
	SearchBox   lipgloss.Style
	SearchFocus lipgloss.Style
	Account     lipgloss.Style
	CartBadge   lipgloss.Style

	// Category bar
	CategoryActive   lipgloss.Style
	CategoryInactive lipgloss.Style

	// Product grid
	Card         lipgloss.Style
	CardSelected lipgloss.Style
	ProductName  lipgloss.Style
	Price        lipgloss.Style
	Stars        lipgloss.Style
	Category     lipgloss.Style

	// Panels and modals
	Panel        lipgloss.Style
	PanelTitle   lipgloss.Style
	Modal        lipgloss.Style
	ModalTitle   lipgloss.Style
	LineSelected lipgloss.Style
	FieldLabel   lipgloss.Style
	FieldFocused lipgloss.Style
	Button       lipgloss.Style
	MenuItem     lipgloss.Style
	MenuSelected lipgloss.Style
	Success      lipgloss.Style

	// Help bar
	HelpBar  lipgloss.Style
	HelpKey  lipgloss.Style
	HelpDesc lipgloss.Style
	Status   lipgloss.Style
}

// New builds the styles for p.
func New(p *ColorPalette) *Styles {
	s := &Styles{Palette: p}

	s.Primary = lipgloss.NewStyle().Foreground(p.Primary)
	s.Secondary = lipgloss.NewStyle().Foreground(p.Secondary)
	s.Warning = lipgloss.NewStyle().Foreground(p.Warning)
	s.Error = lipgloss.NewStyle().Foreground(p.Error)
	s.Muted = lipgloss.NewStyle().Foreground(p.Muted)
	s.Text = lipgloss.NewStyle().Foreground(p.Text)

	s.StoreName = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Primary)

	s.SearchBox = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Border).
		Padding(0, 1)

	s.SearchFocus = s.SearchBox.
		BorderForeground(p.Primary)

	s.Account = lipgloss.NewStyle().
		Foreground(p.Text)

	s.CartBadge = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Surface).
		Background(p.Badge).
		Padding(0, 1)

	s.CategoryActive = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Text).
		Background(p.Primary).
		Padding(0, 2)

	s.CategoryInactive = lipgloss.NewStyle().
		Foreground(p.Muted).
		Padding(0, 2)

	s.Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Border).
		Padding(0, 1)

	s.CardSelected = s.Card.
		BorderForeground(p.Primary)

	s.ProductName = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Text)

	s.Price = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Secondary)

	s.Stars = lipgloss.NewStyle().
		Foreground(p.Rating)

	s.Category = lipgloss.NewStyle().
		Foreground(p.Tag).
		Italic(true)

	s.Panel = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Border).
		Padding(0, 1)

	s.PanelTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Primary).
		MarginBottom(1)

	s.Modal = lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(p.Primary).
		Background(p.Surface).
		Padding(1, 2)

	s.ModalTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Primary).
		MarginBottom(1)

	s.LineSelected = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Primary)

	s.FieldLabel = lipgloss.NewStyle().
		Foreground(p.Muted)

	s.FieldFocused = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Primary)

	s.Button = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Surface).
		Background(p.Primary).
		Padding(0, 2)

	s.MenuItem = lipgloss.NewStyle().
		Foreground(p.Text).
		PaddingLeft(2)

	s.MenuSelected = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Primary).
		PaddingLeft(1).
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(p.Primary)

	s.Success = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Secondary)

	s.HelpBar = lipgloss.NewStyle().
		Foreground(p.Muted).
		MarginTop(1)

	s.HelpKey = lipgloss.NewStyle().
		Foreground(p.Key).
		Bold(true)

	s.HelpDesc = lipgloss.NewStyle().
		Foreground(p.Muted)

	s.Status = lipgloss.NewStyle().
		Foreground(p.Secondary)

	return s
}

// activeTheme holds the currently active styles.
var activeTheme = New(DefaultPalette())

// SetActiveTheme rebuilds the active styles from the named theme and
// returns them.
//
// Note: not thread-safe. Call it before the program starts or from the
// bubbletea event loop only.
func SetActiveTheme(name ThemeName) *Styles {
	activeTheme = New(GetPalette(name))
	return activeTheme
}

// Active returns the currently active styles.
func Active() *Styles {
	return activeTheme
}
