package styles

import (
	"slices"

	"github.com/charmbracelet/lipgloss"
)

// ThemeName represents a named color theme.
type ThemeName string

// Available theme names.
const (
	ThemeDefault ThemeName = "default"
	ThemeMonokai ThemeName = "monokai"
	ThemeDracula ThemeName = "dracula"
	ThemeNord    ThemeName = "nord"
)

// BuiltinThemes returns all built-in theme names.
func BuiltinThemes() []string {
	return []string{
		string(ThemeDefault),
		string(ThemeMonokai),
		string(ThemeDracula),
		string(ThemeNord),
	}
}

// ValidThemes lists the built-in themes followed by the discovered custom
// ones.
func ValidThemes() []string {
	return append(BuiltinThemes(), CustomThemeNames()...)
}

// IsValidTheme reports whether name is a built-in or registered custom theme.
func IsValidTheme(name string) bool {
	return slices.Contains(BuiltinThemes(), name) || IsCustomTheme(name)
}

// ColorPalette is the set of colors a theme assigns to storefront roles.
type ColorPalette struct {
	Primary   lipgloss.Color // store name, selection, active category
	Secondary lipgloss.Color // prices, success messages
	Warning   lipgloss.Color
	Error     lipgloss.Color // rejected forms, empty cart
	Muted     lipgloss.Color // descriptions, hints
	Surface   lipgloss.Color // modal backgrounds
	Text      lipgloss.Color
	Border    lipgloss.Color // cards and panels

	// Accents. Theme files may omit them; see ThemeFile.ToPalette.
	Rating lipgloss.Color // filled stars
	Tag    lipgloss.Color // category label on cards
	Key    lipgloss.Color // key names in the help bar
	Badge  lipgloss.Color // cart item count
}

// DefaultPalette returns the violet and emerald dark palette.
func DefaultPalette() *ColorPalette {
	return &ColorPalette{
		Primary:   lipgloss.Color("#A78BFA"),
		Secondary: lipgloss.Color("#10B981"),
		Warning:   lipgloss.Color("#F59E0B"),
		Error:     lipgloss.Color("#F87171"),
		Muted:     lipgloss.Color("#9CA3AF"),
		Surface:   lipgloss.Color("#1F2937"),
		Text:      lipgloss.Color("#F9FAFB"),
		Border:    lipgloss.Color("#6B7280"),

		Rating: lipgloss.Color("#FBBF24"),
		Tag:    lipgloss.Color("#60A5FA"),
		Key:    lipgloss.Color("#60A5FA"),
		Badge:  lipgloss.Color("#10B981"),
	}
}

// MonokaiPalette returns the Monokai palette.
func MonokaiPalette() *ColorPalette {
	return &ColorPalette{
		Primary:   lipgloss.Color("#F92672"),
		Secondary: lipgloss.Color("#A6E22E"),
		Warning:   lipgloss.Color("#E6DB74"),
		Error:     lipgloss.Color("#F92672"),
		Muted:     lipgloss.Color("#75715E"),
		Surface:   lipgloss.Color("#272822"),
		Text:      lipgloss.Color("#F8F8F2"),
		Border:    lipgloss.Color("#49483E"),

		Rating: lipgloss.Color("#E6DB74"),
		Tag:    lipgloss.Color("#66D9EF"),
		Key:    lipgloss.Color("#FD971F"),
		Badge:  lipgloss.Color("#A6E22E"),
	}
}

// DraculaPalette returns the Dracula palette.
func DraculaPalette() *ColorPalette {
	return &ColorPalette{
		Primary:   lipgloss.Color("#BD93F9"),
		Secondary: lipgloss.Color("#50FA7B"),
		Warning:   lipgloss.Color("#F1FA8C"),
		Error:     lipgloss.Color("#FF5555"),
		Muted:     lipgloss.Color("#6272A4"),
		Surface:   lipgloss.Color("#282A36"),
		Text:      lipgloss.Color("#F8F8F2"),
		Border:    lipgloss.Color("#44475A"),

		Rating: lipgloss.Color("#F1FA8C"),
		Tag:    lipgloss.Color("#8BE9FD"),
		Key:    lipgloss.Color("#FF79C6"),
		Badge:  lipgloss.Color("#50FA7B"),
	}
}

// NordPalette returns the Nord palette.
func NordPalette() *ColorPalette {
	return &ColorPalette{
		Primary:   lipgloss.Color("#88C0D0"), // frost
		Secondary: lipgloss.Color("#A3BE8C"), // aurora green
		Warning:   lipgloss.Color("#EBCB8B"),
		Error:     lipgloss.Color("#BF616A"),
		Muted:     lipgloss.Color("#4C566A"), // polar night
		Surface:   lipgloss.Color("#2E3440"),
		Text:      lipgloss.Color("#ECEFF4"), // snow storm
		Border:    lipgloss.Color("#3B4252"),

		Rating: lipgloss.Color("#EBCB8B"),
		Tag:    lipgloss.Color("#81A1C1"),
		Key:    lipgloss.Color("#88C0D0"),
		Badge:  lipgloss.Color("#A3BE8C"),
	}
}

// GetPalette resolves name against the custom themes first, then the
// built-in ones. Unknown names get the default palette.
func GetPalette(name ThemeName) *ColorPalette {
	if custom := GetCustomTheme(name); custom != nil {
		return custom.ToPalette()
	}

	switch name {
	case ThemeMonokai:
		return MonokaiPalette()
	case ThemeDracula:
		return DraculaPalette()
	case ThemeNord:
		return NordPalette()
	default:
		return DefaultPalette()
	}
}
