package styles

import (
	"errors"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// themeFormatVersion is the only theme file version this build reads.
const themeFormatVersion = "1"

// ThemeFile is the YAML form of a custom theme.
type ThemeFile struct {
	Name        string      `yaml:"name"`
	Author      string      `yaml:"author,omitempty"`
	Description string      `yaml:"description,omitempty"`
	Version     string      `yaml:"version"`
	Colors      ThemeColors `yaml:"colors"`
}

// ThemeColors holds hex colors (#RGB or #RRGGBB).
type ThemeColors struct {
	Primary   string `yaml:"primary"`
	Secondary string `yaml:"secondary"`
	Warning   string `yaml:"warning"`
	Error     string `yaml:"error"`
	Muted     string `yaml:"muted"`
	Surface   string `yaml:"surface"`
	Text      string `yaml:"text"`
	Border    string `yaml:"border"`

	Accents ThemeAccentColors `yaml:"accents,omitempty"`
}

// ThemeAccentColors holds the optional role colors. Empty entries inherit a
// base color in ToPalette.
type ThemeAccentColors struct {
	Rating string `yaml:"rating,omitempty"`
	Tag    string `yaml:"tag,omitempty"`
	Key    string `yaml:"key,omitempty"`
	Badge  string `yaml:"badge,omitempty"`
}

// NewThemeFile captures p as a theme file.
func NewThemeFile(name, description string, p *ColorPalette) *ThemeFile {
	return &ThemeFile{
		Name:        name,
		Description: description,
		Version:     themeFormatVersion,
		Colors: ThemeColors{
			Primary:   string(p.Primary),
			Secondary: string(p.Secondary),
			Warning:   string(p.Warning),
			Error:     string(p.Error),
			Muted:     string(p.Muted),
			Surface:   string(p.Surface),
			Text:      string(p.Text),
			Border:    string(p.Border),
			Accents: ThemeAccentColors{
				Rating: string(p.Rating),
				Tag:    string(p.Tag),
				Key:    string(p.Key),
				Badge:  string(p.Badge),
			},
		},
	}
}

// LoadThemeFile reads and validates one theme file.
func LoadThemeFile(path string) (*ThemeFile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading theme file: %w", err)
	}
	theme := new(ThemeFile)
	if err := yaml.Unmarshal(raw, theme); err != nil {
		return nil, fmt.Errorf("parsing theme file: %w", err)
	}
	if err := theme.Validate(); err != nil {
		return nil, fmt.Errorf("invalid theme: %w", err)
	}
	return theme, nil
}

var hexColor = regexp.MustCompile(`^#(?:[0-9A-Fa-f]{3}|[0-9A-Fa-f]{6})$`)

type colorField struct {
	key      string
	value    string
	optional bool
}

func (c ThemeColors) fields() []colorField {
	return []colorField{
		{key: "primary", value: c.Primary},
		{key: "secondary", value: c.Secondary},
		{key: "warning", value: c.Warning},
		{key: "error", value: c.Error},
		{key: "muted", value: c.Muted},
		{key: "surface", value: c.Surface},
		{key: "text", value: c.Text},
		{key: "border", value: c.Border},
		{key: "accents.rating", value: c.Accents.Rating, optional: true},
		{key: "accents.tag", value: c.Accents.Tag, optional: true},
		{key: "accents.key", value: c.Accents.Key, optional: true},
		{key: "accents.badge", value: c.Accents.Badge, optional: true},
	}
}

// Validate reports the first problem in t: a missing name or version, an
// unknown version, a missing base color or a malformed color.
func (t *ThemeFile) Validate() error {
	switch {
	case t.Name == "":
		return errors.New("theme name is required")
	case t.Version == "":
		return errors.New("theme version is required")
	case t.Version != themeFormatVersion:
		return fmt.Errorf("unsupported theme version: %s (supported: %s)", t.Version, themeFormatVersion)
	}

	for _, f := range t.Colors.fields() {
		if f.value == "" {
			if f.optional {
				continue
			}
			return fmt.Errorf("color '%s' is required", f.key)
		}
		if !hexColor.MatchString(f.value) {
			return fmt.Errorf("color '%s' has invalid format: %s (expected #RGB or #RRGGBB)", f.key, f.value)
		}
	}
	return nil
}

// ToPalette builds the palette for a validated theme file.
func (t *ThemeFile) ToPalette() *ColorPalette {
	c := t.Colors
	or := func(accent, base string) lipgloss.Color {
		if accent != "" {
			return lipgloss.Color(accent)
		}
		return lipgloss.Color(base)
	}
	return &ColorPalette{
		Primary:   lipgloss.Color(c.Primary),
		Secondary: lipgloss.Color(c.Secondary),
		Warning:   lipgloss.Color(c.Warning),
		Error:     lipgloss.Color(c.Error),
		Muted:     lipgloss.Color(c.Muted),
		Surface:   lipgloss.Color(c.Surface),
		Text:      lipgloss.Color(c.Text),
		Border:    lipgloss.Color(c.Border),

		Rating: or(c.Accents.Rating, c.Warning),
		Tag:    or(c.Accents.Tag, c.Primary),
		Key:    or(c.Accents.Key, c.Primary),
		Badge:  or(c.Accents.Badge, c.Secondary),
	}
}

var customThemes = map[ThemeName]*ThemeFile{}

// RegisterCustomTheme makes theme selectable under name.
func RegisterCustomTheme(name ThemeName, theme *ThemeFile) {
	customThemes[name] = theme
}

// GetCustomTheme returns the registered theme, or nil.
func GetCustomTheme(name ThemeName) *ThemeFile {
	return customThemes[name]
}

// CustomThemeNames lists the registered themes in sorted order.
func CustomThemeNames() []string {
	names := make([]string, 0, len(customThemes))
	for _, name := range slices.Sorted(maps.Keys(customThemes)) {
		names = append(names, string(name))
	}
	return names
}

// ClearCustomThemes forgets every registered theme.
func ClearCustomThemes() {
	clear(customThemes)
}

// IsBuiltinTheme reports whether name is one of the built-in palettes.
func IsBuiltinTheme(name string) bool {
	return slices.Contains(BuiltinThemes(), name)
}

// IsCustomTheme reports whether name has been registered.
func IsCustomTheme(name string) bool {
	return GetCustomTheme(ThemeName(name)) != nil
}

var themesDirFn = func() string {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return filepath.Join(".shopzone", "themes")
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "shopzone", "themes")
}

// ThemesDir is where custom theme files live.
func ThemesDir() string {
	return themesDirFn()
}

// SetThemesDirFunc replaces the themes directory lookup and returns the
// previous one.
func SetThemesDirFunc(fn func() string) func() string {
	prev := themesDirFn
	themesDirFn = fn
	return prev
}

// themeNameFromFile maps "nord.yaml" or "nord.yml" to "nord". Other files
// yield "".
func themeNameFromFile(file string) string {
	switch ext := filepath.Ext(file); ext {
	case ".yaml", ".yml":
		return strings.TrimSuffix(file, ext)
	default:
		return ""
	}
}

// DiscoverCustomThemes loads every valid *.yaml or *.yml theme in the themes
// directory. A missing directory is not an error. Invalid files and files
// named after a built-in theme are reported and skipped.
func DiscoverCustomThemes() ([]string, []error) {
	dir := ThemesDir()
	entries, err := os.ReadDir(dir)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, []error{fmt.Errorf("reading themes directory: %w", err)}
	}

	var (
		loaded []string
		errs   []error
	)
	for _, entry := range entries {
		name := themeNameFromFile(entry.Name())
		if entry.IsDir() || name == "" {
			continue
		}
		if IsBuiltinTheme(name) {
			errs = append(errs, fmt.Errorf("%s: cannot override built-in theme '%s'", entry.Name(), name))
			continue
		}
		theme, err := LoadThemeFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", entry.Name(), err))
			continue
		}
		RegisterCustomTheme(ThemeName(name), theme)
		loaded = append(loaded, name)
	}
	return loaded, errs
}

// ExportTheme renders a theme as YAML, ready to be edited and saved as a
// custom theme.
func ExportTheme(name ThemeName) ([]byte, error) {
	theme := GetCustomTheme(name)
	if theme == nil {
		desc := fmt.Sprintf("Exported from ShopZone built-in theme '%s'", name)
		theme = NewThemeFile(string(name), desc, GetPalette(name))
	}
	return yaml.Marshal(theme)
}

// SaveTheme writes theme to the themes directory as name.yaml and returns
// the file path.
func SaveTheme(name string, theme *ThemeFile) (string, error) {
	out, err := yaml.Marshal(theme)
	if err != nil {
		return "", fmt.Errorf("marshaling theme: %w", err)
	}
	dir := ThemesDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating themes directory: %w", err)
	}
	path := filepath.Join(dir, name+".yaml")
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return "", fmt.Errorf("writing theme file: %w", err)
	}
	return path, nil
}
