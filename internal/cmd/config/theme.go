package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/DanielWebDeveloper25/e-commerce/internal/tui/styles"
)

var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Manage storefront color themes",
	Long: `List, inspect and author the palettes used by the terminal storefront.

Besides the built-in palettes, any YAML file in the themes directory
(see 'theme path') becomes selectable with 'config set tui.theme <name>'.`,
}

var themeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List built-in and custom themes",
	RunE:  runThemeList,
}

var themeExportCmd = &cobra.Command{
	Use:   "export <theme-name> [output-file]",
	Short: "Write a theme as YAML",
	Long: `Write a theme as YAML, to stdout or to output-file.

Examples:
  shopzone config theme export nord
  shopzone config theme export dracula ~/dracula-copy.yaml`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runThemeExport,
}

var themeInfoCmd = &cobra.Command{
	Use:   "info <theme-name>",
	Short: "Show a theme's origin and colors",
	Args:  cobra.ExactArgs(1),
	RunE:  runThemeInfo,
}

var themePathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the custom themes directory",
	RunE:  runThemePath,
}

var themeCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Start a custom theme from the default palette",
	Long: `Write <name>.yaml to the themes directory, seeded with the default palette.

Example:
  shopzone config theme create solarized`,
	Args: cobra.ExactArgs(1),
	RunE: runThemeCreate,
}

func init() {
	themeCmd.AddCommand(themeListCmd)
	themeCmd.AddCommand(themeExportCmd)
	themeCmd.AddCommand(themeInfoCmd)
	themeCmd.AddCommand(themePathCmd)
	themeCmd.AddCommand(themeCreateCmd)
	configCmd.AddCommand(themeCmd)
}

// resolveTheme discovers custom themes and checks that name is usable,
// pointing at the load error when the theme file exists but is broken.
func resolveTheme(name string) error {
	_, loadErrs := styles.DiscoverCustomThemes()
	if styles.IsValidTheme(name) {
		return nil
	}
	for _, err := range loadErrs {
		errStr := err.Error()
		if strings.HasPrefix(errStr, name+".yaml:") || strings.HasPrefix(errStr, name+".yml:") {
			return fmt.Errorf("theme '%s' exists but failed to load: %v\n\nFix the errors in your theme file and try again", name, err)
		}
	}
	return fmt.Errorf("unknown theme: %s\n\nRun 'shopzone config theme list' to see available themes.\nCustom themes should be placed in: %s", name, styles.ThemesDir())
}

func runThemeList(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	_, loadErrs := styles.DiscoverCustomThemes()
	if len(loadErrs) > 0 {
		fmt.Fprintln(cmd.ErrOrStderr(), "Warning: Some themes failed to load:")
		for _, err := range loadErrs {
			fmt.Fprintf(cmd.ErrOrStderr(), "  - %v\n", err)
		}
		fmt.Fprintln(cmd.ErrOrStderr())
	}

	fmt.Fprintln(out, "Built-in themes:")
	for _, name := range styles.BuiltinThemes() {
		fmt.Fprintf(out, "  - %s\n", name)
	}

	if customNames := styles.CustomThemeNames(); len(customNames) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Custom themes:")
		for _, name := range customNames {
			theme := styles.GetCustomTheme(styles.ThemeName(name))
			if theme != nil && theme.Author != "" {
				fmt.Fprintf(out, "  - %s (by %s)\n", name, theme.Author)
			} else {
				fmt.Fprintf(out, "  - %s\n", name)
			}
		}
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "Custom themes directory: %s\n", styles.ThemesDir())
	return nil
}

func runThemeExport(cmd *cobra.Command, args []string) error {
	themeName := args[0]
	if err := resolveTheme(themeName); err != nil {
		return err
	}

	data, err := styles.ExportTheme(styles.ThemeName(themeName))
	if err != nil {
		return fmt.Errorf("exporting theme: %w", err)
	}

	if len(args) > 1 {
		outputPath := args[1]
		if err := os.WriteFile(outputPath, data, 0o644); err != nil {
			return fmt.Errorf("writing to %s: %w", outputPath, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Theme exported to: %s\n", outputPath)
		return nil
	}

	_, err = cmd.OutOrStdout().Write(data)
	return err
}

func runThemeInfo(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	themeName := args[0]
	if err := resolveTheme(themeName); err != nil {
		return err
	}

	fmt.Fprintf(out, "Theme: %s\n\n", themeName)
	if styles.IsBuiltinTheme(themeName) {
		fmt.Fprintln(out, "Type: Built-in")
	} else {
		fmt.Fprintln(out, "Type: Custom")
		if theme := styles.GetCustomTheme(styles.ThemeName(themeName)); theme != nil {
			if theme.Author != "" {
				fmt.Fprintf(out, "Author: %s\n", theme.Author)
			}
			if theme.Description != "" {
				fmt.Fprintf(out, "Description: %s\n", theme.Description)
			}
		}
	}

	p := styles.GetPalette(styles.ThemeName(themeName))
	printColors(out, "Base Colors:", []namedColor{
		{"Primary", p.Primary}, {"Secondary", p.Secondary},
		{"Warning", p.Warning}, {"Error", p.Error},
		{"Muted", p.Muted}, {"Surface", p.Surface},
		{"Text", p.Text}, {"Border", p.Border},
	})
	printColors(out, "Accents:", []namedColor{
		{"Rating", p.Rating}, {"Tag", p.Tag},
		{"Key", p.Key}, {"Badge", p.Badge},
	})
	return nil
}

type namedColor struct {
	label string
	color lipgloss.Color
}

func printColors(w io.Writer, title string, colors []namedColor) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, title)
	for _, c := range colors {
		fmt.Fprintf(w, "  %-10s %s\n", c.label+":", c.color)
	}
}

func runThemePath(cmd *cobra.Command, args []string) error {
	themesDir := styles.ThemesDir()
	fmt.Fprintln(cmd.OutOrStdout(), themesDir)

	if _, err := os.Stat(themesDir); os.IsNotExist(err) {
		fmt.Fprintln(cmd.OutOrStdout())
		fmt.Fprintln(cmd.OutOrStdout(), "Note: This directory does not exist yet.")
		fmt.Fprintln(cmd.OutOrStdout(), "It will be created when you add your first custom theme.")
	}
	return nil
}

func runThemeCreate(cmd *cobra.Command, args []string) error {
	name := args[0]
	switch {
	case name == "":
		return fmt.Errorf("theme name cannot be empty")
	case strings.ContainsAny(name, "/\\:*?\"<>|"):
		return fmt.Errorf("theme name contains invalid characters")
	case styles.IsBuiltinTheme(name):
		return fmt.Errorf("cannot create custom theme with built-in name '%s'", name)
	}

	existing := filepath.Join(styles.ThemesDir(), name+".yaml")
	if _, err := os.Stat(existing); err == nil {
		return fmt.Errorf("theme '%s' already exists at %s", name, existing)
	}

	theme := styles.NewThemeFile(capitalizeFirst(name), "A custom ShopZone theme", styles.DefaultPalette())
	path, err := styles.SaveTheme(name, theme)
	if err != nil {
		return fmt.Errorf("creating theme: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Created new theme: %s\n\n", path)
	fmt.Fprintln(out, "Edit its colors, then select it with:")
	fmt.Fprintf(out, "  shopzone config set tui.theme %s\n", name)
	return nil
}

func capitalizeFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
