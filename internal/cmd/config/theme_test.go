package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/DanielWebDeveloper25/e-commerce/internal/tui/styles"
)

const storefrontLight = `name: "Storefront Light"
author: "ShopZone"
version: "1"
colors:
  primary: "#7C3AED"
  secondary: "#059669"
  warning: "#D97706"
  error: "#DC2626"
  muted: "#6B7280"
  surface: "#F3F4F6"
  text: "#111827"
  border: "#D1D5DB"
`

// withThemesDir points theme discovery at a temp dir for one test.
func withThemesDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	orig := styles.SetThemesDirFunc(func() string { return dir })
	styles.ClearCustomThemes()
	t.Cleanup(func() {
		styles.SetThemesDirFunc(orig)
		styles.ClearCustomThemes()
	})
	return dir
}

// captured returns cmd writing into a fresh buffer.
func captured(cmd *cobra.Command) *bytes.Buffer {
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	return &buf
}

func TestRunThemeList(t *testing.T) {
	dir := withThemesDir(t)
	if err := os.WriteFile(filepath.Join(dir, "light.yaml"), []byte(storefrontLight), 0o644); err != nil {
		t.Fatalf("writing theme: %v", err)
	}

	out := captured(themeListCmd)
	if err := runThemeList(themeListCmd, nil); err != nil {
		t.Fatalf("runThemeList() error = %v", err)
	}

	got := out.String()
	for _, want := range []string{"Built-in themes:", "  - default", "Custom themes:", "  - light (by ShopZone)", dir} {
		if !strings.Contains(got, want) {
			t.Errorf("theme list missing %q:\n%s", want, got)
		}
	}
}

func TestRunThemeListReportsBrokenThemes(t *testing.T) {
	dir := withThemesDir(t)
	if err := os.WriteFile(filepath.Join(dir, "broken.yaml"), []byte("name: [unclosed"), 0o644); err != nil {
		t.Fatalf("writing theme: %v", err)
	}

	out := captured(themeListCmd)
	if err := runThemeList(themeListCmd, nil); err != nil {
		t.Fatalf("runThemeList() error = %v", err)
	}
	if !strings.Contains(out.String(), "Some themes failed to load") {
		t.Errorf("expected load warning, got:\n%s", out.String())
	}
}

func TestRunThemeExport(t *testing.T) {
	withThemesDir(t)
	outputPath := filepath.Join(t.TempDir(), "exported.yaml")

	out := captured(themeExportCmd)
	if err := runThemeExport(themeExportCmd, []string{"dracula", outputPath}); err != nil {
		t.Fatalf("runThemeExport() error = %v", err)
	}
	if !strings.Contains(out.String(), "Theme exported to: "+outputPath) {
		t.Errorf("unexpected output: %q", out.String())
	}

	data, err := os.ReadFile(outputPath)
	if err != nil {
		t.Fatalf("reading export: %v", err)
	}
	if !bytes.Contains(data, []byte("primary:")) {
		t.Errorf("export missing primary color:\n%s", data)
	}
	if _, err := styles.LoadThemeFile(outputPath); err != nil {
		t.Errorf("exported theme does not load: %v", err)
	}
}

func TestRunThemeExportToStdout(t *testing.T) {
	withThemesDir(t)

	out := captured(themeExportCmd)
	if err := runThemeExport(themeExportCmd, []string{"default"}); err != nil {
		t.Fatalf("runThemeExport() error = %v", err)
	}
	if !strings.Contains(out.String(), "colors:") {
		t.Errorf("expected YAML on stdout, got %q", out.String())
	}
}

func TestRunThemeExportInvalidTheme(t *testing.T) {
	withThemesDir(t)

	err := runThemeExport(themeExportCmd, []string{"nonexistent"})
	if err == nil {
		t.Fatal("expected error for unknown theme")
	}
	if !strings.Contains(err.Error(), "shopzone config theme list") {
		t.Errorf("error should point at theme list, got %v", err)
	}
}

func TestRunThemeExportBrokenTheme(t *testing.T) {
	dir := withThemesDir(t)
	if err := os.WriteFile(filepath.Join(dir, "broken.yaml"), []byte("name: [unclosed"), 0o644); err != nil {
		t.Fatalf("writing theme: %v", err)
	}

	err := runThemeExport(themeExportCmd, []string{"broken"})
	if err == nil || !strings.Contains(err.Error(), "exists but failed to load") {
		t.Errorf("expected load failure, got %v", err)
	}
}

func TestRunThemeInfo(t *testing.T) {
	withThemesDir(t)

	out := captured(themeInfoCmd)
	if err := runThemeInfo(themeInfoCmd, []string{"nord"}); err != nil {
		t.Fatalf("runThemeInfo() error = %v", err)
	}
	got := out.String()
	for _, want := range []string{"Theme: nord", "Type: Built-in", "Base Colors:", "Primary:", "Accents:", "Rating:"} {
		if !strings.Contains(got, want) {
			t.Errorf("theme info missing %q:\n%s", want, got)
		}
	}
}

func TestRunThemeInfoCustom(t *testing.T) {
	dir := withThemesDir(t)
	if err := os.WriteFile(filepath.Join(dir, "light.yaml"), []byte(storefrontLight), 0o644); err != nil {
		t.Fatalf("writing theme: %v", err)
	}

	out := captured(themeInfoCmd)
	if err := runThemeInfo(themeInfoCmd, []string{"light"}); err != nil {
		t.Fatalf("runThemeInfo() error = %v", err)
	}
	got := out.String()
	if !strings.Contains(got, "Type: Custom") || !strings.Contains(got, "Author: ShopZone") {
		t.Errorf("unexpected info:\n%s", got)
	}
	if !strings.Contains(got, "#7C3AED") {
		t.Errorf("expected custom primary color:\n%s", got)
	}
}

func TestRunThemeInfoInvalidTheme(t *testing.T) {
	withThemesDir(t)

	if err := runThemeInfo(themeInfoCmd, []string{"nonexistent"}); err == nil {
		t.Error("expected error for unknown theme")
	}
}

func TestRunThemePath(t *testing.T) {
	dir := withThemesDir(t)
	missing := filepath.Join(dir, "nope")
	styles.SetThemesDirFunc(func() string { return missing })

	out := captured(themePathCmd)
	if err := runThemePath(themePathCmd, nil); err != nil {
		t.Fatalf("runThemePath() error = %v", err)
	}
	if !strings.HasPrefix(out.String(), missing+"\n") {
		t.Errorf("expected themes dir first, got %q", out.String())
	}
	if !strings.Contains(out.String(), "does not exist yet") {
		t.Errorf("expected missing-dir note, got %q", out.String())
	}
}

func TestRunThemeCreate(t *testing.T) {
	dir := withThemesDir(t)

	out := captured(themeCreateCmd)
	if err := runThemeCreate(themeCreateCmd, []string{"solarized"}); err != nil {
		t.Fatalf("runThemeCreate() error = %v", err)
	}

	themePath := filepath.Join(dir, "solarized.yaml")
	theme, err := styles.LoadThemeFile(themePath)
	if err != nil {
		t.Fatalf("created theme is invalid: %v", err)
	}
	if theme.Name != "Solarized" {
		t.Errorf("Name = %q, want Solarized", theme.Name)
	}
	if !strings.Contains(out.String(), "shopzone config set tui.theme solarized") {
		t.Errorf("expected usage hint, got %q", out.String())
	}
}

func TestRunThemeCreateRejects(t *testing.T) {
	withThemesDir(t)

	tests := []struct {
		name    string
		arg     string
		errText string
	}{
		{"empty", "", "empty"},
		{"slash", "my/theme", "invalid characters"},
		{"backslash", "my\\theme", "invalid characters"},
		{"builtin", "default", "built-in"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := runThemeCreate(themeCreateCmd, []string{tt.arg})
			if err == nil || !strings.Contains(err.Error(), tt.errText) {
				t.Errorf("runThemeCreate(%q) error = %v, want %q", tt.arg, err, tt.errText)
			}
		})
	}
}

func TestRunThemeCreateAlreadyExists(t *testing.T) {
	withThemesDir(t)
	captured(themeCreateCmd)

	if err := runThemeCreate(themeCreateCmd, []string{"existing"}); err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	if err := runThemeCreate(themeCreateCmd, []string{"existing"}); err == nil {
		t.Error("expected error when theme already exists")
	}
}

func TestCapitalizeFirst(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"hello", "Hello"},
		{"HELLO", "HELLO"},
		{"h", "H"},
		{"", ""},
		{"storefrontLight", "StorefrontLight"},
	}

	for _, tt := range tests {
		if got := capitalizeFirst(tt.input); got != tt.expected {
			t.Errorf("capitalizeFirst(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}
