package cmd

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/DanielWebDeveloper25/e-commerce/internal/cart"
	"github.com/DanielWebDeveloper25/e-commerce/internal/catalog"
	"github.com/DanielWebDeveloper25/e-commerce/internal/tui/view"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List the products in the store",
	Long: `List the products in the store, filtered the same way the storefront
filters them: the search text matches product names case-insensitively and
the category must match exactly unless it is "All".

Examples:
  shopzone catalog
  shopzone catalog --search wireless
  shopzone catalog --category sports --format json`,
	Args: cobra.NoArgs,
	RunE: runCatalog,
}

var (
	catalogSearch   string
	catalogCategory string
	catalogFormat   string
)

func init() {
	rootCmd.AddCommand(catalogCmd)

	catalogCmd.Flags().StringVarP(&catalogSearch, "search", "s", "", "only products whose name contains this text")
	catalogCmd.Flags().StringVar(&catalogCategory, "category", "", "only products in this category (default All)")
	catalogCmd.Flags().StringVarP(&catalogFormat, "format", "f", "text", "output format: text or json")
}

func runCatalog(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	cart.CurrencySymbol = cfg.Store.Currency

	category, err := catalog.ParseCategory(catalogCategory)
	if err != nil {
		return fmt.Errorf("unknown category %q (valid: %v)", catalogCategory, catalog.Categories())
	}
	products := catalog.Filter(catalogSearch, category, catalog.Sample().Products())

	out := cmd.OutOrStdout()
	switch catalogFormat {
	case "json":
		if products == nil {
			products = []catalog.Product{}
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]any{"products": products, "count": len(products)})
	case "text", "":
		if len(products) == 0 {
			_, err := fmt.Fprintln(out, view.NoProducts)
			return err
		}
		_, err := fmt.Fprintln(out, productTable(products))
		return err
	default:
		return fmt.Errorf("unsupported format: %s (supported: text, json)", catalogFormat)
	}
}

func productTable(products []catalog.Product) string {
	rows := make([][]string, len(products))
	for i, p := range products {
		rows[i] = []string{
			strconv.Itoa(p.ID),
			p.Name,
			string(p.Category),
			cart.FormatMoney(p.Price),
			view.StarBar(p.Rating),
			strconv.Itoa(p.Reviews),
		}
	}
	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "NAME", "CATEGORY", "PRICE", "RATING", "REVIEWS").
		Rows(rows...).
		String()
}
