package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/DanielWebDeveloper25/e-commerce/internal/cart"
	"github.com/DanielWebDeveloper25/e-commerce/internal/catalog"
	"github.com/DanielWebDeveloper25/e-commerce/internal/event"
	"github.com/DanielWebDeveloper25/e-commerce/internal/storefront"
	"github.com/DanielWebDeveloper25/e-commerce/internal/tui"
	"github.com/DanielWebDeveloper25/e-commerce/internal/tui/styles"
)

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Open the terminal storefront",
	Long: `Open the terminal storefront.

Browse the catalog, filter it with / and tab, add products to the cart and
check out. Nothing is charged and nothing is stored: the cart lives only as
long as the program runs.`,
	Args: cobra.NoArgs,
	RunE: runStart,
}

func init() {
	rootCmd.AddCommand(startCmd)
}

func runStart(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Close() }()

	cart.CurrencySymbol = cfg.Store.Currency

	if _, errs := styles.DiscoverCustomThemes(); len(errs) > 0 {
		for _, err := range errs {
			logger.Warn("custom theme skipped", "error", err.Error())
		}
	}
	if !styles.IsValidTheme(cfg.TUI.Theme) {
		logger.Warn("unknown theme, using default", "theme", cfg.TUI.Theme)
	}
	st := styles.SetActiveTheme(styles.ThemeName(cfg.TUI.Theme))

	bus := event.NewBus(logger)
	subscribeActivity(bus, logger)

	front := storefront.New(catalog.Sample(),
		storefront.WithShopperID(storefront.LocalShopper),
		storefront.WithLogger(logger),
		storefront.WithBus(bus),
	)

	opts := tui.Options{
		StoreName:        cfg.Store.Name,
		Columns:          cfg.TUI.GridColumns,
		ShowDescriptions: cfg.TUI.ShowDescriptions,
		Styles:           st,
		Logger:           logger,
	}
	// Size the first frame before bubbletea reports the window size
	if termWidth, termHeight, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		opts.Width, opts.Height = termWidth, termHeight
	}

	app := tui.New(front, opts)
	if err := app.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
