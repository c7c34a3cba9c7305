package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/DanielWebDeveloper25/e-commerce/internal/cart"
	"github.com/DanielWebDeveloper25/e-commerce/internal/catalog"
	"github.com/DanielWebDeveloper25/e-commerce/internal/event"
	"github.com/DanielWebDeveloper25/e-commerce/internal/server"
	"github.com/DanielWebDeveloper25/e-commerce/internal/shopper"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the storefront as a JSON API",
	Long: `Serve the storefront as a JSON API for a browser front end.

Every browser gets its own cart, session and checkout, keyed by a cookie.
Shoppers are kept in memory only and are dropped after server.idle_minutes
without a request, or when the server stops.

Examples:
  shopzone serve
  shopzone serve --addr :9000
  SHOPZONE_SERVER_ALLOWED_ORIGINS=http://localhost:5173 shopzone serve`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

var serveAddr string

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVarP(&serveAddr, "addr", "a", "", "listen address (default from server.addr)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if serveAddr != "" {
		cfg.Server.Addr = serveAddr
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Close() }()

	cart.CurrencySymbol = cfg.Store.Currency

	bus := event.NewBus(logger)
	subscribeActivity(bus, logger)

	cat := catalog.Sample()
	reg := shopper.NewRegistry(cat,
		shopper.WithMaxShoppers(cfg.Server.MaxShoppers),
		shopper.WithBus(bus),
		shopper.WithLogger(logger),
	)
	srv := server.New(cat, reg, cfg.Server, logger)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Fprintf(cmd.OutOrStdout(), "%s API listening on http://%s\n", cfg.Store.Name, srv.Addr())
	if err := srv.Run(ctx); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Server stopped")
	return nil
}
