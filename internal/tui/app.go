package tui

import (
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/DanielWebDeveloper25/e-commerce/internal/logging"
	"github.com/DanielWebDeveloper25/e-commerce/internal/storefront"
)

// App wraps the Bubbletea program
type App struct {
	program *tea.Program
	model   Model
	front   *storefront.Storefront
	logger  *logging.Logger
}

// New creates a new TUI application for front.
func New(front *storefront.Storefront, opts Options) *App {
	if opts.Logger == nil {
		opts.Logger = logging.NopLogger()
	}
	opts.Logger = opts.Logger.WithScreen("tui")
	return &App{
		model:  NewModel(front, opts),
		front:  front,
		logger: opts.Logger,
	}
}

// Run starts the TUI application and blocks until it exits.
func (a *App) Run() error {
	// Overlays are closed and the scroll lock released on every exit path.
	defer a.front.Close()

	a.program = tea.NewProgram(
		a.model,
		tea.WithAltScreen(),
	)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)

	go func() {
		sig, ok := <-sigChan
		if !ok {
			return
		}
		a.logger.Info("signal received", "signal", sig.String())
		if a.program != nil {
			a.program.Send(tea.Quit())
		}
	}()

	a.logger.Info("storefront opened", "products", a.front.Catalog().Len())
	_, err := a.program.Run()

	signal.Stop(sigChan)
	close(sigChan)

	if err != nil {
		a.logger.Error("storefront exited with error", "error", err.Error())
	}
	return err
}
