// Package storefront holds the complete state of one shopper's visit: the
// catalog filter, the cart, the mock session, the auth and checkout forms, and
// which overlays are open. Both the terminal UI and the HTTP API drive the
// same model; neither owns any shop state of its own.
//
// A Storefront is not safe for concurrent use. The terminal UI calls it from
// the bubbletea update loop only; the API serializes calls per shopper.
//
// While the menu, the auth modal or the checkout modal is open the page
// behind it is scroll locked. Every path that closes them, including
// [Storefront.Close] on shutdown, releases the lock.
package storefront

import (
	"strconv"

	"github.com/DanielWebDeveloper25/e-commerce/internal/account"
	"github.com/DanielWebDeveloper25/e-commerce/internal/cart"
	"github.com/DanielWebDeveloper25/e-commerce/internal/catalog"
	"github.com/DanielWebDeveloper25/e-commerce/internal/checkout"
	"github.com/DanielWebDeveloper25/e-commerce/internal/errors"
	"github.com/DanielWebDeveloper25/e-commerce/internal/event"
	"github.com/DanielWebDeveloper25/e-commerce/internal/logging"
)

// LocalShopper is the shopper id used by the terminal storefront.
const LocalShopper = "local"

// Overlay names, as reported in overlay events and the API state.
const (
	OverlayCart     = "cart"
	OverlayMenu     = "menu"
	OverlayAuth     = "auth"
	OverlayCheckout = "checkout"
)

// Storefront is the state model of one shopper.
type Storefront struct {
	id      string
	catalog *catalog.Catalog
	placer  *checkout.Placer
	logger  *logging.Logger
	bus     *event.Bus

	search   string
	category catalog.Category

	cart    *cart.Cart
	session account.Session

	authMode     account.AuthMode
	authForm     account.Credentials
	checkoutForm checkout.Details
	order        *checkout.Order

	cartOpen     bool
	menuOpen     bool
	authOpen     bool
	checkoutOpen bool
}

// Option configures a Storefront.
type Option func(*Storefront)

// WithShopperID sets the id used in logs and events.
func WithShopperID(id string) Option {
	return func(s *Storefront) {
		s.id = id
	}
}

// WithLogger sets the logger for state transitions.
func WithLogger(logger *logging.Logger) Option {
	return func(s *Storefront) {
		s.logger = logger
	}
}

// WithBus publishes cart, account, order and overlay events to bus.
func WithBus(bus *event.Bus) Option {
	return func(s *Storefront) {
		s.bus = bus
	}
}

// WithPlacer sets the order placer. Each Storefront needs its own placer.
func WithPlacer(p *checkout.Placer) Option {
	return func(s *Storefront) {
		s.placer = p
	}
}

// New returns a storefront over cat with an empty cart, no filter, and every
// overlay closed.
func New(cat *catalog.Catalog, opts ...Option) *Storefront {
	s := &Storefront{
		id:       LocalShopper,
		catalog:  cat,
		category: catalog.CategoryAll,
		cart:     cart.New(),
		authMode: account.ModeLogin,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = logging.NopLogger()
	}
	if s.placer == nil {
		s.placer = checkout.DefaultPlacer()
	}
	s.logger = s.logger.WithShopper(s.id)
	return s
}

// ShopperID returns the shopper this storefront belongs to.
func (s *Storefront) ShopperID() string {
	return s.id
}

// Catalog returns the underlying catalog.
func (s *Storefront) Catalog() *catalog.Catalog {
	return s.catalog
}

func (s *Storefront) publish(e event.Event) {
	if s.bus != nil {
		s.bus.Publish(e)
	}
}

// -----------------------------------------------------------------------------
// Catalog filter
// -----------------------------------------------------------------------------

// Search returns the current search text.
func (s *Storefront) Search() string {
	return s.search
}

// SetSearch replaces the search text.
func (s *Storefront) SetSearch(text string) {
	if text == s.search {
		return
	}
	s.search = text
	s.logger.Debug("search changed", "search", text)
}

// Category returns the selected category.
func (s *Storefront) Category() catalog.Category {
	return s.category
}

// SelectCategory selects c and closes the menu.
func (s *Storefront) SelectCategory(c catalog.Category) {
	s.category = c
	s.logger.Debug("category selected", "category", string(c))
	s.setOverlay(OverlayMenu, &s.menuOpen, false)
}

// CycleCategory moves the selection step places through Categories,
// wrapping at both ends.
func (s *Storefront) CycleCategory(step int) {
	cats := catalog.Categories()
	i := 0
	for j, c := range cats {
		if c == s.category {
			i = j
			break
		}
	}
	n := len(cats)
	s.SelectCategory(cats[((i+step)%n+n)%n])
}

// Visible returns the products matching the search text and category, in
// catalog order.
func (s *Storefront) Visible() []catalog.Product {
	return catalog.Filter(s.search, s.category, s.catalog.Products())
}

// -----------------------------------------------------------------------------
// Cart
// -----------------------------------------------------------------------------

// AddToCart adds one unit of the product with the given id.
func (s *Storefront) AddToCart(id int) error {
	p, ok := s.catalog.ByID(id)
	if !ok {
		return errors.NewNotFoundError("product", strconv.Itoa(id)).WithCause(errors.ErrProductNotFound)
	}
	s.cart.Add(p)
	s.cartChanged(id, "added to cart")
	return nil
}

// ChangeQuantity adds delta to the line's quantity; a line reaching zero is
// removed.
func (s *Storefront) ChangeQuantity(id, delta int) error {
	if err := s.cart.UpdateQuantity(id, delta); err != nil {
		return err
	}
	s.cartChanged(id, "quantity changed", "delta", delta)
	return nil
}

// RemoveFromCart drops the line whatever its quantity.
func (s *Storefront) RemoveFromCart(id int) error {
	if err := s.cart.Remove(id); err != nil {
		return err
	}
	s.cartChanged(id, "removed from cart")
	return nil
}

// ClearCart empties the cart.
func (s *Storefront) ClearCart() {
	s.cart.Clear()
	s.cartChanged(0, "cart cleared")
}

func (s *Storefront) cartChanged(id int, msg string, args ...any) {
	qty := 0
	if l, ok := s.cart.Line(id); ok {
		qty = l.Quantity
	}
	total := s.cart.Total()
	count := s.cart.ItemCount()

	s.logger.Debug(msg, append([]any{
		"product_id", id,
		"quantity", qty,
		"item_count", count,
		"total", total.StringFixed(2),
	}, args...)...)
	s.publish(event.NewCartChangedEvent(s.id, id, qty, count, total))
}

// Summary returns the cart lines and totals.
func (s *Storefront) Summary() cart.Summary {
	return s.cart.Snapshot()
}

// ItemCount is the cart badge number.
func (s *Storefront) ItemCount() int {
	return s.cart.ItemCount()
}

// Session returns the mock sign-in state.
func (s *Storefront) Session() account.Session {
	return s.session
}

// Order returns the placed order awaiting dismissal, or nil.
func (s *Storefront) Order() *checkout.Order {
	return s.order
}
