package storefront

import "github.com/DanielWebDeveloper25/e-commerce/internal/event"

// Overlays reports which overlays are open.
type Overlays struct {
	Cart     bool `json:"cart"`
	Menu     bool `json:"menu"`
	Auth     bool `json:"auth"`
	Checkout bool `json:"checkout"`
}

// Overlays returns the open/closed state of every overlay.
func (s *Storefront) Overlays() Overlays {
	return Overlays{
		Cart:     s.cartOpen,
		Menu:     s.menuOpen,
		Auth:     s.authOpen,
		Checkout: s.checkoutOpen,
	}
}

// ScrollLocked reports whether the page behind an overlay must not scroll:
// true while the menu, the auth modal or the checkout modal is open. The cart
// panel does not lock scrolling.
func (s *Storefront) ScrollLocked() bool {
	return s.menuOpen || s.authOpen || s.checkoutOpen
}

// setOverlay updates one overlay flag, logging and publishing only real
// changes.
func (s *Storefront) setOverlay(name string, flag *bool, open bool) {
	if *flag == open {
		return
	}
	*flag = open
	locked := s.ScrollLocked()
	s.logger.Debug("overlay changed", "overlay", name, "open", open, "scroll_locked", locked)
	s.publish(event.NewOverlayChangedEvent(s.id, name, open, locked))
}

// OpenCart shows the cart panel and closes the menu.
func (s *Storefront) OpenCart() {
	s.setOverlay(OverlayMenu, &s.menuOpen, false)
	s.setOverlay(OverlayCart, &s.cartOpen, true)
}

// CloseCart hides the cart panel.
func (s *Storefront) CloseCart() {
	s.setOverlay(OverlayCart, &s.cartOpen, false)
}

// ToggleCart shows or hides the cart panel.
func (s *Storefront) ToggleCart() {
	if s.cartOpen {
		s.CloseCart()
		return
	}
	s.OpenCart()
}

// OpenMenu opens the navigation drawer.
func (s *Storefront) OpenMenu() {
	s.setOverlay(OverlayMenu, &s.menuOpen, true)
}

// CloseMenu closes the navigation drawer.
func (s *Storefront) CloseMenu() {
	s.setOverlay(OverlayMenu, &s.menuOpen, false)
}

// CloseTop closes the most recently layered overlay (checkout, then auth,
// then menu, then cart) and reports whether anything was open.
func (s *Storefront) CloseTop() bool {
	switch {
	case s.checkoutOpen:
		s.CloseCheckout()
	case s.authOpen:
		s.CloseAuth()
	case s.menuOpen:
		s.CloseMenu()
	case s.cartOpen:
		s.CloseCart()
	default:
		return false
	}
	return true
}

// Close closes every overlay and releases the scroll lock. Surfaces call it
// when they shut down. A placed order is dismissed as if the shopper had
// chosen to continue shopping.
func (s *Storefront) Close() {
	if s.order != nil {
		_ = s.ContinueShopping()
	}
	s.CloseCheckout()
	s.CloseAuth()
	s.CloseMenu()
	s.CloseCart()
}
