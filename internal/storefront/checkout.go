package storefront

import (
	"github.com/DanielWebDeveloper25/e-commerce/internal/checkout"
	"github.com/DanielWebDeveloper25/e-commerce/internal/errors"
	"github.com/DanielWebDeveloper25/e-commerce/internal/event"
)

// CheckoutForm returns the current checkout form contents.
func (s *Storefront) CheckoutForm() checkout.Details {
	return s.checkoutForm
}

// SetCheckoutForm replaces the checkout form contents.
func (s *Storefront) SetCheckoutForm(d checkout.Details) {
	s.checkoutForm = d
}

// OpenCheckout opens the checkout modal from the cart panel. The cart must
// not be empty.
func (s *Storefront) OpenCheckout() error {
	if s.cart.IsEmpty() {
		return errors.NewCheckoutError("open checkout", errors.ErrCartEmpty)
	}
	s.setOverlay(OverlayCart, &s.cartOpen, false)
	s.setOverlay(OverlayMenu, &s.menuOpen, false)
	s.setOverlay(OverlayCheckout, &s.checkoutOpen, true)
	return nil
}

// SubmitCheckout places the order. The modal stays open showing the
// confirmation until the shopper continues shopping; the cart is kept until
// then.
func (s *Storefront) SubmitCheckout() (*checkout.Order, error) {
	if s.order != nil {
		return nil, errors.NewCheckoutError("submit checkout", errors.ErrOrderPending).
			WithItemCount(s.cart.ItemCount())
	}

	order, err := s.placer.Place(s.cart.Snapshot(), s.checkoutForm)
	if err != nil {
		s.logger.Debug("checkout rejected", "item_count", s.cart.ItemCount(), "error", err.Error())
		return nil, err
	}

	s.order = order
	s.setOverlay(OverlayCheckout, &s.checkoutOpen, true)
	s.logger.WithOrder(order.Ref.String()).Debug("order placed",
		"number", order.Number,
		"item_count", order.ItemCount,
		"total", order.Total.StringFixed(2),
	)
	s.publish(event.NewOrderPlacedEvent(s.id, order.Number, order.Ref, order.ItemCount, order.Total))
	return order, nil
}

// ContinueShopping dismisses the order confirmation: the cart and the form
// are cleared and the modal closes.
func (s *Storefront) ContinueShopping() error {
	if s.order == nil {
		return errors.ErrNoOrder
	}
	ref := s.order.Ref.String()
	s.order = nil
	s.checkoutForm = checkout.Details{}
	s.ClearCart()
	s.setOverlay(OverlayCheckout, &s.checkoutOpen, false)
	s.logger.WithOrder(ref).Debug("order dismissed")
	return nil
}

// CloseCheckout closes the checkout modal and clears the form. After an
// order was placed it behaves like ContinueShopping.
func (s *Storefront) CloseCheckout() {
	if s.order != nil {
		_ = s.ContinueShopping()
		return
	}
	s.checkoutForm = checkout.Details{}
	s.setOverlay(OverlayCheckout, &s.checkoutOpen, false)
}
