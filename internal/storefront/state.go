package storefront

import (
	"github.com/DanielWebDeveloper25/e-commerce/internal/account"
	"github.com/DanielWebDeveloper25/e-commerce/internal/cart"
	"github.com/DanielWebDeveloper25/e-commerce/internal/catalog"
	"github.com/DanielWebDeveloper25/e-commerce/internal/checkout"
)

// State is a point-in-time copy of everything a surface needs to render.
type State struct {
	ShopperID    string           `json:"shopperId"`
	Search       string           `json:"search"`
	Category     catalog.Category `json:"category"`
	Session      account.Session  `json:"session"`
	AuthMode     account.AuthMode `json:"authMode"`
	Cart         cart.Summary     `json:"cart"`
	Overlays     Overlays         `json:"overlays"`
	ScrollLocked bool             `json:"scrollLocked"`
	Order        *checkout.Order  `json:"order"`
}

// State returns a copy of the current state. Mutating it does not affect the
// storefront.
func (s *Storefront) State() State {
	var order *checkout.Order
	if s.order != nil {
		o := *s.order
		o.Lines = append([]cart.Line(nil), s.order.Lines...)
		order = &o
	}
	return State{
		ShopperID:    s.id,
		Search:       s.search,
		Category:     s.category,
		Session:      s.session,
		AuthMode:     s.authMode,
		Cart:         s.cart.Snapshot(),
		Overlays:     s.Overlays(),
		ScrollLocked: s.ScrollLocked(),
		Order:        order,
	}
}
