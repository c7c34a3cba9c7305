package cmd

import (
	"github.com/DanielWebDeveloper25/e-commerce/internal/event"
	"github.com/DanielWebDeveloper25/e-commerce/internal/logging"
)

// subscribeActivity records the shop's business events in the activity
// log at info level. Cart and overlay changes stay at debug, logged by the
// storefront itself.
func subscribeActivity(bus *event.Bus, logger *logging.Logger) {
	bus.Subscribe(event.TypeOrderPlaced, func(e event.Event) {
		if ev, ok := e.(event.OrderPlacedEvent); ok {
			logger.WithShopper(ev.ShopperID).WithOrder(ev.Ref.String()).Info("order placed",
				"number", ev.Number,
				"item_count", ev.ItemCount,
				"total", ev.Total.StringFixed(2),
			)
		}
	})
	bus.Subscribe(event.TypeSignedIn, func(e event.Event) {
		if ev, ok := e.(event.SignedInEvent); ok {
			logger.WithShopper(ev.ShopperID).Info("shopper signed in", "mode", ev.Mode)
		}
	})
	bus.Subscribe(event.TypeShopperCreated, func(e event.Event) {
		if ev, ok := e.(event.ShopperCreatedEvent); ok {
			logger.WithShopper(ev.ShopperID).Info("shopper session started", "active", ev.Active)
		}
	})
	bus.Subscribe(event.TypeShopperReleased, func(e event.Event) {
		if ev, ok := e.(event.ShopperReleasedEvent); ok {
			logger.WithShopper(ev.ShopperID).Info("shopper session ended", "reason", ev.Reason)
		}
	})
}
