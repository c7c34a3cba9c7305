// Package event provides a pub-sub event bus that lets the storefront report
// what shoppers do without knowing who listens.
//
// The storefront publishes cart, account, order and overlay events; the API's
// shopper registry publishes shopper lifecycle events. The serve command
// subscribes to log orders and shopper churn, and tests subscribe to observe
// transitions such as the scroll lock being released.
//
// # Event Types
//
// Event types follow the pattern "category.action":
//   - cart.changed: [CartChangedEvent]
//   - auth.signed_in, auth.signed_out: [SignedInEvent], [SignedOutEvent]
//   - order.placed: [OrderPlacedEvent]
//   - overlay.changed: [OverlayChangedEvent]
//   - shopper.created, shopper.released: [ShopperCreatedEvent], [ShopperReleasedEvent]
//
// # Basic Usage
//
//	bus := event.NewBus(logger)
//
//	bus.Subscribe(event.TypeOrderPlaced, func(e event.Event) {
//	    placed := e.(event.OrderPlacedEvent)
//	    logger.Info("order placed", "number", placed.Number)
//	})
//
//	id := bus.SubscribeAll(func(e event.Event) { ... })
//	bus.Unsubscribe(id)
//
// # Thread Safety
//
// [Bus] is safe for concurrent use. Handlers run synchronously on the
// publishing goroutine; a panicking handler is logged and does not stop
// delivery to the others.
package event
