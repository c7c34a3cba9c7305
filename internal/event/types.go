package event

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Event is the interface that all events must implement.
type Event interface {
	// EventType returns "category.action", e.g. "order.placed".
	EventType() string
	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// Event types published by the storefront and the shopper registry.
const (
	TypeCartChanged     = "cart.changed"
	TypeSignedIn        = "auth.signed_in"
	TypeSignedOut       = "auth.signed_out"
	TypeOrderPlaced     = "order.placed"
	TypeOverlayChanged  = "overlay.changed"
	TypeShopperCreated  = "shopper.created"
	TypeShopperReleased = "shopper.released"
)

type baseEvent struct {
	eventType string
	timestamp time.Time
}

func (e baseEvent) EventType() string    { return e.eventType }
func (e baseEvent) Timestamp() time.Time { return e.timestamp }

func newBaseEvent(eventType string) baseEvent {
	return baseEvent{eventType: eventType, timestamp: time.Now()}
}

// -----------------------------------------------------------------------------
// Cart Events
// -----------------------------------------------------------------------------

// CartChangedEvent is emitted after any cart mutation.
type CartChangedEvent struct {
	baseEvent
	ShopperID string
	ProductID int // 0 when the whole cart was cleared
	Quantity  int // the line's quantity after the change, 0 if removed
	ItemCount int
	Total     decimal.Decimal
}

// NewCartChangedEvent creates a CartChangedEvent.
func NewCartChangedEvent(shopperID string, productID, quantity, itemCount int, total decimal.Decimal) CartChangedEvent {
	return CartChangedEvent{
		baseEvent: newBaseEvent(TypeCartChanged),
		ShopperID: shopperID,
		ProductID: productID,
		Quantity:  quantity,
		ItemCount: itemCount,
		Total:     total,
	}
}

// -----------------------------------------------------------------------------
// Account Events
// -----------------------------------------------------------------------------

// SignedInEvent is emitted when a mock sign-in or sign-up succeeds.
type SignedInEvent struct {
	baseEvent
	ShopperID   string
	Mode        string
	DisplayName string
}

// NewSignedInEvent creates a SignedInEvent.
func NewSignedInEvent(shopperID, mode, displayName string) SignedInEvent {
	return SignedInEvent{
		baseEvent:   newBaseEvent(TypeSignedIn),
		ShopperID:   shopperID,
		Mode:        mode,
		DisplayName: displayName,
	}
}

// SignedOutEvent is emitted when a shopper signs out.
type SignedOutEvent struct {
	baseEvent
	ShopperID string
}

// NewSignedOutEvent creates a SignedOutEvent.
func NewSignedOutEvent(shopperID string) SignedOutEvent {
	return SignedOutEvent{baseEvent: newBaseEvent(TypeSignedOut), ShopperID: shopperID}
}

// -----------------------------------------------------------------------------
// Order Events
// -----------------------------------------------------------------------------

// OrderPlacedEvent is emitted when the mock checkout accepts an order.
type OrderPlacedEvent struct {
	baseEvent
	ShopperID string
	Number    int
	Ref       uuid.UUID
	ItemCount int
	Total     decimal.Decimal
}

// NewOrderPlacedEvent creates an OrderPlacedEvent.
func NewOrderPlacedEvent(shopperID string, number int, ref uuid.UUID, itemCount int, total decimal.Decimal) OrderPlacedEvent {
	return OrderPlacedEvent{
		baseEvent: newBaseEvent(TypeOrderPlaced),
		ShopperID: shopperID,
		Number:    number,
		Ref:       ref,
		ItemCount: itemCount,
		Total:     total,
	}
}

// -----------------------------------------------------------------------------
// Overlay Events
// -----------------------------------------------------------------------------

// OverlayChangedEvent is emitted when the menu, cart panel, auth modal or
// checkout modal opens or closes. ScrollLocked is the lock state afterwards.
type OverlayChangedEvent struct {
	baseEvent
	ShopperID    string
	Overlay      string
	Open         bool
	ScrollLocked bool
}

// NewOverlayChangedEvent creates an OverlayChangedEvent.
func NewOverlayChangedEvent(shopperID, overlay string, open, scrollLocked bool) OverlayChangedEvent {
	return OverlayChangedEvent{
		baseEvent:    newBaseEvent(TypeOverlayChanged),
		ShopperID:    shopperID,
		Overlay:      overlay,
		Open:         open,
		ScrollLocked: scrollLocked,
	}
}

// -----------------------------------------------------------------------------
// Shopper Registry Events
// -----------------------------------------------------------------------------

// ShopperCreatedEvent is emitted when the API issues a new shopper id.
type ShopperCreatedEvent struct {
	baseEvent
	ShopperID string
	Active    int // active shoppers including this one
}

// NewShopperCreatedEvent creates a ShopperCreatedEvent.
func NewShopperCreatedEvent(shopperID string, active int) ShopperCreatedEvent {
	return ShopperCreatedEvent{
		baseEvent: newBaseEvent(TypeShopperCreated),
		ShopperID: shopperID,
		Active:    active,
	}
}

// ShopperReleasedEvent is emitted when a shopper's state is dropped.
type ShopperReleasedEvent struct {
	baseEvent
	ShopperID string
	Reason    string
}

// NewShopperReleasedEvent creates a ShopperReleasedEvent.
func NewShopperReleasedEvent(shopperID, reason string) ShopperReleasedEvent {
	return ShopperReleasedEvent{
		baseEvent: newBaseEvent(TypeShopperReleased),
		ShopperID: shopperID,
		Reason:    reason,
	}
}
