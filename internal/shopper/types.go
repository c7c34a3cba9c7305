package shopper

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/DanielWebDeveloper25/e-commerce/internal/checkout"
	"github.com/DanielWebDeveloper25/e-commerce/internal/errors"
	"github.com/DanielWebDeveloper25/e-commerce/internal/event"
	"github.com/DanielWebDeveloper25/e-commerce/internal/logging"
	"github.com/DanielWebDeveloper25/e-commerce/internal/storefront"
)

// Release reasons reported in ShopperReleased events.
const (
	ReasonIdle     = "idle"
	ReasonShutdown = "shutdown"
	ReasonExplicit = "released"
)

// Shopper is one API visitor and the storefront that holds their state.
type Shopper struct {
	ID        string
	CreatedAt time.Time

	mu       sync.Mutex
	front    *storefront.Storefront
	released bool
	lastSeen atomic.Int64 // unix nanoseconds
	now      func() time.Time
}

// Do runs fn with exclusive access to the shopper's storefront. It fails
// with ErrShopperNotFound once the shopper has been released.
func (s *Shopper) Do(fn func(*storefront.Storefront) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.released {
		return errors.NewNotFoundError("shopper", s.ID).WithCause(errors.ErrShopperNotFound)
	}
	s.touch()
	return fn(s.front)
}

// LastSeen returns when the shopper was last looked up or used.
func (s *Shopper) LastSeen() time.Time {
	return time.Unix(0, s.lastSeen.Load())
}

func (s *Shopper) touch() {
	s.lastSeen.Store(s.now().UnixNano())
}

// release closes the storefront's overlays and rejects any later Do.
func (s *Shopper) release() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.released {
		return
	}
	s.released = true
	s.front.Close()
}

// Option configures a Registry.
type Option func(*Registry)

// WithMaxShoppers caps the number of live shoppers. Zero means no limit.
func WithMaxShoppers(n int) Option {
	return func(r *Registry) {
		r.maxShoppers = n
	}
}

// WithBus publishes shopper lifecycle events and hands bus to every
// storefront the registry creates.
func WithBus(bus *event.Bus) Option {
	return func(r *Registry) {
		r.bus = bus
	}
}

// WithLogger sets the logger passed down to storefronts.
func WithLogger(logger *logging.Logger) Option {
	return func(r *Registry) {
		r.logger = logger
	}
}

// WithIDGenerator replaces the uuid generator for shopper ids.
func WithIDGenerator(gen func() string) Option {
	return func(r *Registry) {
		r.newID = gen
	}
}

// WithPlacerFactory sets how each shopper's order placer is built.
func WithPlacerFactory(f func() *checkout.Placer) Option {
	return func(r *Registry) {
		r.newPlacer = f
	}
}

// WithClock overrides the time source used for idle tracking.
func WithClock(now func() time.Time) Option {
	return func(r *Registry) {
		r.now = now
	}
}
