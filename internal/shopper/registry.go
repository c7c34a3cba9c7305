package shopper

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/DanielWebDeveloper25/e-commerce/internal/catalog"
	"github.com/DanielWebDeveloper25/e-commerce/internal/checkout"
	"github.com/DanielWebDeveloper25/e-commerce/internal/errors"
	"github.com/DanielWebDeveloper25/e-commerce/internal/event"
	"github.com/DanielWebDeveloper25/e-commerce/internal/logging"
	"github.com/DanielWebDeveloper25/e-commerce/internal/storefront"
)

// Registry maps shopper ids to storefronts over a shared catalog.
type Registry struct {
	mu          sync.RWMutex
	shoppers    map[string]*Shopper
	catalog     *catalog.Catalog
	bus         *event.Bus
	logger      *logging.Logger
	maxShoppers int
	newID       func() string
	newPlacer   func() *checkout.Placer
	now         func() time.Time
	handlers    []func(*Shopper)
}

// NewRegistry creates an empty Registry serving cat.
func NewRegistry(cat *catalog.Catalog, opts ...Option) *Registry {
	r := &Registry{
		shoppers:  make(map[string]*Shopper),
		catalog:   cat,
		newID:     uuid.NewString,
		newPlacer: checkout.DefaultPlacer,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.logger == nil {
		r.logger = logging.NopLogger()
	}
	return r
}

// Get returns the shopper with id or an error wrapping ErrShopperNotFound.
// A successful lookup counts as activity, so the idle reaper will not take
// a shopper between lookup and use.
func (r *Registry) Get(id string) (*Shopper, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.shoppers[id]
	if !ok {
		return nil, errors.NewNotFoundError("shopper", id).WithCause(errors.ErrShopperNotFound)
	}
	s.touch()
	return s, nil
}

// Create registers a new shopper with a fresh id. Returns ErrShopperLimit
// when the registry is full.
func (r *Registry) Create() (*Shopper, error) {
	r.mu.Lock()
	s, active, err := r.createLocked()
	r.mu.Unlock()

	if err != nil {
		return nil, err
	}
	r.publish(event.NewShopperCreatedEvent(s.ID, active))
	r.notifyHandlersUnlocked(s)
	return s, nil
}

// Resolve returns the shopper with id, creating a new one (with a new id)
// when id is empty or unknown. The boolean reports whether a shopper was
// created.
func (r *Registry) Resolve(id string) (*Shopper, bool, error) {
	if id != "" {
		if s, err := r.Get(id); err == nil {
			return s, false, nil
		}
	}
	s, err := r.Create()
	if err != nil {
		return nil, false, err
	}
	return s, true, nil
}

// createLocked builds and stores a shopper while the write lock is held.
func (r *Registry) createLocked() (*Shopper, int, error) {
	if r.maxShoppers > 0 && len(r.shoppers) >= r.maxShoppers {
		return nil, 0, fmt.Errorf("%w: limit is %d", errors.ErrShopperLimit, r.maxShoppers)
	}

	id := r.newID()
	for _, taken := r.shoppers[id]; taken; _, taken = r.shoppers[id] {
		id = r.newID()
	}

	s := &Shopper{
		ID:        id,
		CreatedAt: r.now(),
		now:       r.now,
		front: storefront.New(r.catalog,
			storefront.WithShopperID(id),
			storefront.WithLogger(r.logger),
			storefront.WithBus(r.bus),
			storefront.WithPlacer(r.newPlacer()),
		),
	}
	s.lastSeen.Store(s.CreatedAt.UnixNano())
	r.shoppers[id] = s
	return s, len(r.shoppers), nil
}

// Release closes the shopper's storefront and forgets it.
func (r *Registry) Release(id, reason string) error {
	r.mu.Lock()
	s, ok := r.shoppers[id]
	if ok {
		delete(r.shoppers, id)
	}
	r.mu.Unlock()

	if !ok {
		return errors.NewNotFoundError("shopper", id).WithCause(errors.ErrShopperNotFound)
	}
	r.close(s, reason)
	return nil
}

// ReleaseIdle releases every shopper not seen for longer than maxIdle and
// returns their ids, sorted.
func (r *Registry) ReleaseIdle(maxIdle time.Duration) []string {
	cutoff := r.now().Add(-maxIdle)

	r.mu.Lock()
	var idle []*Shopper
	for id, s := range r.shoppers {
		if s.LastSeen().Before(cutoff) {
			idle = append(idle, s)
			delete(r.shoppers, id)
		}
	}
	r.mu.Unlock()

	return r.closeAll(idle, ReasonIdle)
}

// ReleaseAll releases every shopper, closing their overlays, and returns
// their ids, sorted.
func (r *Registry) ReleaseAll(reason string) []string {
	r.mu.Lock()
	all := make([]*Shopper, 0, len(r.shoppers))
	for _, s := range r.shoppers {
		all = append(all, s)
	}
	r.shoppers = make(map[string]*Shopper)
	r.mu.Unlock()

	return r.closeAll(all, reason)
}

func (r *Registry) closeAll(shoppers []*Shopper, reason string) []string {
	sort.Slice(shoppers, func(i, j int) bool { return shoppers[i].ID < shoppers[j].ID })
	ids := make([]string, len(shoppers))
	for i, s := range shoppers {
		r.close(s, reason)
		ids[i] = s.ID
	}
	return ids
}

func (r *Registry) close(s *Shopper, reason string) {
	s.release()
	r.publish(event.NewShopperReleasedEvent(s.ID, reason))
}

// Len returns the number of live shoppers.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.shoppers)
}

// IDs returns every live shopper id, sorted.
func (r *Registry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.shoppers))
	for id := range r.shoppers {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// WatchCreated registers a handler called after each new shopper is stored.
// Handlers run outside the registry lock and may call back into it.
func (r *Registry) WatchCreated(handler func(*Shopper)) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.handlers = append(r.handlers, handler)
}

func (r *Registry) notifyHandlersUnlocked(s *Shopper) {
	r.mu.RLock()
	handlers := make([]func(*Shopper), len(r.handlers))
	copy(handlers, r.handlers)
	r.mu.RUnlock()

	for _, h := range handlers {
		h(s)
	}
}

func (r *Registry) publish(e event.Event) {
	if r.bus != nil {
		r.bus.Publish(e)
	}
}
