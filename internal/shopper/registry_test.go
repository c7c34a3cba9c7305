package shopper

import (
	"fmt"
	"math/rand/v2"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DanielWebDeveloper25/e-commerce/internal/catalog"
	"github.com/DanielWebDeveloper25/e-commerce/internal/checkout"
	"github.com/DanielWebDeveloper25/e-commerce/internal/errors"
	"github.com/DanielWebDeveloper25/e-commerce/internal/event"
	"github.com/DanielWebDeveloper25/e-commerce/internal/storefront"
)

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("shopper-%d", n)
	}
}

func newTestRegistry(t *testing.T, opts ...Option) (*Registry, *event.Bus) {
	t.Helper()
	bus := event.NewBus(nil)
	opts = append([]Option{
		WithBus(bus),
		WithIDGenerator(sequentialIDs()),
		WithPlacerFactory(func() *checkout.Placer { return checkout.NewPlacer(rand.NewPCG(7, 7)) }),
	}, opts...)
	return NewRegistry(catalog.Sample(), opts...), bus
}

func TestCreateAndGet(t *testing.T) {
	reg, _ := newTestRegistry(t)

	s, err := reg.Create()
	require.NoError(t, err)
	assert.Equal(t, "shopper-1", s.ID)

	got, err := reg.Get("shopper-1")
	require.NoError(t, err)
	assert.Same(t, s, got)

	err = s.Do(func(f *storefront.Storefront) error {
		assert.Equal(t, "shopper-1", f.ShopperID())
		return nil
	})
	require.NoError(t, err)
}

func TestGetUnknown(t *testing.T) {
	reg, _ := newTestRegistry(t)

	_, err := reg.Get("nobody")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrShopperNotFound))
	assert.True(t, errors.IsNotFound(err))
}

func TestCreateSkipsTakenIDs(t *testing.T) {
	ids := []string{"a", "a", "b"}
	i := 0
	reg, _ := newTestRegistry(t, WithIDGenerator(func() string {
		id := ids[i]
		i++
		return id
	}))

	first, err := reg.Create()
	require.NoError(t, err)
	second, err := reg.Create()
	require.NoError(t, err)

	assert.Equal(t, "a", first.ID)
	assert.Equal(t, "b", second.ID)
}

func TestMaxShoppers(t *testing.T) {
	reg, _ := newTestRegistry(t, WithMaxShoppers(2))

	_, err := reg.Create()
	require.NoError(t, err)
	_, err = reg.Create()
	require.NoError(t, err)

	_, err = reg.Create()
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrShopperLimit))
	assert.Equal(t, 2, reg.Len())

	require.NoError(t, reg.Release("shopper-1", ReasonExplicit))
	_, err = reg.Create()
	assert.NoError(t, err)
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name        string
		id          string
		wantID      string
		wantCreated bool
	}{
		{name: "empty id creates", id: "", wantID: "shopper-2", wantCreated: true},
		{name: "unknown id creates", id: "stale", wantID: "shopper-2", wantCreated: true},
		{name: "known id reuses", id: "shopper-1", wantID: "shopper-1", wantCreated: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg, _ := newTestRegistry(t)
			_, err := reg.Create()
			require.NoError(t, err)

			s, created, err := reg.Resolve(tt.id)
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, s.ID)
			assert.Equal(t, tt.wantCreated, created)
		})
	}
}

func TestShoppersAreIndependent(t *testing.T) {
	reg, _ := newTestRegistry(t)
	a, err := reg.Create()
	require.NoError(t, err)
	b, err := reg.Create()
	require.NoError(t, err)

	require.NoError(t, a.Do(func(f *storefront.Storefront) error { return f.AddToCart(1) }))

	_ = a.Do(func(f *storefront.Storefront) error {
		assert.Equal(t, 1, f.ItemCount())
		return nil
	})
	_ = b.Do(func(f *storefront.Storefront) error {
		assert.Zero(t, f.ItemCount())
		return nil
	})
}

func TestReleaseClosesOverlays(t *testing.T) {
	reg, bus := newTestRegistry(t)
	var released []event.ShopperReleasedEvent
	bus.Subscribe(event.TypeShopperReleased, func(e event.Event) {
		released = append(released, e.(event.ShopperReleasedEvent))
	})

	s, err := reg.Create()
	require.NoError(t, err)
	var front *storefront.Storefront
	_ = s.Do(func(f *storefront.Storefront) error {
		front = f
		f.OpenMenu()
		return nil
	})
	require.True(t, front.ScrollLocked())

	require.NoError(t, reg.Release(s.ID, ReasonExplicit))

	assert.False(t, front.ScrollLocked())
	assert.Zero(t, reg.Len())
	require.Len(t, released, 1)
	assert.Equal(t, s.ID, released[0].ShopperID)
	assert.Equal(t, ReasonExplicit, released[0].Reason)

	err = reg.Release(s.ID, ReasonExplicit)
	assert.True(t, errors.Is(err, errors.ErrShopperNotFound))
}

func TestReleaseIdle(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	reg, _ := newTestRegistry(t, WithClock(func() time.Time { return now }))

	stale, err := reg.Create()
	require.NoError(t, err)
	now = now.Add(20 * time.Minute)
	fresh, err := reg.Create()
	require.NoError(t, err)
	now = now.Add(5 * time.Minute)
	_ = fresh.Do(func(*storefront.Storefront) error { return nil })

	ids := reg.ReleaseIdle(15 * time.Minute)

	assert.Equal(t, []string{stale.ID}, ids)
	assert.Equal(t, []string{fresh.ID}, reg.IDs())
}

func TestLookupKeepsShopperAlive(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	reg, _ := newTestRegistry(t, WithClock(func() time.Time { return now }))

	s, err := reg.Create()
	require.NoError(t, err)
	now = now.Add(20 * time.Minute)

	// The request middleware resolves the shopper before running the handler.
	got, created, err := reg.Resolve(s.ID)
	require.NoError(t, err)
	require.False(t, created)
	assert.True(t, got.LastSeen().Equal(now), "LastSeen() = %v, want %v", got.LastSeen(), now)

	assert.Empty(t, reg.ReleaseIdle(15*time.Minute))
	assert.NoError(t, got.Do(func(f *storefront.Storefront) error { return f.AddToCart(1) }))
}

func TestDoAfterReleaseFails(t *testing.T) {
	reg, _ := newTestRegistry(t)
	s, err := reg.Create()
	require.NoError(t, err)

	require.NoError(t, reg.Release(s.ID, ReasonIdle))

	called := false
	err = s.Do(func(*storefront.Storefront) error {
		called = true
		return nil
	})
	assert.True(t, errors.Is(err, errors.ErrShopperNotFound))
	assert.False(t, called)
}

func TestReleaseAll(t *testing.T) {
	reg, bus := newTestRegistry(t)
	var reasons []string
	bus.Subscribe(event.TypeShopperReleased, func(e event.Event) {
		reasons = append(reasons, e.(event.ShopperReleasedEvent).Reason)
	})

	for range 3 {
		_, err := reg.Create()
		require.NoError(t, err)
	}

	ids := reg.ReleaseAll(ReasonShutdown)

	assert.Equal(t, []string{"shopper-1", "shopper-2", "shopper-3"}, ids)
	assert.Equal(t, []string{ReasonShutdown, ReasonShutdown, ReasonShutdown}, reasons)
	assert.Zero(t, reg.Len())
}

func TestCreatePublishesAndNotifies(t *testing.T) {
	reg, bus := newTestRegistry(t)
	var created []event.ShopperCreatedEvent
	bus.Subscribe(event.TypeShopperCreated, func(e event.Event) {
		created = append(created, e.(event.ShopperCreatedEvent))
	})
	var watched []string
	reg.WatchCreated(func(s *Shopper) {
		// handlers run outside the lock
		watched = append(watched, s.ID)
		assert.Equal(t, len(watched), reg.Len())
	})

	_, err := reg.Create()
	require.NoError(t, err)
	_, err = reg.Create()
	require.NoError(t, err)

	require.Len(t, created, 2)
	assert.Equal(t, 1, created[0].Active)
	assert.Equal(t, 2, created[1].Active)
	assert.Equal(t, []string{"shopper-1", "shopper-2"}, watched)
}

func TestConcurrentShoppers(t *testing.T) {
	reg := NewRegistry(catalog.Sample())

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s, err := reg.Create()
			if err != nil {
				t.Error(err)
				return
			}
			for range 10 {
				_ = s.Do(func(f *storefront.Storefront) error { return f.AddToCart(2) })
			}
		}()
	}
	wg.Wait()

	require.Equal(t, 8, reg.Len())
	for _, id := range reg.IDs() {
		s, err := reg.Get(id)
		require.NoError(t, err)
		_ = s.Do(func(f *storefront.Storefront) error {
			assert.Equal(t, 10, f.ItemCount())
			return nil
		})
	}
}
