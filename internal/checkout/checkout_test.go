package checkout

import (
	"math/rand/v2"
	"reflect"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/DanielWebDeveloper25/e-commerce/internal/cart"
	"github.com/DanielWebDeveloper25/e-commerce/internal/catalog"
	"github.com/DanielWebDeveloper25/e-commerce/internal/errors"
)

func completeDetails() Details {
	return Details{
		FullName:   "John Doe",
		Address:    "123 Main St",
		City:       "New York",
		ZipCode:    "10001",
		CardNumber: "4242 4242 4242 4242",
		ExpiryDate: "12/29",
		CVV:        "123",
	}
}

func filledCart(t *testing.T) *cart.Cart {
	t.Helper()
	c := cart.New()
	p1, _ := catalog.Sample().ByID(1)
	p2, _ := catalog.Sample().ByID(2)
	c.Add(p1)
	c.Add(p1)
	c.Add(p2)
	return c
}

func TestDetailsValidate(t *testing.T) {
	if err := completeDetails().Validate(); err != nil {
		t.Fatalf("complete details rejected: %v", err)
	}

	d := completeDetails()
	d.City = " "
	d.CVV = ""
	err := d.Validate()
	if !errors.Is(err, errors.ErrIncompleteForm) {
		t.Fatalf("error = %v, want ErrIncompleteForm", err)
	}
	if got := errors.Fields(err); !reflect.DeepEqual(got, []string{"city", "cvv"}) {
		t.Errorf("Fields() = %v, want [city cvv]", got)
	}
}

func TestValuesRoundTrip(t *testing.T) {
	d := completeDetails()
	if got := DetailsFromValues(d.Values()); got != d {
		t.Errorf("DetailsFromValues(Values()) = %+v, want %+v", got, d)
	}
	if got := DetailsFromValues([]string{"only name"}); got.FullName != "only name" || got.CVV != "" {
		t.Errorf("short values = %+v", got)
	}
	if len(Fields()) != len(d.Values()) {
		t.Errorf("Fields() has %d entries, Values() %d", len(Fields()), len(d.Values()))
	}
}

func TestPlace(t *testing.T) {
	placedAt := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	p := NewPlacer(rand.NewPCG(7, 7)).WithClock(func() time.Time { return placedAt })

	summary := filledCart(t).Snapshot()
	order, err := p.Place(summary, completeDetails())
	if err != nil {
		t.Fatalf("Place() error = %v", err)
	}

	if order.Number < 0 || order.Number >= MaxOrderNumber {
		t.Errorf("Number = %d, out of range", order.Number)
	}
	if order.Ref == uuid.Nil {
		t.Error("Ref is nil uuid")
	}
	if order.ItemCount != 3 {
		t.Errorf("ItemCount = %d, want 3", order.ItemCount)
	}
	if order.Total.StringFixed(2) != "479.97" {
		t.Errorf("Total = %s, want 479.97", order.Total)
	}
	if !order.PlacedAt.Equal(placedAt) {
		t.Errorf("PlacedAt = %v, want %v", order.PlacedAt, placedAt)
	}
	if order.DisplayNumber()[0] != '#' {
		t.Errorf("DisplayNumber() = %q", order.DisplayNumber())
	}
}

func TestPlaceOrderNumbersStayInRange(t *testing.T) {
	p := DefaultPlacer()
	summary := filledCart(t).Snapshot()
	for i := 0; i < 500; i++ {
		order, err := p.Place(summary, completeDetails())
		if err != nil {
			t.Fatal(err)
		}
		if order.Number < 0 || order.Number >= MaxOrderNumber {
			t.Fatalf("Number = %d, out of range", order.Number)
		}
	}
}

func TestPlaceRejectsEmptyCart(t *testing.T) {
	_, err := DefaultPlacer().Place(cart.New().Snapshot(), completeDetails())
	if !errors.Is(err, errors.ErrCartEmpty) {
		t.Errorf("error = %v, want ErrCartEmpty", err)
	}
}

func TestPlaceRejectsIncompleteDetails(t *testing.T) {
	d := completeDetails()
	d.ZipCode = ""
	_, err := DefaultPlacer().Place(filledCart(t).Snapshot(), d)
	if !errors.IsValidation(err) {
		t.Errorf("error = %v, want validation error", err)
	}
}

func TestOrderLinesAreDetached(t *testing.T) {
	c := filledCart(t)
	summary := c.Snapshot()
	order, err := DefaultPlacer().Place(summary, completeDetails())
	if err != nil {
		t.Fatal(err)
	}
	summary.Lines[0].Quantity = 42
	if order.Lines[0].Quantity == 42 {
		t.Error("order lines share storage with the summary")
	}
}
