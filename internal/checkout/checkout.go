// Package checkout implements the mock checkout: form validation and order
// placement. Orders are never charged or persisted; an order only lives until
// the shopper dismisses the confirmation.
package checkout

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/DanielWebDeveloper25/e-commerce/internal/cart"
	"github.com/DanielWebDeveloper25/e-commerce/internal/errors"
)

// MaxOrderNumber bounds the random order number: numbers are in [0, MaxOrderNumber).
const MaxOrderNumber = 1_000_000

// Details is the checkout form.
type Details struct {
	FullName   string `json:"fullName"`
	Address    string `json:"address"`
	City       string `json:"city"`
	ZipCode    string `json:"zipCode"`
	CardNumber string `json:"cardNumber"`
	ExpiryDate string `json:"expiryDate"`
	CVV        string `json:"cvv"`
}

// Field is one named form input, in display order.
type Field struct {
	Key         string
	Label       string
	Placeholder string
}

// Fields lists the checkout inputs in the order they are shown.
func Fields() []Field {
	return []Field{
		{Key: "fullName", Label: "Full Name", Placeholder: "John Doe"},
		{Key: "address", Label: "Address", Placeholder: "123 Main St"},
		{Key: "city", Label: "City", Placeholder: "New York"},
		{Key: "zipCode", Label: "ZIP Code", Placeholder: "10001"},
		{Key: "cardNumber", Label: "Card Number", Placeholder: "4242 4242 4242 4242"},
		{Key: "expiryDate", Label: "Expiry Date", Placeholder: "MM/YY"},
		{Key: "cvv", Label: "CVV", Placeholder: "123"},
	}
}

// Values returns the field values in Fields order.
func (d Details) Values() []string {
	return []string{d.FullName, d.Address, d.City, d.ZipCode, d.CardNumber, d.ExpiryDate, d.CVV}
}

// DetailsFromValues is the inverse of Values. Missing trailing values are blank.
func DetailsFromValues(values []string) Details {
	v := make([]string, 7)
	copy(v, values)
	return Details{
		FullName:   v[0],
		Address:    v[1],
		City:       v[2],
		ZipCode:    v[3],
		CardNumber: v[4],
		ExpiryDate: v[5],
		CVV:        v[6],
	}
}

// Validate reports every blank field. Whitespace-only counts as blank.
func (d Details) Validate() error {
	var errs []error
	for i, v := range d.Values() {
		if strings.TrimSpace(v) == "" {
			errs = append(errs, errors.NewValidationError(Fields()[i].Key, "is required"))
		}
	}
	return errors.Join(errs...)
}

// Order is a placed order.
type Order struct {
	Number    int             `json:"number"`
	Ref       uuid.UUID       `json:"ref"`
	Lines     []cart.Line     `json:"lines"`
	ItemCount int             `json:"itemCount"`
	Total     decimal.Decimal `json:"total"`
	PlacedAt  time.Time       `json:"placedAt"`
}

// DisplayNumber renders the order number as shown on the confirmation.
func (o Order) DisplayNumber() string {
	return fmt.Sprintf("#%d", o.Number)
}

// Placer turns a cart summary and a complete form into an order.
type Placer struct {
	rng *rand.Rand
	now func() time.Time
}

// NewPlacer returns a Placer drawing order numbers from src.
func NewPlacer(src rand.Source) *Placer {
	return &Placer{rng: rand.New(src), now: time.Now}
}

// DefaultPlacer returns a Placer with a randomly seeded source.
func DefaultPlacer() *Placer {
	return NewPlacer(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// WithClock overrides the placement timestamp source.
func (p *Placer) WithClock(now func() time.Time) *Placer {
	p.now = now
	return p
}

// Place validates the form and returns the order. An empty cart is
// rejected with ErrCartEmpty; incomplete details with field validation
// errors. Anything else always succeeds.
func (p *Placer) Place(summary cart.Summary, details Details) (*Order, error) {
	if summary.IsEmpty() {
		return nil, errors.NewCheckoutError("place order", errors.ErrCartEmpty)
	}
	if err := details.Validate(); err != nil {
		return nil, err
	}

	lines := make([]cart.Line, len(summary.Lines))
	copy(lines, summary.Lines)

	return &Order{
		Number:    p.rng.IntN(MaxOrderNumber),
		Ref:       uuid.New(),
		Lines:     lines,
		ItemCount: summary.ItemCount,
		Total:     summary.Total,
		PlacedAt:  p.now(),
	}, nil
}
