// Package catalog holds the read-only product list of the store and the
// search/category filter applied to it.
package catalog

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/DanielWebDeveloper25/e-commerce/internal/errors"
)

// Category is one of the fixed product categories.
type Category string

// Categories in display order. CategoryAll is the filter sentinel and is
// never assigned to a product.
const (
	CategoryAll         Category = "All"
	CategoryElectronics Category = "Electronics"
	CategoryAccessories Category = "Accessories"
	CategoryHome        Category = "Home"
	CategorySports      Category = "Sports"
)

// Categories returns the filter choices: CategoryAll followed by every
// product category.
func Categories() []Category {
	return []Category{
		CategoryAll,
		CategoryElectronics,
		CategoryAccessories,
		CategoryHome,
		CategorySports,
	}
}

// ParseCategory resolves a category name case-insensitively.
// An empty name resolves to CategoryAll.
func ParseCategory(name string) (Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return CategoryAll, nil
	}
	for _, c := range Categories() {
		if strings.EqualFold(string(c), name) {
			return c, nil
		}
	}
	return "", errors.NewValidationError("category", "must be one of All, Electronics, Accessories, Home, Sports").
		WithValue(name).
		WithCause(errors.ErrUnknownCategory)
}

// Product is a purchasable catalog item. Products are values; nothing in
// the store mutates them after the catalog is built.
type Product struct {
	ID          int             `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Image       string          `json:"image"`
	Rating      float64         `json:"rating"`
	Reviews     int             `json:"reviews"`
	Category    Category        `json:"category"`
	Description string          `json:"description"`
}

// Catalog is an immutable, ordered product list.
type Catalog struct {
	products []Product
	byID     map[int]int
}

// New builds a catalog from products, keeping their order.
// Later duplicates of an id are ignored.
func New(products []Product) *Catalog {
	c := &Catalog{
		products: make([]Product, 0, len(products)),
		byID:     make(map[int]int, len(products)),
	}
	for _, p := range products {
		if _, dup := c.byID[p.ID]; dup {
			continue
		}
		c.byID[p.ID] = len(c.products)
		c.products = append(c.products, p)
	}
	return c
}

// Products returns a copy of the catalog in catalog order.
func (c *Catalog) Products() []Product {
	out := make([]Product, len(c.products))
	copy(out, c.products)
	return out
}

// ByID looks up a product by id.
func (c *Catalog) ByID(id int) (Product, bool) {
	idx, ok := c.byID[id]
	if !ok {
		return Product{}, false
	}
	return c.products[idx], true
}

// Len returns the number of products.
func (c *Catalog) Len() int {
	return len(c.products)
}

// Filter returns the products whose name contains search (case-insensitive)
// and whose category equals category. CategoryAll bypasses the category
// check. Order is preserved and nothing is ranked.
func Filter(search string, category Category, products []Product) []Product {
	needle := strings.ToLower(search)
	out := make([]Product, 0, len(products))
	for _, p := range products {
		if !strings.Contains(strings.ToLower(p.Name), needle) {
			continue
		}
		if category != CategoryAll && p.Category != category {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Stars returns how many of the five rating stars are filled: star n is
// filled when n <= rating.
func Stars(rating float64) int {
	filled := 0
	for n := 1; n <= 5; n++ {
		if float64(n) <= rating {
			filled++
		}
	}
	return filled
}
