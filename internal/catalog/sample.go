package catalog

import "github.com/shopspring/decimal"

const imageBase = "https://images.unsplash.com/"

// Sample returns the built-in demo catalog.
func Sample() *Catalog {
	return New([]Product{
		{
			ID:          1,
			Name:        "Wireless Bluetooth Headphones",
			Price:       decimal.RequireFromString("89.99"),
			Image:       imageBase + "photo-1505740420928-5e560c06d30e?w=300&h=300&fit=crop",
			Rating:      4.5,
			Reviews:     1204,
			Category:    CategoryElectronics,
			Description: "Premium wireless headphones with noise cancellation and 30-hour battery life.",
		},
		{
			ID:          2,
			Name:        "Smart Watch Series 8",
			Price:       decimal.RequireFromString("299.99"),
			Image:       imageBase + "photo-1523275335684-37898b6baf30?w=300&h=300&fit=crop",
			Rating:      4.8,
			Reviews:     892,
			Category:    CategoryElectronics,
			Description: "Advanced fitness tracking, heart rate monitoring, and smartphone integration.",
		},
		{
			ID:          3,
			Name:        "Laptop Backpack",
			Price:       decimal.RequireFromString("39.99"),
			Image:       imageBase + "photo-1553062407-98eeb64c6a62?w=300&h=300&fit=crop",
			Rating:      4.3,
			Reviews:     567,
			Category:    CategoryAccessories,
			Description: "Durable laptop backpack with multiple compartments and USB charging port.",
		},
		{
			ID:          4,
			Name:        "Coffee Maker Pro",
			Price:       decimal.RequireFromString("129.99"),
			Image:       imageBase + "photo-1559056199-641a0ac8b55e?w=300&h=300&fit=crop",
			Rating:      4.6,
			Reviews:     234,
			Category:    CategoryHome,
			Description: "Programmable coffee maker with built-in grinder and thermal carafe.",
		},
		{
			ID:          5,
			Name:        "Fitness Resistance Bands",
			Price:       decimal.RequireFromString("24.99"),
			Image:       imageBase + "photo-1571019613454-1cb2f99b2d8b?w=300&h=300&fit=crop",
			Rating:      4.4,
			Reviews:     1456,
			Category:    CategorySports,
			Description: "Set of 5 resistance bands with different resistance levels for full-body workout.",
		},
		{
			ID:          6,
			Name:        "Wireless Phone Charger",
			Price:       decimal.RequireFromString("19.99"),
			Image:       imageBase + "photo-1586953208448-b95a79798f07?w=300&h=300&fit=crop",
			Rating:      4.2,
			Reviews:     789,
			Category:    CategoryElectronics,
			Description: "Fast wireless charging pad compatible with all Qi-enabled devices.",
		},
		{
			ID:          7,
			Name:        "Gaming Mechanical Keyboard",
			Price:       decimal.RequireFromString("149.99"),
			Image:       imageBase + "photo-1541140532154-b024d705b90a?w=300&h=300&fit=crop",
			Rating:      4.7,
			Reviews:     543,
			Category:    CategoryElectronics,
			Description: "RGB mechanical gaming keyboard with blue switches and customizable lighting.",
		},
		{
			ID:          8,
			Name:        "Yoga Mat Premium",
			Price:       decimal.RequireFromString("49.99"),
			Image:       imageBase + "photo-1544367567-0f2fcb009e0b?w=300&h=300&fit=crop",
			Rating:      4.5,
			Reviews:     892,
			Category:    CategorySports,
			Description: "Non-slip premium yoga mat with alignment lines and carrying strap.",
		},
	})
}
