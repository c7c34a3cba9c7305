package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DanielWebDeveloper25/e-commerce/internal/cart"
	"github.com/DanielWebDeveloper25/e-commerce/internal/storefront"
)

// AddItemInput is the body of POST /api/cart/items.
type AddItemInput struct {
	ProductID int `json:"product_id" binding:"required"`
}

// UpdateItemInput is the body of PATCH /api/cart/items/:id.
type UpdateItemInput struct {
	Delta int `json:"delta" binding:"required"`
}

// GetState handles GET /api/state.
func GetState() gin.HandlerFunc {
	return func(c *gin.Context) {
		var state storefront.State
		if withStorefront(c, func(f *storefront.Storefront) error {
			state = f.State()
			return nil
		}) {
			c.JSON(http.StatusOK, state)
		}
	}
}

// GetCart handles GET /api/cart.
func GetCart() gin.HandlerFunc {
	return cartHandler(func(*gin.Context, *storefront.Storefront) error { return nil })
}

// AddCartItem handles POST /api/cart/items.
func AddCartItem() gin.HandlerFunc {
	return func(c *gin.Context) {
		var input AddItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			badRequest(c, "Invalid input: "+err.Error())
			return
		}
		cartHandler(func(_ *gin.Context, f *storefront.Storefront) error {
			return f.AddToCart(input.ProductID)
		})(c)
	}
}

// UpdateCartItem handles PATCH /api/cart/items/:id.
func UpdateCartItem() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := paramID(c)
		if !ok {
			return
		}
		var input UpdateItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			badRequest(c, "Invalid input: "+err.Error())
			return
		}
		cartHandler(func(_ *gin.Context, f *storefront.Storefront) error {
			return f.ChangeQuantity(id, input.Delta)
		})(c)
	}
}

// DeleteCartItem handles DELETE /api/cart/items/:id.
func DeleteCartItem() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := paramID(c)
		if !ok {
			return
		}
		cartHandler(func(_ *gin.Context, f *storefront.Storefront) error {
			return f.RemoveFromCart(id)
		})(c)
	}
}

// ClearCart handles DELETE /api/cart.
func ClearCart() gin.HandlerFunc {
	return cartHandler(func(_ *gin.Context, f *storefront.Storefront) error {
		f.ClearCart()
		return nil
	})
}

// cartHandler applies op and responds with the resulting cart summary.
func cartHandler(op func(*gin.Context, *storefront.Storefront) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		var summary cart.Summary
		if withStorefront(c, func(f *storefront.Storefront) error {
			if err := op(c, f); err != nil {
				return err
			}
			summary = f.Summary()
			return nil
		}) {
			c.JSON(http.StatusOK, summary)
		}
	}
}
