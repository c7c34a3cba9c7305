package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DanielWebDeveloper25/e-commerce/internal/checkout"
	"github.com/DanielWebDeveloper25/e-commerce/internal/storefront"
)

// PlaceOrder handles POST /api/checkout.
//
// Opens checkout, fills the form and places the order. The order stays on
// the shopper's state until POST /api/checkout/done.
func PlaceOrder() gin.HandlerFunc {
	return func(c *gin.Context) {
		var details checkout.Details
		if err := c.ShouldBindJSON(&details); err != nil {
			badRequest(c, "Invalid input: "+err.Error())
			return
		}

		var order checkout.Order
		if withStorefront(c, func(f *storefront.Storefront) error {
			if f.Order() == nil {
				if err := f.OpenCheckout(); err != nil {
					return err
				}
				f.SetCheckoutForm(details)
			}
			o, err := f.SubmitCheckout()
			if err != nil {
				if f.Order() == nil {
					f.CloseCheckout()
				}
				return err
			}
			order = *o
			return nil
		}) {
			c.JSON(http.StatusCreated, gin.H{"order": order, "orderNumber": order.DisplayNumber()})
		}
	}
}

// ContinueShopping handles POST /api/checkout/done.
func ContinueShopping() gin.HandlerFunc {
	return func(c *gin.Context) {
		var state storefront.State
		if withStorefront(c, func(f *storefront.Storefront) error {
			if err := f.ContinueShopping(); err != nil {
				return err
			}
			state = f.State()
			return nil
		}) {
			c.JSON(http.StatusOK, state)
		}
	}
}
