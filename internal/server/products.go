package server

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/DanielWebDeveloper25/e-commerce/internal/catalog"
	"github.com/DanielWebDeveloper25/e-commerce/internal/errors"
	"github.com/DanielWebDeveloper25/e-commerce/internal/shopper"
)

// Health handles GET /api/health.
func Health(reg *shopper.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "shoppers": reg.Len()})
	}
}

// ListCategories handles GET /api/categories.
func ListCategories() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"categories": catalog.Categories()})
	}
}

// ListProducts handles GET /api/products?search=&category=.
func ListProducts(cat *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		category, err := catalog.ParseCategory(c.Query("category"))
		if err != nil {
			respondError(c, err)
			return
		}

		products := catalog.Filter(c.Query("search"), category, cat.Products())
		if products == nil {
			products = []catalog.Product{}
		}
		c.JSON(http.StatusOK, gin.H{"products": products, "count": len(products)})
	}
}

// GetProduct handles GET /api/products/:id.
func GetProduct(cat *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := paramID(c)
		if !ok {
			return
		}
		p, found := cat.ByID(id)
		if !found {
			respondError(c, errors.NewNotFoundError("product", c.Param("id")).WithCause(errors.ErrProductNotFound))
			return
		}
		c.JSON(http.StatusOK, p)
	}
}

// paramID parses the :id path parameter, writing a 400 when it is not a
// number.
func paramID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		badRequest(c, "Invalid product id")
		return 0, false
	}
	return id, true
}
