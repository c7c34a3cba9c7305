package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DanielWebDeveloper25/e-commerce/internal/errors"
)

// statusFor maps a domain error to an HTTP status.
func statusFor(err error) int {
	switch {
	case errors.IsValidation(err):
		return http.StatusBadRequest
	case errors.IsNotFound(err):
		return http.StatusNotFound
	case errors.Is(err, errors.ErrCartEmpty),
		errors.Is(err, errors.ErrOrderPending),
		errors.Is(err, errors.ErrNoOrder):
		return http.StatusConflict
	case errors.Is(err, errors.ErrShopperLimit):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func respondError(c *gin.Context, err error) {
	body := gin.H{"error": errors.UserMessage(err)}
	if fields := errors.Fields(err); len(fields) > 0 {
		body["fields"] = fields
	}
	c.JSON(statusFor(err), body)
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": msg})
}
