// internal/interfaces/http/handlers/response.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-gateway/internal/api"
	"github.com/your-org/storefront-gateway/internal/checkout"
	"github.com/your-org/storefront-gateway/internal/session"
)

// respondError maps a domain error to an HTTP response. Backend failures the
// gateway merely relayed come back as 502 rather than masquerading as our own
// server errors.
func respondError(c *gin.Context, err error) {
	var validationErr *checkout.ValidationError
	if errors.As(err, &validationErr) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":  "Validation failed",
			"fields": validationErr.Fields,
		})
		return
	}

	var authErr *session.AuthError
	if errors.As(err, &authErr) {
		status := authErr.Status
		switch {
		case status == 0 && authErr.Err == nil:
			status = http.StatusBadRequest
		case status == 0 || status >= 500:
			status = http.StatusBadGateway
		}
		c.JSON(status, gin.H{
			"error": authErr.Message,
		})
		return
	}

	if status := api.StatusOf(err); status != 0 {
		if status >= 500 {
			status = http.StatusBadGateway
		}
		c.JSON(status, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{
		"error": err.Error(),
	})
}
