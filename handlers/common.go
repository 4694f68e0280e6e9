package handlers

import (
	"net/http"

	"roastline/gateway"

	"github.com/gin-gonic/gin"
)

// renderAPIError maps a store API failure onto the storefront response. The
// upstream's code is reused when it is a valid HTTP status; anything else
// (transport failures normalized to 500) renders as a bad gateway.
func renderAPIError(c *gin.Context, err error) {
	apiErr := gateway.AsAPIError(err)
	status := apiErr.Code
	if status < 400 || status > 599 {
		status = http.StatusBadGateway
	}
	c.JSON(status, gin.H{"error": apiErr.Message, "errors": apiErr.Errors})
}
