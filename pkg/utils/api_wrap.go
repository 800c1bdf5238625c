package utils

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// RespondError writes the flat {"error": ...} body used by the advice
// endpoint on unexpected failures.
func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"error": message})
}

// RespondRelayError writes the {"ok": false, "error": ...} body the relay
// endpoints use, mapping the relay error taxonomy to a status code: missing
// configuration is a per-request 500, anything else (network failure on the
// outbound call) surfaces as 500 as well but is logged with its cause.
func RespondRelayError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrMissingRelayConfig):
		c.JSON(http.StatusInternalServerError, gin.H{
			"ok":    false,
			"error": "Missing server settings (URL or TOKEN)",
		})
	case errors.Is(err, ErrUpstreamUnreachable):
		log.Printf("Lead relay upstream unreachable: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"ok":    false,
			"error": "Lead store unreachable",
		})
	default:
		log.Printf("Lead relay error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"ok":    false,
			"error": "Unknown error",
		})
	}
}
