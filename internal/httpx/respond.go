package httpx

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// HTTPError represents a standard error in JSON.
// swagger:model
type HTTPError struct {
	// Error message
	// example: store id is required
	Error string `json:"error"`
}

func BadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, HTTPError{Error: msg})
}

func Unauthenticated(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, HTTPError{Error: "unauthenticated"})
}

func Denied(c *gin.Context) {
	c.JSON(http.StatusForbidden, HTTPError{Error: "unauthorised"})
}

// Internal logs the real error under the handler tag and returns a generic
// message to the caller.
func Internal(c *gin.Context, tag string, err error) {
	log.Printf("[%s] %v", tag, err)
	c.JSON(http.StatusInternalServerError, HTTPError{Error: "internal error"})
}
