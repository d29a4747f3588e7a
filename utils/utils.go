package utils

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GenerateDashlessUUID creates a new UUID v4 and returns its string
// representation with all dashes removed.
func GenerateDashlessUUID() string {
	id := uuid.New()
	return strings.ReplaceAll(id.String(), "-", "")
}

// GenerateID returns a prefixed, dashless random id such as "ua_4f9c...".
// Entity prefixes ("ua_" for ads, "msg_" for messages, "u_" for dating
// profiles) match the ids the stores have always persisted.
func GenerateID(prefix string) string {
	return prefix + "_" + GenerateDashlessUUID()
}

// APIError is a standard structure for returning errors as JSON.
type APIError struct {
	Error string `json:"error"`
}

// GinError sends a JSON error response with a specific status code.
// It logs the error server-side as well.
func GinError(c *gin.Context, statusCode int, message string) {
	log.Printf("ERROR: Request %s %s - Status %d - %s", c.Request.Method, c.Request.URL.Path, statusCode, message)
	c.AbortWithStatusJSON(statusCode, APIError{Error: message})
}

// GinBadRequest sends a 400 Bad Request error response.
func GinBadRequest(c *gin.Context, message string) {
	GinError(c, http.StatusBadRequest, message)
}

// GinUnauthorized sends a 401 Unauthorized error response.
func GinUnauthorized(c *gin.Context, message string) {
	GinError(c, http.StatusUnauthorized, message)
}

// GinForbidden sends a 403 Forbidden error response.
func GinForbidden(c *gin.Context, message string) {
	GinError(c, http.StatusForbidden, message)
}

// GinNotFound sends a 404 Not Found error response.
func GinNotFound(c *gin.Context, message string) {
	GinError(c, http.StatusNotFound, message)
}

// GinInternalServerError sends a 500 Internal Server Error response.
func GinInternalServerError(c *gin.Context, message string) {
	GinError(c, http.StatusInternalServerError, message)
}
