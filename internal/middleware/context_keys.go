package middleware

import "github.com/gin-gonic/gin"

// clientIDKey is the key used to store the authenticated client's ID.
const clientIDKey = contextKey("clientID")

// GetClientIDFromContext retrieves the authenticated client ID from the Gin
// context, checking the request context as well.
func GetClientIDFromContext(c *gin.Context) (string, bool) {
	clientIDVal, exists := c.Get(string(clientIDKey))
	if !exists {
		if v := c.Request.Context().Value(clientIDKey); v != nil {
			if clientID, ok := v.(string); ok {
				return clientID, true
			}
		}
		return "", false
	}

	clientID, ok := clientIDVal.(string)
	if !ok {
		return "", false
	}
	return clientID, true
}
