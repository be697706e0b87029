// middleware/auth.go
package middleware

import (
	"net/http"
	"strings"

	"firebase.google.com/go/v4/auth"
	"github.com/gin-gonic/gin"
)

// AuthEmailKey is the context key under which the verified caller email is
// stored.
const AuthEmailKey = "authEmail"

// FirebaseAuthMiddleware verifies the Bearer ID token against Firebase and
// stores the verified email in the request context. Both a missing and an
// invalid credential return 401.
func FirebaseAuthMiddleware(client *auth.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "unauthorized access"})
			return
		}
		idToken := strings.TrimPrefix(authHeader, "Bearer ")

		token, err := client.VerifyIDToken(c.Request.Context(), idToken)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "unauthorized access"})
			return
		}

		email, _ := token.Claims["email"].(string)
		if email == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "unauthorized access"})
			return
		}

		c.Set(AuthEmailKey, email)
		c.Next()
	}
}

// AuthEmail returns the verified caller email set by FirebaseAuthMiddleware.
func AuthEmail(c *gin.Context) string {
	if v, exists := c.Get(AuthEmailKey); exists {
		if email, ok := v.(string); ok {
			return email
		}
	}
	return ""
}
