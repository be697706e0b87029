package middleware

import (
	"net/http"

	userRepo "styledecor/database/repository/user"
	"styledecor/models"
	"styledecor/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

// AdminOnlyMiddleware gates a route on the caller holding the admin role.
// Roles are cached in Redis with a short TTL and dropped on role changes;
// a cache miss falls through to the user store. The 403 body never reveals
// whether the target resource exists.
func AdminOnlyMiddleware(users userRepo.UserRepository, cache *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := AuthEmail(c)
		if email == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "unauthorized access"})
			return
		}

		role := cachedRole(c, cache, email)
		if role == "" {
			u, err := users.GetByEmail(email)
			if err != nil || u == nil {
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "forbidden access"})
				return
			}
			role = u.Role
			if cache != nil {
				cache.Set(c.Request.Context(), utils.RoleCacheKey(email), string(role), utils.RoleCacheTTL)
			}
		}

		if role != models.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "forbidden access"})
			return
		}
		c.Next()
	}
}

func cachedRole(c *gin.Context, cache *redis.Client, email string) models.Role {
	if cache == nil {
		return ""
	}
	val, err := cache.Get(c.Request.Context(), utils.RoleCacheKey(email)).Result()
	if err != nil {
		return ""
	}
	return models.Role(val)
}
