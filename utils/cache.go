// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"styledecor/config"

	"github.com/go-redis/redis/v8"
)

// RoleCacheClient is the dedicated client for caching user roles consulted
// by the admin gate.
var RoleCacheClient *redis.Client

// InitRoleCache initializes the Redis client for role caching.
func InitRoleCache() {
	RoleCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := RoleCacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (RoleCache): %v", err)
	}
}

// GetRoleCacheClient returns the role cache client.
func GetRoleCacheClient() *redis.Client {
	if RoleCacheClient == nil {
		InitRoleCache()
	}
	return RoleCacheClient
}

// RoleCacheTTL bounds how long a cached role may lag a role change.
const RoleCacheTTL = 5 * time.Minute

// RoleCacheKey builds the cache key for a user's role.
func RoleCacheKey(email string) string {
	return "role:" + email
}
