// File: utils/redis.go
package utils

import (
	"context"
	"log"
	"time"

	"roastline/config"

	"github.com/go-redis/redis/v8"
)

// CheckoutCacheClient is the dedicated client for checkout session caching.
var CheckoutCacheClient *redis.Client

// InitCheckoutCache initializes the Redis client for checkout session caching.
func InitCheckoutCache() {
	CheckoutCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCheckoutDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := CheckoutCacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Checkout Cache): %v", err)
	}
}

// GetCheckoutCacheClient returns the Redis client for checkout session caching.
func GetCheckoutCacheClient() *redis.Client {
	if CheckoutCacheClient == nil {
		InitCheckoutCache()
	}
	return CheckoutCacheClient
}
