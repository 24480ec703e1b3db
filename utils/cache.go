// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"github.com/Instaresz90008/demo-app-sub000/config"

	"github.com/go-redis/redis/v8"
)

var (
	// SessionCacheClient holds live wizard sessions (TTL'd JSON blobs).
	SessionCacheClient *redis.Client
	// KVClient is the dedicated client for named-collection key/value persistence.
	KVClient *redis.Client
)

// InitSessionCache initializes the Redis client for wizard session storage.
func InitSessionCache() {
	SessionCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisSessionDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := SessionCacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Sessions): %v", err)
	}
}

// GetSessionCacheClient returns the wizard session cache client.
func GetSessionCacheClient() *redis.Client {
	if SessionCacheClient == nil {
		InitSessionCache()
	}
	return SessionCacheClient
}

// InitKVStore initializes the Redis client for key/value persistence
// (managed services, booking links).
func InitKVStore() {
	KVClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisKVDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := KVClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (KV store): %v", err)
	}
}

// GetKVClient returns the Redis client for key/value persistence.
func GetKVClient() *redis.Client {
	if KVClient == nil {
		InitKVStore()
	}
	return KVClient
}
