package redis

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// redisClient holds the Redis client connection; nil when caching is disabled
var redisClient *redis.Client

// Init initializes the Redis connection and sets the global client.
// Redis is a cache here, not a store: if the URL is empty or the server
// is unreachable the service runs uncached.
func Init(redisURL string) *redis.Client {
	if redisURL == "" {
		log.Println("REDIS_URL not set, running without response cache")
		return nil
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Printf("Failed to parse Redis URL, running without response cache: %v", err)
		return nil
	}

	client := redis.NewClient(opts)

	// Test the connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err = client.Ping(ctx).Result(); err != nil {
		log.Printf("Failed to connect to Redis, running without response cache: %v", err)
		return nil
	}

	log.Println("Successfully connected to Redis")
	redisClient = client

	return client
}

// Close closes the Redis client connection
func Close() error {
	if redisClient != nil {
		log.Println("Closing Redis connection...")
		return redisClient.Close()
	}
	return nil
}

// Set stores a key-value pair with a TTL; a no-op without a connection
func Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	if redisClient == nil {
		return nil
	}
	return redisClient.Set(ctx, key, value, expiration).Err()
}

// Get retrieves a value by key; redis.Nil when missing or cache disabled
func Get(ctx context.Context, key string) (string, error) {
	if redisClient == nil {
		return "", redis.Nil
	}
	return redisClient.Get(ctx, key).Result()
}
