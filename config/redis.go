package config

import (
	"context"
	"log"

	"github.com/redis/go-redis/v9"
)

var RedisClient *redis.Client

// ConnectRedis is optional: without a reachable server the cart falls back
// to the in-memory session store.
func ConnectRedis() {
	if AppConfig.RedisAddr == "" {
		log.Println("REDIS_ADDR not set, using in-memory cart store")
		return
	}

	RedisClient = redis.NewClient(&redis.Options{
		Addr:     AppConfig.RedisAddr,
		Password: AppConfig.RedisPassword,
		DB:       0,
	})

	if err := RedisClient.Ping(context.Background()).Err(); err != nil {
		log.Println("Redis connection failed:", err)
		log.Println("Using in-memory cart store")
		RedisClient = nil
		return
	}

	log.Println("Redis connected")
}

func CloseRedis() {
	if RedisClient != nil {
		RedisClient.Close()
	}
}
