package database

import (
	"log"

	"github.com/go-redis/redis/v8"

	"gymku_backend/internals/configs"
)

var Redis *redis.Client

func ConnectRedis() {
	addr := configs.RedisURL
	if addr == "" {
		addr = "localhost:6379"
		log.Println("⚠️ REDIS_URL not set, using localhost:6379 (development mode)")
	}

	Redis = redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: configs.GetEnv("REDIS_PASSWORD"),
		DB:       0,
	})

	log.Println("🔧 Redis initialized with address:", addr)
}
