package db

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// NewRedis devolve nil quando url está vazia ou o servidor não responde;
// o cache de estúdios funciona sem Redis.
func NewRedis(url string) *redis.Client {
	if url == "" {
		return nil
	}

	opts, err := redis.ParseURL(url)
	if err != nil {
		opts = &redis.Options{Addr: url}
	}
	opts.PoolSize = 20
	opts.MaxRetries = 3

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("redis unavailable, studio cache disabled: %v", err)
		_ = client.Close()
		return nil
	}

	log.Println("connected to redis")
	return client
}
