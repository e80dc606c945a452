package config

import (
	"log"

	"github.com/go-redis/redis"
)

// InitRedis connects the like-counter cache. An empty addr disables it and
// like counts are served from the database alone.
func InitRedis(cfg *Config) (*redis.Client, error) {
	if cfg.Redis.Addr == "" {
		log.Println("redis addr empty, skipping redis init")
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		DB:       cfg.Redis.DB,
		Password: cfg.Redis.Password,
	})
	if _, err := client.Ping().Result(); err != nil {
		return nil, err
	}
	return client, nil
}
