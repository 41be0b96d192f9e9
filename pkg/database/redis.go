package database

import (
	"context"
	"fmt"
	"log"

	"habit_tracker_backend/internal/config"

	"github.com/go-redis/redis/v8"
)

// InitRedis 初始化列表缓存用的 redis 客户端，缓存未启用时返回 nil
func InitRedis(cfg *config.CacheConfig) (*redis.Client, error) {
	if !cfg.Enabled {
		return nil, nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     10,
		MinIdleConns: 2,
	})

	ctx := context.Background()
	_, err := rdb.Ping(ctx).Result()
	if err != nil {
		return nil, err
	}

	log.Println("Redis connection established")
	return rdb, nil
}
