package storage

import (
	"context"
	"encoding/json"
	"log"

	"github.com/go-redis/redis/v8"
)

// RedisStore persists id sets as JSON string values in Redis.
type RedisStore struct {
	RDB *redis.Client
}

func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{RDB: rdb}
}

func (s *RedisStore) ReadSet(ctx context.Context, key string) []int64 {
	raw, err := s.RDB.Get(ctx, key).Result()
	if err != nil {
		if err != redis.Nil {
			log.Printf("Error reading key %s from redis: %v", key, err)
		}
		return nil
	}

	var members []int64
	if err := json.Unmarshal([]byte(raw), &members); err != nil {
		// Corrupt value reads as empty; it will be replaced on the next write.
		log.Printf("Malformed value for key %s, treating as empty: %v", key, err)
		return nil
	}
	return members
}

func (s *RedisStore) WriteSet(ctx context.Context, key string, members []int64) error {
	if members == nil {
		members = []int64{}
	}
	payload, err := json.Marshal(members)
	if err != nil {
		return err
	}
	return s.RDB.Set(ctx, key, payload, 0).Err()
}
