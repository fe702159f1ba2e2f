package database

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

var (
	RedisHelper *redisUtil
)

type redisUtil struct {
	client *redis.Client
	ctx    context.Context
}

func InitRedis(url string) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		log.Fatal().Msgf("Invalid Redis URL: %v", err)
	}

	if opts.TLSConfig == nil {
		opts.TLSConfig = &tls.Config{
			MinVersion: tls.VersionTLS12,
		}
	}

	redisClient := redis.NewClient(opts)
	ctx := context.Background()

	_, err = redisClient.Ping(ctx).Result()
	if err != nil {
		log.Fatal().Msgf("Could not connect to Redis: %v", err)
	}

	log.Info().Msg("Connected to Redis")

	RedisHelper = &redisUtil{
		client: redisClient,
		ctx:    ctx,
	}
}

// Set marshals value as JSON under key. A nil helper (redis not
// configured) is a no-op so callers can treat the cache as best-effort.
func (r *redisUtil) Set(key string, value interface{}, expiration time.Duration) error {
	if r == nil {
		return nil
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	err = r.client.Set(r.ctx, key, raw, expiration).Err()
	if err != nil {
		log.Warn().Str("key", key).Err(err).Msg("Redis SET failed")
	}
	return err
}

// GetAsStruct unmarshals the JSON stored under key into target and
// reports whether the key existed.
func (r *redisUtil) GetAsStruct(key string, target interface{}) (bool, error) {
	if r == nil {
		return false, nil
	}
	val, err := r.client.Get(r.ctx, key).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		log.Warn().Str("key", key).Err(err).Msg("Redis GET failed")
		return false, err
	}
	if err := json.Unmarshal([]byte(val), target); err != nil {
		return false, err
	}
	return true, nil
}

func (r *redisUtil) Delete(key string) error {
	if r == nil {
		return nil
	}
	err := r.client.Del(r.ctx, key).Err()
	if err != nil {
		log.Warn().Str("key", key).Err(err).Msg("Redis DEL failed")
	}
	return err
}
