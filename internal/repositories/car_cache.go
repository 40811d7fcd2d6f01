package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-car-rental/internal/logger"
	"github.com/sbilibin2017/gw-car-rental/internal/models"
)

// CarCacheRepository caches public car reads in Redis.
type CarCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached cars
}

// NewCarCacheRepository creates a new repository instance with the given TTL.
func NewCarCacheRepository(client *redis.Client, expiration time.Duration) *CarCacheRepository {
	return &CarCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func carKey(id int64) string {
	return fmt.Sprintf("car:%d", id)
}

// Get returns the cached car, or nil on a cache miss.
func (r *CarCacheRepository) Get(ctx context.Context, id int64) (*models.CarDB, error) {
	key := carKey(id)

	val, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			logger.Log.Debugw("cache miss", "key", key)
			return nil, nil
		}
		logger.Log.Errorw("cache get failed", "key", key, "error", err)
		return nil, err
	}

	var car models.CarDB
	if err := json.Unmarshal(val, &car); err != nil {
		logger.Log.Errorw("cache value is corrupt", "key", key, "error", err)
		return nil, err
	}

	logger.Log.Debugw("cache hit", "key", key)
	return &car, nil
}

// maxSetAttempts bounds the optimistic retries of Set when the key changes
// between WATCH and EXEC.
const maxSetAttempts = 3

// Set caches the car with the repository TTL. A cached entry with a newer
// UpdatedAt is kept, so a slow reader cannot overwrite a fresher write.
func (r *CarCacheRepository) Set(ctx context.Context, car *models.CarDB) error {
	key := carKey(car.ID)

	data, err := json.Marshal(car)
	if err != nil {
		return err
	}

	stale := false
	txf := func(tx *redis.Tx) error {
		stale = false
		cached, err := tx.Get(ctx, key).Bytes()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		if err == nil {
			var current models.CarDB
			if json.Unmarshal(cached, &current) == nil && current.UpdatedAt.After(car.UpdatedAt) {
				stale = true
				return nil
			}
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, data, r.exp)
			return nil
		})
		return err
	}

	for attempt := 0; attempt < maxSetAttempts; attempt++ {
		err = r.client.Watch(ctx, txf, key)
		if !errors.Is(err, redis.TxFailedErr) {
			break
		}
	}

	logger.Log.Infow("cache set",
		"key", key,
		"ttl", r.exp,
		"skipped_stale", stale,
		"error", err,
	)

	return err
}

// Delete evicts the car from the cache.
func (r *CarCacheRepository) Delete(ctx context.Context, id int64) error {
	key := carKey(id)
	err := r.client.Del(ctx, key).Err()

	logger.Log.Infow("cache delete",
		"key", key,
		"error", err,
	)

	return err
}
