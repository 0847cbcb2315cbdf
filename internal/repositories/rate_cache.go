package repositories

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/peteresbull-alt/scopstrade-wallet/internal/logger"
	"github.com/redis/go-redis/v9"
)

// RateCacheRepository caches USD-per-unit rates in Redis so the options
// endpoint does not touch the rate provider on every request.
type RateCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached rates
}

// NewRateCacheRepository creates a new repository instance with the given TTL.
func NewRateCacheRepository(client *redis.Client, expiration time.Duration) *RateCacheRepository {
	return &RateCacheRepository{
		client: client,
		exp:    expiration,
	}
}

// GetRate fetches a cached USD-per-unit rate for a currency.
func (r *RateCacheRepository) GetRate(ctx context.Context, currency string) (float64, error) {
	key := fmt.Sprintf("wallet_rate:%s", currency)

	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		logger.Log.Infow(
			"key", key,
			"result", val,
			"error", err,
		)
		if err == redis.Nil {
			return 0, fmt.Errorf("rate not found in cache for %s", currency)
		}
		return 0, err
	}

	rate, err := strconv.ParseFloat(val, 64)
	if err != nil {
		logger.Log.Infow(
			"key", key,
			"value", val,
			"result", 0,
			"error", err,
		)
		return 0, err
	}

	logger.Log.Infow(
		"key", key,
		"value", val,
		"result", rate,
		"error", nil,
	)

	return rate, nil
}

// SetRate caches a USD-per-unit rate for a currency with expiration.
func (r *RateCacheRepository) SetRate(ctx context.Context, currency string, rate float64) error {
	key := fmt.Sprintf("wallet_rate:%s", currency)
	err := r.client.Set(ctx, key, strconv.FormatFloat(rate, 'f', -1, 64), r.exp).Err()

	logger.Log.Infow(
		"key", key,
		"rate", rate,
		"result", "ok",
		"error", err,
	)

	return err
}
