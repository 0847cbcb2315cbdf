package services

import (
	"context"
	"time"

	"github.com/peteresbull-alt/scopstrade-wallet/internal/logger"
)

// RateSource fetches current USD conversion rates from the rate provider.
type RateSource interface {
	GetRates(ctx context.Context) (map[string]float64, error)
}

// RateCacheWriter caches rates for the options endpoint.
type RateCacheWriter interface {
	SetRate(ctx context.Context, currency string, rate float64) error
}

// OptionRateUpdater persists refreshed rates onto wallet options.
type OptionRateUpdater interface {
	UpdateRate(ctx context.Context, currency string, rate float64) error
}

// RateRefresher periodically pulls rates from the provider and pushes them
// into the cache and the wallet options table. A fetch failure leaves the
// previous rates in place.
type RateRefresher struct {
	source   RateSource
	cache    RateCacheWriter
	options  OptionRateUpdater
	interval time.Duration
}

// NewRateRefresher creates a new RateRefresher.
func NewRateRefresher(source RateSource, cache RateCacheWriter, options OptionRateUpdater, interval time.Duration) *RateRefresher {
	return &RateRefresher{
		source:   source,
		cache:    cache,
		options:  options,
		interval: interval,
	}
}

// Run refreshes once immediately, then on every tick until ctx is done.
func (r *RateRefresher) Run(ctx context.Context) {
	if err := r.RefreshOnce(ctx); err != nil {
		logger.Log.Errorw("initial rate refresh failed", "error", err)
	}

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := r.RefreshOnce(ctx); err != nil {
				logger.Log.Errorw("rate refresh failed", "error", err)
			}
		}
	}
}

// RefreshOnce fetches rates and applies them. Non-positive rates are
// skipped: a zero rate would make conversion undefined downstream.
func (r *RateRefresher) RefreshOnce(ctx context.Context) error {
	rates, err := r.source.GetRates(ctx)
	if err != nil {
		return err
	}

	for currency, rate := range rates {
		if rate <= 0 {
			logger.Log.Warnw("skipping non-positive rate", "currency", currency, "rate", rate)
			continue
		}
		if r.cache != nil {
			if err := r.cache.SetRate(ctx, currency, rate); err != nil {
				logger.Log.Errorw("failed to cache rate", "currency", currency, "error", err)
			}
		}
		if r.options != nil {
			if err := r.options.UpdateRate(ctx, currency, rate); err != nil {
				logger.Log.Errorw("failed to persist rate", "currency", currency, "error", err)
			}
		}
	}

	logger.Log.Infow("rates refreshed", "count", len(rates))
	return nil
}
