package flows

import (
	"context"
	"sync"
	"time"

	"github.com/peteresbull-alt/scopstrade-wallet/internal/logger"
)

// DefaultPollInterval is how often the unread notification count is
// refreshed. Polling is independent of wizard state.
const DefaultPollInterval = 30 * time.Second

// UnreadFetcher returns the current number of unread notifications.
type UnreadFetcher func(ctx context.Context) (int, error)

// NotificationPoller keeps an unread count fresh on a fixed interval. A
// failed fetch keeps the last known count.
type NotificationPoller struct {
	fetch    UnreadFetcher
	interval time.Duration

	mu     sync.RWMutex
	unread int
}

// NewNotificationPoller creates a poller; a non-positive interval falls
// back to DefaultPollInterval.
func NewNotificationPoller(fetch UnreadFetcher, interval time.Duration) *NotificationPoller {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	return &NotificationPoller{
		fetch:    fetch,
		interval: interval,
	}
}

// Run fetches once immediately, then on every tick until ctx is done.
func (p *NotificationPoller) Run(ctx context.Context) {
	p.refresh(ctx)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.refresh(ctx)
		}
	}
}

// Unread returns the last fetched unread count.
func (p *NotificationPoller) Unread() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.unread
}

func (p *NotificationPoller) refresh(ctx context.Context) {
	count, err := p.fetch(ctx)
	if err != nil {
		logger.Log.Warnw("failed to fetch unread count", "error", err)
		return
	}

	p.mu.Lock()
	p.unread = count
	p.mu.Unlock()
}
