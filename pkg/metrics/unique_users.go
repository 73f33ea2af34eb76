package metrics

import (
	"context"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

type uniqueUsers struct {
	counter prometheus.Gauge
	seen    map[int64]struct{}
	mu      sync.RWMutex
}

const uniqueUsersPerDay = "unique_users_per_day"

var totalUniqueUsersPerDayMetric = prometheus.NewGauge(
	prometheus.GaugeOpts{
		Namespace: parcelTracker,
		Name:      uniqueUsersPerDay,
		Help:      "metrics to record the number of distinct users talking to the bot since the last daily reset",
	},
)

var UniqueUsersPerDay = &uniqueUsers{
	counter: totalUniqueUsersPerDayMetric,
	seen:    make(map[int64]struct{}),
}

func (v *uniqueUsers) Reset() {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.seen = make(map[int64]struct{})
	v.counter.Set(0)
}

func (v *uniqueUsers) Observe(userID int64) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if _, exists := v.seen[userID]; exists {
		return
	}

	v.seen[userID] = struct{}{}
	v.counter.Inc()
}

func (v *uniqueUsers) Count() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return len(v.seen)
}

// ResetEvery clears the distinct users every period until ctx is done.
func (v *uniqueUsers) ResetEvery(ctx context.Context, period time.Duration) {
	ticker := time.NewTicker(period)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			v.Reset()
			zap.S().Named("metrics").Info("daily unique users metric reset")
		case <-ctx.Done():
			return
		}
	}
}
