package metrics

import (
	"context"
	"time"

	"github.com/americanglobalgroup/parcel-tracker/internal/store"
	"github.com/lthibault/jitterbug/v2"
	"go.uber.org/zap"
)

// UsersRefresher keeps the users gauge in line with the users table.
type UsersRefresher struct {
	store    store.Store
	interval time.Duration
}

func NewUsersRefresher(s store.Store, interval time.Duration) *UsersRefresher {
	return &UsersRefresher{store: s, interval: interval}
}

// Run refreshes the gauge right away and then on every tick until ctx is done.
func (r *UsersRefresher) Run(ctx context.Context) {
	r.Refresh(ctx)

	ticker := jitterbug.New(r.interval, &jitterbug.Norm{Stdev: r.interval / 10, Mean: 0})
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.Refresh(ctx)
		}
	}
}

func (r *UsersRefresher) Refresh(ctx context.Context) {
	counts, err := r.store.Statistics(ctx)
	if err != nil {
		zap.S().Named("users_refresher").Errorw("failed to count users", "error", err)
		return
	}
	for _, c := range counts {
		UpdateUsersCountMetric(c.Language, int(c.Count))
	}
}
