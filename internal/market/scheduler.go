package market

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron"

	"wealthtrack/internal/logger"
)

// Refresher is the part of Service the scheduler needs.
type Refresher interface {
	Refresh(ctx context.Context) (*RefreshResult, error)
}

// StartRefresher runs r.Refresh on the cron spec (e.g. "@every 10m"), each
// run bounded by timeout. The caller stops the returned cron on shutdown.
func StartRefresher(r Refresher, spec string, timeout time.Duration) (*cron.Cron, error) {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	c := cron.New()
	err := c.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		if _, err := r.Refresh(ctx); err != nil {
			logger.Named("market").Errorw("scheduled quote refresh failed", "error", err)
		}
	})
	if err != nil {
		return nil, fmt.Errorf("invalid refresh schedule %q: %w", spec, err)
	}
	c.Start()
	return c, nil
}
