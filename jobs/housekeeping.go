package jobs

import (
	"context"
	"time"

	"go.uber.org/zap"
)

type NotificationPruner interface {
	PruneReadNotifications(ctx context.Context, before time.Time) (int64, error)
}

// PruneNotifications deletes read notifications older than retention.
func PruneNotifications(store NotificationPruner, retention time.Duration, log *zap.Logger) Job {
	return func(ctx context.Context) error {
		n, err := store.PruneReadNotifications(ctx, time.Now().Add(-retention))
		if err != nil {
			return err
		}
		if n > 0 {
			log.Info("pruned notifications", zap.Int64("deleted", n))
		}
		return nil
	}
}
