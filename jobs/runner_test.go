package jobs

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestEveryRunsUntilCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	var calls int32
	New(ctx, nil).Every(5*time.Millisecond, "test_tick", func(context.Context) error {
		atomic.AddInt32(&calls, 1)
		return nil
	})

	require.Eventually(t, func() bool { return atomic.LoadInt32(&calls) >= 3 }, time.Second, 5*time.Millisecond)
	cancel()
	time.Sleep(20 * time.Millisecond)
	settled := atomic.LoadInt32(&calls)
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, settled, atomic.LoadInt32(&calls))
}

func TestEveryCountsErrors(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	New(ctx, zap.NewNop()).Every(5*time.Millisecond, "test_failing", func(context.Context) error {
		return errors.New("nope")
	})

	require.Eventually(t, func() bool {
		return testutil.ToFloat64(jobErrors.WithLabelValues("test_failing")) >= 1
	}, time.Second, 5*time.Millisecond)
}

type fakePruner struct{ before time.Time }

func (f *fakePruner) PruneReadNotifications(_ context.Context, before time.Time) (int64, error) {
	f.before = before
	return 3, nil
}

func TestPruneNotificationsUsesRetention(t *testing.T) {
	p := &fakePruner{}
	job := PruneNotifications(p, 48*time.Hour, zap.NewNop())

	require.NoError(t, job(context.Background()))
	assert.WithinDuration(t, time.Now().Add(-48*time.Hour), p.before, time.Minute)
}
