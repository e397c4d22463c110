package infrastructure

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskScheduler_Go(t *testing.T) {
	scheduler := NewTaskScheduler()
	done := make(chan struct{})

	scheduler.Go("close channel", func(ctx context.Context) error {
		close(done)
		return nil
	})

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("task did not run")
	}
	require.NoError(t, scheduler.Shutdown(context.Background()))
}

func TestTaskScheduler_AfterWaitsForDelay(t *testing.T) {
	scheduler := NewTaskScheduler()
	ran := make(chan time.Time, 1)
	start := time.Now()

	scheduler.After(50*time.Millisecond, "delayed", func(ctx context.Context) error {
		ran <- time.Now()
		return nil
	})
	assert.Equal(t, 1, scheduler.Pending())

	select {
	case at := <-ran:
		assert.GreaterOrEqual(t, at.Sub(start), 50*time.Millisecond)
	case <-time.After(2 * time.Second):
		t.Fatal("delayed task did not run")
	}
	assert.Eventually(t, func() bool { return scheduler.Pending() == 0 }, time.Second, 10*time.Millisecond)
	require.NoError(t, scheduler.Shutdown(context.Background()))
}

func TestTaskScheduler_ShutdownRunsPendingTasks(t *testing.T) {
	scheduler := NewTaskScheduler()
	var runs atomic.Int32

	for i := 0; i < 3; i++ {
		scheduler.After(time.Hour, "delete message", func(ctx context.Context) error {
			runs.Add(1)
			return nil
		})
	}
	require.Equal(t, 3, scheduler.Pending())

	require.NoError(t, scheduler.Shutdown(context.Background()))
	assert.Equal(t, int32(3), runs.Load())
	assert.Equal(t, 0, scheduler.Pending())
}

func TestTaskScheduler_DropsTasksAfterShutdown(t *testing.T) {
	scheduler := NewTaskScheduler()
	require.NoError(t, scheduler.Shutdown(context.Background()))

	var runs atomic.Int32
	scheduler.Go("late", func(ctx context.Context) error {
		runs.Add(1)
		return nil
	})
	scheduler.After(time.Millisecond, "late delayed", func(ctx context.Context) error {
		runs.Add(1)
		return nil
	})

	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, int32(0), runs.Load())
}

func TestTaskScheduler_FailingTasksDoNotStopOthers(t *testing.T) {
	scheduler := NewTaskScheduler()
	var runs atomic.Int32

	scheduler.Go("fails", func(ctx context.Context) error {
		runs.Add(1)
		return errors.New("missing access")
	})
	scheduler.Go("panics", func(ctx context.Context) error {
		runs.Add(1)
		panic("boom")
	})
	scheduler.Go("works", func(ctx context.Context) error {
		runs.Add(1)
		return nil
	})

	require.NoError(t, scheduler.Shutdown(context.Background()))
	assert.Equal(t, int32(3), runs.Load())
}

func TestTaskScheduler_ShutdownHonoursDeadline(t *testing.T) {
	scheduler := NewTaskScheduler()
	release := make(chan struct{})
	defer close(release)

	scheduler.Go("stuck", func(ctx context.Context) error {
		<-release
		return nil
	})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, scheduler.Shutdown(ctx), context.DeadlineExceeded)
}
