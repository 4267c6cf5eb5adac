package worker

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/Outfitter_Go/internal/testing/leaktest"
)

type testJob struct {
	executed *int32
}

func (j *testJob) Process(ctx context.Context) error {
	atomic.AddInt32(j.executed, 1)
	return nil
}

type blockingJob struct {
	release chan struct{}
}

func (j *blockingJob) Process(ctx context.Context) error {
	<-j.release
	return nil
}

func TestPool(t *testing.T) {
	var executed int32
	pool := NewPool(TestWorkerCount, TestQueueSize)
	pool.Start()

	job := &testJob{executed: &executed}
	assert.True(t, pool.Enqueue(job))
	assert.True(t, pool.Enqueue(job))

	// Wait a bit for workers to process
	time.Sleep(TestWorkerProcessWaitTime * time.Millisecond)

	pool.Stop()

	assert.Equal(t, int32(TestExpectedJobCount), atomic.LoadInt32(&executed))
}

func TestPool_EnqueueDropsWhenFull(t *testing.T) {
	// No workers started, so nothing drains the queue
	pool := NewPool(1, 1)

	assert.True(t, pool.Enqueue(&blockingJob{}))
	assert.False(t, pool.Enqueue(&blockingJob{}))
}

func TestPool_StopReleasesWorkers(t *testing.T) {
	checker := leaktest.NewGoroutineChecker(t)

	pool := NewPool(4, 1)
	pool.Start()
	pool.Stop()

	checker.Check(0)
}
