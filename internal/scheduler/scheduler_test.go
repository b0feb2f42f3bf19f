package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

// MockJob is a simple job for testing
type MockJob struct {
	RunCount atomic.Int32
	Done     chan struct{}
	Err      error
}

func (m *MockJob) Process(ctx context.Context) error {
	m.RunCount.Add(1)
	// Signal that job ran
	select {
	case m.Done <- struct{}{}:
	default:
	}
	return m.Err
}

func TestScheduler(t *testing.T) {
	defer goleak.VerifyNone(t)

	sched := New(context.Background())

	job := &MockJob{Done: make(chan struct{}, 10), Err: errors.New("failures are logged, not fatal")}
	require.NoError(t, sched.Schedule("@every 1s", job))
	sched.Start()

	timeout := time.After(5 * time.Second)
	runCount := 0
	for runCount < 2 {
		select {
		case <-job.Done:
			runCount++
		case <-timeout:
			t.Fatal("Timeout waiting for job execution")
		}
	}

	select {
	case <-sched.Stop().Done():
	case <-time.After(2 * time.Second):
		t.Fatal("Timeout waiting for scheduler to stop")
	}

	assert.GreaterOrEqual(t, int(job.RunCount.Load()), 2)
}

func TestScheduler_SkipsOverlappingRuns(t *testing.T) {
	defer goleak.VerifyNone(t)

	release := make(chan struct{})
	var running, maxRunning, calls atomic.Int32
	job := JobFunc(func(ctx context.Context) error {
		n := running.Add(1)
		defer running.Add(-1)
		if n > maxRunning.Load() {
			maxRunning.Store(n)
		}
		calls.Add(1)
		<-release
		return nil
	})

	sched := New(context.Background())
	require.NoError(t, sched.Schedule("@every 1s", job))
	sched.Start()

	// Let several ticks pass while the first run is blocked
	time.Sleep(2500 * time.Millisecond)
	close(release)

	select {
	case <-sched.Stop().Done():
	case <-time.After(2 * time.Second):
		t.Fatal("Timeout waiting for scheduler to stop")
	}

	assert.Equal(t, int32(1), maxRunning.Load())
	assert.GreaterOrEqual(t, calls.Load(), int32(1))
}

func TestScheduler_InvalidSpec(t *testing.T) {
	sched := New(context.Background())

	err := sched.Schedule("every tuesday", JobFunc(func(context.Context) error { return nil }))

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "every tuesday")
}

func TestScheduler_FiveFieldSpec(t *testing.T) {
	sched := New(context.Background())
	assert.NoError(t, sched.Schedule("*/15 * * * *", JobFunc(func(context.Context) error { return nil })))
	assert.NoError(t, sched.Schedule("0 */15 * * * *", JobFunc(func(context.Context) error { return nil })))
}
