package notify

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatcher_RunsQueuedJobs(t *testing.T) {
	d := NewDispatcher(1, 8)
	d.Start()
	defer d.Stop()

	done := make(chan struct{})
	ok := d.Enqueue("test-job", func() error {
		close(done)
		return nil
	})
	require.True(t, ok)

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("job was not executed")
	}
}

func TestDispatcher_SwallowsJobFailures(t *testing.T) {
	d := NewDispatcher(1, 8)
	d.Start()
	defer d.Stop()

	ran := make(chan string, 2)
	d.Enqueue("failing-job", func() error {
		ran <- "failing"
		return errors.New("chat webhook returned status 500")
	})
	d.Enqueue("following-job", func() error {
		ran <- "following"
		return nil
	})

	// The failure is logged and must not stop the worker.
	for i := 0; i < 2; i++ {
		select {
		case <-ran:
		case <-time.After(2 * time.Second):
			t.Fatal("jobs did not run after a failure")
		}
	}
}

func TestDispatcher_FullQueueDropsJob(t *testing.T) {
	// Never started, so nothing drains the single-slot queue.
	d := NewDispatcher(1, 1)

	assert.True(t, d.Enqueue("first", func() error { return nil }))
	assert.False(t, d.Enqueue("second", func() error { return nil }))
}

func TestDispatcher_StartStopIdempotent(t *testing.T) {
	d := NewDispatcher(2, 8)
	d.Start()
	d.Start()
	d.Stop()
	d.Stop()
}
