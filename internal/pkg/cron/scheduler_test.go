package cron

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestScheduler_RunOnce(t *testing.T) {
	t.Parallel()

	var first, second atomic.Int32
	s := NewScheduler()
	s.AddJob("first", time.Hour, func(ctx context.Context) error {
		first.Add(1)
		return nil
	})
	s.AddJob("second", time.Hour, func(ctx context.Context) error {
		second.Add(1)
		return errors.New("boom")
	})

	s.RunOnce(context.Background())

	assert.Equal(t, int32(1), first.Load())
	// A failing job does not stop the others.
	assert.Equal(t, int32(1), second.Load())
}

func TestScheduler_StartRunsImmediately(t *testing.T) {
	t.Parallel()

	ran := make(chan struct{})
	var once atomic.Bool

	s := NewScheduler()
	s.AddJob("immediate", time.Hour, func(ctx context.Context) error {
		if once.CompareAndSwap(false, true) {
			close(ran)
		}
		return nil
	})

	s.Start()
	defer s.Stop()

	select {
	case <-ran:
	case <-time.After(2 * time.Second):
		t.Fatal("job did not run on start")
	}
}

func TestScheduler_StopWaitsForJobs(t *testing.T) {
	t.Parallel()

	s := NewScheduler()
	s.AddJob("ticker", 10*time.Millisecond, func(ctx context.Context) error {
		return nil
	})

	s.Start()
	time.Sleep(50 * time.Millisecond)

	done := make(chan struct{})
	go func() {
		s.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Stop did not return")
	}
}
