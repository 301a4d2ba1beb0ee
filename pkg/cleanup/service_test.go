package cleanup

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type countingSuperseder struct {
	calls atomic.Int32
}

func (c *countingSuperseder) SupersedeStale(context.Context) (int, error) {
	c.calls.Add(1)
	return 1, nil
}

func TestServiceSweepsImmediatelyAndPeriodically(t *testing.T) {
	sup := &countingSuperseder{}
	svc := NewService(20*time.Millisecond, sup)

	svc.Start(context.Background())
	defer svc.Stop()

	assert.Eventually(t, func() bool {
		return sup.calls.Load() >= 2
	}, 2*time.Second, 10*time.Millisecond, "expected an immediate sweep plus at least one tick")
}

func TestStopHaltsSweeping(t *testing.T) {
	sup := &countingSuperseder{}
	svc := NewService(time.Hour, sup)

	svc.Start(context.Background())
	svc.Start(context.Background()) // second Start is a no-op
	svc.Stop()

	after := sup.calls.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, after, sup.calls.Load(), "no sweeps after Stop")
}
