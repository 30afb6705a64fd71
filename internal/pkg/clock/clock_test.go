package clock

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLogical_Sleep(t *testing.T) {
	start := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	clk := NewLogical(start)

	assert.NoError(t, clk.Sleep(context.Background(), 5*time.Second))
	assert.Equal(t, start.Add(5*time.Second), clk.Now())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// Время идет и при отмене
	assert.ErrorIs(t, clk.Sleep(ctx, 5*time.Second), context.Canceled)
	assert.Equal(t, start.Add(10*time.Second), clk.Now())
}

func TestReal_Sleep(t *testing.T) {
	clk := NewReal()

	before := clk.Now()
	assert.NoError(t, clk.Sleep(context.Background(), 10*time.Millisecond))
	assert.GreaterOrEqual(t, clk.Now().Sub(before), 10*time.Millisecond)
}

func TestReal_SleepCancelled(t *testing.T) {
	clk := NewReal()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	assert.ErrorIs(t, clk.Sleep(ctx, time.Hour), context.Canceled)
	assert.Less(t, time.Since(start), time.Second)

	ctx, cancel = context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, clk.Sleep(ctx, time.Hour), context.DeadlineExceeded)
}
