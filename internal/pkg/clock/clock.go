package clock

import (
	"context"
	"sync"
	"time"
)

// Clock - источник времени для симуляции
type Clock interface {
	// Now возвращает текущее время часов
	Now() time.Time

	// Sleep ждет d. Возвращает ctx.Err(), если ожидание прервано.
	Sleep(ctx context.Context, d time.Duration) error
}

// Real - настоящие часы, ожидание блокирует вызывающего
type Real struct{}

// NewReal создает часы реального времени
func NewReal() Clock {
	return Real{}
}

func (Real) Now() time.Time {
	return time.Now()
}

func (Real) Sleep(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Logical - логические часы: Sleep сдвигает время без реального ожидания
type Logical struct {
	mu  sync.Mutex
	now time.Time
}

// NewLogical создает логические часы, начинающиеся со start
func NewLogical(start time.Time) *Logical {
	return &Logical{now: start}
}

func (c *Logical) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Sleep всегда сдвигает время на d, но сообщает об отмене контекста,
// как это сделали бы настоящие часы
func (c *Logical) Sleep(ctx context.Context, d time.Duration) error {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()

	return ctx.Err()
}
