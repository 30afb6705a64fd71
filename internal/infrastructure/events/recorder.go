package events

import (
	"context"
	"sync"

	"github.com/frontandrew/ferry/internal/domain"
)

// Recorder сохраняет события в памяти в порядке поступления
type Recorder struct {
	mu     sync.Mutex
	events []domain.Event
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Publish(_ context.Context, event domain.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
	return nil
}

// Events возвращает копию всех записанных событий
func (r *Recorder) Events() []domain.Event {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]domain.Event, len(r.events))
	copy(out, r.events)
	return out
}

// OfType возвращает события заданного типа
func (r *Recorder) OfType(t domain.EventType) []domain.Event {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []domain.Event
	for _, e := range r.events {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}
