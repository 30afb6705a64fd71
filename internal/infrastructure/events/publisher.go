package events

import (
	"context"
	"errors"

	"github.com/frontandrew/ferry/internal/domain"
)

// Publisher - получатель событий симуляции
type Publisher interface {
	// Publish доставляет событие. Ошибка не должна останавливать симуляцию.
	Publish(ctx context.Context, event domain.Event) error
}

// PublisherFunc позволяет использовать функцию как Publisher
type PublisherFunc func(ctx context.Context, event domain.Event) error

func (f PublisherFunc) Publish(ctx context.Context, event domain.Event) error {
	return f(ctx, event)
}

// multiPublisher рассылает событие всем получателям по порядку
type multiPublisher struct {
	publishers []Publisher
}

// NewMulti объединяет несколько Publisher. nil-значения пропускаются.
func NewMulti(publishers ...Publisher) Publisher {
	list := make([]Publisher, 0, len(publishers))
	for _, p := range publishers {
		if p != nil {
			list = append(list, p)
		}
	}
	return &multiPublisher{publishers: list}
}

// Publish доставляет событие каждому получателю, даже если предыдущий вернул ошибку
func (m *multiPublisher) Publish(ctx context.Context, event domain.Event) error {
	var errs []error
	for _, p := range m.publishers {
		if err := p.Publish(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Discard - Publisher, игнорирующий все события
var Discard Publisher = PublisherFunc(func(context.Context, domain.Event) error { return nil })
