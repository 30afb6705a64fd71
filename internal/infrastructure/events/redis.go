package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/frontandrew/ferry/internal/domain"
)

// redisPublisher - часть Redis клиента, нужная для публикации
type redisPublisher interface {
	Publish(ctx context.Context, channel string, message interface{}) (int64, error)
}

// RedisPublisher публикует события в канал Redis в формате JSON
type RedisPublisher struct {
	client  redisPublisher
	channel string
}

// NewRedisPublisher создает Publisher поверх redis.Client
func NewRedisPublisher(client redisPublisher, channel string) *RedisPublisher {
	return &RedisPublisher{
		client:  client,
		channel: channel,
	}
}

// Publish сериализует событие и отправляет его в канал
func (p *RedisPublisher) Publish(ctx context.Context, event domain.Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	// Публикация без подписчиков - не ошибка
	if _, err := p.client.Publish(ctx, p.channel, payload); err != nil {
		return fmt.Errorf("failed to publish event %s: %w", event.Type, err)
	}

	return nil
}

// Channel возвращает имя канала
func (p *RedisPublisher) Channel() string {
	return p.channel
}
