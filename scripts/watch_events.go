package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/frontandrew/ferry/internal/domain"
	"github.com/frontandrew/ferry/internal/pkg/config"
	"github.com/frontandrew/ferry/internal/pkg/redis"
)

// Подписывается на канал событий и печатает ход переправы
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("❌ Failed to load config: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, err := redis.NewClient(ctx, redis.Config{
		Host:     cfg.Redis.Host,
		Port:     cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		fmt.Printf("❌ Failed to connect to Redis: %v\n", err)
		os.Exit(1)
	}
	defer client.Close()

	sub := client.Subscribe(ctx, cfg.Redis.Channel)
	defer sub.Close()

	fmt.Printf("✅ Watching %s on %s\n", cfg.Redis.Channel, cfg.Redis.Address())

	messages := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-messages:
			if !ok {
				return
			}

			var e domain.Event
			if err := json.Unmarshal([]byte(msg.Payload), &e); err != nil {
				fmt.Printf("⚠️  Bad payload: %v\n", err)
				continue
			}

			fmt.Printf("[%s] trip=%d %-20s side=%-5s vehicle=%-12s gate=%-7s load=%d\n",
				e.RunID.String()[:8], e.Trip, e.Type, e.Side, e.Vehicle, e.Gate, e.Load)
		}
	}
}
