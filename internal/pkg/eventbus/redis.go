package eventbus

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"
)

// Handler processes one message payload. Errors are logged and the
// subscription keeps running.
type Handler func(ctx context.Context, payload []byte) error

// RedisBus publishes JSON messages over Redis pub/sub.
type RedisBus struct {
	client *redis.Client
}

// NewRedisBus connects and pings Redis. The returned cleanup closes the
// connection.
func NewRedisBus(ctx context.Context, addr, password string, db int) (*RedisBus, func(), error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("failed to connect to redis at %s: %w", addr, err)
	}
	slog.Info("Connected to Redis", "addr", addr, "db", db)

	cleanup := func() {
		if err := client.Close(); err != nil {
			slog.Error("Failed to close Redis client", "error", err)
		}
	}
	return &RedisBus{client: client}, cleanup, nil
}

// Publish encodes payload as JSON and publishes it on channel.
func (b *RedisBus) Publish(ctx context.Context, channel string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode message: %w", err)
	}
	if err := b.client.Publish(ctx, channel, data).Err(); err != nil {
		return fmt.Errorf("failed to publish to %s: %w", channel, err)
	}
	return nil
}

// Subscribe delivers every message on channel to handler, one at a time,
// until ctx is cancelled. It returns once the subscription is confirmed;
// delivery continues in a goroutine.
func (b *RedisBus) Subscribe(ctx context.Context, channel string, handler Handler) error {
	sub := b.client.Subscribe(ctx, channel)
	if _, err := sub.Receive(ctx); err != nil {
		_ = sub.Close()
		return fmt.Errorf("failed to subscribe to %s: %w", channel, err)
	}
	slog.Info("Subscribed to channel", "channel", channel)

	go func() {
		defer sub.Close()

		messages := sub.Channel()
		for {
			select {
			case <-ctx.Done():
				slog.Info("Subscription stopping", "channel", channel)
				return
			case msg, ok := <-messages:
				if !ok {
					return
				}
				if err := handler(ctx, []byte(msg.Payload)); err != nil {
					slog.Error("Failed to handle message", "channel", channel, "error", err)
				}
			}
		}
	}()
	return nil
}
