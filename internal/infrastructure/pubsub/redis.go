package pubsub

import (
	"context"

	"github.com/redis/go-redis/v9"

	"unilagyard/pkg/logger"
)

const chatChannel = "chat:events"

// ChatEventBroker fans chat events out across server instances through a
// Redis pub/sub channel. With a single instance it is optional; the
// websocket manager falls back to local delivery when no broker is set.
type ChatEventBroker struct {
	client *redis.Client
}

func NewChatEventBroker(addr, password string) *ChatEventBroker {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})

	return &ChatEventBroker{client: client}
}

func (b *ChatEventBroker) Publish(ctx context.Context, payload []byte) error {
	return b.client.Publish(ctx, chatChannel, payload).Err()
}

// Subscribe starts a goroutine that delivers every published payload to the
// handler until the context is cancelled.
func (b *ChatEventBroker) Subscribe(ctx context.Context, handler func(payload []byte)) {
	pubsub := b.client.Subscribe(ctx, chatChannel)

	go func() {
		defer pubsub.Close()

		ch := pubsub.Channel()
		for {
			select {
			case msg, ok := <-ch:
				if !ok {
					return
				}
				handler([]byte(msg.Payload))
			case <-ctx.Done():
				return
			}
		}
	}()
}

func (b *ChatEventBroker) Ping(ctx context.Context) error {
	if err := b.client.Ping(ctx).Err(); err != nil {
		logger.Warn("Redis ping failed: %v", err)
		return err
	}
	return nil
}

func (b *ChatEventBroker) Close() error {
	return b.client.Close()
}
