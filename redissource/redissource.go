// Package redissource provides streams of messages published on Redis pub/sub channels.
package redissource

import (
	"context"
	"fmt"

	"github.com/deadlyengineer/pushstreams"
	"github.com/redis/go-redis/v9"
)

// Subscribe subscribes to the given channels, and returns a stream that produces the messages published on them,
// in the order they are received.
//
// Subscribe returns an error if the subscription could not be confirmed by the server.
// The subscription is closed, and the stream ends, when ctx is canceled.
func Subscribe(ctx context.Context, sched pushstreams.Scheduler, client redis.UniversalClient, channels ...string) (*pushstreams.Stream[*redis.Message], error) {
	pubsub := client.Subscribe(ctx, channels...)

	// Wait for confirmation that the subscription is created.
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, fmt.Errorf("subscribe to %v: %w", channels, err)
	}

	go func() {
		<-ctx.Done()
		_ = pubsub.Close()
	}()

	return pushstreams.FromChannel(ctx, sched, pubsub.Channel()), nil
}
