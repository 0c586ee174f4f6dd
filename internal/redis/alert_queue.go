package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Godkunn/Ocean-Watch/internal/domain"
	"github.com/Godkunn/Ocean-Watch/pkg/e"
)

type AlertQueue struct {
	client *redis.Client
	key    string
}

func NewAlertQueue(client *redis.Client, key string) *AlertQueue {
	return &AlertQueue{client: client, key: key}
}

func (q *AlertQueue) Enqueue(ctx context.Context, alert domain.Alert) error {
	b, err := json.Marshal(alert)
	if err != nil {
		return err
	}
	return q.client.LPush(ctx, q.key, b).Err()
}

func (q *AlertQueue) BRPop(ctx context.Context, timeout time.Duration) (domain.Alert, error) {
	var a domain.Alert

	res, err := q.client.BRPop(ctx, timeout, q.key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return a, e.ErrAlertQueueEmpty
		}
		return a, err
	}
	if len(res) < 2 {
		return a, redis.Nil
	}
	if err := json.Unmarshal([]byte(res[1]), &a); err != nil {
		return a, err
	}
	return a, nil
}
