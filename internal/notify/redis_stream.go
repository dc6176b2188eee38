// Package notify publishes run-completion events so downstream consumers can
// react to a finished ingest without polling the database.
package notify

import (
	"context"
	"encoding/json"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/redis/go-redis/v9"

	"github.com/fortuna/courtside/internal/pipeline"
)

const runStream = "ingest.runs.basketball_nba"

// RunEvent is the payload published per finished run.
type RunEvent struct {
	Status       string  `json:"status"`
	Window       string  `json:"window"`
	Requested    int     `json:"requested"`
	Fetched      int     `json:"fetched"`
	Unresolved   []int64 `json:"unresolved,omitempty"`
	FailedEntity string  `json:"failedEntity,omitempty"`
	ElapsedMs    int64   `json:"elapsedMs"`
}

// RedisStreamNotifier publishes run events to a Redis stream.
type RedisStreamNotifier struct {
	client *redis.Client
}

// NewRedisStreamNotifier connects to Redis and verifies the connection.
func NewRedisStreamNotifier(redisURL string) (*RedisStreamNotifier, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, errors.Wrap(err, "parsing redis url")
	}
	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, errors.Wrap(err, "pinging redis")
	}

	return &RedisStreamNotifier{client: client}, nil
}

// Close closes the Redis connection.
func (n *RedisStreamNotifier) Close() error {
	return n.client.Close()
}

// PublishRun publishes one run result to the stream.
func (n *RedisStreamNotifier) PublishRun(ctx context.Context, res pipeline.Result) error {
	event := RunEvent{
		Status:       string(res.Status),
		Window:       string(res.Window),
		Requested:    res.Requested,
		Fetched:      res.Fetched,
		Unresolved:   res.Unresolved,
		FailedEntity: res.FailedEntity,
		ElapsedMs:    res.Elapsed.Milliseconds(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		return errors.Wrap(err, "marshaling run event")
	}

	err = n.client.XAdd(ctx, &redis.XAddArgs{
		Stream: runStream,
		Values: map[string]interface{}{
			"data":      string(data),
			"timestamp": time.Now().Unix(),
		},
	}).Err()
	return errors.Wrap(err, "publishing run event")
}
