package pkg

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// StreamMaxLen 流的近似长度上限，超出后由 Redis 裁剪最旧的条目
const StreamMaxLen = 10000

// StreamPublisher 把事件 XADD 到 Redis Stream
type StreamPublisher struct {
	RDB    *redis.Client
	Stream string
}

func NewStreamPublisher(rdb *redis.Client, stream string) *StreamPublisher {
	return &StreamPublisher{RDB: rdb, Stream: stream}
}

func (p *StreamPublisher) Publish(ctx context.Context, ev Event) error {
	return p.RDB.XAdd(ctx, &redis.XAddArgs{
		Stream: p.Stream,
		MaxLen: StreamMaxLen,
		Approx: true,
		Values: streamValues(ev),
	}).Err()
}

func streamValues(ev Event) map[string]interface{} {
	values := map[string]interface{}{
		"id":          ev.ID,
		"type":        ev.Type,
		"post_id":     ev.PostID,
		"entity_id":   ev.EntityID,
		"occurred_at": ev.OccurredAt.Format(time.RFC3339Nano),
	}
	if len(ev.Payload) > 0 {
		values["payload"] = string(ev.Payload)
	}
	return values
}

func (p *StreamPublisher) Close() error {
	if p == nil || p.RDB == nil {
		return nil
	}
	return p.RDB.Close()
}
