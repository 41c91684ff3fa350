package pkg

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

const (
	EventPostCreated    = "post.created"
	EventPostLiked      = "post.liked"
	EventCommentCreated = "comment.created"
)

// Event 写操作成功后发布的领域事件
type Event struct {
	ID         string          `json:"id"`
	Type       string          `json:"type"`
	PostID     string          `json:"post_id"`
	EntityID   string          `json:"entity_id"`
	OccurredAt time.Time       `json:"occurred_at"`
	Payload    json.RawMessage `json:"payload,omitempty"`
}

func NewEvent(typ, postID, entityID string, payload interface{}) (Event, error) {
	ev := Event{
		ID:         uuid.New().String(),
		Type:       typ,
		PostID:     postID,
		EntityID:   entityID,
		OccurredAt: time.Now().UTC(),
	}
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return Event{}, err
		}
		ev.Payload = b
	}
	return ev, nil
}

type Publisher interface {
	Publish(ctx context.Context, ev Event) error
	Close() error
}

// NopPublisher 未配置事件后端时使用
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, Event) error { return nil }

func (NopPublisher) Close() error { return nil }
