package pkg

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEvent(t *testing.T) {
	ev, err := NewEvent(EventPostLiked, "p1", "p1", map[string]int{"inc": -1})
	require.NoError(t, err)

	assert.NotEmpty(t, ev.ID)
	assert.Equal(t, EventPostLiked, ev.Type)
	assert.False(t, ev.OccurredAt.IsZero())
	assert.JSONEq(t, `{"inc":-1}`, string(ev.Payload))

	other, err := NewEvent(EventPostLiked, "p1", "p1", nil)
	require.NoError(t, err)
	assert.NotEqual(t, ev.ID, other.ID)
	assert.Nil(t, other.Payload)
}

func TestKafkaMessage(t *testing.T) {
	ev, err := NewEvent(EventCommentCreated, "post-1", "comment-9", nil)
	require.NoError(t, err)

	msg, err := kafkaMessage(ev)
	require.NoError(t, err)
	assert.Equal(t, "post-1", string(msg.Key))
	require.Len(t, msg.Headers, 1)
	assert.Equal(t, EventCommentCreated, string(msg.Headers[0].Value))

	var decoded Event
	require.NoError(t, json.Unmarshal(msg.Value, &decoded))
	assert.Equal(t, ev.ID, decoded.ID)
	assert.Equal(t, "comment-9", decoded.EntityID)
}

func TestStreamPublisher(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	pub := NewStreamPublisher(rdb, "community:events")
	defer pub.Close()

	ctx := context.Background()
	ev, err := NewEvent(EventPostCreated, "p1", "p1", map[string]string{"topic": "Sleep"})
	require.NoError(t, err)
	require.NoError(t, pub.Publish(ctx, ev))

	entries, err := rdb.XRange(ctx, "community:events", "-", "+").Result()
	require.NoError(t, err)
	require.Len(t, entries, 1)

	values := entries[0].Values
	assert.Equal(t, ev.ID, values["id"])
	assert.Equal(t, EventPostCreated, values["type"])
	assert.Equal(t, "p1", values["post_id"])
	assert.JSONEq(t, `{"topic":"Sleep"}`, values["payload"].(string))
}

func TestNopPublisher(t *testing.T) {
	var p Publisher = NopPublisher{}
	assert.NoError(t, p.Publish(context.Background(), Event{}))
	assert.NoError(t, p.Close())
}
