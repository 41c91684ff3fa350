package app

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Community_Board/internal/config"
	"Community_Board/internal/pkg"
)

func TestOpenStoreMemory(t *testing.T) {
	ctx := context.Background()
	log := pkg.NewLogger(io.Discard, "error")

	st, err := openStore(ctx, config.Database{Driver: "memory", Timeout: time.Second}, log)
	require.NoError(t, err)
	assert.Equal(t, "memory", st.diag.Name())
	assert.NoError(t, st.close(ctx))

	_, err = openStore(ctx, config.Database{Driver: "sqlite"}, log)
	assert.Error(t, err)
}

func TestNewPublisher(t *testing.T) {
	conf := &config.Config{}
	conf.Events.Backend = "none"

	pub, err := newPublisher(conf)
	require.NoError(t, err)
	assert.IsType(t, pkg.NopPublisher{}, pub)

	mr := miniredis.RunT(t)
	conf.Events.Backend = "redis"
	conf.Redis = config.Redis{Addr: mr.Addr(), Stream: "community:events"}

	pub, err = newPublisher(conf)
	require.NoError(t, err)
	require.IsType(t, &pkg.StreamPublisher{}, pub)
	assert.NoError(t, pub.Close())

	conf.Events.Backend = "kafka"
	conf.Kafka = config.Kafka{Brokers: []string{"localhost:9092"}, Topic: "community.events"}
	pub, err = newPublisher(conf)
	require.NoError(t, err)
	assert.IsType(t, &pkg.KafkaProducer{}, pub)
	assert.NoError(t, pub.Close())
}
