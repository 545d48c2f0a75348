package nats

import (
	"testing"
	"time"

	natsserver "github.com/nats-io/nats-server/v2/test"
	"github.com/nats-io/nats.go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	t.Run("invalid address", func(t *testing.T) {
		client, err := NewClient("invalid://address", "nav-test")
		assert.Error(t, err)
		assert.Nil(t, client)
		assert.Contains(t, err.Error(), "failed to connect to NATS server")
	})

	t.Run("nothing listening", func(t *testing.T) {
		client, err := NewClient("nats://127.0.0.1:1", "nav-test")
		assert.Error(t, err)
		assert.Nil(t, client)
	})
}

func TestClient_IsConnectedWithoutConnection(t *testing.T) {
	c := &Client{}
	assert.False(t, c.IsConnected())
	assert.NotPanics(t, c.Close)
}

func TestProducer_Publish(t *testing.T) {
	srv := natsserver.RunRandClientPortServer()
	defer srv.Shutdown()

	client, err := NewClient(srv.ClientURL(), "producer-test")
	require.NoError(t, err)
	defer client.Close()
	assert.True(t, client.IsConnected())

	received := make(chan *nats.Msg, 1)
	sub, err := client.GetConn().ChanSubscribe("test.subject", received)
	require.NoError(t, err)
	defer sub.Unsubscribe()
	require.NoError(t, client.GetConn().Flush())

	producer := NewProducer(client)
	require.NoError(t, producer.Publish("test.subject", map[string]string{"driver_id": "d-1"}))

	select {
	case msg := <-received:
		assert.JSONEq(t, `{"driver_id":"d-1"}`, string(msg.Data))
	case <-time.After(2 * time.Second):
		t.Fatal("message not received")
	}

	err = producer.Publish("test.subject", make(chan int))
	assert.ErrorContains(t, err, "failed to marshal message")
}
