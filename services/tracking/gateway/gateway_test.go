package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	natsserver "github.com/nats-io/nats-server/v2/test"
	"github.com/nats-io/nats.go"
	"github.com/piresc/nebengjek-nav/internal/pkg/constants"
	"github.com/piresc/nebengjek-nav/internal/pkg/models"
	natspkg "github.com/piresc/nebengjek-nav/internal/pkg/nats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrackingGW_PublishLocationUpdated(t *testing.T) {
	srv := natsserver.RunRandClientPortServer()
	defer srv.Shutdown()

	client, err := natspkg.NewClient(srv.ClientURL(), "tracking-gw-test")
	require.NoError(t, err)
	defer client.Close()

	received := make(chan *nats.Msg, 1)
	sub, err := client.GetConn().ChanSubscribe(constants.SubjectDriverLocationUpdated, received)
	require.NoError(t, err)
	defer sub.Unsubscribe()
	require.NoError(t, client.GetConn().Flush())

	speed := 7.5
	event := models.LocationEvent{
		DriverID:  "driver-1",
		Latitude:  -6.175392,
		Longitude: 106.827153,
		Speed:     &speed,
		Timestamp: time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
	}

	gw := NewTrackingGW(natspkg.NewProducer(client))
	require.NoError(t, gw.PublishLocationUpdated(context.Background(), event))

	select {
	case msg := <-received:
		var got models.LocationEvent
		require.NoError(t, json.Unmarshal(msg.Data, &got))
		assert.Equal(t, event.DriverID, got.DriverID)
		assert.Equal(t, event.Latitude, got.Latitude)
		assert.Equal(t, speed, *got.Speed)
		assert.True(t, event.Timestamp.Equal(got.Timestamp))
	case <-time.After(2 * time.Second):
		t.Fatal("location event not received")
	}
}

type stubChannel struct {
	event string
	data  interface{}
	err   error
}

func (s *stubChannel) Send(ctx context.Context, event string, data interface{}) error {
	s.event = event
	s.data = data
	return s.err
}

func TestDeviceNotifier_Notify(t *testing.T) {
	ch := &stubChannel{}
	notice := models.Notice{Level: models.NoticeError, Title: "Location Error", Message: "Location information is unavailable."}

	require.NoError(t, NewDeviceNotifier(ch).Notify(context.Background(), notice))
	assert.Equal(t, constants.EventNotice, ch.event)
	assert.Equal(t, notice, ch.data)

	ch.err = errors.New("device not connected")
	err := NewDeviceNotifier(ch).Notify(context.Background(), notice)
	assert.ErrorContains(t, err, "failed to send notice")
}
