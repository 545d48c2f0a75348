package websocket

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/piresc/nebengjek-nav/internal/pkg/constants"
	jwtpkg "github.com/piresc/nebengjek-nav/internal/pkg/jwt"
	"github.com/piresc/nebengjek-nav/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testJWT = models.JWTConfig{Secret: "ws-secret", Expiration: 60, Issuer: "test"}

func startServer(t *testing.T, m *Manager, handle func(*Client) error) *httptest.Server {
	t.Helper()
	e := echo.New()
	e.GET("/ws", func(c echo.Context) error {
		return m.HandleConnection(c, handle)
	})
	server := httptest.NewServer(e)
	t.Cleanup(server.Close)
	return server
}

func wsURL(server *httptest.Server) string {
	return "ws" + strings.TrimPrefix(server.URL, "http") + "/ws"
}

func TestManager_RejectsMissingToken(t *testing.T) {
	m := NewManager(testJWT)
	server := startServer(t, m, func(*Client) error { return nil })

	_, resp, err := websocket.DefaultDialer.Dial(wsURL(server), nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestManager_RejectsInvalidToken(t *testing.T) {
	m := NewManager(testJWT)
	server := startServer(t, m, func(*Client) error { return nil })

	header := http.Header{"Authorization": []string{"Bearer garbage"}}
	_, resp, err := websocket.DefaultDialer.Dial(wsURL(server), header)
	require.Error(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestManager_NotifyClient(t *testing.T) {
	m := NewManager(testJWT)
	userID := uuid.New()
	registered := make(chan struct{})

	server := startServer(t, m, func(c *Client) error {
		close(registered)
		for {
			if _, _, err := c.Conn().ReadMessage(); err != nil {
				return nil
			}
		}
	})

	token, _, err := jwtpkg.GenerateToken(userID, "driver", testJWT)
	require.NoError(t, err)

	conn, _, err := websocket.DefaultDialer.Dial(wsURL(server)+"?token="+token, nil)
	require.NoError(t, err)
	defer conn.Close()

	select {
	case <-registered:
	case <-time.After(2 * time.Second):
		t.Fatal("client was not registered")
	}
	assert.Equal(t, 1, m.ConnectedCount())

	require.NoError(t, m.NotifyClient(userID.String(), constants.EventNotice, models.Notice{
		Level:   models.NoticeInfo,
		Message: "Calculating route...",
	}))

	var msg models.WSMessage
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	require.NoError(t, conn.ReadJSON(&msg))
	assert.Equal(t, constants.EventNotice, msg.Event)
	assert.JSONEq(t, `{"level":"info","message":"Calculating route..."}`, string(msg.Data))
}

func TestManager_NotifyUnknownClient(t *testing.T) {
	m := NewManager(testJWT)
	err := m.NotifyClient("nobody", constants.EventNotice, nil)
	assert.ErrorIs(t, err, ErrClientNotConnected)
}

func TestManager_RemoveClientKeepsReplacement(t *testing.T) {
	m := NewManager(testJWT)
	first := NewClient("u-1", "driver", nil)
	second := NewClient("u-1", "driver", nil)

	assert.Nil(t, m.AddClient(first))
	assert.Same(t, first, m.AddClient(second))

	m.RemoveClient(first)
	got, ok := m.GetClient("u-1")
	require.True(t, ok)
	assert.Same(t, second, got)

	m.RemoveClient(second)
	_, ok = m.GetClient("u-1")
	assert.False(t, ok)
}

func TestClient_SendWithoutConnection(t *testing.T) {
	var c *Client
	assert.True(t, errors.Is(c.Send(constants.EventNotice, nil), ErrClientNotConnected))
}

func TestChannel_Send(t *testing.T) {
	m := NewManager(testJWT)
	ch := m.Channel("u-2")
	assert.Equal(t, "u-2", ch.UserID())

	assert.ErrorIs(t, ch.Send(context.Background(), constants.EventNotice, nil), ErrClientNotConnected)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, ch.Send(ctx, constants.EventNotice, nil), context.Canceled)
}
