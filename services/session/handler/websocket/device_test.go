package websocket

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/piresc/nebengjek-nav/internal/pkg/constants"
	jwtpkg "github.com/piresc/nebengjek-nav/internal/pkg/jwt"
	"github.com/piresc/nebengjek-nav/internal/pkg/models"
	"github.com/piresc/nebengjek-nav/internal/pkg/scheduler/schedulertest"
	pkgws "github.com/piresc/nebengjek-nav/internal/pkg/websocket"
	navmocks "github.com/piresc/nebengjek-nav/services/navigation/mocks"
	"github.com/piresc/nebengjek-nav/services/session"
	trackmocks "github.com/piresc/nebengjek-nav/services/tracking/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testJWT = models.JWTConfig{Secret: "device-secret", Expiration: 60, Issuer: "test"}

type deviceServer struct {
	url      string
	registry *session.Registry
	manager  *pkgws.Manager
}

func startDeviceServer(t *testing.T) *deviceServer {
	ctrl := gomock.NewController(t)

	profiles := trackmocks.NewMockProfileRepo(ctrl)
	profiles.EXPECT().UpsertPosition(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	history := trackmocks.NewMockHistoryRepo(ctrl)
	history.EXPECT().Append(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	trackingEvents := trackmocks.NewMockTrackingGW(ctrl)
	trackingEvents.EXPECT().PublishLocationUpdated(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	settingsRepo := navmocks.NewMockSettingsRepo(ctrl)
	settingsRepo.EXPECT().GetNavigationSettings(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
	navEvents := navmocks.NewMockNavigationEventGW(ctrl)
	navEvents.EXPECT().PublishSessionEvent(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	manager := pkgws.NewManager(testJWT)
	registry := session.NewRegistry(session.Dependencies{
		Tracking:         models.TrackingConfig{ProfileFlushSeconds: 30, FixTimeoutSeconds: 2, InitialFixRetries: 1, WriteTimeoutSeconds: 1},
		Navigation:       models.NavigationConfig{ProgressIntervalSeconds: 5},
		Channels:         func(id string) session.Channel { return manager.Channel(id) },
		Profiles:         profiles,
		History:          history,
		TrackingEvents:   trackingEvents,
		SettingsRepo:     settingsRepo,
		Geocoder:         navmocks.NewMockGeocodingGW(ctrl),
		Directions:       navmocks.NewMockDirectionsGW(ctrl),
		NavigationEvents: navEvents,
		Scheduler:        schedulertest.New(),
	})

	e := echo.New()
	e.GET("/ws", NewDeviceManager(manager, registry).HandleWebSocket)
	server := httptest.NewServer(e)
	t.Cleanup(server.Close)

	return &deviceServer{
		url:      "ws" + strings.TrimPrefix(server.URL, "http") + "/ws",
		registry: registry,
		manager:  manager,
	}
}

func (d *deviceServer) dial(t *testing.T, userID uuid.UUID) *websocket.Conn {
	token, _, err := jwtpkg.GenerateToken(userID, "driver", testJWT)
	require.NoError(t, err)

	conn, _, err := websocket.DefaultDialer.Dial(d.url+"?token="+token, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	require.Eventually(t, func() bool {
		_, ok := d.registry.Lookup(userID.String())
		return ok
	}, 2*time.Second, 10*time.Millisecond)
	return conn
}

func send(t *testing.T, conn *websocket.Conn, event string, data interface{}) {
	t.Helper()
	raw, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, conn.WriteJSON(models.WSMessage{Event: event, Data: raw}))
}

// readUntil skips messages until event arrives
func readUntil(t *testing.T, conn *websocket.Conn, event string) models.WSMessage {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(3*time.Second)))
	for {
		var msg models.WSMessage
		require.NoError(t, conn.ReadJSON(&msg))
		if msg.Event == event {
			return msg
		}
	}
}

func readError(t *testing.T, conn *websocket.Conn) models.WSErrorMessage {
	t.Helper()
	msg := readUntil(t, conn, constants.EventError)
	var out models.WSErrorMessage
	require.NoError(t, json.Unmarshal(msg.Data, &out))
	return out
}

func TestDeviceManager_PingPong(t *testing.T) {
	d := startDeviceServer(t)
	conn := d.dial(t, uuid.New())

	send(t, conn, constants.EventPing, struct{}{})
	readUntil(t, conn, constants.EventPong)
}

func TestDeviceManager_MalformedMessages(t *testing.T) {
	d := startDeviceServer(t)
	conn := d.dial(t, uuid.New())

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("not json")))
	assert.Equal(t, constants.ErrorInvalidFormat, readError(t, conn).Code)

	send(t, conn, constants.EventDeviceHello, "phone")
	assert.Equal(t, constants.ErrorInvalidFormat, readError(t, conn).Code)

	send(t, conn, constants.EventPermission, map[string]string{})
	assert.Equal(t, constants.ErrorInvalidFormat, readError(t, conn).Code)

	send(t, conn, "teleport", struct{}{})
	errMsg := readError(t, conn)
	assert.Equal(t, constants.ErrorInvalidFormat, errMsg.Code)
	assert.Equal(t, "Unknown event: teleport", errMsg.Message)

	send(t, conn, constants.EventPosition, models.LocationSample{Latitude: 95, Longitude: 10})
	assert.Equal(t, constants.ErrorInvalidLocation, readError(t, conn).Code)

	send(t, conn, constants.EventNavigationStart, map[string]interface{}{})
	assert.Equal(t, constants.ErrorValidationFailed, readError(t, conn).Code)

	// still serving after every rejection
	send(t, conn, constants.EventPing, struct{}{})
	readUntil(t, conn, constants.EventPong)
}

func TestDeviceManager_TrackingFlow(t *testing.T) {
	d := startDeviceServer(t)
	userID := uuid.New()
	conn := d.dial(t, userID)

	send(t, conn, constants.EventDeviceHello, models.DeviceCapabilities{Geolocation: true, Permission: "granted", Speech: true})
	send(t, conn, constants.EventTrackingStart, struct{}{})

	msg := readUntil(t, conn, constants.EventGetPosition)
	var req models.PositionRequest
	require.NoError(t, json.Unmarshal(msg.Data, &req))
	require.NotEmpty(t, req.RequestID)
	send(t, conn, constants.EventPosition, models.DevicePosition{
		LocationSample: models.LocationSample{Latitude: -6.2, Longitude: 106.8166, Timestamp: time.Now()},
		RequestID:      req.RequestID,
	})

	msg = readUntil(t, conn, constants.EventTrackingState)
	var status models.TrackingStatus
	require.NoError(t, json.Unmarshal(msg.Data, &status))
	assert.True(t, status.Tracking)
	require.NotNil(t, status.Latest)
	assert.Equal(t, -6.2, status.Latest.Latitude)

	send(t, conn, constants.EventTrackingStop, struct{}{})
	readUntil(t, conn, constants.EventClearWatch)
	msg = readUntil(t, conn, constants.EventTrackingState)
	require.NoError(t, json.Unmarshal(msg.Data, &status))
	assert.False(t, status.Tracking)
}

func TestDeviceManager_PermissionPrompt(t *testing.T) {
	d := startDeviceServer(t)
	conn := d.dial(t, uuid.New())

	send(t, conn, constants.EventDeviceHello, models.DeviceCapabilities{Geolocation: true, Permission: "prompt"})
	send(t, conn, constants.EventTrackingStart, struct{}{})

	readUntil(t, conn, constants.EventRequestPermission)
	send(t, conn, constants.EventPermission, map[string]string{"state": "denied"})

	notice := readUntil(t, conn, constants.EventNotice)
	assert.Contains(t, string(notice.Data), "Location access denied")

	msg := readUntil(t, conn, constants.EventTrackingState)
	var status models.TrackingStatus
	require.NoError(t, json.Unmarshal(msg.Data, &status))
	assert.False(t, status.Tracking)
	assert.NotEmpty(t, status.Error)
}

func TestDeviceManager_NavigationWithoutFix(t *testing.T) {
	d := startDeviceServer(t)
	conn := d.dial(t, uuid.New())

	send(t, conn, constants.EventNavigationStart, models.Destination{Address: "Monas"})

	readUntil(t, conn, constants.EventNotice)
	errMsg := readError(t, conn)
	assert.Equal(t, constants.ErrorNavigationFailed, errMsg.Code)
}

func TestDeviceManager_DisconnectClosesSession(t *testing.T) {
	d := startDeviceServer(t)
	userID := uuid.New()
	conn := d.dial(t, userID)
	require.Equal(t, 1, d.registry.Count())

	require.NoError(t, conn.Close())

	assert.Eventually(t, func() bool { return d.registry.Count() == 0 }, 2*time.Second, 10*time.Millisecond)
	assert.Eventually(t, func() bool { return d.manager.ConnectedCount() == 0 }, 2*time.Second, 10*time.Millisecond)
}

func TestDeviceManager_ReplacedConnectionKeepsSession(t *testing.T) {
	d := startDeviceServer(t)
	userID := uuid.New()
	first := d.dial(t, userID)
	s, _ := d.registry.Lookup(userID.String())

	second := d.dial(t, userID)

	// the first connection is closed by the server when replaced
	require.NoError(t, first.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, _, err := first.ReadMessage()
	require.Error(t, err)

	send(t, second, constants.EventPing, struct{}{})
	readUntil(t, second, constants.EventPong)

	current, ok := d.registry.Lookup(userID.String())
	require.True(t, ok)
	assert.Same(t, s, current)
}
