package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/piresc/nebengjek-nav/internal/pkg/constants"
	"github.com/piresc/nebengjek-nav/internal/pkg/logger"
	"github.com/piresc/nebengjek-nav/internal/pkg/models"
	"github.com/piresc/nebengjek-nav/internal/pkg/requestcontext"
	pkgws "github.com/piresc/nebengjek-nav/internal/pkg/websocket"
	"github.com/piresc/nebengjek-nav/services/session"
)

// DeviceManager runs the device channel of each connected driver: it feeds
// geolocation messages into the driver's session and executes tracking and
// navigation commands sent by the app
type DeviceManager struct {
	manager  *pkgws.Manager
	registry *session.Registry
	validate *validator.Validate
}

// NewDeviceManager creates a new device channel handler
func NewDeviceManager(manager *pkgws.Manager, registry *session.Registry) *DeviceManager {
	return &DeviceManager{manager: manager, registry: registry, validate: validator.New()}
}

// HandleWebSocket handles new device connections
func (m *DeviceManager) HandleWebSocket(c echo.Context) error {
	return m.manager.HandleConnection(c, m.handleClientConnection)
}

// connection is the state of one device connection
type connection struct {
	client  *pkgws.Client
	session *session.Session
	ctx     context.Context
	wg      sync.WaitGroup
}

func (m *DeviceManager) handleClientConnection(client *pkgws.Client) error {
	ctx, cancel := context.WithCancel(requestcontext.WithDriverID(context.Background(), client.UserID))
	conn := &connection{
		client:  client,
		session: m.registry.Get(ctx, client.UserID),
		ctx:     ctx,
	}
	logger.Info("Device connected", logger.String("user_id", client.UserID))

	defer func() {
		cancel()
		conn.wg.Wait()
		m.release(client)
	}()

	return m.messageLoop(conn)
}

// release closes the session unless a newer connection took it over
func (m *DeviceManager) release(client *pkgws.Client) {
	if current, ok := m.manager.GetClient(client.UserID); ok && current != client {
		logger.Info("Device connection replaced", logger.String("user_id", client.UserID))
		return
	}
	m.registry.Close(client.UserID)
	logger.Info("Device disconnected", logger.String("user_id", client.UserID))
}

func (m *DeviceManager) messageLoop(conn *connection) error {
	for {
		var msg models.WSMessage
		if err := conn.client.Conn().ReadJSON(&msg); err != nil {
			var syntaxErr *json.SyntaxError
			var typeErr *json.UnmarshalTypeError
			if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) {
				_ = m.manager.SendErrorMessage(conn.client, constants.ErrorInvalidFormat, "Invalid message format")
				continue
			}
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Warn("Device connection closed unexpectedly",
					logger.String("user_id", conn.client.UserID),
					logger.Err(err))
			}
			return nil
		}

		if err := m.handleMessage(conn, msg); err != nil {
			logger.Warn("Error handling device message",
				logger.String("user_id", conn.client.UserID),
				logger.String("event", msg.Event),
				logger.Err(err))
		}
	}
}

func (m *DeviceManager) handleMessage(conn *connection, msg models.WSMessage) error {
	s := conn.session

	switch msg.Event {
	case constants.EventPing:
		return conn.client.Send(constants.EventPong, struct{}{})

	case constants.EventDeviceHello:
		var caps models.DeviceCapabilities
		if err := json.Unmarshal(msg.Data, &caps); err != nil {
			return m.invalidFormat(conn)
		}
		s.Feed.SetCapabilities(caps)
		return nil

	case constants.EventPermission:
		var payload struct {
			State string `json:"state"`
		}
		if err := json.Unmarshal(msg.Data, &payload); err != nil || payload.State == "" {
			return m.invalidFormat(conn)
		}
		s.Feed.HandlePermission(payload.State)
		return nil

	case constants.EventPosition:
		var pos models.DevicePosition
		if err := json.Unmarshal(msg.Data, &pos); err != nil {
			return m.invalidFormat(conn)
		}
		if err := s.Feed.HandlePosition(pos); err != nil {
			return m.manager.SendCategorizedError(conn.client, err, constants.ErrorInvalidLocation, constants.ErrorSeverityClient)
		}
		return nil

	case constants.EventPositionError:
		var raw models.DevicePositionError
		if err := json.Unmarshal(msg.Data, &raw); err != nil {
			return m.invalidFormat(conn)
		}
		s.Feed.HandlePositionError(raw)
		return nil

	case constants.EventTrackingStart:
		// the fix the tracker waits for arrives through this loop
		conn.goAsync(func() { m.startTracking(conn) })
		return nil

	case constants.EventTrackingStop:
		s.Tracker.StopTracking()
		return conn.client.Send(constants.EventTrackingState, s.Status())

	case constants.EventNavigationStart:
		var dest models.Destination
		if err := json.Unmarshal(msg.Data, &dest); err != nil {
			return m.invalidFormat(conn)
		}
		if err := m.validate.Struct(dest); err != nil {
			return m.manager.SendCategorizedError(conn.client, err, constants.ErrorValidationFailed, constants.ErrorSeverityClient)
		}
		conn.goAsync(func() { m.startNavigation(conn, dest) })
		return nil

	case constants.EventNavigationStop:
		s.Engine.StopNavigation()
		return conn.client.Send(constants.EventNavigationState, s.Engine.Session())

	default:
		return m.manager.SendErrorMessage(conn.client, constants.ErrorInvalidFormat, "Unknown event: "+msg.Event)
	}
}

func (m *DeviceManager) startTracking(conn *connection) {
	s := conn.session
	if err := s.Tracker.StartTracking(conn.ctx); err != nil {
		logger.Warn("Failed to start tracking",
			logger.String("user_id", s.DriverID),
			logger.Err(err))
	}
	if conn.ctx.Err() != nil {
		return
	}
	_ = conn.client.Send(constants.EventTrackingState, s.Status())
}

func (m *DeviceManager) startNavigation(conn *connection, dest models.Destination) {
	s := conn.session
	result, err := s.Engine.StartNavigation(conn.ctx, dest)
	if conn.ctx.Err() != nil {
		return
	}
	if err != nil {
		_ = m.manager.SendCategorizedError(conn.client, err, constants.ErrorNavigationFailed, constants.ErrorSeverityClient)
		return
	}
	_ = conn.client.Send(constants.EventNavigationState, result)
}

func (m *DeviceManager) invalidFormat(conn *connection) error {
	return m.manager.SendErrorMessage(conn.client, constants.ErrorInvalidFormat, "Invalid message format")
}

func (c *connection) goAsync(fn func()) {
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		fn()
	}()
}
