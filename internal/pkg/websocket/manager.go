package websocket

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/piresc/nebengjek-nav/internal/pkg/constants"
	jwtpkg "github.com/piresc/nebengjek-nav/internal/pkg/jwt"
	"github.com/piresc/nebengjek-nav/internal/pkg/logger"
	"github.com/piresc/nebengjek-nav/internal/pkg/models"
)

const writeWait = 10 * time.Second

// ErrClientNotConnected is returned when a device has no open channel
var ErrClientNotConnected = errors.New("device not connected")

// Client is one authenticated device connection. Writes are serialised
// because gorilla connections allow a single concurrent writer.
type Client struct {
	UserID string
	Role   string

	conn    *websocket.Conn
	writeMu sync.Mutex
}

// NewClient wraps an upgraded connection
func NewClient(userID, role string, conn *websocket.Conn) *Client {
	return &Client{UserID: userID, Role: role, conn: conn}
}

// Send writes one event envelope to the device
func (c *Client) Send(event string, data interface{}) error {
	if c == nil || c.conn == nil {
		return ErrClientNotConnected
	}

	rawData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("error marshaling message data: %w", err)
	}

	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return c.conn.WriteJSON(models.WSMessage{Event: event, Data: rawData})
}

// Conn returns the underlying connection for the read loop
func (c *Client) Conn() *websocket.Conn {
	return c.conn
}

// Manager authenticates device connections and routes outbound events by user
type Manager struct {
	sync.RWMutex
	clients  map[string]*Client
	cfg      models.JWTConfig
	upgrader websocket.Upgrader
}

// NewManager creates a new WebSocket manager
func NewManager(jwtConfig models.JWTConfig) *Manager {
	return &Manager{
		clients: make(map[string]*Client),
		cfg:     jwtConfig,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// HandleConnection authenticates, upgrades and registers the device, then runs
// handleClient until it returns. A newer connection for the same user replaces
// the older one.
func (m *Manager) HandleConnection(c echo.Context, handleClient func(*Client) error) error {
	claims, err := m.authenticate(c)
	if err != nil {
		return err
	}

	ws, err := m.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}

	client := NewClient(claims.UserID, claims.Role, ws)
	if previous := m.AddClient(client); previous != nil {
		logger.Info("Replacing existing device connection", logger.String("user_id", client.UserID))
		previous.conn.Close()
	}
	defer func() {
		m.RemoveClient(client)
		ws.Close()
	}()

	return handleClient(client)
}

// authenticate accepts a bearer header or, for browsers that cannot set
// headers on upgrade, a token query parameter
func (m *Manager) authenticate(c echo.Context) (*jwtpkg.Claims, error) {
	token := c.QueryParam("token")
	if authHeader := c.Request().Header.Get("Authorization"); authHeader != "" {
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return nil, echo.NewHTTPError(http.StatusUnauthorized, "Invalid authorization format")
		}
		token = parts[1]
	}
	if token == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Authorization header is required")
	}

	claims, err := jwtpkg.ValidateToken(token, m.cfg.Secret)
	if err != nil {
		logger.Warn("Token validation failed", logger.Err(err))
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
	}
	return claims, nil
}

// AddClient registers client and returns the connection it replaced, if any
func (m *Manager) AddClient(client *Client) *Client {
	m.Lock()
	defer m.Unlock()
	previous := m.clients[client.UserID]
	m.clients[client.UserID] = client
	return previous
}

// RemoveClient unregisters client unless it was already replaced
func (m *Manager) RemoveClient(client *Client) {
	m.Lock()
	defer m.Unlock()
	if current, ok := m.clients[client.UserID]; ok && current == client {
		delete(m.clients, client.UserID)
	}
}

// GetClient returns a client by user ID
func (m *Manager) GetClient(userID string) (*Client, bool) {
	m.RLock()
	defer m.RUnlock()
	client, exists := m.clients[userID]
	return client, exists
}

// ConnectedCount returns the number of open device channels
func (m *Manager) ConnectedCount() int {
	m.RLock()
	defer m.RUnlock()
	return len(m.clients)
}

// NotifyClient sends an event to the device of userID
func (m *Manager) NotifyClient(userID string, event string, data interface{}) error {
	client, exists := m.GetClient(userID)
	if !exists {
		return ErrClientNotConnected
	}

	if err := client.Send(event, data); err != nil {
		logger.Warn("Error sending message to client",
			logger.String("user_id", userID),
			logger.String("event", event),
			logger.Err(err))
		return err
	}
	return nil
}

// SendErrorMessage sends an error envelope to a device
func (m *Manager) SendErrorMessage(client *Client, code string, message string) error {
	return client.Send(constants.EventError, models.WSErrorMessage{Code: code, Message: message})
}

// SendCategorizedError logs err in full and shows the device only as much as severity allows
func (m *Manager) SendCategorizedError(client *Client, err error, code string, severity constants.ErrorSeverity) error {
	logger.Error("WebSocket operation failed",
		logger.String("user_id", client.UserID),
		logger.String("error_code", code),
		logger.Int("severity", int(severity)),
		logger.Err(err))

	switch severity {
	case constants.ErrorSeverityClient:
		return m.SendErrorMessage(client, code, err.Error())
	case constants.ErrorSeveritySecurity:
		return m.SendErrorMessage(client, code, "Access denied")
	default:
		return m.SendErrorMessage(client, code, "Operation failed")
	}
}
