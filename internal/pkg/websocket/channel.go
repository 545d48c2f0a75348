package websocket

import "context"

// Channel addresses the device of one user regardless of reconnects
type Channel struct {
	manager *Manager
	userID  string
}

// Channel returns the outbound channel of userID
func (m *Manager) Channel(userID string) *Channel {
	return &Channel{manager: m, userID: userID}
}

// Send delivers an event to the user's current connection
func (ch *Channel) Send(ctx context.Context, event string, data interface{}) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return ch.manager.NotifyClient(ch.userID, event, data)
}

// UserID is the user this channel addresses
func (ch *Channel) UserID() string {
	return ch.userID
}
