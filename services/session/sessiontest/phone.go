// Package sessiontest provides a scripted driver device for session tests.
package sessiontest

import (
	"context"
	"sync"

	"github.com/piresc/nebengjek-nav/internal/pkg/constants"
	"github.com/piresc/nebengjek-nav/internal/pkg/models"
	"github.com/piresc/nebengjek-nav/internal/pkg/websocket"
	"github.com/piresc/nebengjek-nav/services/session"
)

// Sent is one event delivered to the phone
type Sent struct {
	Event string
	Data  interface{}
}

// Phone answers geolocation commands the way a browser would and records
// every event it receives
type Phone struct {
	mu           sync.Mutex
	registry     *session.Registry
	driverID     string
	permission   string
	fix          *models.LocationSample
	disconnected bool
	sent         []Sent
}

// NewPhone creates a phone for driverID that grants permission and has no fix
func NewPhone(driverID string) *Phone {
	return &Phone{driverID: driverID, permission: "granted"}
}

// Attach lets the phone find its session to answer commands
func (p *Phone) Attach(registry *session.Registry) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.registry = registry
}

// AnswerPermission sets the answer to permission prompts
func (p *Phone) AnswerPermission(state string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.permission = state
}

// SetFix sets the position returned to single-fix requests
func (p *Phone) SetFix(sample models.LocationSample) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.fix = &sample
}

// Disconnect makes every later send fail
func (p *Phone) Disconnect() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.disconnected = true
}

// Send implements session.Channel
func (p *Phone) Send(ctx context.Context, event string, data interface{}) error {
	p.mu.Lock()
	if p.disconnected {
		p.mu.Unlock()
		return websocket.ErrClientNotConnected
	}
	p.sent = append(p.sent, Sent{Event: event, Data: data})
	registry, permission, fix := p.registry, p.permission, p.fix
	p.mu.Unlock()

	if registry == nil {
		return nil
	}
	s, ok := registry.Lookup(p.driverID)
	if !ok {
		return nil
	}

	switch event {
	case constants.EventRequestPermission:
		go s.Feed.HandlePermission(permission)
	case constants.EventGetPosition:
		req, _ := data.(models.PositionRequest)
		if fix != nil {
			go func() {
				_ = s.Feed.HandlePosition(models.DevicePosition{LocationSample: *fix, RequestID: req.RequestID})
			}()
		}
	}
	return nil
}

// Events returns the names of the events received so far
func (p *Phone) Events() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	events := make([]string, 0, len(p.sent))
	for _, s := range p.sent {
		events = append(events, s.Event)
	}
	return events
}

// Received returns the payloads received for event
func (p *Phone) Received(event string) []interface{} {
	p.mu.Lock()
	defer p.mu.Unlock()
	var out []interface{}
	for _, s := range p.sent {
		if s.Event == event {
			out = append(out, s.Data)
		}
	}
	return out
}
