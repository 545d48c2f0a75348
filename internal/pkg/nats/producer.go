package nats

import (
	"encoding/json"
	"fmt"

	"github.com/nats-io/nats.go"
)

// Producer publishes JSON-encoded events
type Producer struct {
	conn *nats.Conn
}

// NewProducer creates a producer on an existing client connection
func NewProducer(client *Client) *Producer {
	return &Producer{conn: client.GetConn()}
}

// Publish marshals message as JSON and publishes it on subject
func (p *Producer) Publish(subject string, message interface{}) error {
	msgBytes, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	if err := p.conn.Publish(subject, msgBytes); err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}
	return nil
}
