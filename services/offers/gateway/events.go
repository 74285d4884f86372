package gateway

import (
	"github.com/hailgo/hailcore/internal/pkg/nsq"
)

// EventGW publishes lifecycle events to NSQ for downstream consumers
type EventGW struct {
	producer *nsq.Producer
}

// NewEventGW creates the event gateway around an established producer
func NewEventGW(producer *nsq.Producer) *EventGW {
	return &EventGW{producer: producer}
}

// Publish sends payload to topic as JSON
func (g *EventGW) Publish(topic string, payload interface{}) error {
	return g.producer.Publish(topic, payload)
}
