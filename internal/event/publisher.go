package event

import (
	"encoding/json"
	"log"
	"time"

	"github.com/streadway/amqp"
)

// Publisher pushes quiz lifecycle notifications onto a topic exchange. A
// nil Publisher is valid and drops every event, so callers never branch on
// whether messaging is configured.
type Publisher struct {
	conn     *amqp.Connection
	channel  *amqp.Channel
	exchange string
}

func NewPublisher(amqpURL, exchange string) (*Publisher, error) {
	conn, err := amqp.Dial(amqpURL)
	if err != nil {
		return nil, err
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}
	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return nil, err
	}
	return &Publisher{conn: conn, channel: ch, exchange: exchange}, nil
}

// Publish sends one event with the event type as routing key. Delivery is
// fire-and-forget: a broker failure is logged and never fails the request
// that triggered the event.
func (p *Publisher) Publish(eventType string, payload interface{}) {
	if p == nil {
		return
	}
	body, err := json.Marshal(map[string]interface{}{
		"type":      eventType,
		"payload":   payload,
		"timestamp": time.Now().UTC(),
	})
	if err != nil {
		log.Printf("event %s: marshal failed: %v", eventType, err)
		return
	}
	err = p.channel.Publish(p.exchange, eventType, false, false, amqp.Publishing{
		ContentType: "application/json",
		Body:        body,
	})
	if err != nil {
		log.Printf("event %s: publish failed: %v", eventType, err)
	}
}

func (p *Publisher) Close() {
	if p == nil {
		return
	}
	if p.channel != nil {
		_ = p.channel.Close()
	}
	if p.conn != nil {
		_ = p.conn.Close()
	}
}
