package kafka

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"go-sales-dashboard/internal/events"

	"github.com/segmentio/kafka-go"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Producer publishes domain events to a single topic. Messages are queued in a
// buffered inbox and written by one goroutine so request handlers never wait
// on the broker.
type Producer struct {
	w        messageWriter
	service  string
	inbox    chan kafka.Message
	done     chan struct{}
	closeCh  chan struct{}
	stopOnce sync.Once
}

func NewProducer(brokers []string, topic, service string, buf int) *Producer {
	return newProducer(&kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		BatchTimeout: 50 * time.Millisecond,
	}, service, buf)
}

func newProducer(w messageWriter, service string, buf int) *Producer {
	if buf <= 0 {
		buf = 1
	}
	return &Producer{
		w:       w,
		service: service,
		inbox:   make(chan kafka.Message, buf),
		done:    make(chan struct{}),
		closeCh: make(chan struct{}),
	}
}

func (p *Producer) Start(ctx context.Context) {
	go func() {
		defer close(p.closeCh)
		for {
			select {
			case m := <-p.inbox:
				p.write(m)
			case <-ctx.Done():
				p.drain()
				return
			case <-p.done:
				p.drain()
				return
			}
		}
	}()
}

// drain flushes whatever is still queued and closes the writer
func (p *Producer) drain() {
	for {
		select {
		case m := <-p.inbox:
			p.write(m)
		default:
			if err := p.w.Close(); err != nil {
				log.Printf("kafka: close writer: %v", err)
			}
			return
		}
	}
}

func (p *Producer) write(m kafka.Message) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := p.w.WriteMessages(ctx, m); err != nil {
		log.Printf("kafka: write %s: %v", m.Key, err)
	}
}

// Publish wraps payload in an event envelope and queues it. When the inbox is
// full the event is dropped and logged.
func (p *Producer) Publish(eventType, key string, payload any) {
	env, err := events.NewEnvelope(p.service, eventType, key, payload)
	if err != nil {
		log.Printf("kafka: encode %s: %v", eventType, err)
		return
	}
	value, err := json.Marshal(env)
	if err != nil {
		log.Printf("kafka: encode %s: %v", eventType, err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(key),
		Value: value,
		Time:  env.OccurredAt,
		Headers: []kafka.Header{
			{Key: "x-event-type", Value: []byte(eventType)},
			{Key: "x-event-version", Value: []byte("1")},
		},
	}

	select {
	case <-p.done:
		return
	default:
	}

	select {
	case p.inbox <- msg:
	default:
		log.Printf("kafka: inbox full, dropping %s", eventType)
	}
}

// Close stops the loop; queued messages are flushed before the writer closes.
func (p *Producer) Close() {
	p.stopOnce.Do(func() { close(p.done) })
}

// WaitClosed blocks until the loop has flushed and exited.
func (p *Producer) WaitClosed() { <-p.closeCh }
