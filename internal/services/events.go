package services

import (
	"context"
	"encoding/json"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/gw-car-rental/internal/logger"
	"github.com/sbilibin2017/gw-car-rental/internal/models"
)

//go:generate mockgen -source=events.go -destination=events_mock.go -package=services

// DefaultPublishTimeout bounds a single event write.
const DefaultPublishTimeout = 5 * time.Second

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// CarEventPublisher publishes listing progress to Kafka, keyed by car id
// so events of one car stay ordered within a partition.
type CarEventPublisher struct {
	writer  KafkaWriter
	timeout time.Duration
	wg      sync.WaitGroup
}

// PublisherOpt configures a CarEventPublisher.
type PublisherOpt func(*CarEventPublisher)

// WithPublishTimeout sets the deadline of each event write.
func WithPublishTimeout(timeout time.Duration) PublisherOpt {
	return func(p *CarEventPublisher) {
		p.timeout = timeout
	}
}

// NewCarEventPublisher creates a publisher. A nil writer disables publishing.
func NewCarEventPublisher(writer KafkaWriter, opts ...PublisherOpt) *CarEventPublisher {
	p := &CarEventPublisher{
		writer:  writer,
		timeout: DefaultPublishTimeout,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Publish sends a stage event for the car in the background and returns
// immediately. The write is detached from ctx cancellation and bounded by
// the publish timeout. Failures are logged only; the stage has already
// been committed.
func (p *CarEventPublisher) Publish(ctx context.Context, car *models.CarDB, stage models.CarStage) {
	event := models.CarEvent{
		EventID:    uuid.NewString(),
		CarID:      car.ID,
		HostID:     car.HostID,
		Stage:      stage,
		State:      car.State(),
		IsComplete: car.IsComplete,
		Timestamp:  time.Now().Unix(),
	}

	if p.writer == nil {
		logger.FromContext(ctx).Debugw("Kafka writer not configured, skipping publishing", "event_id", event.EventID)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.FromContext(ctx).Errorw("Failed to marshal car event", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(strconv.FormatInt(car.ID, 10)),
		Value: data,
	}

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()

		writeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), p.timeout)
		defer cancel()

		if err := p.writer.WriteMessages(writeCtx, msg); err != nil {
			logger.FromContext(ctx).Errorw("Failed to publish car event", "event_id", event.EventID, "car_id", car.ID, "error", err)
			return
		}
		logger.FromContext(ctx).Infow("Car event published", "event_id", event.EventID, "car_id", car.ID, "stage", stage)
	}()
}

// Wait blocks until every event handed to Publish has been written or has
// timed out.
func (p *CarEventPublisher) Wait() {
	p.wg.Wait()
}
