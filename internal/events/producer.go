package events

import (
	"context"
	"encoding/json"
	"time"

	cloudevents "github.com/cloudevents/sdk-go/v2"
	"github.com/google/uuid"
	"github.com/lthibault/jitterbug/v2"
	"go.uber.org/zap"
)

const (
	JobAcceptedKind      string = "fieldserve.jobs.events.accepted"
	WorkStartedKind      string = "fieldserve.jobs.events.started"
	PaymentInitiatedKind string = "fieldserve.jobs.events.payment_initiated"
	JobCancelledKind     string = "fieldserve.jobs.events.cancelled"

	defaultTopic         string        = "fieldserve.jobs.events"
	defaultDrainInterval time.Duration = 500 * time.Millisecond
	eventSource          string        = "fieldserve.api"
)

// Writer is the interface to be implemented by the underlying writer.
type Writer interface {
	Write(ctx context.Context, topic string, e cloudevents.Event) error
	Close(ctx context.Context) error
}

// EventProducer buffers notification events so the request path never blocks
// on the writer. The buffer is drained by a jittered ticker; losing events on
// a crash is acceptable for notifications.
type EventProducer struct {
	buffer        *buffer
	doneCh        chan any
	writer        Writer
	topic         string
	drainInterval time.Duration
}

func NewEventProducer(w Writer, opts ...ProducerOptions) *EventProducer {
	ep := &EventProducer{
		buffer:        newBuffer(),
		doneCh:        make(chan any),
		writer:        w,
		topic:         defaultTopic,
		drainInterval: defaultDrainInterval,
	}

	for _, o := range opts {
		o(ep)
	}

	go ep.run()
	return ep
}

// Write queues one event. The payload is marshalled to json immediately so
// the caller may reuse it.
func (ep *EventProducer) Write(ctx context.Context, kind string, payload any) error {
	d, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	ep.buffer.PushBack(&message{
		Kind: kind,
		Data: d,
	})

	return nil
}

func (ep *EventProducer) Close() error {
	closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	close(ep.doneCh)
	ep.drain()
	if err := ep.writer.Close(closeCtx); err != nil {
		zap.S().Named("event_producer").Errorf("event producer closed with error: %s", err)
		return err
	}

	zap.S().Named("event_producer").Info("event producer closed")
	return nil
}

func (ep *EventProducer) run() {
	ticker := jitterbug.New(ep.drainInterval, &jitterbug.Norm{Stdev: 30 * time.Millisecond, Mean: 0})
	defer ticker.Stop()

	for {
		select {
		case <-ep.doneCh:
			return
		case <-ticker.C:
			ep.drain()
		}
	}
}

func (ep *EventProducer) drain() {
	for {
		msg := ep.buffer.Pop()
		if msg == nil {
			return
		}

		e := cloudevents.NewEvent()
		e.SetID(uuid.NewString())
		e.SetSource(eventSource)
		e.SetType(msg.Kind)
		_ = e.SetData(*cloudevents.StringOfApplicationJSON(), msg.Data)

		if err := ep.writer.Write(context.TODO(), ep.topic, e); err != nil {
			zap.S().Named("event_producer").Errorw("failed to send message", "error", err, "event", e)
		}
	}
}
