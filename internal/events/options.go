package events

import "time"

type ProducerOptions func(e *EventProducer)

func WithOutputTopic(topic string) ProducerOptions {
	return func(e *EventProducer) {
		e.topic = topic
	}
}

func WithDrainInterval(interval time.Duration) ProducerOptions {
	return func(e *EventProducer) {
		e.drainInterval = interval
	}
}
