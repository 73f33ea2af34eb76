package events

import "time"

type ProducerOptions func(e *EventProducer)

// WithCloseTimeout bounds the time Close spends flushing pending events.
func WithCloseTimeout(timeout time.Duration) ProducerOptions {
	return func(e *EventProducer) {
		e.closeTimeout = timeout
	}
}

// WithBufferCapacity bounds the number of events waiting for the writer.
func WithBufferCapacity(capacity int) ProducerOptions {
	return func(e *EventProducer) {
		e.bufferCapacity = capacity
	}
}
