package events

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const defaultCloseTimeout = 5 * time.Second

var ErrProducerClosed = errors.New("event producer closed")

// Writer is the interface to be implemented by the underlying writer.
type Writer interface {
	Write(ctx context.Context, e Event) error
	Close(ctx context.Context) error
}

// EventProducer is a wrapper around a Writer with the buffer.
// It has a buffer to store pending events to not block the caller if the writer takes time to write the event.
type EventProducer struct {
	buffer           *buffer
	bufferCapacity   int
	startConsumingCh chan any
	doneCh           chan any
	stoppedCh        chan any
	writer           Writer
	closeTimeout     time.Duration
}

func NewEventProducer(w Writer, opts ...ProducerOptions) *EventProducer {
	ep := &EventProducer{
		startConsumingCh: make(chan any, 1),
		doneCh:           make(chan any),
		stoppedCh:        make(chan any),
		writer:           w,
		closeTimeout:     defaultCloseTimeout,
	}

	for _, o := range opts {
		o(ep)
	}
	ep.buffer = newBuffer(ep.bufferCapacity)

	go ep.run()
	return ep
}

// Write queues e. It never waits for the writer.
func (ep *EventProducer) Write(ctx context.Context, e Event) error {
	select {
	case <-ep.doneCh:
		return ErrProducerClosed
	default:
	}

	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.Time.IsZero() {
		e.Time = time.Now()
	}

	if ep.buffer.push(e) {
		zap.S().Named("event_producer").Warnw("buffer full, dropped the oldest event", "action", e.Action)
	}

	// unblock the consumer
	select {
	case ep.startConsumingCh <- struct{}{}:
	default:
	}

	return nil
}

// Record queues an action of a user. Failures are logged only, the audit
// trail never blocks a conversation.
func (ep *EventProducer) Record(ctx context.Context, action string, userID int64, details string) {
	if err := ep.Write(ctx, NewUserEvent(action, userID, details)); err != nil {
		zap.S().Named("event_producer").Warnw("failed to queue event", "action", action, "user_id", userID, "error", err)
	}
}

// Close flushes the pending events and closes the writer.
func (ep *EventProducer) Close() error {
	closeCtx, cancel := context.WithTimeout(context.Background(), ep.closeTimeout)
	defer cancel()

	g, ctx := errgroup.WithContext(closeCtx)
	g.Go(func() error {
		close(ep.doneCh)
		select {
		case <-ep.stoppedCh:
		case <-ctx.Done():
			return ctx.Err()
		}
		return ep.writer.Close(ctx)
	})
	if err := g.Wait(); err != nil {
		zap.S().Errorf("event producer closed with error: %s", err)
		return err
	}

	zap.S().Named("event_producer").Info("event producer closed")

	return nil
}

func (ep *EventProducer) run() {
	defer close(ep.stoppedCh)

	for {
		if ep.buffer.count() == 0 {
			select {
			case <-ep.startConsumingCh:
			case <-ep.doneCh:
				ep.flush()
				return
			}
		}

		if e, ok := ep.buffer.pop(); ok {
			ep.write(e)
		}
	}
}

func (ep *EventProducer) flush() {
	for e, ok := ep.buffer.pop(); ok; e, ok = ep.buffer.pop() {
		ep.write(e)
	}
}

func (ep *EventProducer) write(e Event) {
	if err := ep.writer.Write(context.TODO(), e); err != nil {
		zap.S().Named("event_producer").Errorw("failed to write event", "error", err, "id", e.ID, "action", e.Action)
	}
}
