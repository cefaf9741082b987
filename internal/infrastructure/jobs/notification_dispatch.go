package jobs

import (
	"context"

	"go.uber.org/zap"
	"farm-market.backend/internal/infrastructure/notifications"
	"farm-market.backend/pkg/logger"
)

// Notification is one outbound email job
type Notification struct {
	Recipient string
	Subject   string
	Body      string
}

// NotificationDispatcher delivers outcome emails off the request path.
// Delivery is best effort: a failed send is logged and dropped, never
// retried and never reported back to the enqueuing decision.
type NotificationDispatcher struct {
	mailer notifications.Mailer
	queue  chan Notification
	stop   chan struct{}
	done   chan struct{}
}

// NewNotificationDispatcher creates a dispatcher with a bounded queue
func NewNotificationDispatcher(mailer notifications.Mailer, queueSize int) *NotificationDispatcher {
	return &NotificationDispatcher{
		mailer: mailer,
		queue:  make(chan Notification, queueSize),
		stop:   make(chan struct{}),
		done:   make(chan struct{}),
	}
}

// Enqueue hands a notification to the background worker without
// blocking. When the queue is full the job is dropped and logged.
func (d *NotificationDispatcher) Enqueue(ctx context.Context, n Notification) {
	select {
	case d.queue <- n:
	default:
		logger.Warn(ctx, "notification queue full, dropping job",
			zap.String("recipient", n.Recipient),
			zap.String("subject", n.Subject),
		)
	}
}

// Start runs the delivery loop until the context is cancelled or Stop
// is called.
func (d *NotificationDispatcher) Start(ctx context.Context) {
	defer close(d.done)
	logger.Info(ctx, "notification dispatcher started")

	for {
		select {
		case <-ctx.Done():
			logger.Info(ctx, "notification dispatcher stopped (context cancelled)")
			return
		case <-d.stop:
			logger.Info(ctx, "notification dispatcher stopped")
			return
		case n := <-d.queue:
			d.deliver(ctx, n)
		}
	}
}

// Stop signals the delivery loop to exit and waits for it
func (d *NotificationDispatcher) Stop() {
	close(d.stop)
	<-d.done
}

func (d *NotificationDispatcher) deliver(ctx context.Context, n Notification) {
	if err := d.mailer.Send(n.Recipient, n.Subject, n.Body); err != nil {
		logger.Error(ctx, "notification delivery failed",
			zap.String("recipient", n.Recipient),
			zap.String("subject", n.Subject),
			zap.Error(err),
		)
		return
	}
	logger.Debug(ctx, "notification delivered", zap.String("recipient", n.Recipient))
}
