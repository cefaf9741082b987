package jobs

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingMailer struct {
	mu   sync.Mutex
	sent []string
	fail bool
}

func (m *recordingMailer) Send(to, subject, html string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return errors.New("smtp down")
	}
	m.sent = append(m.sent, to)
	return nil
}

func (m *recordingMailer) sentCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sent)
}

func TestNotificationDispatcher_DeliversEnqueuedJobs(t *testing.T) {
	mailer := &recordingMailer{}
	d := NewNotificationDispatcher(mailer, 8)

	ctx := context.Background()
	go d.Start(ctx)

	d.Enqueue(ctx, Notification{Recipient: "a@example.com", Subject: "s", Body: "b"})
	d.Enqueue(ctx, Notification{Recipient: "b@example.com", Subject: "s", Body: "b"})

	require.Eventually(t, func() bool {
		return mailer.sentCount() == 2
	}, 2*time.Second, 10*time.Millisecond)

	d.Stop()
}

func TestNotificationDispatcher_DeliveryFailureIsSwallowed(t *testing.T) {
	mailer := &recordingMailer{fail: true}
	d := NewNotificationDispatcher(mailer, 8)

	ctx := context.Background()
	go d.Start(ctx)

	// Enqueue never blocks and a failed send never surfaces anywhere
	d.Enqueue(ctx, Notification{Recipient: "a@example.com", Subject: "s", Body: "b"})
	time.Sleep(50 * time.Millisecond)
	d.Stop()

	assert.Zero(t, mailer.sentCount())
}

func TestNotificationDispatcher_FullQueueDropsInsteadOfBlocking(t *testing.T) {
	mailer := &recordingMailer{}
	d := NewNotificationDispatcher(mailer, 1)
	ctx := context.Background()

	// Worker not started, so the queue fills up immediately
	done := make(chan struct{})
	go func() {
		defer close(done)
		d.Enqueue(ctx, Notification{Recipient: "a@example.com"})
		d.Enqueue(ctx, Notification{Recipient: "b@example.com"})
		d.Enqueue(ctx, Notification{Recipient: "c@example.com"})
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Enqueue blocked on a full queue")
	}
}

func TestNotificationDispatcher_StopsOnContextCancel(t *testing.T) {
	d := NewNotificationDispatcher(&recordingMailer{}, 1)
	ctx, cancel := context.WithCancel(context.Background())

	stopped := make(chan struct{})
	go func() {
		d.Start(ctx)
		close(stopped)
	}()

	cancel()
	select {
	case <-stopped:
	case <-time.After(time.Second):
		t.Fatal("dispatcher did not stop on context cancel")
	}
}
