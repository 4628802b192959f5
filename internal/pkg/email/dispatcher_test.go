// internal/pkg/email/dispatcher_test.go
package email

import (
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vatsalbhavsar03/ShoeVerse-Backend/internal/config"
)

type fakeSender struct {
	mu       sync.Mutex
	sent     []*Message
	failures int // fail this many sends before succeeding
	err      error
}

func (f *fakeSender) Send(msg *Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failures > 0 {
		f.failures--
		return errors.New("smtp connection refused")
	}
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, msg)
	return nil
}

func (f *fakeSender) sentMessages() []*Message {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*Message, len(f.sent))
	copy(out, f.sent)
	return out
}

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func newTestDispatcher(sender Sender, queueSize int) *Dispatcher {
	cfg := &config.EmailConfig{QueueSize: queueSize, Workers: 1, MaxRetries: 2}
	return NewDispatcher(sender, cfg, "ShoeVerse", quietLogger())
}

func TestDispatcherDeliversEnqueuedMessages(t *testing.T) {
	sender := &fakeSender{}
	d := newTestDispatcher(sender, 10)

	d.EnqueueOrderConfirmation("asha@example.com", "Asha", 7, 259900)
	d.Close()

	sent := sender.sentMessages()
	require.Len(t, sent, 1)
	assert.Equal(t, []string{"asha@example.com"}, sent[0].To)
	assert.Equal(t, TypeOrderConfirmation, sent[0].Type)
	assert.Contains(t, sent[0].Subject, "Order #7")
	assert.Contains(t, sent[0].HTMLContent, "2599.00")
}

func TestDispatcherRetriesThenSucceeds(t *testing.T) {
	sender := &fakeSender{failures: 1}
	d := newTestDispatcher(sender, 10)

	d.EnqueuePaymentReceipt("ravi@example.com", "Ravi", 3, 519800, "card")
	d.Close()

	sent := sender.sentMessages()
	require.Len(t, sent, 1)
	assert.Equal(t, TypePaymentReceipt, sent[0].Type)
}

func TestDispatcherGivesUpAfterMaxRetries(t *testing.T) {
	sender := &fakeSender{err: errors.New("mailbox unavailable")}
	d := newTestDispatcher(sender, 10)

	d.EnqueueOTP("asha@example.com", "123456", time.Now().Add(5*time.Minute))
	d.Close()

	assert.Empty(t, sender.sentMessages())
}

func TestDispatcherQueueFullDropsWithoutBlocking(t *testing.T) {
	block := make(chan struct{})
	sender := &blockingSender{release: block}
	d := newTestDispatcher(sender, 1)

	// First message occupies the worker, second fills the queue, the
	// third must be dropped rather than block the caller.
	done := make(chan struct{})
	go func() {
		d.EnqueueContactMessage("a@example.com", "A", "s1", "b1")
		d.EnqueueContactMessage("b@example.com", "B", "s2", "b2")
		d.EnqueueContactMessage("c@example.com", "C", "s3", "b3")
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Enqueue blocked on a full queue")
	}

	close(block)
	d.Close()
	assert.LessOrEqual(t, len(sender.sentMessages()), 2)
}

func TestDispatcherEnqueueAfterCloseDoesNotPanic(t *testing.T) {
	sender := &fakeSender{}
	d := newTestDispatcher(sender, 10)
	d.Close()

	assert.NotPanics(t, func() {
		d.EnqueueOrderConfirmation("asha@example.com", "Asha", 1, 100)
	})
}

func TestDispatcherCloseIsIdempotent(t *testing.T) {
	d := newTestDispatcher(&fakeSender{}, 10)
	d.Close()
	assert.NotPanics(t, d.Close)
}

type blockingSender struct {
	mu      sync.Mutex
	sent    []*Message
	release chan struct{}
}

func (b *blockingSender) Send(msg *Message) error {
	<-b.release
	b.mu.Lock()
	defer b.mu.Unlock()
	b.sent = append(b.sent, msg)
	return nil
}

func (b *blockingSender) sentMessages() []*Message {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]*Message, len(b.sent))
	copy(out, b.sent)
	return out
}
