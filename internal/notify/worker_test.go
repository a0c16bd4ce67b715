package notify

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockSender struct {
	mu   sync.Mutex
	sent []Job
	err  error
	done chan struct{}
}

func newMockSender(expect int) *mockSender {
	return &mockSender{done: make(chan struct{}, expect)}
}

func (m *mockSender) SendMail(ctx context.Context, to, subject, htmlBody string) error {
	m.mu.Lock()
	m.sent = append(m.sent, Job{To: to, Subject: subject, HTML: htmlBody})
	m.mu.Unlock()
	m.done <- struct{}{}
	return m.err
}

func (m *mockSender) wait(t *testing.T, n int) []Job {
	t.Helper()
	for i := 0; i < n; i++ {
		select {
		case <-m.done:
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out waiting for delivery %d of %d", i+1, n)
		}
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Job(nil), m.sent...)
}

func TestWorkerPoolDelivers(t *testing.T) {
	sender := newMockSender(2)
	pool := NewWorkerPool(2, sender)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	pool.Start(ctx)

	pool.Dispatch(Job{To: "a@example.com", Subject: "first", HTML: "<p>1</p>"})
	pool.Dispatch(Job{To: "b@example.com", Subject: "second", HTML: "<p>2</p>"})

	sent := sender.wait(t, 2)
	require.Len(t, sent, 2)

	got := map[string]string{}
	for _, j := range sent {
		got[j.To] = j.Subject
	}
	assert.Equal(t, "first", got["a@example.com"])
	assert.Equal(t, "second", got["b@example.com"])
}

func TestWorkerPoolSurvivesSendFailure(t *testing.T) {
	sender := newMockSender(2)
	sender.err = errors.New("mailbox unavailable")
	pool := NewWorkerPool(1, sender)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	pool.Start(ctx)

	pool.Dispatch(Job{To: "a@example.com", Subject: "doomed"})
	pool.Dispatch(Job{To: "b@example.com", Subject: "also doomed"})

	// Both deliveries are attempted even though the first one failed.
	sent := sender.wait(t, 2)
	assert.Len(t, sent, 2)
}

func TestWorkerPoolDropsWhenQueueFull(t *testing.T) {
	// Never started, so the queue only drains into its buffer.
	pool := NewWorkerPool(1, newMockSender(0))

	for i := 0; i < cap(pool.Jobs())+10; i++ {
		pool.Dispatch(Job{To: "a@example.com"})
	}
	assert.Equal(t, cap(pool.Jobs()), len(pool.Jobs()))
}

func TestWorkerPoolStopsOnContextCancel(t *testing.T) {
	sender := newMockSender(1)
	pool := NewWorkerPool(1, sender)

	ctx, cancel := context.WithCancel(context.Background())
	pool.Start(ctx)
	cancel()

	// Give the worker a moment to observe cancellation, then verify a
	// later dispatch is never delivered.
	time.Sleep(20 * time.Millisecond)
	pool.Dispatch(Job{To: "a@example.com", Subject: "late"})

	select {
	case <-sender.done:
		t.Fatal("worker delivered a job after shutdown")
	case <-time.After(50 * time.Millisecond):
	}
}
