package notify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMailer(t *testing.T) (*Mailer, *WorkerPool) {
	t.Helper()
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	// Pool is never started: jobs stay in the queue for inspection.
	pool := NewWorkerPool(1, newMockSender(0))
	m := NewMailer(pool, "owner@example.com", "Acme Consulting", "https://acme.example.com", loc)
	return m, pool
}

func drainJobs(pool *WorkerPool) map[string]Job {
	jobs := map[string]Job{}
	for {
		select {
		case j := <-pool.Jobs():
			jobs[j.To] = j
		default:
			return jobs
		}
	}
}

func TestDispatchScheduledBookingEmails(t *testing.T) {
	m, pool := newTestMailer(t)

	at := time.Date(2026, 1, 5, 15, 0, 0, 0, time.UTC) // Monday 10:00 AM in New York
	m.DispatchBookingEmails(Booking{
		Name:         "Jane Doe",
		Email:        "jane@example.com",
		Phone:        "555-0100",
		ServiceLabel: "Custom Development",
		Message:      "Looking to modernize our stack.",
		ScheduledAt:  &at,
	})

	jobs := drainJobs(pool)
	require.Len(t, jobs, 2)

	owner := jobs["owner@example.com"]
	assert.Equal(t, "SCHEDULED: Jane Doe - Monday, January 5, 2026 at 10:00 AM", owner.Subject)
	assert.Contains(t, owner.HTML, "SCHEDULED CONSULTATION")
	assert.Contains(t, owner.HTML, "Monday, January 5, 2026 at 10:00 AM")
	assert.Contains(t, owner.HTML, "Jane Doe")
	assert.Contains(t, owner.HTML, "555-0100")
	assert.Contains(t, owner.HTML, "Looking to modernize our stack.")

	customer := jobs["jane@example.com"]
	assert.Equal(t, "Your Consultation is Confirmed - Monday, January 5, 2026 at 10:00 AM", customer.Subject)
	assert.Contains(t, customer.HTML, "Your Consultation is Confirmed!")
	assert.Contains(t, customer.HTML, "Hi Jane,")
	assert.Contains(t, customer.HTML, "Custom Development")
	assert.Contains(t, customer.HTML, "https://acme.example.com")
}

func TestDispatchInquiryEmails(t *testing.T) {
	m, pool := newTestMailer(t)

	m.DispatchBookingEmails(Booking{
		Name:         "John Smith",
		Email:        "john@example.com",
		ServiceLabel: "AI Solutions Consultation",
	})

	jobs := drainJobs(pool)
	require.Len(t, jobs, 2)

	owner := jobs["owner@example.com"]
	assert.Equal(t, "New Inquiry: John Smith - AI Solutions Consultation", owner.Subject)
	assert.Contains(t, owner.HTML, "No specific time selected")
	assert.NotContains(t, owner.HTML, "SCHEDULED CONSULTATION")

	customer := jobs["john@example.com"]
	assert.Equal(t, "Thank You for Contacting Acme Consulting", customer.Subject)
	assert.Contains(t, customer.HTML, "Thank You for Reaching Out!")
	assert.Contains(t, customer.HTML, "Hi John,")
}

func TestDispatchEscapesUserContent(t *testing.T) {
	m, pool := newTestMailer(t)

	m.DispatchBookingEmails(Booking{
		Name:         "Eve <script>alert(1)</script>",
		Email:        "eve@example.com",
		ServiceLabel: "General Consultation",
		Message:      "<img src=x onerror=alert(1)>",
	})

	jobs := drainJobs(pool)
	owner := jobs["owner@example.com"]
	assert.NotContains(t, owner.HTML, "<script>")
	assert.NotContains(t, owner.HTML, "<img src=x")
	assert.Contains(t, owner.HTML, "&lt;script&gt;")
}
