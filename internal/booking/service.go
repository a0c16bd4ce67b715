// Package booking orchestrates the submission pipeline: spam gate,
// CAPTCHA verification, validation, slot re-validation, calendar write,
// notification emails.
package booking

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"sync"
	"time"

	"booking-backend/internal/msgraph"
	"booking-backend/internal/notify"
	"booking-backend/internal/schedule"
	"booking-backend/internal/spamguard"
	"booking-backend/internal/turnstile"
)

// Calendar is the slice of the provider the service needs.
type Calendar interface {
	BusyIntervals(ctx context.Context, start, end time.Time) ([]schedule.BusyInterval, error)
	CreateEvent(ctx context.Context, event msgraph.Event) (string, error)
}

// Verifier checks a CAPTCHA token.
type Verifier interface {
	Verify(ctx context.Context, token, remoteIP string) turnstile.Result
}

// Notifier queues the booking emails.
type Notifier interface {
	DispatchBookingEmails(b notify.Booking)
}

// Submission is one inbound booking request. Honeypot is the hidden form
// field; any non-whitespace value marks the sender as a bot.
type Submission struct {
	Name              string
	Email             string
	Phone             string
	Service           string
	Message           string
	ScheduledDatetime string
	TurnstileToken    string
	Honeypot          string
}

// Result is a successful (or fake-successful) submission outcome.
type Result struct {
	Scheduled       bool
	CalendarEventID string
	Message         string
}

const inquiryMessage = "Thank you for your inquiry! We'll be in touch within 24 hours."

// Service runs the pipeline. The mutex serializes the re-validate-then-
// create section so two near-simultaneous submissions cannot both book the
// same slot; the calendar provider offers no conditional write, and at
// consultation-form traffic serializing is cheap.
type Service struct {
	calc     *schedule.Calculator
	calendar Calendar
	guard    *spamguard.Guard
	verifier Verifier
	notifier Notifier
	siteURL  string

	mu sync.Mutex
}

// NewService wires the pipeline. siteURL is the public site credited in the
// calendar event body.
func NewService(calc *schedule.Calculator, calendar Calendar, guard *spamguard.Guard, verifier Verifier, notifier Notifier, siteURL string) *Service {
	return &Service{
		calc:     calc,
		calendar: calendar,
		guard:    guard,
		verifier: verifier,
		notifier: notifier,
		siteURL:  siteURL,
	}
}

// Availability computes bookable slots for the next days days. The busy
// query is fail-closed: if the provider cannot be reached no availability
// is shown, rather than slots that may already be taken.
func (s *Service) Availability(ctx context.Context, days int) ([]schedule.DayAvailability, error) {
	if days <= 0 {
		days = schedule.DefaultDaysAhead
	}
	if days > schedule.MaxDaysAhead {
		days = schedule.MaxDaysAhead
	}

	now := time.Now()
	start, end := s.calc.Window(now, days)
	busy, err := s.calendar.BusyIntervals(ctx, start, end)
	if err != nil {
		log.Printf("busy interval fetch failed, returning no availability: %v", err)
		return nil, wrapError(CodeUpstream, "Failed to fetch available slots", err)
	}
	return s.calc.Available(now, days, busy), nil
}

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Submit runs one submission through the full pipeline.
func (s *Service) Submit(ctx context.Context, sub Submission, clientIP string) (Result, error) {
	// Layer 1: honeypot, rate limit, email checks. Nothing external is
	// touched before this passes.
	decision := s.guard.Check(sub.Email, clientIP, sub.Honeypot)
	if !decision.Passed {
		if decision.Silent {
			// Bot detected: answer with a fake success so automation
			// cannot learn it was caught. No event, no emails.
			log.Printf("[SPAM] silent rejection for IP %s", clientIP)
			return Result{Scheduled: false, Message: inquiryMessage}, nil
		}
		log.Printf("[SPAM] blocked: %s - IP: %s, email: %s", decision.Reason, clientIP, sub.Email)
		return Result{}, newError(CodeSpamRejected, decision.Reason)
	}

	// Layer 2: Turnstile.
	if verdict := s.verifier.Verify(ctx, sub.TurnstileToken, clientIP); !verdict.Success {
		msg := verdict.Error
		if msg == "" {
			msg = "Security verification failed. Please refresh and try again."
		}
		log.Printf("[SPAM] turnstile failed for IP %s: %s", clientIP, msg)
		return Result{}, newError(CodeCaptchaFailed, msg)
	}

	// Standard validation.
	if sub.Name == "" || sub.Email == "" {
		return Result{}, newError(CodeValidation, "Name and email are required")
	}
	if !emailRegex.MatchString(sub.Email) {
		return Result{}, newError(CodeValidation, "Invalid email format")
	}

	result := Result{Message: inquiryMessage}
	var scheduledAt *time.Time

	if sub.ScheduledDatetime != "" {
		at, err := time.Parse(time.RFC3339, sub.ScheduledDatetime)
		if err != nil {
			return Result{}, newError(CodeValidation, "Invalid appointment time format")
		}

		eventID, err := s.bookSlot(ctx, sub, at)
		if err != nil {
			return Result{}, err
		}

		scheduledAt = &at
		result.Scheduled = true
		result.CalendarEventID = eventID
		result.Message = fmt.Sprintf("Your consultation is confirmed for %s. Check your email for details!",
			at.In(s.calc.Location()).Format("Monday, January 2, 2006 at 3:04 PM"))
	}

	// Past the success boundary: email failures must not fail the booking,
	// so delivery is handed off to the background pool.
	s.notifier.DispatchBookingEmails(notify.Booking{
		Name:         sub.Name,
		Email:        sub.Email,
		Phone:        sub.Phone,
		ServiceLabel: ServiceLabel(sub.Service),
		Message:      sub.Message,
		ScheduledAt:  scheduledAt,
	})

	log.Printf("[BOOKING] success - name: %s, email: %s, scheduled: %t, IP: %s",
		sub.Name, sub.Email, result.Scheduled, clientIP)
	return result, nil
}

// bookSlot re-validates the slot against live calendar data and creates
// the event. Held under the service lock: this is the only section where
// two submissions could otherwise interleave into a double booking.
func (s *Service) bookSlot(ctx context.Context, sub Submission, at time.Time) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	end := at.Add(s.calc.Duration())
	busy, err := s.calendar.BusyIntervals(ctx, at, end)
	if err != nil {
		// Fail closed: without authoritative busy data the slot cannot be
		// guaranteed free, so the submission is rejected.
		log.Printf("slot re-validation fetch failed: %v", err)
		return "", wrapError(CodeUpstream, "Failed to process booking. Please try again.", err)
	}
	if !s.calc.SlotFree(at, busy) {
		return "", newError(CodeSlotConflict, "This time slot is no longer available. Please select another time.")
	}

	eventID, err := s.calendar.CreateEvent(ctx, s.buildEvent(sub, at, end))
	if err != nil {
		return "", wrapError(CodeUpstream, "Failed to process booking. Please try again.", err)
	}
	log.Printf("calendar event created: %s", eventID)
	return eventID, nil
}

func (s *Service) buildEvent(sub Submission, start, end time.Time) msgraph.Event {
	label := ServiceLabel(sub.Service)
	return msgraph.Event{
		Subject:       fmt.Sprintf("Consultation: %s - %s", sub.Name, label),
		BodyHTML:      eventBody(sub, label, s.siteURL),
		Start:         start,
		End:           end,
		TimeZone:      s.calc.Location().String(),
		AttendeeEmail: sub.Email,
		AttendeeName:  sub.Name,
	}
}
