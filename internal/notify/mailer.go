// Package notify renders and delivers the booking notification emails:
// one to the business owner, one confirmation to the customer.
package notify

import (
	"bytes"
	"fmt"
	"html/template"
	"log"
	"strings"
	"time"
)

// Booking carries everything the two emails need. ScheduledAt is nil for a
// general inquiry without a chosen slot.
type Booking struct {
	Name         string
	Email        string
	Phone        string
	ServiceLabel string
	Message      string
	ScheduledAt  *time.Time
}

// Mailer builds the owner and customer emails and hands them to the
// worker pool.
type Mailer struct {
	pool         *WorkerPool
	ownerEmail   string
	businessName string
	siteURL      string
	loc          *time.Location
}

// NewMailer creates a mailer. loc is the business timezone used to render
// appointment times.
func NewMailer(pool *WorkerPool, ownerEmail, businessName, siteURL string, loc *time.Location) *Mailer {
	return &Mailer{
		pool:         pool,
		ownerEmail:   ownerEmail,
		businessName: businessName,
		siteURL:      siteURL,
		loc:          loc,
	}
}

// appointmentTime renders an instant the way it appears in subjects and
// banners, in the business timezone.
func (m *Mailer) appointmentTime(t time.Time) string {
	return t.In(m.loc).Format("Monday, January 2, 2006 at 3:04 PM")
}

// DispatchBookingEmails queues both notification emails. It never blocks
// and never fails the caller; delivery problems are the worker pool's to
// log.
func (m *Mailer) DispatchBookingEmails(b Booking) {
	data := m.templateData(b)

	ownerSubject := fmt.Sprintf("New Inquiry: %s - %s", b.Name, b.ServiceLabel)
	customerSubject := fmt.Sprintf("Thank You for Contacting %s", m.businessName)
	if b.ScheduledAt != nil {
		when := m.appointmentTime(*b.ScheduledAt)
		ownerSubject = fmt.Sprintf("SCHEDULED: %s - %s", b.Name, when)
		customerSubject = fmt.Sprintf("Your Consultation is Confirmed - %s", when)
	}

	ownerHTML, err := render(ownerTemplate, data)
	if err != nil {
		log.Printf("owner email render failed: %v", err)
	} else {
		m.pool.Dispatch(Job{To: m.ownerEmail, Subject: ownerSubject, HTML: ownerHTML})
	}

	customerHTML, err := render(customerTemplate, data)
	if err != nil {
		log.Printf("customer email render failed: %v", err)
	} else {
		m.pool.Dispatch(Job{To: b.Email, Subject: customerSubject, HTML: customerHTML})
	}
}

type emailData struct {
	BusinessName string
	SiteURL      string
	Name         string
	FirstName    string
	Email        string
	Phone        string
	ServiceLabel string
	Message      string
	Scheduled    bool
	When         string
}

func (m *Mailer) templateData(b Booking) emailData {
	first, _, _ := strings.Cut(strings.TrimSpace(b.Name), " ")
	data := emailData{
		BusinessName: m.businessName,
		SiteURL:      m.siteURL,
		Name:         b.Name,
		FirstName:    first,
		Email:        b.Email,
		Phone:        b.Phone,
		ServiceLabel: b.ServiceLabel,
		Message:      b.Message,
	}
	if b.ScheduledAt != nil {
		data.Scheduled = true
		data.When = m.appointmentTime(*b.ScheduledAt)
	}
	return data
}

func render(t *template.Template, data emailData) (string, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

var ownerTemplate = template.Must(template.New("owner").Parse(`<!DOCTYPE html>
<html>
<head>
  <style>
    body { font-family: -apple-system, 'Segoe UI', Roboto, sans-serif; background: #f5f5f5; color: #1a1a1a; padding: 20px; }
    .container { max-width: 600px; margin: 0 auto; background: #ffffff; border-radius: 12px; padding: 30px; }
    .header { text-align: center; margin-bottom: 30px; }
    .logo { font-size: 24px; font-weight: bold; }
    .scheduled-banner { background: #2d6cdf; color: white; padding: 15px; border-radius: 10px; text-align: center; margin-bottom: 20px; }
    .scheduled-banner .time { font-size: 22px; font-weight: bold; margin-top: 8px; }
    .inquiry-banner { background: #f0f0f0; border-left: 4px solid #2d6cdf; padding: 15px; margin-bottom: 20px; }
    .detail-row { padding: 12px 0; border-bottom: 1px solid #eee; }
    .label { color: #888; font-size: 12px; text-transform: uppercase; margin-bottom: 4px; }
    .value { font-size: 16px; }
    .notes { background: #fafafa; padding: 15px; border-radius: 8px; margin-top: 20px; }
    .footer { text-align: center; margin-top: 30px; color: #999; font-size: 12px; }
  </style>
</head>
<body>
  <div class="container">
    <div class="header">
      <div class="logo">{{.BusinessName}}</div>
      <p>New Booking Request</p>
    </div>
    {{if .Scheduled}}
    <div class="scheduled-banner">
      <h2>SCHEDULED CONSULTATION</h2>
      <div class="time">{{.When}}</div>
    </div>
    {{else}}
    <div class="inquiry-banner">
      <strong>New Inquiry</strong> - No specific time selected
    </div>
    {{end}}
    <div class="detail-row">
      <div class="label">Client Name</div>
      <div class="value">{{.Name}}</div>
    </div>
    <div class="detail-row">
      <div class="label">Email</div>
      <div class="value"><a href="mailto:{{.Email}}">{{.Email}}</a></div>
    </div>
    {{if .Phone}}
    <div class="detail-row">
      <div class="label">Phone</div>
      <div class="value"><a href="tel:{{.Phone}}">{{.Phone}}</a></div>
    </div>
    {{end}}
    <div class="detail-row">
      <div class="label">Service Interest</div>
      <div class="value">{{.ServiceLabel}}</div>
    </div>
    {{if .Message}}
    <div class="notes">
      <div class="label">Additional Notes</div>
      <p>{{.Message}}</p>
    </div>
    {{end}}
    <div class="footer">
      <p>This booking was submitted via {{.SiteURL}}</p>
    </div>
  </div>
</body>
</html>
`))

var customerTemplate = template.Must(template.New("customer").Parse(`<!DOCTYPE html>
<html>
<head>
  <style>
    body { font-family: -apple-system, 'Segoe UI', Roboto, sans-serif; background: #f5f5f5; color: #1a1a1a; padding: 20px; }
    .container { max-width: 600px; margin: 0 auto; background: #ffffff; border-radius: 12px; padding: 30px; }
    .header { text-align: center; margin-bottom: 30px; }
    .logo { font-size: 28px; font-weight: bold; }
    .confirmation-banner { background: #2d6cdf; color: white; padding: 25px; border-radius: 10px; text-align: center; margin-bottom: 25px; }
    .confirmation-banner .time { font-size: 20px; font-weight: bold; }
    .inquiry-banner { background: #f0f0f0; padding: 20px; border-radius: 10px; text-align: center; margin-bottom: 25px; }
    .content { line-height: 1.7; }
    .cta { text-align: center; margin: 30px 0; }
    .cta a { display: inline-block; background: #2d6cdf; color: white; padding: 12px 30px; border-radius: 25px; text-decoration: none; }
    .footer { text-align: center; margin-top: 30px; padding-top: 20px; border-top: 1px solid #eee; color: #999; font-size: 13px; }
  </style>
</head>
<body>
  <div class="container">
    <div class="header">
      <div class="logo">{{.BusinessName}}</div>
    </div>
    {{if .Scheduled}}
    <div class="confirmation-banner">
      <h2>Your Consultation is Confirmed!</h2>
      <div class="time">{{.When}}</div>
      <p>Calendar invite sent to your email</p>
    </div>
    {{else}}
    <div class="inquiry-banner">
      <h2>Thank You for Reaching Out!</h2>
      <p>We'll respond within 24 hours</p>
    </div>
    {{end}}
    <div class="content">
      <p>Hi {{.FirstName}},</p>
      {{if .Scheduled}}
      <p>Thank you for scheduling a consultation about <strong>{{.ServiceLabel}}</strong>. We're excited to learn more about your project!</p>
      <h3>What to Expect</h3>
      <ul>
        <li>Duration: Approximately 1 hour</li>
        <li>We'll discuss your goals and requirements</li>
        <li>We'll explore potential solutions tailored to your needs</li>
        <li>You'll receive a follow-up summary and recommendations</li>
      </ul>
      <h3>Need to Reschedule?</h3>
      <p>No problem! Simply reply to this email or use the calendar invite to propose a new time.</p>
      {{else}}
      <p>Thank you for your interest in our <strong>{{.ServiceLabel}}</strong> services. We've received your inquiry and will review it promptly.</p>
      <h3>What Happens Next?</h3>
      <ul>
        <li>Our team will review your request</li>
        <li>We'll reach out within 24 hours</li>
        <li>We'll schedule a consultation at your convenience</li>
      </ul>
      {{end}}
    </div>
    <div class="cta">
      <a href="{{.SiteURL}}">Visit Our Website</a>
    </div>
    <div class="footer">
      <p><strong>{{.BusinessName}}</strong></p>
      <p><a href="{{.SiteURL}}">{{.SiteURL}}</a></p>
    </div>
  </div>
</body>
</html>
`))
