package msgraph

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"booking-backend/internal/schedule"
)

// graphDateTime is Graph's {dateTime, timeZone} pair.
type graphDateTime struct {
	DateTime string `json:"dateTime"`
	TimeZone string `json:"timeZone"`
}

type calendarViewResponse struct {
	Value []struct {
		Start  graphDateTime `json:"start"`
		End    graphDateTime `json:"end"`
		ShowAs string        `json:"showAs"`
	} `json:"value"`
	NextLink string `json:"@odata.nextLink"`
}

// calendarView timestamps arrive without an offset, in the timezone named
// alongside; we request nothing special so they come back in UTC.
const graphTimeLayout = "2006-01-02T15:04:05"

const calendarPageSize = 100

// BusyIntervals returns the busy and tentative events on the user's
// calendar within [start, end), following pagination until exhausted.
func (c *Client) BusyIntervals(ctx context.Context, start, end time.Time) ([]schedule.BusyInterval, error) {
	q := url.Values{}
	q.Set("startDateTime", start.UTC().Format(time.RFC3339))
	q.Set("endDateTime", end.UTC().Format(time.RFC3339))
	q.Set("$select", "start,end,showAs")
	q.Set("$top", fmt.Sprintf("%d", calendarPageSize))

	next := fmt.Sprintf("%s/users/%s/calendar/calendarView?%s", c.baseURL, url.PathEscape(c.userEmail), q.Encode())

	var busy []schedule.BusyInterval
	for next != "" {
		var page calendarViewResponse
		if err := c.do(ctx, http.MethodGet, next, nil, &page); err != nil {
			return nil, fmt.Errorf("calendar view query failed: %w", err)
		}

		for _, event := range page.Value {
			if event.ShowAs != "busy" && event.ShowAs != "tentative" {
				continue
			}
			s, err := time.ParseInLocation(graphTimeLayout, event.Start.DateTime, time.UTC)
			if err != nil {
				return nil, fmt.Errorf("failed to parse event start %q: %w", event.Start.DateTime, err)
			}
			e, err := time.ParseInLocation(graphTimeLayout, event.End.DateTime, time.UTC)
			if err != nil {
				return nil, fmt.Errorf("failed to parse event end %q: %w", event.End.DateTime, err)
			}
			busy = append(busy, schedule.BusyInterval{Start: s, End: e})
		}

		next = page.NextLink
	}
	return busy, nil
}

// Event is a calendar event to create on the user's calendar.
type Event struct {
	Subject       string
	BodyHTML      string
	Start         time.Time
	End           time.Time
	TimeZone      string // IANA identifier for the start/end wall times
	AttendeeEmail string
	AttendeeName  string
}

type graphItemBody struct {
	ContentType string `json:"contentType"`
	Content     string `json:"content"`
}

type graphEmailAddress struct {
	Address string `json:"address"`
	Name    string `json:"name,omitempty"`
}

type graphAttendee struct {
	EmailAddress graphEmailAddress `json:"emailAddress"`
	Type         string            `json:"type"`
}

type graphEvent struct {
	Subject                    string          `json:"subject"`
	Body                       graphItemBody   `json:"body"`
	Start                      graphDateTime   `json:"start"`
	End                        graphDateTime   `json:"end"`
	Attendees                  []graphAttendee `json:"attendees"`
	IsReminderOn               bool            `json:"isReminderOn"`
	ReminderMinutesBeforeStart int             `json:"reminderMinutesBeforeStart"`
}

type createEventResponse struct {
	ID string `json:"id"`
}

// CreateEvent writes the appointment to the user's calendar and returns
// the provider event id. Start/end are sent as wall-clock times in the
// event's timezone, never as offset arithmetic on UTC.
func (c *Client) CreateEvent(ctx context.Context, event Event) (string, error) {
	loc, err := time.LoadLocation(event.TimeZone)
	if err != nil {
		return "", fmt.Errorf("failed to load timezone %q: %w", event.TimeZone, err)
	}

	payload := graphEvent{
		Subject: event.Subject,
		Body:    graphItemBody{ContentType: "HTML", Content: event.BodyHTML},
		Start:   graphDateTime{DateTime: event.Start.In(loc).Format(graphTimeLayout), TimeZone: event.TimeZone},
		End:     graphDateTime{DateTime: event.End.In(loc).Format(graphTimeLayout), TimeZone: event.TimeZone},
		Attendees: []graphAttendee{{
			EmailAddress: graphEmailAddress{Address: event.AttendeeEmail, Name: event.AttendeeName},
			Type:         "required",
		}},
		IsReminderOn:               true,
		ReminderMinutesBeforeStart: 60,
	}

	endpoint := fmt.Sprintf("%s/users/%s/calendar/events", c.baseURL, url.PathEscape(c.userEmail))
	var created createEventResponse
	if err := c.do(ctx, http.MethodPost, endpoint, payload, &created); err != nil {
		return "", fmt.Errorf("event creation failed: %w", err)
	}
	return created.ID, nil
}
