package msgraph

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(srv *httptest.Server) *Client {
	return &Client{
		baseURL:   srv.URL,
		userEmail: "owner@example.com",
		client:    srv.Client(),
	}
}

func TestBusyIntervalsFiltersAndPaginates(t *testing.T) {
	var srv *httptest.Server
	srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/users/owner@example.com/calendar/calendarView":
			q := r.URL.Query()
			assert.Equal(t, "start,end,showAs", q.Get("$select"))
			assert.Equal(t, "100", q.Get("$top"))
			assert.NotEmpty(t, q.Get("startDateTime"))
			assert.NotEmpty(t, q.Get("endDateTime"))

			fmt.Fprintf(w, `{
				"value": [
					{"start": {"dateTime": "2026-01-05T15:00:00.0000000", "timeZone": "UTC"},
					 "end": {"dateTime": "2026-01-05T16:00:00.0000000", "timeZone": "UTC"},
					 "showAs": "busy"},
					{"start": {"dateTime": "2026-01-05T17:00:00.0000000", "timeZone": "UTC"},
					 "end": {"dateTime": "2026-01-05T18:00:00.0000000", "timeZone": "UTC"},
					 "showAs": "free"}
				],
				"@odata.nextLink": "%s/page2"
			}`, srv.URL)
		case "/page2":
			fmt.Fprint(w, `{
				"value": [
					{"start": {"dateTime": "2026-01-06T20:00:00", "timeZone": "UTC"},
					 "end": {"dateTime": "2026-01-06T21:30:00", "timeZone": "UTC"},
					 "showAs": "tentative"}
				]
			}`)
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	c := newTestClient(srv)
	start := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	busy, err := c.BusyIntervals(context.Background(), start, start.AddDate(0, 0, 14))
	require.NoError(t, err)

	// "free" events are dropped; busy and tentative survive, across pages.
	require.Len(t, busy, 2)
	assert.Equal(t, time.Date(2026, 1, 5, 15, 0, 0, 0, time.UTC), busy[0].Start)
	assert.Equal(t, time.Date(2026, 1, 5, 16, 0, 0, 0, time.UTC), busy[0].End)
	assert.Equal(t, time.Date(2026, 1, 6, 20, 0, 0, 0, time.UTC), busy[1].Start)
	assert.Equal(t, time.Date(2026, 1, 6, 21, 30, 0, 0, time.UTC), busy[1].End)
}

func TestBusyIntervalsSurfacesProviderErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": {"code": "InvalidAuthenticationToken"}}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := newTestClient(srv)
	_, err := c.BusyIntervals(context.Background(), time.Now(), time.Now().Add(time.Hour))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 401")
}

func TestCreateEventSendsWallClockTimes(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	var got graphEvent
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/users/owner@example.com/calendar/events", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		fmt.Fprint(w, `{"id": "evt-123"}`)
	}))
	defer srv.Close()

	c := newTestClient(srv)
	start := time.Date(2026, 1, 5, 15, 0, 0, 0, time.UTC) // 10:00 in New York
	id, err := c.CreateEvent(context.Background(), Event{
		Subject:       "Consultation: Jane Doe - Custom Development",
		BodyHTML:      "<h2>Consultation Appointment</h2>",
		Start:         start,
		End:           start.Add(time.Hour),
		TimeZone:      loc.String(),
		AttendeeEmail: "jane@example.com",
		AttendeeName:  "Jane Doe",
	})
	require.NoError(t, err)
	assert.Equal(t, "evt-123", id)

	// Graph receives the wall-clock time in the named zone, not UTC.
	assert.Equal(t, "2026-01-05T10:00:00", got.Start.DateTime)
	assert.Equal(t, "America/New_York", got.Start.TimeZone)
	assert.Equal(t, "2026-01-05T11:00:00", got.End.DateTime)
	require.Len(t, got.Attendees, 1)
	assert.Equal(t, "jane@example.com", got.Attendees[0].EmailAddress.Address)
	assert.Equal(t, "required", got.Attendees[0].Type)
	assert.True(t, got.IsReminderOn)
	assert.Equal(t, 60, got.ReminderMinutesBeforeStart)
}

func TestSendMail(t *testing.T) {
	var got sendMailRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/owner@example.com/sendMail", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	c := newTestClient(srv)
	err := c.SendMail(context.Background(), "jane@example.com", "Your Consultation is Confirmed", "<p>hi</p>")
	require.NoError(t, err)

	assert.Equal(t, "Your Consultation is Confirmed", got.Message.Subject)
	assert.Equal(t, "HTML", got.Message.Body.ContentType)
	require.Len(t, got.Message.ToRecipients, 1)
	assert.Equal(t, "jane@example.com", got.Message.ToRecipients[0].EmailAddress.Address)
	assert.True(t, got.SaveToSentItems)
}
