// Package msgraph is a minimal Microsoft Graph client covering the two
// surfaces this service needs: the booking mailbox's calendar and its
// outbound mail.
package msgraph

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/oauth2/clientcredentials"
)

const defaultBaseURL = "https://graph.microsoft.com/v1.0"

// Client talks to Microsoft Graph on behalf of one MS365 user using the
// client-credentials flow.
type Client struct {
	baseURL   string
	userEmail string
	client    *http.Client
}

// NewClient builds a Graph client for the given tenant application. The
// returned client caches and refreshes its access token internally.
func NewClient(tenantID, clientID, clientSecret, userEmail string) *Client {
	cc := clientcredentials.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		TokenURL:     fmt.Sprintf("https://login.microsoftonline.com/%s/oauth2/v2.0/token", tenantID),
		Scopes:       []string{"https://graph.microsoft.com/.default"},
	}

	httpClient := cc.Client(context.Background())
	httpClient.Timeout = 10 * time.Second

	return &Client{
		baseURL:   defaultBaseURL,
		userEmail: userEmail,
		client:    httpClient,
	}
}

// do performs one Graph request. body is JSON-marshalled when non-nil and
// the response is decoded into out when non-nil.
func (c *Client) do(ctx context.Context, method, url string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request payload: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("graph request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return fmt.Errorf("graph returned status %d: %s", resp.StatusCode, detail)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode graph response: %w", err)
		}
	}
	return nil
}
