package msgraph

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

type graphRecipient struct {
	EmailAddress graphEmailAddress `json:"emailAddress"`
}

type graphMessage struct {
	Subject      string           `json:"subject"`
	Body         graphItemBody    `json:"body"`
	ToRecipients []graphRecipient `json:"toRecipients"`
}

type sendMailRequest struct {
	Message         graphMessage `json:"message"`
	SaveToSentItems bool         `json:"saveToSentItems"`
}

// SendMail sends one HTML email from the user's mailbox.
func (c *Client) SendMail(ctx context.Context, to, subject, htmlBody string) error {
	payload := sendMailRequest{
		Message: graphMessage{
			Subject:      subject,
			Body:         graphItemBody{ContentType: "HTML", Content: htmlBody},
			ToRecipients: []graphRecipient{{EmailAddress: graphEmailAddress{Address: to}}},
		},
		SaveToSentItems: true,
	}

	endpoint := fmt.Sprintf("%s/users/%s/sendMail", c.baseURL, url.PathEscape(c.userEmail))
	if err := c.do(ctx, http.MethodPost, endpoint, payload, nil); err != nil {
		return fmt.Errorf("sendMail failed: %w", err)
	}
	return nil
}
