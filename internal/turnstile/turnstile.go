// Package turnstile verifies Cloudflare Turnstile challenge tokens
// server-side.
package turnstile

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// VerifyURL is Cloudflare's siteverify endpoint.
const VerifyURL = "https://challenges.cloudflare.com/turnstile/v0/siteverify"

// Policy decides what happens when no secret key is configured. It is
// chosen once at startup from the deployment environment; verification
// must never silently default to open.
type Policy int

const (
	// FailClosed rejects every token when the secret is missing (production).
	FailClosed Policy = iota
	// FailOpen accepts every token when the secret is missing (development).
	FailOpen
)

// Result is the outcome of one verification.
type Result struct {
	Success bool
	Error   string
}

// Verifier talks to the siteverify endpoint.
type Verifier struct {
	secret    string
	policy    Policy
	verifyURL string
	client    *http.Client
}

// New creates a verifier. secret may be empty, in which case policy
// applies on every call.
func New(secret string, policy Policy) *Verifier {
	return &Verifier{
		secret:    secret,
		policy:    policy,
		verifyURL: VerifyURL,
		client:    &http.Client{Timeout: 10 * time.Second},
	}
}

// Enabled reports whether a secret is configured.
func (v *Verifier) Enabled() bool { return v.secret != "" }

type siteverifyResponse struct {
	Success    bool     `json:"success"`
	ErrorCodes []string `json:"error-codes"`
}

// Verify checks a client token. remoteIP is optional. Network failures and
// malformed responses surface as a failed Result, never an error the
// caller could mistake for a pass.
func (v *Verifier) Verify(ctx context.Context, token, remoteIP string) Result {
	if token == "" {
		return Result{Success: false, Error: "Missing Turnstile token"}
	}

	if v.secret == "" {
		if v.policy == FailOpen {
			log.Printf("[TURNSTILE] no secret configured; verification skipped (development mode)")
			return Result{Success: true}
		}
		log.Printf("[TURNSTILE] no secret configured; failing closed")
		return Result{Success: false, Error: "Server configuration error"}
	}

	form := url.Values{}
	form.Set("secret", v.secret)
	form.Set("response", token)
	if remoteIP != "" {
		form.Set("remoteip", remoteIP)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.verifyURL, strings.NewReader(form.Encode()))
	if err != nil {
		return Result{Success: false, Error: "Security verification unavailable"}
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := v.client.Do(req)
	if err != nil {
		log.Printf("[TURNSTILE] verification request failed: %v", err)
		return Result{Success: false, Error: "Security verification unavailable"}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Printf("[TURNSTILE] reading verification response failed: %v", err)
		return Result{Success: false, Error: "Security verification unavailable"}
	}

	var data siteverifyResponse
	if err := json.Unmarshal(body, &data); err != nil {
		log.Printf("[TURNSTILE] malformed verification response: %v", err)
		return Result{Success: false, Error: "Security verification unavailable"}
	}

	if !data.Success {
		log.Printf("[TURNSTILE] verification failed: %v", data.ErrorCodes)
		return Result{Success: false, Error: "Security verification failed. Please try again."}
	}
	return Result{Success: true}
}

// String implements fmt.Stringer for startup logging.
func (p Policy) String() string {
	switch p {
	case FailOpen:
		return "fail-open"
	case FailClosed:
		return "fail-closed"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}
