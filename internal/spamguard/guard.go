package spamguard

import (
	"fmt"
	"log"
	"math"
	"regexp"
	"strings"
)

// Decision is the outcome of the spam gate. Silent rejections must be
// answered with a fake success so automated clients learn nothing.
type Decision struct {
	Passed bool
	Reason string
	Silent bool
}

// Guard composes the layered checks: honeypot, per-IP rate limit,
// disposable-domain denylist, local-part heuristics. Checks short-circuit
// in that order.
type Guard struct {
	limiter  *RateLimiter
	patterns []*regexp.Regexp
}

// NewGuard builds a guard around the given limiter. A nil patterns slice
// selects the default heuristics.
func NewGuard(limiter *RateLimiter, patterns []*regexp.Regexp) *Guard {
	if patterns == nil {
		patterns = defaultPatterns
	}
	return &Guard{limiter: limiter, patterns: patterns}
}

// Check runs every layer against one submission. honeypot is the value of
// the hidden form field legitimate users never fill.
func (g *Guard) Check(email, ip, honeypot string) Decision {
	if strings.TrimSpace(honeypot) != "" {
		log.Printf("[SPAM] honeypot triggered from IP %s", ip)
		return Decision{Passed: false, Reason: "Bot detected", Silent: true}
	}

	if rl := g.limiter.Check(ip); !rl.Allowed {
		mins := int(math.Ceil(rl.ResetIn.Minutes()))
		if mins < 1 {
			mins = 1
		}
		plural := ""
		if mins > 1 {
			plural = "s"
		}
		return Decision{
			Passed: false,
			Reason: fmt.Sprintf("Too many requests. Please try again in %d minute%s.", mins, plural),
		}
	}

	if email == "" {
		// Missing email is a validation concern, not a spam signal.
		return Decision{Passed: true}
	}

	if isDisposableEmail(email) {
		return Decision{
			Passed: false,
			Reason: "Please use a permanent email address (temporary emails are not accepted).",
		}
	}

	local, _, _ := strings.Cut(email, "@")
	if spam, why := suspiciousLocalPart(local, g.patterns); spam {
		log.Printf("[SPAM] email pattern rejected (%s): %s", why, email)
		return Decision{
			Passed: false,
			Reason: "Please use a valid email address.",
		}
	}

	return Decision{Passed: true}
}
