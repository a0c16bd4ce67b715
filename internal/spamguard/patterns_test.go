package spamguard

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuspiciousLocalPart(t *testing.T) {
	testCases := []struct {
		name  string
		local string
		spam  bool
	}{
		{"plain name", "john.doe", false},
		{"name with digits", "jane42", false},
		{"numeric only", "12345678", true},
		{"single char", "a", true},
		{"two chars", "ab", true},
		{"three chars pass", "bob", false},
		{"home row mash", "asdfgh", true},
		{"top row mash", "qwerty", true},
		{"bottom row mash", "zxcvbn", true},
		{"repeated char", "aaaaa", true},
		{"repeated char short", "aaaa", false},
		{"letters then digit run", "ab123456", true},
		{"letters then short digit run", "ab12345", false},
		{"three letters then digits pass", "abc123456", false},
		{"uppercase normalized", "QWERTY", true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			spam, _ := suspiciousLocalPart(tc.local, defaultPatterns)
			assert.Equal(t, tc.spam, spam)
		})
	}
}

func TestIsDisposableEmail(t *testing.T) {
	testCases := []struct {
		name       string
		email      string
		disposable bool
	}{
		{"listed domain", "user@mailinator.com", true},
		{"case insensitive", "USER@TempMail.COM", true},
		{"regular provider", "user@gmail.com", false},
		{"subdomain of listed domain is not matched", "user@sub.mailinator.com", false},
		{"no domain", "user@", false},
		{"no at sign", "userexample.com", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.disposable, isDisposableEmail(tc.email))
		})
	}
}
