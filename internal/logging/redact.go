// ReelMatch - Similar Movie Recommendations with Poster Lookup
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package logging

import (
	"net/url"
	"strings"
)

const redacted = "REDACTED"

// secretParams are query parameters whose values never reach the logs.
var secretParams = []string{"api_key", "apikey", "token", "access_token"}

// RedactURL returns rawURL with secret query values replaced.
// Unparseable input is replaced entirely.
func RedactURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return redacted
	}

	q := u.Query()
	changed := false
	for key := range q {
		for _, p := range secretParams {
			if strings.EqualFold(key, p) {
				q.Set(key, redacted)
				changed = true
			}
		}
	}
	if changed {
		u.RawQuery = q.Encode()
	}
	return u.String()
}

// RedactSecret shows at most the last 4 characters of a credential.
//
//	RedactSecret("7b995d3c6fd9") // "********6fd9"
func RedactSecret(s string) string {
	if s == "" {
		return ""
	}
	if len(s) <= 8 {
		return strings.Repeat("*", len(s))
	}
	return strings.Repeat("*", len(s)-4) + s[len(s)-4:]
}

// RedactError scrubs secret query values from an error string, which net/http
// embeds in *url.Error messages.
func RedactError(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	for _, p := range secretParams {
		msg = scrubParam(msg, p+"=")
	}
	return msg
}

func scrubParam(msg, prefix string) string {
	var b strings.Builder
	for {
		i := strings.Index(msg, prefix)
		if i < 0 {
			b.WriteString(msg)
			return b.String()
		}
		b.WriteString(msg[:i+len(prefix)])
		b.WriteString(redacted)
		rest := msg[i+len(prefix):]
		end := strings.IndexAny(rest, "&\" ")
		if end < 0 {
			return b.String()
		}
		msg = rest[end:]
	}
}
