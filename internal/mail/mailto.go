// Package mail exposes the report over email: a prefilled mailto link
// (subject and body only, no attachment) and an optional SMTP delivery.
package mail

import (
	"net/url"
	"strings"
)

// MailtoLink builds a mailto URL prefilled with subject and body. Spaces are
// percent-encoded; mail clients do not accept the '+' form.
func MailtoLink(recipient, subject, body string) string {
	params := url.Values{}
	params.Set("subject", subject)
	params.Set("body", body)
	query := strings.ReplaceAll(params.Encode(), "+", "%20")
	return "mailto:" + recipient + "?" + query
}
