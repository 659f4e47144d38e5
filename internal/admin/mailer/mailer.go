// Package mailer delivers transactional mail for the admin surface. The SMTP
// implementation is the production driver; the log driver exists for local
// development and tests.
package mailer

import (
	"context"

	"golang.org/x/text/language"
)

// Invite carries everything needed to render and deliver an invitation email.
type Invite struct {
	Email   string // recipient address
	Name    string // recipient display name, may be empty
	AppName string
	Link    string // registration link carrying the invite token
	Year    int    // copyright year in the footer
	Locale  language.Tag
}

// Mailer sends invitation emails.
type Mailer interface {
	SendInvite(ctx context.Context, inv Invite) error
}
