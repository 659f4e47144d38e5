package mailer

import (
	"context"

	"github.com/karrieremum/adminsvc/pkg/slogx"
)

// LogMailer writes the rendered invite to the log instead of sending it.
// Used in development and in the e2e environment.
type LogMailer struct{}

func NewLogMailer() *LogMailer { return &LogMailer{} }

func (l *LogMailer) SendInvite(ctx context.Context, inv Invite) error {
	slogx.FromContext(ctx).Info("invite mail (log driver)",
		"to", inv.Email,
		"subject", Subject(inv),
		"link", inv.Link,
	)
	return nil
}
