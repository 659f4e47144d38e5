package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Message keys used by the admin handlers and the invite mailer.
const (
	KeyInvalidEmail      = "invite.invalid_email"
	KeyUserAlreadyExists = "invite.user_already_exists"
	KeyInviteSent        = "invite.sent"
	KeyInviteSendFailed  = "invite.send_failed"
	KeyUsersListFailed   = "users.list_failed"
	KeyInviteSubject     = "mail.invite.subject"
)

func init() {
	entries := []struct {
		tag language.Tag
		key string
		msg string
	}{
		{language.English, KeyInvalidEmail, "Invalid email address"},
		{language.English, KeyUserAlreadyExists, "A user with this email already exists"},
		{language.English, KeyInviteSent, "Invitation sent successfully"},
		{language.English, KeyInviteSendFailed, "Error sending the invitation"},
		{language.English, KeyUsersListFailed, "Error loading users"},
		{language.English, KeyInviteSubject, "Invitation to %s"},

		{language.German, KeyInvalidEmail, "Ungültige E-Mail-Adresse"},
		{language.German, KeyUserAlreadyExists, "Ein Benutzer mit dieser E-Mail existiert bereits"},
		{language.German, KeyInviteSent, "Einladung erfolgreich gesendet"},
		{language.German, KeyInviteSendFailed, "Fehler beim Senden der Einladung"},
		{language.German, KeyUsersListFailed, "Fehler beim Laden der Benutzer"},
		{language.German, KeyInviteSubject, "Einladung zu %s"},
	}

	for _, e := range entries {
		if err := message.SetString(e.tag, e.key, e.msg); err != nil {
			panic(err)
		}
	}
}

// T renders the message for key in the given locale. Arguments are applied
// printf-style where the catalog entry carries verbs.
func T(tag language.Tag, key string, args ...any) string {
	return Printer(tag).Sprintf(key, args...)
}
