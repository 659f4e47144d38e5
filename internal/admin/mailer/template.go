package mailer

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/karrieremum/adminsvc/internal/admin/i18n"
	"golang.org/x/text/language"
)

// inviteHTML keeps the markup simple and inline-styled so it renders in the
// common webmail clients.
var inviteHTML = template.Must(template.New("invite").Parse(`<!doctype html>
<html>
  <body style="font-family:Arial,Helvetica,sans-serif; line-height:1.4;">
    <h2>{{.Heading}}</h2>
    <p>{{.Intro}}</p>

    <p>
      <a href="{{.Link}}" style="display:inline-block; padding:10px 14px; text-decoration:none; border-radius:6px; background:#111; color:#fff;">
        {{.Button}}
      </a>
    </p>

    <p style="color:#555; font-size:12px;">
      {{.LinkHint}}<br/>
      <a href="{{.Link}}">{{.Link}}</a>
    </p>

    <p style="color:#555; font-size:12px;">&copy; {{.Year}} {{.AppName}}</p>
  </body>
</html>`))

type inviteBody struct {
	Heading  string
	Intro    string
	Button   string
	Link     string
	LinkHint string
	Year     int
	AppName  string
}

// localized copy for the invite mail body. German first, English as source.
var inviteCopy = map[language.Tag]struct {
	heading  string
	intro    string
	introFor string // used when the recipient name is known, %s = name
	button   string
	linkHint string
}{
	language.German: {
		heading:  "Du wurdest eingeladen",
		intro:    "Du wurdest eingeladen, %s beizutreten. Klicke auf den Button, um dein Konto zu erstellen.",
		introFor: "Hallo %s, du wurdest eingeladen, %s beizutreten. Klicke auf den Button, um dein Konto zu erstellen.",
		button:   "Konto erstellen",
		linkHint: "Falls der Button nicht funktioniert, öffne diesen Link:",
	},
	language.English: {
		heading:  "You have been invited",
		intro:    "You have been invited to join %s. Click the button below to create your account.",
		introFor: "Hi %s, you have been invited to join %s. Click the button below to create your account.",
		button:   "Create account",
		linkHint: "If the button doesn't work, open this link:",
	},
}

// Subject returns the localized subject line for an invite.
func Subject(inv Invite) string {
	return i18n.T(locale(inv), i18n.KeyInviteSubject, inv.AppName)
}

// RenderText renders the plain-text alternative body.
func RenderText(inv Invite) string {
	c := inviteCopy[locale(inv)]

	var b strings.Builder
	fmt.Fprintln(&b, intro(c.intro, c.introFor, inv))
	fmt.Fprintln(&b)
	fmt.Fprintln(&b, inv.Link)
	fmt.Fprintln(&b)
	fmt.Fprintf(&b, "© %d %s\n", inv.Year, inv.AppName)
	return b.String()
}

// RenderHTML renders the HTML body.
func RenderHTML(inv Invite) (string, error) {
	c := inviteCopy[locale(inv)]

	var b strings.Builder
	err := inviteHTML.Execute(&b, inviteBody{
		Heading:  c.heading,
		Intro:    intro(c.intro, c.introFor, inv),
		Button:   c.button,
		Link:     inv.Link,
		LinkHint: c.linkHint,
		Year:     inv.Year,
		AppName:  inv.AppName,
	})
	if err != nil {
		return "", err
	}
	return b.String(), nil
}

func intro(plain, named string, inv Invite) string {
	if inv.Name != "" {
		return fmt.Sprintf(named, inv.Name, inv.AppName)
	}
	return fmt.Sprintf(plain, inv.AppName)
}

func locale(inv Invite) language.Tag {
	if _, ok := inviteCopy[inv.Locale]; ok {
		return inv.Locale
	}
	return i18n.Default()
}
