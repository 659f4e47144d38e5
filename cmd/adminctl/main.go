// Command adminctl is a small CLI over the admin service API. It is the
// terminal counterpart of the admin panel: list users, send invites.
//
//	adminctl -addr http://localhost:8080 -token $TOKEN users
//	adminctl -addr http://localhost:8080 -token $TOKEN invite -email neu@example.com -name Maria
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/karrieremum/adminsvc/pkg/adminsdk"
)

func main() {
	var (
		addr   = flag.String("addr", envOrDefault("ADMIN_ADDR", "http://localhost:8080"), "base URL of the admin service")
		token  = flag.String("token", os.Getenv("ADMIN_TOKEN"), "access token (defaults to $ADMIN_TOKEN)")
		locale = flag.String("locale", "", "locale for service messages (de, en)")
	)
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() < 1 {
		usage()
		os.Exit(2)
	}
	if *token == "" {
		fmt.Fprintln(os.Stderr, "error: access token required (-token or $ADMIN_TOKEN)")
		os.Exit(2)
	}

	client := adminsdk.NewSDKClient(*addr)
	client.Locale = *locale
	session := client.NewSession(*token)

	ctx := context.Background()

	var err error
	switch flag.Arg(0) {
	case "users":
		err = runUsers(ctx, session)
	case "invite":
		err = runInvite(ctx, session, flag.Args()[1:])
	default:
		fmt.Fprintf(os.Stderr, "error: unknown command %q\n\n", flag.Arg(0))
		usage()
		os.Exit(2)
	}

	if err != nil {
		// Prefer the server's localized message when we have one
		var apiErr *adminsdk.APIError
		if errors.As(err, &apiErr) {
			fmt.Fprintln(os.Stderr, "error:", apiErr.Message)
		} else {
			fmt.Fprintln(os.Stderr, "error:", err)
		}
		os.Exit(1)
	}
}

func runUsers(ctx context.Context, session *adminsdk.Session) error {
	users, err := session.Users(ctx)
	if err != nil {
		return err
	}
	return printUsers(users)
}

func printUsers(users []adminsdk.AdminUser) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tEMAIL\tNAME\tROLE\tCREATED")
	for _, u := range users {
		name := "—"
		if u.Name != nil && *u.Name != "" {
			name = *u.Name
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", u.ID, u.Email, name, u.Role, u.CreatedAt)
	}
	return w.Flush()
}

func runInvite(ctx context.Context, session *adminsdk.Session, args []string) error {
	fs := flag.NewFlagSet("invite", flag.ExitOnError)
	email := fs.String("email", "", "address to invite (required)")
	name := fs.String("name", "", "recipient display name")
	_ = fs.Parse(args)

	if *email == "" {
		fs.Usage()
		return errors.New("-email is required")
	}

	resp, err := session.InviteUser(ctx, adminsdk.InviteRequest{
		Email: *email,
		Name:  *name,
	})
	if err != nil {
		return err
	}

	fmt.Println(resp.Message)
	fmt.Println()

	// The mutation invalidated the cached list; show the fresh state.
	users, err := session.Users(ctx)
	if err != nil {
		return err
	}
	return printUsers(users)
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: adminctl [flags] <command>

Commands:
  users                     list registered users, newest first
  invite -email <addr>      send an email invitation

Flags:
`)
	flag.PrintDefaults()
}
