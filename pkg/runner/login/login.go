// Package login implements the sign-in flow for the dashboard.
package login

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"tableflip.dev/eventscout/pkg/api"
	"tableflip.dev/eventscout/pkg/session"
)

// Login exchanges a callback token for a verified session. With no token it
// prints the OAuth entry URL and reads the pasted token from In.
type Login struct {
	Token   string
	Client  *api.Client
	Session *session.Store
	In      io.Reader
}

// Do runs the login flow.
func (n *Login) Do(ctx context.Context) error {
	if n.Session == nil || n.Client == nil {
		return errors.New("can not login, no session")
	}

	token := strings.TrimSpace(n.Token)
	if token == "" {
		fmt.Fprintln(color.Output, "Open this URL in a browser and sign in with Google:")
		fmt.Fprintln(color.Output, "")
		fmt.Fprintf(color.Output, "  %s\n\n", n.Client.GoogleLoginURL())
		fmt.Fprint(color.Output, "Paste the token from the /auth/callback?token=... redirect: ")

		line, err := bufio.NewReader(n.In).ReadString('\n')
		if err != nil && line == "" {
			return fmt.Errorf("read token: %w", err)
		}
		token = strings.TrimSpace(line)
	}

	// a botched redirect hands us stringified nils
	if token == "" || token == "null" || token == "undefined" {
		return errors.New("invalid or missing token in callback")
	}

	n.Session.Login(token)
	if err := n.Session.Verify(ctx, n.Client); err != nil {
		return err
	}

	user := n.Session.User()
	fmt.Fprintf(color.Output, "Welcome, %s\n", user.Name)
	return nil
}
