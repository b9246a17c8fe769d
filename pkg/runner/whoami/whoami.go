// Package whoami verifies the session and prints the identity.
package whoami

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/fatih/color"

	"tableflip.dev/eventscout/pkg/api"
	"tableflip.dev/eventscout/pkg/printers"
	"tableflip.dev/eventscout/pkg/session"
)

// WhoAmI re-verifies the stored token against the identity endpoint.
type WhoAmI struct {
	Client  *api.Client
	Session *session.Store
	JSON    bool
}

// Do prints the verified profile, or fails if the session is anonymous.
func (n *WhoAmI) Do(ctx context.Context) error {
	if n.Session == nil || n.Client == nil {
		return errors.New("can not check identity, no session")
	}
	if n.Session.Token() == "" {
		return errors.New("not signed in (run 'eventscout login')")
	}
	if err := n.Session.Verify(ctx, n.Client); err != nil {
		return err
	}

	user := n.Session.User()
	if n.JSON {
		b, err := json.Marshal(user)
		if err != nil {
			return err
		}
		fmt.Fprintln(color.Output, string(b))
		return nil
	}

	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.Profile(user)
	return nil
}
