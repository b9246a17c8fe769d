// Package logout clears the persisted session.
package logout

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"

	"tableflip.dev/eventscout/pkg/session"
)

// Logout clears the credential and in-memory session state.
type Logout struct {
	Session *session.Store
}

// Do signs the user out. Safe to run when already signed out.
func (n *Logout) Do(ctx context.Context) error {
	if n.Session == nil {
		return errors.New("can not logout, no session")
	}
	n.Session.Logout()
	fmt.Fprintln(color.Output, "Signed out")
	return nil
}
