// Package ticket submits a ticket-request capture for an event.
package ticket

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/fatih/color"

	"tableflip.dev/eventscout/pkg/api"
)

// Ticket is the fire-and-forget ticket-request submission.
type Ticket struct {
	Client     *api.Client
	Email      string
	Consent    bool
	EventID    string
	EventTitle string
	EventURL   string
}

// Do validates locally, then submits. Validation failures never reach the
// network.
func (n *Ticket) Do(ctx context.Context) error {
	if n.Client == nil {
		return errors.New("can not request tickets, no client")
	}

	email := strings.TrimSpace(n.Email)
	if email == "" || !strings.Contains(email, "@") {
		return errors.New("please enter a valid email address")
	}
	if !n.Consent {
		return errors.New("please agree to receive event updates (--consent)")
	}
	if n.EventID == "" {
		return errors.New("event id required")
	}

	err := n.Client.RequestTickets(ctx, api.TicketRequest{
		Email:      email,
		Consent:    n.Consent,
		EventID:    n.EventID,
		EventTitle: n.EventTitle,
		EventURL:   n.EventURL,
	})
	if err != nil {
		var apiErr *api.Error
		if errors.As(err, &apiErr) {
			return fmt.Errorf("failed to submit request: %s", apiErr.Message)
		}
		return fmt.Errorf("failed to submit request: %w", err)
	}

	fmt.Fprintln(color.Output, "Request submitted. Check your inbox for updates.")
	if n.EventURL != "" {
		f := color.New(color.Faint)
		_, _ = f.Fprintf(color.Output, "Tickets: %s\n", n.EventURL)
	}
	return nil
}
