// Package feed loads the public, unauthenticated event list.
package feed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/fatih/color"

	"tableflip.dev/eventscout/pkg/api"
	"tableflip.dev/eventscout/pkg/printers"
)

// Feed fetches the public feed once and prints it. No filters, no paging.
type Feed struct {
	Client *api.Client
	JSON   bool
}

// Do loads and renders the feed. A transport or server failure is an error;
// a successful call with zero events is not, and gets the unseeded-database
// hint instead.
func (n *Feed) Do(ctx context.Context) error {
	if n.Client == nil {
		return errors.New("can not load feed, no client")
	}

	events, err := n.Client.PublicEvents(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch events: %w", err)
	}

	if n.JSON {
		b, err := json.Marshal(events)
		if err != nil {
			return err
		}
		fmt.Fprintln(color.Output, string(b))
		return nil
	}

	pp := printers.PrettyPrint{}
	pp.NewLine()

	if len(events) == 0 {
		f := color.New(color.Faint)
		fmt.Fprintln(color.Output, "No events found. The database might be empty.")
		_, _ = f.Fprintln(color.Output, "Try running the scraper first: POST /api/scrape/all")
		return nil
	}

	pp.TitleWithCount("Upcoming events", len(events))
	pp.NewLine()
	for _, e := range events {
		pp.Card(e)
	}
	return nil
}
