// Package events implements the one-shot dashboard listing.
package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/fatih/color"

	"tableflip.dev/eventscout/pkg/api"
	"tableflip.dev/eventscout/pkg/printers"
)

// Events fetches a single page of the dashboard listing.
type Events struct {
	Client *api.Client
	Query  api.Query
	ShowID bool
	JSON   bool
}

// Do fetches and prints the page described by Query.
func (n *Events) Do(ctx context.Context) error {
	if n.Client == nil {
		return errors.New("can not list events, no client")
	}

	list, page, err := n.Client.DashboardEvents(ctx, n.Query)
	if err != nil {
		return describeAuth(err)
	}

	if n.JSON {
		out := struct {
			Events     []api.EventRecord `json:"events"`
			Pagination api.Pagination    `json:"pagination"`
		}{Events: list, Pagination: page}
		b, err := json.Marshal(out)
		if err != nil {
			return err
		}
		fmt.Fprintln(color.Output, string(b))
		return nil
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.NewLine()
	pp.TitleWithCount("Events", page.Total)
	pp.NewLine()
	pp.Events(list...)

	if page.Pages > 1 {
		f := color.New(color.Faint)
		_, _ = f.Fprintf(color.Output, "Page %d of %d\n", page.Page, page.Pages)
	}
	return nil
}

// describeAuth turns a 401 into a sign-in hint; everything else passes through.
func describeAuth(err error) error {
	var apiErr *api.Error
	if errors.As(err, &apiErr) && apiErr.Status == 401 {
		return errors.New("not signed in (run 'eventscout login')")
	}
	return err
}
