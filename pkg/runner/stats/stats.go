// Package stats prints the dashboard aggregate counts.
package stats

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/fatih/color"

	"tableflip.dev/eventscout/pkg/api"
	"tableflip.dev/eventscout/pkg/printers"
)

// Stats fetches the by-status aggregate for a city. Other filters are not
// part of the stats contract.
type Stats struct {
	Client *api.Client
	City   string
	JSON   bool
}

// Do fetches and prints the aggregate.
func (n *Stats) Do(ctx context.Context) error {
	if n.Client == nil {
		return errors.New("can not fetch stats, no client")
	}

	s, err := n.Client.DashboardStats(ctx, api.Query{City: n.City})
	if err != nil {
		var apiErr *api.Error
		if errors.As(err, &apiErr) && apiErr.Status == 401 {
			return errors.New("not signed in (run 'eventscout login')")
		}
		return err
	}

	if n.JSON {
		b, err := json.Marshal(s)
		if err != nil {
			return err
		}
		fmt.Fprintln(color.Output, string(b))
		return nil
	}

	pp := printers.PrettyPrint{}
	pp.NewLine()
	title := "Event stats"
	if n.City != "" {
		title = "Event stats - " + n.City
	}
	pp.Title(title)
	pp.NewLine()
	pp.Stats(s)
	return nil
}
