// Package importevent promotes a scraped candidate onto the platform.
package importevent

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"

	"tableflip.dev/eventscout/pkg/api"
	"tableflip.dev/eventscout/pkg/printers"
)

// Import runs the import mutation for one event. Confirm is consulted before
// anything is sent; declining aborts with no side effect.
type Import struct {
	Client  *api.Client
	ID      string
	Query   api.Query
	Confirm func(e api.EventRecord) bool
}

// Do locates the event, checks it is still importable, confirms, imports,
// and prints the refreshed record.
func (n *Import) Do(ctx context.Context) error {
	if n.Client == nil {
		return errors.New("can not import, no client")
	}
	if n.ID == "" {
		return errors.New("event id required")
	}

	record, err := n.find(ctx, n.ID)
	if err != nil {
		return err
	}
	if !record.Importable() {
		return fmt.Errorf("event %q is already imported", record.Title)
	}

	if n.Confirm != nil && !n.Confirm(*record) {
		fmt.Fprintln(color.Output, "Import cancelled")
		return nil
	}

	if err := n.Client.ImportEvent(ctx, n.ID); err != nil {
		var apiErr *api.Error
		if errors.As(err, &apiErr) {
			return fmt.Errorf("failed to import event: %s", apiErr.Message)
		}
		return fmt.Errorf("failed to import event: %w", err)
	}

	fmt.Fprintln(color.Output, "Event imported")

	// re-read so the printed status is the server's, not our guess
	refreshed, err := n.find(ctx, n.ID)
	if err != nil {
		return nil
	}
	pp := printers.PrettyPrint{ShowID: true}
	pp.NewLine()
	pp.Events(*refreshed)
	return nil
}

// find walks the listing pages under the current filters until the id shows
// up. The backend has no single-event read, so this mirrors how the web
// dashboard only ever imports records it has listed.
func (n *Import) find(ctx context.Context, id string) (*api.EventRecord, error) {
	q := n.Query.Normalize()
	for {
		events, page, err := n.Client.DashboardEvents(ctx, q)
		if err != nil {
			var apiErr *api.Error
			if errors.As(err, &apiErr) && apiErr.Status == 401 {
				return nil, errors.New("not signed in (run 'eventscout login')")
			}
			return nil, err
		}
		for i := range events {
			if events[i].ID == id {
				return &events[i], nil
			}
		}
		if q.Page >= page.Pages || page.Pages == 0 {
			return nil, fmt.Errorf("event %s not found under the current filters", id)
		}
		q.Page++
	}
}
