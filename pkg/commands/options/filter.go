package options

import (
	"fmt"

	"github.com/spf13/cobra"

	"tableflip.dev/eventscout/pkg/api"
)

// FilterOptions captures the dashboard listing filters.
type FilterOptions struct {
	City    string
	Keyword string
	From    string
	To      string
	Status  string
}

// AddFilterArgs wires filter flags on the provided command.
func AddFilterArgs(cmd *cobra.Command, o *FilterOptions) {
	cmd.Flags().StringVarP(&o.City, "city", "c", "",
		"Filter by city. Defaults to the configured city; use --city=all for every city.")
	cmd.Flags().StringVarP(&o.Keyword, "keyword", "q", "",
		"Search title, description and venue.")
	cmd.Flags().StringVar(&o.From, "from", "",
		`Earliest event date, example: --from="2026-9-1" or --from="9/1".`)
	cmd.Flags().StringVar(&o.To, "to", "",
		`Latest event date, same formats as --from.`)
	cmd.Flags().StringVarP(&o.Status, "status", "s", "",
		"Filter by review status: new, updated, unchanged, inactive or imported.")
}

// Query resolves the flags into an API query. defaultCity fills in when no
// --city was given; --city=all clears it.
func (o *FilterOptions) Query(defaultCity string) (api.Query, error) {
	q := api.Query{Keyword: o.Keyword}

	switch o.City {
	case "":
		q.City = defaultCity
	case "all":
		q.City = ""
	default:
		q.City = o.City
	}

	if o.Status != "" {
		s := api.Status(o.Status)
		known := false
		for _, candidate := range api.Statuses() {
			if s == candidate {
				known = true
				break
			}
		}
		if !known {
			return q, fmt.Errorf("unknown status %q", o.Status)
		}
		q.Status = s
	}

	var err error
	if q.StartDate, err = ParseDay(o.From); err != nil {
		return q, fmt.Errorf("bad --from date: %w", err)
	}
	if q.EndDate, err = ParseDay(o.To); err != nil {
		return q, fmt.Errorf("bad --to date: %w", err)
	}
	return q, nil
}
