package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/eventscout/pkg/commands/options"
	"tableflip.dev/eventscout/pkg/runner/events"
)

func addEvents(topLevel *cobra.Command) {
	fo := &options.FilterOptions{}
	po := &options.PageOptions{}
	io := &options.IDOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "events",
		Short: "list a page of the review dashboard",
		Example: `
eventscout events
eventscout events --status new --page 2
eventscout events --city all -q jazz --from 2026-9-1
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := loadEnvironment()
			if err != nil {
				return err
			}
			q, err := fo.Query(env.Config.City())
			if err != nil {
				return err
			}
			q.Page = po.Page
			q.Limit = po.Limit
			if q.Limit == 0 {
				q.Limit = env.Config.Limit()
			}
			s := events.Events{
				Client: env.Client,
				Query:  q,
				ShowID: io.ShowID,
				JSON:   oo.JSON,
			}
			return oo.HandleError(s.Do(context.Background()))
		},
	}

	options.AddFilterArgs(cmd, fo)
	options.AddPageArgs(cmd, po)
	options.AddShowIDArgs(cmd, io)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
