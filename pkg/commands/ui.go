package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/eventscout/pkg/commands/options"
	"tableflip.dev/eventscout/pkg/store"
	"tableflip.dev/eventscout/pkg/tui/dashboard"
)

func addUI(topLevel *cobra.Command) {
	fo := &options.FilterOptions{}

	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the interactive review dashboard",
		Example: `
eventscout ui
eventscout ui --status new
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := loadEnvironment()
			if err != nil {
				return err
			}
			if env.Session.Token() == "" {
				return errors.New("not signed in (run 'eventscout login')")
			}
			if err := env.Session.Verify(context.Background(), env.Client); err != nil {
				return err
			}

			q, err := fo.Query(env.Config.City())
			if err != nil {
				return err
			}
			q.Limit = env.Config.Limit()

			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			var opts []dashboard.Option
			if ch, err := store.WatchToken(ctx, env.Config); err == nil {
				opts = append(opts, dashboard.WithSessionEvents(ch))
			}

			return dashboard.Run(env.Client, q, env.Session.User().Name, opts...)
		},
	}

	options.AddFilterArgs(cmd, fo)

	topLevel.AddCommand(cmd)
}
