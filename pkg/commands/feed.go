package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/eventscout/pkg/commands/options"
	"tableflip.dev/eventscout/pkg/runner/feed"
)

func addFeed(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "feed",
		Short: "print the public event feed, no sign-in required",
		Example: `
eventscout feed
eventscout feed --json
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := loadEnvironment()
			if err != nil {
				return err
			}
			s := feed.Feed{
				Client: env.Client,
				JSON:   oo.JSON,
			}
			return oo.HandleError(s.Do(context.Background()))
		},
	}

	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
