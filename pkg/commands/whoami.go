package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/eventscout/pkg/commands/options"
	"tableflip.dev/eventscout/pkg/runner/whoami"
)

func addWhoAmI(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "whoami",
		Short: "verify the stored session and print who is signed in",
		Example: `
eventscout whoami
eventscout whoami --json
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := loadEnvironment()
			if err != nil {
				return err
			}
			s := whoami.WhoAmI{
				Client:  env.Client,
				Session: env.Session,
				JSON:    oo.JSON,
			}
			return oo.HandleError(s.Do(context.Background()))
		},
	}

	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
