package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/eventscout/pkg/runner/logout"
)

func addLogout(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "logout",
		Short: "sign out and forget the stored token",
		Example: `
eventscout logout
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := loadEnvironment()
			if err != nil {
				return err
			}
			s := logout.Logout{Session: env.Session}
			return s.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
