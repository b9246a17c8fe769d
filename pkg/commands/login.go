package commands

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"tableflip.dev/eventscout/pkg/runner/login"
)

func addLogin(topLevel *cobra.Command) {
	var token string

	cmd := &cobra.Command{
		Use:   "login [token]",
		Short: "sign in with a Google OAuth callback token",
		Long: `Sign in to the dashboard.

With no arguments, prints the Google sign-in URL and waits for the token
from the /auth/callback redirect to be pasted back. The token can also be
passed directly as an argument or with --token.`,
		Example: `
eventscout login
eventscout login eyJhbGciOi...
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) > 0 && token == "" {
				token = args[0]
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := loadEnvironment()
			if err != nil {
				return err
			}
			s := login.Login{
				Token:   token,
				Client:  env.Client,
				Session: env.Session,
				In:      os.Stdin,
			}
			return s.Do(context.Background())
		},
	}

	cmd.Flags().StringVar(&token, "token", "", "Token from the /auth/callback redirect.")

	topLevel.AddCommand(cmd)
}
