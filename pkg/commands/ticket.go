package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/eventscout/pkg/runner/ticket"
)

func addTicket(topLevel *cobra.Command) {
	s := ticket.Ticket{}

	cmd := &cobra.Command{
		Use:   "ticket <event id>",
		Short: "request ticket updates for an event",
		Example: `
eventscout ticket 68c1f2a9d4 --email ada@example.com --consent
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires an event id")
			}
			s.EventID = args[0]
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := loadEnvironment()
			if err != nil {
				return err
			}
			s.Client = env.Client
			return s.Do(context.Background())
		},
	}

	cmd.Flags().StringVarP(&s.Email, "email", "e", "", "Email address to receive updates.")
	cmd.Flags().BoolVar(&s.Consent, "consent", false, "Agree to receive event updates by email.")
	cmd.Flags().StringVar(&s.EventTitle, "title", "", "Event title to record with the request.")
	cmd.Flags().StringVar(&s.EventURL, "url", "", "Ticketing URL to record with the request.")

	topLevel.AddCommand(cmd)
}
