package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "eventscout",
		Short: base.Wrap80("Browse, review and import scraped events from the EventInfo dashboard."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addLogin(topLevel)
	addLogout(topLevel)
	addWhoAmI(topLevel)
	addFeed(topLevel)
	addEvents(topLevel)
	addStats(topLevel)
	addImport(topLevel)
	addTicket(topLevel)
	addVersion(topLevel)
	addCompletions(topLevel)
}
