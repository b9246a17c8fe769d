package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"tableflip.dev/eventscout/pkg/api"
	"tableflip.dev/eventscout/pkg/commands/options"
	"tableflip.dev/eventscout/pkg/printers"
	"tableflip.dev/eventscout/pkg/runner/importevent"
)

func addImport(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	fo := &options.FilterOptions{}
	yes := false

	cmd := &cobra.Command{
		Use:   "import <event id>",
		Short: "import a scraped event onto the platform",
		Long: `Import one scraped event onto the platform.

The event is looked up in the dashboard listing, shown for confirmation,
and imported. Already-imported events are rejected before anything is
sent.`,
		Example: `
eventscout import 68c1f2a9d4
eventscout import 68c1f2a9d4 --yes
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires an event id")
			}
			io.ID = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := loadEnvironment()
			if err != nil {
				return err
			}
			q, err := fo.Query(env.Config.City())
			if err != nil {
				return err
			}
			q.Limit = env.Config.Limit()

			s := importevent.Import{
				Client: env.Client,
				ID:     io.ID,
				Query:  q,
			}
			if !yes {
				s.Confirm = confirmImport
			}
			return s.Do(context.Background())
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt.")
	options.AddFilterArgs(cmd, fo)

	topLevel.AddCommand(cmd)
}

func confirmImport(e api.EventRecord) bool {
	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.Card(e)

	prompt := promptui.Prompt{
		Label:     "Import this event to the platform",
		IsConfirm: true,
	}
	// promptui returns an error for anything but an explicit yes
	_, err := prompt.Run()
	return err == nil
}
