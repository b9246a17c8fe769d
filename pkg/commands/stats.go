package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/eventscout/pkg/commands/options"
	"tableflip.dev/eventscout/pkg/runner/stats"
)

func addStats(topLevel *cobra.Command) {
	var city string
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "print event counts by review status",
		Long: `Print the total and per-status event counts for a city.

Stats are scoped by city only; keyword, date and status filters do not
apply to them.`,
		Example: `
eventscout stats
eventscout stats --city all
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := loadEnvironment()
			if err != nil {
				return err
			}
			switch city {
			case "":
				city = env.Config.City()
			case "all":
				city = ""
			}
			s := stats.Stats{
				Client: env.Client,
				City:   city,
				JSON:   oo.JSON,
			}
			return oo.HandleError(s.Do(context.Background()))
		},
	}

	cmd.Flags().StringVarP(&city, "city", "c", "",
		"City to count events for. Defaults to the configured city; use --city=all for every city.")
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
