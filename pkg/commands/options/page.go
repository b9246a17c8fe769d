package options

import (
	"github.com/spf13/cobra"
)

// PageOptions
type PageOptions struct {
	Page  int
	Limit int
}

func AddPageArgs(cmd *cobra.Command, o *PageOptions) {
	cmd.Flags().IntVarP(&o.Page, "page", "p", 1,
		"Page of results to fetch.")
	cmd.Flags().IntVar(&o.Limit, "limit", 0,
		"Results per page. Defaults to the configured limit.")
}
