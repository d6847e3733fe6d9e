package cli

import (
	"github.com/spf13/cobra"

	"github.com/sweeplabs/sweep-bridging/app"
)

var (
	runCMD = &cobra.Command{
		Use:   "run",
		Short: "Run the bridge aggregation service",
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Run()
		},
	}
)
