package cmd

import "github.com/spf13/cobra"

// CreateStatusCmd creates the status command.
func CreateStatusCmd(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Print current values for the led",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runStatus(opts)
		},
	}
}
