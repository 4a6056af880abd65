package cmd

import (
	"github.com/smazurov/nucledctl/internal/led"
	"github.com/spf13/cobra"
)

// CreateRawCmd creates the raw command.
func CreateRawCmd(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "raw <line>",
		Short: "Write a raw control string, useful for testing",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			t, err := opts.target()
			if err != nil {
				return err
			}
			return led.NewHandle(t, opts.Device).WriteRaw(args[0])
		},
	}
}
