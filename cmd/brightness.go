package cmd

import (
	"fmt"
	"strconv"

	"github.com/smazurov/nucledctl/internal/led"
	"github.com/spf13/cobra"
)

// CreateBrightnessCmd creates the brightness command.
func CreateBrightnessCmd(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "brightness [value]",
		Short: "Get or set brightness [0,100]",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if len(args) == 0 {
				s, err := openSession(opts)
				if err != nil {
					return err
				}
				fmt.Printf("Brightness: %d\n", s.Brightness())
				return nil
			}

			value, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("brightness must be an integer, was %q", args[0])
			}

			t, err := opts.target()
			if err != nil {
				return err
			}
			if err := led.Do(t, func(s *led.Session) error {
				return s.SetBrightness(value)
			}, opts.ledOptions()...); err != nil {
				return err
			}

			fmt.Printf("Brightness: %d\n", value)
			return nil
		},
	}
}
