package cmd

import (
	"fmt"

	"github.com/smazurov/nucledctl/internal/led"
	"github.com/spf13/cobra"
)

// CreateEffectCmd creates the effect command.
func CreateEffectCmd(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "effect [name]",
		Short: "Get or set blink/fade effect",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			t, err := opts.target()
			if err != nil {
				return err
			}

			if len(args) == 0 {
				s, err := led.Open(t, opts.ledOptions()...)
				if err != nil {
					return err
				}
				fmt.Printf("Effect: %s\n", s.Effect())
				fmt.Println("Available effects:")
				for _, e := range led.Effects() {
					fmt.Printf("- %s\n", e)
				}
				return nil
			}

			effect, err := led.ParseEffect(args[0])
			if err != nil {
				return err
			}
			return led.Do(t, func(s *led.Session) error {
				return s.SetEffect(effect)
			}, opts.ledOptions()...)
		},
	}
}
