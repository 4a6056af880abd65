package cmd

import (
	"fmt"

	"github.com/smazurov/nucledctl/internal/led"
	"github.com/spf13/cobra"
)

// CreateColorCmd creates the color command.
func CreateColorCmd(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "color [name]",
		Short: "Get or set color",
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
				fmt.Printf("Color: %s\n", s.Color())
				fmt.Println("Available colors:")
				for _, c := range t.SupportedColors() {
					fmt.Printf("- %s\n", c)
				}
				return nil
			}

			color, err := led.ParseColor(t, args[0])
			if err != nil {
				return err
			}
			return led.Do(t, func(s *led.Session) error {
				return s.SetColor(color)
			}, opts.ledOptions()...)
		},
	}
}
