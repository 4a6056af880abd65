package cmd

import (
	"os/signal"
	"syscall"
	"time"

	"github.com/smazurov/nucledctl/internal/led"
	"github.com/spf13/cobra"
)

// CreateNotifyCmd creates the notify command.
func CreateNotifyCmd(opts *Options) *cobra.Command {
	var (
		brightness int
		colorName  string
		effectName string
		duration   time.Duration
	)

	cmd := &cobra.Command{
		Use:   "notify",
		Short: "Change the led settings for a duration, then restore them",
		Long: `Temporarily applies the given brightness, color and/or effect, waits for ` +
			`the duration, and restores the previous settings. The previous settings are ` +
			`restored even when the wait is interrupted by SIGINT or SIGTERM.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			t, err := opts.target()
			if err != nil {
				return err
			}

			var n led.Notification
			if cmd.Flags().Changed("brightness") {
				n.Brightness = &brightness
			}
			if colorName != "" {
				color, err := led.ParseColor(t, colorName)
				if err != nil {
					return err
				}
				n.Color = &color
			}
			if effectName != "" {
				effect, err := led.ParseEffect(effectName)
				if err != nil {
					return err
				}
				n.Effect = &effect
			}

			// Restore must still run when the wait is interrupted.
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return led.Notify(ctx, t, n, duration, opts.ledOptions()...)
		},
	}

	cmd.Flags().IntVar(&brightness, "brightness", 0, "Temporary brightness [0,100]")
	cmd.Flags().StringVar(&colorName, "color", "", "Temporary color")
	cmd.Flags().StringVar(&effectName, "effect", "", "Temporary effect")
	cmd.Flags().DurationVar(&duration, "duration", 0, "How long to hold the temporary settings")
	_ = cmd.MarkFlagRequired("duration")

	return cmd
}
