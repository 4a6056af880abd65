package cmd

import (
	"errors"
	"fmt"

	"github.com/smazurov/nucledctl/internal/config"
	"github.com/smazurov/nucledctl/internal/led"
	"github.com/smazurov/nucledctl/internal/logging"
	"github.com/spf13/cobra"
)

// Options for the CLI - flat structure with toml mapping.
type Options struct {
	Config string `help:"Path to configuration file"`

	// Device settings
	Device string `help:"LED control file path" toml:"device.path" env:"DEVICE_PATH"`
	Target string `help:"Default led target (ring, power)" toml:"device.target" env:"DEVICE_TARGET"`
	Ring   bool   `help:"Control the ring led"`
	Power  bool   `help:"Control the power led"`

	// Logging settings
	LoggingLevel  string `help:"Logging level (debug, info, warn, error)" toml:"logging.level" env:"LOGGING_LEVEL"`
	LoggingFormat string `help:"Logging format (text, json)" toml:"logging.format" env:"LOGGING_FORMAT"`
}

const defaultConfigPath = "/etc/nucledctl.toml"

// target resolves the LED target from the --ring/--power flags, falling back
// to the configured default.
func (o *Options) target() (led.Target, error) {
	if o.Ring && o.Power {
		return led.Ring, errors.New("specify only one of --ring and --power")
	}
	switch {
	case o.Power:
		return led.Power, nil
	case o.Ring:
		return led.Ring, nil
	case o.Target != "":
		return led.ParseTarget(o.Target)
	default:
		return led.Ring, nil
	}
}

// ledOptions returns the session options derived from the CLI flags.
func (o *Options) ledOptions() []led.Option {
	if o.Device == "" {
		return nil
	}
	return []led.Option{led.WithDevicePath(o.Device)}
}

// CreateRootCmd creates the nucledctl root command with all subcommands
// attached. Running it without a subcommand prints the LED status.
func CreateRootCmd() *cobra.Command {
	opts := &Options{}

	rootCmd := &cobra.Command{
		Use:   "nucledctl",
		Short: "Control the ring and power LEDs of Intel NUC computers",
		Long: `nucledctl reads and writes the control file exposed by the intel_nuc_led ` +
			`kernel module to inspect and change the brightness, color and blink/fade ` +
			`effect of the NUC front ring and power button LEDs.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := config.LoadConfig(opts, cmd.Root()); err != nil {
				return err
			}

			logCfg := config.LoadLoggingConfig(opts.Config)
			logCfg.Level = opts.LoggingLevel
			logCfg.Format = opts.LoggingFormat
			logging.Initialize(logCfg)
			return nil
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			return runStatus(opts)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&opts.Config, "config", "c", defaultConfigPath, "Path to configuration file")
	pf.StringVarP(&opts.Device, "device", "d", "", "LED control file path (default "+led.DefaultDevicePath+")")
	pf.BoolVar(&opts.Ring, "ring", false, "Control the ring led")
	pf.BoolVar(&opts.Power, "power", false, "Control the power led")
	pf.StringVar(&opts.LoggingLevel, "logging-level", "info", "Logging level (debug, info, warn, error)")
	pf.StringVar(&opts.LoggingFormat, "logging-format", "text", "Logging format (text, json)")

	rootCmd.AddCommand(
		CreateStatusCmd(opts),
		CreateBrightnessCmd(opts),
		CreateColorCmd(opts),
		CreateEffectCmd(opts),
		CreateNotifyCmd(opts),
		CreateRawCmd(opts),
		CreateVersionCmd(),
	)

	return rootCmd
}

// Execute runs the CLI. Errors have already been printed by cobra when this
// returns non-nil.
func Execute() error {
	return CreateRootCmd().Execute()
}

// openSession opens a session on the selected target.
func openSession(opts *Options) (*led.Session, error) {
	t, err := opts.target()
	if err != nil {
		return nil, err
	}
	return led.Open(t, opts.ledOptions()...)
}

func runStatus(opts *Options) error {
	s, err := openSession(opts)
	if err != nil {
		return err
	}

	fmt.Printf("== %s LED ==\n", s.Target())
	fmt.Printf("Brightness: %d\n", s.Brightness())
	fmt.Printf("Color: %s\n", s.Color())
	fmt.Printf("Effect: %s\n", s.Effect())
	return nil
}
