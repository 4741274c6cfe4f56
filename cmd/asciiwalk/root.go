package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/aretw0/asciiwalk/internal/cli"
	"github.com/aretw0/asciiwalk/internal/config"
	"github.com/aretw0/asciiwalk/internal/presentation/tui"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "asciiwalk [files...]",
	Short: "Follow the path drawn on an ASCII map",
	Long: `asciiwalk walks the path on an ASCII map from '@' to 'x' and prints
the letters collected along the way and every character stepped on.

Maps are read from the given files, or from standard input when none are given.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		trace, _ := cmd.Flags().GetBool("trace")

		ctx := cli.NewSignalContext(cmd.Context())
		defer ctx.Cancel()

		err = cli.RunWalk(ctx, cfg, logger, cli.WalkOptions{
			Sources: args,
			Stdin:   cmd.InOrStdin(),
			Stdout:  cmd.OutOrStdout(),
			Trace:   trace,
			Profile: tui.Profile(os.Stdout, cfg.Color),
		})
		if sig := ctx.Signal(); sig != nil {
			logger.Info("Walk interrupted", "signal", sig.String())
		}
		return err
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	addPersistentFlags(rootCmd)
	addWalkFlags(rootCmd)
}

// addPersistentFlags registers the flags shared by every command.
func addPersistentFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().String("config", "", "Path to config file (default ./"+config.DefaultFile+")")
	cmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error")
	cmd.PersistentFlags().Int("max-steps", 0, "Stop a walk after this many moves (0 = unlimited)")
	cmd.PersistentFlags().String("redis-addr", "", "Cache results in Redis at this address")
	cmd.PersistentFlags().Bool("no-color", false, "Disable colored output")
}

func addWalkFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("format", "f", "", "Output format: text, json or markdown")
	cmd.Flags().Bool("trace", false, "Print the map with the walked path highlighted")
}

// loadConfig reads the config file and applies the flags the user set.
func loadConfig(cmd *cobra.Command) (config.Config, *slog.Logger, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, nil, err
	}

	overrides := map[string]any{}
	flags := cmd.Flags()
	if flags.Changed("log-level") {
		v, _ := flags.GetString("log-level")
		overrides["log_level"] = v
	}
	if flags.Changed("max-steps") {
		v, _ := flags.GetInt("max-steps")
		overrides["max_steps"] = v
	}
	if flags.Changed("redis-addr") {
		v, _ := flags.GetString("redis-addr")
		overrides["redis"] = map[string]any{"addr": v}
	}
	if flags.Changed("no-color") {
		v, _ := flags.GetBool("no-color")
		overrides["color"] = !v
	}
	if f := flags.Lookup("format"); f != nil && f.Changed {
		overrides["format"] = f.Value.String()
	}
	if f := flags.Lookup("addr"); f != nil && f.Changed {
		overrides["server"] = map[string]any{"addr": f.Value.String()}
	}

	if err := cfg.Merge(overrides); err != nil {
		return cfg, nil, err
	}

	logger, err := cli.CreateLogger(cfg.LogLevel)
	if err != nil {
		return cfg, nil, err
	}
	return cfg, logger, nil
}
