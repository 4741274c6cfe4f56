package main

import (
	"github.com/aretw0/asciiwalk/internal/cli"
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play [file]",
	Short: "Step through a walk interactively",
	Long: `Opens a full-screen viewer that moves the walker one cell at a time.
Keys: space/n step, a autoplay, r restart, q quit. Reads stdin when no file is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, logger, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		src := cli.StdinSource
		if len(args) == 1 {
			src = args[0]
		}
		return cli.RunPlay(src, cmd.InOrStdin(), logger)
	},
}

func init() {
	rootCmd.AddCommand(playCmd)
}
