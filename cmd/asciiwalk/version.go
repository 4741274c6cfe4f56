package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/aretw0/asciiwalk"
	"github.com/aretw0/asciiwalk/internal/presentation/tui"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of asciiwalk",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		if banner, _ := cmd.Flags().GetBool("banner"); banner {
			tui.PrintBanner(out, tui.Profile(os.Stdout, true))
		}
		fmt.Fprintf(out, "asciiwalk version %s\n", strings.TrimSpace(asciiwalk.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.Flags().Bool("banner", false, "Print the banner above the version")
}
