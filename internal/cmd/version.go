package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/elyby/hyfetch/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show the hyfetch build information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		_, _ = fmt.Fprintf(out, "Version:    %s\n", version.Version())
		_, _ = fmt.Fprintf(out, "Commit:     %s\n", version.Commit())
		_, _ = fmt.Fprintf(out, "Go version: %s\n", runtime.Version())
		_, _ = fmt.Fprintf(out, "OS/Arch:    %s/%s\n", runtime.GOOS, runtime.GOARCH)
	},
}

func init() {
	RootCmd.AddCommand(versionCmd)
}
