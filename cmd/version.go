package cmd

import (
	"fmt"
	"runtime/debug"

	"github.com/bnema/repara-cli/internal/version"
	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "rf %s\n", resolveVersion())
			return err
		},
	}
}

// resolveVersion prefers the ldflags value and falls back to the module
// version recorded by go install.
func resolveVersion() string {
	if version.Version != "dev" {
		return version.Version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return version.Version
}
