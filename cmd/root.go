package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	rt := &runtime{}

	rootCmd := &cobra.Command{
		Use:           "rf",
		Short:         "ReparaFácil CLI (rf): repair tickets with offline fallback",
		Long:          "rf talks to the ReparaFácil repair-ticket backend and keeps working from local data when the backend cannot be reached.",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return rt.init(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			rt.close()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.String(flagAPIURL, "", "Repair-ticket API base URL (env RF_API_BASE_URL)")
	flags.String(flagAuthURL, "", "Auth API base URL (env RF_API_AUTH_URL)")
	flags.Bool(flagOffline, false, "Force offline mode and use local data (env RF_OFFLINE)")
	flags.Bool(flagJSON, false, "Render JSON output")
	flags.String(flagLogLevel, "", "Log level: debug, info, warn, error (env RF_LOG_LEVEL)")

	rootCmd.AddCommand(
		newVersionCmd(),
		newListCmd(rt),
		newSearchCmd(rt),
		newFilterCmd(rt),
		newLookupCmd(rt),
		newShowCmd(rt),
		newStatsCmd(rt),
		newStatusesCmd(rt),
		newCreateCmd(rt),
		newSetStatusCmd(rt),
		newLoginCmd(rt),
		newLogoutCmd(rt),
		newWhoamiCmd(rt),
		newWatchCmd(rt),
		newServeDemoCmd(rt),
	)

	return rootCmd
}
