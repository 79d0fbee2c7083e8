package cli

import (
	"github.com/spf13/cobra"

	"github.com/voici5986/Antigravity-Manager/internal/config"
)

// Shared CLI flags
var (
	headless  bool
	checkFlag bool
	forceFlag bool
)

// ServerConfig holds the loaded server configuration (set by main)
var ServerConfig *config.Config

// SetupRootCmd configures the root command with all subcommands and flags
func SetupRootCmd(c *config.Config) *cobra.Command {
	ServerConfig = c

	rootCmd := &cobra.Command{
		Use:   "antigravity",
		Short: "Antigravity Manager - local configuration manager",
		Long: `Antigravity Manager keeps the application configuration in sync between
the UI, the local API and the data directory.

Just type 'antigravity' to open the manager window.
Use --headless to run the API server without a native window.`,
		Run: func(cmd *cobra.Command, args []string) {
			if headless {
				RunAll()
			} else {
				RunDesktop()
			}
		},
	}

	rootCmd.Flags().BoolVar(&headless, "headless", false, "run without native window (HTTP server only)")

	rootCmd.AddCommand(ServeCmd())
	rootCmd.AddCommand(ConfigCmd())
	rootCmd.AddCommand(ImportV1Cmd())
	rootCmd.AddCommand(VersionCmd())

	return rootCmd
}
