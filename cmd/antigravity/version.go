package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/voici5986/Antigravity-Manager/internal/version"
)

// VersionCmd prints the running version, optionally comparing it against
// the updater endpoint.
func VersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("antigravity %s\n", version.Current)
			if !checkFlag {
				return
			}
			client := version.NewClient(ServerConfig.Updater.Endpoint)
			latest, err := client.Fetch(cmd.Context())
			if err != nil {
				fmt.Printf("Update check failed: %v\n", err)
				return
			}
			if latest == version.Current {
				fmt.Println("Up to date.")
			} else {
				fmt.Printf("Latest available: %s\n", latest)
			}
		},
	}
	cmd.Flags().BoolVar(&checkFlag, "check", false, "check the updater endpoint for a newer version")
	return cmd
}
