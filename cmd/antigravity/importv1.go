package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/voici5986/Antigravity-Manager/internal/migration"
)

// ImportV1Cmd imports settings left behind by a V1 agent installation.
func ImportV1Cmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import-v1",
		Short: "Import configuration from a V1 agent installation",
		RunE: func(cmd *cobra.Command, args []string) error {
			svcCtx, err := initService(nil)
			if err != nil {
				return err
			}
			defer svcCtx.Close()

			if !forceFlag && svcCtx.ConfigPath != "" {
				if _, err := os.Stat(svcCtx.ConfigPath); err == nil {
					return errors.New("a configuration already exists, use --force to overwrite it")
				}
			}

			cfg, err := migration.ImportV1(cmd.Context(), svcCtx.Persist)
			if err != nil {
				return err
			}
			if cfg == nil {
				fmt.Println("No V1 data found.")
				return nil
			}
			fmt.Printf("Imported V1 configuration (theme=%s, language=%s)\n", cfg.Theme, cfg.Language)
			return nil
		},
	}
	cmd.Flags().BoolVar(&forceFlag, "force", false, "overwrite an existing configuration")
	return cmd
}
