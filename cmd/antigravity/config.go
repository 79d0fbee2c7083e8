package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

// ConfigCmd inspects or modifies the stored configuration from the
// terminal, through the same store the UI uses.
func ConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or modify the stored configuration",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "get",
		Short: "Print the stored configuration as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			svcCtx, err := initService(nil)
			if err != nil {
				return err
			}
			defer svcCtx.Close()

			svcCtx.Store.LoadConfig(cmd.Context())
			st := svcCtx.Store.Snapshot()
			if st.Err != "" {
				return errors.New(st.Err)
			}
			data, err := json.MarshalIndent(st.Config, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(data))
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "set <theme|language> <value>",
		Short: "Change a single configuration field",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			svcCtx, err := initService(nil)
			if err != nil {
				return err
			}
			defer svcCtx.Close()

			ctx := cmd.Context()
			svcCtx.Store.LoadConfig(ctx)
			if st := svcCtx.Store.Snapshot(); st.Err != "" {
				return errors.New(st.Err)
			}

			switch args[0] {
			case "theme":
				err = svcCtx.Store.UpdateTheme(ctx, args[1])
			case "language":
				err = svcCtx.Store.UpdateLanguage(ctx, args[1])
			default:
				return fmt.Errorf("unknown field %q (expected theme or language)", args[0])
			}
			if err != nil {
				return err
			}
			fmt.Printf("%s = %s\n", args[0], args[1])
			return nil
		},
	})

	return cmd
}
