package commands

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"abook/internal/app"
)

// path: print the resolved storage location.
func pathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the storage file in use",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.LoadConfig(app.Config{
				Home:    home,
				Backend: backend,
				Path:    dataPath,
			})
			if err != nil {
				return err
			}
			abs, err := filepath.Abs(cfg.Path)
			if err != nil {
				abs = cfg.Path
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", abs, cfg.Backend)
			return nil
		},
	}
}
