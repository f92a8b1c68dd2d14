package commands

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"abook/internal/app"
	"abook/internal/shell"
)

var (
	home       string
	passphrase string
	backend    string
	dataPath   string
	verbose    bool

	appCtx *app.Wire
	logger *zap.Logger
)

func Execute() error {
	root := &cobra.Command{
		Use:   "abook",
		Short: "Single-user command-line address book",
		Long: "abook keeps a personal address book in a flat file and accepts\n" +
			"line-oriented commands to manage it. Run without arguments for an\n" +
			"interactive shell, or use 'exec' to run a single command.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config := zap.NewProductionConfig()
			if verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			var err error
			logger, err = config.Build()
			if err != nil {
				return err
			}

			if home == "" {
				dir, err := os.UserHomeDir()
				if err != nil {
					return err
				}
				home = filepath.Join(dir, ".abook")
			}
			if err := os.MkdirAll(home, 0o700); err != nil {
				return err
			}

			cfg, err := app.LoadConfig(app.Config{
				Home:       home,
				Passphrase: passphrase,
				Backend:    backend,
				Path:       dataPath,
				Logger:     logger,
			})
			if err != nil {
				return err
			}
			appCtx, err = app.NewWire(cfg)
			return err
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return appCtx.Close()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			sh := shell.New(appCtx.Logic, cmd.InOrStdin(), cmd.OutOrStdout(), logger)
			return sh.Run()
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "data dir (default ~/.abook)")
	root.PersistentFlags().StringVarP(&passphrase, "passphrase", "p", "", "passphrase to encrypt the address book at rest")
	root.PersistentFlags().StringVar(&backend, "backend", "", "storage backend: json or sqlite (default json)")
	root.PersistentFlags().StringVar(&dataPath, "data", "", "storage file (default under the data dir)")
	root.PersistentFlags().BoolVar(&verbose, "verbose", false, "enable debug logging")

	root.AddCommand(execCmd(), pathCmd())
	return root.Execute()
}
