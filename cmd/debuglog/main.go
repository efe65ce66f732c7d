package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"debuglog/internal/config"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// rootOptions holds the persistent flags and the logger shared by every
// subcommand of one command tree.
type rootOptions struct {
	configPath string
	verbose    bool
	logger     *zap.Logger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newRootCmd builds a fresh command tree; flag values live in the tree, so
// separate trees never share state.
func newRootCmd() *cobra.Command {
	opts := &rootOptions{logger: zap.NewNop()}

	rootCmd := &cobra.Command{
		Use:          "debuglog",
		Short:        "Generate language-aware debug print statements for selected code",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			zcfg := zap.NewProductionConfig()
			zcfg.Encoding = "console"
			if opts.verbose {
				zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			logger, err := zcfg.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			opts.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = opts.logger.Sync()
		},
	}

	// Default config path is local to the working directory
	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "debuglog.yaml", "Path to the YAML configuration file")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(newInsertCmd(opts))
	rootCmd.AddCommand(newRenderCmd())
	rootCmd.AddCommand(newClassifyCmd())
	rootCmd.AddCommand(newLanguagesCmd())
	return rootCmd
}

// loadConfig reads the config file, falling back to defaults when it does
// not exist.
func (o *rootOptions) loadConfig() (*config.Config, error) {
	cfg, err := config.LoadConfig(o.configPath)
	if errors.Is(err, fs.ErrNotExist) {
		o.logger.Debug("config file not found, using defaults", zap.String("path", o.configPath))
		cfg = config.Default()
		cfg.ApplyEnv()
		return cfg, cfg.Validate()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}
