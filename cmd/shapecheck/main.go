package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"shapecheck/src/config"
)

var (
	// Global flags
	verbose     bool
	configPath  string
	format      string
	containment string
	cuboidForm  string

	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "shapecheck [coordinates-file]",
	Short: "Check whether points form a rectangle or a cuboid",
	Long: `Reads a coordinate file with one comma-separated point per line.

Three 2D points followed by a query point describe a rectangle; four 3D
points followed by a query point describe a cuboid. shapecheck reports
whether the points form the shape, whether the query point (the last line)
lies inside it, and the length of its diagonal.`,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("format") {
			cfg.Format = format
		}
		if cmd.Flags().Changed("containment") {
			cfg.Containment = containment
		}
		if cmd.Flags().Changed("cuboid") {
			cfg.Cuboid = cuboidForm
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		logger, err = newLogger(cfg.Logging, verbose)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runCheck,
}

func newLogger(lc config.LoggingConfig, verbose bool) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	if lc.Development {
		zc = zap.NewDevelopmentConfig()
	}
	level, err := zap.ParseAtomicLevel(lc.Level)
	if err != nil {
		return nil, err
	}
	zc.Level = level
	if verbose {
		zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return zc.Build()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "shapecheck.yaml", "Path to the yaml config file")
	rootCmd.Flags().StringVarP(&format, "format", "f", "text", "Report format: text or yaml")
	rootCmd.Flags().StringVar(&containment, "containment", config.ContainmentExact, "Containment test: exact or bounds")
	rootCmd.Flags().StringVar(&cuboidForm, "cuboid", config.CuboidOrthogonal, "Cuboid validation: orthogonal or face-height")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
