// aiectgen generates the CT instrumentation script that correlates AIE
// runtime control programs with configured hardware performance counters.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"aiectgen/internal/config"
	"aiectgen/internal/ctwriter"
	"aiectgen/internal/devicedb"
)

var (
	flagRoot   string
	flagDB     string
	flagDevice uint64
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "aiectgen",
	Short: "Generate the AIE profile CT instrumentation script",
	Long: `aiectgen scans the search root for aie_runtime_control<id>.asm programs,
extracts their SAVE_TIMESTAMPS instrumentation points, resolves the register
addresses of the hardware counters configured in the device database, and
writes the CT script consumed by the trace-scripting engine into the current
working directory.

The run fails when no programs, no configured counters, or no
instrumentation points are found; in that case no script is written.`,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().StringVar(&flagRoot, "root", ".", "directory searched recursively for runtime control programs")
	rootCmd.Flags().StringVar(&flagDB, "db", "", "device database YAML file (default $"+config.EnvDatabasePath+")")
	rootCmd.Flags().Uint64Var(&flagDevice, "device", 0, "device id in the database")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.New(flagRoot, flagDB, flagDevice, verbose)
	if err != nil {
		return err
	}

	zapCfg := zap.NewProductionConfig()
	if cfg.Verbose {
		zapCfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := zapCfg.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	store, err := devicedb.LoadFileStore(cfg.DatabasePath, logger)
	if err != nil {
		return err
	}

	writer := ctwriter.NewWriter(store, store.Metadata(cfg.DeviceID), cfg.DeviceID, cfg.Root, logger)
	if !writer.Generate() {
		return fmt.Errorf("CT file was not generated")
	}
	return nil
}

func main() {
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
