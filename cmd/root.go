package cmd

import (
	"fmt"
	"os"

	cfgpkg "github.com/KaramelBytes/labloom-cli/internal/config"
	"github.com/KaramelBytes/labloom-cli/internal/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Global flags
	cfgFile       string
	debug         bool
	flagThreshold float64

	// Loaded configuration
	cfg *cfgpkg.Global
	// Diagnostic logger; user-facing output goes to the command's writers.
	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:           "labloom",
	Short:         "LabLoom CLI: extract structured parameters from lab report text",
	Long:          `LabLoom reads OCR text of medical lab reports and extracts analyte values, units, reference ranges and abnormality status as structured JSON or a Markdown summary.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute is the entry point called by main.main()
func Execute() {
	cobra.OnInitialize(loadConfig)
	err := rootCmd.Execute()
	_ = logger.Sync()
	if err != nil {
		fmt.Fprintln(os.Stderr, "✗ Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.labloom/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().Float64Var(&flagThreshold, "threshold", 0, "minimum confidence in [0,1] (overrides config)")
}

func loadConfig() {
	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		// Non-fatal: allow running commands that don't need config
		fmt.Fprintf(os.Stderr, "⚠ Warning: failed to load config: %v\n", err)
	} else {
		cfg = c
	}

	level := ""
	if cfg != nil {
		level = cfg.LogLevel
	}
	l, err := logging.New(level, debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "⚠ Warning: %v; using info level\n", err)
		l, err = logging.New("", debug)
	}
	if err == nil {
		logger = l
	}
}
