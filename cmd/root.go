package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	cfgpkg "github.com/KaramelBytes/convertsearch/internal/config"
	"github.com/KaramelBytes/convertsearch/internal/logging"
	"github.com/KaramelBytes/convertsearch/internal/pipeline"
)

var (
	// Global flags
	cfgFile  string
	debug    bool
	flagSeed uint64

	// Loaded configuration and logger
	cfg    *cfgpkg.Global
	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "convertsearch",
	Short: "ConvertSearch: turn a data file into a formatted research report",
	Long: `ConvertSearch profiles an uploaded dataset (CSV, TSV, TXT, DOCX, XLSX and legacy
DOC/XLS), infers a research domain and methodology, and writes a long-form report
formatted for the Harvard, Oxford or MIT standard.

Statistical figures in the report are synthetic placeholders, not computed results.`,
	SilenceUsage: true,
}

// Execute is the entry point called by main.main()
func Execute() {
	cobra.OnInitialize(loadConfig)
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	defer func() { _ = logger.Sync() }()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "✗ Error:", err)
		stop()
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.convertsearch/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().Uint64Var(&flagSeed, "seed", 0, "random seed for reproducible reports (overrides config; 0 = time-seeded)")
}

func loadConfig() {
	// .env is optional
	_ = godotenv.Load()

	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		// Non-fatal: fall back to built-in defaults
		fmt.Fprintf(os.Stderr, "⚠ Warning: failed to load config: %v\n", err)
		c = cfgpkg.Default()
	}
	cfg = c

	if f := rootCmd.PersistentFlags(); f.Changed("seed") {
		cfg.Seed = flagSeed
	}
	level := cfg.LogLevel
	if debug {
		level = "debug"
	}
	l, err := logging.New(level, cfg.LogFormat)
	if err != nil {
		fmt.Fprintf(os.Stderr, "⚠ Warning: logging disabled: %v\n", err)
		l = zap.NewNop()
	}
	logger = l
}

// currentConfig returns the loaded configuration, or defaults when loading was skipped.
func currentConfig() *cfgpkg.Global {
	if cfg == nil {
		return cfgpkg.Default()
	}
	return cfg
}

func newEngine(seed uint64) *pipeline.Engine {
	return pipeline.New(logger, pipeline.WithSeed(seed))
}
