package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap/zapcore"

	cfgpkg "github.com/KaramelBytes/convertsearch/internal/config"
	"github.com/KaramelBytes/convertsearch/internal/pipeline"
	"github.com/KaramelBytes/convertsearch/internal/report"
	"github.com/KaramelBytes/convertsearch/internal/standards"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or set ConvertSearch configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		c := currentConfig()
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "batch_workers: %d\n", c.BatchWorkers)
		fmt.Fprintf(out, "default_standard: %s\n", c.DefaultStandard)
		fmt.Fprintf(out, "log_format: %s\n", c.LogFormat)
		fmt.Fprintf(out, "log_level: %s\n", c.LogLevel)
		fmt.Fprintf(out, "max_upload_mb: %d\n", c.MaxUploadMB)
		fmt.Fprintf(out, "output_format: %s\n", c.OutputFormat)
		fmt.Fprintf(out, "pace_ms: %d\n", c.PaceMs)
		fmt.Fprintf(out, "seed: %d\n", c.Seed)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value and save to disk",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, val := args[0], strings.TrimSpace(args[1])
		if cfg == nil {
			c, err := cfgpkg.Load(cfgFile)
			if err != nil {
				return err
			}
			cfg = c
		}
		switch key {
		case "default_standard":
			v := strings.ToLower(val)
			if v != pipeline.RandomStandard {
				if _, err := standards.Lookup(v); err != nil {
					return err
				}
			}
			cfg.DefaultStandard = v
		case "seed":
			u, err := strconv.ParseUint(val, 10, 64)
			if err != nil {
				return fmt.Errorf("invalid uint for seed: %w", err)
			}
			cfg.Seed = u
		case "output_format":
			v := strings.ToLower(val)
			switch v {
			case report.FormatText, report.FormatMarkdown, report.FormatHTML:
				cfg.OutputFormat = v
			default:
				return fmt.Errorf("invalid output_format: %s (use text, markdown or html)", val)
			}
		case "max_upload_mb":
			i, err := positiveInt(key, val)
			if err != nil {
				return err
			}
			cfg.MaxUploadMB = i
		case "batch_workers":
			i, err := positiveInt(key, val)
			if err != nil {
				return err
			}
			cfg.BatchWorkers = i
		case "pace_ms":
			i, err := strconv.Atoi(val)
			if err != nil || i < 0 {
				return fmt.Errorf("invalid int for pace_ms: %v", val)
			}
			cfg.PaceMs = i
		case "log_level":
			if _, err := zapcore.ParseLevel(val); err != nil {
				return fmt.Errorf("invalid log_level: %w", err)
			}
			cfg.LogLevel = strings.ToLower(val)
		case "log_format":
			v := strings.ToLower(val)
			if v != "console" && v != "json" {
				return fmt.Errorf("invalid log_format: %s (use console or json)", val)
			}
			cfg.LogFormat = v
		default:
			return fmt.Errorf("unknown key: %s (known: %s)", key, strings.Join(cfgpkg.Keys(), ", "))
		}
		if err := cfgpkg.Save(cfg, cfgFile); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Saved config")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}

func positiveInt(key, val string) (int, error) {
	i, err := strconv.Atoi(val)
	if err != nil || i <= 0 {
		return 0, fmt.Errorf("invalid int for %s: %v", key, val)
	}
	return i, nil
}
