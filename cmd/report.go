package cmd

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/KaramelBytes/convertsearch/internal/parser"
	"github.com/KaramelBytes/convertsearch/internal/pipeline"
	"github.com/KaramelBytes/convertsearch/internal/report"
	"github.com/KaramelBytes/convertsearch/internal/utils"
)

var (
	repStandard string
	repOutput   string
	repFormat   string
	repRefsCSL  string
	repPace     time.Duration
	repPreview  int
	repStdout   bool
)

var reportCmd = &cobra.Command{
	Use:   "report <file>",
	Short: "Generate a research report from a data file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c := currentConfig()
		in, err := parser.LoadFile(args[0], c.MaxUploadBytes())
		if err != nil {
			return err
		}
		std := firstNonEmpty(repStandard, c.DefaultStandard)
		format := firstNonEmpty(repFormat, c.OutputFormat)
		pace := time.Duration(c.PaceMs) * time.Millisecond
		if cmd.Flags().Changed("pace") {
			pace = repPace
		}

		out := cmd.OutOrStdout()
		if pace > 0 {
			if !repStdout {
				fmt.Fprintf(out, "Analyzing %s...\n", in.Name)
			}
			if err := wait(cmd.Context(), pace); err != nil {
				return err
			}
		}

		res, err := newEngine(c.Seed).Generate(in, std)
		if err != nil {
			return err
		}
		if res.Fallback {
			fmt.Fprintf(cmd.ErrOrStderr(), "⚠ Full analysis failed (%v); using the short report\n", res.Cause)
		}

		rendered := report.Render(res.Document, format, report.BaseName(in.Name)+" report")
		if repStdout {
			_, err := io.WriteString(out, rendered)
			return err
		}
		path := repOutput
		if path == "" {
			path = strings.TrimSuffix(report.DownloadName(in.Name), ".txt") + report.Extension(format)
		}
		if err := utils.SafeWriteFile(path, []byte(rendered)); err != nil {
			return err
		}
		st := report.Measure(res.Document)
		fmt.Fprintf(out, "✓ Wrote %s (%s, %d words, %d sections, %d citations, ~%d pages)\n",
			path, res.Standard.CitationStyle, st.Words, st.Sections, st.References, st.Pages)

		if repRefsCSL != "" {
			if res.Context == nil {
				fmt.Fprintln(cmd.ErrOrStderr(), "⚠ No bibliography in the short report; skipping --refs-csl")
			} else {
				if err := writeCSL(repRefsCSL, res); err != nil {
					return err
				}
				fmt.Fprintf(out, "✓ Wrote bibliography %s\n", repRefsCSL)
			}
		}
		if repPreview > 0 {
			fmt.Fprintf(out, "\n%s ...\n", utils.TruncateWords(res.Document, repPreview))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)
	reportCmd.Flags().StringVarP(&repStandard, "standard", "s", "", "formatting standard: harvard | oxford | mit | random (default from config)")
	reportCmd.Flags().StringVarP(&repOutput, "output", "o", "", "output path (default <name>_Scientific_Report.<ext>)")
	reportCmd.Flags().StringVar(&repFormat, "format", "", "output format: text | markdown | html (default from config)")
	reportCmd.Flags().StringVar(&repRefsCSL, "refs-csl", "", "also write the bibliography as CSL-YAML to this path")
	reportCmd.Flags().DurationVar(&repPace, "pace", 0, "delay before generating, e.g. 2s (overrides pace_ms)")
	reportCmd.Flags().IntVar(&repPreview, "preview", 0, "print the first N words of the report")
	reportCmd.Flags().BoolVar(&repStdout, "stdout", false, "print the report instead of writing a file")
}

func writeCSL(path string, res *pipeline.Result) error {
	var buf bytes.Buffer
	refs := report.GenerateReferences(res.Context.Domain, res.Date.Year())
	if err := report.WriteCSL(&buf, refs); err != nil {
		return err
	}
	return utils.SafeWriteFile(path, buf.Bytes())
}

func wait(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
