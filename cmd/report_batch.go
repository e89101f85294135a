package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/montanaflynn/stats"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/KaramelBytes/convertsearch/internal/parser"
	"github.com/KaramelBytes/convertsearch/internal/pipeline"
	"github.com/KaramelBytes/convertsearch/internal/report"
	"github.com/KaramelBytes/convertsearch/internal/standards"
	"github.com/KaramelBytes/convertsearch/internal/utils"
)

var (
	rbOutDir   string
	rbStandard string
	rbFormat   string
	rbWorkers  int
	rbQuiet    bool
)

type batchResult struct {
	path     string
	out      string
	fallback bool
	stats    report.Stats
	err      error
}

var reportBatchCmd = &cobra.Command{
	Use:   "report-batch <files...>",
	Short: "Generate reports for many files concurrently",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		files := expandInputs(args)
		if len(files) == 0 {
			return fmt.Errorf("no input files matched")
		}

		c := currentConfig()
		std := firstNonEmpty(rbStandard, c.DefaultStandard)
		if !strings.EqualFold(strings.TrimSpace(std), pipeline.RandomStandard) {
			if _, err := standards.Lookup(std); err != nil {
				return err
			}
		}
		format := firstNonEmpty(rbFormat, c.OutputFormat)
		workers := rbWorkers
		if workers <= 0 {
			workers = c.BatchWorkers
		}
		if workers <= 0 {
			workers = 1
		}
		if err := utils.EnsureDir(rbOutDir); err != nil {
			return err
		}
		outputs := outputNames(files, rbOutDir, report.Extension(format))

		out := cmd.OutOrStdout()
		results := make([]batchResult, len(files))
		g, ctx := errgroup.WithContext(cmd.Context())
		g.SetLimit(workers)
		for i, path := range files {
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				r := batchResult{path: path, out: outputs[i]}
				r.fallback, r.stats, r.err = generateOne(path, r.out, std, format, batchSeed(c.Seed, i), c.MaxUploadBytes())
				results[i] = r
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}

		var words []float64
		failed := 0
		for i, r := range results {
			switch {
			case r.err != nil:
				failed++
				fmt.Fprintf(cmd.ErrOrStderr(), "[%d/%d] ✗ %s: %v\n", i+1, len(results), r.path, r.err)
			default:
				words = append(words, float64(r.stats.Words))
				if rbQuiet {
					continue
				}
				mark := "✓"
				if r.fallback {
					mark = "⚠"
				}
				fmt.Fprintf(out, "[%d/%d] %s %s -> %s (%d words)\n", i+1, len(results), mark, filepath.Base(r.path), r.out, r.stats.Words)
			}
		}
		if !rbQuiet && len(words) > 0 {
			mean, _ := stats.Mean(words)
			longest, _ := stats.Max(words)
			fmt.Fprintf(out, "Generated %d of %d reports (mean %.0f words, longest %.0f)\n", len(words), len(results), mean, longest)
		}
		if failed == len(results) {
			return fmt.Errorf("all %d files failed", failed)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(reportBatchCmd)
	reportBatchCmd.Flags().StringVar(&rbOutDir, "out-dir", ".", "directory for generated reports")
	reportBatchCmd.Flags().StringVarP(&rbStandard, "standard", "s", "", "formatting standard: harvard | oxford | mit | random (default from config)")
	reportBatchCmd.Flags().StringVar(&rbFormat, "format", "", "output format: text | markdown | html (default from config)")
	reportBatchCmd.Flags().IntVar(&rbWorkers, "workers", 0, "concurrent workers (default batch_workers from config)")
	reportBatchCmd.Flags().BoolVar(&rbQuiet, "quiet", false, "suppress progress and non-essential output")
}

func generateOne(path, out, std, format string, seed uint64, limit int64) (bool, report.Stats, error) {
	in, err := parser.LoadFile(path, limit)
	if err != nil {
		return false, report.Stats{}, err
	}
	res, err := newEngine(seed).Generate(in, std)
	if err != nil {
		return false, report.Stats{}, err
	}
	rendered := report.Render(res.Document, format, report.BaseName(in.Name)+" report")
	if err := utils.SafeWriteFile(out, []byte(rendered)); err != nil {
		return false, report.Stats{}, err
	}
	return res.Fallback, report.Measure(res.Document), nil
}

// expandInputs resolves globs and literal paths, dropping duplicates.
func expandInputs(args []string) []string {
	var files []string
	seen := map[string]struct{}{}
	for _, arg := range args {
		matches, _ := filepath.Glob(arg)
		if len(matches) == 0 {
			// treat as literal path if exists
			if _, err := os.Stat(arg); err == nil {
				matches = []string{arg}
			}
		}
		for _, m := range matches {
			if _, ok := seen[m]; ok {
				continue
			}
			seen[m] = struct{}{}
			files = append(files, m)
		}
	}
	sort.Strings(files)
	return files
}

// outputNames assigns each input a distinct report path in dir. Inputs sharing
// a base name get __2, __3 and so on, as do names already present on disk.
func outputNames(files []string, dir, ext string) []string {
	taken := map[string]bool{}
	out := make([]string, len(files))
	for i, f := range files {
		base := strings.TrimSuffix(report.DownloadName(filepath.Base(f)), ".txt")
		cand := filepath.Join(dir, base+ext)
		for idx := 2; taken[cand] || exists(cand); idx++ {
			cand = filepath.Join(dir, fmt.Sprintf("%s__%d%s", base, idx, ext))
		}
		taken[cand] = true
		out[i] = cand
	}
	return out
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// batchSeed keeps a fixed seed reproducible per file without repeating the
// same random stream across files.
func batchSeed(seed uint64, i int) uint64 {
	if seed == 0 {
		return 0
	}
	return seed + uint64(i)
}
