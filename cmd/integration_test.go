package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var initOnce sync.Once

// execCmd runs the root command with args against an isolated HOME and returns stdout.
func execCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	initOnce.Do(func() { cobra.OnInitialize(loadConfig) })
	// Reset sticky flags that may persist Changed state across invocations
	reset := func(c *cobra.Command) {
		c.Flags().VisitAll(func(fl *pflag.Flag) {
			_ = fl.Value.Set(fl.DefValue)
			fl.Changed = false
		})
	}
	reset(rootCmd)
	for _, c := range rootCmd.Commands() {
		reset(c)
		for _, sub := range c.Commands() {
			reset(sub)
		}
	}
	rootCmd.PersistentFlags().VisitAll(func(fl *pflag.Flag) {
		_ = fl.Value.Set(fl.DefValue)
		fl.Changed = false
	})
	cfg = nil

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func runCmd(t *testing.T, args ...string) string {
	t.Helper()
	out, err := execCmd(t, args...)
	if err != nil {
		t.Fatalf("command %v failed: %v\n%s", args, err, out)
	}
	return out
}

func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("CONVERTSEARCH_LOG_LEVEL", "error")
	return home
}

func writeData(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write data: %v", err)
	}
}

const sampleCSV = "age,score,group\n34,88,a\n41,92,b\n29,75,a\n52,81,b\n"

func TestCLI_ReportWritesDocument(t *testing.T) {
	home := isolate(t)
	data := filepath.Join(home, "survey.csv")
	writeData(t, data, sampleCSV)
	outPath := filepath.Join(home, "out", "survey.txt")
	csl := filepath.Join(home, "out", "refs.yaml")

	out := runCmd(t, "report", data, "--seed", "7", "-s", "mit", "-o", outPath, "--refs-csl", csl, "--preview", "5")
	if !strings.Contains(out, "✓ Wrote "+outPath) || !strings.Contains(out, "IEEE") {
		t.Fatalf("unexpected output: %s", out)
	}
	if !strings.Contains(out, "SCIENTIFIC RESEARCH REPORT") {
		t.Fatalf("expected preview in output: %s", out)
	}
	b, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	doc := string(b)
	for _, want := range []string{"ABSTRACT", "3. METHODOLOGY", "age", "score"} {
		if !strings.Contains(doc, want) {
			t.Fatalf("report missing %q", want)
		}
	}
	if strings.Contains(doc, "[Report continues with full academic structure...]") {
		t.Fatalf("unexpected fallback report")
	}
	refs, err := os.ReadFile(csl)
	if err != nil {
		t.Fatalf("read csl: %v", err)
	}
	if !strings.Contains(string(refs), "article-journal") {
		t.Fatalf("csl missing item type:\n%s", refs)
	}
}

func TestCLI_ReportIsReproducibleWithSeed(t *testing.T) {
	home := isolate(t)
	data := filepath.Join(home, "survey.csv")
	writeData(t, data, sampleCSV)
	a := filepath.Join(home, "a.txt")
	b := filepath.Join(home, "b.txt")
	runCmd(t, "report", data, "--seed", "11", "-o", a)
	runCmd(t, "report", data, "--seed", "11", "-o", b)
	da, _ := os.ReadFile(a)
	db, _ := os.ReadFile(b)
	// The date line can differ only across midnight.
	if len(da) == 0 || !bytes.Equal(da, db) {
		t.Fatalf("reports differ for the same seed")
	}
}

func TestCLI_ReportDefaultNameAndFormat(t *testing.T) {
	home := isolate(t)
	data := filepath.Join(home, "trial.data.csv")
	writeData(t, data, sampleCSV)
	wd, _ := os.Getwd()
	if err := os.Chdir(home); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	defer func() { _ = os.Chdir(wd) }()

	runCmd(t, "report", data, "--seed", "3", "--format", "markdown")
	b, err := os.ReadFile(filepath.Join(home, "trial_Scientific_Report.md"))
	if err != nil {
		t.Fatalf("expected default output name: %v", err)
	}
	if !strings.HasPrefix(string(b), "# ") {
		t.Fatalf("expected markdown heading, got %.40q", b)
	}
}

func TestCLI_ReportStdout(t *testing.T) {
	home := isolate(t)
	data := filepath.Join(home, "survey.csv")
	writeData(t, data, sampleCSV)
	out := runCmd(t, "report", data, "--seed", "5", "--stdout", "--format", "html")
	if !strings.Contains(out, "<html") || strings.Contains(out, "✓ Wrote") {
		t.Fatalf("expected html on stdout, got %.80q", out)
	}
}

func TestCLI_ReportRejectsUnknownStandard(t *testing.T) {
	home := isolate(t)
	data := filepath.Join(home, "survey.csv")
	writeData(t, data, sampleCSV)
	if _, err := execCmd(t, "report", data, "-s", "cambridge", "-o", filepath.Join(home, "x.txt")); err == nil {
		t.Fatalf("expected error for unknown standard")
	}
	if _, err := os.Stat(filepath.Join(home, "x.txt")); !os.IsNotExist(err) {
		t.Fatalf("no report should be written, stat err=%v", err)
	}
}

func TestCLI_ReportRejectsUnsupportedFile(t *testing.T) {
	home := isolate(t)
	data := filepath.Join(home, "image.png")
	writeData(t, data, "not really a png")
	if _, err := execCmd(t, "report", data); err == nil {
		t.Fatalf("expected error for unsupported file")
	}
}

func TestCLI_ReportBatchNameCollisions(t *testing.T) {
	home := isolate(t)
	writeData(t, filepath.Join(home, "in", "a", "data.csv"), sampleCSV)
	writeData(t, filepath.Join(home, "in", "b", "data.csv"), "height,weight\n170,65\n182,80\n")
	writeData(t, filepath.Join(home, "in", "notes.txt"), "income\tregion\n100\tnorth\n")
	outDir := filepath.Join(home, "reports")

	out := runCmd(t, "report-batch", filepath.Join(home, "in", "*", "*.csv"), filepath.Join(home, "in", "notes.txt"),
		"--out-dir", outDir, "--seed", "9", "--workers", "2", "-s", "random")
	for _, name := range []string{"data_Scientific_Report.txt", "data_Scientific_Report__2.txt", "notes_Scientific_Report.txt"} {
		if _, err := os.Stat(filepath.Join(outDir, name)); err != nil {
			t.Fatalf("missing %s: %v\n%s", name, err, out)
		}
	}
	if !strings.Contains(out, "Generated 3 of 3 reports") {
		t.Fatalf("unexpected summary: %s", out)
	}
}

func TestCLI_ReportBatchPartialFailure(t *testing.T) {
	home := isolate(t)
	good := filepath.Join(home, "good.csv")
	empty := filepath.Join(home, "empty.csv")
	writeData(t, good, sampleCSV)
	writeData(t, empty, "")
	out := runCmd(t, "report-batch", good, empty, "--out-dir", home)
	if !strings.Contains(out, "✗") || !strings.Contains(out, "Generated 1 of 2 reports") {
		t.Fatalf("expected one failure in output: %s", out)
	}

	if _, err := execCmd(t, "report-batch", empty, "--out-dir", home); err == nil {
		t.Fatalf("expected error when every file fails")
	}
	if _, err := execCmd(t, "report-batch", filepath.Join(home, "*.none")); err == nil {
		t.Fatalf("expected error when nothing matches")
	}
}

func TestCLI_ProfileYAML(t *testing.T) {
	home := isolate(t)
	data := filepath.Join(home, "survey.csv")
	writeData(t, data, sampleCSV)
	out := runCmd(t, "profile", data, "--yaml", "--seed", "2")
	for _, want := range []string{"file: survey.csv", "sample_size: 4", "- age", "domain:"} {
		if !strings.Contains(out, want) {
			t.Fatalf("profile yaml missing %q:\n%s", want, out)
		}
	}
	text := runCmd(t, "profile", data)
	if !strings.Contains(text, "[DATASET PROFILE]") || !strings.Contains(text, "[RESEARCH CONTEXT]") {
		t.Fatalf("unexpected profile text:\n%s", text)
	}
}

func TestCLI_Standards(t *testing.T) {
	isolate(t)
	out := runCmd(t, "standards")
	for _, want := range []string{"harvard", "oxford", "mit", "random", "APA 7th Edition"} {
		if !strings.Contains(out, want) {
			t.Fatalf("standards missing %q:\n%s", want, out)
		}
	}
}

func TestCLI_ConfigSetShow(t *testing.T) {
	home := isolate(t)
	runCmd(t, "config", "set", "default_standard", "Oxford")
	runCmd(t, "config", "set", "batch_workers", "3")
	if _, err := execCmd(t, "config", "set", "default_standard", "cambridge"); err == nil {
		t.Fatalf("expected invalid standard error")
	}
	if _, err := execCmd(t, "config", "set", "output_format", "pdf"); err == nil {
		t.Fatalf("expected invalid format error")
	}
	if _, err := execCmd(t, "config", "set", "nope", "1"); err == nil {
		t.Fatalf("expected unknown key error")
	}
	if _, err := os.Stat(filepath.Join(home, ".convertsearch", "config.yaml")); err != nil {
		t.Fatalf("config not saved: %v", err)
	}
	out := runCmd(t, "config", "show")
	if !strings.Contains(out, "default_standard: oxford") || !strings.Contains(out, "batch_workers: 3") {
		t.Fatalf("unexpected config:\n%s", out)
	}
}
