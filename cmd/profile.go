package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/KaramelBytes/convertsearch/internal/analysis"
	"github.com/KaramelBytes/convertsearch/internal/inference"
	"github.com/KaramelBytes/convertsearch/internal/parser"
)

var profileYAML bool

var profileCmd = &cobra.Command{
	Use:   "profile <file>",
	Short: "Profile a data file and show the inferred research context",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c := currentConfig()
		in, err := parser.LoadFile(args[0], c.MaxUploadBytes())
		if err != nil {
			return err
		}
		a, rc, err := newEngine(c.Seed).Profile(in)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if profileYAML {
			enc := yaml.NewEncoder(out)
			enc.SetIndent(2)
			defer enc.Close()
			return enc.Encode(struct {
				File     string                     `yaml:"file"`
				Analysis *analysis.Analysis         `yaml:"analysis"`
				Context  *inference.ResearchContext `yaml:"context"`
			}{in.Name, a, rc})
		}
		fmt.Fprint(out, a.Markdown(in.Name))
		fmt.Fprintf(out, "\n[RESEARCH CONTEXT]\n")
		fmt.Fprintf(out, "- Domain: %s\n", rc.Domain)
		fmt.Fprintf(out, "- Methodology: %s\n", rc.Methodology)
		writeList(out, "Research Questions", rc.ResearchQuestions)
		writeList(out, "Hypotheses", rc.Hypotheses)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(profileCmd)
	profileCmd.Flags().BoolVar(&profileYAML, "yaml", false, "print the profile as YAML")
}

func writeList(out io.Writer, title string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(out, "%s:\n", title)
	for _, it := range items {
		fmt.Fprintf(out, "- %s\n", strings.TrimSpace(it))
	}
}
