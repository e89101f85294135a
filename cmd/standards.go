package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KaramelBytes/convertsearch/internal/pipeline"
	"github.com/KaramelBytes/convertsearch/internal/standards"
)

var standardsCmd = &cobra.Command{
	Use:   "standards",
	Short: "List the available formatting standards",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		for _, p := range standards.All() {
			fmt.Fprintf(out, "%-8s %s\n", p.Key, p.CitationStyle)
			fmt.Fprintf(out, "         rigor: %s, minimum %d words\n", p.RigorLabel, p.MinWordCount)
			fmt.Fprintf(out, "         sections: %s\n", strings.Join(p.SectionOrder, " > "))
		}
		fmt.Fprintf(out, "%-8s harvard or oxford, chosen per report\n", pipeline.RandomStandard)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(standardsCmd)
}
