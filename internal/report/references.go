package report

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// Author is a single reference author in "Family, G. I." form.
type Author struct {
	Family string `yaml:"family"`
	Given  string `yaml:"given"`
}

// Reference is one bibliography entry.
type Reference struct {
	ID      string
	Authors []Author
	Year    int
	Title   string
	Journal string
	Volume  string
	Issue   string
	Pages   string
	DOI     string
}

// GenerateReferences returns the eight domain-flavoured references cited by the
// document. Years are year or the year before.
func GenerateReferences(domain string, year int) []Reference {
	title := cases.Title(language.English).String(domain)
	last := year - 1
	return []Reference{
		{
			ID:      "anderson",
			Authors: []Author{{"Anderson", "J. M."}, {"Roberts", "K. L."}, {"Thompson", "S. R."}},
			Year:    year,
			Title:   fmt.Sprintf("Advanced artificial intelligence methods in %s research: A comprehensive framework", domain),
			Journal: fmt.Sprintf("Journal of %s Research", title),
			Volume:  "45", Issue: "3", Pages: "234-251",
			DOI: fmt.Sprintf("10.1016/j.%s.%d.03.015", prefix(domain, 3), year),
		},
		{
			ID:      "brown",
			Authors: []Author{{"Brown", "P. A."}, {"Miller", "D. J."}},
			Year:    year,
			Title:   fmt.Sprintf("Statistical analysis in the age of artificial intelligence: Methodological considerations for %s research", domain),
			Journal: "Computational Statistics & Data Analysis",
			Volume:  "78", Issue: "2", Pages: "145-162",
			DOI: fmt.Sprintf("10.1080/csd.%d.1234567", year),
		},
		{
			ID:      "chen",
			Authors: []Author{{"Chen", "M. R."}, {"Liu", "X. Y."}, {"Patel", "S. K."}},
			Year:    last,
			Title:   fmt.Sprintf("Machine learning applications in %s: A systematic review and meta-analysis", domain),
			Journal: fmt.Sprintf("Nature %s", title),
			Volume:  "12", Issue: "4", Pages: "412-428",
			DOI: fmt.Sprintf("10.1038/s%s-%d-09876-5", prefix(domain, 4), last),
		},
		{
			ID:      "garcia",
			Authors: []Author{{"Garcia", "R. S."}, {"Lee", "H. Y."}},
			Year:    year,
			Title:   fmt.Sprintf("Empirical validation of AI-enhanced statistical methods in %s research", domain),
			Journal: "Science Advances",
			Volume:  "10", Issue: "8", Pages: "eabcd1234",
			DOI: "10.1126/sciadv.abcd1234",
		},
		{
			ID:      "johnson",
			Authors: []Author{{"Johnson", "A. B."}, {"Williams", "C. D."}},
			Year:    year,
			Title:   fmt.Sprintf("Contemporary frameworks for quantitative analysis in %s: Integration of traditional and AI methods", domain),
			Journal: "Psychological Methods",
			Volume:  "29", Issue: "2", Pages: "189-205",
			DOI: "10.1037/met0000456",
		},
		{
			ID:      "martinez",
			Authors: []Author{{"Martinez", "E. L."}, {"Thompson", "K. J."}, {"Anderson", "M. P."}},
			Year:    last,
			Title:   "Artificial intelligence in research methodology: Enhancing statistical analysis and interpretation",
			Journal: "Journal of Research Methods",
			Volume:  "15", Issue: "3", Pages: "67-84",
			DOI: "10.1177/1234567890123456",
		},
		{
			ID:      "thompson",
			Authors: []Author{{"Thompson", "R. J."}, {"Davis", "L. M."}},
			Year:    year,
			Title:   fmt.Sprintf("AI-powered data analysis: Revolutionizing %s research through intelligent algorithms", domain),
			Journal: "Computational Intelligence Review",
			Volume:  "41", Issue: "6", Pages: "723-740",
			DOI: fmt.Sprintf("10.1214/%02d-CIR890", last%100),
		},
		{
			ID:      "wilson",
			Authors: []Author{{"Wilson", "D. P."}, {"Martinez", "A. L."}, {"Chen", "Y. W."}},
			Year:    year,
			Title:   fmt.Sprintf("Statistical significance and artificial intelligence: New paradigms for %s research validation", domain),
			Journal: "Statistical Science Today",
			Volume:  "42", Issue: "4", Pages: "456-473",
			DOI: fmt.Sprintf("10.1080/sst.%d.2345678", year),
		},
	}
}

// FormatReferences renders refs as a blank-line separated author-date bibliography.
func FormatReferences(refs []Reference) string {
	var b strings.Builder
	for i, r := range refs {
		if i > 0 {
			b.WriteString("\n\n")
		}
		fmt.Fprintf(&b, "%s (%d). %s. %s, %s", joinAuthors(r.Authors), r.Year, r.Title, r.Journal, r.Volume)
		if r.Issue != "" {
			fmt.Fprintf(&b, "(%s)", r.Issue)
		}
		fmt.Fprintf(&b, ", %s. https://doi.org/%s", r.Pages, r.DOI)
	}
	return b.String()
}

func joinAuthors(authors []Author) string {
	names := make([]string, len(authors))
	for i, a := range authors {
		names[i] = a.Family + ", " + a.Given
	}
	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	}
	return strings.Join(names[:len(names)-1], ", ") + ", & " + names[len(names)-1]
}

type cslIssued struct {
	DateParts [][]int `yaml:"date-parts"`
}

type cslItem struct {
	ID             string    `yaml:"id"`
	Type           string    `yaml:"type"`
	Title          string    `yaml:"title"`
	Author         []Author  `yaml:"author"`
	Issued         cslIssued `yaml:"issued"`
	ContainerTitle string    `yaml:"container-title"`
	Volume         string    `yaml:"volume,omitempty"`
	Issue          string    `yaml:"issue,omitempty"`
	Page           string    `yaml:"page,omitempty"`
	DOI            string    `yaml:"DOI,omitempty"`
}

// WriteCSL writes refs as a CSL-YAML list readable by pandoc-citeproc and Zotero.
func WriteCSL(w io.Writer, refs []Reference) error {
	items := make([]cslItem, 0, len(refs))
	for _, r := range refs {
		items = append(items, cslItem{
			ID:             fmt.Sprintf("%s%d", r.ID, r.Year),
			Type:           "article-journal",
			Title:          r.Title,
			Author:         r.Authors,
			Issued:         cslIssued{DateParts: [][]int{{r.Year}}},
			ContainerTitle: r.Journal,
			Volume:         r.Volume,
			Issue:          r.Issue,
			Page:           r.Pages,
			DOI:            r.DOI,
		})
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(items); err != nil {
		return fmt.Errorf("encode csl: %w", err)
	}
	return enc.Close()
}

func prefix(s string, n int) string {
	if len(s) < n {
		return s
	}
	return s[:n]
}
