package report

import (
	"regexp"
	"strings"

	"github.com/KaramelBytes/convertsearch/internal/utils"
)

// wordsPerPage approximates a printed page.
const wordsPerPage = 250

var yearCitation = regexp.MustCompile(`\(\d{4}\)`)

// Stats are measured from a rendered document, unlike the figures printed inside it.
type Stats struct {
	Words      int `yaml:"words"`
	Sections   int `yaml:"sections"`
	References int `yaml:"references"`
	Pages      int `yaml:"pages"`
}

// Measure counts words, rule-separated sections, "(YYYY)" citations and estimated pages.
func Measure(doc string) Stats {
	words := utils.CountWords(doc)
	return Stats{
		Words:      words,
		Sections:   strings.Count(doc, rule),
		References: len(yearCitation.FindAllStringIndex(doc, -1)),
		Pages:      (words + wordsPerPage - 1) / wordsPerPage,
	}
}

// DownloadName is the default file name a document for fileName is saved under.
func DownloadName(fileName string) string {
	base, _, _ := strings.Cut(fileName, ".")
	if base == "" {
		base = "report"
	}
	return base + "_Scientific_Report.txt"
}
