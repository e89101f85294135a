package analysis

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Delimiters lists the candidate field separators in priority order.
var Delimiters = []string{",", "\t", ";", "|"}

// DetectHeaders splits the header line on whichever candidate delimiter yields the
// most fields. Ties keep the earlier candidate. Field names are trimmed, stripped of
// surrounding quotes and NFC-normalized; duplicates are kept as-is.
func DetectHeaders(line string) []string {
	best := []string{line}
	for _, d := range Delimiters {
		split := strings.Split(line, d)
		if len(split) > len(best) {
			best = split
		}
	}
	out := make([]string, len(best))
	for i, f := range best {
		out[i] = normalizeField(f)
	}
	return out
}

func normalizeField(s string) string {
	s = strings.TrimSpace(s)
	s = strings.Trim(s, `"'`)
	s = strings.TrimSpace(s)
	return norm.NFC.String(s)
}

// splitTokens splits a data row on any candidate delimiter, keeping empty tokens.
func splitTokens(row string) []string {
	var out []string
	start := 0
	for i, r := range row {
		if isDelimiter(r) {
			out = append(out, row[start:i])
			start = i + 1
		}
	}
	return append(out, row[start:])
}

func isDelimiter(r rune) bool {
	switch r {
	case ',', '\t', ';', '|':
		return true
	}
	return false
}
