package parser

import (
	"bytes"
	"strings"
	"unicode"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// delimitedParser passes CSV, TSV and plain-text uploads through with
// normalized line endings.
type delimitedParser struct{}

func (delimitedParser) CanParse(filename string) bool {
	name := strings.ToLower(filename)
	return strings.HasSuffix(name, ".csv") || strings.HasSuffix(name, ".tsv") || strings.HasSuffix(name, ".txt")
}

func (delimitedParser) Parse(content []byte) (string, error) {
	return normalizeNewlines(bytes.TrimPrefix(content, utf8BOM)), nil
}

// legacyParser reads .doc and .xls uploads as text. Binary runs are dropped
// so only the embedded printable text reaches the profiler.
type legacyParser struct{}

func (legacyParser) CanParse(filename string) bool {
	name := strings.ToLower(filename)
	return strings.HasSuffix(name, ".doc") || strings.HasSuffix(name, ".xls")
}

func (legacyParser) Parse(content []byte) (string, error) {
	text := strings.ToValidUTF8(string(content), "")
	text = strings.Map(func(r rune) rune {
		if r == '\n' || r == '\r' || r == '\t' || unicode.IsPrint(r) {
			return r
		}
		return -1
	}, text)
	return normalizeNewlines([]byte(text)), nil
}

func normalizeNewlines(content []byte) string {
	text := string(bytes.ReplaceAll(content, []byte("\r\n"), []byte("\n")))
	return strings.ReplaceAll(text, "\r", "\n")
}
