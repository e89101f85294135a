package parser

import (
	"archive/zip"
	"bytes"
	"fmt"
	"html"
	"io"
	"regexp"
	"strings"
)

var (
	docxParagraphEnd = regexp.MustCompile(`</w:p>|<w:br\s*/>|<w:cr\s*/>`)
	docxTab          = regexp.MustCompile(`<w:tab\s*/>`)
	docxCellEnd      = regexp.MustCompile(`(?:</w:p>\s*)?</w:tc>`)
	docxRowEnd       = regexp.MustCompile(`</w:tr>`)
	xmlTag           = regexp.MustCompile(`<[^>]+>`)
)

type docxParser struct{}

func (docxParser) CanParse(filename string) bool {
	return strings.HasSuffix(strings.ToLower(filename), ".docx")
}

// Parse extracts word/document.xml and strips the markup. Paragraphs and table rows
// become lines and table cells are tab-separated so tabular documents stay delimited.
func (docxParser) Parse(content []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", fmt.Errorf("open docx: %w", err)
	}
	var docXML []byte
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			rc, err := f.Open()
			if err != nil {
				return "", fmt.Errorf("open document.xml: %w", err)
			}
			b, err := io.ReadAll(rc)
			_ = rc.Close()
			if err != nil {
				return "", fmt.Errorf("read document.xml: %w", err)
			}
			docXML = b
			break
		}
	}
	if len(docXML) == 0 {
		return "", fmt.Errorf("document.xml not found in DOCX")
	}
	text := docxTab.ReplaceAllString(string(docXML), "\t")
	text = docxCellEnd.ReplaceAllString(text, "\t")
	text = docxRowEnd.ReplaceAllString(text, "\n")
	text = docxParagraphEnd.ReplaceAllString(text, "\n")
	text = html.UnescapeString(xmlTag.ReplaceAllString(text, ""))

	lines := strings.Split(strings.ReplaceAll(text, "\r", ""), "\n")
	for i, ln := range lines {
		lines[i] = strings.TrimRight(ln, "\t ")
	}
	text = strings.TrimSpace(strings.Join(lines, "\n"))
	for strings.Contains(text, "\n\n\n") {
		text = strings.ReplaceAll(text, "\n\n\n", "\n\n")
	}
	return text, nil
}
