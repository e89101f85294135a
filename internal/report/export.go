package report

import (
	"regexp"
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

// Output formats accepted by Render.
const (
	FormatText     = "text"
	FormatMarkdown = "markdown"
	FormatHTML     = "html"
)

var numberedHeading = regexp.MustCompile(`^\d+((?:\.\d+)+)\s+\S`)

// ToMarkdown converts a plain-text document into Markdown: the title becomes a level-1
// heading, upper-case section titles level-2, numbered subsections level-3 and below,
// rules become thematic breaks and bullets become list items.
func ToMarkdown(doc string) string {
	lines := strings.Split(doc, "\n")
	out := make([]string, 0, len(lines))
	for i, ln := range lines {
		switch {
		case i == 0 && ln != "":
			out = append(out, "# "+ln)
		case ln == rule:
			out = append(out, "---")
		case strings.HasPrefix(ln, "• "):
			out = append(out, "- "+strings.TrimPrefix(ln, "• "))
		case isSectionTitle(ln):
			out = append(out, "## "+ln)
		case numberedHeading.MatchString(ln):
			depth := strings.Count(numberedHeading.FindStringSubmatch(ln)[1], ".")
			out = append(out, strings.Repeat("#", min(depth+2, 6))+" "+ln)
		case strings.HasPrefix(ln, "Appendix ") || ln == "Report Quality Metrics:":
			out = append(out, "### "+strings.TrimSuffix(ln, ":"))
		case ln != "" && i+1 < len(lines) && isPlainLine(lines[i+1]):
			// consecutive plain lines keep their breaks
			out = append(out, ln+"  ")
		default:
			out = append(out, ln)
		}
	}
	return strings.Join(out, "\n")
}

// ToHTML renders doc as a complete HTML page.
func ToHTML(doc, title string) string {
	p := parser.NewWithExtensions(parser.CommonExtensions)
	r := html.NewRenderer(html.RendererOptions{
		Title: title,
		Flags: html.CommonFlags | html.CompletePage,
	})
	return string(markdown.ToHTML([]byte(ToMarkdown(doc)), p, r))
}

// Render returns doc in the named format. Unknown formats fall back to text.
func Render(doc, format, title string) string {
	switch strings.ToLower(format) {
	case FormatMarkdown, "md":
		return ToMarkdown(doc)
	case FormatHTML:
		return ToHTML(doc, title)
	default:
		return doc
	}
}

// Extension is the file extension conventionally used for format.
func Extension(format string) string {
	switch strings.ToLower(format) {
	case FormatMarkdown, "md":
		return ".md"
	case FormatHTML:
		return ".html"
	default:
		return ".txt"
	}
}

func isSectionTitle(ln string) bool {
	if ln == "" || ln == rule || ln != strings.ToUpper(ln) {
		return false
	}
	return strings.ContainsFunc(ln, func(r rune) bool { return r >= 'A' && r <= 'Z' })
}

func isPlainLine(ln string) bool {
	return ln != "" && ln != rule && !strings.HasPrefix(ln, "• ") && !strings.HasPrefix(ln, "- ")
}
