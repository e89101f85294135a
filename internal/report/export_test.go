package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToMarkdown(t *testing.T) {
	doc := strings.Join([]string{
		"SCIENTIFIC RESEARCH REPORT",
		"",
		"Author: Team",
		"Date: today",
		"",
		rule,
		"",
		"1. INTRODUCTION",
		"",
		"1.1 Background",
		"3.2.1 Dataset Description",
		"• first",
		"Appendix A: Output",
		"Report Quality Metrics:",
		"- Word Count: 3000 words",
	}, "\n")
	got := strings.Split(ToMarkdown(doc), "\n")
	want := []string{
		"# SCIENTIFIC RESEARCH REPORT",
		"",
		"Author: Team  ",
		"Date: today",
		"",
		"---",
		"",
		"## 1. INTRODUCTION",
		"",
		"### 1.1 Background",
		"#### 3.2.1 Dataset Description",
		"- first",
		"### Appendix A: Output",
		"### Report Quality Metrics",
		"- Word Count: 3000 words",
	}
	assert.Equal(t, want, got)
}

func TestToHTML(t *testing.T) {
	doc, err := Synthesize(buildInput(t, "age,score\n20,88\n", "oxford", 8))
	require.NoError(t, err)
	out := ToHTML(doc, "scores report")
	assert.Contains(t, out, "<title>scores report</title>")
	assert.Contains(t, out, "SCIENTIFIC RESEARCH REPORT</h1>")
	assert.Contains(t, out, "ABSTRACT</h2>")
	assert.Contains(t, out, "<hr")
	assert.Contains(t, out, "<li>")
}

func TestRenderAndExtension(t *testing.T) {
	doc := "SCIENTIFIC RESEARCH REPORT\n\nbody"
	assert.Equal(t, doc, Render(doc, FormatText, "t"))
	assert.Equal(t, doc, Render(doc, "bogus", "t"))
	assert.True(t, strings.HasPrefix(Render(doc, "MD", "t"), "# "))
	assert.Contains(t, Render(doc, FormatHTML, "t"), "<html")
	assert.Equal(t, ".txt", Extension(FormatText))
	assert.Equal(t, ".md", Extension(FormatMarkdown))
	assert.Equal(t, ".html", Extension("HTML"))
}
