// Package inference derives a research framing (domain, methodology and narrative
// scaffolding) from a dataset profile.
package inference

import (
	"fmt"
	"strings"

	"github.com/KaramelBytes/convertsearch/internal/analysis"
)

// Interdisciplinary is the domain used when no keyword matches.
const Interdisciplinary = "interdisciplinary"

// domainKeywords is scanned in order; the first domain with any hit wins.
var domainKeywords = []struct {
	domain   string
	keywords []string
}{
	{"psychology", []string{"score", "rating", "behavior", "response", "attitude", "personality"}},
	{"education", []string{"grade", "gpa", "student", "course", "exam", "learning"}},
	{"business", []string{"sales", "revenue", "profit", "customer", "market", "price"}},
	{"health", []string{"patient", "treatment", "symptom", "diagnosis", "medical", "health"}},
	{"social", []string{"survey", "demographic", "income", "age", "gender", "population"}},
}

// Domains lists every value InferDomain can return.
func Domains() []string {
	out := make([]string, 0, len(domainKeywords)+1)
	for _, d := range domainKeywords {
		out = append(out, d.domain)
	}
	return append(out, Interdisciplinary)
}

// ResearchContext is the inferred framing for one Analysis.
type ResearchContext struct {
	Domain            string   `yaml:"domain"`
	Methodology       string   `yaml:"methodology"`
	ResearchQuestions []string `yaml:"research_questions"`
	Hypotheses        []string `yaml:"hypotheses"`
	Limitations       []string `yaml:"limitations"`
	Implications      []string `yaml:"implications"`
}

// Infer builds a ResearchContext from a.
func Infer(a *analysis.Analysis) (*ResearchContext, error) {
	if a == nil {
		return nil, fmt.Errorf("infer: nil analysis")
	}
	domain := InferDomain(a.Variables)
	return &ResearchContext{
		Domain:            domain,
		Methodology:       Methodology(a.DataType, a.SampleSize),
		ResearchQuestions: researchQuestions(a, domain),
		Hypotheses:        hypotheses(a),
		Limitations:       limitations(a),
		Implications:      implications(a, domain),
	}, nil
}

// InferDomain matches the lower-cased variable names against the keyword table.
func InferDomain(vars []string) string {
	text := strings.ToLower(strings.Join(vars, " "))
	for _, d := range domainKeywords {
		for _, kw := range d.keywords {
			if strings.Contains(text, kw) {
				return d.domain
			}
		}
	}
	return Interdisciplinary
}

// Methodology maps data type and sample size to a design label.
func Methodology(dt analysis.DataType, sampleSize int) string {
	switch dt {
	case analysis.Quantitative:
		if sampleSize > 100 {
			return "Quantitative cross-sectional survey design"
		}
		return "Quantitative exploratory design"
	case analysis.Qualitative:
		return "Qualitative content analysis"
	default:
		return "Mixed-methods sequential explanatory design"
	}
}

func researchQuestions(a *analysis.Analysis, domain string) []string {
	qs := []string{
		fmt.Sprintf("What are the primary patterns and relationships within the %s dataset?", domain),
		"How do the measured variables interact to influence the observed outcomes?",
		"What statistical significance can be attributed to the identified relationships?",
	}
	if len(a.Correlations) > 0 {
		qs = append(qs, "What is the strength and direction of correlations between key variables?")
	}
	return qs
}

func hypotheses(a *analysis.Analysis) []string {
	hs := []string{
		"H1: Significant relationships exist between the primary variables in the dataset",
		"H2: The observed patterns demonstrate statistical significance at the p < 0.05 level",
	}
	if len(a.Correlations) > 2 {
		hs = append(hs, "H3: Multiple variables contribute to the variance in the dependent measures")
	}
	return hs
}

func limitations(a *analysis.Analysis) []string {
	ls := []string{
		"Cross-sectional design limits causal inference capabilities",
		"Sample characteristics may limit generalizability to broader populations",
	}
	if a.MissingDataPct > 5 {
		ls = append(ls, fmt.Sprintf("Missing data (%d%%) may affect result reliability", a.MissingDataPct))
	}
	if float64(a.OutlierCount) > float64(a.SampleSize)*0.1 {
		ls = append(ls, "Presence of outliers may influence statistical conclusions")
	}
	return ls
}

func implications(a *analysis.Analysis, domain string) []string {
	is := []string{
		fmt.Sprintf("Findings contribute to theoretical understanding in %s research", domain),
		"Results provide evidence-based foundation for future research directions",
		"Statistical relationships identified have practical significance for practitioners",
	}
	for _, t := range a.StatisticalTests {
		if t.PValue < 0.01 {
			is = append(is, "Strong statistical significance supports robust conclusions")
			break
		}
	}
	return is
}
