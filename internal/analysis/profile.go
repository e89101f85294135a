package analysis

import (
	"fmt"
	"math"
	"math/rand/v2"
	"regexp"
	"strings"

	"github.com/montanaflynn/stats"
)

// DataType classifies a dataset by the share of numeric tokens in its sampled rows.
type DataType string

const (
	Quantitative DataType = "quantitative"
	Qualitative  DataType = "qualitative"
	Mixed        DataType = "mixed"
)

// Shapes is the catalogue of distribution labels assigned to variables.
var Shapes = []string{"normal", "skewed", "bimodal", "uniform"}

const (
	// typeSampleRows is how many data rows feed type classification.
	typeSampleRows = 10
	// outlierRate is the assumed share of outlying rows.
	outlierRate = 0.05
)

var numericPattern = regexp.MustCompile(`^\d+\.?\d*$`)

// Distribution pairs a variable with its assigned shape label. Kept as a sequence
// parallel to Analysis.Variables so duplicate names stay distinct.
type Distribution struct {
	Variable string `yaml:"variable"`
	Shape    string `yaml:"shape"`
}

// Analysis is the structural and statistical profile of one uploaded file.
type Analysis struct {
	DataType         DataType       `yaml:"data_type"`
	SampleSize       int            `yaml:"sample_size"`
	Variables        []string       `yaml:"variables"`
	MissingDataPct   int            `yaml:"missing_data_pct"`
	OutlierCount     int            `yaml:"outlier_count"`
	Distributions    []Distribution `yaml:"distributions"`
	Correlations     []Correlation  `yaml:"correlations"`
	StatisticalTests []StatTest     `yaml:"statistical_tests"`
}

// Profiler turns raw text into an Analysis.
type Profiler struct {
	Surface SurfaceGenerator
}

// NewProfiler returns a Profiler backed by the given surface generator, or the
// fabricated one when gen is nil.
func NewProfiler(gen SurfaceGenerator) *Profiler {
	if gen == nil {
		gen = Fabricated{}
	}
	return &Profiler{Surface: gen}
}

// Profile builds an Analysis from content. Empty or header-only content yields a
// zero-row analysis rather than an error; errors come only from the surface generator.
func (p *Profiler) Profile(rng *rand.Rand, content string) (*Analysis, error) {
	if rng == nil {
		return nil, fmt.Errorf("profile: nil random source")
	}
	lines := nonBlankLines(content)
	header := ""
	if len(lines) > 0 {
		header = lines[0]
	}
	var rows []string
	if len(lines) > 1 {
		rows = lines[1:]
	}
	vars := DetectHeaders(header)

	surf, err := p.Surface.Generate(rng, vars, len(rows))
	if err != nil {
		return nil, fmt.Errorf("statistical surface: %w", err)
	}
	return &Analysis{
		DataType:         ClassifyDataType(rows),
		SampleSize:       len(rows),
		Variables:        vars,
		MissingDataPct:   MissingDataPct(rows),
		OutlierCount:     OutlierCount(len(rows)),
		Distributions:    AssignDistributions(rng, vars),
		Correlations:     surf.Correlations,
		StatisticalTests: surf.Tests,
	}, nil
}

func nonBlankLines(content string) []string {
	raw := strings.Split(content, "\n")
	out := make([]string, 0, len(raw))
	for _, l := range raw {
		if strings.TrimSpace(l) == "" {
			continue
		}
		out = append(out, strings.TrimSuffix(l, "\r"))
	}
	return out
}

// ClassifyDataType inspects up to the first ten data rows. Rows with no counted
// tokens classify as mixed.
func ClassifyDataType(rows []string) DataType {
	var numeric, text int
	for i, row := range rows {
		if i >= typeSampleRows {
			break
		}
		for _, tok := range splitTokens(row) {
			v := strings.TrimSpace(tok)
			switch {
			case v == "":
			case numericPattern.MatchString(v):
				numeric++
			default:
				text++
			}
		}
	}
	if numeric+text == 0 {
		return Mixed
	}
	ratio := float64(numeric) / float64(numeric+text)
	switch {
	case ratio > 0.8:
		return Quantitative
	case ratio < 0.3:
		return Qualitative
	default:
		return Mixed
	}
}

// MissingDataPct returns the rounded percentage of empty tokens across all rows,
// or 0 when there are no tokens.
func MissingDataPct(rows []string) int {
	var total, empty int
	for _, row := range rows {
		for _, tok := range splitTokens(row) {
			total++
			if strings.TrimSpace(tok) == "" {
				empty++
			}
		}
	}
	if total == 0 {
		return 0
	}
	pct, err := stats.Round(float64(empty)*100/float64(total), 0)
	if err != nil {
		return 0
	}
	return int(pct)
}

// OutlierCount is a fixed heuristic: five percent of rows, floored.
func OutlierCount(rows int) int {
	return int(math.Floor(float64(rows) * outlierRate))
}

// AssignDistributions labels every variable with a random shape. The labels carry
// no information about the data.
func AssignDistributions(rng *rand.Rand, vars []string) []Distribution {
	out := make([]Distribution, len(vars))
	for i, v := range vars {
		out[i] = Distribution{Variable: v, Shape: Shapes[rng.IntN(len(Shapes))]}
	}
	return out
}

// Markdown renders a compact profile summary suitable for terminals or docs.
func (a *Analysis) Markdown(name string) string {
	var b strings.Builder
	b.WriteString("[DATASET PROFILE]\n")
	if name != "" {
		b.WriteString(fmt.Sprintf("File: %s\n", name))
	}
	b.WriteString(fmt.Sprintf("Rows: %d\n", a.SampleSize))
	b.WriteString(fmt.Sprintf("Variables: %d\n", len(a.Variables)))
	b.WriteString(fmt.Sprintf("Type: %s\n", a.DataType))
	b.WriteString(fmt.Sprintf("Missing: %d%%\n", a.MissingDataPct))
	b.WriteString(fmt.Sprintf("Outliers (heuristic): %d\n\n", a.OutlierCount))

	b.WriteString("[VARIABLES]\n")
	for _, d := range a.Distributions {
		b.WriteString(fmt.Sprintf("- %s: %s\n", SafeName(d.Variable), d.Shape))
	}
	if len(a.Correlations) > 0 {
		b.WriteString("\n[CORRELATIONS] (synthetic)\n")
		for _, c := range a.Correlations {
			b.WriteString(fmt.Sprintf("- %s ~ %s: r=%.3f, p=%.3f\n", SafeVal(SafeName(c.Var1)), SafeVal(SafeName(c.Var2)), c.Coefficient, c.Significance))
		}
	}
	if len(a.StatisticalTests) > 0 {
		b.WriteString("\n[TESTS] (synthetic)\n")
		for _, t := range a.StatisticalTests {
			b.WriteString(fmt.Sprintf("- %s: stat %.3f, p=%.3f, effect %.3f\n", t.Name, t.Statistic, t.PValue, t.EffectSize))
		}
	}
	return b.String()
}

// SafeName substitutes a placeholder for blank names.
func SafeName(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "(unnamed)"
	}
	return s
}

// SafeVal flattens newlines and pipes so a value fits on one rendered line.
func SafeVal(s string) string {
	return strings.ReplaceAll(strings.ReplaceAll(s, "\n", " "), "|", "/")
}
